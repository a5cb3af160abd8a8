package pricing

import "hotel_pricing/internal/domain"

// SelectCompetitors returns the comparison set for a scenario. Upscale hotels
// are kept only when the scenario asks for them; catalog order is preserved.
func SelectCompetitors(catalog []domain.Hotel, s domain.PricingScenario) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(catalog))
	for _, h := range catalog {
		if h.Category == domain.CategoryUpscale && !s.IncludeUpscale {
			continue
		}
		out = append(out, h)
	}
	return out
}
