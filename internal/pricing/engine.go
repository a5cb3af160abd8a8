// Package pricing recommends a nightly rate for a hotel from a weighted view
// of its competitors. Every function here is pure: the same catalog and
// scenario always produce the same recommendation.
package pricing

import (
	"fmt"
	"math"

	"hotel_pricing/internal/domain"
)

type Engine struct {
	Weights   Weights
	Occupancy OccupancyPolicy
}

func NewEngine(w Weights, p OccupancyPolicy) *Engine {
	if p == nil {
		p = PremiumPolicy
	}
	return &Engine{Weights: w, Occupancy: p}
}

var defaultEngine = NewEngine(DefaultWeights(), PremiumPolicy)

// Recommend runs the default engine.
func Recommend(target domain.Hotel, competitors []domain.Hotel, s domain.PricingScenario) (domain.PriceRecommendation, error) {
	return defaultEngine.Recommend(target, competitors, s)
}

// ValidateScenario rejects price bands that make clamping ill-defined.
func ValidateScenario(s domain.PricingScenario) error {
	if math.IsNaN(s.FloorPrice) || math.IsNaN(s.CeilingPrice) {
		return fmt.Errorf("%w: price bounds must be numbers", domain.ErrInvalidScenario)
	}
	if s.FloorPrice <= 0 || s.CeilingPrice <= 0 {
		return fmt.Errorf("%w: price bounds must be positive (floor %.2f, ceiling %.2f)",
			domain.ErrInvalidScenario, s.FloorPrice, s.CeilingPrice)
	}
	if s.FloorPrice >= s.CeilingPrice {
		return fmt.Errorf("%w: floor %.2f must be below ceiling %.2f",
			domain.ErrInvalidScenario, s.FloorPrice, s.CeilingPrice)
	}
	return nil
}

func (e *Engine) Recommend(target domain.Hotel, competitors []domain.Hotel, s domain.PricingScenario) (domain.PriceRecommendation, error) {
	if err := ValidateScenario(s); err != nil {
		return domain.PriceRecommendation{}, err
	}
	policy := e.Occupancy
	if policy == nil {
		policy = PremiumPolicy
	}
	weights := e.Weights
	if !weights.valid() {
		weights = DefaultWeights()
	}

	refs := SelectCompetitors(competitors, s)
	out := domain.PriceRecommendation{
		ReferenceHotels: make([]domain.ReferenceHotel, 0, len(refs)),
	}

	var sumW, sumWR float64
	for _, h := range refs {
		w := weights.Of(h, s.DesiredOccupancy)
		sumW += w
		sumWR += w * h.AverageDailyRate
		out.ReferenceHotels = append(out.ReferenceHotels, domain.ReferenceHotel{Hotel: h, Weight: w})
	}

	if len(refs) > 0 {
		out.WeightedMarketAverage = sumWR / sumW
		for i := range out.ReferenceHotels {
			out.ReferenceHotels[i].Share = out.ReferenceHotels[i].Weight / sumW
		}
	} else {
		// nothing to compare against: anchor on the hotel's own rate
		out.WeightedMarketAverage = target.AverageDailyRate
		out.Fallback = true
	}

	out.OccupancyAdjustment = policy(s.DesiredOccupancy)
	out.RawPrice = out.WeightedMarketAverage * s.DemandIndex * out.OccupancyAdjustment
	out.RecommendedPrice, out.Clamp = clampPrice(out.RawPrice, s.FloorPrice, s.CeilingPrice)
	out.Insights = buildInsights(target, s, out)
	return out, nil
}

func clampPrice(raw, floor, ceiling float64) (float64, domain.Clamp) {
	switch {
	case raw < floor || math.IsNaN(raw):
		return floor, domain.ClampFloor
	case raw > ceiling:
		return ceiling, domain.ClampCeiling
	default:
		return raw, domain.ClampNone
	}
}
