package pricing

import (
	"fmt"

	"hotel_pricing/internal/domain"
)

// Insight IDs are stable so that callers can key on them.
const (
	InsightMarketPosition    = "market-position"
	InsightDemandRegime      = "demand-regime"
	InsightOccupancyTarget   = "occupancy-target"
	InsightCurrentRateGap    = "current-rate-gap"
	InsightPriceBand         = "price-band"
	InsightReferenceFallback = "reference-fallback"
)

const (
	marketTolerance    = 0.01  // relative gap treated as "aligned"
	demandTolerance    = 0.005 // around the stable index
	occupancyTolerance = 0.02  // two points of occupancy
	heavyClampRatio    = 0.10  // ceiling cut considered large
)

func buildInsights(target domain.Hotel, s domain.PricingScenario, r domain.PriceRecommendation) []domain.Insight {
	out := []domain.Insight{
		marketPosition(s, r),
		demandRegime(s),
		occupancyTarget(target, s),
		currentRateGap(target, r),
	}
	if r.Clamp != domain.ClampNone {
		out = append(out, priceBand(s, r))
	}
	if r.Fallback {
		out = append(out, domain.Insight{
			ID:     InsightReferenceFallback,
			Label:  "No comparable competitors",
			Detail: fmt.Sprintf("No competitor matches this scenario; the hotel's own rate of %.0f is used as the market reference.", target.AverageDailyRate),
			Impact: domain.ImpactNeutral,
		})
	}
	return out
}

func marketPosition(s domain.PricingScenario, r domain.PriceRecommendation) domain.Insight {
	in := domain.Insight{ID: InsightMarketPosition}
	avg := r.WeightedMarketAverage
	gap := (r.RecommendedPrice - avg) / avg

	if r.Clamp == domain.ClampCeiling && (r.RawPrice-r.RecommendedPrice)/r.RawPrice > heavyClampRatio {
		in.Label = "Ceiling caps the market signal"
		in.Detail = fmt.Sprintf("The market supports %.0f but the ceiling holds the price at %.0f (%.0f%% below).",
			r.RawPrice, r.RecommendedPrice, 100*(r.RawPrice-r.RecommendedPrice)/r.RawPrice)
		in.Impact = domain.ImpactNegative
		return in
	}

	switch {
	case gap > marketTolerance:
		in.Label = "Priced above market"
		in.Detail = fmt.Sprintf("Recommended %.0f is %.1f%% above the weighted market average of %.0f, backed by a demand index of %.2f and an occupancy adjustment of %.2f.",
			r.RecommendedPrice, 100*gap, avg, s.DemandIndex, r.OccupancyAdjustment)
		in.Impact = domain.ImpactPositive
	case gap < -marketTolerance:
		in.Label = "Priced below market"
		in.Detail = fmt.Sprintf("Recommended %.0f is %.1f%% below the weighted market average of %.0f.",
			r.RecommendedPrice, -100*gap, avg)
		in.Impact = domain.ImpactNeutral
	default:
		in.Label = "Aligned with market"
		in.Detail = fmt.Sprintf("Recommended %.0f tracks the weighted market average of %.0f.", r.RecommendedPrice, avg)
		in.Impact = domain.ImpactNeutral
	}
	return in
}

func demandRegime(s domain.PricingScenario) domain.Insight {
	in := domain.Insight{ID: InsightDemandRegime}
	switch {
	case s.DemandIndex > domain.DemandStable+demandTolerance:
		in.Label = "Elevated demand"
		in.Detail = fmt.Sprintf("Demand index %.2f lifts the market reference by %.0f%%.", s.DemandIndex, 100*(s.DemandIndex-1))
		in.Impact = domain.ImpactPositive
	case s.DemandIndex < domain.DemandStable-demandTolerance:
		in.Label = "Depressed demand"
		in.Detail = fmt.Sprintf("Demand index %.2f pulls the market reference down by %.0f%%.", s.DemandIndex, 100*(1-s.DemandIndex))
		in.Impact = domain.ImpactNegative
	default:
		in.Label = "Stable demand"
		in.Detail = "No demand adjustment is applied to the market reference."
		in.Impact = domain.ImpactNeutral
	}
	return in
}

func occupancyTarget(target domain.Hotel, s domain.PricingScenario) domain.Insight {
	in := domain.Insight{ID: InsightOccupancyTarget}
	diff := s.DesiredOccupancy - target.OccupancyRate
	switch {
	case diff > occupancyTolerance:
		in.Label = "Occupancy target above current"
		in.Detail = fmt.Sprintf("Targeting %.0f%% against a current %.0f%% occupancy (+%.0f pts).",
			100*s.DesiredOccupancy, 100*target.OccupancyRate, 100*diff)
		in.Impact = domain.ImpactPositive
	case diff < -occupancyTolerance:
		in.Label = "Occupancy target below current"
		in.Detail = fmt.Sprintf("Targeting %.0f%% against a current %.0f%% occupancy (%.0f pts).",
			100*s.DesiredOccupancy, 100*target.OccupancyRate, 100*diff)
		in.Impact = domain.ImpactNegative
	default:
		in.Label = "Occupancy target in line"
		in.Detail = fmt.Sprintf("Targeting %.0f%%, close to the current %.0f%%.", 100*s.DesiredOccupancy, 100*target.OccupancyRate)
		in.Impact = domain.ImpactNeutral
	}
	return in
}

func currentRateGap(target domain.Hotel, r domain.PriceRecommendation) domain.Insight {
	in := domain.Insight{ID: InsightCurrentRateGap}
	delta := r.RecommendedPrice - target.AverageDailyRate
	rel := delta / target.AverageDailyRate
	in.Detail = fmt.Sprintf("Current rate %.0f, recommended %.0f (%+.0f).", target.AverageDailyRate, r.RecommendedPrice, delta)
	switch {
	case rel > marketTolerance:
		in.Label = "Room to raise the rate"
		in.Impact = domain.ImpactPositive
	case rel < -marketTolerance:
		in.Label = "Rate above recommendation"
		in.Impact = domain.ImpactNegative
	default:
		in.Label = "Current rate on target"
		in.Impact = domain.ImpactNeutral
	}
	return in
}

func priceBand(s domain.PricingScenario, r domain.PriceRecommendation) domain.Insight {
	in := domain.Insight{ID: InsightPriceBand, Impact: domain.ImpactNeutral}
	if r.Clamp == domain.ClampFloor {
		in.Label = "Floor price applied"
		in.Detail = fmt.Sprintf("Computed price %.0f is below the floor; held at %.0f.", r.RawPrice, s.FloorPrice)
		return in
	}
	in.Label = "Ceiling price applied"
	in.Detail = fmt.Sprintf("Computed price %.0f is above the ceiling; held at %.0f.", r.RawPrice, s.CeilingPrice)
	return in
}
