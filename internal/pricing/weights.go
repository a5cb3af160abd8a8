package pricing

import (
	"math"

	"hotel_pricing/internal/domain"
)

// Weights holds the coefficients of the composite competitor weight:
//
//	proximity  p = 1 / (1 + distance/ProximityScale)        in (0, 1]
//	reputation r = 0.5 + reviewScore/10                     in [0.5, 1]
//	fit        f = 1 - 0.25*min(|occupancy - desired|, 1)   in [0.75, 1]
//	weight     w = Proximity*p + Reputation*r + Fit*f
//
// With positive coefficients every factor contributes a bounded, finite,
// positive amount, so w > 0 for any valid hotel (w >= 0.325 with defaults).
//
// The fit slope is kept shallow: with the defaults the weighted average moves
// by at most 2*0.05/0.325 ~ 0.31 in log terms per unit of desired occupancy,
// less than the elasticity of either occupancy policy (>= 0.37), so the raw
// price stays monotonic across an occupancy sweep.
type Weights struct {
	Proximity      float64
	Reputation     float64
	Fit            float64
	ProximityScale float64 // meters at which proximity halves
}

func DefaultWeights() Weights {
	return Weights{Proximity: 0.45, Reputation: 0.35, Fit: 0.20, ProximityScale: 400}
}

// valid reports whether every weight the coefficients produce is positive:
// no coefficient is negative or NaN and at least one is non-zero.
func (w Weights) valid() bool {
	cs := []float64{w.Proximity, w.Reputation, w.Fit}
	var sum float64
	for _, c := range cs {
		if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
			return false
		}
		sum += c
	}
	return sum > 0
}

func (w Weights) proximity(distance float64) float64 {
	scale := w.ProximityScale
	if scale <= 0 {
		scale = 400
	}
	return 1 / (1 + math.Max(distance, 0)/scale)
}

func reputation(score float64) float64 {
	return 0.5 + clamp(score, 0, 5)/10
}

func occupancyFit(occupancy, desired float64) float64 {
	return 1 - 0.25*math.Min(math.Abs(occupancy-desired), 1)
}

// Of returns the composite weight of h for the given target occupancy.
func (w Weights) Of(h domain.Hotel, desiredOccupancy float64) float64 {
	return w.Proximity*w.proximity(h.DistanceMeters) +
		w.Reputation*reputation(h.ReviewScore) +
		w.Fit*occupancyFit(h.OccupancyRate, desiredOccupancy)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
