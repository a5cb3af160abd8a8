package pricing

import (
	"context"

	"golang.org/x/sync/errgroup"

	"hotel_pricing/internal/domain"
)

// Sweep re-runs the engine for each occupancy step, keeping every other
// scenario field fixed. Steps are evaluated concurrently; the result keeps
// step order. Adjustment is measured against the base scenario's market
// average so the curve shares one reference point.
func (e *Engine) Sweep(ctx context.Context, target domain.Hotel, competitors []domain.Hotel, s domain.PricingScenario, steps []float64) ([]domain.ProjectionPoint, error) {
	base, err := e.Recommend(target, competitors, s)
	if err != nil {
		return nil, err
	}

	points := make([]domain.ProjectionPoint, len(steps))
	g, ctx := errgroup.WithContext(ctx)
	for i, occ := range steps {
		i, occ := i, occ // per-iteration copy (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sc := s
			sc.DesiredOccupancy = occ
			rec, err := e.Recommend(target, competitors, sc)
			if err != nil {
				return err
			}
			points[i] = domain.ProjectionPoint{
				Occupancy:  occ,
				Price:      rec.RecommendedPrice,
				RawPrice:   rec.RawPrice,
				Adjustment: rec.RecommendedPrice - base.WeightedMarketAverage,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

// Sweep runs the default engine.
func Sweep(ctx context.Context, target domain.Hotel, competitors []domain.Hotel, s domain.PricingScenario, steps []float64) ([]domain.ProjectionPoint, error) {
	return defaultEngine.Sweep(ctx, target, competitors, s, steps)
}
