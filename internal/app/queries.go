package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_pricing/internal/adapters/observability"
	"hotel_pricing/internal/domain"
	"hotel_pricing/internal/pricing"
	"hotel_pricing/internal/shared"
)

// CachePrefix scopes every cached recommendation so the seeder can evict
// them in one sweep.
const CachePrefix = "rec:"

type RecommendationService struct {
	catalog  domain.Catalog
	engine   *pricing.Engine
	policy   string
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewRecommendationService serves recommendations for one immutable catalog.
// cache may be nil.
func NewRecommendationService(cat domain.Catalog, policy string, c domain.Cache, ttl time.Duration) (*RecommendationService, error) {
	p, err := pricing.PolicyByName(policy)
	if err != nil {
		return nil, err
	}
	if policy == "" {
		policy = "premium"
	}
	return &RecommendationService{
		catalog:  cat,
		engine:   pricing.NewEngine(pricing.DefaultWeights(), p),
		policy:   strings.ToLower(policy),
		cache:    c,
		cacheTTL: ttl,
	}, nil
}

func (s *RecommendationService) Catalog() domain.Catalog { return s.catalog }

func (s *RecommendationService) key(kind string, sc domain.PricingScenario) (string, error) {
	fp, err := shared.Fingerprint(sc)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s:%s:%s:%s", CachePrefix, s.catalog.Version, s.policy, kind, fp), nil
}

// fromCache reports a hit only when the entry decoded cleanly. Unreadable
// entries count as misses and get overwritten by the recomputed value.
func (s *RecommendationService) fromCache(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache entry unreadable; recomputing")
		return false
	}
	return ok
}

// usableRecommendation rejects decoded entries that could not have come from
// the engine for sc, e.g. written by an older schema.
func usableRecommendation(rec domain.PriceRecommendation, sc domain.PricingScenario) bool {
	return rec.RecommendedPrice >= sc.FloorPrice &&
		rec.RecommendedPrice <= sc.CeilingPrice &&
		len(rec.Insights) > 0
}

func usableProjection(pts []domain.ProjectionPoint, sc domain.PricingScenario) bool {
	if len(pts) != len(domain.OccupancySteps) {
		return false
	}
	for i, p := range pts {
		if p.Occupancy != domain.OccupancySteps[i] || p.Price < sc.FloorPrice || p.Price > sc.CeilingPrice {
			return false
		}
	}
	return true
}

func (s *RecommendationService) Recommend(ctx context.Context, sc domain.PricingScenario) (domain.PriceRecommendation, error) {
	if err := pricing.ValidateScenario(sc); err != nil {
		return domain.PriceRecommendation{}, err
	}
	key, err := s.key("full", sc)
	if err != nil {
		return domain.PriceRecommendation{}, err
	}
	var rec domain.PriceRecommendation
	if s.fromCache(ctx, key, &rec) && usableRecommendation(rec, sc) {
		return rec, nil
	}

	rec, err = s.engine.Recommend(s.catalog.Target, s.catalog.Competitors, sc)
	if err != nil {
		return domain.PriceRecommendation{}, err
	}
	observability.ObserveRecommendation(string(rec.Clamp), len(rec.ReferenceHotels))
	log.Debug().
		Float64("price", rec.RecommendedPrice).
		Float64("market", rec.WeightedMarketAverage).
		Str("clamp", string(rec.Clamp)).
		Int("references", len(rec.ReferenceHotels)).
		Msg("recommendation computed")

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, rec, int(s.cacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return rec, nil
}

// Projection sweeps the standard occupancy steps for sc.
func (s *RecommendationService) Projection(ctx context.Context, sc domain.PricingScenario) ([]domain.ProjectionPoint, error) {
	if err := pricing.ValidateScenario(sc); err != nil {
		return nil, err
	}
	key, err := s.key("projection", sc)
	if err != nil {
		return nil, err
	}
	var pts []domain.ProjectionPoint
	if s.fromCache(ctx, key, &pts) && usableProjection(pts, sc) {
		return pts, nil
	}

	pts, err = s.engine.Sweep(ctx, s.catalog.Target, s.catalog.Competitors, sc, domain.OccupancySteps)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, pts, int(s.cacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return pts, nil
}

// Segments aggregates the reference set of sc per category.
func (s *RecommendationService) Segments(ctx context.Context, sc domain.PricingScenario) ([]domain.Segment, error) {
	rec, err := s.Recommend(ctx, sc)
	if err != nil {
		return nil, err
	}
	return pricing.Segments(rec.ReferenceHotels), nil
}
