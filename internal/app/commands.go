package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_pricing/internal/adapters/observability"
	"hotel_pricing/internal/catalog"
	"hotel_pricing/internal/domain"
)

type SeedService struct {
	repo  domain.CatalogRepository
	cache domain.Cache
}

// NewSeedService writes catalogs into repo. cache may be nil.
func NewSeedService(r domain.CatalogRepository, cache domain.Cache) *SeedService {
	return &SeedService{repo: r, cache: cache}
}

type SeedReport struct {
	Written int
	Failed  int
	Pruned  int
	Evicted int
}

// Seed upserts the target and every competitor with at most `workers`
// writes in flight, deletes hotels the catalog no longer lists, then evicts
// cached recommendations computed from the previous catalog. Failures are
// joined; successful rows stay written.
func (s *SeedService) Seed(ctx context.Context, cat domain.Catalog, workers int) (SeedReport, error) {
	if workers <= 0 {
		workers = 1
	}
	var rep SeedReport

	// 1) target first so the catalog is never read without one
	if err := s.repo.UpsertHotel(ctx, cat.Target, domain.RoleTarget, 0); err != nil {
		observability.ObserveSeed(false)
		return rep, fmt.Errorf("upsert target %s: %w", cat.Target.ID, err)
	}
	observability.ObserveSeed(true)
	rep.Written++

	// 2) competitors, bounded
	sem := semaphore.NewWeighted(int64(workers))
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i, h := range cat.Competitors {
		i, h := i, h // per-iteration copy (pre-Go 1.22 loop semantics)
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
			break
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			err := s.repo.UpsertHotel(ctx, h, domain.RoleCompetitor, i)
			observability.ObserveSeed(err == nil)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				rep.Failed++
				errs = append(errs, fmt.Errorf("upsert competitor %s: %w", h.ID, err))
				log.Warn().Str("id", h.ID).Err(err).Msg("seed failed")
				return
			}
			rep.Written++
			log.Debug().Str("id", h.ID).Msg("seed ok")
		}()
	}
	wg.Wait()

	// 3) drop hotels the new catalog no longer lists; ids that failed to
	// write are kept so their previous rows survive
	keep := make([]string, 0, len(cat.Competitors)+1)
	keep = append(keep, cat.Target.ID)
	for _, h := range cat.Competitors {
		keep = append(keep, h.ID)
	}
	n, err := s.repo.DeleteExcept(ctx, keep)
	if err != nil {
		errs = append(errs, fmt.Errorf("prune stale hotels: %w", err))
	}
	rep.Pruned = n

	// 4) evict even on partial failure: some rows changed
	if s.cache != nil {
		n, err := s.cache.DelPrefix(ctx, CachePrefix)
		if err != nil {
			errs = append(errs, fmt.Errorf("evict cache: %w", err))
		}
		rep.Evicted = n
	}
	return rep, errors.Join(errs...)
}

// LoadFromRepository assembles a versioned catalog from storage.
func LoadFromRepository(ctx context.Context, repo domain.CatalogRepository) (domain.Catalog, error) {
	target, err := repo.GetTarget(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load target hotel: %w", err)
	}
	comps, err := repo.ListCompetitors(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load competitors: %w", err)
	}
	return catalog.Versioned(domain.Catalog{Target: target, Competitors: comps})
}
