package shared_test

import (
	"testing"
	"time"

	"hotel_pricing/internal/shared"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("CACHE_TTL_SECONDS", "")
	c := shared.Load()
	if c.CatalogSource != "embedded" || c.OccupancyPolicy != "premium" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.CacheTTL != 15*time.Minute {
		t.Fatalf("cache ttl = %s", c.CacheTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "mysql")
	t.Setenv("SEED_WORKERS", "9")
	t.Setenv("RATE_LIMIT_RPS", "not-a-number")
	c := shared.Load()
	if c.CatalogSource != "mysql" || c.SeedWorkers != 9 {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.RateLimitRPS != 50 {
		t.Fatalf("bad integer should fall back to default, got %d", c.RateLimitRPS)
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	type s struct{ A, B float64 }
	a, err := shared.Fingerprint(s{1, 2})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	b, _ := shared.Fingerprint(s{1, 2})
	c, _ := shared.Fingerprint(s{2, 1})
	if a != b || a == c {
		t.Fatalf("fingerprints: %s %s %s", a, b, c)
	}
}
