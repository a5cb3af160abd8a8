//go:build integration

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"hotel_pricing/internal/app"
	"hotel_pricing/internal/catalog"
	"hotel_pricing/internal/domain"
	mysqlrepo "hotel_pricing/internal/storage/mysql"
)

// ---------- small helpers ----------

func migrationsDir(t *testing.T) string {
	t.Helper()
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return filepath.Join("..", "..", "..", "migrations")
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := migrationsDir(t)

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir %s: %v", dir, err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=pricing",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "pricing")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// ---------- the test ----------

func TestRepo_MySQL_SeedAndRead(t *testing.T) {
	db := startMySQL(t)
	applyMigrations(t, db)

	repo := mysqlrepo.New(db)
	ctx := context.Background()

	if _, err := repo.GetTarget(ctx); err != domain.ErrNotFound {
		t.Fatalf("empty table should report ErrNotFound, got %v", err)
	}

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	if err := repo.UpsertHotel(ctx, cat.Target, domain.RoleTarget, 0); err != nil {
		t.Fatalf("UpsertHotel target: %v", err)
	}
	// write competitors in reverse to prove ordering comes from position
	for i := len(cat.Competitors) - 1; i >= 0; i-- {
		if err := repo.UpsertHotel(ctx, cat.Competitors[i], domain.RoleCompetitor, i); err != nil {
			t.Fatalf("UpsertHotel %s: %v", cat.Competitors[i].ID, err)
		}
	}

	target, err := repo.GetTarget(ctx)
	if err != nil {
		t.Fatalf("GetTarget: %v", err)
	}
	if target.ID != cat.Target.ID || target.AverageDailyRate != cat.Target.AverageDailyRate {
		t.Fatalf("unexpected target: %+v", target)
	}
	if target.LastUpdated == nil || !target.LastUpdated.Equal(*cat.Target.LastUpdated) {
		t.Fatalf("lastUpdated lost: %v", target.LastUpdated)
	}

	comps, err := repo.ListCompetitors(ctx)
	if err != nil {
		t.Fatalf("ListCompetitors: %v", err)
	}
	if len(comps) != len(cat.Competitors) {
		t.Fatalf("got %d competitors, want %d", len(comps), len(cat.Competitors))
	}
	for i, h := range comps {
		if h.ID != cat.Competitors[i].ID {
			t.Fatalf("order mismatch at %d: %s vs %s", i, h.ID, cat.Competitors[i].ID)
		}
		if h.OccupancyRate != cat.Competitors[i].OccupancyRate || h.Category != cat.Competitors[i].Category {
			t.Fatalf("row %s differs: %+v", h.ID, h)
		}
	}

	// upsert is idempotent
	if err := repo.UpsertHotel(ctx, cat.Competitors[0], domain.RoleCompetitor, 0); err != nil {
		t.Fatalf("re-upsert: %v", err)
	}
	again, _ := repo.ListCompetitors(ctx)
	if len(again) != len(comps) {
		t.Fatalf("re-upsert duplicated rows")
	}
}

func TestRepo_MySQL_ReseedSmallerCatalog(t *testing.T) {
	db := startMySQL(t)
	applyMigrations(t, db)
	ctx := context.Background()

	full, err := catalog.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	// promote a competitor to target and drop the rest of the set
	smaller, err := catalog.Versioned(domain.Catalog{
		Target:      full.Competitors[0],
		Competitors: append([]domain.Hotel(nil), full.Competitors[2:5]...),
	})
	if err != nil {
		t.Fatalf("version: %v", err)
	}

	repo := mysqlrepo.New(db)
	seeder := app.NewSeedService(repo, nil)
	if _, err := seeder.Seed(ctx, full, 3); err != nil {
		t.Fatalf("seed full: %v", err)
	}
	rep, err := seeder.Seed(ctx, smaller, 3)
	if err != nil {
		t.Fatalf("seed smaller: %v", err)
	}
	if want := 1 + len(full.Competitors) - 4; rep.Pruned != want {
		t.Fatalf("pruned %d rows, want %d", rep.Pruned, want)
	}

	loaded, err := app.LoadFromRepository(ctx, repo)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Target.ID != smaller.Target.ID || len(loaded.Competitors) != len(smaller.Competitors) {
		t.Fatalf("stale rows survived: target %s, %d competitors", loaded.Target.ID, len(loaded.Competitors))
	}
	for i, h := range loaded.Competitors {
		if h.ID != smaller.Competitors[i].ID {
			t.Fatalf("order mismatch at %d: %s vs %s", i, h.ID, smaller.Competitors[i].ID)
		}
	}
	if loaded.Version != smaller.Version {
		t.Fatalf("stored catalog differs from seeded one: %s vs %s", loaded.Version, smaller.Version)
	}
}
