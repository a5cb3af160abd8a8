package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"hotel_pricing/internal/domain"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("pricectl %v: %v", args, err)
	}
	return out.String()
}

func TestRecommend_JSON(t *testing.T) {
	out := run(t, "recommend", "-o", "json", "--demand", "peak", "--upscale=false")
	var rec domain.PriceRecommendation
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if rec.RecommendedPrice < 85 || rec.RecommendedPrice > 165 {
		t.Fatalf("price %v outside default band", rec.RecommendedPrice)
	}
	if len(rec.Insights) == 0 {
		t.Fatalf("no insights")
	}
}

func TestSweep_Table(t *testing.T) {
	out := run(t, "sweep", "-o", "table", "--demand", "stable")
	if !strings.Contains(out, "OCCUPANCY") {
		t.Fatalf("missing header: %q", out)
	}
	if rows := strings.Count(out, "%"); rows != len(domain.OccupancySteps) {
		t.Fatalf("expected %d rows: %q", len(domain.OccupancySteps), out)
	}
}

func TestCatalog_JSONIsLoadable(t *testing.T) {
	out := run(t, "catalog", "-o", "json")
	if !strings.Contains(out, `"competitors"`) || !strings.Contains(out, `"croix-baragnon"`) {
		t.Fatalf("unexpected export: %q", out)
	}
}

func TestRecommend_InvalidBand(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"recommend", "-o", "json", "--floor", "200", "--ceiling", "100"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error")
	}
	// restore defaults for tests that run after this one
	run(t, "recommend", "-o", "json", "--floor", "85", "--ceiling", "165")
}

func TestRecommend_OutOfRangeInputs(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	for _, args := range [][]string{
		{"recommend", "-o", "json", "--occupancy=7", "--demand=stable"},
		{"recommend", "-o", "json", "--occupancy=0.7", "--demand=-2"},
		{"sweep", "-o", "json", "--occupancy=-0.1", "--demand=stable"},
	} {
		rootCmd.SetArgs(args)
		if err := rootCmd.Execute(); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("pricectl %v: expected ErrInvalidInput, got %v", args, err)
		}
	}
	// restore defaults for tests that run after this one
	run(t, "recommend", "-o", "json", "--occupancy=0.72", "--demand=stable")
}
