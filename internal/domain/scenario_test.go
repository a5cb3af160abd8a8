package domain_test

import (
	"errors"
	"testing"

	"hotel_pricing/internal/domain"
)

func TestParseDemand(t *testing.T) {
	cases := map[string]float64{
		"low":    domain.DemandLow,
		"Stable": domain.DemandStable,
		" peak ": domain.DemandPeak,
		"1.05":   1.05,
	}
	for in, want := range cases {
		got, err := domain.ParseDemand(in)
		if err != nil || got != want {
			t.Errorf("ParseDemand(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	for _, in := range []string{"", "frenzy", "NaN", "+Inf"} {
		if _, err := domain.ParseDemand(in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("ParseDemand(%q): expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestDefaultScenario(t *testing.T) {
	s := domain.DefaultScenario()
	if s.DesiredOccupancy != 0.72 || s.DemandIndex != domain.DemandStable || s.FloorPrice != 85 || s.CeilingPrice != 165 || s.IncludeUpscale {
		t.Fatalf("unexpected default: %+v", s)
	}
}
