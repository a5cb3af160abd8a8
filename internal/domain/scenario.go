package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type PricingScenario struct {
	DesiredOccupancy float64 `json:"desiredOccupancy"`
	DemandIndex      float64 `json:"demandIndex"`
	FloorPrice       float64 `json:"floorPrice"`
	CeilingPrice     float64 `json:"ceilingPrice"`
	IncludeUpscale   bool    `json:"includeUpscale"`
}

// Demand regimes offered to operators.
const (
	DemandLow    = 0.90
	DemandStable = 1.00
	DemandPeak   = 1.12
)

// DemandLevels maps the named regimes to their index.
var DemandLevels = map[string]float64{
	"low":    DemandLow,
	"stable": DemandStable,
	"peak":   DemandPeak,
}

// OccupancySteps is the fixed sweep used to build projection curves.
var OccupancySteps = []float64{0.58, 0.62, 0.66, 0.70, 0.74, 0.78, 0.82}

func DefaultScenario() PricingScenario {
	return PricingScenario{
		DesiredOccupancy: 0.72,
		DemandIndex:      DemandStable,
		FloorPrice:       85,
		CeilingPrice:     165,
		IncludeUpscale:   false,
	}
}

// ParseDemand accepts a regime name (low, stable, peak) or a raw index.
func ParseDemand(v string) (float64, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if lvl, ok := DemandLevels[v]; ok {
		return lvl, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: demand %q must be low, stable, peak or a number", ErrInvalidInput, v)
	}
	return f, nil
}
