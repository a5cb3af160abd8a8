package httpserver

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"hotel_pricing/internal/domain"
	"hotel_pricing/internal/validation"
)

// parseScenario overlays query values on DefaultScenario. Errors match
// domain.ErrInvalidInput.
func parseScenario(q url.Values) (domain.PricingScenario, error) {
	s := domain.DefaultScenario()

	num := func(key string, dst *float64) error {
		v := strings.TrimSpace(q.Get(key))
		if v == "" {
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %s must be a finite number", domain.ErrInvalidInput, key)
		}
		*dst = f
		return nil
	}

	if err := num("occupancy", &s.DesiredOccupancy); err != nil {
		return s, err
	}
	if d := q.Get("demand"); d != "" {
		lvl, err := domain.ParseDemand(d)
		if err != nil {
			return s, err
		}
		s.DemandIndex = lvl
	}
	if err := num("floor", &s.FloorPrice); err != nil {
		return s, err
	}
	if err := num("ceiling", &s.CeilingPrice); err != nil {
		return s, err
	}
	if v := q.Get("upscale"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("%w: upscale must be a boolean", domain.ErrInvalidInput)
		}
		s.IncludeUpscale = b
	}

	return s, validation.Scenario(s)
}
