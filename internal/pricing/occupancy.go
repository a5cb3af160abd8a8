package pricing

import (
	"fmt"
	"strings"
)

// OccupancyPolicy maps a target occupancy to a price multiplier. Policies
// must be monotonic so that an occupancy sweep yields a monotonic curve.
type OccupancyPolicy func(desiredOccupancy float64) float64

// PivotOccupancy is the target at which both policies return 1.
const PivotOccupancy = 0.70

const occupancySensitivity = 0.5

// PremiumPolicy raises the price as the occupancy target rises.
func PremiumPolicy(desired float64) float64 {
	return 1 + occupancySensitivity*(desired-PivotOccupancy)
}

// DiscountPolicy lowers the price to buy volume as the target rises.
func DiscountPolicy(desired float64) float64 {
	return 1 - occupancySensitivity*(desired-PivotOccupancy)
}

// PolicyByName resolves the OCCUPANCY_POLICY setting.
func PolicyByName(name string) (OccupancyPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "premium":
		return PremiumPolicy, nil
	case "discount":
		return DiscountPolicy, nil
	default:
		return nil, fmt.Errorf("unknown occupancy policy %q", name)
	}
}
