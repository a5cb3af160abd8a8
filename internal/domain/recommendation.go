package domain

type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
	ImpactNeutral  Impact = "neutral"
)

type Clamp string

const (
	ClampNone    Clamp = "none"
	ClampFloor   Clamp = "floor"
	ClampCeiling Clamp = "ceiling"
)

type Insight struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Detail string `json:"detail"`
	Impact Impact `json:"impact"`
}

// ReferenceHotel is a competitor that entered the weighted average,
// annotated with its composite weight and its share of the total.
type ReferenceHotel struct {
	Hotel
	Weight float64 `json:"weight"`
	Share  float64 `json:"share"`
}

type PriceRecommendation struct {
	RecommendedPrice      float64          `json:"recommendedPrice"`
	WeightedMarketAverage float64          `json:"weightedMarketAverage"`
	RawPrice              float64          `json:"rawPrice"`
	OccupancyAdjustment   float64          `json:"occupancyAdjustment"`
	Clamp                 Clamp            `json:"clamp"`
	Fallback              bool             `json:"fallback"`
	ReferenceHotels       []ReferenceHotel `json:"referenceHotels"`
	Insights              []Insight        `json:"insights"`
}

// ProjectionPoint is one step of an occupancy sweep.
type ProjectionPoint struct {
	Occupancy  float64 `json:"occupancy"`
	Price      float64 `json:"price"`
	RawPrice   float64 `json:"rawPrice"`
	Adjustment float64 `json:"adjustment"` // price minus weighted market average
}

// Segment aggregates the reference set per category.
type Segment struct {
	Category         Category `json:"category"`
	AverageRate      float64  `json:"averageRate"`
	AverageOccupancy float64  `json:"averageOccupancy"`
	Count            int      `json:"count"`
}
