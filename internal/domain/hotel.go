package domain

import "time"

type Category string

const (
	CategoryEconomy  Category = "economy"
	CategoryMidscale Category = "midscale"
	CategoryUpscale  Category = "upscale"
	CategoryBoutique Category = "boutique"
)

// Hotel is a catalog entry. The same shape describes the target hotel
// (DistanceMeters is 0 and LastUpdated is set) and its competitors.
type Hotel struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Address          string     `json:"address"`
	Category         Category   `json:"category"`
	StarRating       float64    `json:"starRating"`
	AverageDailyRate float64    `json:"averageDailyRate"`
	OccupancyRate    float64    `json:"occupancyRate"`
	ReviewScore      float64    `json:"reviewScore"`
	DistanceMeters   float64    `json:"distanceMeters"`
	LastUpdated      *time.Time `json:"lastUpdated,omitempty"`
}

// Catalog is loaded once at startup and never mutated afterwards.
type Catalog struct {
	Target      Hotel   `json:"target"`
	Competitors []Hotel `json:"competitors"`
	Version     string  `json:"version"`
}
