// Package catalog decodes and validates hotel catalogs. The default Toulouse
// catalog is embedded in the binary.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"

	"hotel_pricing/internal/domain"
	"hotel_pricing/internal/shared"
	"hotel_pricing/internal/validation"
)

//go:embed hotels.json
var defaultCatalog []byte

const dateLayout = "2006-01-02"

// Record is the on-disk shape of a hotel.
type Record struct {
	ID               string  `json:"id" validate:"required"`
	Name             string  `json:"name" validate:"required"`
	Address          string  `json:"address"`
	Category         string  `json:"category" validate:"required"`
	StarRating       float64 `json:"starRating" validate:"gte=1,lte=5"`
	AverageDailyRate float64 `json:"averageDailyRate" validate:"gt=0"`
	OccupancyRate    float64 `json:"occupancyRate" validate:"gte=0,lte=1"`
	ReviewScore      float64 `json:"reviewScore" validate:"gte=0,lte=5"`
	DistanceMeters   float64 `json:"distanceMeters" validate:"gte=0"`
	LastUpdated      string  `json:"lastUpdated,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type File struct {
	Target      Record   `json:"target" validate:"required"`
	Competitors []Record `json:"competitors" validate:"dive"`
}

func (r Record) toDomain() domain.Hotel {
	h := domain.Hotel{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		Category:         domain.Category(r.Category),
		StarRating:       r.StarRating,
		AverageDailyRate: r.AverageDailyRate,
		OccupancyRate:    r.OccupancyRate,
		ReviewScore:      r.ReviewScore,
		DistanceMeters:   r.DistanceMeters,
	}
	if r.LastUpdated != "" {
		// format already checked by the validator
		if t, err := time.Parse(dateLayout, r.LastUpdated); err == nil {
			h.LastUpdated = &t
		}
	}
	return h
}

// FromHotel is the inverse of the decoding step; used when exporting.
func FromHotel(h domain.Hotel) Record {
	r := Record{
		ID:               h.ID,
		Name:             h.Name,
		Address:          h.Address,
		Category:         string(h.Category),
		StarRating:       h.StarRating,
		AverageDailyRate: h.AverageDailyRate,
		OccupancyRate:    h.OccupancyRate,
		ReviewScore:      h.ReviewScore,
		DistanceMeters:   h.DistanceMeters,
	}
	if h.LastUpdated != nil {
		r.LastUpdated = h.LastUpdated.Format(dateLayout)
	}
	return r
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (domain.Catalog, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return domain.Catalog{}, fmt.Errorf("%w: decode catalog: %v", domain.ErrInvalidInput, err)
	}
	if err := validation.Struct(f); err != nil {
		return domain.Catalog{}, fmt.Errorf("catalog: %w", err)
	}

	seen := map[string]bool{f.Target.ID: true}
	cat := domain.Catalog{
		Target:      f.Target.toDomain(),
		Competitors: make([]domain.Hotel, 0, len(f.Competitors)),
	}
	for _, r := range f.Competitors {
		if seen[r.ID] {
			return domain.Catalog{}, fmt.Errorf("%w: duplicate hotel id %q", domain.ErrInvalidInput, r.ID)
		}
		seen[r.ID] = true
		cat.Competitors = append(cat.Competitors, r.toDomain())
	}
	return Versioned(cat)
}

// Versioned stamps c with a fingerprint of its content.
func Versioned(c domain.Catalog) (domain.Catalog, error) {
	c.Version = ""
	v, err := shared.Fingerprint(c)
	if err != nil {
		return domain.Catalog{}, err
	}
	c.Version = v
	return c, nil
}

// Default returns the embedded catalog.
func Default() (domain.Catalog, error) {
	return Parse(defaultCatalog)
}

// LoadFile reads a catalog document from disk.
func LoadFile(path string) (domain.Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, err
	}
	return Parse(b)
}

// ToFile converts c back into its on-disk document.
func ToFile(c domain.Catalog) File {
	f := File{
		Target:      FromHotel(c.Target),
		Competitors: make([]Record, 0, len(c.Competitors)),
	}
	for _, h := range c.Competitors {
		f.Competitors = append(f.Competitors, FromHotel(h))
	}
	return f
}
