package geo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"resties/internal/gmaps"

	"gorm.io/gorm"
)

var ErrInvalidZip = errors.New("zip code must be exactly 5 digits")
var ErrUnknownZip = errors.New("zip code could not be resolved")
var ErrAmbiguousZip = errors.New("zip code resolved to more than one location")

var zipRe = regexp.MustCompile(`^[0-9]{5}$`)

func ValidZip(zip string) bool {
	return zipRe.MatchString(zip)
}

// ZipGeocode caches the coordinates of a zip code. Rows are shared by all
// users and never updated once written.
type ZipGeocode struct {
	Zip       string    `gorm:"primaryKey"`
	Lat       float64   `gorm:"not null"`
	Lng       float64   `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
}

// Geocoder is the slice of the provider client the cache needs.
type Geocoder interface {
	Geocode(ctx context.Context, address string) ([]gmaps.LatLng, error)
}

type Cache struct {
	DB       *gorm.DB
	Geocoder Geocoder
}

// Resolve returns the coordinates for a zip code, hitting the provider only
// on a cache miss. Exactly one geocode candidate is expected for a valid
// zip: zero means the zip doesn't resolve, more than one means the provider
// gave an ambiguous answer and we refuse to guess.
func (c *Cache) Resolve(ctx context.Context, zip string) (lat, lng float64, err error) {
	if !ValidZip(zip) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidZip, zip)
	}

	var row ZipGeocode
	err = c.DB.WithContext(ctx).First(&row, "zip = ?", zip).Error
	if err == nil {
		return row.Lat, row.Lng, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, 0, err
	}

	candidates, err := c.Geocoder.Geocode(ctx, zip)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case len(candidates) == 0:
		return 0, 0, fmt.Errorf("%w: %s", ErrUnknownZip, zip)
	case len(candidates) > 1:
		return 0, 0, fmt.Errorf("%w: %s", ErrAmbiguousZip, zip)
	}

	row = ZipGeocode{Zip: zip, Lat: candidates[0].Lat, Lng: candidates[0].Lng}
	if err := c.DB.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// a concurrent resolve won the insert; their row is the truth
			if err := c.DB.WithContext(ctx).First(&row, "zip = ?", zip).Error; err != nil {
				return 0, 0, err
			}
			return row.Lat, row.Lng, nil
		}
		return 0, 0, err
	}
	return row.Lat, row.Lng, nil
}

// Prime warms the cache for a zip code, swallowing nothing: callers that
// treat a warm-up as best effort decide what to do with the error.
func (c *Cache) Prime(ctx context.Context, zip string) error {
	_, _, err := c.Resolve(ctx, zip)
	return err
}
