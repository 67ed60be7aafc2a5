package place

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resties/internal/auth"
	"resties/internal/geo"
	"resties/internal/gmaps"

	"gorm.io/gorm"
)

const metersPerMile = 1609.34
const defaultRadiusMeters = 20000

// NearbyProvider is the slice of the maps client the search needs.
type NearbyProvider interface {
	Nearby(ctx context.Context, lat, lng float64, radiusMeters int, keyword string) ([]gmaps.PlaceResult, error)
}

// Search finds nearby restaurants and marks the ones already on the
// requesting user's list. It never writes: catalog rows are only created by
// an explicit add.
type Search struct {
	DB       *gorm.DB
	Geo      *geo.Cache
	Provider NearbyProvider
	List     *List
}

type SearchInput struct {
	Term string
	// Zip overrides the user's home zip when set.
	Zip string
	// RadiusMeters wins over RadiusMiles; both zero means the default.
	RadiusMeters int
	RadiusMiles  float64
}

// Result is a transient search hit. Nothing here is persisted.
type Result struct {
	PlaceID       string   `json:"place_id"`
	Name          string   `json:"name"`
	Vicinity      string   `json:"vicinity"`
	Types         []string `json:"types"`
	Rating        *float64 `json:"rating,omitempty"`
	OpenNow       *bool    `json:"open_now,omitempty"`
	AlreadyInList bool     `json:"already_in_list"`
}

func (s *Search) Nearby(ctx context.Context, userID uint64, in SearchInput) ([]Result, error) {
	in.Term = strings.TrimSpace(in.Term)
	if in.Term == "" {
		return nil, fmt.Errorf("%w: search term required", ErrInvalidInput)
	}

	zip := in.Zip
	if zip == "" {
		var u auth.User
		if err := s.DB.WithContext(ctx).First(&u, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
			}
			return nil, err
		}
		zip = u.ZipCode
	}

	lat, lng, err := s.Geo.Resolve(ctx, zip)
	if err != nil {
		return nil, err
	}

	radius := in.RadiusMeters
	if radius <= 0 && in.RadiusMiles > 0 {
		radius = int(in.RadiusMiles * metersPerMile)
	}
	if radius <= 0 {
		radius = defaultRadiusMeters
	}

	raw, err := s.Provider.Nearby(ctx, lat, lng, radius, in.Term)
	if err != nil {
		return nil, err
	}

	saved, err := s.List.placeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]Result, 0, len(raw))
	for _, r := range raw {
		if r.Closed() {
			continue
		}
		res := Result{
			PlaceID:       r.PlaceID,
			Name:          r.Name,
			Vicinity:      r.Vicinity,
			Types:         r.Types,
			Rating:        r.Rating,
			AlreadyInList: saved[r.PlaceID],
		}
		if r.OpeningHours != nil {
			res.OpenNow = r.OpeningHours.OpenNow
		}
		out = append(out, res)
	}
	return out, nil
}
