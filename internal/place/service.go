package place

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resties/internal/gmaps"
)

// DetailProvider is the slice of the maps client the facade needs to turn a
// bare place id into a named catalog entry.
type DetailProvider interface {
	Details(ctx context.Context, placeID string) (*gmaps.PlaceDetail, error)
}

// Service is the facade the HTTP layer talks to. Every call takes the
// authenticated user id explicitly; nothing in here reads ambient identity.
type Service struct {
	Catalog  *Catalog
	List     *List
	Visits   *Visits
	Search   *Search
	Provider DetailProvider
}

// AddPlace puts a place on the user's list, creating the shared catalog row
// first if no one has saved this place before. The add arrives with a bare
// place id, so a catalog miss costs one detail lookup to learn the name;
// a provider failure there is distinct from any persistence failure.
func (s *Service) AddPlace(ctx context.Context, userID uint64, placeID string) (*Place, error) {
	if placeID == "" {
		return nil, fmt.Errorf("%w: place id required", ErrInvalidInput)
	}

	p, err := s.Catalog.Get(ctx, placeID)
	if errors.Is(err, ErrNotFound) {
		detail, derr := s.Provider.Details(ctx, placeID)
		if derr != nil {
			return nil, derr
		}
		p, err = s.Catalog.GetOrCreate(ctx, placeID, detail.Name, detail.Vicinity, detail.Types)
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.List.Add(ctx, userID, placeID); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) RemovePlace(ctx context.Context, userID uint64, placeID string) error {
	return s.List.Remove(ctx, userID, placeID)
}

func (s *Service) EditNotes(ctx context.Context, userID uint64, placeID string, notes *string) error {
	return s.List.UpdateNotes(ctx, userID, placeID, notes)
}

func (s *Service) MyPlaces(ctx context.Context, userID uint64) ([]Entry, error) {
	return s.List.Places(ctx, userID)
}

func (s *Service) RecordVisit(ctx context.Context, userID uint64, placeID string, date time.Time, comments string) (*Visit, error) {
	return s.Visits.Record(ctx, userID, placeID, date, comments)
}

func (s *Service) EditVisit(ctx context.Context, visitID, userID uint64, date time.Time, comments string) (*Visit, error) {
	return s.Visits.Edit(ctx, visitID, userID, date, comments)
}

func (s *Service) PlaceVisits(ctx context.Context, userID uint64, placeID string) ([]Visit, error) {
	return s.Visits.ListFor(ctx, userID, placeID)
}

func (s *Service) NearbySearch(ctx context.Context, userID uint64, in SearchInput) ([]Result, error) {
	return s.Search.Nearby(ctx, userID, in)
}

// Details proxies the provider's full record for display. Read-only, nothing
// cached: the catalog keeps identity, not freshness.
func (s *Service) Details(ctx context.Context, placeID string) (*gmaps.PlaceDetail, error) {
	if placeID == "" {
		return nil, fmt.Errorf("%w: place id required", ErrInvalidInput)
	}
	return s.Provider.Details(ctx, placeID)
}
