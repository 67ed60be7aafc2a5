package place

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// List manages a user's entries: which catalog places they saved and the
// notes they keep on each.
type List struct {
	DB *gorm.DB
}

// Add links a place to the user's list. Unlike the shared caches, losing the
// insert race here is user-visible: the place is already on their list.
func (l *List) Add(ctx context.Context, userID uint64, placeID string) (*ListEntry, error) {
	e := ListEntry{UserID: userID, PlaceID: placeID}
	if err := l.DB.WithContext(ctx).Create(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: place %s", ErrDuplicate, placeID)
		}
		return nil, err
	}
	return &e, nil
}

func (l *List) Remove(ctx context.Context, userID uint64, placeID string) error {
	res := l.DB.WithContext(ctx).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		Delete(&ListEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: place %s", ErrNotFound, placeID)
	}
	return nil
}

func (l *List) UpdateNotes(ctx context.Context, userID uint64, placeID string, notes *string) error {
	res := l.DB.WithContext(ctx).Model(&ListEntry{}).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		Update("notes", notes)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: place %s", ErrNotFound, placeID)
	}
	return nil
}

func (l *List) Get(ctx context.Context, userID uint64, placeID string) (*ListEntry, error) {
	var e ListEntry
	err := l.DB.WithContext(ctx).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: place %s", ErrNotFound, placeID)
		}
		return nil, err
	}
	return &e, nil
}

// Entry is a saved place joined with the user's private overlay.
type Entry struct {
	Place Place
	Notes *string
}

// Places returns the user's saved places with notes, ordered by name with the
// place id as tiebreak so repeated reads come back in the same order.
func (l *List) Places(ctx context.Context, userID uint64) ([]Entry, error) {
	type row struct {
		Place
		Notes *string
	}
	var rows []row
	err := l.DB.WithContext(ctx).Model(&Place{}).
		Select("places.*, list_entries.notes").
		Joins("JOIN list_entries ON list_entries.place_id = places.id").
		Where("list_entries.user_id = ?", userID).
		Order("places.name, places.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, Entry{Place: r.Place, Notes: r.Notes})
	}
	return out, nil
}

// placeIDs returns the set of place ids on the user's list, for membership
// checks during search.
func (l *List) placeIDs(ctx context.Context, userID uint64) (map[string]bool, error) {
	var ids []string
	err := l.DB.WithContext(ctx).Model(&ListEntry{}).
		Where("user_id = ?", userID).
		Pluck("place_id", &ids).Error
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
