package place

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Visits records when a user went to a place on their list.
type Visits struct {
	DB   *gorm.DB
	List *List
}

// Record adds a visit. The list entry must exist first; checking it here,
// rather than leaning on a foreign key, keeps "not on your list" distinct
// from storage faults.
func (v *Visits) Record(ctx context.Context, userID uint64, placeID string, date time.Time, comments string) (*Visit, error) {
	if _, err := v.List.Get(ctx, userID, placeID); err != nil {
		return nil, err
	}

	visit := Visit{UserID: userID, PlaceID: placeID, VisitDate: date, Comments: comments}
	if err := v.DB.WithContext(ctx).Create(&visit).Error; err != nil {
		return nil, err
	}
	return &visit, nil
}

// Edit updates a visit's date and comments. A visit owned by someone else is
// a distinct failure from one that doesn't exist.
func (v *Visits) Edit(ctx context.Context, visitID, userID uint64, date time.Time, comments string) (*Visit, error) {
	var visit Visit
	if err := v.DB.WithContext(ctx).First(&visit, "id = ?", visitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: visit %d", ErrNotFound, visitID)
		}
		return nil, err
	}
	if visit.UserID != userID {
		return nil, fmt.Errorf("%w: visit %d", ErrNotOwned, visitID)
	}

	visit.VisitDate = date
	visit.Comments = comments
	if err := v.DB.WithContext(ctx).Save(&visit).Error; err != nil {
		return nil, err
	}
	return &visit, nil
}

// ListFor returns a user's visits to one place, newest first.
func (v *Visits) ListFor(ctx context.Context, userID uint64, placeID string) ([]Visit, error) {
	var visits []Visit
	err := v.DB.WithContext(ctx).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		Order("visit_date desc, id desc").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}
