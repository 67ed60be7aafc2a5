package place

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Catalog owns the global place table. Entries are write-once: a second
// discovery of the same place id returns the existing row unchanged, and a
// lost insert race converges on the winner's row.
type Catalog struct {
	DB *gorm.DB
}

func (c *Catalog) GetOrCreate(ctx context.Context, id, name, vicinity string, types []string) (*Place, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: place id required", ErrInvalidInput)
	}

	var p Place
	err := c.DB.WithContext(ctx).First(&p, "id = ?", id).Error
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p = Place{ID: id, Name: name, Vicinity: vicinity, Types: types}
	if err := c.DB.WithContext(ctx).Create(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := c.DB.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
				return nil, err
			}
			return &p, nil
		}
		return nil, err
	}
	return &p, nil
}

func (c *Catalog) Get(ctx context.Context, id string) (*Place, error) {
	var p Place
	if err := c.DB.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: place %s", ErrNotFound, id)
		}
		return nil, err
	}
	return &p, nil
}

// Rename corrects a catalog entry's display name. Manual maintenance only;
// nothing in the normal flow calls this.
func (c *Catalog) Rename(ctx context.Context, id, name string) error {
	res := c.DB.WithContext(ctx).Model(&Place{}).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: place %s", ErrNotFound, id)
	}
	return nil
}
