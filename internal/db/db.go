package db

import (
	"fmt"

	"resties/internal/auth"
	"resties/internal/geo"
	"resties/internal/place"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the store with error translation on, so unique-constraint
// violations come back as gorm.ErrDuplicatedKey. The get-or-create caches and
// the duplicate-link check both key off that error.
func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&auth.User{},
		&geo.ZipGeocode{},
		&place.Place{},
		&place.ListEntry{},
		&place.Visit{},
	); err != nil {
		return err
	}

	// zip_geocodes and places are keyed by their natural ids, list_entries by
	// the composite (user_id, place_id); those primary keys are the uniqueness
	// constraints the core relies on. The rest are lookup helpers.
	stmts := []string{
		`create index if not exists idx_list_entries_user on list_entries(user_id, created_at desc);`,
		`create index if not exists idx_visits_user_place on visits(user_id, place_id, visit_date desc);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
