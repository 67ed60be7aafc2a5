package place

import (
	"time"

	"github.com/lib/pq"
)

// Place is a catalog entry shared by everyone, keyed by the provider's
// place id. Created at most once, regardless of who discovers it first.
type Place struct {
	ID        string         `gorm:"primaryKey"`
	Name      string         `gorm:"not null"`
	Vicinity  string         `gorm:"not null;default:''"`
	Types     pq.StringArray `gorm:"type:text[]"`
	CreatedAt time.Time      `gorm:"not null;default:now()"`
}

// ListEntry ties a user to a catalog place and carries their private notes.
// The composite primary key is the at-most-one-link-per-pair invariant.
type ListEntry struct {
	UserID    uint64    `gorm:"primaryKey;autoIncrement:false"`
	PlaceID   string    `gorm:"primaryKey"`
	Notes     *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
}

// Visit is a dated record of a user having been to a place on their list.
type Visit struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"index;not null"`
	PlaceID   string    `gorm:"index;not null"`
	VisitDate time.Time `gorm:"not null"`
	Comments  string    `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
}
