package auth

import "time"

type User struct {
	ID           uint64    `gorm:"primaryKey"`
	UserName     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null;default:'user'"`
	ZipCode      string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null;default:now()"`
}
