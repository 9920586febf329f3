package models

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type User struct {
	ID             uint   `gorm:"primaryKey"`
	Username       string `gorm:"size:50;uniqueIndex;not null"`
	HashedPassword string `gorm:"not null"`
	FullName       *string
	Bio            *string
	Role           string `gorm:"size:10;not null;default:'USER'"` // USER, ADMIN
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsAdmin reports whether the user carries the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
