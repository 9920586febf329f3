package models

import "time"

type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	Content   string `gorm:"type:text;not null"`
	UserID    uint   `gorm:"not null;index"`
	User      *User
	CourseID  uint `gorm:"not null;index"`
	CreatedAt time.Time
}
