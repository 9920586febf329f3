package models

import "time"

// Course is unique on (title, youtube_url). Deleting it removes its comments
// and ratings; deleting its category only clears CategoryID.
type Course struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:200;not null;uniqueIndex:idx_courses_title_url"`
	Description string    `gorm:"type:text;not null"`
	YoutubeURL  string    `gorm:"size:500;not null;uniqueIndex:idx_courses_title_url"`
	CategoryID  *uint     `gorm:"index"`
	Category    *Category
	CreatorID   uint      `gorm:"not null;index"`
	Creator     *User     `gorm:"foreignKey:CreatorID"`
	Comments    []Comment `gorm:"constraint:OnDelete:CASCADE"`
	Ratings     []Rating  `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
