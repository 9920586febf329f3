package models

// Rating holds one score per (user, course); rating again overwrites Value.
type Rating struct {
	ID       uint `gorm:"primaryKey"`
	Value    int  `gorm:"not null;check:chk_ratings_value,value >= 1 AND value <= 5"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_ratings_user_course"`
	User     *User
	CourseID uint `gorm:"not null;uniqueIndex:idx_ratings_user_course"`
}
