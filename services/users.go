package services

import (
	"context"
	"strings"

	"darasa/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Profile(user *models.User) *UserOut {
	return NewUserOut(user)
}

// UpdateProfile applies full_name and bio when they are present. The
// username can't be changed here.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in ProfileInput) (*UserOut, error) {
	db := s.db.WithContext(ctx)

	var user models.User
	if err := findOne(db, &user, "User not found", userID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.FullName != nil {
		updates["full_name"] = *in.FullName
	}
	if in.Bio != nil {
		updates["bio"] = *in.Bio
	}
	if len(updates) > 0 {
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			return nil, storageError("update profile", err)
		}
		if err := db.First(&user, userID).Error; err != nil {
			return nil, storageError("reload user", err)
		}
	}
	return NewUserOut(&user), nil
}

func (s *UserService) RatingsByUser(ctx context.Context, userID uint) ([]RatingOut, error) {
	var ratings []models.Rating
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&ratings).Error; err != nil {
		return nil, storageError("list user ratings", err)
	}
	out := make([]RatingOut, 0, len(ratings))
	for i := range ratings {
		out = append(out, NewRatingOut(&ratings[i]))
	}
	return out, nil
}

// Promote sets the role of an existing user. It backs the promote command.
func (s *UserService) Promote(ctx context.Context, username, role string) (*UserOut, error) {
	role = strings.ToUpper(role)
	if role != models.RoleAdmin && role != models.RoleUser {
		return nil, Validation("Role must be ADMIN or USER")
	}

	db := s.db.WithContext(ctx)
	var user models.User
	if err := findOne(db.Where("username = ?", username), &user, "User not found"); err != nil {
		return nil, err
	}
	if err := db.Model(&user).Update("role", role).Error; err != nil {
		return nil, storageError("promote user", err)
	}
	user.Role = role

	logrus.WithFields(logrus.Fields{"username": username, "role": role}).Info("user role changed")
	return NewUserOut(&user), nil
}
