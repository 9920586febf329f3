package services

import (
	"context"
	"errors"

	"darasa/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	ratingNotFound = "Rating not found"
	ratingConflict = "Rating is being updated concurrently, try again."
)

type RatingService struct {
	db *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{db: db}
}

// Rate records the user's score for a course. A user holds at most one rating
// per course, so rating again overwrites the value and keeps the id.
func (s *RatingService) Rate(ctx context.Context, userID, courseID uint, in RatingInput) (*RatingOut, error) {
	out, err := s.upsert(ctx, userID, courseID, in.Value)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// a concurrent first rating won the insert; the retry updates it
		out, err = s.upsert(ctx, userID, courseID, in.Value)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		logrus.WithFields(logrus.Fields{"course_id": courseID, "user_id": userID}).Warn("rating retry lost the race again")
		return nil, Conflict(ratingConflict)
	}
	if err != nil {
		return nil, storageError("rate course", err)
	}
	return out, nil
}

func (s *RatingService) upsert(ctx context.Context, userID, courseID uint, value int) (*RatingOut, error) {
	var out RatingOut
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireCourse(tx, courseID); err != nil {
			return err
		}

		// Look up the caller's existing rating for this course
		var rating models.Rating
		err := tx.Where("user_id = ? AND course_id = ?", userID, courseID).First(&rating).Error
		switch {
		case err == nil:
			// Overwrite the value, keep the id
			if err := tx.Model(&rating).Update("value", value).Error; err != nil {
				return err
			}
			rating.Value = value
		case errors.Is(err, gorm.ErrRecordNotFound):
			// First rating from this user
			rating = models.Rating{Value: value, UserID: userID, CourseID: courseID}
			if err := tx.Omit("User").Create(&rating).Error; err != nil {
				return err
			}
		default:
			return err
		}

		out = NewRatingOut(&rating)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"rating_id": out.ID, "course_id": courseID, "user_id": userID}).Debug("course rated")
	return &out, nil
}

func (s *RatingService) List(ctx context.Context, courseID uint) ([]RatingOut, error) {
	var ratings []models.Rating
	if err := s.db.WithContext(ctx).Where("course_id = ?", courseID).Order("id").Find(&ratings).Error; err != nil {
		return nil, storageError("list ratings", err)
	}
	out := make([]RatingOut, 0, len(ratings))
	for i := range ratings {
		out = append(out, NewRatingOut(&ratings[i]))
	}
	return out, nil
}

// Delete removes a rating. Only its author may delete it.
func (s *RatingService) Delete(ctx context.Context, userID, courseID, ratingID uint) error {
	db := s.db.WithContext(ctx)

	var rating models.Rating
	if err := findOne(db.Where("course_id = ?", courseID), &rating, ratingNotFound, ratingID); err != nil {
		return err
	}
	if err := CheckOwnership(rating.UserID, userID, "delete", "rating"); err != nil {
		return err
	}
	if err := db.Delete(&rating).Error; err != nil {
		return storageError("delete rating", err)
	}
	return nil
}
