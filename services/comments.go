package services

import (
	"context"

	"darasa/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const commentNotFound = "Comment not found"

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

func (s *CommentService) Add(ctx context.Context, userID, courseID uint, in CommentInput) (*CommentOut, error) {
	db := s.db.WithContext(ctx)
	if err := requireCourse(db, courseID); err != nil {
		return nil, err
	}

	comment := models.Comment{Content: in.Content, UserID: userID, CourseID: courseID}
	if err := db.Omit("User").Create(&comment).Error; err != nil {
		return nil, storageError("create comment", err)
	}

	logrus.WithFields(logrus.Fields{"comment_id": comment.ID, "course_id": courseID}).Debug("comment added")
	out := NewCommentOut(&comment)
	return &out, nil
}

// List returns the comments of a course, oldest first.
func (s *CommentService) List(ctx context.Context, courseID uint) ([]CommentOut, error) {
	var comments []models.Comment
	if err := s.db.WithContext(ctx).Where("course_id = ?", courseID).Order("id").Find(&comments).Error; err != nil {
		return nil, storageError("list comments", err)
	}
	out := make([]CommentOut, 0, len(comments))
	for i := range comments {
		out = append(out, NewCommentOut(&comments[i]))
	}
	return out, nil
}

func (s *CommentService) Get(ctx context.Context, courseID, commentID uint) (*CommentOut, error) {
	comment, err := s.find(s.db.WithContext(ctx), courseID, commentID)
	if err != nil {
		return nil, err
	}
	out := NewCommentOut(comment)
	return &out, nil
}

// Edit replaces the content of a comment. Only its author may edit it.
func (s *CommentService) Edit(ctx context.Context, userID, courseID, commentID uint, in CommentInput) (*CommentOut, error) {
	db := s.db.WithContext(ctx)
	comment, err := s.find(db, courseID, commentID)
	if err != nil {
		return nil, err
	}
	if err := CheckOwnership(comment.UserID, userID, "edit", "comment"); err != nil {
		return nil, err
	}

	if err := db.Model(comment).Update("content", in.Content).Error; err != nil {
		return nil, storageError("update comment", err)
	}
	comment.Content = in.Content
	out := NewCommentOut(comment)
	return &out, nil
}

func (s *CommentService) Delete(ctx context.Context, userID, courseID, commentID uint) error {
	db := s.db.WithContext(ctx)
	comment, err := s.find(db, courseID, commentID)
	if err != nil {
		return err
	}
	if err := CheckOwnership(comment.UserID, userID, "delete", "comment"); err != nil {
		return err
	}
	if err := db.Delete(comment).Error; err != nil {
		return storageError("delete comment", err)
	}
	return nil
}

// find looks a comment up by id within the course named in the path.
func (s *CommentService) find(db *gorm.DB, courseID, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	if err := findOne(db.Where("course_id = ?", courseID), &comment, commentNotFound, commentID); err != nil {
		return nil, err
	}
	return &comment, nil
}
