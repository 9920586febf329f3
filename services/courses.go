package services

import (
	"context"
	"errors"
	"strings"

	"darasa/models"
	"darasa/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	courseNotFound = "Course not found"
	courseExists   = "Course with this title and video URL already exists."
)

// DefaultPageSize applies when a list query names no page size.
const DefaultPageSize = 10

type CourseService struct {
	db *gorm.DB
	// enforceCategory looks a category up before a course references it.
	enforceCategory bool
}

func NewCourseService(db *gorm.DB, enforceCategory bool) *CourseService {
	return &CourseService{db: db, enforceCategory: enforceCategory}
}

// Create adds a course owned by creatorID.
func (s *CourseService) Create(ctx context.Context, creatorID uint, in CourseInput) (*CourseOut, error) {
	db := s.db.WithContext(ctx)

	if err := s.checkCategory(db, in.CategoryID); err != nil {
		return nil, err
	}
	if err := ensureCourseUnique(db, in.Title, in.YoutubeURL, 0); err != nil {
		return nil, err
	}

	course := models.Course{
		Title:       in.Title,
		Description: in.Description,
		YoutubeURL:  in.YoutubeURL,
		CategoryID:  in.CategoryID,
		CreatorID:   creatorID,
	}
	if err := db.Omit(clause.Associations).Create(&course).Error; err != nil {
		return nil, courseWriteError("create course", err)
	}

	logrus.WithFields(logrus.Fields{"course_id": course.ID, "creator_id": creatorID}).Info("course created")
	return s.Get(ctx, course.ID)
}

// List returns one page of courses ordered by id, optionally filtered by a
// case-insensitive title search and a category.
func (s *CourseService) List(ctx context.Context, q CourseListQuery) ([]CourseOut, error) {
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	db := withCourseRelations(s.db.WithContext(ctx).Model(&models.Course{}))

	if search := strings.TrimSpace(q.Search); search != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if q.CategoryID != nil {
		db = db.Where("category_id = ?", *q.CategoryID)
	}

	var courses []models.Course
	err := db.Order("id").
		Offset(utils.Offset(q.Page, q.PageSize)).
		Limit(q.PageSize).
		Find(&courses).Error
	if err != nil {
		return nil, storageError("list courses", err)
	}

	out := make([]CourseOut, 0, len(courses))
	for i := range courses {
		out = append(out, NewCourseOut(&courses[i]))
	}
	return out, nil
}

func (s *CourseService) Get(ctx context.Context, id uint) (*CourseOut, error) {
	var course models.Course
	if err := findOne(withCourseRelations(s.db.WithContext(ctx)), &course, courseNotFound, id); err != nil {
		return nil, err
	}
	out := NewCourseOut(&course)
	return &out, nil
}

// Update replaces a course's fields. Only the creator may edit it.
func (s *CourseService) Update(ctx context.Context, userID, id uint, in CourseInput) (*CourseOut, error) {
	db := s.db.WithContext(ctx)

	var course models.Course
	if err := findOne(db, &course, courseNotFound, id); err != nil {
		return nil, err
	}
	if err := CheckOwnership(course.CreatorID, userID, "edit", "course"); err != nil {
		return nil, err
	}
	if err := s.checkCategory(db, in.CategoryID); err != nil {
		return nil, err
	}
	if err := ensureCourseUnique(db, in.Title, in.YoutubeURL, id); err != nil {
		return nil, err
	}

	err := db.Model(&course).Select("title", "description", "youtube_url", "category_id").Updates(models.Course{
		Title:       in.Title,
		Description: in.Description,
		YoutubeURL:  in.YoutubeURL,
		CategoryID:  in.CategoryID,
	}).Error
	if err != nil {
		return nil, courseWriteError("update course", err)
	}
	return s.Get(ctx, id)
}

// Delete removes a course together with its comments and ratings. Only the
// creator may delete it.
func (s *CourseService) Delete(ctx context.Context, userID, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := findOne(tx, &course, courseNotFound, id); err != nil {
			return err
		}
		if err := CheckOwnership(course.CreatorID, userID, "delete", "course"); err != nil {
			return err
		}

		// Remove dependent comments and ratings first
		if err := tx.Where("course_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return storageError("delete course comments", err)
		}
		if err := tx.Where("course_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return storageError("delete course ratings", err)
		}
		if err := tx.Delete(&course).Error; err != nil {
			return storageError("delete course", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"course_id": id, "user_id": userID}).Info("course deleted")
	return nil
}

func (s *CourseService) checkCategory(db *gorm.DB, categoryID *uint) error {
	if categoryID == nil || !s.enforceCategory {
		return nil
	}
	return findOne(db.Select("id"), &models.Category{}, categoryNotFound, *categoryID)
}

func ensureCourseUnique(db *gorm.DB, title, url string, exceptID uint) error {
	q := db.Model(&models.Course{}).Where("title = ? AND youtube_url = ?", title, url)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return storageError("count courses", err)
	}
	if count > 0 {
		logrus.WithField("title", title).Warn("duplicate course rejected")
		return Conflict(courseExists)
	}
	return nil
}

// courseWriteError also covers the unchecked-category policy, where an
// unknown category is only caught by the foreign key.
func courseWriteError(op string, err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return NotFound(categoryNotFound)
	}
	return writeError(op, err, courseExists)
}

func withCourseRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Creator").Preload("Category")
}

// requireCourse fails with NotFound unless a course with id exists.
func requireCourse(db *gorm.DB, id uint) error {
	return findOne(db.Select("id"), &models.Course{}, courseNotFound, id)
}
