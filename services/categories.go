package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"darasa/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	categoryNotFound = "Category not found"
	categoryExists   = "Category with this name already exists."
)

// CategoryService manages categories. Any authenticated caller may change
// any category; there is no per-category owner.
type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*CategoryOut, error) {
	var out CategoryOut
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureCategoryNameFree(tx, in.Name, 0); err != nil {
			return err
		}

		category := models.Category{Name: in.Name, Description: in.Description}
		if err := tx.Omit(clause.Associations).Create(&category).Error; err != nil {
			return writeError("create category", err, categoryExists)
		}
		if err := attachCourses(tx, category.ID, in.CourseIDs); err != nil {
			return err
		}

		loaded, err := loadCategory(tx, category.ID, false)
		if err != nil {
			return err
		}
		out = NewCategoryOut(loaded)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"category_id": out.ID, "name": out.Name}).Info("category created")
	return &out, nil
}

func (s *CategoryService) List(ctx context.Context) ([]CategoryOut, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).
		Preload("Courses", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "category_id").Order("id")
		}).
		Order("id").
		Find(&categories).Error
	if err != nil {
		return nil, storageError("list categories", err)
	}

	out := make([]CategoryOut, 0, len(categories))
	for i := range categories {
		out = append(out, NewCategoryOut(&categories[i]))
	}
	return out, nil
}

// Get returns the category with its courses expanded.
func (s *CategoryService) Get(ctx context.Context, id uint) (*CategoryDetailOut, error) {
	category, err := loadCategory(s.db.WithContext(ctx), id, true)
	if err != nil {
		return nil, err
	}
	out := NewCategoryDetailOut(category)
	return &out, nil
}

// Update applies a partial change. Course links are added and removed in the
// same transaction as the rename.
func (s *CategoryService) Update(ctx context.Context, id uint, in CategoryUpdateInput) (*CategoryOut, error) {
	var out CategoryOut
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := findOne(tx, &category, categoryNotFound, id); err != nil {
			return err
		}

		// Collect changed fields; a rename must not collide
		updates := map[string]interface{}{}
		if in.Name != nil && *in.Name != category.Name {
			if err := ensureCategoryNameFree(tx, *in.Name, id); err != nil {
				return err
			}
			updates["name"] = *in.Name
		}
		if in.Description != nil {
			updates["description"] = *in.Description
		}
		if len(updates) > 0 {
			if err := tx.Model(&category).Updates(updates).Error; err != nil {
				return writeError("update category", err, categoryExists)
			}
		}

		// Reassign courses
		if err := attachCourses(tx, id, in.AddCourseIDs); err != nil {
			return err
		}
		if len(in.RemoveCourseIDs) > 0 {
			err := tx.Model(&models.Course{}).
				Where("id IN ? AND category_id = ?", in.RemoveCourseIDs, id).
				Update("category_id", gorm.Expr("NULL")).Error
			if err != nil {
				return storageError("detach courses", err)
			}
		}

		// Reload with the current course ids
		loaded, err := loadCategory(tx, id, false)
		if err != nil {
			return err
		}
		out = NewCategoryOut(loaded)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the category and leaves its courses uncategorized.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := findOne(tx, &category, categoryNotFound, id); err != nil {
			return err
		}
		err := tx.Model(&models.Course{}).
			Where("category_id = ?", id).
			Update("category_id", gorm.Expr("NULL")).Error
		if err != nil {
			return storageError("detach courses", err)
		}
		if err := tx.Delete(&category).Error; err != nil {
			return storageError("delete category", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("category_id", id).Info("category deleted")
	return nil
}

func ensureCategoryNameFree(tx *gorm.DB, name string, exceptID uint) error {
	q := tx.Model(&models.Category{}).Where("name = ?", name)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return storageError("count categories", err)
	}
	if count > 0 {
		logrus.WithField("name", name).Warn("category name already taken")
		return Conflict(categoryExists)
	}
	return nil
}

// attachCourses points every listed course at categoryID. It fails without
// writing anything if any id is unknown.
func attachCourses(tx *gorm.DB, categoryID uint, courseIDs []uint) error {
	if len(courseIDs) == 0 {
		return nil
	}
	if err := ensureCoursesExist(tx, courseIDs); err != nil {
		return err
	}
	err := tx.Model(&models.Course{}).
		Where("id IN ?", courseIDs).
		Update("category_id", categoryID).Error
	if err != nil {
		return storageError("attach courses", err)
	}
	return nil
}

func ensureCoursesExist(tx *gorm.DB, ids []uint) error {
	var found []uint
	if err := tx.Model(&models.Course{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return storageError("find courses", err)
	}

	present := make(map[uint]bool, len(found))
	for _, id := range found {
		present[id] = true
	}
	var missing []uint
	for _, id := range ids {
		if !present[id] {
			missing = append(missing, id)
			present[id] = true
		}
	}
	if len(missing) == 0 {
		return nil
	}

	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	parts := make([]string, len(missing))
	for i, id := range missing {
		parts[i] = fmt.Sprint(id)
	}
	return NotFound("Courses not found: " + strings.Join(parts, ", "))
}

func loadCategory(tx *gorm.DB, id uint, withCourseDetail bool) (*models.Category, error) {
	q := tx.Preload("Courses", func(db *gorm.DB) *gorm.DB { return db.Order("id") })
	if withCourseDetail {
		q = q.Preload("Courses.Creator")
	}
	var category models.Category
	if err := findOne(q, &category, categoryNotFound, id); err != nil {
		return nil, err
	}
	return &category, nil
}
