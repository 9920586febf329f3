package database

import (
	"fmt"

	"darasa/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Registry lists every persisted model in dependency order: a model only
// references models that appear before it.
func Registry() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Category{},
		&models.Course{},
		&models.Comment{},
		&models.Rating{},
	}
}

// RunMigrations performs database migrations for every registered model.
func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running Migrations...")

	for _, model := range Registry() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}

	logrus.Info("Migrations completed successfully.")
	return nil
}
