package services

import (
	"path/filepath"
	"testing"

	"urban-renewal-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Customer{},
		&models.Document{},
		&models.Tender{},
		&models.PropertyValuation{},
		&models.Report{},
	)
	if err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	return db
}

// seedProject inserts a minimal project and returns it.
func seedProject(t *testing.T, db *gorm.DB, name string) models.Project {
	t.Helper()

	project := models.Project{ProjectName: name, Status: models.ProjectStatusPlanning}
	if err := NewProjectService(db).Create(&project); err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return project
}
