package services

import (
	"fmt"
	"testing"

	"github.com/gfmartins/fintrack/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.RevokedToken{},
		&models.PasswordResetToken{},
		&models.Profile{},
		&models.UserProfile{},
		&models.Category{},
		&models.Transaction{},
		&models.Budget{},
		&models.PurchaseGoal{},
		&models.SavingsTransaction{},
		&models.Investment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
