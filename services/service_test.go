package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sibudis/sibudis_backend/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Transaction{},
		&models.SavingsGoal{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func createTestStudent(t *testing.T, db *gorm.DB, name, class, nisn string) models.Student {
	t.Helper()

	student, err := CreateStudent(db, StudentInput{Name: name, Class: class, NISN: nisn})
	require.NoError(t, err)
	return student
}
