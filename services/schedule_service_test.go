package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sibudis/sibudis_backend/models"
)

func TestWeekdayName(t *testing.T) {
	monday := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "Senin", WeekdayName(monday))
	assert.Equal(t, "Selasa", WeekdayName(monday.AddDate(0, 0, 1)))
	assert.Equal(t, "Rabu", WeekdayName(monday.AddDate(0, 0, 2)))
	assert.Equal(t, "Kamis", WeekdayName(monday.AddDate(0, 0, 3)))
	assert.Equal(t, "Jumat", WeekdayName(monday.AddDate(0, 0, 4)))
	assert.Equal(t, "Sabtu", WeekdayName(monday.AddDate(0, 0, 5)))
	assert.Equal(t, "Minggu", WeekdayName(monday.AddDate(0, 0, 6)))
}

func TestIsDepositAllowed(t *testing.T) {
	goals := []models.SavingsGoal{
		{ClassID: "3", Type: models.GoalTypeClass, DayOfWeek: "Senin"},
	}

	monday := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	assert.True(t, IsDepositAllowed(goals, "3", models.RoleTeacher, monday))
	assert.False(t, IsDepositAllowed(goals, "3", models.RoleTeacher, tuesday))

	// Admins bypass the gate regardless of schedule or date.
	assert.True(t, IsDepositAllowed(goals, "3", models.RoleAdmin, tuesday))
	assert.True(t, IsDepositAllowed(nil, "3", models.RoleAdmin, tuesday))

	// A class with no schedule never accepts teacher deposits.
	assert.False(t, IsDepositAllowed(goals, "4", models.RoleTeacher, monday))
	assert.False(t, IsDepositAllowed(nil, "3", models.RoleTeacher, monday))
}
