package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sibudis/sibudis_backend/models"
)

func TestCalculateGoalProgress(t *testing.T) {
	goal := models.SavingsGoal{ClassID: "3", Type: models.GoalTypeClass, GoalAmount: 100000}

	students := []models.Student{
		{Class: "3", Balance: 30000},
		{Class: "3", Balance: 40000},
		{Class: "4", Balance: 999999},
	}

	progress := CalculateGoalProgress(goal, students)
	assert.Equal(t, int64(70000), progress.CurrentSavedAmount)
	assert.Equal(t, models.GoalStatusBehind, progress.Status)

	students[0].Balance = 45000
	progress = CalculateGoalProgress(goal, students)
	assert.Equal(t, int64(85000), progress.CurrentSavedAmount)
	assert.Equal(t, models.GoalStatusOnTrack, progress.Status)

	students[1].Balance = 60000
	progress = CalculateGoalProgress(goal, students)
	assert.Equal(t, int64(105000), progress.CurrentSavedAmount)
	assert.Equal(t, models.GoalStatusCompleted, progress.Status)
}

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 0", FormatRupiah(0))
	assert.Equal(t, "Rp 500", FormatRupiah(500))
	assert.Equal(t, "Rp 1.500.000", FormatRupiah(1500000))
	assert.Equal(t, "-Rp 20.000", FormatRupiah(-20000))
}
