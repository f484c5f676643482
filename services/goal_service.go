package services

import (
	"github.com/sibudis/sibudis_backend/models"
)

type GoalProgress struct {
	models.SavingsGoal
	CurrentSavedAmount int64  `json:"current_saved_amount"`
	Status             string `json:"status"`
}

// CalculateGoalProgress derives the saved amount and status of a class goal
// from live student balances. Completed when the class total reaches the
// target, behind when it is under 80% of it, on-track otherwise. Neither
// value is ever persisted.
func CalculateGoalProgress(goal models.SavingsGoal, students []models.Student) GoalProgress {
	var saved int64
	for _, s := range students {
		if s.Class == goal.ClassID {
			saved += s.Balance
		}
	}

	status := models.GoalStatusOnTrack
	switch {
	case saved >= goal.GoalAmount:
		status = models.GoalStatusCompleted
	case saved < goal.GoalAmount*8/10:
		status = models.GoalStatusBehind
	}

	return GoalProgress{SavingsGoal: goal, CurrentSavedAmount: saved, Status: status}
}
