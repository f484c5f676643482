package services

import (
	"time"

	"github.com/sibudis/sibudis_backend/models"
)

var indonesianWeekdays = map[time.Weekday]string{
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
	time.Sunday:    "Minggu",
}

// WeekdayName returns the Indonesian day name used in savings schedules.
func WeekdayName(t time.Time) string {
	return indonesianWeekdays[t.Weekday()]
}

// IsDepositAllowed reports whether a deposit may be recorded for the given
// class on asOf. Only teachers are constrained; admins always pass. The check
// looks for a class-level schedule whose day matches asOf's weekday, so a
// class with no schedule configured never accepts teacher deposits.
// Withdrawals are never gated.
func IsDepositAllowed(goals []models.SavingsGoal, class, role string, asOf time.Time) bool {
	if role != models.RoleTeacher {
		return true
	}

	day := WeekdayName(asOf)
	for _, goal := range goals {
		if goal.Type == models.GoalTypeClass && goal.ClassID == class && goal.DayOfWeek == day {
			return true
		}
	}
	return false
}
