package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GoalTypeClass = "class"

	GoalStatusOnTrack   = "on-track"
	GoalStatusBehind    = "behind"
	GoalStatusCompleted = "completed"
)

// SavingsGoal is a per-class savings schedule: deposits for the class are only
// accepted on DayOfWeek (Indonesian day name). Progress and status are derived
// at read time from live student balances and are never stored.
type SavingsGoal struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClassID    string    `gorm:"size:20;not null" json:"class_id"`
	Type       string    `gorm:"size:10;not null;default:'class'" json:"type"`
	GoalName   string    `gorm:"size:255;not null" json:"goal_name"`
	GoalAmount int64     `gorm:"not null" json:"goal_amount"`
	TargetDate time.Time `json:"target_date"`
	DayOfWeek  string    `gorm:"size:10;not null" json:"day_of_week"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *SavingsGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
