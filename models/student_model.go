package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name  string    `gorm:"size:255;not null" json:"name"`
	Class string    `gorm:"size:20;not null" json:"class"`

	// NISN, the national 10-digit student number. Stored in the student_id
	// column and used for parent-account linking.
	NISN string `gorm:"column:student_id;size:10;not null;unique" json:"student_id"`

	ParentID *uuid.UUID `gorm:"type:uuid" json:"parent_id"`

	// Balance is mutated only through the ledger, never edited directly.
	// Integer rupiah, always equal to the balance snapshot of the student's
	// most recent transaction (0 when there is none).
	Balance int64 `gorm:"not null;default:0" json:"balance"`

	CreatedAt time.Time `json:"created_at"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
