package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TransactionDeposit    = "deposit"
	TransactionWithdrawal = "withdrawal"
)

// Transaction is an immutable ledger row. Balance holds the student's total
// immediately after this transaction was applied; it is computed once at
// insertion time and never recomputed.
type Transaction struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StudentID       uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	Type            string    `gorm:"size:10;not null" json:"type"`
	Amount          int64     `gorm:"not null" json:"amount"`
	Description     string    `gorm:"type:text" json:"description"`
	PerformedBy     string    `gorm:"size:255;not null" json:"performed_by"`
	PerformedByRole string    `gorm:"size:20;not null" json:"performed_by_role"`
	Date            time.Time `gorm:"not null;index" json:"date"`
	Balance         int64     `gorm:"not null" json:"balance"`

	Student Student `gorm:"foreignkey:StudentID" json:"-"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
