package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sibudis/sibudis_backend/models"
	"gorm.io/gorm"
)

type TransactionInput struct {
	StudentID       uuid.UUID
	Type            string
	Amount          int64
	Description     string
	PerformedBy     string
	PerformedByRole string
}

// RecordTransaction appends a ledger row for the student and propagates the
// post-transaction balance to the student record.
//
// The ledger row and the balance update are two independent writes, on
// purpose: when the second write fails the caller receives a PersistenceError
// with Stage balance_update, meaning the ledger entry exists but the stored
// balance is stale. Nothing is rolled back or retried here.
//
// There is no optimistic concurrency on the balance read: two callers hitting
// the same student at once can both read the same starting balance and the
// later student update wins. The nightly reconcile job flags the resulting
// drift.
func RecordTransaction(db *gorm.DB, input TransactionInput) (models.Transaction, error) {
	if input.Amount <= 0 {
		return models.Transaction{}, ErrInvalidAmount
	}

	var student models.Student
	if err := db.Where("id = ?", input.StudentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Transaction{}, ErrStudentNotFound
		}
		return models.Transaction{}, err
	}

	newBalance := student.Balance
	switch input.Type {
	case models.TransactionDeposit:
		if input.PerformedByRole == models.RoleTeacher {
			var goals []models.SavingsGoal
			if err := db.Where("class_id = ?", student.Class).Find(&goals).Error; err != nil {
				return models.Transaction{}, err
			}
			if !IsDepositAllowed(goals, student.Class, input.PerformedByRole, time.Now()) {
				return models.Transaction{}, &DepositNotScheduledError{Class: student.Class}
			}
		}
		newBalance += input.Amount
	case models.TransactionWithdrawal:
		if input.Amount > student.Balance {
			return models.Transaction{}, ErrInsufficientBalance
		}
		newBalance -= input.Amount
	default:
		return models.Transaction{}, fmt.Errorf("unknown transaction type %q", input.Type)
	}

	transaction := models.Transaction{
		StudentID:       student.ID,
		Type:            input.Type,
		Amount:          input.Amount,
		Description:     input.Description,
		PerformedBy:     input.PerformedBy,
		PerformedByRole: input.PerformedByRole,
		Date:            time.Now(),
		Balance:         newBalance,
	}

	if err := db.Create(&transaction).Error; err != nil {
		return models.Transaction{}, &PersistenceError{Stage: StageTransactionInsert, Err: err}
	}

	if err := db.Model(&models.Student{}).Where("id = ?", student.ID).
		Update("balance", newBalance).Error; err != nil {
		return transaction, &PersistenceError{Stage: StageBalanceUpdate, Err: err}
	}

	return transaction, nil
}

// ResetLedger deletes every transaction and zeroes every student balance, as
// two sequential bulk operations. A failure in the second phase leaves the
// transactions already cleared; the returned PersistenceError names the phase
// that failed.
func ResetLedger(db *gorm.DB) error {
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Transaction{}).Error; err != nil {
		return &PersistenceError{Stage: StageTransactionClear, Err: err}
	}

	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&models.Student{}).Update("balance", 0).Error; err != nil {
		return &PersistenceError{Stage: StageBalanceReset, Err: err}
	}

	return nil
}
