package services

import (
	"errors"
	"fmt"
)

var (
	ErrStudentNotFound     = errors.New("student not found")
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrInsufficientBalance = errors.New("withdrawal amount exceeds student balance")
	ErrDuplicateNISN       = errors.New("another student already uses this NISN")
)

// DepositNotScheduledError rejects a teacher deposit recorded outside the
// class's scheduled savings day.
type DepositNotScheduledError struct {
	Class string
}

func (e *DepositNotScheduledError) Error() string {
	return fmt.Sprintf("deposits for class %s can only be made on the day scheduled by the admin", e.Class)
}

const (
	StageTransactionInsert = "transaction_insert"
	StageBalanceUpdate     = "balance_update"
	StageTransactionClear  = "transaction_clear"
	StageBalanceReset      = "balance_reset"
)

// PersistenceError wraps a failed write and names which step of a multi-write
// operation it was. After StageBalanceUpdate the ledger row exists but the
// student's stored balance is stale, which needs manual reconciliation.
type PersistenceError struct {
	Stage string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure at %s: %v", e.Stage, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
