package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibudis/sibudis_backend/models"
)

func TestRecordTransactionEndToEnd(t *testing.T) {
	db := setupTestDB(t)
	student := createTestStudent(t, db, "Budi Santoso", "3", "0051234567")

	deposit, err := RecordTransaction(db, TransactionInput{
		StudentID:       student.ID,
		Type:            models.TransactionDeposit,
		Amount:          20000,
		Description:     "Tabungan mingguan",
		PerformedBy:     "Ibu Sari",
		PerformedByRole: models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20000), deposit.Balance)

	withdrawal, err := RecordTransaction(db, TransactionInput{
		StudentID:       student.ID,
		Type:            models.TransactionWithdrawal,
		Amount:          5000,
		Description:     "Beli buku",
		PerformedBy:     "Ibu Sari",
		PerformedByRole: models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15000), withdrawal.Balance)

	// Over-withdrawal is rejected before any write.
	_, err = RecordTransaction(db, TransactionInput{
		StudentID:       student.ID,
		Type:            models.TransactionWithdrawal,
		Amount:          20000,
		PerformedBy:     "Ibu Sari",
		PerformedByRole: models.RoleAdmin,
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	var fresh models.Student
	require.NoError(t, db.First(&fresh, "id = ?", student.ID).Error)
	assert.Equal(t, int64(15000), fresh.Balance)

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestRecordTransactionBalanceInvariant(t *testing.T) {
	db := setupTestDB(t)
	student := createTestStudent(t, db, "Siti Aminah", "4", "0059876543")

	steps := []struct {
		kind   string
		amount int64
	}{
		{models.TransactionDeposit, 10000},
		{models.TransactionDeposit, 2500},
		{models.TransactionWithdrawal, 4000},
		{models.TransactionDeposit, 100},
		{models.TransactionWithdrawal, 8600},
	}

	var expected int64
	for _, step := range steps {
		tx, err := RecordTransaction(db, TransactionInput{
			StudentID:       student.ID,
			Type:            step.kind,
			Amount:          step.amount,
			PerformedBy:     "Admin",
			PerformedByRole: models.RoleAdmin,
		})
		require.NoError(t, err)

		if step.kind == models.TransactionDeposit {
			expected += step.amount
		} else {
			expected -= step.amount
		}
		assert.Equal(t, expected, tx.Balance)
	}

	var last models.Transaction
	require.NoError(t, db.Where("student_id = ?", student.ID).Order("date desc").First(&last).Error)
	var fresh models.Student
	require.NoError(t, db.First(&fresh, "id = ?", student.ID).Error)

	assert.Equal(t, expected, last.Balance)
	assert.Equal(t, expected, fresh.Balance)
}

func TestRecordTransactionValidation(t *testing.T) {
	db := setupTestDB(t)
	student := createTestStudent(t, db, "Andi Wijaya", "5", "0112233445")

	_, err := RecordTransaction(db, TransactionInput{
		StudentID:       student.ID,
		Type:            models.TransactionDeposit,
		Amount:          0,
		PerformedByRole: models.RoleAdmin,
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = RecordTransaction(db, TransactionInput{
		StudentID:       student.ID,
		Type:            models.TransactionDeposit,
		Amount:          -500,
		PerformedByRole: models.RoleAdmin,
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = RecordTransaction(db, TransactionInput{
		StudentID:       uuid.New(),
		Type:            models.TransactionDeposit,
		Amount:          1000,
		PerformedByRole: models.RoleAdmin,
	})
	assert.ErrorIs(t, err, ErrStudentNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
	assert.Zero(t, count, "validation failures must not write ledger rows")
}

func TestRecordTransactionTeacherDepositGate(t *testing.T) {
	db := setupTestDB(t)
	student := createTestStudent(t, db, "Rina Hartati", "3", "0057001122")

	// No schedule for the class: teacher deposits always rejected.
	_, err := RecordTransaction(db, TransactionInput{
		StudentID:       student.ID,
		Type:            models.TransactionDeposit,
		Amount:          5000,
		PerformedBy:     "Pak Joko",
		PerformedByRole: models.RoleTeacher,
	})
	var gateErr *DepositNotScheduledError
	require.ErrorAs(t, err, &gateErr)
	assert.Equal(t, "3", gateErr.Class)

	// Admins bypass the gate entirely.
	_, err = RecordTransaction(db, TransactionInput{
		StudentID:       student.ID,
		Type:            models.TransactionDeposit,
		Amount:          5000,
		PerformedBy:     "Ibu Sari",
		PerformedByRole: models.RoleAdmin,
	})
	require.NoError(t, err)

	// A schedule matching today's weekday opens the gate for teachers.
	goal := models.SavingsGoal{
		ClassID:    "3",
		Type:       models.GoalTypeClass,
		GoalName:   "Tabungan Kelas 3",
		GoalAmount: 1000000,
		DayOfWeek:  WeekdayName(time.Now()),
	}
	require.NoError(t, db.Create(&goal).Error)

	tx, err := RecordTransaction(db, TransactionInput{
		StudentID:       student.ID,
		Type:            models.TransactionDeposit,
		Amount:          2000,
		PerformedBy:     "Pak Joko",
		PerformedByRole: models.RoleTeacher,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7000), tx.Balance)

	// Withdrawals are never gated, even without a schedule match.
	otherStudent := createTestStudent(t, db, "Dewi Lestari", "6", "0057009988")
	_, err = RecordTransaction(db, TransactionInput{
		StudentID:       otherStudent.ID,
		Type:            models.TransactionDeposit,
		Amount:          3000,
		PerformedBy:     "Ibu Sari",
		PerformedByRole: models.RoleAdmin,
	})
	require.NoError(t, err)
	_, err = RecordTransaction(db, TransactionInput{
		StudentID:       otherStudent.ID,
		Type:            models.TransactionWithdrawal,
		Amount:          1000,
		PerformedBy:     "Pak Joko",
		PerformedByRole: models.RoleTeacher,
	})
	require.NoError(t, err)
}

func TestResetLedger(t *testing.T) {
	db := setupTestDB(t)

	students := []models.Student{
		createTestStudent(t, db, "Budi Santoso", "3", "0051110001"),
		createTestStudent(t, db, "Siti Aminah", "4", "0051110002"),
		createTestStudent(t, db, "Andi Wijaya", "5", "0051110003"),
	}

	for i := 0; i < 10; i++ {
		_, err := RecordTransaction(db, TransactionInput{
			StudentID:       students[i%3].ID,
			Type:            models.TransactionDeposit,
			Amount:          int64(1000 * (i + 1)),
			PerformedBy:     "Ibu Sari",
			PerformedByRole: models.RoleAdmin,
		})
		require.NoError(t, err)
	}

	require.NoError(t, ResetLedger(db))

	var txCount int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&txCount).Error)
	assert.Zero(t, txCount)

	var fresh []models.Student
	require.NoError(t, db.Find(&fresh).Error)
	require.Len(t, fresh, 3)
	for _, s := range fresh {
		assert.Zero(t, s.Balance)
	}
}
