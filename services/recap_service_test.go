package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibudis/sibudis_backend/models"
)

func date(day int) time.Time {
	return time.Date(2024, 3, day, 9, 0, 0, 0, time.UTC)
}

func TestSummarizeWindowDivergence(t *testing.T) {
	student := models.Student{ID: uuid.New(), Name: "Budi Santoso", Class: "3", Balance: 50000}

	transactions := []models.Transaction{
		{StudentID: student.ID, Type: models.TransactionDeposit, Amount: 30000, Date: date(1)},
		{StudentID: student.ID, Type: models.TransactionDeposit, Amount: 25000, Date: date(10)},
		{StudentID: student.ID, Type: models.TransactionWithdrawal, Amount: 5000, Date: date(11)},
	}

	from, to := date(9), date(12)
	summaries := Summarize([]models.Student{student}, transactions, RecapFilters{From: &from, To: &to})
	require.Len(t, summaries, 1)

	// The window only sees 25000 in and 5000 out, but the current balance is
	// still the registry value built from the full history.
	assert.Equal(t, int64(25000), summaries[0].TotalDeposits)
	assert.Equal(t, int64(5000), summaries[0].TotalWithdrawals)
	assert.Equal(t, int64(50000), summaries[0].CurrentBalance)
}

func TestSummarizeIdempotent(t *testing.T) {
	students := []models.Student{
		{ID: uuid.New(), Name: "Siti Aminah", Class: "4", Balance: 12000},
		{ID: uuid.New(), Name: "Andi Wijaya", Class: "3", Balance: 8000},
	}
	transactions := []models.Transaction{
		{StudentID: students[0].ID, Type: models.TransactionDeposit, Amount: 12000, Date: date(2)},
		{StudentID: students[1].ID, Type: models.TransactionDeposit, Amount: 8000, Date: date(3)},
	}

	first := Summarize(students, transactions, RecapFilters{})
	second := Summarize(students, transactions, RecapFilters{})
	assert.Equal(t, first, second)
}

func TestSummarizeFiltersAndOrder(t *testing.T) {
	students := []models.Student{
		{ID: uuid.New(), Name: "Citra Dewi", Class: "3", Balance: 1000},
		{ID: uuid.New(), Name: "Agus Salim", Class: "3", Balance: 2000},
		{ID: uuid.New(), Name: "Bambang Tri", Class: "4", Balance: 3000},
	}

	summaries := Summarize(students, nil, RecapFilters{Class: "3"})
	require.Len(t, summaries, 2)
	assert.Equal(t, "Agus Salim", summaries[0].Student.Name)
	assert.Equal(t, "Citra Dewi", summaries[1].Student.Name)

	summaries = Summarize(students, nil, RecapFilters{Search: "bam"})
	require.Len(t, summaries, 1)
	assert.Equal(t, "Bambang Tri", summaries[0].Student.Name)
}

func TestRecapTotals(t *testing.T) {
	summaries := []StudentSummary{
		{TotalDeposits: 10000, TotalWithdrawals: 2000},
		{TotalDeposits: 5000, TotalWithdrawals: 1000},
	}
	deposits, withdrawals, net := RecapTotals(summaries)
	assert.Equal(t, int64(15000), deposits)
	assert.Equal(t, int64(3000), withdrawals)
	assert.Equal(t, int64(12000), net)
}
