package services

import (
	"sort"
	"strings"
	"time"

	"github.com/sibudis/sibudis_backend/models"
)

type RecapFilters struct {
	From   *time.Time
	To     *time.Time
	Class  string
	Search string
}

type StudentSummary struct {
	Student          models.Student `json:"student"`
	TotalDeposits    int64          `json:"total_deposits"`
	TotalWithdrawals int64          `json:"total_withdrawals"`
	CurrentBalance   int64          `json:"current_balance"`
}

// Summarize aggregates transactions per student for the recapitulation view.
// Totals cover only the filtered window, while CurrentBalance is the
// student's live registry balance. The two can legitimately disagree when the
// window does not span the student's full history; that is how the report is
// defined, not a discrepancy to reconcile.
func Summarize(students []models.Student, transactions []models.Transaction, filters RecapFilters) []StudentSummary {
	scoped := make([]models.Student, 0, len(students))
	for _, s := range students {
		if filters.Class != "" && s.Class != filters.Class {
			continue
		}
		if filters.Search != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(filters.Search)) {
			continue
		}
		scoped = append(scoped, s)
	}

	sort.Slice(scoped, func(i, j int) bool {
		return scoped[i].Name < scoped[j].Name
	})

	deposits := make(map[string]int64)
	withdrawals := make(map[string]int64)
	for _, t := range transactions {
		if filters.From != nil && t.Date.Before(*filters.From) {
			continue
		}
		if filters.To != nil && t.Date.After(*filters.To) {
			continue
		}
		switch t.Type {
		case models.TransactionDeposit:
			deposits[t.StudentID.String()] += t.Amount
		case models.TransactionWithdrawal:
			withdrawals[t.StudentID.String()] += t.Amount
		}
	}

	summaries := make([]StudentSummary, 0, len(scoped))
	for _, s := range scoped {
		summaries = append(summaries, StudentSummary{
			Student:          s,
			TotalDeposits:    deposits[s.ID.String()],
			TotalWithdrawals: withdrawals[s.ID.String()],
			CurrentBalance:   s.Balance,
		})
	}
	return summaries
}

// RecapTotals sums a slice of summaries for the report header line.
func RecapTotals(summaries []StudentSummary) (totalDeposits, totalWithdrawals, net int64) {
	for _, s := range summaries {
		totalDeposits += s.TotalDeposits
		totalWithdrawals += s.TotalWithdrawals
	}
	return totalDeposits, totalWithdrawals, totalDeposits - totalWithdrawals
}
