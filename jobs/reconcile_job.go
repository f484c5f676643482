package jobs

import (
	"errors"
	"log"

	"github.com/sibudis/sibudis_backend/database"
	"github.com/sibudis/sibudis_backend/models"
	"gorm.io/gorm"
)

// ReconcileBalances compares every student's stored balance against the
// balance snapshot of their most recent transaction. The two can drift when a
// ledger insert succeeded but the balance propagation failed, or when two
// sessions raced on the same student. The job only reports; fixing a
// mismatch is a manual administrative action.
func ReconcileBalances() {
	log.Println("Running job: ReconcileBalances...")

	var students []models.Student
	if err := database.DB.Find(&students).Error; err != nil {
		log.Printf("Error loading students for reconciliation: %v", err)
		return
	}

	mismatches := 0
	for _, student := range students {
		var last models.Transaction
		err := database.DB.Where("student_id = ?", student.ID).
			Order("date desc").First(&last).Error

		expected := int64(0)
		if err == nil {
			expected = last.Balance
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error loading transactions for student %s: %v", student.ID, err)
			continue
		}

		if student.Balance != expected {
			mismatches++
			log.Printf("⚠️ Balance mismatch for student %s (%s): stored %d, ledger snapshot %d",
				student.ID, student.Name, student.Balance, expected)
		}
	}

	if mismatches == 0 {
		log.Println("All student balances match their ledger snapshots.")
		return
	}
	log.Printf("Found %d student balance mismatch(es) needing manual reconciliation.", mismatches)
}
