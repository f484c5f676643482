package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStudentRejectsDuplicateNISN(t *testing.T) {
	db := setupTestDB(t)
	createTestStudent(t, db, "Budi Santoso", "3", "0051234567")

	_, err := CreateStudent(db, StudentInput{Name: "Budi Palsu", Class: "4", NISN: "0051234567"})
	assert.ErrorIs(t, err, ErrDuplicateNISN)
}

func TestUpdateStudentDetails(t *testing.T) {
	db := setupTestDB(t)
	first := createTestStudent(t, db, "Budi Santoso", "3", "0051234567")
	second := createTestStudent(t, db, "Siti Aminah", "3", "0059876543")

	// Keeping your own NISN is not a duplicate.
	updated, err := UpdateStudentDetails(db, first.ID, StudentInput{
		Name: "Budi S.", Class: "4", NISN: "0051234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "Budi S.", updated.Name)
	assert.Equal(t, "4", updated.Class)

	// Taking another student's NISN is.
	_, err = UpdateStudentDetails(db, second.ID, StudentInput{
		Name: "Siti Aminah", Class: "3", NISN: "0051234567",
	})
	assert.ErrorIs(t, err, ErrDuplicateNISN)
}

func TestImportStudentsStopsAtFirstFailure(t *testing.T) {
	db := setupTestDB(t)

	inputs := []StudentInput{
		{Name: "A", Class: "1", NISN: "0000000001"},
		{Name: "B", Class: "1", NISN: "0000000002"},
		{Name: "C", Class: "1", NISN: "0000000001"},
		{Name: "D", Class: "1", NISN: "0000000004"},
	}

	imported, err := ImportStudents(db, inputs)
	assert.ErrorIs(t, err, ErrDuplicateNISN)
	assert.Equal(t, 2, imported)
}
