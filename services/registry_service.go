package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sibudis/sibudis_backend/models"
	"gorm.io/gorm"
)

type StudentInput struct {
	Name     string
	Class    string
	NISN     string
	ParentID *uuid.UUID
}

// CreateStudent registers a new student with a zero balance. The NISN must
// not be in use by any other student.
func CreateStudent(db *gorm.DB, input StudentInput) (models.Student, error) {
	if err := ensureNISNAvailable(db, input.NISN, uuid.Nil); err != nil {
		return models.Student{}, err
	}

	student := models.Student{
		Name:     input.Name,
		Class:    input.Class,
		NISN:     input.NISN,
		ParentID: input.ParentID,
	}
	if err := db.Create(&student).Error; err != nil {
		return models.Student{}, err
	}
	return student, nil
}

// ImportStudents bulk-creates students, stopping at the first failure and
// reporting how many rows made it in.
func ImportStudents(db *gorm.DB, inputs []StudentInput) (int, error) {
	for i, input := range inputs {
		if _, err := CreateStudent(db, input); err != nil {
			return i, err
		}
	}
	return len(inputs), nil
}

// UpdateStudentDetails edits a student's identity fields. Balance is not an
// editable field here; it only moves through the ledger.
func UpdateStudentDetails(db *gorm.DB, studentID uuid.UUID, input StudentInput) (models.Student, error) {
	var student models.Student
	if err := db.Where("id = ?", studentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Student{}, ErrStudentNotFound
		}
		return models.Student{}, err
	}

	if err := ensureNISNAvailable(db, input.NISN, student.ID); err != nil {
		return models.Student{}, err
	}

	student.Name = input.Name
	student.Class = input.Class
	student.NISN = input.NISN
	if input.ParentID != nil {
		student.ParentID = input.ParentID
	}
	if err := db.Save(&student).Error; err != nil {
		return models.Student{}, err
	}
	return student, nil
}

func ensureNISNAvailable(db *gorm.DB, nisn string, selfID uuid.UUID) error {
	var count int64
	query := db.Model(&models.Student{}).Where("student_id = ?", nisn)
	if selfID != uuid.Nil {
		query = query.Where("id <> ?", selfID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateNISN
	}
	return nil
}
