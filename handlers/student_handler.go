package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sibudis/sibudis_backend/database"
	"github.com/sibudis/sibudis_backend/models"
	"github.com/sibudis/sibudis_backend/services"
	"github.com/sibudis/sibudis_backend/websocket"
)

type StudentRequest struct {
	Name     string  `json:"name" validate:"required,min=2"`
	Class    string  `json:"class" validate:"required"`
	NISN     string  `json:"student_id" validate:"required,len=10,numeric"`
	ParentID *string `json:"parent_id"`
}

func (r StudentRequest) toInput() (services.StudentInput, error) {
	input := services.StudentInput{Name: r.Name, Class: r.Class, NISN: r.NISN}
	if r.ParentID != nil && *r.ParentID != "" {
		parentID, err := uuid.Parse(*r.ParentID)
		if err != nil {
			return input, errors.New("invalid parent id")
		}
		input.ParentID = &parentID
	}
	return input, nil
}

// ListStudents is role-scoped: admins see everything, teachers their own
// class, parents only their linked child.
func ListStudents(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	query := database.DB.Order("name asc")
	switch user.Role {
	case models.RoleTeacher:
		if user.Class == nil {
			return c.JSON([]models.Student{})
		}
		query = query.Where("class = ?", *user.Class)
	case models.RoleParent:
		query = query.Where("parent_id = ?", user.ID)
	}

	var students []models.Student
	if err := query.Find(&students).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(students)
}

func CreateStudent(c *fiber.Ctx) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	input, err := req.toInput()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	student, err := services.CreateStudent(database.DB, input)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateNISN) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Another student already uses this NISN"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create student"})
	}

	websocket.NotifyChange("students", websocket.EventInsert, student.ID.String())
	return c.Status(fiber.StatusCreated).JSON(student)
}

type ImportStudentsRequest struct {
	Students []StudentRequest `json:"students" validate:"required,min=1,dive"`
}

func ImportStudents(c *fiber.Ctx) error {
	var req ImportStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	inputs := make([]services.StudentInput, 0, len(req.Students))
	for _, r := range req.Students {
		input, err := r.toInput()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		inputs = append(inputs, input)
	}

	imported, err := services.ImportStudents(database.DB, inputs)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateNISN) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":    "Import stopped at a duplicate NISN",
				"imported": imported,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":    "Import failed",
			"imported": imported,
		})
	}

	websocket.NotifyChange("students", websocket.EventInsert, "")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"imported": imported})
}

func UpdateStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	input, err := req.toInput()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	student, err := services.UpdateStudentDetails(database.DB, studentID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStudentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
		case errors.Is(err, services.ErrDuplicateNISN):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Another student already uses this NISN"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update student"})
	}

	websocket.NotifyChange("students", websocket.EventUpdate, student.ID.String())
	return c.JSON(student)
}

func DeleteStudent(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	result := database.DB.Delete(&models.Student{}, "id = ?", studentID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	websocket.NotifyChange("students", websocket.EventDelete, studentID)
	return c.SendStatus(fiber.StatusNoContent)
}
