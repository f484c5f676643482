package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sibudis/sibudis_backend/database"
	"github.com/sibudis/sibudis_backend/models"
	"github.com/sibudis/sibudis_backend/services"
	"github.com/sibudis/sibudis_backend/websocket"
)

type TransactionRequest struct {
	StudentID   string `json:"student_id" validate:"required,uuid"`
	Type        string `json:"type" validate:"required,oneof=deposit withdrawal"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Description string `json:"description" validate:"required"`
}

func CreateTransaction(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}

	// Teachers may only move money for students in their own class.
	if user.Role == models.RoleTeacher {
		var student models.Student
		if err := database.DB.Where("id = ?", studentID).First(&student).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found for this transaction"})
		}
		if user.Class == nil || student.Class != *user.Class {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only record transactions for your own class"})
		}
	}

	transaction, err := services.RecordTransaction(database.DB, services.TransactionInput{
		StudentID:       studentID,
		Type:            req.Type,
		Amount:          req.Amount,
		Description:     req.Description,
		PerformedBy:     user.FullName,
		PerformedByRole: user.Role,
	})
	if err != nil {
		return transactionErrorResponse(c, err)
	}

	websocket.NotifyChange("transactions", websocket.EventInsert, transaction.ID.String())
	websocket.NotifyChange("students", websocket.EventUpdate, transaction.StudentID.String())

	return c.Status(fiber.StatusCreated).JSON(transaction)
}

// transactionErrorResponse maps every ledger failure to a distinct,
// actionable message. The balance_update stage matters most: the ledger row
// was written, so "nothing happened" would be the wrong thing to tell the
// caller.
func transactionErrorResponse(c *fiber.Ctx, err error) error {
	var gateErr *services.DepositNotScheduledError
	var persistErr *services.PersistenceError

	switch {
	case errors.Is(err, services.ErrStudentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found for this transaction"})
	case errors.Is(err, services.ErrInvalidAmount):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Amount must be a positive number"})
	case errors.Is(err, services.ErrInsufficientBalance):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Withdrawal amount exceeds the student's balance"})
	case errors.As(err, &gateErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": gateErr.Error()})
	case errors.As(err, &persistErr):
		if persistErr.Stage == services.StageBalanceUpdate {
			log.Printf("🔥 Ledger row saved but balance update failed: %v", persistErr)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Transaction was saved, but updating the student's balance failed; the balance needs manual reconciliation",
				"stage": persistErr.Stage,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save the transaction; nothing was recorded",
			"stage": persistErr.Stage,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record transaction"})
}

// ListTransactions is role-scoped the same way as ListStudents.
func ListTransactions(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	query := database.DB.Order("date desc")
	switch user.Role {
	case models.RoleTeacher:
		if user.Class == nil {
			return c.JSON([]models.Transaction{})
		}
		query = query.Where("student_id IN (?)",
			database.DB.Model(&models.Student{}).Select("id").Where("class = ?", *user.Class))
	case models.RoleParent:
		query = query.Where("student_id IN (?)",
			database.DB.Model(&models.Student{}).Select("id").Where("parent_id = ?", user.ID))
	}

	if studentID := c.Query("studentId"); studentID != "" {
		query = query.Where("student_id = ?", studentID)
	}

	var transactions []models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(transactions)
}

// ResetTransactions clears the whole ledger and zeroes every balance. The two
// phases are not atomic; a partial failure names the phase that broke.
func ResetTransactions(c *fiber.Ctx) error {
	if err := services.ResetLedger(database.DB); err != nil {
		var persistErr *services.PersistenceError
		if errors.As(err, &persistErr) {
			message := "Failed to clear the transaction history; nothing was reset"
			if persistErr.Stage == services.StageBalanceReset {
				message = "Transaction history was cleared, but resetting student balances failed"
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": message,
				"stage": persistErr.Stage,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reset the ledger"})
	}

	websocket.NotifyChange("transactions", websocket.EventDelete, "")
	websocket.NotifyChange("students", websocket.EventUpdate, "")

	return c.JSON(fiber.Map{"message": "Transaction history has been reset and all balances set to zero"})
}
