package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sibudis/sibudis_backend/database"
	"github.com/sibudis/sibudis_backend/models"
	"github.com/sibudis/sibudis_backend/services"
	"github.com/sibudis/sibudis_backend/websocket"
)

type SavingsGoalRequest struct {
	ClassID    string `json:"class_id" validate:"required"`
	GoalName   string `json:"goal_name" validate:"required,min=3"`
	GoalAmount int64  `json:"goal_amount" validate:"required,gt=0"`
	TargetDate string `json:"target_date" validate:"required,datetime=2006-01-02"`
	DayOfWeek  string `json:"day_of_week" validate:"required,oneof=Senin Selasa Rabu Kamis Jumat Sabtu Minggu"`
}

// ListSavingsGoals returns every schedule with progress derived from live
// balances. Teachers only see their own class; parents the classes of their
// child.
func ListSavingsGoals(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	query := database.DB.Order("class_id asc")
	switch user.Role {
	case models.RoleTeacher:
		if user.Class == nil {
			return c.JSON([]services.GoalProgress{})
		}
		query = query.Where("class_id = ?", *user.Class)
	case models.RoleParent:
		query = query.Where("class_id IN (?)",
			database.DB.Model(&models.Student{}).Select("class").Where("parent_id = ?", user.ID))
	}

	var goals []models.SavingsGoal
	if err := query.Find(&goals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var students []models.Student
	if err := database.DB.Find(&students).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	progress := make([]services.GoalProgress, 0, len(goals))
	for _, goal := range goals {
		progress = append(progress, services.CalculateGoalProgress(goal, students))
	}
	return c.JSON(progress)
}

func CreateSavingsGoal(c *fiber.Ctx) error {
	var req SavingsGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	targetDate, _ := time.Parse("2006-01-02", req.TargetDate)
	goal := models.SavingsGoal{
		ClassID:    req.ClassID,
		Type:       models.GoalTypeClass,
		GoalName:   req.GoalName,
		GoalAmount: req.GoalAmount,
		TargetDate: targetDate,
		DayOfWeek:  req.DayOfWeek,
	}
	if err := database.DB.Create(&goal).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create savings goal"})
	}

	websocket.NotifyChange("savings_goals", websocket.EventInsert, goal.ID.String())
	return c.Status(fiber.StatusCreated).JSON(goal)
}

func UpdateSavingsGoal(c *fiber.Ctx) error {
	goalID := c.Params("goalId")

	var goal models.SavingsGoal
	if err := database.DB.Where("id = ?", goalID).First(&goal).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Savings goal not found"})
	}

	var req SavingsGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	targetDate, _ := time.Parse("2006-01-02", req.TargetDate)
	goal.ClassID = req.ClassID
	goal.GoalName = req.GoalName
	goal.GoalAmount = req.GoalAmount
	goal.TargetDate = targetDate
	goal.DayOfWeek = req.DayOfWeek

	if err := database.DB.Save(&goal).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update savings goal"})
	}

	websocket.NotifyChange("savings_goals", websocket.EventUpdate, goal.ID.String())
	return c.JSON(goal)
}

func DeleteSavingsGoal(c *fiber.Ctx) error {
	goalID := c.Params("goalId")

	result := database.DB.Delete(&models.SavingsGoal{}, "id = ?", goalID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete savings goal"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Savings goal not found"})
	}

	websocket.NotifyChange("savings_goals", websocket.EventDelete, goalID)
	return c.SendStatus(fiber.StatusNoContent)
}
