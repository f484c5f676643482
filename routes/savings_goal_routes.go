package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sibudis/sibudis_backend/handlers"
	"github.com/sibudis/sibudis_backend/middleware"
)

func SavingsGoalRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	goals := api.Group("/savings-goals", middleware.Protected())
	goals.Get("", handlers.ListSavingsGoals)
	goals.Post("", middleware.AdminRequired(), handlers.CreateSavingsGoal)
	goals.Put("/:goalId", middleware.AdminRequired(), handlers.UpdateSavingsGoal)
	goals.Delete("/:goalId", middleware.AdminRequired(), handlers.DeleteSavingsGoal)
}
