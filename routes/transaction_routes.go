package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sibudis/sibudis_backend/handlers"
	"github.com/sibudis/sibudis_backend/middleware"
)

func TransactionRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	transactions := api.Group("/transactions", middleware.Protected())
	transactions.Get("", handlers.ListTransactions)
	transactions.Post("", middleware.StaffRequired(), handlers.CreateTransaction)
	transactions.Delete("", middleware.AdminRequired(), handlers.ResetTransactions)
}
