package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sibudis/sibudis_backend/handlers"
	"github.com/sibudis/sibudis_backend/middleware"
)

func ReportRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	reports := api.Group("/reports", middleware.Protected())
	reports.Get("/dashboard", handlers.GetDashboardStats)
	reports.Get("/recap", middleware.StaffRequired(), handlers.GetRecap)
	reports.Get("/recap/pdf", middleware.StaffRequired(), handlers.ExportRecapPDF)
}
