package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sibudis/sibudis_backend/handlers"
	"github.com/sibudis/sibudis_backend/middleware"
)

func UploadRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/uploads/signature", middleware.Protected(), handlers.GenerateUploadSignature)
}
