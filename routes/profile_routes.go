package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sibudis/sibudis_backend/handlers"
	"github.com/sibudis/sibudis_backend/middleware"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile", middleware.Protected())
	profile.Get("", handlers.GetProfile)
	profile.Put("", handlers.UpdateProfile)
}
