package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sibudis/sibudis_backend/handlers"
	"github.com/sibudis/sibudis_backend/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	users := admin.Group("/users")
	users.Get("", handlers.GetAllUsers)
	users.Put("/:userId/status", handlers.ToggleUserStatus)
	users.Post("/:userId/reset-password", handlers.AdminResetUserPassword)
	users.Delete("/:userId", handlers.AdminDeleteUser)
}
