package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sibudis/sibudis_backend/handlers"
	"github.com/sibudis/sibudis_backend/middleware"
)

func StudentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	students := api.Group("/students", middleware.Protected())
	students.Get("", handlers.ListStudents)
	students.Post("", middleware.StaffRequired(), handlers.CreateStudent)
	students.Post("/import", middleware.StaffRequired(), handlers.ImportStudents)
	students.Put("/:studentId", middleware.AdminRequired(), handlers.UpdateStudent)
	students.Delete("/:studentId", middleware.AdminRequired(), handlers.DeleteStudent)
}
