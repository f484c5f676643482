package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sibudis/sibudis_backend/database"
	"github.com/sibudis/sibudis_backend/models"
	"github.com/sibudis/sibudis_backend/notifications"
	"github.com/sibudis/sibudis_backend/utils"
	"golang.org/x/crypto/bcrypt"
)

func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("created_at desc").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	profiles := make([]interface{}, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, profileResponse(user))
	}
	return c.JSON(profiles)
}

func ToggleUserStatus(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	if user.Role == models.RoleAdmin {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Admin accounts cannot be deactivated"})
	}

	user.IsActive = !user.IsActive
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user status"})
	}

	return c.JSON(profileResponse(user))
}

func AdminDeleteUser(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	if user.Role == models.RoleAdmin {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Admin accounts cannot be deleted"})
	}

	// Unlink any student pointing at a deleted parent before removing the
	// account.
	if user.Role == models.RoleParent {
		if err := database.DB.Model(&models.Student{}).
			Where("parent_id = ?", user.ID).
			Update("parent_id", nil).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to unlink student"})
		}
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// AdminResetUserPassword provisions a new temporary password for an account
// and emails it to the owner.
func AdminResetUserPassword(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	temporaryPassword := utils.GenerateTemporaryPassword()
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user.Password = string(hashedPassword)
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reset password"})
	}

	go notifications.SendEmail(
		user.FullName,
		user.Email,
		"Kata Sandi Sementara SIBUDIS",
		"<h1>Kata Sandi Baru</h1><p>Administrator telah mengatur ulang kata sandi Anda. Kata sandi sementara: <b>"+temporaryPassword+"</b></p><p>Segera ganti setelah masuk.</p>",
	)

	return c.JSON(fiber.Map{"message": "A temporary password has been emailed to the user"})
}
