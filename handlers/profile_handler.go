package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sibudis/sibudis_backend/database"
	"github.com/sibudis/sibudis_backend/models"
)

// The profile payload is shaped by role instead of one struct with optional
// fields: teachers carry the class they teach, parents carry their linked
// child, admins carry neither.

type baseProfile struct {
	ID        string    `json:"id"`
	FullName  string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	AvatarURL *string   `json:"avatar_url"`
	NIP       *string   `json:"nip,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminProfile struct {
	baseProfile
}

type TeacherProfile struct {
	baseProfile
	Class string `json:"class"`
}

type StudentInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Class string `json:"class"`
	NISN  string `json:"student_id"`
}

type ParentProfile struct {
	baseProfile
	StudentInfo *StudentInfo `json:"student_info"`
}

func profileResponse(user models.User) interface{} {
	base := baseProfile{
		ID:        user.ID.String(),
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      user.Role,
		AvatarURL: user.AvatarURL,
		NIP:       user.NIP,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}

	switch user.Role {
	case models.RoleTeacher:
		profile := TeacherProfile{baseProfile: base}
		if user.Class != nil {
			profile.Class = *user.Class
		}
		return profile
	case models.RoleParent:
		profile := ParentProfile{baseProfile: base}
		var student models.Student
		if err := database.DB.Where("parent_id = ?", user.ID).First(&student).Error; err == nil {
			profile.StudentInfo = &StudentInfo{
				ID:    student.ID.String(),
				Name:  student.Name,
				Class: student.Class,
				NISN:  student.NISN,
			}
		}
		return profile
	default:
		return AdminProfile{baseProfile: base}
	}
}

func currentUser(c *fiber.Ctx) (models.User, error) {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var user models.User
	err := database.DB.Where("id = ?", userID).First(&user).Error
	return user, err
}

func GetProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(profileResponse(user))
}

type UpdateProfileRequest struct {
	FullName  *string `json:"name"`
	AvatarURL *string `json:"avatar_url"`
	NIP       *string `json:"nip"`
}

func UpdateProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	if req.NIP != nil {
		user.NIP = req.NIP
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(profileResponse(user))
}
