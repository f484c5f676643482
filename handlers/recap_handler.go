package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/sibudis/sibudis_backend/configs"
	"github.com/sibudis/sibudis_backend/database"
	"github.com/sibudis/sibudis_backend/models"
	"github.com/sibudis/sibudis_backend/services"
)

// recapScope resolves the caller's filters against their role: teachers are
// pinned to their own class no matter what they ask for.
func recapScope(c *fiber.Ctx, user models.User) (services.RecapFilters, error) {
	filters := services.RecapFilters{
		Class:  c.Query("class"),
		Search: c.Query("search"),
	}

	if user.Role == models.RoleTeacher {
		if user.Class == nil {
			return filters, fmt.Errorf("teacher account has no class assigned")
		}
		filters.Class = *user.Class
	}

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filters, fmt.Errorf("invalid 'from' date, expected YYYY-MM-DD")
		}
		filters.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filters, fmt.Errorf("invalid 'to' date, expected YYYY-MM-DD")
		}
		// Inclusive end of day.
		end := to.Add(24*time.Hour - time.Nanosecond)
		filters.To = &end
	}

	return filters, nil
}

func loadRecapData(filters services.RecapFilters) ([]services.StudentSummary, error) {
	var students []models.Student
	if err := database.DB.Find(&students).Error; err != nil {
		return nil, err
	}
	var transactions []models.Transaction
	if err := database.DB.Find(&transactions).Error; err != nil {
		return nil, err
	}
	return services.Summarize(students, transactions, filters), nil
}

func GetRecap(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	filters, err := recapScope(c, user)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	summaries, err := loadRecapData(filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	totalDeposits, totalWithdrawals, net := services.RecapTotals(summaries)
	return c.JSON(fiber.Map{
		"summaries":         summaries,
		"total_deposits":    totalDeposits,
		"total_withdrawals": totalWithdrawals,
		"net_amount":        net,
	})
}

// ExportRecapPDF renders the recapitulation as a printable PDF download.
func ExportRecapPDF(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	filters, err := recapScope(c, user)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	summaries, err := loadRecapData(filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	totalDeposits, totalWithdrawals, net := services.RecapTotals(summaries)

	dateLabel := time.Now().Format("2 January 2006")
	if filters.From != nil && filters.To != nil {
		dateLabel = fmt.Sprintf("%s - %s", filters.From.Format("2 January 2006"), filters.To.Format("2 January 2006"))
	}

	pdfBytes, err := services.GenerateRecapPDF(services.RecapReportData{
		Title:            "Rekapitulasi Tabungan Siswa",
		SchoolName:       config.Config("SCHOOL_NAME"),
		ClassLabel:       filters.Class,
		DateLabel:        dateLabel,
		Summaries:        summaries,
		TotalDeposits:    totalDeposits,
		TotalWithdrawals: totalWithdrawals,
		NetAmount:        net,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate PDF report"})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="rekapitulasi.pdf"`)
	return c.Send(pdfBytes)
}

// GetDashboardStats backs the landing-page stat cards.
func GetDashboardStats(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	studentQuery := database.DB.Model(&models.Student{})
	if user.Role == models.RoleTeacher && user.Class != nil {
		studentQuery = studentQuery.Where("class = ?", *user.Class)
	}

	var studentCount int64
	if err := studentQuery.Count(&studentCount).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var totalBalance int64
	balanceQuery := database.DB.Model(&models.Student{}).Select("COALESCE(SUM(balance), 0)")
	if user.Role == models.RoleTeacher && user.Class != nil {
		balanceQuery = balanceQuery.Where("class = ?", *user.Class)
	}
	if err := balanceQuery.Scan(&totalBalance).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	startOfDay := time.Now().Truncate(24 * time.Hour)
	var todayDeposits, todayWithdrawals int64
	database.DB.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("type = ? AND date >= ?", models.TransactionDeposit, startOfDay).
		Scan(&todayDeposits)
	database.DB.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("type = ? AND date >= ?", models.TransactionWithdrawal, startOfDay).
		Scan(&todayWithdrawals)

	return c.JSON(fiber.Map{
		"total_students":    studentCount,
		"total_balance":     totalBalance,
		"today_deposits":    todayDeposits,
		"today_withdrawals": todayWithdrawals,
	})
}
