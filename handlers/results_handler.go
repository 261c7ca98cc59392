package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/omarashraf/quiz_platform/database"
	"github.com/omarashraf/quiz_platform/models"
)

func MyResults(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if userID == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var results []models.QuizResult
	err := database.DB.
		Where("user_id = ? AND status = ?", userID, models.AttemptCompleted).
		Order("started_at DESC").
		Find(&results).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list results"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(results),
		"results": results,
	})
}

func MyResultDetail(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if userID == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var result models.QuizResult
	err := database.DB.Preload("UserAnswers").
		First(&result, "id = ? AND user_id = ?", c.Params("resultId"), userID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Result not found"})
	}

	return c.JSON(result)
}

func MyCertificates(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if userID == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var certificates []models.Certificate
	err := database.DB.
		Where("user_id = ?", userID).
		Order("completion_date DESC").
		Find(&certificates).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list certificates"})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"count":        len(certificates),
		"certificates": certificates,
	})
}
