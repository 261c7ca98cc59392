package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/omarashraf/quiz_platform/database"
	"github.com/omarashraf/quiz_platform/models"
	"gorm.io/gorm"
)

type SubjectRequest struct {
	Code           string `json:"code" validate:"required,max=50"`
	Name           string `json:"name" validate:"required,max=100"`
	Description    string `json:"description"`
	Icon           string `json:"icon"`
	PassPercentage int    `json:"pass_percentage" validate:"gte=0,lte=100"`
}

type levelInfo struct {
	Level   string `json:"level"`
	Count   int64  `json:"count"`
	Display string `json:"display"`
}

type subjectWithStats struct {
	models.Subject
	TotalQuestions  int64       `json:"total_questions"`
	LevelsAvailable []levelInfo `json:"levels_available"`
}

var levelDisplay = map[string]string{
	models.LevelEasy:   "Easy",
	models.LevelMedium: "Medium",
	models.LevelHard:   "Hard",
}

func subjectStats(subject models.Subject) subjectWithStats {
	out := subjectWithStats{Subject: subject, LevelsAvailable: []levelInfo{}}

	for _, level := range []string{models.LevelEasy, models.LevelMedium, models.LevelHard} {
		var count int64
		database.DB.Model(&models.Question{}).
			Where("subject_id = ? AND level = ?", subject.ID, level).
			Count(&count)
		if count > 0 {
			out.TotalQuestions += count
			out.LevelsAvailable = append(out.LevelsAvailable, levelInfo{
				Level:   level,
				Count:   count,
				Display: levelDisplay[level],
			})
		}
	}
	return out
}

func ListSubjects(c *fiber.Ctx) error {
	var subjects []models.Subject
	if err := database.DB.Order("name").Find(&subjects).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list subjects"})
	}

	payload := make([]subjectWithStats, 0, len(subjects))
	for _, subject := range subjects {
		payload = append(payload, subjectStats(subject))
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"count":    len(payload),
		"subjects": payload,
	})
}

func GetSubject(c *fiber.Ctx) error {
	code := c.Params("code")

	var subject models.Subject
	if err := database.DB.First(&subject, "code = ?", code).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subject not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"subject": subjectStats(subject),
	})
}

func CreateSubject(c *fiber.Ctx) error {
	var req SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	subject := models.Subject{
		Code:           req.Code,
		Name:           req.Name,
		Description:    req.Description,
		Icon:           req.Icon,
		PassPercentage: req.PassPercentage,
	}
	if subject.PassPercentage == 0 {
		subject.PassPercentage = 60
	}

	if err := database.DB.Create(&subject).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Subject code already exists"})
	}
	return c.Status(fiber.StatusCreated).JSON(subject)
}

func UpdateSubject(c *fiber.Ctx) error {
	code := c.Params("code")

	var subject models.Subject
	if err := database.DB.First(&subject, "code = ?", code).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subject not found"})
	}

	var req SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	subject.Code = req.Code
	subject.Name = req.Name
	subject.Description = req.Description
	subject.Icon = req.Icon
	if req.PassPercentage > 0 {
		subject.PassPercentage = req.PassPercentage
	}
	database.DB.Save(&subject)

	return c.JSON(subject)
}

// DeleteSubject removes a subject and cascades to its questions and their
// answers.
func DeleteSubject(c *fiber.Ctx) error {
	code := c.Params("code")

	var subject models.Subject
	if err := database.DB.First(&subject, "code = ?", code).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subject not found"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var questionIDs []string
		if err := tx.Model(&models.Question{}).Where("subject_id = ?", subject.ID).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Delete(&models.Answer{}, "question_id IN ?", questionIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Question{}, "subject_id = ?", subject.ID).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&subject).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete subject"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
