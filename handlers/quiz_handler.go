package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/omarashraf/quiz_platform/database"
	"github.com/omarashraf/quiz_platform/engine"
	"github.com/omarashraf/quiz_platform/models"
)

type GenerateQuizRequest struct {
	SubjectCode  string `json:"subject_code" validate:"required"`
	Level        string `json:"level" validate:"required,oneof=easy medium hard"`
	NumQuestions int    `json:"num_questions" validate:"gte=0,lte=30"`
}

// GenerateQuiz samples a random question set without opening an attempt.
// Clients that want persisted progress use the attempts endpoints instead.
func GenerateQuiz(c *fiber.Ctx) error {
	var req GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := bank.GetSubject(req.SubjectCode); err != nil {
		return engineError(c, err)
	}

	count := req.NumQuestions
	if count == 0 {
		count = quizEngine.DefaultCount()
	}

	questions, err := quizEngine.Sample(engine.Filter{SubjectCode: req.SubjectCode, Level: req.Level}, count)
	if err != nil {
		return engineError(c, err)
	}
	if len(questions) == 0 {
		return engineError(c, engine.ErrEmptyPool)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"quiz": fiber.Map{
			"subject_code":  req.SubjectCode,
			"level":         req.Level,
			"num_questions": len(questions),
			"questions":     questionsPayload(questions),
		},
	})
}

type QuizSubmissionRequest struct {
	Answers []engine.Submission `json:"answers" validate:"required,min=1"`
}

// SubmitQuiz grades a batch of answers immediately without persisting a
// result, for the anonymous one-shot flow.
func SubmitQuiz(c *fiber.Ctx) error {
	var req QuizSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := quizEngine.CheckAnswers(req.Answers)
	if err != nil {
		return engineError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"quiz_result": result,
	})
}

// QuizStats reports bank-wide totals, mirroring what the admin dashboard
// shows.
func QuizStats(c *fiber.Ctx) error {
	var totalSubjects, totalQuestions int64
	database.DB.Model(&models.Subject{}).Count(&totalSubjects)
	database.DB.Model(&models.Question{}).Count(&totalQuestions)

	byLevel := fiber.Map{}
	for _, level := range []string{models.LevelEasy, models.LevelMedium, models.LevelHard} {
		var count int64
		database.DB.Model(&models.Question{}).Where("level = ?", level).Count(&count)
		byLevel[level] = count
	}

	var subjects []models.Subject
	database.DB.Order("code").Find(&subjects)
	subjectsStats := make([]fiber.Map, 0, len(subjects))
	for _, subject := range subjects {
		stats := subjectStats(subject)
		entry := fiber.Map{
			"code":            subject.Code,
			"name":            subject.Name,
			"total_questions": stats.TotalQuestions,
		}
		for _, l := range stats.LevelsAvailable {
			entry[l.Level] = l.Count
		}
		subjectsStats = append(subjectsStats, entry)
	}

	var totalAttempts, completedAttempts int64
	database.DB.Model(&models.QuizResult{}).Count(&totalAttempts)
	database.DB.Model(&models.QuizResult{}).Where("status = ?", models.AttemptCompleted).Count(&completedAttempts)

	return c.JSON(fiber.Map{
		"success": true,
		"stats": fiber.Map{
			"total_subjects":     totalSubjects,
			"total_questions":    totalQuestions,
			"questions_by_level": byLevel,
			"subjects":           subjectsStats,
			"total_attempts":     totalAttempts,
			"completed_attempts": completedAttempts,
		},
	})
}
