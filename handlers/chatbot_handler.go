package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/omarashraf/quiz_platform/database"
	"github.com/omarashraf/quiz_platform/engine"
	"github.com/omarashraf/quiz_platform/models"
)

// The chatbot flow walks the same engine through a linear step sequence:
// pick a subject, pick a difficulty, start the quiz. State lives in a
// persisted session row keyed by token, since nothing survives in process
// memory between requests.

func chatSessionByToken(c *fiber.Ctx) (models.ChatSession, error) {
	token, err := uuid.Parse(c.Params("token"))
	if err != nil {
		return models.ChatSession{}, fiber.NewError(fiber.StatusBadRequest, "Invalid session token")
	}

	var session models.ChatSession
	if err := database.DB.First(&session, "token = ?", token).Error; err != nil {
		return models.ChatSession{}, fiber.NewError(fiber.StatusNotFound, "Chat session not found")
	}
	return session, nil
}

func StartChatSession(c *fiber.Ctx) error {
	session := models.ChatSession{
		Token: uuid.New(),
		Step:  models.ChatStepSubject,
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to start chat session"})
	}

	var subjects []models.Subject
	database.DB.Order("name").Find(&subjects)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token":    session.Token,
		"step":     session.Step,
		"message":  "Welcome to the quiz chatbot! Which subject would you like to practice?",
		"subjects": subjects,
	})
}

type ChatSubjectRequest struct {
	SubjectCode string `json:"subject_code" validate:"required"`
}

func ChatSelectSubject(c *fiber.Ctx) error {
	session, err := chatSessionByToken(c)
	if err != nil {
		return err
	}

	var req ChatSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	subject, err := bank.GetSubject(req.SubjectCode)
	if err != nil {
		return engineError(c, err)
	}

	session.SubjectCode = &subject.Code
	session.Step = models.ChatStepDifficulty
	if err := database.DB.Save(&session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update chat session"})
	}

	// only levels that actually have questions are offered
	levels := subjectStats(subject).LevelsAvailable

	return c.JSON(fiber.Map{
		"token":   session.Token,
		"step":    session.Step,
		"message": "Great choice! Which difficulty would you like?",
		"subject": subject,
		"levels":  levels,
	})
}

type ChatLevelRequest struct {
	Level        string `json:"level" validate:"required,oneof=easy medium hard"`
	NumQuestions int    `json:"num_questions" validate:"gte=0,lte=30"`
}

func ChatSelectLevel(c *fiber.Ctx) error {
	session, err := chatSessionByToken(c)
	if err != nil {
		return err
	}
	if session.Step != models.ChatStepDifficulty || session.SubjectCode == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Select a subject first"})
	}

	var req ChatLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	attempt, questions, err := quizEngine.StartAttempt(
		engine.Filter{SubjectCode: *session.SubjectCode, Level: req.Level},
		req.NumQuestions,
		currentUserID(c),
	)
	if err != nil {
		return engineError(c, err)
	}

	session.Level = &attempt.Level
	session.AttemptID = &attempt.ID
	session.Step = models.ChatStepQuiz
	if err := database.DB.Save(&session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update chat session"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token":      session.Token,
		"step":       session.Step,
		"message":    "Here we go! Answer each question, then finish the attempt to see your score.",
		"attempt_id": attempt.ID,
		"questions":  questionsPayload(questions),
	})
}

func GetChatSession(c *fiber.Ctx) error {
	session, err := chatSessionByToken(c)
	if err != nil {
		return err
	}
	return c.JSON(session)
}
