package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/omarashraf/quiz_platform/database"
	"github.com/omarashraf/quiz_platform/engine"
	"github.com/omarashraf/quiz_platform/models"
)

type AnswerRequest struct {
	AnswerText string `json:"answer_text" validate:"required,max=500"`
	IsCorrect  bool   `json:"is_correct"`
	Position   int    `json:"position"`
}

type QuestionRequest struct {
	SubjectCode  string          `json:"subject_code" validate:"required"`
	QuestionText string          `json:"question_text" validate:"required"`
	CodeSnippet  *string         `json:"code_snippet"`
	MediaURL     *string         `json:"media_url"`
	Level        string          `json:"level" validate:"required,oneof=easy medium hard"`
	Points       int             `json:"points" validate:"gte=0"`
	Explanation  string          `json:"explanation"`
	Answers      []AnswerRequest `json:"answers" validate:"required,min=2,dive"`
}

func buildQuestion(req QuestionRequest, subjectID uuid.UUID) models.Question {
	question := models.Question{
		SubjectID:    subjectID,
		QuestionText: req.QuestionText,
		CodeSnippet:  req.CodeSnippet,
		MediaURL:     req.MediaURL,
		Level:        req.Level,
		Points:       req.Points,
		Explanation:  req.Explanation,
	}
	for i, a := range req.Answers {
		question.Answers = append(question.Answers, &models.Answer{
			AnswerText: a.AnswerText,
			IsCorrect:  a.IsCorrect,
			Position:   a.Position,
		})
		if a.Position == 0 {
			question.Answers[i].Position = i
		}
	}
	return question
}

// CreateQuestion adds a question through the bank's validated write path:
// the exactly-one-correct-answer check runs here exactly as it does for the
// importer.
func CreateQuestion(c *fiber.Ctx) error {
	var req QuestionRequest
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

	question := buildQuestion(req, subject.ID)
	if err := bank.CreateQuestion(&question); err != nil {
		return engineError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(question)
}

func ListQuestions(c *fiber.Ctx) error {
	subjectCode := c.Query("subject_code")
	level := c.Query("level")

	if subjectCode == "" {
		var questions []models.Question
		if err := database.DB.Preload("Answers").Find(&questions).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list questions"})
		}
		return c.JSON(fiber.Map{"success": true, "count": len(questions), "questions": questions})
	}

	questions, err := bank.ListQuestions(engine.Filter{SubjectCode: subjectCode, Level: level})
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "count": len(questions), "questions": questions})
}

func GetQuestion(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question id"})
	}

	question, err := bank.GetQuestion(questionID)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(question)
}

func UpdateQuestion(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question id"})
	}

	existing, err := bank.GetQuestion(questionID)
	if err != nil {
		return engineError(c, err)
	}

	var req QuestionRequest
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

	question := buildQuestion(req, subject.ID)
	question.ID = existing.ID
	for _, a := range question.Answers {
		a.QuestionID = existing.ID
	}

	if err := bank.UpdateQuestion(&question); err != nil {
		return engineError(c, err)
	}
	return c.JSON(question)
}

func DeleteQuestion(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question id"})
	}

	if err := bank.DeleteQuestion(questionID); err != nil {
		return engineError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
