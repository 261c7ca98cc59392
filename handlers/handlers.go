package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/omarashraf/quiz_platform/engine"
	"github.com/omarashraf/quiz_platform/models"
)

var validate = validator.New()

var (
	quizEngine *engine.Engine
	bank       *engine.GormBank
)

// InitEngine wires the handlers to the engine built in main. Handlers stay
// plain package functions; only the engine carries injected configuration.
func InitEngine(e *engine.Engine, b *engine.GormBank) {
	quizEngine = e
	bank = b
}

// currentUserID extracts the authenticated user's id, or nil for anonymous
// requests (OptionalAuth leaves the local unset).
func currentUserID(c *fiber.Ctx) *uuid.UUID {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// engineError translates engine failures into HTTP responses. The engine
// has no user-facing text of its own.
func engineError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, engine.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, engine.ErrEmptyPool):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No questions available for this subject and level"})
	case errors.Is(err, engine.ErrAlreadyCompleted):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Attempt has already been completed"})
	case errors.Is(err, engine.ErrDuplicateAnswer):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Question already answered in this attempt"})
	case errors.Is(err, engine.ErrQuestionNotInAttempt),
		errors.Is(err, engine.ErrAnswerMismatch),
		errors.Is(err, engine.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}

// answerOption is an answer as shown to quiz takers: no correctness marker.
type answerOption struct {
	ID         uuid.UUID `json:"id"`
	AnswerText string    `json:"answer_text"`
}

type questionForQuiz struct {
	ID           uuid.UUID      `json:"id"`
	QuestionText string         `json:"question_text"`
	CodeSnippet  *string        `json:"code_snippet,omitempty"`
	MediaURL     *string        `json:"media_url,omitempty"`
	Level        string         `json:"level"`
	Points       int            `json:"points"`
	Options      []answerOption `json:"options"`
}

func questionPayload(q models.Question) questionForQuiz {
	options := make([]answerOption, 0, len(q.Answers))
	for _, a := range q.Answers {
		options = append(options, answerOption{ID: a.ID, AnswerText: a.AnswerText})
	}
	return questionForQuiz{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		CodeSnippet:  q.CodeSnippet,
		MediaURL:     q.MediaURL,
		Level:        q.Level,
		Points:       q.Points,
		Options:      options,
	}
}

func questionsPayload(questions []models.Question) []questionForQuiz {
	out := make([]questionForQuiz, 0, len(questions))
	for _, q := range questions {
		out = append(out, questionPayload(q))
	}
	return out
}
