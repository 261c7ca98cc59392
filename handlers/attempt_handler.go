package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/omarashraf/quiz_platform/engine"
	"github.com/omarashraf/quiz_platform/services"
)

type StartAttemptRequest struct {
	SubjectCode  string `json:"subject_code" validate:"required"`
	Level        string `json:"level" validate:"required,oneof=easy medium hard"`
	NumQuestions int    `json:"num_questions" validate:"gte=0,lte=30"`
}

// StartAttempt opens a persisted attempt: the question set is fixed now and
// the attempt id is what the client carries across requests.
func StartAttempt(c *fiber.Ctx) error {
	var req StartAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	attempt, questions, err := quizEngine.StartAttempt(
		engine.Filter{SubjectCode: req.SubjectCode, Level: req.Level},
		req.NumQuestions,
		currentUserID(c),
	)
	if err != nil {
		return engineError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"attempt_id":   attempt.ID,
		"subject_code": attempt.SubjectCode,
		"level":        attempt.Level,
		"status":       attempt.Status,
		"questions":    questionsPayload(questions),
	})
}

type SubmitAnswerRequest struct {
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	AnswerID   uuid.UUID `json:"answer_id" validate:"required"`
}

// SubmitAttemptAnswer records one selection. A network retry carrying the
// identical payload gets an OK instead of a conflict, so duplicate
// submissions stay idempotent from the client's point of view.
func SubmitAttemptAnswer(c *fiber.Ctx) error {
	attemptID, err := uuid.Parse(c.Params("attemptId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attempt id"})
	}

	var req SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	attempt, err := quizEngine.SubmitAnswer(attemptID, req.QuestionID, req.AnswerID)
	if err != nil {
		if errors.Is(err, engine.ErrDuplicateAnswer) && attempt.Answers[req.QuestionID] == req.AnswerID {
			return c.JSON(fiber.Map{
				"attempt_id": attempt.ID,
				"status":     attempt.Status,
				"answered":   len(attempt.Answers),
				"total":      len(attempt.QuestionIDs),
			})
		}
		return engineError(c, err)
	}

	return c.JSON(fiber.Map{
		"attempt_id": attempt.ID,
		"status":     attempt.Status,
		"answered":   len(attempt.Answers),
		"total":      len(attempt.QuestionIDs),
	})
}

type FinishAttemptRequest struct {
	ElapsedSeconds int `json:"elapsed_seconds" validate:"gte=0"`
}

func FinishAttempt(c *fiber.Ctx) error {
	attemptID, err := uuid.Parse(c.Params("attemptId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attempt id"})
	}

	var req FinishAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	attempt, result, err := quizEngine.FinishAttempt(attemptID, req.ElapsedSeconds)
	if err != nil {
		return engineError(c, err)
	}

	if attempt.UserID != nil {
		go services.AwardQuizRewards(*attempt.UserID, attempt)
		go services.SendResultEmail(*attempt.UserID, attempt, result)
		if attempt.Passed {
			go services.GenerateResultCertificate(attempt)
		}
	}

	return c.JSON(fiber.Map{
		"attempt_id":   attempt.ID,
		"subject_code": attempt.SubjectCode,
		"level":        attempt.Level,
		"time_taken":   attempt.TimeTaken,
		"quiz_result":  result,
	})
}

// GetAttempt exposes in-flight progress: which questions were presented and
// how many are answered. Scores only exist once the attempt completes.
func GetAttempt(c *fiber.Ctx) error {
	attemptID, err := uuid.Parse(c.Params("attemptId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attempt id"})
	}

	attempt, err := quizEngine.GetAttempt(attemptID)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(attempt)
}
