package engine

import (
	"fmt"
	"strings"

	"github.com/omarashraf/quiz_platform/models"
)

// ValidateQuestion checks a question before it enters the bank. The same
// validation runs regardless of entry point (admin API, importer): exactly
// one answer must be marked correct, since the scorer depends on that
// invariant. A zero point value is defaulted from the question's tier.
func ValidateQuestion(q *models.Question) error {
	if strings.TrimSpace(q.QuestionText) == "" {
		return fmt.Errorf("%w: question text is required", ErrValidation)
	}
	if _, ok := models.DefaultPoints[q.Level]; !ok {
		return fmt.Errorf("%w: unknown level %q", ErrValidation, q.Level)
	}
	if len(q.Answers) < 2 {
		return fmt.Errorf("%w: a question needs at least two answers", ErrValidation)
	}

	correct := 0
	for _, a := range q.Answers {
		if strings.TrimSpace(a.AnswerText) == "" {
			return fmt.Errorf("%w: answer text is required", ErrValidation)
		}
		if a.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("%w: exactly one answer must be marked correct, got %d", ErrValidation, correct)
	}

	if q.Points == 0 {
		q.Points = models.DefaultPoints[q.Level]
	}
	if q.Points < 0 {
		return fmt.Errorf("%w: points cannot be negative", ErrValidation)
	}

	return nil
}
