package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/omarashraf/quiz_platform/models"
)

// Submission is one (question, selected answer) pair of a stateless check.
type Submission struct {
	QuestionID uuid.UUID `json:"question_id"`
	AnswerID   uuid.UUID `json:"answer_id"`
}

// CheckAnswers grades a batch of selections immediately, without creating
// an attempt or persisting anything. Duplicate question ids in one batch
// are rejected rather than double-counted. The pass threshold comes from
// the subject of the first question, which is the subject the quiz was
// generated from.
func (e *Engine) CheckAnswers(submissions []Submission) (ScoreResult, error) {
	if len(submissions) == 0 {
		return ScoreResult{}, fmt.Errorf("%w: no answers submitted", ErrValidation)
	}

	seen := make(map[uuid.UUID]bool, len(submissions))
	for _, s := range submissions {
		if seen[s.QuestionID] {
			return ScoreResult{}, fmt.Errorf("%w: duplicate question id %s", ErrValidation, s.QuestionID)
		}
		seen[s.QuestionID] = true
	}

	questions := make([]models.Question, 0, len(submissions))
	answers := models.AnswerMap{}
	for _, s := range submissions {
		q, err := e.bank.GetQuestion(s.QuestionID)
		if err != nil {
			return ScoreResult{}, err
		}
		belongs := false
		for _, a := range q.Answers {
			if a.ID == s.AnswerID {
				belongs = true
				break
			}
		}
		if !belongs {
			return ScoreResult{}, ErrAnswerMismatch
		}
		questions = append(questions, q)
		answers[s.QuestionID] = s.AnswerID
	}

	return Score(questions, answers, questions[0].Subject.PassPercentage), nil
}
