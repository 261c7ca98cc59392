package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/omarashraf/quiz_platform/models"
)

// StartAttempt samples a question set for the filter and persists a new
// attempt immediately, since the client references its id across requests.
// A count of zero falls back to the configured default. ErrEmptyPool is
// returned when the filter matches no questions; no attempt is created.
func (e *Engine) StartAttempt(f Filter, count int, userID *uuid.UUID) (models.QuizResult, []models.Question, error) {
	if count == 0 {
		count = e.cfg.DefaultCount
	}
	if count > e.cfg.MaxCount {
		return models.QuizResult{}, nil, fmt.Errorf("%w: at most %d questions per quiz", ErrValidation, e.cfg.MaxCount)
	}

	if _, err := e.bank.GetSubject(f.SubjectCode); err != nil {
		return models.QuizResult{}, nil, err
	}

	questions, err := e.Sample(f, count)
	if err != nil {
		return models.QuizResult{}, nil, err
	}
	if len(questions) == 0 {
		return models.QuizResult{}, nil, ErrEmptyPool
	}

	ids := make(models.UUIDList, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}

	attempt := models.QuizResult{
		ID:          uuid.New(),
		UserID:      userID,
		SubjectCode: f.SubjectCode,
		Level:       f.Level,
		Status:      models.AttemptStarted,
		QuestionIDs: ids,
		Answers:     models.AnswerMap{},
		StartedAt:   time.Now(),
	}
	if err := e.store.CreateAttempt(&attempt); err != nil {
		return models.QuizResult{}, nil, err
	}

	return attempt, questions, nil
}

// SubmitAnswer records one selection on an in-flight attempt. Answers are
// write-once: re-answering an already recorded question fails with
// ErrDuplicateAnswer and the stored map stays untouched. The attempt is
// returned alongside duplicate errors so callers can treat a retry carrying
// the identical payload as idempotent success.
func (e *Engine) SubmitAnswer(attemptID, questionID, answerID uuid.UUID) (models.QuizResult, error) {
	attempt, err := e.store.GetAttempt(attemptID)
	if err != nil {
		return models.QuizResult{}, err
	}
	if attempt.Status == models.AttemptCompleted {
		return attempt, ErrAlreadyCompleted
	}
	if !attempt.QuestionIDs.Contains(questionID) {
		return attempt, ErrQuestionNotInAttempt
	}
	if _, answered := attempt.Answers[questionID]; answered {
		return attempt, ErrDuplicateAnswer
	}

	question, err := e.bank.GetQuestion(questionID)
	if err != nil {
		return attempt, err
	}
	belongs := false
	for _, a := range question.Answers {
		if a.ID == answerID {
			belongs = true
			break
		}
	}
	if !belongs {
		return attempt, ErrAnswerMismatch
	}

	attempt.Answers[questionID] = answerID
	if attempt.Status == models.AttemptStarted {
		attempt.Status = models.AttemptInProgress
	}
	if err := e.store.UpdateAnswers(&attempt); err != nil {
		return models.QuizResult{}, err
	}

	return attempt, nil
}

// FinishAttempt scores the attempt and finalizes it: the final fields and
// all per-question breakdown rows are written in one atomic step, after
// which the attempt is immutable. Calling it again fails with
// ErrAlreadyCompleted and leaves the stored result unchanged.
func (e *Engine) FinishAttempt(attemptID uuid.UUID, elapsedSeconds int) (models.QuizResult, ScoreResult, error) {
	if elapsedSeconds < 0 {
		return models.QuizResult{}, ScoreResult{}, fmt.Errorf("%w: elapsed seconds cannot be negative", ErrValidation)
	}

	attempt, err := e.store.GetAttempt(attemptID)
	if err != nil {
		return models.QuizResult{}, ScoreResult{}, err
	}
	if attempt.Status == models.AttemptCompleted {
		return models.QuizResult{}, ScoreResult{}, ErrAlreadyCompleted
	}

	subject, err := e.bank.GetSubject(attempt.SubjectCode)
	if err != nil {
		return models.QuizResult{}, ScoreResult{}, err
	}

	questions := make([]models.Question, 0, len(attempt.QuestionIDs))
	for _, qid := range attempt.QuestionIDs {
		q, err := e.bank.GetQuestion(qid)
		if err != nil {
			return models.QuizResult{}, ScoreResult{}, err
		}
		questions = append(questions, q)
	}

	result := Score(questions, attempt.Answers, subject.PassPercentage)

	now := time.Now()
	rows := make([]models.UserAnswer, 0, len(questions))
	for _, q := range questions {
		row := models.UserAnswer{
			QuizResultID: attempt.ID,
			QuestionID:   q.ID,
			AnsweredAt:   now,
		}
		if selectedID, ok := attempt.Answers[q.ID]; ok {
			selected := selectedID
			row.SelectedAnswerID = &selected
			for _, a := range q.Answers {
				if a.ID == selectedID && a.IsCorrect {
					row.IsCorrect = true
					row.PointsEarned = q.Points
				}
			}
		}
		rows = append(rows, row)
	}

	attempt.Status = models.AttemptCompleted
	attempt.Score = result.EarnedPoints
	attempt.TotalPoints = result.TotalPoints
	attempt.CorrectCount = result.CorrectCount
	attempt.Percentage = result.Percentage
	attempt.Passed = result.Passed
	attempt.TimeTaken = elapsedSeconds
	attempt.CompletedAt = &now

	if err := e.store.Finalize(&attempt, rows); err != nil {
		return models.QuizResult{}, ScoreResult{}, err
	}

	return attempt, result, nil
}

// GetAttempt exposes attempt state for progress views.
func (e *Engine) GetAttempt(attemptID uuid.UUID) (models.QuizResult, error) {
	return e.store.GetAttempt(attemptID)
}
