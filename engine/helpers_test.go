package engine

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/omarashraf/quiz_platform/models"
)

func testSubject(passPct int) models.Subject {
	return models.Subject{
		ID:             uuid.New(),
		Code:           "CSW351-AI",
		Name:           "Artificial Intelligence",
		PassPercentage: passPct,
	}
}

func testQuestion(t *testing.T, subject models.Subject, level string, points int) models.Question {
	t.Helper()

	q := models.Question{
		ID:           uuid.New(),
		SubjectID:    subject.ID,
		Subject:      subject,
		QuestionText: fmt.Sprintf("question %s", uuid.New()),
		Level:        level,
		Points:       points,
		Explanation:  "because",
	}
	q.Answers = []*models.Answer{
		{ID: uuid.New(), QuestionID: q.ID, AnswerText: "right", IsCorrect: true},
		{ID: uuid.New(), QuestionID: q.ID, AnswerText: "wrong one", IsCorrect: false},
		{ID: uuid.New(), QuestionID: q.ID, AnswerText: "wrong two", IsCorrect: false},
		{ID: uuid.New(), QuestionID: q.ID, AnswerText: "wrong three", IsCorrect: false},
	}
	return q
}

func correctAnswerID(t *testing.T, q models.Question) uuid.UUID {
	t.Helper()
	correct := q.CorrectAnswer()
	if correct == nil {
		t.Fatalf("question %s has no correct answer", q.ID)
	}
	return correct.ID
}

func wrongAnswerID(t *testing.T, q models.Question) uuid.UUID {
	t.Helper()
	for _, a := range q.Answers {
		if !a.IsCorrect {
			return a.ID
		}
	}
	t.Fatalf("question %s has no wrong answer", q.ID)
	return uuid.Nil
}

// newTestEngine builds an engine over in-memory implementations with count
// easy questions worth one point each.
func newTestEngine(t *testing.T, passPct, count int) (*Engine, *MemoryBank, *MemoryStore, []models.Question) {
	t.Helper()

	bank := NewMemoryBank()
	store := NewMemoryStore()

	subject := testSubject(passPct)
	bank.AddSubject(subject)

	questions := make([]models.Question, 0, count)
	for i := 0; i < count; i++ {
		q := testQuestion(t, subject, models.LevelEasy, 1)
		if err := bank.AddQuestion(q); err != nil {
			t.Fatalf("add question: %v", err)
		}
		questions = append(questions, q)
	}

	return New(DefaultConfig(), bank, store), bank, store, questions
}
