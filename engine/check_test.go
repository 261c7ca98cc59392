package engine

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/omarashraf/quiz_platform/models"
)

func TestCheckAnswers(t *testing.T) {
	e, _, _, questions := newTestEngine(t, 70, 4)

	submissions := []Submission{
		{QuestionID: questions[0].ID, AnswerID: correctAnswerID(t, questions[0])},
		{QuestionID: questions[1].ID, AnswerID: correctAnswerID(t, questions[1])},
		{QuestionID: questions[2].ID, AnswerID: wrongAnswerID(t, questions[2])},
	}

	res, err := e.CheckAnswers(submissions)
	if err != nil {
		t.Fatalf("CheckAnswers: %v", err)
	}

	if res.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want 3", res.TotalQuestions)
	}
	if res.CorrectCount != 2 || res.IncorrectCount != 1 {
		t.Errorf("correct/incorrect = %d/%d, want 2/1", res.CorrectCount, res.IncorrectCount)
	}
	if res.Percentage != 66.67 {
		t.Errorf("Percentage = %.2f, want 66.67", res.Percentage)
	}
	if len(res.Results) != 3 {
		t.Fatalf("expected 3 result rows, got %d", len(res.Results))
	}
	if res.Results[2].IsCorrect {
		t.Error("wrong selection graded as correct")
	}
	if res.Results[0].SelectedAnswer != "right" || res.Results[0].CorrectAnswer != "right" {
		t.Errorf("unexpected answer texts: selected=%q correct=%q",
			res.Results[0].SelectedAnswer, res.Results[0].CorrectAnswer)
	}
}

func TestCheckAnswersRejectsBadBatches(t *testing.T) {
	e, _, _, questions := newTestEngine(t, 70, 2)

	t.Run("empty batch", func(t *testing.T) {
		if _, err := e.CheckAnswers(nil); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("duplicate question ids", func(t *testing.T) {
		subs := []Submission{
			{QuestionID: questions[0].ID, AnswerID: correctAnswerID(t, questions[0])},
			{QuestionID: questions[0].ID, AnswerID: wrongAnswerID(t, questions[0])},
		}
		if _, err := e.CheckAnswers(subs); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("unknown question", func(t *testing.T) {
		subs := []Submission{{QuestionID: uuid.New(), AnswerID: uuid.New()}}
		if _, err := e.CheckAnswers(subs); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("answer from another question", func(t *testing.T) {
		subs := []Submission{
			{QuestionID: questions[0].ID, AnswerID: correctAnswerID(t, questions[1])},
		}
		if _, err := e.CheckAnswers(subs); !errors.Is(err, ErrAnswerMismatch) {
			t.Fatalf("expected ErrAnswerMismatch, got %v", err)
		}
	})
}

func TestValidateQuestion(t *testing.T) {
	subject := testSubject(60)

	base := func() models.Question {
		return testQuestion(t, subject, models.LevelMedium, 0)
	}

	t.Run("tier default points", func(t *testing.T) {
		q := base()
		if err := ValidateQuestion(&q); err != nil {
			t.Fatalf("ValidateQuestion: %v", err)
		}
		if q.Points != 2 {
			t.Errorf("Points = %d, want medium default 2", q.Points)
		}
	})

	t.Run("explicit points kept", func(t *testing.T) {
		q := base()
		q.Points = 5
		if err := ValidateQuestion(&q); err != nil {
			t.Fatalf("ValidateQuestion: %v", err)
		}
		if q.Points != 5 {
			t.Errorf("Points = %d, want 5", q.Points)
		}
	})

	t.Run("no correct answer", func(t *testing.T) {
		q := base()
		for _, a := range q.Answers {
			a.IsCorrect = false
		}
		if err := ValidateQuestion(&q); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("two correct answers", func(t *testing.T) {
		q := base()
		q.Answers[1].IsCorrect = true
		if err := ValidateQuestion(&q); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("single answer", func(t *testing.T) {
		q := base()
		q.Answers = q.Answers[:1]
		if err := ValidateQuestion(&q); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("unknown level", func(t *testing.T) {
		q := base()
		q.Level = "expert"
		if err := ValidateQuestion(&q); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		q := base()
		q.QuestionText = "   "
		if err := ValidateQuestion(&q); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}
