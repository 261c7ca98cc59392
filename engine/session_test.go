package engine

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/omarashraf/quiz_platform/models"
)

func TestStartAttemptPersistsImmediately(t *testing.T) {
	e, _, store, _ := newTestEngine(t, 70, 5)

	attempt, questions, err := e.StartAttempt(Filter{SubjectCode: "CSW351-AI", Level: models.LevelEasy}, 5, nil)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}
	if attempt.Status != models.AttemptStarted {
		t.Errorf("Status = %q, want %q", attempt.Status, models.AttemptStarted)
	}
	if len(questions) != 5 || len(attempt.QuestionIDs) != 5 {
		t.Fatalf("expected 5 questions, got %d presented / %d stored", len(questions), len(attempt.QuestionIDs))
	}
	for i, q := range questions {
		if attempt.QuestionIDs[i] != q.ID {
			t.Errorf("stored sequence diverges from presented order at %d", i)
		}
	}

	stored, err := store.GetAttempt(attempt.ID)
	if err != nil {
		t.Fatalf("attempt was not persisted: %v", err)
	}
	if len(stored.Answers) != 0 {
		t.Errorf("new attempt must start with an empty answer map, got %d entries", len(stored.Answers))
	}
}

func TestStartAttemptErrors(t *testing.T) {
	e, _, _, _ := newTestEngine(t, 70, 5)

	t.Run("unknown subject", func(t *testing.T) {
		_, _, err := e.StartAttempt(Filter{SubjectCode: "NOPE-101"}, 5, nil)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("empty pool", func(t *testing.T) {
		_, _, err := e.StartAttempt(Filter{SubjectCode: "CSW351-AI", Level: models.LevelHard}, 5, nil)
		if !errors.Is(err, ErrEmptyPool) {
			t.Fatalf("expected ErrEmptyPool, got %v", err)
		}
	})

	t.Run("count above maximum", func(t *testing.T) {
		_, _, err := e.StartAttempt(Filter{SubjectCode: "CSW351-AI"}, 1000, nil)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestSubmitAnswerStateMachine(t *testing.T) {
	e, bank, store, _ := newTestEngine(t, 70, 5)

	attempt, questions, err := e.StartAttempt(Filter{SubjectCode: "CSW351-AI", Level: models.LevelEasy}, 5, nil)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	first := questions[0]

	updated, err := e.SubmitAnswer(attempt.ID, first.ID, correctAnswerID(t, first))
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if updated.Status != models.AttemptInProgress {
		t.Errorf("first answer must transition to in_progress, got %q", updated.Status)
	}
	if updated.Answers[first.ID] != correctAnswerID(t, first) {
		t.Error("selection was not recorded")
	}

	t.Run("question not in attempt", func(t *testing.T) {
		foreign := testQuestion(t, testSubject(70), models.LevelEasy, 1)
		if err := bank.AddQuestion(foreign); err != nil {
			t.Fatalf("add question: %v", err)
		}

		_, err := e.SubmitAnswer(attempt.ID, foreign.ID, correctAnswerID(t, foreign))
		if !errors.Is(err, ErrQuestionNotInAttempt) {
			t.Fatalf("expected ErrQuestionNotInAttempt, got %v", err)
		}

		stored, _ := store.GetAttempt(attempt.ID)
		if len(stored.Answers) != 1 {
			t.Errorf("answer map must stay untouched on rejection, got %d entries", len(stored.Answers))
		}
	})

	t.Run("answer from another question", func(t *testing.T) {
		second := questions[1]
		_, err := e.SubmitAnswer(attempt.ID, second.ID, correctAnswerID(t, first))
		if !errors.Is(err, ErrAnswerMismatch) {
			t.Fatalf("expected ErrAnswerMismatch, got %v", err)
		}
	})

	t.Run("write-once duplicate", func(t *testing.T) {
		current, err := e.SubmitAnswer(attempt.ID, first.ID, wrongAnswerID(t, first))
		if !errors.Is(err, ErrDuplicateAnswer) {
			t.Fatalf("expected ErrDuplicateAnswer, got %v", err)
		}
		// the original selection survives
		if current.Answers[first.ID] != correctAnswerID(t, first) {
			t.Error("duplicate submission must not overwrite the recorded answer")
		}
	})

	t.Run("unknown attempt", func(t *testing.T) {
		_, err := e.SubmitAnswer(uuid.New(), first.ID, correctAnswerID(t, first))
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestFinishAttemptScoresAndFinalizes(t *testing.T) {
	e, _, store, _ := newTestEngine(t, 70, 5)

	attempt, questions, err := e.StartAttempt(Filter{SubjectCode: "CSW351-AI", Level: models.LevelEasy}, 5, nil)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	// three correct, one wrong, one skipped
	for i := 0; i < 3; i++ {
		if _, err := e.SubmitAnswer(attempt.ID, questions[i].ID, correctAnswerID(t, questions[i])); err != nil {
			t.Fatalf("SubmitAnswer %d: %v", i, err)
		}
	}
	if _, err := e.SubmitAnswer(attempt.ID, questions[3].ID, wrongAnswerID(t, questions[3])); err != nil {
		t.Fatalf("SubmitAnswer wrong: %v", err)
	}

	final, result, err := e.FinishAttempt(attempt.ID, 120)
	if err != nil {
		t.Fatalf("FinishAttempt: %v", err)
	}

	if result.EarnedPoints != 3 || result.TotalPoints != 5 {
		t.Errorf("earned/total = %d/%d, want 3/5", result.EarnedPoints, result.TotalPoints)
	}
	if result.Percentage != 60.00 {
		t.Errorf("Percentage = %.2f, want 60.00", result.Percentage)
	}
	if result.Passed {
		t.Error("60.00 must not pass a threshold of 70")
	}
	if final.Status != models.AttemptCompleted {
		t.Errorf("Status = %q, want %q", final.Status, models.AttemptCompleted)
	}
	if final.TimeTaken != 120 || final.CompletedAt == nil {
		t.Errorf("completion metadata missing: time_taken=%d completed_at=%v", final.TimeTaken, final.CompletedAt)
	}

	rows := store.UserAnswers(attempt.ID)
	if len(rows) != 5 {
		t.Fatalf("expected 5 breakdown rows, got %d", len(rows))
	}
	skipped := 0
	correct := 0
	for _, row := range rows {
		if row.SelectedAnswerID == nil {
			skipped++
		}
		if row.IsCorrect {
			correct++
		}
	}
	if skipped != 1 {
		t.Errorf("expected 1 skipped row, got %d", skipped)
	}
	if correct != 3 {
		t.Errorf("expected 3 correct rows, got %d", correct)
	}

	t.Run("second finish fails and leaves result unchanged", func(t *testing.T) {
		_, _, err := e.FinishAttempt(attempt.ID, 999)
		if !errors.Is(err, ErrAlreadyCompleted) {
			t.Fatalf("expected ErrAlreadyCompleted, got %v", err)
		}

		stored, _ := store.GetAttempt(attempt.ID)
		if stored.TimeTaken != 120 || stored.Percentage != 60.00 {
			t.Errorf("stored result changed: time_taken=%d percentage=%.2f", stored.TimeTaken, stored.Percentage)
		}
	})

	t.Run("answers rejected after completion", func(t *testing.T) {
		_, err := e.SubmitAnswer(attempt.ID, questions[4].ID, correctAnswerID(t, questions[4]))
		if !errors.Is(err, ErrAlreadyCompleted) {
			t.Fatalf("expected ErrAlreadyCompleted, got %v", err)
		}
	})
}

func TestFinishAttemptBoundaryInclusive(t *testing.T) {
	e, _, _, _ := newTestEngine(t, 60, 5)

	attempt, questions, err := e.StartAttempt(Filter{SubjectCode: "CSW351-AI", Level: models.LevelEasy}, 5, nil)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := e.SubmitAnswer(attempt.ID, questions[i].ID, correctAnswerID(t, questions[i])); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
	}

	_, result, err := e.FinishAttempt(attempt.ID, 60)
	if err != nil {
		t.Fatalf("FinishAttempt: %v", err)
	}
	if result.Percentage != 60.00 {
		t.Errorf("Percentage = %.2f, want 60.00", result.Percentage)
	}
	if !result.Passed {
		t.Error("a score exactly at the threshold must pass")
	}
}
