package engine

import (
	"testing"

	"github.com/omarashraf/quiz_platform/models"
)

func TestScore(t *testing.T) {
	subject := testSubject(70)

	// Five one-point questions; answer the first n correctly.
	buildCase := func(total, correct int) ([]models.Question, models.AnswerMap) {
		questions := make([]models.Question, 0, total)
		answers := models.AnswerMap{}
		for i := 0; i < total; i++ {
			q := testQuestion(t, subject, models.LevelEasy, 1)
			if i < correct {
				answers[q.ID] = correctAnswerID(t, q)
			}
			questions = append(questions, q)
		}
		return questions, answers
	}

	testCases := []struct {
		name           string
		total          int
		correct        int
		threshold      int
		wantPercentage float64
		wantPassed     bool
	}{
		{"three of five fails at seventy", 5, 3, 70, 60.00, false},
		{"three of five passes at sixty", 5, 3, 60, 60.00, true},
		{"exact threshold passes", 10, 7, 70, 70.00, true},
		{"all correct", 5, 5, 70, 100.00, true},
		{"none answered", 5, 0, 70, 0.00, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			questions, answers := buildCase(tc.total, tc.correct)
			res := Score(questions, answers, tc.threshold)

			if res.TotalQuestions != tc.total {
				t.Errorf("TotalQuestions = %d, want %d", res.TotalQuestions, tc.total)
			}
			if res.CorrectCount != tc.correct {
				t.Errorf("CorrectCount = %d, want %d", res.CorrectCount, tc.correct)
			}
			if res.IncorrectCount != tc.total-tc.correct {
				t.Errorf("IncorrectCount = %d, want %d", res.IncorrectCount, tc.total-tc.correct)
			}
			if res.EarnedPoints != tc.correct {
				t.Errorf("EarnedPoints = %d, want %d", res.EarnedPoints, tc.correct)
			}
			if res.TotalPoints != tc.total {
				t.Errorf("TotalPoints = %d, want %d", res.TotalPoints, tc.total)
			}
			if res.EarnedPoints > res.TotalPoints {
				t.Errorf("earned %d exceeds total %d", res.EarnedPoints, res.TotalPoints)
			}
			if res.Percentage != tc.wantPercentage {
				t.Errorf("Percentage = %.2f, want %.2f", res.Percentage, tc.wantPercentage)
			}
			if res.Passed != tc.wantPassed {
				t.Errorf("Passed = %v, want %v", res.Passed, tc.wantPassed)
			}
		})
	}
}

func TestScoreWeightedPoints(t *testing.T) {
	subject := testSubject(50)

	easy := testQuestion(t, subject, models.LevelEasy, 1)
	medium := testQuestion(t, subject, models.LevelMedium, 2)
	hard := testQuestion(t, subject, models.LevelHard, 3)

	answers := models.AnswerMap{
		easy.ID: correctAnswerID(t, easy),
		hard.ID: correctAnswerID(t, hard),
		// medium answered wrong: no points, still in the denominator
		medium.ID: wrongAnswerID(t, medium),
	}

	res := Score([]models.Question{easy, medium, hard}, answers, 50)

	if res.EarnedPoints != 4 {
		t.Errorf("EarnedPoints = %d, want 4", res.EarnedPoints)
	}
	if res.TotalPoints != 6 {
		t.Errorf("TotalPoints = %d, want 6", res.TotalPoints)
	}
	if res.Percentage != 66.67 {
		t.Errorf("Percentage = %.2f, want 66.67 (rounded)", res.Percentage)
	}
	if !res.Passed {
		t.Error("66.67 should pass a threshold of 50")
	}
}

func TestScoreEmptyPoolNoDivisionByZero(t *testing.T) {
	res := Score(nil, models.AnswerMap{}, 70)
	if res.Percentage != 0 {
		t.Errorf("Percentage = %v, want 0 for zero total points", res.Percentage)
	}
	if res.TotalPoints != 0 || res.EarnedPoints != 0 {
		t.Errorf("expected zero points, got earned=%d total=%d", res.EarnedPoints, res.TotalPoints)
	}
}

func TestScoreUnansweredBreakdown(t *testing.T) {
	subject := testSubject(70)
	q := testQuestion(t, subject, models.LevelMedium, 2)

	res := Score([]models.Question{q}, models.AnswerMap{}, 70)

	if len(res.Results) != 1 {
		t.Fatalf("expected 1 result row, got %d", len(res.Results))
	}
	row := res.Results[0]
	if row.IsCorrect {
		t.Error("unanswered question must count as incorrect")
	}
	if row.SelectedAnswer != "" {
		t.Errorf("SelectedAnswer = %q, want empty for skipped question", row.SelectedAnswer)
	}
	if row.CorrectAnswer != "right" {
		t.Errorf("CorrectAnswer = %q, want %q", row.CorrectAnswer, "right")
	}
	if row.PointsEarned != 0 {
		t.Errorf("PointsEarned = %d, want 0", row.PointsEarned)
	}
	if row.Explanation == nil || *row.Explanation != "because" {
		t.Errorf("Explanation not carried through: %v", row.Explanation)
	}
}
