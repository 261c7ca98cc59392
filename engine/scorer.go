package engine

import (
	"math"

	"github.com/google/uuid"
	"github.com/omarashraf/quiz_platform/models"
)

type QuestionResult struct {
	QuestionID     uuid.UUID `json:"question_id"`
	QuestionText   string    `json:"question_text"`
	SelectedAnswer string    `json:"selected_answer"`
	CorrectAnswer  string    `json:"correct_answer"`
	IsCorrect      bool      `json:"is_correct"`
	PointsEarned   int       `json:"points_earned"`
	Explanation    *string   `json:"explanation"`
}

type ScoreResult struct {
	TotalQuestions int              `json:"total_questions"`
	CorrectCount   int              `json:"correct_count"`
	IncorrectCount int              `json:"incorrect_count"`
	EarnedPoints   int              `json:"earned_points"`
	TotalPoints    int              `json:"total_points"`
	Percentage     float64          `json:"percentage"`
	Passed         bool             `json:"passed"`
	Results        []QuestionResult `json:"results"`
}

// Score grades a completed answer map against the given question sequence.
// Unanswered questions count as incorrect and earn nothing, but their point
// value still goes into the denominator. The percentage is rounded to two
// decimals before the threshold comparison, and the comparison is inclusive:
// a rounded 70.00 passes a threshold of 70. Questions must carry their
// Answers relation.
func Score(questions []models.Question, answers models.AnswerMap, passThresholdPct int) ScoreResult {
	res := ScoreResult{
		TotalQuestions: len(questions),
		Results:        make([]QuestionResult, 0, len(questions)),
	}

	for _, q := range questions {
		res.TotalPoints += q.Points

		qr := QuestionResult{
			QuestionID:   q.ID,
			QuestionText: q.QuestionText,
		}
		if q.Explanation != "" {
			explanation := q.Explanation
			qr.Explanation = &explanation
		}
		if correct := q.CorrectAnswer(); correct != nil {
			qr.CorrectAnswer = correct.AnswerText
		}

		if selectedID, ok := answers[q.ID]; ok {
			for _, a := range q.Answers {
				if a.ID == selectedID {
					qr.SelectedAnswer = a.AnswerText
					qr.IsCorrect = a.IsCorrect
					break
				}
			}
		}

		if qr.IsCorrect {
			res.CorrectCount++
			res.EarnedPoints += q.Points
			qr.PointsEarned = q.Points
		}

		res.Results = append(res.Results, qr)
	}

	res.IncorrectCount = res.TotalQuestions - res.CorrectCount
	if res.TotalPoints > 0 {
		res.Percentage = round2(100 * float64(res.EarnedPoints) / float64(res.TotalPoints))
	}
	res.Passed = res.Percentage >= float64(passThresholdPct)

	return res
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
