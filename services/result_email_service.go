package services

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/omarashraf/quiz_platform/database"
	"github.com/omarashraf/quiz_platform/engine"
	"github.com/omarashraf/quiz_platform/models"
	"github.com/omarashraf/quiz_platform/notifications"
)

// SendResultEmail mails a summary of a completed attempt to its owner.
func SendResultEmail(userID uuid.UUID, attempt models.QuizResult, result engine.ScoreResult) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		log.Printf("🔥 Failed to load user %s for result email: %v", userID, err)
		return
	}

	verdict := "Keep practicing!"
	if attempt.Passed {
		verdict = "Congratulations, you passed!"
	}

	html := fmt.Sprintf(
		"<h1>Quiz Result: %s</h1>"+
			"<p>%s</p>"+
			"<p>You answered %d of %d questions correctly and scored <strong>%.2f%%</strong> (%d/%d points).</p>",
		attempt.SubjectCode, verdict,
		result.CorrectCount, result.TotalQuestions,
		result.Percentage, result.EarnedPoints, result.TotalPoints,
	)

	notifications.SendEmail(user.FullName, user.Email, "Your quiz result", html)
}
