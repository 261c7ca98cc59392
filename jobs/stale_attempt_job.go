package jobs

import (
	"log"
	"strconv"
	"time"

	config "github.com/omarashraf/quiz_platform/configs"
	"github.com/omarashraf/quiz_platform/database"
	"github.com/omarashraf/quiz_platform/models"
)

const defaultRetentionDays = 7

func retentionDays() int {
	raw := config.Config("ATTEMPT_RETENTION_DAYS")
	if raw == "" {
		return defaultRetentionDays
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return defaultRetentionDays
	}
	return days
}

// CleanupStaleAttempts drops attempts that were never completed and are
// older than the retention window. Completed attempts are immutable records
// and are never touched.
func CleanupStaleAttempts() {
	log.Println("Running job: CleanupStaleAttempts...")

	cutoff := time.Now().AddDate(0, 0, -retentionDays())

	result := database.DB.
		Where("status <> ? AND started_at < ?", models.AttemptCompleted, cutoff).
		Delete(&models.QuizResult{})

	if result.Error != nil {
		log.Printf("Error cleaning up stale attempts: %v", result.Error)
		return
	}

	if result.RowsAffected == 0 {
		log.Println("No stale attempts found.")
		return
	}

	log.Printf("Deleted %d stale attempt(s).", result.RowsAffected)
}

// CleanupStaleChatSessions removes chatbot sessions that never reached a
// started quiz within the retention window.
func CleanupStaleChatSessions() {
	cutoff := time.Now().AddDate(0, 0, -retentionDays())

	result := database.DB.
		Where("step <> ? AND updated_at < ?", models.ChatStepQuiz, cutoff).
		Delete(&models.ChatSession{})

	if result.Error != nil {
		log.Printf("Error cleaning up stale chat sessions: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Deleted %d stale chat session(s).", result.RowsAffected)
	}
}
