package services

import (
	"log"

	"github.com/google/uuid"
	"github.com/omarashraf/quiz_platform/database"
	"github.com/omarashraf/quiz_platform/models"
	"gorm.io/gorm"
)

const (
	badgeNameFirstQuiz    = "First Quiz"
	badgeNamePerfectScore = "Perfect Score"
)

// AwardQuizRewards grants XP equal to the points earned in the attempt and
// hands out milestone badges.
func AwardQuizRewards(userID uuid.UUID, attempt models.QuizResult) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Preload("Badges").First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		user.XP += attempt.Score
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		var completedCount int64
		tx.Model(&models.QuizResult{}).
			Where("user_id = ? AND status = ?", userID, models.AttemptCompleted).
			Count(&completedCount)

		if completedCount == 1 {
			if err := awardBadge(tx, &user, badgeNameFirstQuiz); err != nil {
				return err
			}
		}
		if attempt.CorrectCount == len(attempt.QuestionIDs) && len(attempt.QuestionIDs) > 0 {
			if err := awardBadge(tx, &user, badgeNamePerfectScore); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		log.Printf("🔥 Failed to award quiz rewards to user %s: %v", userID, err)
	} else {
		log.Printf("✅ Awarded %d XP to user %s.", attempt.Score, userID)
	}
}

func awardBadge(tx *gorm.DB, user *models.User, name string) error {
	for _, badge := range user.Badges {
		if badge.Name == name {
			return nil
		}
	}

	var badge models.Badge
	if err := tx.Where("name = ?", name).First(&badge).Error; err != nil {
		log.Printf("Warning: Badge '%s' not found in database. Cannot award.", name)
		return nil
	}
	return tx.Model(user).Association("Badges").Append(&badge)
}
