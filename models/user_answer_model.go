package models

import (
	"time"

	"github.com/google/uuid"
)

type UserAnswer struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuizResultID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_result_question" json:"quiz_result_id"`
	QuestionID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_result_question" json:"question_id"`
	SelectedAnswerID *uuid.UUID `gorm:"type:uuid" json:"selected_answer_id,omitempty"`
	IsCorrect        bool       `gorm:"not null;default:false" json:"is_correct"`
	PointsEarned     int        `gorm:"not null;default:0" json:"points_earned"`
	AnsweredAt       time.Time  `json:"answered_at"`

	QuizResult QuizResult `gorm:"foreignkey:QuizResultID" json:"-"`
	Question   Question   `gorm:"foreignkey:QuestionID" json:"-"`
}
