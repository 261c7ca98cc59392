package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ChatStepSubject    = "select_subject"
	ChatStepDifficulty = "select_difficulty"
	ChatStepQuiz       = "quiz_started"
)

// ChatSession carries the chatbot flow state across request round-trips,
// keyed by a per-user token. Each step fills in one more field until the
// quiz is started through the engine.
type ChatSession struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Token       uuid.UUID  `gorm:"type:uuid;not null;unique" json:"token"`
	Step        string     `gorm:"size:30;not null;default:'select_subject'" json:"step"`
	SubjectCode *string    `gorm:"size:50" json:"subject_code,omitempty"`
	Level       *string    `gorm:"size:10" json:"level,omitempty"`
	AttemptID   *uuid.UUID `gorm:"type:uuid" json:"attempt_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
