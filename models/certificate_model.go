package models

import (
	"time"

	"github.com/google/uuid"
)

type Certificate struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID         uuid.UUID `gorm:"not null"`
	QuizResultID   uuid.UUID `gorm:"not null;unique"`
	SerialNumber   string    `gorm:"size:20;not null;unique"`
	Title          string    `gorm:"size:255;not null"`
	CompletionDate time.Time `gorm:"not null"`
	CertificateURL string    `gorm:"type:text;not null"`

	User       User       `gorm:"foreignkey:UserID"`
	QuizResult QuizResult `gorm:"foreignkey:QuizResultID"`
}
