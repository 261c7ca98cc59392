package models

import (
	"time"

	"github.com/google/uuid"
)

type Subject struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Code           string    `gorm:"size:50;not null;unique" json:"code"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Description    string    `gorm:"type:text" json:"description"`
	Icon           string    `gorm:"size:50" json:"icon"`
	PassPercentage int       `gorm:"not null;default:60" json:"pass_percentage"`

	Questions []*Question `gorm:"constraint:OnDelete:CASCADE" json:"questions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
