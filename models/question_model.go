package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	LevelEasy   = "easy"
	LevelMedium = "medium"
	LevelHard   = "hard"
)

// DefaultPoints maps a difficulty level to the point value a question
// gets when no explicit value is set.
var DefaultPoints = map[string]int{
	LevelEasy:   1,
	LevelMedium: 2,
	LevelHard:   3,
}

type Question struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SubjectID    uuid.UUID `gorm:"type:uuid;not null;index" json:"subject_id"`
	QuestionText string    `gorm:"type:text;not null" json:"question_text"`
	CodeSnippet  *string   `gorm:"type:text" json:"code_snippet,omitempty"`
	Level        string    `gorm:"size:10;not null;default:'medium'" json:"level"`
	Points       int       `gorm:"not null;default:1" json:"points"`
	Explanation  string    `gorm:"type:text" json:"explanation"`
	Position     int       `gorm:"not null;default:0" json:"position"`
	MediaURL     *string   `gorm:"size:255" json:"media_url,omitempty"`

	Subject Subject   `gorm:"foreignkey:SubjectID" json:"-"`
	Answers []*Answer `gorm:"constraint:OnDelete:CASCADE" json:"answers,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// CorrectAnswer returns the answer row marked correct, or nil when the
// question was loaded without its answers.
func (q *Question) CorrectAnswer() *Answer {
	for _, a := range q.Answers {
		if a.IsCorrect {
			return a
		}
	}
	return nil
}
