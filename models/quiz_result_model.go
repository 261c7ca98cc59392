package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	AttemptStarted    = "started"
	AttemptInProgress = "in_progress"
	AttemptCompleted  = "completed"
)

// UUIDList is an ordered list of ids stored as a JSON text column.
type UUIDList []uuid.UUID

func (l UUIDList) Value() (driver.Value, error) {
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *UUIDList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	}
	return errors.New("unsupported type for UUIDList")
}

func (l UUIDList) Contains(id uuid.UUID) bool {
	for _, qid := range l {
		if qid == id {
			return true
		}
	}
	return false
}

// AnswerMap records the selected answer per question, stored as a JSON
// text column while the attempt is in flight.
type AnswerMap map[uuid.UUID]uuid.UUID

func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		m = AnswerMap{}
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *AnswerMap) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = AnswerMap{}
		return nil
	}
	return errors.New("unsupported type for AnswerMap")
}

// QuizResult is one user's run through a generated quiz, from start to
// completion. Once Status reaches completed the row is never updated again.
type QuizResult struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	SubjectCode string     `gorm:"size:50;not null;index" json:"subject_code"`
	Level       string     `gorm:"size:10;not null" json:"level"`
	Status      string     `gorm:"size:20;not null;default:'started'" json:"status"`

	QuestionIDs UUIDList  `gorm:"type:text;not null" json:"question_ids"`
	Answers     AnswerMap `gorm:"type:text" json:"answers"`

	Score        int     `gorm:"not null;default:0" json:"score"`
	TotalPoints  int     `gorm:"not null;default:0" json:"total_points"`
	CorrectCount int     `gorm:"not null;default:0" json:"correct_count"`
	Percentage   float64 `gorm:"not null;default:0" json:"percentage"`
	Passed       bool    `gorm:"not null;default:false" json:"passed"`
	TimeTaken    int     `gorm:"not null;default:0" json:"time_taken"`

	UserAnswers []*UserAnswer `gorm:"constraint:OnDelete:CASCADE" json:"user_answers,omitempty"`

	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
