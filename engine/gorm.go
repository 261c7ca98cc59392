package engine

import (
	"errors"

	"github.com/google/uuid"
	"github.com/omarashraf/quiz_platform/models"
	"gorm.io/gorm"
)

// GormBank is the persistent QuestionBank. Writes go through the validation
// in ValidateQuestion, so every entry point gets the same checks.
type GormBank struct {
	db *gorm.DB
}

func NewGormBank(db *gorm.DB) *GormBank {
	return &GormBank{db: db}
}

func (b *GormBank) GetSubject(code string) (models.Subject, error) {
	var subject models.Subject
	if err := b.db.First(&subject, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Subject{}, ErrNotFound
		}
		return models.Subject{}, err
	}
	return subject, nil
}

func (b *GormBank) ListQuestions(f Filter) ([]models.Question, error) {
	query := b.db.Preload("Answers").
		Joins("JOIN subjects ON subjects.id = questions.subject_id").
		Where("subjects.code = ?", f.SubjectCode)
	if f.Level != "" {
		query = query.Where("questions.level = ?", f.Level)
	}

	var questions []models.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (b *GormBank) GetQuestion(id uuid.UUID) (models.Question, error) {
	var question models.Question
	err := b.db.Preload("Answers").Preload("Subject").First(&question, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Question{}, ErrNotFound
		}
		return models.Question{}, err
	}
	return question, nil
}

func (b *GormBank) CreateQuestion(q *models.Question) error {
	if err := ValidateQuestion(q); err != nil {
		return err
	}
	return b.db.Create(q).Error
}

// UpdateQuestion replaces the question and its answer set in one
// transaction. The old answers are dropped, since partial answer edits
// could leave zero or two correct options behind.
func (b *GormBank) UpdateQuestion(q *models.Question) error {
	if err := ValidateQuestion(q); err != nil {
		return err
	}
	return b.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Answer{}, "question_id = ?", q.ID).Error; err != nil {
			return err
		}
		return tx.Save(q).Error
	})
}

func (b *GormBank) DeleteQuestion(id uuid.UUID) error {
	return b.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Answer{}, "question_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Question{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// GormStore is the persistent AttemptStore.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateAttempt(a *models.QuizResult) error {
	return s.db.Create(a).Error
}

func (s *GormStore) GetAttempt(id uuid.UUID) (models.QuizResult, error) {
	var attempt models.QuizResult
	if err := s.db.First(&attempt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.QuizResult{}, ErrNotFound
		}
		return models.QuizResult{}, err
	}
	return attempt, nil
}

func (s *GormStore) UpdateAnswers(a *models.QuizResult) error {
	return s.db.Model(a).Updates(map[string]interface{}{
		"status":  a.Status,
		"answers": a.Answers,
	}).Error
}

// Finalize writes the attempt's final fields and all breakdown rows in one
// transaction. The unique index on (quiz_result_id, question_id) backstops
// races between duplicate finish requests.
func (s *GormStore) Finalize(a *models.QuizResult, rows []models.UserAnswer) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(a).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
