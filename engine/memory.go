package engine

import (
	"sync"

	"github.com/google/uuid"
	"github.com/omarashraf/quiz_platform/models"
)

// MemoryBank is an in-memory QuestionBank used in tests and local runs.
type MemoryBank struct {
	mu        sync.RWMutex
	subjects  map[string]models.Subject
	questions map[uuid.UUID]models.Question
}

func NewMemoryBank() *MemoryBank {
	return &MemoryBank{
		subjects:  map[string]models.Subject{},
		questions: map[uuid.UUID]models.Question{},
	}
}

func (b *MemoryBank) AddSubject(s models.Subject) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subjects[s.Code] = s
}

func (b *MemoryBank) AddQuestion(q models.Question) error {
	if err := ValidateQuestion(&q); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.questions[q.ID] = q
	return nil
}

func (b *MemoryBank) GetSubject(code string) (models.Subject, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s, ok := b.subjects[code]
	if !ok {
		return models.Subject{}, ErrNotFound
	}
	return s, nil
}

func (b *MemoryBank) ListQuestions(f Filter) ([]models.Question, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	subject, ok := b.subjects[f.SubjectCode]
	if !ok {
		return nil, nil
	}
	var out []models.Question
	for _, q := range b.questions {
		if q.SubjectID != subject.ID {
			continue
		}
		if f.Level != "" && q.Level != f.Level {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (b *MemoryBank) GetQuestion(id uuid.UUID) (models.Question, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	q, ok := b.questions[id]
	if !ok {
		return models.Question{}, ErrNotFound
	}
	return q, nil
}

// MemoryStore is an in-memory AttemptStore used in tests and local runs.
type MemoryStore struct {
	mu       sync.RWMutex
	attempts map[uuid.UUID]models.QuizResult
	rows     map[uuid.UUID][]models.UserAnswer
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		attempts: map[uuid.UUID]models.QuizResult{},
		rows:     map[uuid.UUID][]models.UserAnswer{},
	}
}

func (s *MemoryStore) CreateAttempt(a *models.QuizResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	s.attempts[a.ID] = cloneAttempt(*a)
	return nil
}

func (s *MemoryStore) GetAttempt(id uuid.UUID) (models.QuizResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.attempts[id]
	if !ok {
		return models.QuizResult{}, ErrNotFound
	}
	return cloneAttempt(a), nil
}

func (s *MemoryStore) UpdateAnswers(a *models.QuizResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.attempts[a.ID]
	if !ok {
		return ErrNotFound
	}
	stored.Status = a.Status
	stored.Answers = cloneAnswers(a.Answers)
	s.attempts[a.ID] = stored
	return nil
}

func (s *MemoryStore) Finalize(a *models.QuizResult, rows []models.UserAnswer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.attempts[a.ID]; !ok {
		return ErrNotFound
	}
	s.attempts[a.ID] = cloneAttempt(*a)
	s.rows[a.ID] = append([]models.UserAnswer(nil), rows...)
	return nil
}

// UserAnswers returns the persisted breakdown rows of a finalized attempt.
func (s *MemoryStore) UserAnswers(attemptID uuid.UUID) []models.UserAnswer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.UserAnswer(nil), s.rows[attemptID]...)
}

func cloneAttempt(a models.QuizResult) models.QuizResult {
	a.QuestionIDs = append(models.UUIDList(nil), a.QuestionIDs...)
	a.Answers = cloneAnswers(a.Answers)
	return a
}

func cloneAnswers(m models.AnswerMap) models.AnswerMap {
	out := models.AnswerMap{}
	for k, v := range m {
		out[k] = v
	}
	return out
}
