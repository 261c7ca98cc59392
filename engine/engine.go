package engine

import (
	"github.com/google/uuid"
	"github.com/omarashraf/quiz_platform/models"
)

// Filter narrows the question pool to one subject and, optionally, one
// difficulty level.
type Filter struct {
	SubjectCode string
	Level       string
}

// QuestionBank is the engine's read view of the question store.
type QuestionBank interface {
	GetSubject(code string) (models.Subject, error)
	ListQuestions(f Filter) ([]models.Question, error)
	GetQuestion(id uuid.UUID) (models.Question, error)
}

// AttemptStore persists attempts across request round-trips. GetAttempt
// returns ErrNotFound for unknown ids; Finalize must write the attempt's
// final fields and all per-question rows atomically.
type AttemptStore interface {
	CreateAttempt(a *models.QuizResult) error
	GetAttempt(id uuid.UUID) (models.QuizResult, error)
	UpdateAnswers(a *models.QuizResult) error
	Finalize(a *models.QuizResult, rows []models.UserAnswer) error
}

// Config carries the engine's behaviour knobs. It is injected at
// construction time so multiple configurations can coexist in tests.
type Config struct {
	Levels       []string
	DefaultCount int
	MaxCount     int
}

// DefaultConfig mirrors the platform defaults: three tiers, ten questions
// shown per quiz, thirty requestable at most.
func DefaultConfig() Config {
	return Config{
		Levels:       []string{models.LevelEasy, models.LevelMedium, models.LevelHard},
		DefaultCount: 10,
		MaxCount:     30,
	}
}

// Engine is the quiz session and scoring engine: it samples question sets,
// tracks in-progress attempts and computes final, reproducible scores.
type Engine struct {
	cfg   Config
	bank  QuestionBank
	store AttemptStore
}

func New(cfg Config, bank QuestionBank, store AttemptStore) *Engine {
	if cfg.DefaultCount < 1 {
		cfg.DefaultCount = 10
	}
	if cfg.MaxCount < cfg.DefaultCount {
		cfg.MaxCount = cfg.DefaultCount
	}
	if len(cfg.Levels) == 0 {
		cfg.Levels = DefaultConfig().Levels
	}
	return &Engine{cfg: cfg, bank: bank, store: store}
}

// DefaultCount is the question count used when a caller asks for zero.
func (e *Engine) DefaultCount() int {
	return e.cfg.DefaultCount
}

func (e *Engine) validLevel(level string) bool {
	for _, l := range e.cfg.Levels {
		if l == level {
			return true
		}
	}
	return false
}
