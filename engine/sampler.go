package engine

import (
	"fmt"
	"math/rand"

	"github.com/omarashraf/quiz_platform/models"
)

// Sample draws min(count, pool size) distinct questions uniformly at random
// from the pool matching f, without replacement. Which questions are drawn
// and in what order they are presented are randomized independently: flows
// that reuse the same pool must still reshuffle per attempt. A short result
// means the bank does not hold enough questions; it is not an error. An
// empty pool yields an empty slice.
func (e *Engine) Sample(f Filter, count int) ([]models.Question, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be at least 1", ErrValidation)
	}
	if f.SubjectCode == "" {
		return nil, fmt.Errorf("%w: subject code is required", ErrValidation)
	}
	if f.Level != "" && !e.validLevel(f.Level) {
		return nil, fmt.Errorf("%w: unknown level %q", ErrValidation, f.Level)
	}

	pool, err := e.bank.ListQuestions(f)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return []models.Question{}, nil
	}

	n := count
	if n > len(pool) {
		n = len(pool)
	}

	picked := make([]models.Question, 0, n)
	for _, i := range rand.Perm(len(pool))[:n] {
		picked = append(picked, pool[i])
	}
	rand.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	return picked, nil
}
