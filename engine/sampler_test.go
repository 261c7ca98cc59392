package engine

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/omarashraf/quiz_platform/models"
)

func TestSampleDistinctWithinPool(t *testing.T) {
	e, _, _, questions := newTestEngine(t, 60, 30)

	pool := make(map[uuid.UUID]bool, len(questions))
	for _, q := range questions {
		pool[q.ID] = true
	}

	testCases := []struct {
		name  string
		count int
		want  int
	}{
		{"subset", 10, 10},
		{"exact pool size", 30, 30},
		{"more than pool", 50, 30},
		{"single", 1, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.Sample(Filter{SubjectCode: "CSW351-AI", Level: models.LevelEasy}, tc.count)
			if err != nil {
				t.Fatalf("Sample returned error: %v", err)
			}
			if len(got) != tc.want {
				t.Fatalf("expected %d questions, got %d", tc.want, len(got))
			}

			seen := make(map[uuid.UUID]bool, len(got))
			for _, q := range got {
				if seen[q.ID] {
					t.Errorf("duplicate question %s in sample", q.ID)
				}
				seen[q.ID] = true
				if !pool[q.ID] {
					t.Errorf("question %s not in eligible pool", q.ID)
				}
			}
		})
	}
}

func TestSampleOrderVariesAcrossCalls(t *testing.T) {
	e, _, _, _ := newTestEngine(t, 60, 30)
	f := Filter{SubjectCode: "CSW351-AI", Level: models.LevelEasy}

	// Draw the full pool twice: the sets are equal, so any difference is
	// presentation order. Three tries keep the flake probability negligible.
	varied := false
	for try := 0; try < 3 && !varied; try++ {
		first, err := e.Sample(f, 30)
		if err != nil {
			t.Fatalf("Sample returned error: %v", err)
		}
		second, err := e.Sample(f, 30)
		if err != nil {
			t.Fatalf("Sample returned error: %v", err)
		}
		for i := range first {
			if first[i].ID != second[i].ID {
				varied = true
				break
			}
		}
	}
	if !varied {
		t.Error("expected presentation order to differ across calls")
	}
}

func TestSampleEmptyPool(t *testing.T) {
	e, _, _, _ := newTestEngine(t, 60, 5)

	got, err := e.Sample(Filter{SubjectCode: "CSW351-AI", Level: models.LevelHard}, 10)
	if err != nil {
		t.Fatalf("empty pool must not be an error, got: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty sample, got %d questions", len(got))
	}
}

func TestSampleValidation(t *testing.T) {
	e, _, _, _ := newTestEngine(t, 60, 5)

	testCases := []struct {
		name   string
		filter Filter
		count  int
	}{
		{"zero count", Filter{SubjectCode: "CSW351-AI"}, 0},
		{"negative count", Filter{SubjectCode: "CSW351-AI"}, -3},
		{"missing subject", Filter{}, 10},
		{"unknown level", Filter{SubjectCode: "CSW351-AI", Level: "impossible"}, 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := e.Sample(tc.filter, tc.count); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}
