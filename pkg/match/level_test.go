package match

import (
	"errors"
	"testing"
)

func TestFixedLevel(t *testing.T) {
	policy := FixedLevel(2)
	for _, wordLen := range []int{0, 1, 6, 40} {
		budget, err := policy.Budget(wordLen)
		if err != nil {
			t.Fatalf("Budget(%d): %v", wordLen, err)
		}
		if budget != 2 {
			t.Errorf("Budget(%d) = %d, want 2 regardless of length", wordLen, budget)
		}
	}
}

// budgets from the default sqrt policy are rounded up
func TestScaledLevel(t *testing.T) {
	testCases := []struct {
		wordLen  int
		expected int
	}{
		{0, 0},
		{1, 1},
		{3, 2},
		{4, 2},
		{6, 3},
		{9, 3},
		{10, 4},
		{16, 4},
	}

	policy := ScaledLevel()
	for _, tc := range testCases {
		budget, err := policy.Budget(tc.wordLen)
		if err != nil {
			t.Fatalf("Budget(%d): %v", tc.wordLen, err)
		}
		if budget != tc.expected {
			t.Errorf("Budget(%d) = %d, want %d", tc.wordLen, budget, tc.expected)
		}
	}
}

func TestLevelFuncCeil(t *testing.T) {
	policy := LevelFunc(func(wordLen int) float64 { return float64(wordLen) / 4 })
	budget, err := policy.Budget(5)
	if err != nil {
		t.Fatal(err)
	}
	if budget != 2 {
		t.Errorf("Budget(5) with len/4 = %d, want ceil(1.25) = 2", budget)
	}
}

// the zero value is neither form and must be surfaced, not defaulted
func TestInvalidLevel(t *testing.T) {
	var policy LevelPolicy
	_, err := policy.Budget(6)
	if !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("zero-value policy returned %v, want ErrInvalidLevel", err)
	}
}
