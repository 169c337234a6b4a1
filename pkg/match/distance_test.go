package match

import (
	"fmt"
	"testing"
)

// check if our lev distance impl returns correct distance int
func TestDistance(t *testing.T) {
	testCases := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"a", "", 1},
		{"", "a", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"book", "back", 2},
		{"book", "books", 1},
		{"hello", "hallo", 1},
		{"foobor", "foobar", 1},
		{"foobor", "foo", 3},
		// transposition counts as 2 edits under pure Levenshtein
		{"cat", "cast", 1},
		{"act", "cat", 2},
		// matching is per code point, not per byte
		{"über", "uber", 1},
		{"héllo", "hello", 1},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s→%s", tc.a, tc.b), func(t *testing.T) {
			dist := Distance(tc.a, tc.b)
			if dist != tc.expected {
				t.Errorf("Expected distance %d, got %d", tc.expected, dist)
			}
		})
	}
}

func TestDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"foobor", "barfoo"},
		{"", "word"},
		{"über", "uber"},
	}
	for _, p := range pairs {
		if ab, ba := Distance(p[0], p[1]), Distance(p[1], p[0]); ab != ba {
			t.Errorf("Distance(%q,%q)=%d but Distance(%q,%q)=%d", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestDistanceIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "hello", "congratulations", "héllo"} {
		if d := Distance(s, s); d != 0 {
			t.Errorf("Distance(%q,%q) = %d, want 0", s, s, d)
		}
	}
}

func TestRuneLen(t *testing.T) {
	if got := RuneLen("über"); got != 4 {
		t.Errorf("RuneLen(über) = %d, want 4", got)
	}
	if got := RuneLen(""); got != 0 {
		t.Errorf("RuneLen of empty string = %d, want 0", got)
	}
}

func BenchmarkDistance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Distance("congratulations", "congratilations")
	}
}
