package match

import (
	"errors"
	"math"
)

// ErrInvalidLevel reports a level policy that is neither a fixed count nor
// a length function. Surfaced to the caller, never silently defaulted.
var ErrInvalidLevel = errors.New("typo level is neither a fixed count nor a function of word length")

type levelKind uint8

const (
	levelUnset levelKind = iota
	levelFixed
	levelFunc
)

// LevelPolicy decides how many edits a word of a given length may absorb.
// It is either a fixed count or a function of the word's rune length; the
// zero value is invalid and makes Budget fail.
type LevelPolicy struct {
	kind  levelKind
	fixed int
	fn    func(wordLen int) float64
}

// FixedLevel tolerates exactly n edits regardless of word length.
func FixedLevel(n int) LevelPolicy {
	return LevelPolicy{kind: levelFixed, fixed: n}
}

// LevelFunc derives the budget from the word length; the result is rounded
// up to the nearest integer.
func LevelFunc(fn func(wordLen int) float64) LevelPolicy {
	return LevelPolicy{kind: levelFunc, fn: fn}
}

// ScaledLevel is the default policy: the rounded-up square root of the word
// length, so longer words absorb more simultaneous typos.
func ScaledLevel() LevelPolicy {
	return LevelFunc(func(wordLen int) float64 {
		return math.Sqrt(float64(wordLen))
	})
}

// Budget returns the maximum edit distance tolerated for a word of wordLen
// runes.
func (p LevelPolicy) Budget(wordLen int) (int, error) {
	switch p.kind {
	case levelFixed:
		return p.fixed, nil
	case levelFunc:
		return int(math.Ceil(p.fn(wordLen))), nil
	default:
		return 0, ErrInvalidLevel
	}
}
