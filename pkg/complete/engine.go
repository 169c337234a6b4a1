// Package complete is the core engine: it drives a candidate source through
// the match predicate and reduces the accepted set to completion results.
package complete

import (
	"github.com/bastiangx/typomatch/pkg/match"
	"github.com/bastiangx/typomatch/pkg/source"
)

// Options is the engine configuration, passed explicitly so queries stay
// pure functions of their inputs.
type Options struct {
	// Level decides the edit budget for a word's length.
	Level match.LevelPolicy
	// ShrinkBound is how many runes shorter than the word a candidate may be.
	ShrinkBound int
	// ExpandBound is how many runes longer than the word a candidate may be.
	ExpandBound int
	// AllCompletions gates the list-every-match mode. Best-match queries
	// ignore it.
	AllCompletions bool
}

// DefaultOptions mirrors the host defaults: sqrt-of-length budget, shrink 1,
// expand 4, all-completions on.
func DefaultOptions() Options {
	return Options{
		Level:          match.ScaledLevel(),
		ShrinkBound:    1,
		ExpandBound:    4,
		AllCompletions: true,
	}
}

// Match is a selected best candidate. Length is the candidate's rune count,
// reported for the host's cursor placement only.
type Match struct {
	Word   string
	Length int
}

// Engine answers typo-tolerant completion queries against any candidate
// source. Options are fixed at construction; build a new Engine to
// reconfigure, so queries never race a settings change.
type Engine struct {
	opts Options
}

// NewEngine returns an engine with the given options.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Options returns the engine's current options.
func (e *Engine) Options() Options {
	return e.opts
}

// generate scans src and collects every entry accepted by pred and the
// match predicate. Order is traversal-dependent.
func (e *Engine) generate(word string, src source.Source, pred source.Predicate) ([]string, error) {
	budget, err := e.opts.Level.Budget(match.RuneLen(word))
	if err != nil {
		return nil, err
	}
	m := match.NewMatcher(word, budget, e.opts.ShrinkBound, e.opts.ExpandBound)

	var accepted []string
	err = source.Each(src, pred, func(entry string) error {
		if m.Matches(entry) {
			accepted = append(accepted, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accepted, nil
}

// AllMatches returns every candidate in src that is a plausible typo
// variant of word, in traversal order. When the AllCompletions option is
// off it returns nothing; best-match selection is unaffected.
func (e *Engine) AllMatches(word string, src source.Source, pred source.Predicate) ([]string, error) {
	if !e.opts.AllCompletions {
		return nil, nil
	}
	return e.generate(word, src, pred)
}

// BestMatch returns the accepted candidate with the smallest edit distance
// to word, or nil when nothing matched. Nothing matching is a normal
// outcome, not an error.
func (e *Engine) BestMatch(word string, src source.Source, pred source.Predicate) (*Match, error) {
	accepted, err := e.generate(word, src, pred)
	if err != nil {
		return nil, err
	}
	best, ok := SelectBest(word, accepted)
	if !ok {
		return nil, nil
	}
	return &Match{Word: best, Length: match.RuneLen(best)}, nil
}

// SelectBest scans candidates for the minimum edit distance to word. Only a
// strictly smaller distance replaces the running best, so ties keep the
// candidate encountered first; for map-backed sources that order is not
// deterministic, and callers must not rely on it.
func SelectBest(word string, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	best := candidates[0]
	bestDist := match.Distance(word, best)
	for _, c := range candidates[1:] {
		if d := match.Distance(word, c); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best, true
}
