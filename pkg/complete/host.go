package complete

import "github.com/bastiangx/typomatch/pkg/source"

// The host completion framework calls the engine through a fixed
// convention: (input, collection, predicate, point). The point argument is
// accepted for compatibility and otherwise unused.

// TryCompletion answers a best-match query in the host convention.
func (e *Engine) TryCompletion(input string, src source.Source, pred source.Predicate, point int) (*Match, error) {
	return e.BestMatch(input, src, pred)
}

// AllCompletions answers a list-every-match query in the host convention.
func (e *Engine) AllCompletions(input string, src source.Source, pred source.Predicate, point int) ([]string, error) {
	return e.AllMatches(input, src, pred)
}
