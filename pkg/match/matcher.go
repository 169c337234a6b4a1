package match

// Matcher is the accept/reject test for one query word. The budget is fixed
// once from the word's length; candidates then pass the cheap length gate
// before the distance computation runs.
type Matcher struct {
	word    string
	wordLen int
	budget  int
	shrink  int
	expand  int
}

// NewMatcher builds a matcher for word with an already-resolved edit budget
// and the shrink/expand length bounds.
func NewMatcher(word string, budget, shrink, expand int) *Matcher {
	return &Matcher{
		word:    word,
		wordLen: RuneLen(word),
		budget:  budget,
		shrink:  shrink,
		expand:  expand,
	}
}

// WithinBounds is the length gate: a candidate may be at most shrink runes
// shorter and expand runes longer than the word. It is a hard cutoff,
// independent of edit distance.
func (m *Matcher) WithinBounds(candidate string) bool {
	n := RuneLen(candidate)
	return m.wordLen-n <= m.shrink && n-m.wordLen <= m.expand
}

// Matches reports whether candidate is a plausible typo variant of the
// word: inside the length bounds and within the edit budget. The gate runs
// first for speed only; the test is a pure conjunction.
func (m *Matcher) Matches(candidate string) bool {
	return m.WithinBounds(candidate) && Distance(m.word, candidate) <= m.budget
}
