package source

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// TrieSource is a dictionary-backed candidate source built on a Patricia
// trie. It implements Generator, so the engine materializes it on demand
// without knowing its shape.
type TrieSource struct {
	trie  *patricia.Trie
	words int
}

// NewTrieSource returns an empty trie source.
func NewTrieSource() *TrieSource {
	return &TrieSource{trie: patricia.NewTrie()}
}

func (*TrieSource) isSource() {}

// Add inserts a word with its frequency. Re-adding a word overwrites the
// stored frequency without changing the word count.
func (t *TrieSource) Add(word string, frequency int) {
	if t.trie.Insert(patricia.Prefix(word), frequency) {
		t.words++
		return
	}
	t.trie.Set(patricia.Prefix(word), frequency)
}

// Len returns the number of distinct words in the trie.
func (t *TrieSource) Len() int {
	return t.words
}

// Frequency returns the stored frequency for word, or 0 if absent.
func (t *TrieSource) Frequency(word string) int {
	item := t.trie.Get(patricia.Prefix(word))
	if item == nil {
		return 0
	}
	freq, ok := item.(int)
	if !ok {
		log.Errorf("Unknown item type: %T for word %s", item, word)
		return 0
	}
	return freq
}

// errStop aborts a trie visit early without reporting a failure.
var errStop = errors.New("stop visit")

// Generate walks the subtree under filter and collects entries passing
// pred. With all false the walk stops after the first accepted entry,
// which is enough for existence checks.
func (t *TrieSource) Generate(filter string, pred Predicate, all bool) (Sequence, error) {
	var seq Sequence
	err := t.trie.VisitSubtree(patricia.Prefix(filter), func(p patricia.Prefix, item patricia.Item) error {
		word := string(p)
		if pred != nil && !pred(word) {
			return nil
		}
		seq = append(seq, word)
		if !all {
			return errStop
		}
		return nil
	})
	if err != nil && err != errStop {
		return nil, err
	}
	return seq, nil
}
