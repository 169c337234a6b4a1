package source

import (
	"sort"
	"testing"
)

func newTestTrie() *TrieSource {
	trie := NewTrieSource()
	trie.Add("apple", 100)
	trie.Add("apply", 60)
	trie.Add("banana", 90)
	return trie
}

func TestTrieGenerate(t *testing.T) {
	trie := newTestTrie()
	seq, err := trie.Generate("", nil, true)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	got := append([]string(nil), seq...)
	sort.Strings(got)
	want := []string{"apple", "apply", "banana"}
	if !equal(got, want) {
		t.Errorf("Generate returned %v, want %v", got, want)
	}
}

func TestTrieGenerateFilter(t *testing.T) {
	trie := newTestTrie()
	seq, err := trie.Generate("app", nil, true)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	got := append([]string(nil), seq...)
	sort.Strings(got)
	if !equal(got, []string{"apple", "apply"}) {
		t.Errorf("filtered Generate returned %v", got)
	}
}

func TestTrieGeneratePredicate(t *testing.T) {
	trie := newTestTrie()
	pred := func(entry string) bool { return entry != "apply" }
	seq, err := trie.Generate("app", pred, true)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !equal(seq, Sequence{"apple"}) {
		t.Errorf("predicate Generate returned %v", seq)
	}
}

func TestTrieGenerateFirstOnly(t *testing.T) {
	trie := newTestTrie()
	seq, err := trie.Generate("", nil, false)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(seq) != 1 {
		t.Errorf("all=false returned %d entries, want 1", len(seq))
	}
}

func TestTrieAsSource(t *testing.T) {
	got := sorted(collect(t, newTestTrie(), nil))
	if !equal(got, []string{"apple", "apply", "banana"}) {
		t.Errorf("trie enumerated through Each as %v", got)
	}
}

func TestTrieAddOverwrites(t *testing.T) {
	trie := NewTrieSource()
	trie.Add("word", 1)
	trie.Add("word", 5)
	if trie.Len() != 1 {
		t.Errorf("Len = %d after re-adding the same word, want 1", trie.Len())
	}
	if got := trie.Frequency("word"); got != 5 {
		t.Errorf("Frequency = %d, want the overwritten 5", got)
	}
	if got := trie.Frequency("missing"); got != 0 {
		t.Errorf("Frequency for absent word = %d, want 0", got)
	}
}
