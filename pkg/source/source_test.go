package source

import (
	"errors"
	"sort"
	"testing"
)

func collect(t *testing.T, src Source, pred Predicate) []string {
	t.Helper()
	var out []string
	err := Each(src, pred, func(entry string) error {
		out = append(out, entry)
		return nil
	})
	if err != nil {
		t.Fatalf("Each: %v", err)
	}
	return out
}

func sorted(entries []string) []string {
	out := append([]string(nil), entries...)
	sort.Strings(out)
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSequence(t *testing.T) {
	got := collect(t, Sequence{"foo", "bar", "baz"}, nil)
	if !equal(got, []string{"foo", "bar", "baz"}) {
		t.Errorf("Sequence enumerated %v", got)
	}
}

func TestSequencePredicate(t *testing.T) {
	pred := func(entry string) bool { return entry != "bar" }
	got := collect(t, Sequence{"foo", "bar", "baz"}, pred)
	if !equal(got, []string{"foo", "baz"}) {
		t.Errorf("predicate not applied, got %v", got)
	}
}

func TestAssocList(t *testing.T) {
	src := AssocList{
		{Key: "alpha", Value: 1},
		{Key: Atom("beta"), Value: 2},
	}
	got := collect(t, src, nil)
	if !equal(got, []string{"alpha", "beta"}) {
		t.Errorf("AssocList keys enumerated as %v", got)
	}
}

// a key that is neither a string nor a Named atom is a config error
func TestAssocListBadKey(t *testing.T) {
	src := AssocList{{Key: 42, Value: "x"}}
	err := Each(src, nil, func(string) error { return nil })
	if !errors.Is(err, ErrUnsupportedSource) {
		t.Errorf("bad alist key returned %v, want ErrUnsupportedSource", err)
	}
}

func TestFreqTable(t *testing.T) {
	src := FreqTable{"foo": 10, "bar": 20}
	got := sorted(collect(t, src, nil))
	if !equal(got, []string{"bar", "foo"}) {
		t.Errorf("FreqTable enumerated %v", got)
	}
}

func TestNameTable(t *testing.T) {
	src := NameTable{Atom("one"), Atom("two")}
	got := sorted(collect(t, src, nil))
	if !equal(got, []string{"one", "two"}) {
		t.Errorf("NameTable enumerated %v", got)
	}
}

func TestGeneratorFunc(t *testing.T) {
	var gotFilter string
	var gotAll bool
	gen := GeneratorFunc(func(filter string, pred Predicate, all bool) (Sequence, error) {
		gotFilter = filter
		gotAll = all
		return Sequence{"lazy", "table"}, nil
	})
	got := collect(t, gen, nil)
	if !equal(got, []string{"lazy", "table"}) {
		t.Errorf("Generator enumerated %v", got)
	}
	if gotFilter != "" || !gotAll {
		t.Errorf("Generator invoked with filter=%q all=%v, want empty filter and all entries", gotFilter, gotAll)
	}
}

func TestGeneratorError(t *testing.T) {
	sentinel := errors.New("table unavailable")
	gen := GeneratorFunc(func(string, Predicate, bool) (Sequence, error) {
		return nil, sentinel
	})
	err := Each(gen, nil, func(string) error { return nil })
	if !errors.Is(err, sentinel) {
		t.Errorf("generator error was swallowed: %v", err)
	}
}

// unknownSource stands in for a variant this package never learned about
type unknownSource struct{}

func (unknownSource) isSource() {}

func TestUnsupportedSource(t *testing.T) {
	err := Each(unknownSource{}, nil, func(string) error { return nil })
	if !errors.Is(err, ErrUnsupportedSource) {
		t.Errorf("unknown variant returned %v, want ErrUnsupportedSource", err)
	}
}

func TestNilSource(t *testing.T) {
	err := Each(nil, nil, func(string) error { return nil })
	if !errors.Is(err, ErrUnsupportedSource) {
		t.Errorf("nil source returned %v, want ErrUnsupportedSource", err)
	}
}
