// Package source defines the candidate collections the matching engine can
// scan, as a closed set of variants with one enumeration strategy each.
// Whatever the variant, only the comparable string form of an entry takes
// part in matching.
package source

import (
	"errors"
	"fmt"
)

// ErrUnsupportedSource reports a candidate source that is not one of the
// recognized variants. It is surfaced rather than swallowed: an empty
// result would be indistinguishable from a correct negative one.
var ErrUnsupportedSource = errors.New("unsupported candidate source")

// Predicate is a caller-supplied acceptance test applied on top of the
// engine's own matching. A nil Predicate accepts everything.
type Predicate func(entry string) bool

// Source is one of the candidate collections in this package, or anything
// implementing Generator. Each reports everything else as
// ErrUnsupportedSource.
type Source interface {
	isSource()
}

// Sequence is an ordered list of candidate strings.
type Sequence []string

func (Sequence) isSource() {}

// Named is an atom that participates in matching through its name.
type Named interface {
	Name() string
}

// Atom is the plain Named implementation.
type Atom string

// Name returns the atom's string form.
func (a Atom) Name() string { return string(a) }

// Pair is one entry of an AssocList. Key must be a string or a Named atom;
// Value is ignored by matching.
type Pair struct {
	Key   any
	Value any
}

// AssocList is an ordered list of key/value pairs; only keys are matched.
type AssocList []Pair

func (AssocList) isSource() {}

// FreqTable maps candidate strings to a frequency. Frequencies are ignored
// by matching; enumeration order is map order.
type FreqTable map[string]int

func (FreqTable) isSource() {}

// NameTable is a collection of named atoms, matched by name. Enumeration
// order carries no meaning.
type NameTable []Named

func (NameTable) isSource() {}

// Generator lazily materializes a candidate sequence: anything that can
// produce entries given a filter string, a predicate, and a flag requesting
// all entries. Adapters implement it for collections whose shape the engine
// does not know.
type Generator interface {
	Generate(filter string, pred Predicate, all bool) (Sequence, error)
}

// GeneratorFunc adapts a plain function to a Generator usable as a Source.
type GeneratorFunc func(filter string, pred Predicate, all bool) (Sequence, error)

func (GeneratorFunc) isSource() {}

// Generate calls f.
func (f GeneratorFunc) Generate(filter string, pred Predicate, all bool) (Sequence, error) {
	return f(filter, pred, all)
}

// FromGenerator wraps g so it can be passed where a Source is expected.
func FromGenerator(g Generator) Source {
	return GeneratorFunc(g.Generate)
}

// Each enumerates the string form of every entry in src that passes pred,
// calling yield for each. A Generator source is materialized with an empty
// filter and the all-entries flag, then walked as a Sequence. Enumeration
// stops at the first error.
func Each(src Source, pred Predicate, yield func(entry string) error) error {
	accept := func(entry string) bool {
		return pred == nil || pred(entry)
	}

	switch s := src.(type) {
	case Sequence:
		for _, entry := range s {
			if !accept(entry) {
				continue
			}
			if err := yield(entry); err != nil {
				return err
			}
		}
	case AssocList:
		for _, p := range s {
			key, err := keyString(p.Key)
			if err != nil {
				return err
			}
			if !accept(key) {
				continue
			}
			if err := yield(key); err != nil {
				return err
			}
		}
	case FreqTable:
		for entry := range s {
			if !accept(entry) {
				continue
			}
			if err := yield(entry); err != nil {
				return err
			}
		}
	case NameTable:
		for _, atom := range s {
			name := atom.Name()
			if !accept(name) {
				continue
			}
			if err := yield(name); err != nil {
				return err
			}
		}
	case Generator:
		seq, err := s.Generate("", pred, true)
		if err != nil {
			return err
		}
		return Each(seq, pred, yield)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedSource, src)
	}
	return nil
}

// keyString coerces an AssocList key to its comparable string form.
func keyString(key any) (string, error) {
	switch k := key.(type) {
	case string:
		return k, nil
	case Named:
		return k.Name(), nil
	default:
		return "", fmt.Errorf("%w: alist key %T is not string-like", ErrUnsupportedSource, key)
	}
}
