package scan

import (
	"errors"
	"fmt"
)

// Scanner is one candidate implementation under test. Scan reports every
// offset in window where the pattern occurs, in any order; duplicates are
// tolerated by the verifier. A non-nil error is the fault arm of the
// result: the harness counts it like a wrong answer and moves on.
type Scanner interface {
	Name() string
	Scan(p Pattern, window []byte) ([]int, error)
}

// Registry is an ordered collection of scanners, assembled explicitly by
// the entry point rather than through package-level side effects. The zero
// value is ready to use.
type Registry struct {
	scanners []Scanner
	names    map[string]bool
}

// Register appends s. Nil scanners and duplicate names are rejected so the
// leaderboard stays unambiguous.
func (r *Registry) Register(s Scanner) error {
	if s == nil {
		return errors.New("cannot register a nil scanner")
	}
	name := s.Name()
	if name == "" {
		return errors.New("cannot register a scanner with an empty name")
	}
	if r.names[name] {
		return fmt.Errorf("scanner %q already registered", name)
	}
	if r.names == nil {
		r.names = make(map[string]bool)
	}
	r.names[name] = true
	r.scanners = append(r.scanners, s)
	return nil
}

// Scanners returns the registered scanners in registration order.
func (r *Registry) Scanners() []Scanner { return r.scanners }

// Len returns the number of registered scanners.
func (r *Registry) Len() int { return len(r.scanners) }

// DefaultRegistry returns the shipped candidate set with default rank
// tables. Entry points that have a corpus at hand can assemble their own
// registry around NewRareByte(BuildRankTable(corpus)) instead.
func DefaultRegistry() *Registry {
	r := new(Registry)
	for _, s := range []Scanner{
		Simple{},
		NewRareByte(nil),
		SWAR{},
		AsmMask{},
		Substring{},
	} {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

// checkPattern rejects patterns a filtering scanner cannot anchor on.
func checkPattern(p Pattern) error {
	if !p.Valid() {
		return errors.New("pattern must pair every byte with an x/? marker and fix at least one position")
	}
	return nil
}
