// Package enum provides closed string enumerations whose lookups ignore case
// while member payloads keep the exact case they were declared with.
//
// The catalog API is not consistent about the case of enumerated strings
// ("album" vs "ALBUM"), so decoding folds case on the way in but never on the
// way out:
//
//	albumType := enum.MustNew("AlbumType",
//	    enum.Pair{Name: "album", Value: "album"},
//	    enum.Pair{Name: "single", Value: "single"},
//	)
//	m, _ := albumType.Lookup("ALBUM") // m.Value() == "album"
package enum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

// ErrUnknownName is matched by errors returned from Set.Lookup and Set.Parse.
var ErrUnknownName = errors.New("enum: no such member")

// UnknownNameError reports a lookup that matched no member of a set.
type UnknownNameError struct {
	Type string
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("enum: %s has no member %q", e.Type, e.Name)
}

func (e *UnknownNameError) Is(target error) bool { return target == ErrUnknownName }

// Pair declares one member: Name is the lookup key, Value the canonical payload.
type Pair struct {
	Name  string
	Value string
}

// Set is an immutable, ordered enumeration. It is safe for concurrent use.
type Set struct {
	typeName string
	pairs    []Pair
	byName   map[string]int
	byValue  map[string]int
}

// New builds a Set from pairs in declaration order. Names, and values, must be
// unique after case folding.
func New(typeName string, pairs ...Pair) (*Set, error) {
	if typeName == "" {
		return nil, errors.New("enum: type name is empty")
	}
	s := &Set{
		typeName: typeName,
		pairs:    make([]Pair, 0, len(pairs)),
		byName:   make(map[string]int, len(pairs)),
		byValue:  make(map[string]int, len(pairs)),
	}
	for i, p := range pairs {
		if p.Name == "" {
			return nil, fmt.Errorf("enum: %s member %d has an empty name", typeName, i)
		}
		fn := fold(p.Name)
		if _, dup := s.byName[fn]; dup {
			return nil, fmt.Errorf("enum: %s declares name %q twice (ignoring case)", typeName, p.Name)
		}
		fv := fold(p.Value)
		if _, dup := s.byValue[fv]; dup {
			return nil, fmt.Errorf("enum: %s declares value %q twice (ignoring case)", typeName, p.Value)
		}
		s.byName[fn] = i
		s.byValue[fv] = i
		s.pairs = append(s.pairs, p)
	}
	return s, nil
}

// MustNew is like New but panics on error.
func MustNew(typeName string, pairs ...Pair) *Set {
	s, err := New(typeName, pairs...)
	if err != nil {
		panic(err)
	}
	return s
}

// FromNames builds a Set whose values equal their names. names is split on
// whitespace and commas, so "a b c" and "a,b,c" are equivalent.
func FromNames(typeName, names string) (*Set, error) {
	fields := strings.FieldsFunc(names, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' || r == '\n' })
	pairs := lo.Map(fields, func(n string, _ int) Pair { return Pair{Name: n, Value: n} })
	return New(typeName, pairs...)
}

// MustFromNames is like FromNames but panics on error.
func MustFromNames(typeName, names string) *Set {
	s, err := FromNames(typeName, names)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the enumeration's type name.
func (s *Set) Name() string { return s.typeName }

// Len returns the number of members.
func (s *Set) Len() int { return len(s.pairs) }

// Lookup returns the member whose name equals name ignoring case.
func (s *Set) Lookup(name string) (Member, error) {
	if i, ok := s.byName[fold(name)]; ok {
		return Member{set: s, idx: i}, nil
	}
	return Member{}, &UnknownNameError{Type: s.typeName, Name: name}
}

// MustLookup is like Lookup but panics on error.
func (s *Set) MustLookup(name string) Member {
	m, err := s.Lookup(name)
	if err != nil {
		panic(err)
	}
	return m
}

// Parse resolves a raw wire value: declared values are tried first, then names,
// both ignoring case.
func (s *Set) Parse(raw string) (Member, error) {
	f := fold(raw)
	if i, ok := s.byValue[f]; ok {
		return Member{set: s, idx: i}, nil
	}
	if i, ok := s.byName[f]; ok {
		return Member{set: s, idx: i}, nil
	}
	return Member{}, &UnknownNameError{Type: s.typeName, Name: raw}
}

// Contains reports whether v is a member of s, or a string equal to one of the
// declared values ignoring case.
func (s *Set) Contains(v any) bool {
	switch t := v.(type) {
	case Member:
		return t.set == s
	case string:
		_, ok := s.byValue[fold(t)]
		return ok
	default:
		return false
	}
}

// Members returns the members in declaration order.
func (s *Set) Members() []Member {
	out := make([]Member, len(s.pairs))
	for i := range s.pairs {
		out[i] = Member{set: s, idx: i}
	}
	return out
}

// Values returns the canonical payloads in declaration order.
func (s *Set) Values() []string {
	return lo.Map(s.pairs, func(p Pair, _ int) string { return p.Value })
}

func fold(s string) string { return cases.Fold().String(s) }
