package catalogmodel

import (
	"iter"
	"strconv"
)

// List is an ordered collection of records sharing one schema.
type List struct {
	schema *Schema
	items  []*Record
}

// NewList collects already constructed records of schema s.
func NewList(s *Schema, records ...*Record) (*List, error) {
	if s == nil {
		return nil, Issues{{Path: "/", Code: CodeInvalidType, Message: "list schema is nil", Cause: ErrInvalidType}}
	}
	for i, r := range records {
		if r == nil || r.schema != s {
			return nil, Issues{{Path: "/" + strconv.Itoa(i), Code: CodeInvalidType, Message: "record of another schema", Hint: s.name, Cause: ErrInvalidType}}
		}
	}
	return &List{schema: s, items: append([]*Record(nil), records...)}, nil
}

// MustNewList is like NewList but panics on error.
func MustNewList(s *Schema, records ...*Record) *List {
	l, err := NewList(s, records...)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *List) Schema() *Schema { return l.schema }

func (l *List) Len() int { return len(l.items) }

// At returns the i-th record; it panics when i is out of range.
func (l *List) At(i int) *Record { return l.items[i] }

// Items returns a copy of the records.
func (l *List) Items() []*Record { return append([]*Record(nil), l.items...) }

// All iterates over index and record pairs.
func (l *List) All() iter.Seq2[int, *Record] {
	return func(yield func(int, *Record) bool) {
		for i, r := range l.items {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Builtin projects every record, in order. Like Record.Builtin it panics on
// self-containing records.
func (l *List) Builtin(opts ...RenderOption) []any {
	return l.builtin(newRenderConfig(opts))
}

func (l *List) MarshalJSON() ([]byte, error) { return Marshal(l) }

// JSON returns the list as a JSON array.
func (l *List) JSON(opts ...RenderOption) (string, error) {
	b, err := Marshal(l, opts...)
	return string(b), err
}
