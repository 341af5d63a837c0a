package enum

import (
	"cmp"

	"github.com/goccy/go-json"
)

// Member is one value of a Set. The zero Member belongs to no set.
// Members are comparable with ==.
type Member struct {
	set *Set
	idx int
}

// Valid reports whether m belongs to a set.
func (m Member) Valid() bool { return m.set != nil }

// Set returns the owning set, or nil for the zero Member.
func (m Member) Set() *Set { return m.set }

// Name returns the declared name.
func (m Member) Name() string {
	if m.set == nil {
		return ""
	}
	return m.set.pairs[m.idx].Name
}

// Value returns the canonical payload exactly as declared.
func (m Member) Value() string {
	if m.set == nil {
		return ""
	}
	return m.set.pairs[m.idx].Value
}

// Ordinal returns the declaration index, or -1 for the zero Member.
func (m Member) Ordinal() int {
	if m.set == nil {
		return -1
	}
	return m.idx
}

// String returns the canonical payload.
func (m Member) String() string { return m.Value() }

// GoString renders the member as Type.name.
func (m Member) GoString() string {
	if m.set == nil {
		return "enum.Member{}"
	}
	return m.set.typeName + "." + m.Name()
}

// Compare orders members by declaration order. It is usable with slices.SortFunc.
func (m Member) Compare(o Member) int { return cmp.Compare(m.Ordinal(), o.Ordinal()) }

// MarshalJSON encodes the canonical payload as a JSON string.
func (m Member) MarshalJSON() ([]byte, error) { return json.Marshal(m.Value()) }

// MarshalText encodes the canonical payload.
func (m Member) MarshalText() ([]byte, error) { return []byte(m.Value()), nil }
