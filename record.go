package catalogmodel

import (
	"context"
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/reoring/catalogmodel/enum"
	"github.com/reoring/catalogmodel/timestamp"
)

// Record is a constructed value of a Schema: every declared field plus any
// extra attributes captured from unknown input keys. Records are built once
// and then treated as read-only; they are not safe for concurrent mutation.
type Record struct {
	schema   *Schema
	values   []any
	presence []Presence
	extras   *orderedmap.OrderedMap[string, any]
}

func newRecord(s *Schema) *Record {
	return &Record{
		schema:   s,
		values:   make([]any, len(s.fields)),
		presence: make([]Presence, len(s.fields)),
	}
}

func (r *Record) setExtra(k string, v any) {
	if r.extras == nil {
		r.extras = orderedmap.New[string, any]()
	}
	r.extras.Set(k, v)
}

// Schema returns the record's schema.
func (r *Record) Schema() *Schema { return r.schema }

// Get returns a declared field or an extra attribute.
func (r *Record) Get(name string) (any, bool) {
	if i, ok := r.schema.index[name]; ok {
		return r.values[i], true
	}
	return r.Extra(name)
}

// Value is Get without the presence flag.
func (r *Record) Value(name string) any {
	v, _ := r.Get(name)
	return v
}

// Has reports whether name is a declared field or an extra attribute.
func (r *Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Set assigns a field. Declared fields are normalized by their type; other
// names are stored as extra attributes without a warning.
func (r *Record) Set(ctx context.Context, name string, v any) error {
	i, ok := r.schema.index[name]
	if !ok {
		r.setExtra(name, v)
		return nil
	}
	p := "/" + escapeToken(name)
	nv, err := r.schema.fields[i].typ.normalize(withPath(ctx, p), v)
	if err != nil {
		return issuesFromErr(p, err)
	}
	r.values[i] = nv
	r.presence[i] = PresenceSeen
	if v == nil {
		r.presence[i] |= PresenceWasNull
	}
	return nil
}

// Presence returns how a declared field was filled during construction.
func (r *Record) Presence(name string) Presence {
	if i, ok := r.schema.index[name]; ok {
		return r.presence[i]
	}
	return 0
}

// Extra returns an attribute captured from an unknown input key.
func (r *Record) Extra(name string) (any, bool) {
	if r.extras == nil {
		return nil, false
	}
	return r.extras.Get(name)
}

// ExtraKeys returns the extra attribute names in input order.
func (r *Record) ExtraKeys() []string {
	if r.extras == nil {
		return nil
	}
	ks := make([]string, 0, r.extras.Len())
	for p := r.extras.Oldest(); p != nil; p = p.Next() {
		ks = append(ks, p.Key)
	}
	return ks
}

func (r *Record) GetString(name string) (string, bool) {
	s, ok := r.Value(name).(string)
	return s, ok
}

func (r *Record) GetInt(name string) (int, bool) {
	n, ok := r.Value(name).(int)
	return n, ok
}

func (r *Record) GetFloat(name string) (float64, bool) {
	f, ok := r.Value(name).(float64)
	return f, ok
}

func (r *Record) GetBool(name string) (bool, bool) {
	b, ok := r.Value(name).(bool)
	return b, ok
}

func (r *Record) GetTimestamp(name string) (timestamp.Timestamp, bool) {
	ts, ok := r.Value(name).(timestamp.Timestamp)
	return ts, ok
}

func (r *Record) GetEnum(name string) (enum.Member, bool) {
	m, ok := r.Value(name).(enum.Member)
	return m, ok
}

func (r *Record) GetRecord(name string) (*Record, bool) {
	n, ok := r.Value(name).(*Record)
	return n, ok && n != nil
}

func (r *Record) GetList(name string) (*List, bool) {
	l, ok := r.Value(name).(*List)
	return l, ok && l != nil
}

// Equal reports structural equality: same schema and equal built-in
// projections, extras included. Records that contain themselves are only
// equal to themselves.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil || r == o {
		return r == o
	}
	if r.schema != o.schema {
		return false
	}
	c := renderConfig{extras: true}
	a, err := builtinChecked(r, c)
	if err != nil {
		return false
	}
	b, err := builtinChecked(o, c)
	if err != nil {
		return false
	}
	return reflect.DeepEqual(a, b)
}

// Builtin projects the record into plain maps, slices and scalars. It panics
// with *json.UnsupportedValueError when the record contains itself.
func (r *Record) Builtin(opts ...RenderOption) map[string]any {
	return r.builtin(newRenderConfig(opts))
}

// MarshalJSON encodes declared fields in declaration order.
func (r *Record) MarshalJSON() ([]byte, error) { return Marshal(r) }

// JSON returns the record as JSON text.
func (r *Record) JSON(opts ...RenderOption) (string, error) {
	b, err := Marshal(r, opts...)
	return string(b), err
}
