package catalogmodel

import (
	"github.com/goccy/go-json"

	"github.com/reoring/catalogmodel/enum"
	"github.com/reoring/catalogmodel/source"
	"github.com/reoring/catalogmodel/timestamp"
)

// Builtin projects v into plain maps, slices and scalars: records become
// map[string]any, lists []any, enumeration members their payload and
// timestamps their text. Other values are returned as they are. It panics
// with *json.UnsupportedValueError when a record or list contains itself.
func Builtin(v any, opts ...RenderOption) any {
	return newBuiltinState(newRenderConfig(opts)).value(v)
}

// builtinChecked is Builtin returning the cycle error instead of panicking.
func builtinChecked(v any, c renderConfig) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			cerr, ok := r.(*json.UnsupportedValueError)
			if !ok {
				panic(r)
			}
			err = cerr
		}
	}()
	return newBuiltinState(c).value(v), nil
}

type builtinState struct {
	c        renderConfig
	visiting map[any]struct{}
}

func newBuiltinState(c renderConfig) *builtinState {
	return &builtinState{c: c, visiting: map[any]struct{}{}}
}

func (b *builtinState) enter(p any) func() {
	if _, ok := b.visiting[p]; ok {
		panic(cycleError(p))
	}
	b.visiting[p] = struct{}{}
	return func() { delete(b.visiting, p) }
}

func (r *Record) builtin(c renderConfig) map[string]any {
	return newBuiltinState(c).record(r)
}

func (l *List) builtin(c renderConfig) []any {
	return newBuiltinState(c).list(l)
}

func (b *builtinState) record(r *Record) map[string]any {
	defer b.enter(r)()
	out := make(map[string]any, len(r.values))
	for i, f := range r.schema.fields {
		out[f.name] = b.value(r.values[i])
	}
	if b.c.extras && r.extras != nil {
		for p := r.extras.Oldest(); p != nil; p = p.Next() {
			out[p.Key] = b.value(p.Value)
		}
	}
	return out
}

func (b *builtinState) list(l *List) []any {
	defer b.enter(l)()
	out := make([]any, len(l.items))
	for i, r := range l.items {
		out[i] = b.record(r)
	}
	return out
}

func (b *builtinState) value(v any) any {
	switch t := v.(type) {
	case *Record:
		if t == nil {
			return nil
		}
		return b.record(t)
	case *List:
		if t == nil {
			return nil
		}
		return b.list(t)
	case enum.Member:
		return t.Value()
	case timestamp.Timestamp:
		return t.Format()
	case *source.Object:
		if t == nil {
			return nil
		}
		defer b.enter(t)()
		out := make(map[string]any, t.Len())
		for p := t.Oldest(); p != nil; p = p.Next() {
			out[p.Key] = b.value(p.Value)
		}
		return out
	case map[string]any:
		if t == nil {
			return t
		}
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = b.value(vv)
		}
		return out
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = b.value(vv)
		}
		return out
	}
	return v
}
