package catalogmodel

import (
	"bytes"
	"encoding"
	"fmt"
	"io"
	"reflect"
	"sort"

	"github.com/goccy/go-json"

	"github.com/reoring/catalogmodel/enum"
	"github.com/reoring/catalogmodel/source"
	"github.com/reoring/catalogmodel/timestamp"
)

// Encoder writes record graphs as JSON. Besides JSON scalars, slices and
// string-keyed maps it understands records, lists, ordered objects,
// enumeration members and timestamps. Values of any other kind (structs
// without a marshaler, channels, funcs, complex numbers) fail with
// *json.UnsupportedTypeError; a record or list that contains itself fails
// with *json.UnsupportedValueError.
type Encoder struct {
	w          io.Writer
	extras     bool
	escapeHTML bool
	prefix     string
	indent     string
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w, escapeHTML: true} }

// IncludeExtras controls whether records emit extra attributes after their
// declared fields. It is off by default.
func (e *Encoder) IncludeExtras(on bool) { e.extras = on }

// SetEscapeHTML controls escaping of <, > and & inside strings.
func (e *Encoder) SetEscapeHTML(on bool) { e.escapeHTML = on }

// SetIndent formats subsequent output like json.Indent.
func (e *Encoder) SetIndent(prefix, indent string) {
	e.prefix = prefix
	e.indent = indent
}

// Encode writes v followed by a newline.
func (e *Encoder) Encode(v any) error {
	st := newEncodeState(e.extras, e.escapeHTML)
	if err := st.encode(v); err != nil {
		return err
	}
	out := st.buf.Bytes()
	if e.prefix != "" || e.indent != "" {
		var ib bytes.Buffer
		if err := json.Indent(&ib, out, e.prefix, e.indent); err != nil {
			return err
		}
		out = ib.Bytes()
	}
	out = append(out, '\n')
	_, err := e.w.Write(out)
	return err
}

// Marshal returns the JSON encoding of v without a trailing newline.
func Marshal(v any, opts ...RenderOption) ([]byte, error) {
	c := newRenderConfig(opts)
	st := newEncodeState(c.extras, true)
	if err := st.encode(v); err != nil {
		return nil, err
	}
	return st.buf.Bytes(), nil
}

type encodeState struct {
	buf        bytes.Buffer
	extras     bool
	escapeHTML bool
	visiting   map[any]struct{} // records, lists and ordered objects on the current path
}

func newEncodeState(extras, escapeHTML bool) *encodeState {
	return &encodeState{extras: extras, escapeHTML: escapeHTML, visiting: map[any]struct{}{}}
}

// enter marks p as being encoded; the returned func must be deferred.
func (st *encodeState) enter(p any) (func(), error) {
	if _, ok := st.visiting[p]; ok {
		return nil, cycleError(p)
	}
	st.visiting[p] = struct{}{}
	return func() { delete(st.visiting, p) }, nil
}

func cycleError(p any) *json.UnsupportedValueError {
	return &json.UnsupportedValueError{Value: reflect.ValueOf(p), Str: fmt.Sprintf("encountered a cycle via %T", p)}
}

// isNilPointer reports a typed nil pointer, whose value-receiver marshalers
// would panic.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (st *encodeState) scalar(v any) error {
	var (
		b   []byte
		err error
	)
	if st.escapeHTML {
		b, err = json.Marshal(v)
	} else {
		b, err = json.MarshalWithOption(v, json.DisableHTMLEscape())
	}
	if err != nil {
		return err
	}
	st.buf.Write(b)
	return nil
}

func (st *encodeState) encode(v any) error {
	switch t := v.(type) {
	case nil:
		st.buf.WriteString("null")
		return nil
	case *Record:
		if t == nil {
			st.buf.WriteString("null")
			return nil
		}
		return st.record(t)
	case *List:
		if t == nil {
			st.buf.WriteString("null")
			return nil
		}
		leave, err := st.enter(t)
		if err != nil {
			return err
		}
		defer leave()
		st.buf.WriteByte('[')
		for i, r := range t.items {
			if i > 0 {
				st.buf.WriteByte(',')
			}
			if err := st.encode(r); err != nil {
				return err
			}
		}
		st.buf.WriteByte(']')
		return nil
	case enum.Member:
		return st.scalar(t.Value())
	case timestamp.Timestamp:
		return st.scalar(t.Format())
	case *source.Object:
		if t == nil {
			st.buf.WriteString("null")
			return nil
		}
		leave, err := st.enter(t)
		if err != nil {
			return err
		}
		defer leave()
		st.buf.WriteByte('{')
		first := true
		for p := t.Oldest(); p != nil; p = p.Next() {
			if err := st.member(&first, p.Key, p.Value); err != nil {
				return err
			}
		}
		st.buf.WriteByte('}')
		return nil
	case map[string]any:
		if t == nil {
			st.buf.WriteString("null")
			return nil
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		st.buf.WriteByte('{')
		first := true
		for _, k := range keys {
			if err := st.member(&first, k, t[k]); err != nil {
				return err
			}
		}
		st.buf.WriteByte('}')
		return nil
	case []any:
		if t == nil {
			st.buf.WriteString("null")
			return nil
		}
		st.buf.WriteByte('[')
		for i, vv := range t {
			if i > 0 {
				st.buf.WriteByte(',')
			}
			if err := st.encode(vv); err != nil {
				return err
			}
		}
		st.buf.WriteByte(']')
		return nil
	case string, bool, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return st.scalar(t)
	case json.Marshaler:
		if isNilPointer(t) {
			st.buf.WriteString("null")
			return nil
		}
		b, err := t.MarshalJSON()
		if err != nil {
			return err
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, b); err != nil {
			return err
		}
		st.buf.Write(compact.Bytes())
		return nil
	case encoding.TextMarshaler:
		if isNilPointer(t) {
			st.buf.WriteString("null")
			return nil
		}
		b, err := t.MarshalText()
		if err != nil {
			return err
		}
		return st.scalar(string(b))
	}
	return st.reflectValue(reflect.ValueOf(v))
}

func (st *encodeState) record(r *Record) error {
	leave, err := st.enter(r)
	if err != nil {
		return err
	}
	defer leave()
	st.buf.WriteByte('{')
	first := true
	for i, f := range r.schema.fields {
		if err := st.member(&first, f.name, r.values[i]); err != nil {
			return err
		}
	}
	if st.extras && r.extras != nil {
		for p := r.extras.Oldest(); p != nil; p = p.Next() {
			if err := st.member(&first, p.Key, p.Value); err != nil {
				return err
			}
		}
	}
	st.buf.WriteByte('}')
	return nil
}

func (st *encodeState) member(first *bool, key string, v any) error {
	if !*first {
		st.buf.WriteByte(',')
	}
	*first = false
	if err := st.scalar(key); err != nil {
		return err
	}
	st.buf.WriteByte(':')
	return st.encode(v)
}

// reflectValue handles named scalar types, typed slices and string-keyed maps.
func (st *encodeState) reflectValue(rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			st.buf.WriteString("null")
			return nil
		}
		return st.encode(rv.Elem().Interface())
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return st.scalar(rv.Interface())
	case reflect.Slice:
		if rv.IsNil() {
			st.buf.WriteString("null")
			return nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return st.scalar(rv.Interface())
		}
		fallthrough
	case reflect.Array:
		st.buf.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				st.buf.WriteByte(',')
			}
			if err := st.encode(rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		st.buf.WriteByte(']')
		return nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			st.buf.WriteString("null")
			return nil
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		st.buf.WriteByte('{')
		first := true
		for _, k := range keys {
			if err := st.member(&first, k.String(), rv.MapIndex(k).Interface()); err != nil {
				return err
			}
		}
		st.buf.WriteByte('}')
		return nil
	}
	return &json.UnsupportedTypeError{Type: rv.Type()}
}
