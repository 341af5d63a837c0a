package catalogmodel

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/goccy/go-json"

	"github.com/reoring/catalogmodel/enum"
	"github.com/reoring/catalogmodel/i18n"
	js "github.com/reoring/catalogmodel/jsonschema"
	"github.com/reoring/catalogmodel/timestamp"
)

// FieldType normalizes one declared field during construction. Every field
// type maps JSON null to nil and accepts values it produced itself, so a
// record can be rebuilt from another record's fields.
type FieldType struct {
	kind       string
	elem       *Schema
	normalize  func(ctx context.Context, v any) (any, error)
	jsonSchema func() *js.Schema
}

// Kind returns a short description of the field type, e.g. "string" or "list<Image>".
func (t FieldType) Kind() string { return t.kind }

// Elem returns the record schema of a RecordOf or ListOf field, or nil.
func (t FieldType) Elem() *Schema { return t.elem }

func (t FieldType) valid() bool { return t.normalize != nil }

func (t FieldType) schema() *js.Schema {
	if t.jsonSchema == nil {
		return &js.Schema{}
	}
	return t.jsonSchema()
}

func typeIssue(ctx context.Context, expected string, got any) error {
	return Issues{{
		Path:    pointer(pathFrom(ctx)),
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, map[string]string{"detail": fmt.Sprintf("expected %s, got %T", expected, got)}),
		Hint:    expected,
		Cause:   ErrInvalidType,
	}}
}

// Any keeps the raw value untouched (e.g. free-form objects like external_urls).
func Any() FieldType {
	return FieldType{
		kind:       "any",
		normalize:  func(_ context.Context, v any) (any, error) { return v, nil },
		jsonSchema: func() *js.Schema { return &js.Schema{} },
	}
}

// String accepts JSON strings.
func String() FieldType {
	return FieldType{
		kind: "string",
		normalize: func(ctx context.Context, v any) (any, error) {
			switch s := v.(type) {
			case nil, string:
				return s, nil
			}
			return nil, typeIssue(ctx, "string", v)
		},
		jsonSchema: func() *js.Schema { return &js.Schema{Type: "string"} },
	}
}

// Bool accepts JSON booleans.
func Bool() FieldType {
	return FieldType{
		kind: "boolean",
		normalize: func(ctx context.Context, v any) (any, error) {
			switch b := v.(type) {
			case nil, bool:
				return b, nil
			}
			return nil, typeIssue(ctx, "boolean", v)
		},
		jsonSchema: func() *js.Schema { return &js.Schema{Type: "boolean"} },
	}
}

// Int accepts integral numbers and stores them as int.
func Int() FieldType {
	return FieldType{
		kind: "integer",
		normalize: func(ctx context.Context, v any) (any, error) {
			if v == nil {
				return nil, nil
			}
			if n, ok := toInt(v); ok {
				return n, nil
			}
			return nil, typeIssue(ctx, "integer", v)
		},
		jsonSchema: func() *js.Schema { return &js.Schema{Type: "integer"} },
	}
}

// Float accepts any number and stores it as float64.
func Float() FieldType {
	return FieldType{
		kind: "number",
		normalize: func(ctx context.Context, v any) (any, error) {
			if v == nil {
				return nil, nil
			}
			if f, ok := toFloat(v); ok {
				return f, nil
			}
			return nil, typeIssue(ctx, "number", v)
		},
		jsonSchema: func() *js.Schema { return &js.Schema{Type: "number"} },
	}
}

// Timestamp parses strings with timestamp.Parse. time.Time values are
// converted with timestamp.FromTime.
func Timestamp() FieldType {
	return FieldType{
		kind: "timestamp",
		normalize: func(ctx context.Context, v any) (any, error) {
			switch t := v.(type) {
			case nil, timestamp.Timestamp:
				return t, nil
			case time.Time:
				return timestamp.FromTime(t), nil
			case string:
				ts, err := timestamp.Parse(t)
				if err != nil {
					return nil, Issues{{
						Path:    pointer(pathFrom(ctx)),
						Code:    CodeInvalidFormat,
						Message: i18n.T(CodeInvalidFormat, map[string]string{"detail": t}),
						Hint:    "YYYY-MM-DDTHH:MM:SS[.ffffff]Z",
						Cause:   err,
					}}
				}
				return ts, nil
			}
			return nil, typeIssue(ctx, "timestamp string", v)
		},
		jsonSchema: func() *js.Schema { return &js.Schema{Type: "string", Format: "date-time"} },
	}
}

// Enum resolves strings against set with Set.Parse.
func Enum(set *enum.Set) FieldType {
	return FieldType{
		kind: "enum<" + set.Name() + ">",
		normalize: func(ctx context.Context, v any) (any, error) {
			switch t := v.(type) {
			case nil:
				return nil, nil
			case enum.Member:
				if set.Contains(t) {
					return t, nil
				}
			case string:
				if m, err := set.Parse(t); err == nil {
					return m, nil
				}
			default:
				return nil, typeIssue(ctx, "string", v)
			}
			return nil, Issues{{
				Path:    pointer(pathFrom(ctx)),
				Code:    CodeInvalidEnum,
				Message: i18n.T(CodeInvalidEnum, map[string]string{"detail": fmt.Sprint(v)}),
				Hint:    set.Name(),
				Cause:   &enum.UnknownNameError{Type: set.Name(), Name: fmt.Sprint(v)},
			}}
		},
		jsonSchema: func() *js.Schema { return &js.Schema{Title: set.Name(), Type: "string", Enum: set.Values()} },
	}
}

// RecordOf builds a nested record of schema s from a mapping.
func RecordOf(s *Schema) FieldType {
	return FieldType{
		kind: s.name,
		elem: s,
		normalize: func(ctx context.Context, v any) (any, error) {
			switch t := v.(type) {
			case nil:
				return nil, nil
			case *Record:
				if t == nil {
					return nil, nil
				}
				if t.schema == s {
					return t, nil
				}
			}
			return s.construct(ctx, v)
		},
		jsonSchema: func() *js.Schema {
			sch, _ := s.JSONSchema()
			return sch
		},
	}
}

// ListOf builds a List of schema s from an array of mappings.
func ListOf(s *Schema) FieldType {
	elem := RecordOf(s)
	return FieldType{
		kind: "list<" + s.name + ">",
		elem: s,
		normalize: func(ctx context.Context, v any) (any, error) {
			switch t := v.(type) {
			case nil:
				return nil, nil
			case *List:
				if t == nil {
					return nil, nil
				}
				if t.schema == s {
					return t, nil
				}
				return listFrom(ctx, s, elem, recordsAsAny(t.items))
			case []*Record:
				return listFrom(ctx, s, elem, recordsAsAny(t))
			}
			items, ok := asSlice(v)
			if !ok {
				return nil, typeIssue(ctx, "array", v)
			}
			return listFrom(ctx, s, elem, items)
		},
		jsonSchema: func() *js.Schema { return &js.Schema{Type: "array", Items: elem.schema()} },
	}
}

// Array normalizes every element of a JSON array with elem and yields []any.
func Array(elem FieldType) FieldType {
	return FieldType{
		kind: "array<" + elem.kind + ">",
		normalize: func(ctx context.Context, v any) (any, error) {
			if v == nil {
				return nil, nil
			}
			items, ok := asSlice(v)
			if !ok {
				return nil, typeIssue(ctx, "array", v)
			}
			out := make([]any, len(items))
			var iss Issues
			for i, it := range items {
				nv, err := elem.normalize(withPath(ctx, indexPath(ctx, i)), it)
				if err != nil {
					iss = AppendIssues(iss, issuesFromErr(indexPath(ctx, i), err)...)
					if !IsCollectIssues(ctx) {
						return nil, iss
					}
					continue
				}
				out[i] = nv
			}
			if len(iss) > 0 {
				return nil, iss
			}
			return out, nil
		},
		jsonSchema: func() *js.Schema { return &js.Schema{Type: "array", Items: elem.schema()} },
	}
}

func listFrom(ctx context.Context, s *Schema, elem FieldType, items []any) (*List, error) {
	recs := make([]*Record, 0, len(items))
	var iss Issues
	for i, it := range items {
		if it == nil {
			iss = AppendIssues(iss, typeIssue(withPath(ctx, indexPath(ctx, i)), s.name, it).(Issues)...)
			if !IsCollectIssues(ctx) {
				return nil, iss
			}
			continue
		}
		nv, err := elem.normalize(withPath(ctx, indexPath(ctx, i)), it)
		if err != nil {
			iss = AppendIssues(iss, issuesFromErr(indexPath(ctx, i), err)...)
			if !IsCollectIssues(ctx) {
				return nil, iss
			}
			continue
		}
		recs = append(recs, nv.(*Record))
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return &List{schema: s, items: recs}, nil
}

func recordsAsAny(rs []*Record) []any {
	out := make([]any, len(rs))
	for i, r := range rs {
		out[i] = r
	}
	return out
}

// asSlice accepts []any and any other slice or array kind.
func asSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint:
		if uint64(n) > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return integral(f)
	case float32:
		return integral(float64(n))
	case float64:
		return integral(n)
	}
	return 0, false
}

func integral(f float64) (int, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int(f), true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	if i, ok := toInt(v); ok {
		return float64(i), true
	}
	return 0, false
}
