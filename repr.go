package catalogmodel

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/reoring/catalogmodel/enum"
	"github.com/reoring/catalogmodel/internal/repr"
	"github.com/reoring/catalogmodel/source"
	"github.com/reoring/catalogmodel/timestamp"
)

// reprDepth is how many record levels String expands.
const reprDepth = 2

// String renders a bounded single-line description such as
// `Image{height: 64, url: "https://...", width: 64}`. It is for inspection
// only; use JSON or Builtin for anything that is stored or compared.
func (r *Record) String() string {
	if r == nil {
		return "<nil>"
	}
	return repr.Clip(reprRecord(r, 0), repr.MaxWidth)
}

// String renders at most a few records of the list on one line.
func (l *List) String() string {
	if l == nil {
		return "<nil>"
	}
	items := make([]string, 0, repr.MaxItems)
	for i, r := range l.items {
		if i == repr.MaxItems {
			break
		}
		items = append(items, reprRecord(r, 1))
	}
	return repr.Clip(repr.Seq("[", "]", items, len(l.items)), repr.MaxWidth)
}

func reprRecord(r *Record, depth int) string {
	if depth >= reprDepth {
		return r.schema.name + "{...}"
	}
	parts := make([]string, 0, len(r.schema.fields)+1)
	for i, f := range r.schema.fields {
		parts = append(parts, f.name+": "+reprValue(r.values[i], depth+1))
	}
	if n := len(r.ExtraKeys()); n > 0 {
		parts = append(parts, "+"+strconv.Itoa(n)+" extra")
	}
	return r.schema.name + "{" + strings.Join(parts, ", ") + "}"
}

func reprValue(v any, depth int) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case *Record:
		if t == nil {
			return "nil"
		}
		return reprRecord(t, depth)
	case *List:
		if t == nil {
			return "nil"
		}
		return "[" + strconv.Itoa(len(t.items)) + " x " + t.schema.name + "]"
	case enum.Member:
		return t.GoString()
	case timestamp.Timestamp:
		return t.Format()
	case string:
		return repr.Quote(t)
	case json.Number:
		return t.String()
	case *source.Object:
		if t == nil {
			return "nil"
		}
		items := make([]string, 0, repr.MaxItems)
		for p := t.Oldest(); p != nil && len(items) < repr.MaxItems; p = p.Next() {
			items = append(items, repr.Quote(p.Key)+": "+reprValue(p.Value, depth))
		}
		return repr.Seq("{", "}", items, t.Len())
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]string, 0, repr.MaxItems)
		for _, k := range keys {
			if len(items) == repr.MaxItems {
				break
			}
			items = append(items, repr.Quote(k)+": "+reprValue(t[k], depth))
		}
		return repr.Seq("{", "}", items, len(t))
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		items := make([]string, 0, repr.MaxItems)
		for i := 0; i < rv.Len() && i < repr.MaxItems; i++ {
			items = append(items, reprValue(rv.Index(i).Interface(), depth))
		}
		return repr.Seq("[", "]", items, rv.Len())
	}
	return repr.Clip(fmt.Sprint(v), repr.MaxString)
}
