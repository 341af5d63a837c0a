// Package source decodes wire documents into order-preserving values that
// catalog schemas can consume.
//
// Objects become *Object (an insertion-ordered map), arrays []any, numbers
// json.Number, and the remaining scalars string, bool or nil. Keeping key
// order lets records report extra attributes in the order the API sent them.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is an insertion-ordered JSON object.
type Object = orderedmap.OrderedMap[string, any]

// NewObject returns an empty Object.
func NewObject() *Object { return orderedmap.New[string, any]() }

// ErrDuplicateKey is returned when Options.RejectDuplicateKeys is set and an
// object repeats a key.
var ErrDuplicateKey = errors.New("source: duplicate key")

// ErrTooDeep is returned when nesting exceeds Options.MaxDepth.
var ErrTooDeep = errors.New("source: max depth exceeded")

// Options tunes decoding. The zero value accepts duplicate keys (last value
// wins, first position kept) and does not limit depth.
type Options struct {
	RejectDuplicateKeys bool
	MaxDepth            int
}

// JSONBytes decodes a single JSON document.
func JSONBytes(b []byte) (any, error) { return DecodeJSON(bytes.NewReader(b), Options{}) }

// JSONReader decodes a single JSON document from r.
func JSONReader(r io.Reader) (any, error) { return DecodeJSON(r, Options{}) }

// DecodeJSON decodes exactly one JSON document from r; trailing data is an error.
func DecodeJSON(r io.Reader, opt Options) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	d := &jsonDecoder{dec: dec, opt: opt}
	v, err := d.value(0)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return nil, errors.New("source: trailing data after JSON document")
		}
		return nil, err
	}
	return v, nil
}

type jsonDecoder struct {
	dec *json.Decoder
	opt Options
}

func (d *jsonDecoder) value(depth int) (any, error) {
	tok, err := d.dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		if d.opt.MaxDepth > 0 && depth >= d.opt.MaxDepth {
			return nil, ErrTooDeep
		}
		switch v {
		case '{':
			return d.object(depth + 1)
		case '[':
			return d.array(depth + 1)
		}
		return nil, fmt.Errorf("source: unexpected delimiter %q", rune(v))
	case string, bool, json.Number, nil:
		return v, nil
	case float64:
		return json.Number(strconv.FormatFloat(v, 'g', -1, 64)), nil
	}
	return nil, fmt.Errorf("source: unexpected token %T", tok)
}

func (d *jsonDecoder) object(depth int) (*Object, error) {
	obj := NewObject()
	for d.dec.More() {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("source: expected object key, got %T", tok)
		}
		val, err := d.value(depth)
		if err != nil {
			return nil, err
		}
		if _, present := obj.Set(key, val); present && d.opt.RejectDuplicateKeys {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
	}
	// closing '}'
	if _, err := d.dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func (d *jsonDecoder) array(depth int) ([]any, error) {
	arr := []any{}
	for d.dec.More() {
		val, err := d.value(depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
