package source_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/catalogmodel/source"
)

func keys(o *source.Object) []string {
	var ks []string
	for p := o.Oldest(); p != nil; p = p.Next() {
		ks = append(ks, p.Key)
	}
	return ks
}

func TestJSONBytes_PreservesKeyOrder(t *testing.T) {
	v, err := source.JSONBytes([]byte(`{"z":1,"a":{"y":true,"b":null},"m":[1.5,"x"]}`))
	require.NoError(t, err)
	obj, ok := v.(*source.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, keys(obj))

	z, _ := obj.Get("z")
	assert.Equal(t, json.Number("1"), z)

	a, _ := obj.Get("a")
	assert.Equal(t, []string{"y", "b"}, keys(a.(*source.Object)))

	m, _ := obj.Get("m")
	assert.Equal(t, []any{json.Number("1.5"), "x"}, m)
}

func TestJSONBytes_Errors(t *testing.T) {
	_, err := source.JSONBytes([]byte(`{"a":1} {"b":2}`))
	assert.Error(t, err)

	_, err = source.JSONBytes([]byte(`{"a":`))
	assert.Error(t, err)

	_, err = source.JSONBytes(nil)
	assert.Error(t, err)
}

func TestDecodeJSON_Options(t *testing.T) {
	in := []byte(`{"a":1,"a":2}`)
	v, err := source.JSONBytes(in)
	require.NoError(t, err)
	a, _ := v.(*source.Object).Get("a")
	assert.Equal(t, json.Number("2"), a)

	_, err = source.DecodeJSON(bytes.NewReader(in), source.Options{RejectDuplicateKeys: true})
	assert.True(t, errors.Is(err, source.ErrDuplicateKey))

	_, err = source.DecodeJSON(bytes.NewReader([]byte(`[[[1]]]`)), source.Options{MaxDepth: 2})
	assert.True(t, errors.Is(err, source.ErrTooDeep))
}

func TestYAMLBytes(t *testing.T) {
	v, err := source.YAMLBytes([]byte("id: abc\nicons:\n  - url: https://i.example/1.jpg\n    height: 64\nratio: 0.5\nok: true\nnone: ~\nadded_at: 2019-01-01T12:00:00Z\n"))
	require.NoError(t, err)
	obj := v.(*source.Object)
	assert.Equal(t, []string{"id", "icons", "ratio", "ok", "none", "added_at"}, keys(obj))

	icons, _ := obj.Get("icons")
	icon := icons.([]any)[0].(*source.Object)
	h, _ := icon.Get("height")
	assert.Equal(t, json.Number("64"), h)

	r, _ := obj.Get("ratio")
	assert.Equal(t, json.Number("0.5"), r)
	ok, _ := obj.Get("ok")
	assert.Equal(t, true, ok)
	none, present := obj.Get("none")
	assert.True(t, present)
	assert.Nil(t, none)
	added, _ := obj.Get("added_at")
	assert.Equal(t, "2019-01-01T12:00:00Z", added)
}
