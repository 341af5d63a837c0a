package catalogmodel_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cm "github.com/reoring/catalogmodel"
)

func TestPretty_CompactAndDump(t *testing.T) {
	r, err := dataSchema().FromMapping(quiet(), map[string]any{"i": 1, "u": 2})
	require.NoError(t, err)

	assert.Equal(t, "map[i:1]\n", r.PrettyString())
	assert.Equal(t, "map[i:1 u:2]\n", r.PrettyString(cm.WithPrettyExtras()))

	dump := r.PrettyString(cm.WithCompact(false), cm.WithIndent("    "))
	assert.Contains(t, dump, "(map[string]interface {}) (len=1) {\n")
	assert.Contains(t, dump, "    (string) (len=1) \"i\": (int) 1")
}

func TestPretty_ListAndDepth(t *testing.T) {
	c := containerSchema(dataSchema())
	r, err := c.FromMapping(quiet(), map[string]any{
		"items": []any{map[string]any{"i": 1}},
		"name":  "c",
	})
	require.NoError(t, err)

	l, ok := r.GetList("items")
	require.True(t, ok)
	var buf bytes.Buffer
	require.NoError(t, l.Pretty(&buf))
	assert.Equal(t, "[map[i:1]]\n", buf.String())

	shallow := r.PrettyString(cm.WithCompact(false), cm.WithDepth(1))
	assert.Contains(t, shallow, "<max depth reached>")
}
