package catalogmodel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	cm "github.com/reoring/catalogmodel"
)

func TestWarnings_DefaultHandlerLogs(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	cm.SetLogger(zap.New(core))
	t.Cleanup(func() { cm.SetLogger(nil) })

	c := containerSchema(dataSchema())
	_, err := c.FromMapping(context.Background(), map[string]any{
		"items": []any{map[string]any{"i": 1, "u": 2}},
		"name":  "c",
	})
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, cm.CodeUnknownAttribute, fields["code"])
	assert.Equal(t, "Data", fields["schema"])
	assert.Equal(t, "/items/0", fields["path"])
	assert.Equal(t, []any{"u"}, fields["keys"])
	assert.Equal(t, "passthrough", fields["policy"])
}

func TestWarnings_WithoutWarnings(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cm.SetLogger(zap.New(core))
	t.Cleanup(func() { cm.SetLogger(nil) })

	r, err := dataSchema().FromMapping(cm.WithoutWarnings(context.Background()), map[string]any{"i": 1, "u": 2})
	require.NoError(t, err)
	assert.True(t, r.Has("u"))
	assert.Zero(t, logs.Len())
}

func TestWarnings_FuncHandlerAndString(t *testing.T) {
	var got []cm.Warning
	ctx := cm.WithWarningHandler(context.Background(), cm.WarningFunc(func(_ context.Context, w cm.Warning) {
		got = append(got, w)
	}))
	_, err := dataSchema().FromMapping(ctx, map[string]any{"i": 1, "b": 1, "a": 2})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "unknown_attribute: Data at /: a, b", got[0].String())
}
