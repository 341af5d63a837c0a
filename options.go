package catalogmodel

import (
	"context"
	"strconv"
	"strings"
)

// ---- Construction-time context options ----

type contextKey int

const (
	_ctxKeyWarningHandler contextKey = iota
	_ctxKeyCollectIssues
	_ctxKeyPath
)

// WithWarningHandler returns a child context whose constructions report
// warnings to h instead of the package logger.
func WithWarningHandler(ctx context.Context, h WarningHandler) context.Context {
	return context.WithValue(ctx, _ctxKeyWarningHandler, h)
}

// WithoutWarnings returns a child context that discards warnings. Extra
// attributes are still kept on the records.
func WithoutWarnings(ctx context.Context) context.Context {
	return WithWarningHandler(ctx, WarningFunc(func(context.Context, Warning) {}))
}

func warningHandler(ctx context.Context) WarningHandler {
	if h, ok := ctx.Value(_ctxKeyWarningHandler).(WarningHandler); ok && h != nil {
		return h
	}
	return LogWarnings(Logger())
}

// WithCollectIssues returns a child context in which construction keeps going
// after the first failing field and reports every issue of the record at once.
// No record is returned either way.
func WithCollectIssues(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyCollectIssues, enabled)
}

// IsCollectIssues reports whether construction should gather all issues.
func IsCollectIssues(ctx context.Context) bool {
	b, _ := ctx.Value(_ctxKeyCollectIssues).(bool)
	return b
}

// withPath records the JSON Pointer of the value being normalized so nested
// issues and warnings can name their location.
func withPath(ctx context.Context, p string) context.Context {
	return context.WithValue(ctx, _ctxKeyPath, p)
}

func pathFrom(ctx context.Context) string {
	p, _ := ctx.Value(_ctxKeyPath).(string)
	return p
}

var tokenEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// escapeToken escapes a key for use as a JSON Pointer segment (RFC 6901).
func escapeToken(key string) string { return tokenEscaper.Replace(key) }

func childPath(ctx context.Context, key string) string { return pathFrom(ctx) + "/" + escapeToken(key) }

func indexPath(ctx context.Context, i int) string { return childPath(ctx, strconv.Itoa(i)) }

// pointer renders an empty path as the root pointer.
func pointer(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

// ---- Render options ----

type renderConfig struct {
	extras bool
}

// RenderOption tunes Builtin and JSON output.
type RenderOption func(*renderConfig)

// WithExtras includes extra attributes after the declared fields, in input order.
func WithExtras() RenderOption { return func(c *renderConfig) { c.extras = true } }

func newRenderConfig(opts []RenderOption) renderConfig {
	var c renderConfig
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	return c
}
