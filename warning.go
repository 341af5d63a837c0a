package catalogmodel

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/reoring/catalogmodel/i18n"
)

// Warning is a non-fatal notification raised during construction. Code is
// CodeUnknownAttribute for keys that matched no declared field.
type Warning struct {
	Code    string
	Schema  string   // name of the schema being constructed
	Path    string   // JSON Pointer of the record
	Keys    []string // offending keys, in input order
	Policy  UnknownPolicy
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s at %s: %s", w.Code, w.Schema, pointer(w.Path), strings.Join(w.Keys, ", "))
}

// WarningHandler receives construction warnings.
type WarningHandler interface {
	HandleWarning(ctx context.Context, w Warning)
}

// WarningFunc adapts a function to WarningHandler.
type WarningFunc func(ctx context.Context, w Warning)

func (f WarningFunc) HandleWarning(ctx context.Context, w Warning) { f(ctx, w) }

// WarningCollector records warnings in arrival order. It is meant to be used
// with WithWarningHandler by a single constructing goroutine.
type WarningCollector struct {
	Warnings []Warning
}

func (c *WarningCollector) HandleWarning(_ context.Context, w Warning) {
	c.Warnings = append(c.Warnings, w)
}

// Keys returns every reported key, flattened in arrival order.
func (c *WarningCollector) Keys() []string {
	var ks []string
	for _, w := range c.Warnings {
		ks = append(ks, w.Keys...)
	}
	return ks
}

// LogWarnings returns a handler that logs each warning at warn level.
func LogWarnings(l *zap.Logger) WarningHandler {
	return WarningFunc(func(_ context.Context, w Warning) {
		l.Warn(w.Message,
			zap.String("code", w.Code),
			zap.String("schema", w.Schema),
			zap.String("path", pointer(w.Path)),
			zap.Strings("keys", w.Keys),
			zap.Stringer("policy", w.Policy),
		)
	})
}

var (
	loggerMu   sync.RWMutex
	logger     *zap.Logger
	loggerOnce sync.Once
)

// SetLogger replaces the package logger used by the default warning handler.
// A nil logger silences it.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerOnce.Do(func() {})
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

// Logger returns the package logger, building a production logger on first use.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		loggerMu.Lock()
		logger = l
		loggerMu.Unlock()
	})
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

func emitUnknown(ctx context.Context, s *Schema, keys []string) {
	warningHandler(ctx).HandleWarning(ctx, Warning{
		Code:    CodeUnknownAttribute,
		Schema:  s.name,
		Path:    pathFrom(ctx),
		Keys:    keys,
		Policy:  s.unknown,
		Message: i18n.T(CodeUnknownAttribute, nil),
	})
}
