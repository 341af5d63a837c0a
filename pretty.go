package catalogmodel

import (
	"bytes"
	"io"

	"github.com/davecgh/go-spew/spew"
)

type prettyConfig struct {
	depth   int
	compact bool
	indent  string
	extras  bool
}

// PrettyOption is forwarded to the structure-aware formatter.
type PrettyOption func(*prettyConfig)

// WithDepth limits how deep nested values are printed; 0 means unlimited.
func WithDepth(n int) PrettyOption { return func(c *prettyConfig) { c.depth = n } }

// WithCompact selects single-line output (the default) or an annotated,
// indented dump.
func WithCompact(on bool) PrettyOption { return func(c *prettyConfig) { c.compact = on } }

// WithIndent sets the indentation of non-compact output.
func WithIndent(s string) PrettyOption { return func(c *prettyConfig) { c.indent = s } }

// WithPrettyExtras includes extra attributes in the printed projection.
func WithPrettyExtras() PrettyOption { return func(c *prettyConfig) { c.extras = true } }

// Pretty prints the built-in projection of v to w.
func Pretty(w io.Writer, v any, opts ...PrettyOption) error {
	c := prettyConfig{compact: true, indent: "  "}
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	b, err := builtinChecked(v, renderConfig{extras: c.extras})
	if err != nil {
		return err
	}
	cfg := spew.ConfigState{
		Indent:                  c.indent,
		MaxDepth:                c.depth,
		SortKeys:                true,
		DisableMethods:          true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	if c.compact {
		_, err = cfg.Fprintf(w, "%v\n", b)
		return err
	}
	cfg.Fdump(w, b)
	return nil
}

func prettyString(v any, opts []PrettyOption) string {
	var buf bytes.Buffer
	_ = Pretty(&buf, v, opts...)
	return buf.String()
}

// Pretty prints the record's built-in projection to w.
func (r *Record) Pretty(w io.Writer, opts ...PrettyOption) error { return Pretty(w, r, opts...) }

// PrettyString is Pretty into a string.
func (r *Record) PrettyString(opts ...PrettyOption) string { return prettyString(r, opts) }

// Pretty prints the list's built-in projection to w.
func (l *List) Pretty(w io.Writer, opts ...PrettyOption) error { return Pretty(w, l, opts...) }

// PrettyString is Pretty into a string.
func (l *List) PrettyString(opts ...PrettyOption) string { return prettyString(l, opts) }
