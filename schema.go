package catalogmodel

import (
	"context"
	"errors"
	"fmt"

	"github.com/reoring/catalogmodel/i18n"
	js "github.com/reoring/catalogmodel/jsonschema"
	"github.com/reoring/catalogmodel/source"
)

// Hook runs once after every declared field of r has been assigned. Hooks
// must tolerate fields that are already normalized.
type Hook func(ctx context.Context, r *Record) error

type field struct {
	name       string
	typ        FieldType
	def        any
	hasDefault bool
}

// Schema is an immutable, ordered record shape. Build one with Object.
// Schemas are safe for concurrent use.
type Schema struct {
	name    string
	fields  []field
	index   map[string]int
	unknown UnknownPolicy
	hooks   []Hook
}

// Builder declares a Schema.
type Builder struct {
	name    string
	fields  []field
	index   map[string]int
	unknown UnknownPolicy
	hooks   []Hook
	errs    []error
}

// FieldStep configures the field most recently declared with Builder.Field.
type FieldStep struct {
	b   *Builder
	idx int
}

// Object creates a new schema builder. Fields are required unless given a
// default, and unknown keys pass through with a warning.
func Object(name string) *Builder {
	return &Builder{
		name:    name,
		index:   map[string]int{},
		unknown: UnknownPassthrough,
	}
}

// Extends copies base's fields, hooks and unknown policy into b. Call it
// before declaring b's own fields; base hooks run before b's hooks.
func (b *Builder) Extends(base *Schema) *Builder {
	if base == nil {
		b.errs = append(b.errs, errors.New("extends a nil schema"))
		return b
	}
	for _, f := range base.fields {
		b.put(f)
	}
	b.hooks = append(b.hooks, base.hooks...)
	b.unknown = base.unknown
	return b
}

// put adds f, or replaces a field of the same name in place.
func (b *Builder) put(f field) int {
	if i, ok := b.index[f.name]; ok {
		b.fields[i] = f
		return i
	}
	b.index[f.name] = len(b.fields)
	b.fields = append(b.fields, f)
	return len(b.fields) - 1
}

// Field declares a required field. Redeclaring an inherited field keeps its
// position and replaces its type.
func (b *Builder) Field(name string, t FieldType) *FieldStep {
	if name == "" {
		b.errs = append(b.errs, errors.New("field name is empty"))
	}
	if !t.valid() {
		b.errs = append(b.errs, fmt.Errorf("field %q has no type", name))
	}
	return &FieldStep{b: b, idx: b.put(field{name: name, typ: t})}
}

// Default makes the field optional; missing input is replaced by v, which is
// normalized like any input value.
func (f *FieldStep) Default(v any) *Builder {
	f.b.fields[f.idx].def = v
	f.b.fields[f.idx].hasDefault = true
	return f.b
}

// Optional makes the field default to nil.
func (f *FieldStep) Optional() *Builder { return f.Default(nil) }

// Required removes any default from the field.
func (f *FieldStep) Required() *Builder {
	f.b.fields[f.idx].def = nil
	f.b.fields[f.idx].hasDefault = false
	return f.b
}

func (f *FieldStep) Field(name string, t FieldType) *FieldStep { return f.b.Field(name, t) }
func (f *FieldStep) PostInit(h Hook) *Builder                  { return f.b.PostInit(h) }
func (f *FieldStep) UnknownPassthrough() *Builder              { return f.b.UnknownPassthrough() }
func (f *FieldStep) UnknownStrip() *Builder                    { return f.b.UnknownStrip() }
func (f *FieldStep) UnknownStrict() *Builder                   { return f.b.UnknownStrict() }
func (f *FieldStep) Build() (*Schema, error)                   { return f.b.Build() }
func (f *FieldStep) MustBuild() *Schema                        { return f.b.MustBuild() }

// UnknownPassthrough keeps unknown keys as extra attributes (the default).
func (b *Builder) UnknownPassthrough() *Builder {
	b.unknown = UnknownPassthrough
	return b
}

// UnknownStrip drops unknown keys; a warning is still raised.
func (b *Builder) UnknownStrip() *Builder {
	b.unknown = UnknownStrip
	return b
}

// UnknownStrict rejects unknown keys with CodeUnknownKey.
func (b *Builder) UnknownStrict() *Builder {
	b.unknown = UnknownStrict
	return b
}

// PostInit registers a hook that runs after field assignment.
func (b *Builder) PostInit(h Hook) *Builder {
	if h != nil {
		b.hooks = append(b.hooks, h)
	}
	return b
}

// Build validates the builder and returns a Schema.
func (b *Builder) Build() (*Schema, error) {
	if b.name == "" {
		b.errs = append(b.errs, errors.New("schema name is empty"))
	}
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("catalogmodel: schema %q: %w", b.name, errors.Join(b.errs...))
	}
	s := &Schema{
		name:    b.name,
		fields:  append([]field(nil), b.fields...),
		index:   make(map[string]int, len(b.index)),
		unknown: b.unknown,
		hooks:   append([]Hook(nil), b.hooks...),
	}
	for k, v := range b.index {
		s.index[k] = v
	}
	return s, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// Fields returns the declared field names in order.
func (s *Schema) Fields() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.name
	}
	return out
}

// Has reports whether name is a declared field.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// FieldType returns the type of a declared field.
func (s *Schema) FieldType(name string) (FieldType, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldType{}, false
	}
	return s.fields[i].typ, true
}

func (s *Schema) Unknown() UnknownPolicy { return s.unknown }

// FromMapping constructs a record from raw, which may be a map[string]any, a
// *source.Object or another *Record.
func (s *Schema) FromMapping(ctx context.Context, raw any) (*Record, error) {
	if raw == nil {
		return nil, typeIssue(withPath(ctx, ""), "object", raw)
	}
	return s.construct(withPath(ctx, ""), raw)
}

// FromJSON decodes a JSON object and constructs a record from it.
func (s *Schema) FromJSON(ctx context.Context, data []byte) (*Record, error) {
	v, err := source.JSONBytes(data)
	if err != nil {
		return nil, parseIssue(err)
	}
	return s.FromMapping(ctx, v)
}

// FromYAML decodes a YAML document and constructs a record from it.
func (s *Schema) FromYAML(ctx context.Context, data []byte) (*Record, error) {
	v, err := source.YAMLBytes(data)
	if err != nil {
		return nil, parseIssue(err)
	}
	return s.FromMapping(ctx, v)
}

// ListFrom constructs a List from an array of mappings or records.
func (s *Schema) ListFrom(ctx context.Context, raw any) (*List, error) {
	ctx = withPath(ctx, "")
	if raw == nil {
		return nil, typeIssue(ctx, "array", raw)
	}
	v, err := ListOf(s).normalize(ctx, raw)
	if err != nil {
		return nil, err
	}
	return v.(*List), nil
}

func parseIssue(err error) error {
	return Issues{{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, map[string]string{"detail": err.Error()}), Cause: err}}
}

// JSONSchema projects the schema into a JSON Schema representation.
func (s *Schema) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(s.fields))
	var req []string
	for _, f := range s.fields {
		p := f.typ.schema()
		if f.hasDefault && f.def != nil {
			p.Default = f.def
		}
		props[f.name] = p
		if !f.hasDefault {
			req = append(req, f.name)
		}
	}
	// Strip and passthrough both accept unknown keys at runtime.
	var additional any = true
	if s.unknown == UnknownStrict {
		additional = false
	}
	return &js.Schema{Title: s.name, Type: "object", Properties: props, Required: req, AdditionalProperties: additional}, nil
}
