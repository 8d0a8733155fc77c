package dsl

import (
	"context"
	"fmt"
	"sort"

	subskema "github.com/reoring/subskema"
	"github.com/reoring/subskema/i18n"
)

// Object starts an object schema builder.
func Object() *ObjectBuilder {
	return &ObjectBuilder{
		fields:   map[string]subskema.AnySchema{},
		required: map[string]struct{}{},
	}
}

// ObjectBuilder accumulates fields and policies; call Build or MustBuild to
// obtain the schema.
type ObjectBuilder struct {
	fields       map[string]subskema.AnySchema
	required     map[string]struct{}
	allowUnknown bool
	err          error
}

// Field declares a property with its child schema. Redeclaring a name is a
// build error.
func (b *ObjectBuilder) Field(name string, s subskema.AnySchema) *ObjectBuilder {
	if _, dup := b.fields[name]; dup && b.err == nil {
		b.err = fmt.Errorf("dsl: duplicate field %q", name)
	}
	b.fields[name] = s
	return b
}

// Require marks properties as required during value parsing. Resolution is
// unaffected; a path may address optional properties freely.
func (b *ObjectBuilder) Require(names ...string) *ObjectBuilder {
	for _, n := range names {
		b.required[n] = struct{}{}
	}
	return b
}

// UnknownStrip accepts and drops unknown keys during value parsing. The
// default is strict: unknown keys are reported as unknown_key.
func (b *ObjectBuilder) UnknownStrip() *ObjectBuilder {
	b.allowUnknown = true
	return b
}

// UnknownStrict rejects unknown keys (the default; provided for symmetry).
func (b *ObjectBuilder) UnknownStrict() *ObjectBuilder {
	b.allowUnknown = false
	return b
}

// Build finalizes the schema.
func (b *ObjectBuilder) Build() (subskema.Schema[map[string]any], error) {
	if b.err != nil {
		return nil, b.err
	}
	for n := range b.required {
		if _, ok := b.fields[n]; !ok {
			return nil, fmt.Errorf("dsl: required field %q is not declared", n)
		}
	}
	fields := make(map[string]subskema.AnySchema, len(b.fields))
	for k, v := range b.fields {
		fields[k] = v
	}
	required := make(map[string]struct{}, len(b.required))
	for k := range b.required {
		required[k] = struct{}{}
	}
	// key order is fixed at build time; the schema stays read-only afterwards
	// and may be shared across goroutines
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &objectSchema{fields: fields, required: required, allowUnknown: b.allowUnknown, sortedKeys: keys}, nil
}

// MustBuild finalizes the schema, panicking on builder misuse.
func (b *ObjectBuilder) MustBuild() subskema.Schema[map[string]any] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

type objectSchema struct {
	fields       map[string]subskema.AnySchema
	required     map[string]struct{}
	allowUnknown bool
	sortedKeys   []string
}

var _ subskema.ObjectSchema = (*objectSchema)(nil)
var _ subskema.Schema[map[string]any] = (*objectSchema)(nil)

func (o *objectSchema) Kind() subskema.Kind { return subskema.KindObject }

func (o *objectSchema) Entry(name string) (subskema.AnySchema, bool) {
	s, ok := o.fields[name]
	return s, ok
}

// Keys returns property names in ascending order for deterministic behavior.
// The slice is precomputed by Build so the node carries no mutable state.
func (o *objectSchema) Keys() []string { return o.sortedKeys }

func (o *objectSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, subskema.Issues{subskema.Issue{Path: "/", Code: subskema.CodeInvalidType, Message: i18n.T(subskema.CodeInvalidType, nil), Hint: "expected object"}}
	}
	out := make(map[string]any, len(src))
	var iss subskema.Issues
	for _, k := range o.Keys() {
		fs := o.fields[k]
		val, exists := src[k]
		if !exists {
			if dv, ok := fieldDefault(fs); ok {
				out[k] = dv
				continue
			}
			if _, req := o.required[k]; req {
				iss = subskema.AppendIssues(iss, subskema.Issue{Path: "/" + k, Code: subskema.CodeRequired, Message: i18n.T(subskema.CodeRequired, nil), Hint: "required property missing"})
			}
			continue
		}
		parsed, err := parseAny(ctx, fs, val)
		if err != nil {
			iss = subskema.AppendIssues(iss, rebaseIssues("/"+k, err)...)
			continue
		}
		out[k] = parsed
	}
	iss = subskema.AppendIssues(iss, o.collectUnknown(src)...)
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (o *objectSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return o.Parse(ctx, v)
}

// collectUnknown reports unknown keys in key-sorted order unless the schema
// was built with UnknownStrip.
func (o *objectSchema) collectUnknown(src map[string]any) subskema.Issues {
	if o.allowUnknown {
		return nil
	}
	var uks []string
	for k := range src {
		if _, known := o.fields[k]; !known {
			uks = append(uks, k)
		}
	}
	sort.Strings(uks)
	var iss subskema.Issues
	for _, k := range uks {
		iss = subskema.AppendIssues(iss, subskema.Issue{Path: "/" + k, Code: subskema.CodeUnknownKey, Message: i18n.T(subskema.CodeUnknownKey, nil)})
	}
	return iss
}

// fieldDefault surfaces a default value declared on the field schema,
// looking through the other transparent wrappers so Optional(Default(...))
// still materializes.
func fieldDefault(s subskema.AnySchema) (any, bool) {
	for s.Kind().IsWrapper() {
		if d, ok := s.(interface{ DefaultValue() any }); ok && s.Kind() == subskema.KindDefault {
			return d.DefaultValue(), true
		}
		w, ok := s.(subskema.WrapperSchema)
		if !ok {
			return nil, false
		}
		s = w.Unwrap()
	}
	return nil, false
}
