package dsl

import (
	"context"
	"sync"

	subskema "github.com/reoring/subskema"
)

// Optional marks a property schema as omittable. Transparent during path
// resolution; a path ending here returns the optional node itself.
func Optional(s subskema.AnySchema) subskema.Schema[any] {
	return &wrapperSchema{kind: subskema.KindOptional, inner: s}
}

// Nullable accepts null in place of the wrapped schema's value.
func Nullable(s subskema.AnySchema) subskema.Schema[any] {
	return &wrapperSchema{kind: subskema.KindNullable, inner: s}
}

// Readonly marks the wrapped schema's value as read-only. Parsing is a
// passthrough to the wrapped schema.
func Readonly(s subskema.AnySchema) subskema.Schema[any] {
	return &wrapperSchema{kind: subskema.KindReadonly, inner: s}
}

// Default supplies a value materialized when the property is missing from
// the input.
func Default(s subskema.AnySchema, value any) subskema.Schema[any] {
	return &defaultSchema{wrapperSchema: wrapperSchema{kind: subskema.KindDefault, inner: s}, value: value}
}

type wrapperSchema struct {
	kind  subskema.Kind
	inner subskema.AnySchema
}

var _ subskema.WrapperSchema = (*wrapperSchema)(nil)
var _ subskema.Schema[any] = (*wrapperSchema)(nil)

func (w *wrapperSchema) Kind() subskema.Kind       { return w.kind }
func (w *wrapperSchema) Unwrap() subskema.AnySchema { return w.inner }

func (w *wrapperSchema) Parse(ctx context.Context, v any) (any, error) {
	if v == nil && w.kind == subskema.KindNullable {
		return nil, nil
	}
	return parseAny(ctx, w.inner, v)
}

func (w *wrapperSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return w.Parse(ctx, v)
}

type defaultSchema struct {
	wrapperSchema
	value any
}

// DefaultValue exposes the declared default to object parsing.
func (d *defaultSchema) DefaultValue() any { return d.value }

func (d *defaultSchema) Parse(ctx context.Context, v any) (any, error) {
	if v == nil {
		return d.value, nil
	}
	return parseAny(ctx, d.inner, v)
}

func (d *defaultSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return d.Parse(ctx, v)
}

// Lazy defers schema construction until traversal or parsing first needs
// the node, enabling self-referential schemas. The thunk runs at most once;
// the result is memoized.
func Lazy(thunk func() subskema.AnySchema) subskema.Schema[any] {
	return &lazySchema{thunk: thunk}
}

type lazySchema struct {
	thunk    func() subskema.AnySchema
	once     sync.Once
	resolved subskema.AnySchema
}

var _ subskema.WrapperSchema = (*lazySchema)(nil)
var _ subskema.Schema[any] = (*lazySchema)(nil)

func (l *lazySchema) Kind() subskema.Kind { return subskema.KindLazy }

// Unwrap forces the thunk. This is the only place forcing happens; building
// a Lazy node never evaluates it.
func (l *lazySchema) Unwrap() subskema.AnySchema {
	l.once.Do(func() { l.resolved = l.thunk() })
	return l.resolved
}

func (l *lazySchema) Parse(ctx context.Context, v any) (any, error) {
	return parseAny(ctx, l.Unwrap(), v)
}

func (l *lazySchema) ParseAny(ctx context.Context, v any) (any, error) {
	return l.Parse(ctx, v)
}

// Pipe chains an input schema into an output schema. Traversal always
// follows the output side.
func Pipe(in, out subskema.AnySchema) subskema.Schema[any] {
	return &pipeSchema{in: in, out: out}
}

type pipeSchema struct {
	in  subskema.AnySchema
	out subskema.AnySchema
}

var _ subskema.WrapperSchema = (*pipeSchema)(nil)
var _ subskema.Schema[any] = (*pipeSchema)(nil)

func (p *pipeSchema) Kind() subskema.Kind { return subskema.KindPipe }

// Unwrap returns the output child; path resolution never sees the input
// side.
func (p *pipeSchema) Unwrap() subskema.AnySchema { return p.out }

// In returns the input side for callers that need the full pipe shape.
func (p *pipeSchema) In() subskema.AnySchema { return p.in }

func (p *pipeSchema) Parse(ctx context.Context, v any) (any, error) {
	mid, err := parseAny(ctx, p.in, v)
	if err != nil {
		return nil, err
	}
	return parseAny(ctx, p.out, mid)
}

func (p *pipeSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return p.Parse(ctx, v)
}
