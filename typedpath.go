package subskema

import (
	"context"
	"fmt"

	"github.com/reoring/subskema/i18n"
	"github.com/reoring/subskema/internal/pathscan"
)

// TypedPath carries a selection path together with the static type pair it
// implies: S is the root's output type and Out the output type of the
// sub-schema the path addresses. It is the type-level mirror of Resolve:
// each combinator appends exactly the segment the scanner would produce for
// the rendered string and transforms Out by the same dispatch rule the
// resolver applies at runtime. Keep the two in lock-step; any grammar or
// dispatch change to one mandates the identical change to the other.
//
// TypedPath values are immutable; combinators return extended copies.
type TypedPath[S, Out any] struct {
	segs []pathscan.Segment
}

// Root returns the empty typed path, addressing the root schema itself.
func Root[S any]() TypedPath[S, S] { return TypedPath[S, S]{} }

// String renders the canonical compact form, e.g. "users[].name".
func (p TypedPath[S, Out]) String() string { return pathscan.Render(p.segs) }

// Len returns the number of segments in the path.
func (p TypedPath[S, Out]) Len() int { return len(p.segs) }

// Prop appends a property step. The selector must return the address of a
// top-level field of Out, giving compile-time linkage to the struct field;
// the external key comes from the field's subskema/json tag.
func Prop[S, Out, F any](p TypedPath[S, Out], selector func(*Out) *F) TypedPath[S, F] {
	name := fieldNameOf(selector)
	return TypedPath[S, F]{segs: extend(p.segs, pathscan.Segment{Kind: pathscan.Property, Name: name})}
}

// PropNamed appends a property step by external key for output types that
// are not structs (e.g. map[string]any trees). It offers no compile-time
// field linkage; prefer Prop where Out is a struct.
func PropNamed[F, S, Out any](p TypedPath[S, Out], name string) TypedPath[S, F] {
	return TypedPath[S, F]{segs: extend(p.segs, pathscan.Segment{Kind: pathscan.Property, Name: name})}
}

// Elem appends an element wildcard step over an array. It only compiles when
// the current output type is a slice.
func Elem[S, E any](p TypedPath[S, []E]) TypedPath[S, E] {
	return TypedPath[S, E]{segs: extend(p.segs, pathscan.Segment{Kind: pathscan.Element})}
}

// Value appends an element wildcard step over a record. It only compiles
// when the current output type is a string-keyed map.
func Value[S, V any](p TypedPath[S, map[string]V]) TypedPath[S, V] {
	return TypedPath[S, V]{segs: extend(p.segs, pathscan.Segment{Kind: pathscan.Element})}
}

// Item appends a positional step addressing a tuple item. Go has no
// type-level indexing, so the caller declares the item type F; the
// declaration is checked when the path is bound with SchemaAt/OutputAt.
func Item[F, S, Out any](p TypedPath[S, Out], n int) TypedPath[S, F] {
	if n < 0 {
		panic("subskema.Item: index must be non-negative")
	}
	return TypedPath[S, F]{segs: extend(p.segs, pathscan.Segment{Kind: pathscan.Index, Index: n})}
}

// Variant appends a positional step addressing a union option. Identical to
// Item at the segment level; the separate name keeps call sites readable.
func Variant[F, S, Out any](p TypedPath[S, Out], n int) TypedPath[S, F] {
	if n < 0 {
		panic("subskema.Variant: index must be non-negative")
	}
	return TypedPath[S, F]{segs: extend(p.segs, pathscan.Segment{Kind: pathscan.Index, Index: n})}
}

func extend(segs []pathscan.Segment, sg pathscan.Segment) []pathscan.Segment {
	out := make([]pathscan.Segment, 0, len(segs)+1)
	out = append(out, segs...)
	return append(out, sg)
}

// SchemaAt binds a typed path against a runtime schema tree: it resolves the
// rendered path with Resolve and asserts that the selected node produces
// Out. A mismatched Item/Variant declaration surfaces here as invalid_type.
func SchemaAt[S, Out any](root AnySchema, p TypedPath[S, Out]) (Schema[Out], error) {
	return At[Out](root, p.String())
}

// At is the string-path counterpart of SchemaAt: resolve, then require the
// selected node to be a Schema[Out].
func At[Out any](root AnySchema, path string) (Schema[Out], error) {
	node, err := Resolve(root, path)
	if err != nil {
		return nil, err
	}
	s, ok := node.(Schema[Out])
	if !ok {
		var zero Out
		return nil, Issues{Issue{
			Path:    path,
			Code:    CodeInvalidType,
			Message: i18n.T(CodeInvalidType, nil),
			Hint:    fmt.Sprintf("schema at path produces %s, not %T", node.Kind(), zero),
			Params:  map[string]any{"kind": node.Kind().String()},
		}}
	}
	return s, nil
}

// OutputAt selects the sub-schema at p and parses v with it, yielding the
// typed output value the path implies.
func OutputAt[S, Out any](ctx context.Context, root AnySchema, p TypedPath[S, Out], v any) (Out, error) {
	s, err := SchemaAt(root, p)
	if err != nil {
		var zero Out
		return zero, err
	}
	return s.Parse(ctx, v)
}
