package subskema

import "context"

// Kind is the declared discriminant of a schema node. Classification is by
// this tag alone; a leaf schema that happens to expose container-shaped
// methods is still a leaf.
type Kind int

const (
	KindLeaf     Kind = iota // string/bool/number/literal/enum and anything else without traversable children
	KindObject               // named properties
	KindArray                // homogeneous element schema
	KindRecord               // string-keyed value schema
	KindTuple                // fixed-length, index-addressable items
	KindUnion                // ordered, position-addressable options
	KindOptional             // transparent wrapper
	KindNullable             // transparent wrapper
	KindDefault              // transparent wrapper
	KindReadonly             // transparent wrapper
	KindLazy                 // transparent wrapper; child is forced on demand
	KindPipe                 // transparent wrapper; traversal follows the output child
)

// String returns the wire/descriptor spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindRecord:
		return "record"
	case KindTuple:
		return "tuple"
	case KindUnion:
		return "union"
	case KindOptional:
		return "optional"
	case KindNullable:
		return "nullable"
	case KindDefault:
		return "default"
	case KindReadonly:
		return "readonly"
	case KindLazy:
		return "lazy"
	case KindPipe:
		return "pipe"
	default:
		return "leaf"
	}
}

// IsWrapper reports whether the kind is transparent during traversal.
func (k Kind) IsWrapper() bool {
	switch k {
	case KindOptional, KindNullable, KindDefault, KindReadonly, KindLazy, KindPipe:
		return true
	default:
		return false
	}
}

// AnySchema is the opaque schema node contract. Every node declares exactly
// one Kind; the kind-specific accessor interfaces below are asserted only
// after the tag matches.
type AnySchema interface {
	Kind() Kind
}

// ObjectSchema is implemented by KindObject nodes.
type ObjectSchema interface {
	AnySchema
	// Entry returns the child schema for a property name.
	Entry(name string) (AnySchema, bool)
	// Keys returns the property names in ascending order.
	Keys() []string
}

// ElementSchema is implemented by KindArray and KindRecord nodes, which own
// exactly one element/value schema.
type ElementSchema interface {
	AnySchema
	Element() AnySchema
}

// TupleSchema is implemented by KindTuple nodes.
type TupleSchema interface {
	AnySchema
	Items() []AnySchema
}

// UnionSchema is implemented by KindUnion nodes. Options are ordered and
// addressed by position, not by discriminant value.
type UnionSchema interface {
	AnySchema
	Options() []AnySchema
}

// WrapperSchema is implemented by every transparent wrapper kind. Unwrap
// returns the traversal child: the wrapped schema for optional/nullable/
// default/readonly, the output schema for pipe, and the forced (memoized)
// schema for lazy. Lazy nodes must not force their thunk before Unwrap is
// called.
type WrapperSchema interface {
	AnySchema
	Unwrap() AnySchema
}

// Parser is the untyped parse surface the resolver's callers use once a
// sub-schema has been selected.
type Parser interface {
	ParseAny(ctx context.Context, v any) (any, error)
}

// Schema is the typed collaborator surface: a node that can validate and
// transform an unknown input into T.
type Schema[T any] interface {
	AnySchema
	Parse(ctx context.Context, v any) (T, error)
}
