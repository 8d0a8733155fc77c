package dsl

import (
	"context"

	subskema "github.com/reoring/subskema"
	"github.com/reoring/subskema/i18n"
)

// Union builds an ordered union schema. Options are addressed by position
// during path resolution; value parsing tries options left to right and the
// first success wins.
func Union(options ...subskema.AnySchema) subskema.Schema[any] {
	return &unionSchema{options: options}
}

type unionSchema struct {
	options []subskema.AnySchema
}

var _ subskema.UnionSchema = (*unionSchema)(nil)
var _ subskema.Schema[any] = (*unionSchema)(nil)

func (u *unionSchema) Kind() subskema.Kind           { return subskema.KindUnion }
func (u *unionSchema) Options() []subskema.AnySchema { return u.options }

func (u *unionSchema) Parse(ctx context.Context, v any) (any, error) {
	for _, opt := range u.options {
		parsed, err := parseAny(ctx, opt, v)
		if err == nil {
			return parsed, nil
		}
	}
	return nil, subskema.Issues{subskema.Issue{Path: "/", Code: subskema.CodeUnionNoMatch, Message: i18n.T(subskema.CodeUnionNoMatch, nil), Hint: "no variant accepted the value", Params: map[string]any{"size": len(u.options)}}}
}

func (u *unionSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return u.Parse(ctx, v)
}
