package dsl

import (
	"context"
	"strconv"

	subskema "github.com/reoring/subskema"
	"github.com/reoring/subskema/i18n"
)

// Array builds an array schema from an element schema.
func Array(elem subskema.AnySchema) subskema.Schema[[]any] {
	return &arraySchema{elem: elem}
}

type arraySchema struct {
	elem subskema.AnySchema
}

var _ subskema.ElementSchema = (*arraySchema)(nil)
var _ subskema.Schema[[]any] = (*arraySchema)(nil)

func (a *arraySchema) Kind() subskema.Kind        { return subskema.KindArray }
func (a *arraySchema) Element() subskema.AnySchema { return a.elem }

func (a *arraySchema) Parse(ctx context.Context, v any) ([]any, error) {
	src, ok := v.([]any)
	if !ok {
		return nil, subskema.Issues{subskema.Issue{Path: "/", Code: subskema.CodeInvalidType, Message: i18n.T(subskema.CodeInvalidType, nil), Hint: "expected array"}}
	}
	out := make([]any, 0, len(src))
	var iss subskema.Issues
	for i, ev := range src {
		parsed, err := parseAny(ctx, a.elem, ev)
		if err != nil {
			iss = subskema.AppendIssues(iss, rebaseIssues("/"+strconv.Itoa(i), err)...)
			continue
		}
		out = append(out, parsed)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (a *arraySchema) ParseAny(ctx context.Context, v any) (any, error) {
	return a.Parse(ctx, v)
}
