package dsl

import (
	"context"
	"fmt"
	"strconv"

	subskema "github.com/reoring/subskema"
	"github.com/reoring/subskema/i18n"
)

// Tuple builds a fixed-length, index-addressable schema from its item
// schemas.
func Tuple(items ...subskema.AnySchema) subskema.Schema[[]any] {
	return &tupleSchema{items: items}
}

type tupleSchema struct {
	items []subskema.AnySchema
}

var _ subskema.TupleSchema = (*tupleSchema)(nil)
var _ subskema.Schema[[]any] = (*tupleSchema)(nil)

func (t *tupleSchema) Kind() subskema.Kind         { return subskema.KindTuple }
func (t *tupleSchema) Items() []subskema.AnySchema { return t.items }

func (t *tupleSchema) Parse(ctx context.Context, v any) ([]any, error) {
	src, ok := v.([]any)
	if !ok {
		return nil, subskema.Issues{subskema.Issue{Path: "/", Code: subskema.CodeInvalidType, Message: i18n.T(subskema.CodeInvalidType, nil), Hint: "expected array"}}
	}
	if len(src) != len(t.items) {
		return nil, subskema.Issues{subskema.Issue{Path: "/", Code: subskema.CodeInvalidType, Message: i18n.T(subskema.CodeInvalidType, nil), Hint: fmt.Sprintf("expected %d items, got %d", len(t.items), len(src)), Params: map[string]any{"size": len(t.items), "got": len(src)}}}
	}
	out := make([]any, 0, len(src))
	var iss subskema.Issues
	for i, ev := range src {
		parsed, err := parseAny(ctx, t.items[i], ev)
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

func (t *tupleSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return t.Parse(ctx, v)
}
