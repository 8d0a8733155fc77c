package dsl

import (
	"context"
	"sort"

	subskema "github.com/reoring/subskema"
	"github.com/reoring/subskema/i18n"
)

// Map builds a record schema: a string-keyed map whose values all share one
// value schema.
func Map(value subskema.AnySchema) subskema.Schema[map[string]any] {
	return &mapSchema{value: value}
}

type mapSchema struct {
	value subskema.AnySchema
}

var _ subskema.ElementSchema = (*mapSchema)(nil)
var _ subskema.Schema[map[string]any] = (*mapSchema)(nil)

func (m *mapSchema) Kind() subskema.Kind         { return subskema.KindRecord }
func (m *mapSchema) Element() subskema.AnySchema { return m.value }

func (m *mapSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, subskema.Issues{subskema.Issue{Path: "/", Code: subskema.CodeInvalidType, Message: i18n.T(subskema.CodeInvalidType, nil), Hint: "expected object"}}
	}
	// key-sorted order for deterministic error selection
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(map[string]any, len(src))
	var iss subskema.Issues
	for _, k := range keys {
		parsed, err := parseAny(ctx, m.value, src[k])
		if err != nil {
			iss = subskema.AppendIssues(iss, rebaseIssues("/"+k, err)...)
			continue
		}
		out[k] = parsed
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (m *mapSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return m.Parse(ctx, v)
}
