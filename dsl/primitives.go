package dsl

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	subskema "github.com/reoring/subskema"
	"github.com/reoring/subskema/i18n"
)

// String returns the minimal string leaf schema.
func String() subskema.Schema[string] { return stringSchema{} }

// Bool returns the minimal bool leaf schema.
func Bool() subskema.Schema[bool] { return boolSchema{} }

// NumberJSON returns the minimal number leaf schema preserving json.Number.
func NumberJSON() subskema.Schema[json.Number] { return numberJSONSchema{} }

// Literal returns a leaf schema accepting exactly the given value.
func Literal(v any) subskema.Schema[any] { return literalSchema{want: v} }

// Enum returns a leaf schema accepting one of the given string values.
func Enum(vals ...string) subskema.Schema[string] {
	allowed := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		allowed[v] = struct{}{}
	}
	return enumSchema{allowed: allowed}
}

type stringSchema struct{}

func (stringSchema) Kind() subskema.Kind { return subskema.KindLeaf }

func (stringSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", subskema.Issues{subskema.Issue{Path: "/", Code: subskema.CodeInvalidType, Message: i18n.T(subskema.CodeInvalidType, nil), Hint: "expected string"}}
	}
	return s, nil
}

func (stringSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return stringSchema{}.Parse(ctx, v)
}

type boolSchema struct{}

func (boolSchema) Kind() subskema.Kind { return subskema.KindLeaf }

func (boolSchema) Parse(ctx context.Context, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, subskema.Issues{subskema.Issue{Path: "/", Code: subskema.CodeInvalidType, Message: i18n.T(subskema.CodeInvalidType, nil), Hint: "expected bool"}}
	}
	return b, nil
}

func (boolSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return boolSchema{}.Parse(ctx, v)
}

type numberJSONSchema struct{}

func (numberJSONSchema) Kind() subskema.Kind { return subskema.KindLeaf }

func (numberJSONSchema) Parse(ctx context.Context, v any) (json.Number, error) {
	switch n := v.(type) {
	case json.Number:
		return n, nil
	case float64:
		return json.Number(strconv.FormatFloat(n, 'g', -1, 64)), nil
	case int:
		return json.Number(strconv.Itoa(n)), nil
	default:
		return json.Number(""), subskema.Issues{subskema.Issue{Path: "/", Code: subskema.CodeInvalidType, Message: i18n.T(subskema.CodeInvalidType, nil), Hint: "expected number"}}
	}
}

func (numberJSONSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return numberJSONSchema{}.Parse(ctx, v)
}

type literalSchema struct{ want any }

func (literalSchema) Kind() subskema.Kind { return subskema.KindLeaf }

func (l literalSchema) Parse(ctx context.Context, v any) (any, error) {
	if v != l.want {
		return nil, subskema.Issues{subskema.Issue{Path: "/", Code: subskema.CodeInvalidEnum, Message: i18n.T(subskema.CodeInvalidEnum, nil), Hint: fmt.Sprintf("expected literal %v", l.want)}}
	}
	return v, nil
}

func (l literalSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return l.Parse(ctx, v)
}

type enumSchema struct{ allowed map[string]struct{} }

func (enumSchema) Kind() subskema.Kind { return subskema.KindLeaf }

func (e enumSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", subskema.Issues{subskema.Issue{Path: "/", Code: subskema.CodeInvalidType, Message: i18n.T(subskema.CodeInvalidType, nil), Hint: "expected string"}}
	}
	if _, ok := e.allowed[s]; !ok {
		return "", subskema.Issues{subskema.Issue{Path: "/", Code: subskema.CodeInvalidEnum, Message: i18n.T(subskema.CodeInvalidEnum, nil), Hint: "value not in enum"}}
	}
	return s, nil
}

func (e enumSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return e.Parse(ctx, v)
}
