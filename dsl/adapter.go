package dsl

import (
	"context"

	subskema "github.com/reoring/subskema"
	"github.com/reoring/subskema/i18n"
)

// parseAny parses v with an arbitrary node. Every schema built by this
// package implements subskema.Parser; foreign nodes that do not are
// reported as parse_error rather than panicking.
func parseAny(ctx context.Context, s subskema.AnySchema, v any) (any, error) {
	p, ok := s.(subskema.Parser)
	if !ok {
		return nil, subskema.Issues{subskema.Issue{Path: "/", Code: subskema.CodeParseError, Message: i18n.T(subskema.CodeParseError, nil), Hint: "schema does not support value parsing"}}
	}
	return p.ParseAny(ctx, v)
}

// issuesFromErr converts an error into Issues, wrapping non-Issues with
// parse_error.
func issuesFromErr(path string, err error) subskema.Issues {
	if err == nil {
		return nil
	}
	if iss, ok := subskema.AsIssues(err); ok {
		return iss
	}
	return subskema.Issues{subskema.Issue{Path: path, Code: subskema.CodeParseError, Message: err.Error(), Cause: err}}
}

// rebaseIssues rebases child issue paths under base (a JSON-Pointer-ish
// prefix such as "/users" or "/2").
func rebaseIssues(base string, err error) subskema.Issues {
	child := issuesFromErr(base, err)
	var out subskema.Issues
	for _, it := range child {
		p := it.Path
		if p == "" || p == "/" {
			p = base
		} else if len(p) > 0 && p[0] == '/' {
			p = base + p
		} else {
			p = base + "/" + p
		}
		out = subskema.AppendIssues(out, subskema.Issue{Path: p, Code: it.Code, Message: it.Message, Hint: it.Hint, Cause: it.Cause, Params: it.Params})
	}
	return out
}
