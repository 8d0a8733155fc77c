package subskema_test

import (
	"fmt"
	"strings"
	"testing"

	subskema "github.com/reoring/subskema"
)

func TestIssues_ErrorSummarizesFirstFew(t *testing.T) {
	iss := subskema.Issues{
		{Path: "a.b", Code: subskema.CodeUnknownProperty},
		{Path: "a.c", Code: subskema.CodeNotAnObject},
		{Path: "a.d", Code: subskema.CodeNotIndexable},
		{Path: "a.e", Code: subskema.CodeIndexOutOfBounds},
	}
	msg := iss.Error()
	if !strings.Contains(msg, "unknown_property at a.b") {
		t.Fatalf("unexpected summary: %q", msg)
	}
	if !strings.Contains(msg, "total 4") {
		t.Fatalf("expected overflow marker, got: %q", msg)
	}
}

func TestAsIssues_ThroughWrapping(t *testing.T) {
	iss := subskema.Issues{{Path: "x", Code: subskema.CodeUnknownProperty}}
	wrapped := fmt.Errorf("resolving: %w", iss)
	got, ok := subskema.AsIssues(wrapped)
	if !ok || len(got) != 1 || got[0].Path != "x" {
		t.Fatalf("expected issues through %%w wrapping, got: %v %v", got, ok)
	}
	if _, ok := subskema.AsIssues(nil); ok {
		t.Fatalf("nil error must not yield issues")
	}
}

func TestErrorFamilyPredicates(t *testing.T) {
	malformed := subskema.Issues{{Path: "[", Code: subskema.CodeMalformedPath}}
	resolution := subskema.Issues{{Path: "a.b", Code: subskema.CodeUnknownProperty}}

	if !subskema.IsMalformedPath(malformed) || subskema.IsMalformedPath(resolution) {
		t.Fatalf("IsMalformedPath misclassified")
	}
	if !subskema.IsResolutionError(resolution) || subskema.IsResolutionError(malformed) {
		t.Fatalf("IsResolutionError misclassified")
	}
}

func TestAppendIssues_InitializesNil(t *testing.T) {
	var iss subskema.Issues
	iss = subskema.AppendIssues(iss, subskema.Issue{Path: "p", Code: subskema.CodeRequired})
	if len(iss) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(iss))
	}
}
