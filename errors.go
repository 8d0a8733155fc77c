package subskema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Path scanning
	CodeMalformedPath = "malformed_path"
	// Path resolution
	CodeUnknownProperty  = "unknown_property"
	CodeNotAnObject      = "not_an_object"
	CodeNotIndexable     = "not_indexable"
	CodeIndexOutOfBounds = "index_out_of_bounds"
	// Value validation (DSL)
	CodeInvalidType  = "invalid_type"
	CodeRequired     = "required"
	CodeUnknownKey   = "unknown_key"
	CodeInvalidEnum  = "invalid_enum"
	CodeUnionNoMatch = "union_no_match"
	CodeParseError   = "parse_error"
)

// Issue represents a single failure entry. For scanning and resolution
// failures Path always holds the complete original path string handed to
// Resolve, never just the offending segment, so callers can pinpoint
// failures in long paths without cursor bookkeeping.
type Issue struct {
	Path    string // Full selection path; JSON Pointer for value issues.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"index":5, "size":3})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_property at users[].email
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IsMalformedPath reports whether err carries a malformed_path issue.
func IsMalformedPath(err error) bool {
	return hasCode(err, CodeMalformedPath)
}

// IsResolutionError reports whether err carries one of the mid-traversal
// resolution codes.
func IsResolutionError(err error) bool {
	return hasCode(err, CodeUnknownProperty) || hasCode(err, CodeNotAnObject) ||
		hasCode(err, CodeNotIndexable) || hasCode(err, CodeIndexOutOfBounds)
}

func hasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}
