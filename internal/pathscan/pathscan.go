// Package pathscan converts compact selection paths such as "users[].name"
// or "coords[2]" into ordered segment lists, and renders segment lists back
// into their canonical compact form.
//
// The scanner has no schema knowledge; it alone decides whether a bracket is
// an element wildcard ("[]") or a numeric index ("[2]"), so the resolver
// never has to guess a segment interpretation from the node it is visiting.
package pathscan

import (
	"strconv"
	"strings"
)

// SegmentKind discriminates the three segment variants.
type SegmentKind int

const (
	Property SegmentKind = iota // named property step
	Element                     // "[]" wildcard step (array element / record value)
	Index                       // "[n]" positional step (tuple item / union option)
)

// Segment is a single parsed path step. Name is set for Property, Index for
// Index; Element carries no payload.
type Segment struct {
	Kind  SegmentKind
	Name  string
	Index int
}

// Error reports a malformed path. Path is the complete original input.
type Error struct {
	Path   string
	Reason string // "unclosed bracket" | "empty property segment" | "invalid index"
}

func (e *Error) Error() string {
	return "pathscan: " + e.Reason + " in " + strconv.Quote(e.Path)
}

// Parse scans path left to right into segments. The empty string yields an
// empty segment list. Segments preserve input order; nothing is elided or
// reordered.
func Parse(path string) ([]Segment, error) {
	if path == "" {
		return nil, nil
	}
	var segs []Segment
	i := 0
	// A leading dot is tolerated (".name", ".[0]") but must be followed by
	// more path.
	if path[0] == '.' {
		i = 1
		if i == len(path) || path[i] == '.' {
			return nil, &Error{Path: path, Reason: "empty property segment"}
		}
	}
	for i < len(path) {
		switch path[i] {
		case '[':
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				return nil, &Error{Path: path, Reason: "unclosed bracket"}
			}
			content := path[i+1 : i+end]
			if content == "" {
				segs = append(segs, Segment{Kind: Element})
			} else {
				n, ok := parseIndex(content)
				if !ok {
					return nil, &Error{Path: path, Reason: "invalid index"}
				}
				segs = append(segs, Segment{Kind: Index, Index: n})
			}
			i += end + 1
		case '.':
			// Separator between a property (or bracket) and the next
			// property segment; a doubled or trailing dot means an empty
			// property segment.
			i++
			if i == len(path) || path[i] == '.' || path[i] == '[' {
				return nil, &Error{Path: path, Reason: "empty property segment"}
			}
		default:
			start := i
			for i < len(path) && path[i] != '.' && path[i] != '[' {
				i++
			}
			segs = append(segs, Segment{Kind: Property, Name: path[start:i]})
		}
	}
	return segs, nil
}

// parseIndex accepts a base-10 non-negative integer with no sign and no
// extraneous characters. Digit-only precheck rejects "+1", "-1", "1e2",
// spaces and unicode minus before strconv ever runs.
func parseIndex(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Render produces the canonical compact form of a segment list. Parse and
// Render round-trip for canonical inputs (no redundant leading dot).
func Render(segs []Segment) string {
	b := &strings.Builder{}
	for i, sg := range segs {
		switch sg.Kind {
		case Property:
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(sg.Name)
		case Element:
			b.WriteString("[]")
		case Index:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(sg.Index))
			b.WriteByte(']')
		}
	}
	return b.String()
}
