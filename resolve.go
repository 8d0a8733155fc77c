package subskema

import (
	"fmt"

	"github.com/reoring/subskema/i18n"
	"github.com/reoring/subskema/internal/pathscan"
)

// Resolve selects the sub-schema addressed by path within root. The empty
// path returns root unchanged, wrappers intact. Failures are returned as
// Issues: malformed_path before any traversal, or one of the resolution
// codes mid-traversal, each carrying the complete original path string.
//
// Transparent wrappers (optional/nullable/default/readonly/lazy/pipe) are
// unwrapped to a fixed point before every segment test, but the node the
// final segment produces is returned exactly as the shape contains it — a
// path ending on a wrapper yields the wrapper, never its inner schema.
func Resolve(root AnySchema, path string) (AnySchema, error) {
	segs, err := pathscan.Parse(path)
	if err != nil {
		se, _ := err.(*pathscan.Error)
		hint := ""
		if se != nil {
			hint = se.Reason
		}
		return nil, Issues{Issue{
			Path:    path,
			Code:    CodeMalformedPath,
			Message: i18n.T(CodeMalformedPath, nil),
			Hint:    hint,
			Cause:   err,
		}}
	}
	if len(segs) == 0 {
		return root, nil
	}

	cur := root
	for _, sg := range segs {
		cur = unwrapped(cur)
		switch sg.Kind {
		case pathscan.Property:
			if cur.Kind() != KindObject {
				return nil, Issues{Issue{
					Path:    path,
					Code:    CodeNotAnObject,
					Message: i18n.T(CodeNotAnObject, nil),
					Hint:    fmt.Sprintf("property %q requires an object, got %s", sg.Name, cur.Kind()),
					Params:  map[string]any{"property": sg.Name, "kind": cur.Kind().String()},
				}}
			}
			child, ok := asObject(cur).Entry(sg.Name)
			if !ok {
				return nil, Issues{Issue{
					Path:    path,
					Code:    CodeUnknownProperty,
					Message: i18n.T(CodeUnknownProperty, nil),
					Hint:    fmt.Sprintf("object has no property %q", sg.Name),
					Params:  map[string]any{"property": sg.Name},
				}}
			}
			cur = child
		case pathscan.Element:
			switch cur.Kind() {
			case KindArray, KindRecord:
				cur = asElement(cur).Element()
			default:
				return nil, Issues{Issue{
					Path:    path,
					Code:    CodeNotIndexable,
					Message: i18n.T(CodeNotIndexable, nil),
					Hint:    fmt.Sprintf("[] requires an array or record, got %s", cur.Kind()),
					Params:  map[string]any{"kind": cur.Kind().String()},
				}}
			}
		case pathscan.Index:
			var items []AnySchema
			switch cur.Kind() {
			case KindTuple:
				items = asTuple(cur).Items()
			case KindUnion:
				items = asUnion(cur).Options()
			default:
				return nil, Issues{Issue{
					Path:    path,
					Code:    CodeNotIndexable,
					Message: i18n.T(CodeNotIndexable, nil),
					Hint:    fmt.Sprintf("[%d] requires a tuple or union, got %s", sg.Index, cur.Kind()),
					Params:  map[string]any{"index": sg.Index, "kind": cur.Kind().String()},
				}}
			}
			if sg.Index >= len(items) {
				return nil, Issues{Issue{
					Path:    path,
					Code:    CodeIndexOutOfBounds,
					Message: i18n.T(CodeIndexOutOfBounds, nil),
					Hint:    fmt.Sprintf("index %d out of range [0, %d)", sg.Index, len(items)),
					Params:  map[string]any{"index": sg.Index, "size": len(items)},
				}}
			}
			cur = items[sg.Index]
		}
	}
	return cur, nil
}

// unwrapped sees through transparent wrappers to a fixed point. Lazy thunks
// are forced here and nowhere else.
func unwrapped(s AnySchema) AnySchema {
	for s.Kind().IsWrapper() {
		w, ok := s.(WrapperSchema)
		if !ok {
			panic("subskema: node declares a wrapper kind but does not implement WrapperSchema")
		}
		s = w.Unwrap()
	}
	return s
}

// The as* helpers assert the accessor interface matching an already-checked
// kind tag. A mismatch is a broken node contract, not a resolution failure.

func asObject(s AnySchema) ObjectSchema {
	o, ok := s.(ObjectSchema)
	if !ok {
		panic("subskema: node declares object kind but does not implement ObjectSchema")
	}
	return o
}

func asElement(s AnySchema) ElementSchema {
	e, ok := s.(ElementSchema)
	if !ok {
		panic("subskema: node declares array/record kind but does not implement ElementSchema")
	}
	return e
}

func asTuple(s AnySchema) TupleSchema {
	t, ok := s.(TupleSchema)
	if !ok {
		panic("subskema: node declares tuple kind but does not implement TupleSchema")
	}
	return t
}

func asUnion(s AnySchema) UnionSchema {
	u, ok := s.(UnionSchema)
	if !ok {
		panic("subskema: node declares union kind but does not implement UnionSchema")
	}
	return u
}
