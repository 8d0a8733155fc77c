package subskema

// Package subskema selects sub-schemas out of nested schema trees.
//
// - Resolve walks a compact path string ("users[].name", "coords[2]")
//   over a tree of kinded nodes and returns the schema responsible for
//   that location; it never validates values itself.
// - TypedPath mirrors the same grammar and dispatch rules in the type
//   system: combinators thread the output type of the addressed node, and
//   SchemaAt/OutputAt bind a typed path to a runtime tree.
// - A stable error model via Issues (full original path, code, message).
//
// Design policy:
// - Keep only public APIs in the root package; the path scanner lives under
//   internal/pathscan.
// - Place schema constructors under dsl/, descriptor import under
//   descriptor/, and the CLI under cmd/subskema.
// - The schema library proper is a collaborator: nodes are opaque values
//   exposing a Kind tag plus the accessor interfaces in kind.go.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := buildSchema()
//	node, err := subskema.Resolve(s, "users[].name")
//
//	p := subskema.Prop(subskema.Elem(subskema.Prop(subskema.Root[Team](),
//	    func(t *Team) *[]User { return &t.Users })),
//	    func(u *User) *string { return &u.Name })
//	name, err := subskema.OutputAt(ctx, s, p, "John")
