// Package dsl provides the schema constructors for subskema.
//
// Overview
//   - Builder API: declare object semantics with Object()/Field()/Require()/
//     UnknownStrip()/MustBuild().
//   - Containers: Array(elem), Map(value), Tuple(items...), Union(options...).
//   - Primitives: String()/Bool()/NumberJSON()/Literal(v)/Enum(vals...).
//   - Wrappers: Optional/Nullable/Default/Readonly/Lazy/Pipe — transparent
//     during path resolution, preserved when a path ends on them.
//
// Every constructor yields a node implementing the subskema node contract
// (Kind tag plus the matching accessor interface), so the trees built here
// are directly walkable by subskema.Resolve and bindable via TypedPath.
// Value parsing is intentionally small: enough to validate a fragment once a
// sub-schema has been selected, not a full validation library.
//
// File layout (roles)
//   - primitives.go: leaf schemas (String/Bool/NumberJSON/Literal/Enum).
//   - object.go: objectBuilder and objectSchema (Entry/Keys/Parse).
//   - array.go / map.go: single-child containers (array element, record value).
//   - tuple.go / union.go: positional containers (items, ordered options).
//   - wrappers.go: the six transparent wrapper kinds.
//
// Example
//
//	user := dsl.Object().
//	    Field("name", dsl.String()).
//	    Field("email", dsl.Optional(dsl.String())).
//	    Require("name").
//	    MustBuild()
//	team := dsl.Object().
//	    Field("users", dsl.Array(user)).
//	    MustBuild()
//
//	node, err := subskema.Resolve(team, "users[].name") // the string leaf
package dsl
