package subskema_test

import (
	"context"
	"encoding/json"
	"testing"

	subskema "github.com/reoring/subskema"
)

type profileUser struct {
	Name  string  `json:"name"`
	Email *string `json:"email"`
}

type profile struct {
	Name    string          `json:"name"`
	Users   []profileUser   `json:"users"`
	Config  map[string]bool `json:"config"`
	Status  any             `json:"status"`
	Coords  []any           `json:"coords"`
	Display string          `json:"display" subskema:"name=displayName"`
}

func TestTypedPath_Rendering(t *testing.T) {
	userName := subskema.Prop(
		subskema.Elem(subskema.Prop(subskema.Root[profile](),
			func(p *profile) *[]profileUser { return &p.Users })),
		func(u *profileUser) *string { return &u.Name })
	if got := userName.String(); got != "users[].name" {
		t.Fatalf("rendered %q, want %q", got, "users[].name")
	}
	if userName.Len() != 3 {
		t.Fatalf("expected 3 segments, got %d", userName.Len())
	}

	configValue := subskema.Value(subskema.Prop(subskema.Root[profile](),
		func(p *profile) *map[string]bool { return &p.Config }))
	if got := configValue.String(); got != "config[]" {
		t.Fatalf("rendered %q, want %q", got, "config[]")
	}

	coordZ := subskema.Item[string](subskema.Prop(subskema.Root[profile](),
		func(p *profile) *[]any { return &p.Coords }), 2)
	if got := coordZ.String(); got != "coords[2]" {
		t.Fatalf("rendered %q, want %q", got, "coords[2]")
	}

	okData := subskema.PropNamed[string](
		subskema.Variant[map[string]any](subskema.Prop(subskema.Root[profile](),
			func(p *profile) *any { return &p.Status }), 0),
		"data")
	if got := okData.String(); got != "status[0].data" {
		t.Fatalf("rendered %q, want %q", got, "status[0].data")
	}

	if got := subskema.Root[profile]().String(); got != "" {
		t.Fatalf("root path must render empty, got %q", got)
	}
}

func TestTypedPath_TagResolution(t *testing.T) {
	// subskema:"name=..." wins over the json tag
	display := subskema.Prop(subskema.Root[profile](),
		func(p *profile) *string { return &p.Display })
	if got := display.String(); got != "displayName" {
		t.Fatalf("rendered %q, want %q", got, "displayName")
	}
}

func TestSchemaAt_BindsTypedLeaf(t *testing.T) {
	root, _, _ := buildProfile()
	ctx := context.Background()

	userName := subskema.Prop(
		subskema.Elem(subskema.Prop(subskema.Root[profile](),
			func(p *profile) *[]profileUser { return &p.Users })),
		func(u *profileUser) *string { return &u.Name })

	s, err := subskema.SchemaAt(root, userName)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	v, err := s.Parse(ctx, "John")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v != "John" {
		t.Fatalf("unexpected value: %q", v)
	}

	got, err := subskema.OutputAt(ctx, root, userName, "Ada")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "Ada" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestSchemaAt_TypeMismatchIsInvalidType(t *testing.T) {
	root, _, _ := buildProfile()

	// declare bool where the schema produces string
	wrong := subskema.PropNamed[bool](subskema.Root[map[string]any](), "name")
	_, err := subskema.SchemaAt(root, wrong)
	if err == nil {
		t.Fatalf("expected invalid_type")
	}
	iss, _ := subskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != subskema.CodeInvalidType {
		t.Fatalf("expected invalid_type, got: %v", err)
	}
}

func TestAt_StringPathCounterpart(t *testing.T) {
	root, _, _ := buildProfile()
	ctx := context.Background()

	s, err := subskema.At[json.Number](root, "coords[0]")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := s.Parse(ctx, json.Number("12.5")); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// resolution failures pass through untouched
	_, err = subskema.At[string](root, "coords[5]")
	iss, _ := subskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != subskema.CodeIndexOutOfBounds {
		t.Fatalf("expected index_out_of_bounds, got: %v", err)
	}
}

func TestTypedPath_CombinatorsDoNotMutate(t *testing.T) {
	base := subskema.Prop(subskema.Root[profile](),
		func(p *profile) *[]profileUser { return &p.Users })
	a := subskema.Elem(base)
	b := subskema.Item[profileUser](base, 0)
	if a.String() != "users[]" || b.String() != "users[0]" {
		t.Fatalf("extending a shared prefix must not mutate it: %q / %q", a.String(), b.String())
	}
	if base.String() != "users" {
		t.Fatalf("base path changed: %q", base.String())
	}
}

// The typed mirror and the string resolver must agree segment for segment:
// feeding a typed path's rendering through Resolve selects the same node
// SchemaAt binds.
func TestTypedPath_ResolverConformance(t *testing.T) {
	root, _, _ := buildProfile()
	ctx := context.Background()

	users := subskema.Prop(subskema.Root[profile](),
		func(p *profile) *[]profileUser { return &p.Users })
	corpus := []struct {
		path string
		kind subskema.Kind
	}{
		{subskema.Root[profile]().String(), subskema.KindObject},
		{users.String(), subskema.KindArray},
		{subskema.Elem(users).String(), subskema.KindObject},
		{subskema.Prop(subskema.Elem(users), func(u *profileUser) *string { return &u.Name }).String(), subskema.KindLeaf},
		{subskema.Value(subskema.Prop(subskema.Root[profile](), func(p *profile) *map[string]bool { return &p.Config })).String(), subskema.KindLeaf},
		{subskema.Item[string](subskema.Prop(subskema.Root[profile](), func(p *profile) *[]any { return &p.Coords }), 2).String(), subskema.KindLeaf},
		{subskema.Variant[map[string]any](subskema.PropNamed[any](subskema.Root[profile](), "status"), 1).String(), subskema.KindObject},
	}
	for _, tc := range corpus {
		node, err := subskema.Resolve(root, tc.path)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tc.path, err)
		}
		if node.Kind() != tc.kind {
			t.Fatalf("Resolve(%q): kind %s, want %s", tc.path, node.Kind(), tc.kind)
		}
	}

	// and the typed binding agrees with the string binding on the value side
	name := subskema.Prop(subskema.Elem(users), func(u *profileUser) *string { return &u.Name })
	fromTyped, err := subskema.SchemaAt(root, name)
	if err != nil {
		t.Fatalf("SchemaAt: %v", err)
	}
	fromString, err := subskema.At[string](root, name.String())
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	v1, err1 := fromTyped.Parse(ctx, "x")
	v2, err2 := fromString.Parse(ctx, "x")
	if v1 != v2 || (err1 == nil) != (err2 == nil) {
		t.Fatalf("typed and string bindings disagree: %v/%v %v/%v", v1, err1, v2, err2)
	}
}
