package dsl_test

import (
	"context"
	"testing"

	subskema "github.com/reoring/subskema"
	g "github.com/reoring/subskema/dsl"
)

func TestLazy_NotForcedUntilUnwrap(t *testing.T) {
	forced := false
	lz := g.Lazy(func() subskema.AnySchema {
		forced = true
		return g.String()
	})
	if forced {
		t.Fatalf("building a lazy node must not force the thunk")
	}

	w := lz.(subskema.WrapperSchema)
	inner := w.Unwrap()
	if !forced {
		t.Fatalf("unwrap must force the thunk")
	}
	if inner.Kind() != subskema.KindLeaf {
		t.Fatalf("unexpected inner kind: %s", inner.Kind())
	}

	// memoized: the same node comes back
	if w.Unwrap() != inner {
		t.Fatalf("unwrap must memoize the forced schema")
	}
}

func TestNullable_AcceptsNull(t *testing.T) {
	ctx := context.Background()
	ns := g.Nullable(g.String())

	v, err := ns.Parse(ctx, nil)
	if err != nil {
		t.Fatalf("nullable must accept nil: %v", err)
	}
	if v != nil {
		t.Fatalf("unexpected value: %#v", v)
	}
	if _, err := ns.Parse(ctx, "x"); err != nil {
		t.Fatalf("nullable must delegate non-nil: %v", err)
	}
	if _, err := ns.Parse(ctx, 1); err == nil {
		t.Fatalf("nullable must reject what the inner schema rejects")
	}

	// optional does not accept explicit null
	if _, err := g.Optional(g.String()).Parse(ctx, nil); err == nil {
		t.Fatalf("optional must not accept nil values")
	}
}

func TestDefault_ParseAndAccessor(t *testing.T) {
	ctx := context.Background()
	ds := g.Default(g.String(), "fallback")

	v, err := ds.Parse(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v != "fallback" {
		t.Fatalf("unexpected value: %#v", v)
	}
	v, err = ds.Parse(ctx, "given")
	if err != nil || v != "given" {
		t.Fatalf("present value must win: %v %v", v, err)
	}

	d, ok := ds.(interface{ DefaultValue() any })
	if !ok || d.DefaultValue() != "fallback" {
		t.Fatalf("default accessor must expose the declared value")
	}
}

func TestPipe_ParsesThroughBothSides(t *testing.T) {
	ctx := context.Background()
	p := g.Pipe(g.String(), g.Enum("a", "b"))

	if _, err := p.Parse(ctx, "a"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := p.Parse(ctx, "z"); err == nil {
		t.Fatalf("output side must reject values outside the enum")
	}
	if _, err := p.Parse(ctx, 1); err == nil {
		t.Fatalf("input side must reject non-strings")
	}

	w := p.(subskema.WrapperSchema)
	if w.Unwrap().Kind() != subskema.KindLeaf {
		t.Fatalf("pipe must unwrap to its output schema")
	}
}

func TestReadonly_IsPassthrough(t *testing.T) {
	ctx := context.Background()
	rs := g.Readonly(g.Bool())
	v, err := rs.Parse(ctx, true)
	if err != nil || v != true {
		t.Fatalf("readonly must delegate to the wrapped schema: %v %v", v, err)
	}
}
