package subskema

import (
	"reflect"
	"strings"
)

// ResolveStructKey applies the repository-wide rule to resolve a struct
// field's external key used by typed paths.
// Priority: subskema:"name=..." > json tag name > field name; "-" disables
// the field.
func ResolveStructKey(sf reflect.StructField) string {
	if gt := sf.Tag.Get("subskema"); gt != "" {
		parts := strings.Split(gt, ",")
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}

// fieldNameOf returns the external key for a top-level field of S selected by
// selector. The selector must return the address of a top-level field, which
// guarantees compile-time breakage if the field is renamed or removed.
func fieldNameOf[S any, F any](selector func(*S) *F) string {
	if selector == nil {
		panic("subskema.Prop: selector must not be nil")
	}
	var zero S
	fp := reflect.ValueOf(selector(&zero)).Pointer()
	rv := reflect.ValueOf(&zero).Elem()
	rt := rv.Type()
	if rt.Kind() != reflect.Struct {
		panic("subskema.Prop: property steps require a struct output type")
	}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if fv.CanAddr() && fv.Addr().Pointer() == fp {
			name := ResolveStructKey(sf)
			if name == "" || name == "-" {
				panic("subskema.Prop: selected field is not exported or disabled")
			}
			return name
		}
	}
	panic("subskema.Prop: selector must return address of a top-level field")
}
