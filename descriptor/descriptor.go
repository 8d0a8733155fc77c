// Package descriptor compiles JSON-Schema-flavoured schema descriptors
// (JSON or YAML documents) into subskema DSL trees, so external tooling can
// hand schemas to the resolver without linking the DSL directly.
//
// Supported keywords: type (object/array/string/boolean/number/integer),
// properties, required, additionalProperties, items, prefixItems, oneOf,
// enum, const, nullable, default, readOnly. Properties absent from the
// required list import as Optional-wrapped nodes, which is what makes a
// terminal path on them return the wrapper.
package descriptor

import (
	"errors"
	"fmt"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	subskema "github.com/reoring/subskema"
	"github.com/reoring/subskema/dsl"
)

// Import compiles a decoded descriptor document into a schema tree.
func Import(doc map[string]any) (subskema.AnySchema, error) {
	if doc == nil {
		return nil, errors.New("descriptor: nil document")
	}
	return importNode(doc, "/")
}

// ImportJSON decodes raw JSON and imports it.
func ImportJSON(data []byte) (subskema.AnySchema, error) {
	var doc map[string]any
	if err := gojson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("descriptor: invalid JSON: %w", err)
	}
	return Import(doc)
}

// ImportYAML decodes raw YAML and imports it. Non-string map keys are
// stringified so YAML and JSON descriptors behave identically.
func ImportYAML(data []byte) (subskema.AnySchema, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("descriptor: invalid YAML: %w", err)
	}
	doc, ok := normalizeYAML(node).(map[string]any)
	if !ok {
		return nil, errors.New("descriptor: YAML root is not a mapping")
	}
	return Import(doc)
}

func importNode(doc map[string]any, at string) (subskema.AnySchema, error) {
	core, err := importCore(doc, at)
	if err != nil {
		return nil, err
	}
	// Wrapper keywords apply outside the core shape; default outermost so a
	// missing property materializes before nullability is consulted.
	if nb, ok := doc["nullable"].(bool); ok && nb {
		core = dsl.Nullable(core)
	}
	if ro, ok := doc["readOnly"].(bool); ok && ro {
		core = dsl.Readonly(core)
	}
	if dv, ok := doc["default"]; ok {
		core = dsl.Default(core, dv)
	}
	return core, nil
}

func importCore(doc map[string]any, at string) (subskema.AnySchema, error) {
	if oneOf, ok := doc["oneOf"].([]any); ok {
		options := make([]subskema.AnySchema, 0, len(oneOf))
		for i, o := range oneOf {
			om, ok := o.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("descriptor: oneOf[%d] at %s is not a schema object", i, at)
			}
			opt, err := importNode(om, fmt.Sprintf("%soneOf/%d/", at, i))
			if err != nil {
				return nil, err
			}
			options = append(options, opt)
		}
		return dsl.Union(options...), nil
	}
	if cv, ok := doc["const"]; ok {
		return dsl.Literal(cv), nil
	}
	if ev, ok := doc["enum"].([]any); ok {
		vals := make([]string, 0, len(ev))
		for _, e := range ev {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("descriptor: non-string enum value at %s", at)
			}
			vals = append(vals, s)
		}
		return dsl.Enum(vals...), nil
	}

	typ, _ := doc["type"].(string)
	switch typ {
	case "object":
		return importObject(doc, at)
	case "array":
		return importArray(doc, at)
	case "string":
		return dsl.String(), nil
	case "boolean":
		return dsl.Bool(), nil
	case "number", "integer":
		return dsl.NumberJSON(), nil
	case "":
		return nil, fmt.Errorf("descriptor: missing type at %s", at)
	default:
		return nil, fmt.Errorf("descriptor: unsupported type %q at %s", typ, at)
	}
}

func importObject(doc map[string]any, at string) (subskema.AnySchema, error) {
	props, hasProps := doc["properties"].(map[string]any)
	if !hasProps {
		// object without properties but with a value schema is a record
		if ap, ok := doc["additionalProperties"].(map[string]any); ok {
			value, err := importNode(ap, at+"additionalProperties/")
			if err != nil {
				return nil, err
			}
			return dsl.Map(value), nil
		}
		return nil, fmt.Errorf("descriptor: object at %s needs properties or additionalProperties", at)
	}

	required := map[string]struct{}{}
	if reqs, ok := doc["required"].([]any); ok {
		for _, r := range reqs {
			if name, ok := r.(string); ok {
				required[name] = struct{}{}
			}
		}
	}

	b := dsl.Object()
	for name, p := range props {
		pm, ok := p.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("descriptor: property %q at %s is not a schema object", name, at)
		}
		child, err := importNode(pm, at+name+"/")
		if err != nil {
			return nil, err
		}
		if _, req := required[name]; req {
			b.Field(name, child).Require(name)
		} else {
			b.Field(name, dsl.Optional(child))
		}
	}
	if allow, ok := doc["additionalProperties"].(bool); ok && allow {
		b.UnknownStrip()
	}
	return b.Build()
}

func importArray(doc map[string]any, at string) (subskema.AnySchema, error) {
	if prefix, ok := doc["prefixItems"].([]any); ok {
		items := make([]subskema.AnySchema, 0, len(prefix))
		for i, p := range prefix {
			pm, ok := p.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("descriptor: prefixItems[%d] at %s is not a schema object", i, at)
			}
			item, err := importNode(pm, fmt.Sprintf("%sprefixItems/%d/", at, i))
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return dsl.Tuple(items...), nil
	}
	im, ok := doc["items"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("descriptor: array at %s needs items or prefixItems", at)
	}
	elem, err := importNode(im, at+"items/")
	if err != nil {
		return nil, err
	}
	return dsl.Array(elem), nil
}

// normalizeYAML converts yaml.v3 output to the JSON-shaped any tree the
// importer expects (string-keyed maps all the way down).
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, val := range t {
			out = append(out, normalizeYAML(val))
		}
		return out
	default:
		return v
	}
}
