package funcschema

import "fmt"

// Param is one parameter of a function signature, as produced by a
// signature reflector: the declared name and type, any attached metadata
// items in declaration order, and the default value when one exists.
type Param struct {
	Name       string
	Type       TypeExpr
	Meta       []Metadata
	Default    any
	HasDefault bool
}

// unwrap strips annotation layers, returning the bare type and the
// collected metadata, innermost annotations first.
func unwrap(t TypeExpr) (TypeExpr, []Metadata) {
	if a, ok := t.(annotatedType); ok {
		inner, meta := unwrap(a.inner)
		return inner, append(meta, a.meta...)
	}
	return t, nil
}

// buildProperty resolves a parameter into its property schema and
// required flag.
//
// Resolution order: classify the effective type, pick the description
// (first Doc, else first plain Text, else a synthesized placeholder),
// pick the enum source (first enumeration item, else the literal values
// with nulls filtered, else the type's own enumeration members), then
// merge FieldInfo and Raw overrides in declaration order so explicit
// settings win over inferred ones. Resolution never fails: an
// unclassifiable type just yields a property without a type key.
func buildProperty(p Param) (*Property, bool) {
	effective, meta := unwrap(p.Type)
	meta = append(meta, p.Meta...)

	prop := &Property{}

	c := Classify(p.Type)
	prop.tokens = c.Tokens
	prop.anyType = c.Any

	prop.Description = resolveDescription(p.Name, meta)
	prop.Enum = resolveEnum(effective, meta)

	for _, m := range meta {
		switch v := m.(type) {
		case *FieldInfo:
			v.apply(prop)
		case Raw:
			v.apply(prop)
		}
	}

	if p.HasDefault {
		prop.Default = p.Default
		prop.HasDefault = true
	}

	required := inferRequired(effective, p.HasDefault)
	if prop.requiredOverride != nil {
		required = *prop.requiredOverride
	}
	return prop, required
}

func resolveDescription(name string, meta []Metadata) string {
	for _, m := range meta {
		if d, ok := m.(Doc); ok {
			return string(d)
		}
	}
	for _, m := range meta {
		if t, ok := m.(Text); ok {
			return string(t)
		}
	}
	return fmt.Sprintf("The %s parameter", name)
}

func resolveEnum(effective TypeExpr, meta []Metadata) []any {
	for _, m := range meta {
		if e, ok := m.(*EnumType); ok {
			return enumValues(e)
		}
	}
	if lit, ok := effective.(literalType); ok {
		values := make([]any, 0, len(lit.values))
		for _, v := range lit.values {
			if v != nil {
				values = append(values, v)
			}
		}
		return values
	}
	if e, ok := effective.(*EnumType); ok {
		return enumValues(e)
	}
	return nil
}

func enumValues(e *EnumType) []any {
	values := make([]any, len(e.members))
	for i, m := range e.members {
		values[i] = m
	}
	return values
}

// inferRequired applies the required rule: a parameter with a default is
// never required; otherwise a literal-set parameter is required when
// every literal value is non-null, and any other parameter is required
// when its type does not accept null.
func inferRequired(effective TypeExpr, hasDefault bool) bool {
	if hasDefault {
		return false
	}
	if lit, ok := effective.(literalType); ok {
		for _, v := range lit.values {
			if v == nil {
				return false
			}
		}
		return true
	}
	return !nullable(effective)
}
