package funcschema

import (
	"encoding/json"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Property is the resolved schema of a single parameter. It is built
// fresh on every schema generation and marshals with only its set keys,
// in a stable order: type, description, enum, default, the numeric and
// string constraints, then any extra raw keys.
type Property struct {
	tokens  []TypeToken
	anyType bool

	Description string
	Enum        []any
	Default     any
	HasDefault  bool

	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64
	MinLength        *int
	MaxLength        *int
	Pattern          *string

	requiredOverride *bool
	extra            map[string]any
}

// Tokens returns the property's type tokens, nil when the type key is
// omitted or the property accepts any value.
func (p *Property) Tokens() []TypeToken {
	return p.tokens
}

// AcceptsAny reports whether the property accepts any value.
func (p *Property) AcceptsAny() bool {
	return p.anyType
}

// MarshalJSON emits the property's set keys in a stable order.
func (p *Property) MarshalJSON() ([]byte, error) {
	om := orderedmap.New[string, any]()

	switch {
	case p.anyType:
		// Empty-schema marker: the type accepts anything.
		om.Set("type", map[string]any{})
	case len(p.tokens) == 1:
		om.Set("type", p.tokens[0])
	case len(p.tokens) > 1:
		om.Set("type", p.tokens)
	}

	om.Set("description", p.Description)

	if p.Enum != nil {
		om.Set("enum", p.Enum)
	}
	if p.HasDefault {
		om.Set("default", p.Default)
	}
	if p.Minimum != nil {
		om.Set("minimum", *p.Minimum)
	}
	if p.Maximum != nil {
		om.Set("maximum", *p.Maximum)
	}
	if p.ExclusiveMinimum != nil {
		om.Set("exclusiveMinimum", *p.ExclusiveMinimum)
	}
	if p.ExclusiveMaximum != nil {
		om.Set("exclusiveMaximum", *p.ExclusiveMaximum)
	}
	if p.MinLength != nil {
		om.Set("minLength", *p.MinLength)
	}
	if p.MaxLength != nil {
		om.Set("maxLength", *p.MaxLength)
	}
	if p.Pattern != nil {
		om.Set("pattern", *p.Pattern)
	}

	keys := make([]string, 0, len(p.extra))
	for k := range p.extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		om.Set(k, p.extra[k])
	}

	return json.Marshal(om)
}

// apply merges a raw mapping into the property. Recognized schema keys
// are coerced onto their typed slots so they interact correctly with
// FieldInfo overrides; anything else is carried through verbatim.
func (r Raw) apply(p *Property) {
	for k, v := range r {
		switch k {
		case "type":
			if tokens, ok := rawTokens(v); ok {
				p.tokens = tokens
				p.anyType = false
				continue
			}
		case "description":
			if s, ok := v.(string); ok {
				p.Description = s
				continue
			}
		case "enum":
			if vals, ok := rawValues(v); ok {
				p.Enum = vals
				continue
			}
		case "required":
			if b, ok := v.(bool); ok {
				p.requiredOverride = ptr(b)
				continue
			}
		case "default":
			p.Default = v
			p.HasDefault = true
			continue
		case "minimum":
			if f, ok := toFloat(v); ok {
				p.Minimum = ptr(f)
				continue
			}
		case "maximum":
			if f, ok := toFloat(v); ok {
				p.Maximum = ptr(f)
				continue
			}
		case "exclusiveMinimum":
			if f, ok := toFloat(v); ok {
				p.ExclusiveMinimum = ptr(f)
				continue
			}
		case "exclusiveMaximum":
			if f, ok := toFloat(v); ok {
				p.ExclusiveMaximum = ptr(f)
				continue
			}
		case "minLength":
			if f, ok := toFloat(v); ok {
				p.MinLength = ptr(int(f))
				continue
			}
		case "maxLength":
			if f, ok := toFloat(v); ok {
				p.MaxLength = ptr(int(f))
				continue
			}
		case "pattern":
			if s, ok := v.(string); ok {
				p.Pattern = ptr(s)
				continue
			}
		}
		if p.extra == nil {
			p.extra = make(map[string]any)
		}
		p.extra[k] = v
	}
}

func rawTokens(v any) ([]TypeToken, bool) {
	switch t := v.(type) {
	case TypeToken:
		return []TypeToken{t}, true
	case string:
		return []TypeToken{TypeToken(t)}, true
	case []TypeToken:
		return t, true
	case []string:
		tokens := make([]TypeToken, len(t))
		for i, s := range t {
			tokens[i] = TypeToken(s)
		}
		return tokens, true
	case []any:
		tokens := make([]TypeToken, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			tokens = append(tokens, TypeToken(s))
		}
		return tokens, true
	}
	return nil, false
}

func rawValues(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		vals := make([]any, len(t))
		for i, s := range t {
			vals[i] = s
		}
		return vals, true
	}
	return nil, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
