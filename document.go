package funcschema

import (
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Format selects the output dialect: the top-level key wrapping the
// object schema.
type Format string

const (
	// FormatOpenAI wraps the object schema under "parameters" (default).
	FormatOpenAI Format = "openai"
	// FormatClaude wraps the object schema under "input_schema".
	FormatClaude Format = "claude"
)

// ParseFormat resolves a dialect name. Unknown names are corrected to
// FormatOpenAI; the returned error explains the correction so callers
// can surface it without failing.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatOpenAI, FormatClaude:
		return Format(s), nil
	case "":
		return FormatOpenAI, nil
	}
	return FormatOpenAI, fmt.Errorf("%w: %q, using %q", ErrUnknownFormat, s, FormatOpenAI)
}

// Key returns the dialect's top-level wrapping key.
func (f Format) Key() string {
	if f == FormatClaude {
		return "input_schema"
	}
	return "parameters"
}

// Definition is a resolved callable: the shape a signature reflector
// produces. The core consumes it as-is and performs no reflection of
// its own.
type Definition struct {
	// Name is the function name.
	Name string
	// Description is the function's documentation text, empty when the
	// function has none.
	Description string
	// Params are the parameters in declaration order.
	Params []Param
}

// ObjectSchema is the root object schema: the function's properties in
// parameter declaration order plus the required-parameter names.
type ObjectSchema struct {
	Properties *orderedmap.OrderedMap[string, *Property]
	Required   []string
}

// MarshalJSON always emits properties and required, even when empty.
func (s *ObjectSchema) MarshalJSON() ([]byte, error) {
	om := orderedmap.New[string, any]()
	om.Set("type", "object")
	om.Set("properties", s.Properties)
	required := s.Required
	if required == nil {
		required = []string{}
	}
	om.Set("required", required)
	return json.Marshal(om)
}

// Document is a function's complete tool schema in one dialect.
type Document struct {
	Name        string
	Description string
	Format      Format
	Schema      *ObjectSchema
}

// MarshalJSON emits {name, description, <dialect key>: schema}.
// An absent function description serializes as null.
func (d *Document) MarshalJSON() ([]byte, error) {
	om := orderedmap.New[string, any]()
	om.Set("name", d.Name)
	if d.Description == "" {
		om.Set("description", nil)
	} else {
		om.Set("description", d.Description)
	}
	om.Set(d.Format.Key(), d.Schema)
	return json.Marshal(om)
}

// JSON serializes the whole document.
func (d *Document) JSON() (json.RawMessage, error) {
	return json.Marshal(d)
}

// ObjectJSON serializes just the object schema, without the name and
// dialect wrapping. This is the shape provider SDKs consume.
func (d *Document) ObjectJSON() (json.RawMessage, error) {
	return json.Marshal(d.Schema)
}

// GetSchema produces the tool schema for a resolved function definition.
//
// Each parameter yields exactly one property, in declaration order.
// An unrecognized format falls back to FormatOpenAI rather than failing;
// use ParseFormat first to learn about the correction. GetSchema is pure:
// the same definition and format always produce a structurally identical
// document, and concurrent calls are safe.
func GetSchema(def Definition, format Format) *Document {
	if format != FormatOpenAI && format != FormatClaude {
		format = FormatOpenAI
	}

	schema := &ObjectSchema{
		Properties: orderedmap.New[string, *Property](),
	}
	required := make([]string, 0, len(def.Params))
	seen := make(map[string]bool)

	for _, p := range def.Params {
		prop, req := buildProperty(p)
		schema.Properties.Set(p.Name, prop)
		if req && !seen[p.Name] {
			seen[p.Name] = true
			required = append(required, p.Name)
		}
	}
	schema.Required = required

	return &Document{
		Name:        def.Name,
		Description: def.Description,
		Format:      format,
		Schema:      schema,
	}
}
