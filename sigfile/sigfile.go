// Package sigfile loads function signature documents.
//
// A signature document is a YAML file declaring one or more function
// signatures, the declarative equivalent of the annotations funcschema
// reads from code:
//
//	functions:
//	  - name: get_weather
//	    description: Returns the weather for the given city.
//	    params:
//	      - name: city
//	        type: string
//	        doc: The city to get the weather for
//	      - name: unit
//	        type: string
//	        optional: true
//	        doc: The unit to return the temperature in
//	        enum: [celsius, fahrenheit]
//	        default: celsius
//
// The funcschema command loads such a document, locates a function by
// name, and prints its schema.
package sigfile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funcschema/funcschema"
)

// ErrNoFunctions is returned when a document declares no functions.
var ErrNoFunctions = errors.New("sigfile: no functions declared")

// File is a parsed signature document.
type File struct {
	Functions []Function `yaml:"functions"`
}

// Function declares one function signature.
type Function struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Params      []Parameter `yaml:"params"`
}

// Parameter declares one parameter. Type names the base type (string,
// integer, number, boolean, array, object, any); types declares a union
// instead, and literal a fixed value set. Constraint keys mirror the
// funcschema field overrides.
type Parameter struct {
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"`
	Types    []string `yaml:"types"`
	Literal  []any    `yaml:"literal"`
	Optional bool     `yaml:"optional"`
	Doc      string   `yaml:"doc"`
	Enum     []string `yaml:"enum"`
	Default  any      `yaml:"default"`

	Required         *bool    `yaml:"required"`
	Minimum          *float64 `yaml:"minimum"`
	Maximum          *float64 `yaml:"maximum"`
	ExclusiveMinimum *float64 `yaml:"exclusiveMinimum"`
	ExclusiveMaximum *float64 `yaml:"exclusiveMaximum"`
	MinLength        *int     `yaml:"minLength"`
	MaxLength        *int     `yaml:"maxLength"`
	Pattern          string   `yaml:"pattern"`
}

// Load reads and parses a signature document from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sigfile: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses a signature document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("sigfile: parse: %w", err)
	}
	if len(f.Functions) == 0 {
		return nil, ErrNoFunctions
	}
	return &f, nil
}

// Find returns the definition of the named function.
func (f *File) Find(name string) (funcschema.Definition, bool) {
	for _, fn := range f.Functions {
		if fn.Name == name {
			return fn.Definition(), true
		}
	}
	return funcschema.Definition{}, false
}

// Definitions returns every declared function as a definition, in
// document order.
func (f *File) Definitions() []funcschema.Definition {
	defs := make([]funcschema.Definition, len(f.Functions))
	for i, fn := range f.Functions {
		defs[i] = fn.Definition()
	}
	return defs
}

// Definition converts the declared signature into a funcschema
// definition.
func (fn Function) Definition() funcschema.Definition {
	def := funcschema.Definition{
		Name:        fn.Name,
		Description: fn.Description,
	}
	for _, p := range fn.Params {
		def.Params = append(def.Params, p.param())
	}
	return def
}

func (p Parameter) param() funcschema.Param {
	expr := p.typeExpr()
	if p.Optional {
		expr = funcschema.Optional(expr)
	}

	var meta []funcschema.Metadata
	if p.Doc != "" {
		meta = append(meta, funcschema.Doc(p.Doc))
	}
	if len(p.Enum) > 0 {
		meta = append(meta, funcschema.Enum(p.Enum...))
	}
	if field, ok := p.field(); ok {
		meta = append(meta, field)
	}

	param := funcschema.Param{
		Name: p.Name,
		Type: expr,
		Meta: meta,
	}
	if p.Default != nil {
		param.Default = p.Default
		param.HasDefault = true
	}
	return param
}

func (p Parameter) typeExpr() funcschema.TypeExpr {
	if len(p.Literal) > 0 {
		return funcschema.Literal(p.Literal...)
	}
	if len(p.Types) > 0 {
		members := make([]funcschema.TypeExpr, len(p.Types))
		for i, name := range p.Types {
			members[i] = baseType(name)
		}
		return funcschema.Union(members...)
	}
	return baseType(p.Type)
}

func baseType(name string) funcschema.TypeExpr {
	switch name {
	case "string":
		return funcschema.String()
	case "integer", "int":
		return funcschema.Integer()
	case "number", "float":
		return funcschema.Number()
	case "boolean", "bool":
		return funcschema.Boolean()
	case "array":
		return funcschema.Array(nil)
	case "object":
		return funcschema.Map()
	case "null":
		return funcschema.Null()
	case "any", "":
		return funcschema.Any()
	default:
		return funcschema.Unknown(name)
	}
}

// field collects the constraint keys into an override, or reports that
// none were set.
func (p Parameter) field() (*funcschema.FieldInfo, bool) {
	set := false
	field := funcschema.Field()
	if p.Required != nil {
		field = field.Required(*p.Required)
		set = true
	}
	if p.Minimum != nil {
		field = field.Min(*p.Minimum)
		set = true
	}
	if p.Maximum != nil {
		field = field.Max(*p.Maximum)
		set = true
	}
	if p.ExclusiveMinimum != nil {
		field = field.ExclusiveMin(*p.ExclusiveMinimum)
		set = true
	}
	if p.ExclusiveMaximum != nil {
		field = field.ExclusiveMax(*p.ExclusiveMaximum)
		set = true
	}
	if p.MinLength != nil {
		field = field.MinLength(*p.MinLength)
		set = true
	}
	if p.MaxLength != nil {
		field = field.MaxLength(*p.MaxLength)
		set = true
	}
	if p.Pattern != "" {
		field = field.Pattern(p.Pattern)
		set = true
	}
	return field, set
}
