// Package structsig reflects Go argument structs into funcschema
// definitions.
//
// It is the signature-reflector adapter for code that declares tool
// arguments as a struct, using the tag conventions common to tool
// registries:
//
//	type WeatherArgs struct {
//	    City string `json:"city" desc:"The city to get the weather for"`
//	    Unit string `json:"unit,omitempty" desc:"Temperature unit" enum:"celsius,fahrenheit" default:"celsius"`
//	}
//
//	def, err := structsig.For[WeatherArgs]("get_weather", "Returns the weather.")
//	doc := funcschema.GetSchema(def, funcschema.FormatOpenAI)
//
// Field names come from json tags. Pointer fields and fields marked
// omitempty map to nullable (optional) types; a `required` tag
// overrides the inference either way. The `desc` tag becomes the
// property description, `enum` a comma-separated member list, and
// `default` the default value, parsed according to the field's kind.
package structsig

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/funcschema/funcschema"
)

// ErrNotStruct is returned when the type argument is not a struct.
var ErrNotStruct = errors.New("structsig: type is not a struct")

// For builds a function definition from the fields of T.
func For[T any](name, description string) (funcschema.Definition, error) {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return funcschema.Definition{}, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}

	def := funcschema.Definition{
		Name:        name,
		Description: description,
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		paramName, opts, _ := strings.Cut(jsonTag, ",")
		if paramName == "" {
			paramName = field.Name
		}

		param, err := buildParam(paramName, field, hasOption(opts, "omitempty"))
		if err != nil {
			return funcschema.Definition{}, err
		}
		def.Params = append(def.Params, param)
	}

	return def, nil
}

// MustFor is like For but panics on error.
func MustFor[T any](name, description string) funcschema.Definition {
	def, err := For[T](name, description)
	if err != nil {
		panic(err)
	}
	return def
}

// SchemaFor generates the object schema JSON for a struct type T. The
// result is the bare {type, properties, required} object, the shape tool
// and provider APIs take verbatim.
func SchemaFor[T any]() (json.RawMessage, error) {
	def, err := For[T]("", "")
	if err != nil {
		return nil, err
	}
	return funcschema.GetSchema(def, funcschema.FormatOpenAI).ObjectJSON()
}

// MustSchemaFor is like SchemaFor but panics on error.
func MustSchemaFor[T any]() json.RawMessage {
	data, err := SchemaFor[T]()
	if err != nil {
		panic(err)
	}
	return data
}

func buildParam(name string, field reflect.StructField, omitempty bool) (funcschema.Param, error) {
	optional := omitempty || field.Type.Kind() == reflect.Ptr
	expr := exprForType(field.Type)
	if optional {
		expr = funcschema.Optional(expr)
	}

	var meta []funcschema.Metadata
	if desc := field.Tag.Get("desc"); desc != "" {
		meta = append(meta, funcschema.Doc(desc))
	}
	if enum := field.Tag.Get("enum"); enum != "" {
		meta = append(meta, funcschema.Enum(strings.Split(enum, ",")...))
	}
	if req, ok := field.Tag.Lookup("required"); ok {
		b, err := strconv.ParseBool(req)
		if err != nil {
			return funcschema.Param{}, fmt.Errorf("structsig: field %s: invalid required tag %q", field.Name, req)
		}
		meta = append(meta, funcschema.Field().Required(b))
	}

	param := funcschema.Param{
		Name: name,
		Type: expr,
		Meta: meta,
	}

	if tag, ok := field.Tag.Lookup("default"); ok {
		value, err := parseDefault(tag, field.Type)
		if err != nil {
			return funcschema.Param{}, fmt.Errorf("structsig: field %s: %w", field.Name, err)
		}
		param.Default = value
		param.HasDefault = true
	}

	return param, nil
}

// exprForType maps a Go type onto a type expression. Booleans are
// matched before the numeric kinds.
func exprForType(t reflect.Type) funcschema.TypeExpr {
	switch t.Kind() {
	case reflect.Ptr:
		return exprForType(t.Elem())
	case reflect.String:
		return funcschema.String()
	case reflect.Bool:
		return funcschema.Boolean()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return funcschema.Integer()
	case reflect.Float32, reflect.Float64:
		return funcschema.Number()
	case reflect.Slice, reflect.Array:
		return funcschema.Array(exprForType(t.Elem()))
	case reflect.Map, reflect.Struct:
		return funcschema.Map()
	case reflect.Interface:
		return funcschema.Any()
	default:
		return funcschema.Unknown(t.String())
	}
}

func parseDefault(tag string, t reflect.Type) (any, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return tag, nil
	case reflect.Bool:
		b, err := strconv.ParseBool(tag)
		if err != nil {
			return nil, fmt.Errorf("invalid bool default %q", tag)
		}
		return b, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.Atoi(tag)
		if err != nil {
			return nil, fmt.Errorf("invalid integer default %q", tag)
		}
		return n, nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(tag, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number default %q", tag)
		}
		return f, nil
	default:
		// Unsupported kinds keep the literal tag text.
		return tag, nil
	}
}

func hasOption(opts, name string) bool {
	for opts != "" {
		var o string
		o, opts, _ = strings.Cut(opts, ",")
		if o == name {
			return true
		}
	}
	return false
}
