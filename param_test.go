package funcschema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// propertyMap resolves a parameter and returns its property as a decoded
// JSON map plus the required flag.
func propertyMap(t *testing.T, p Param) (map[string]any, bool) {
	t.Helper()
	prop, required := buildProperty(p)
	data, err := json.Marshal(prop)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m, required
}

func TestDescriptionResolution(t *testing.T) {
	t.Run("doc item wins", func(t *testing.T) {
		m, _ := propertyMap(t, Param{
			Name: "a",
			Type: Annotated(Integer(), Doc("An integer parameter")),
		})
		assert.Equal(t, "An integer parameter", m["description"])
	})

	t.Run("first doc wins over later docs", func(t *testing.T) {
		m, _ := propertyMap(t, Param{
			Name: "a",
			Type: Annotated(Integer(), Doc("An integer parameter"), Doc("A number")),
		})
		assert.Equal(t, "An integer parameter", m["description"])
	})

	t.Run("doc wins over plain text regardless of order", func(t *testing.T) {
		m, _ := propertyMap(t, Param{
			Name: "a",
			Type: Annotated(Integer(), Text("An integer parameter"), Doc("A number")),
		})
		assert.Equal(t, "A number", m["description"])
	})

	t.Run("plain text used when no doc", func(t *testing.T) {
		m, _ := propertyMap(t, Param{
			Name: "a",
			Type: Annotated(Integer(), Text("An integer parameter")),
		})
		assert.Equal(t, "An integer parameter", m["description"])
	})

	t.Run("placeholder synthesized when nothing attached", func(t *testing.T) {
		m, _ := propertyMap(t, Param{Name: "city", Type: String()})
		assert.Equal(t, "The city parameter", m["description"])
	})

	t.Run("doc after enum metadata still found", func(t *testing.T) {
		m, _ := propertyMap(t, Param{
			Name: "a",
			Type: Annotated(String(), Enum("a", "b", "c"), Doc("A string parameter")),
		})
		assert.Equal(t, "A string parameter", m["description"])
		assert.Equal(t, []any{"a", "b", "c"}, m["enum"])
	})
}

func TestEnumResolution(t *testing.T) {
	t.Run("enum metadata in member order", func(t *testing.T) {
		m, _ := propertyMap(t, Param{
			Name: "animal",
			Type: Annotated(String(), Enum("Cat", "Dog")),
		})
		assert.Equal(t, "string", m["type"])
		assert.Equal(t, []any{"Cat", "Dog"}, m["enum"])
	})

	t.Run("enum metadata beats literal values", func(t *testing.T) {
		m, _ := propertyMap(t, Param{
			Name: "animal",
			Type: Annotated(Literal("x", "y"), Enum("Cat", "Dog")),
		})
		assert.Equal(t, []any{"Cat", "Dog"}, m["enum"])
	})

	t.Run("literal values become the enum", func(t *testing.T) {
		m, _ := propertyMap(t, Param{Name: "animal", Type: Literal("Cat", "Dog")})
		assert.Equal(t, "string", m["type"])
		assert.Equal(t, []any{"Cat", "Dog"}, m["enum"])
	})

	t.Run("null literal entries dropped from enum", func(t *testing.T) {
		m, _ := propertyMap(t, Param{Name: "animal", Type: Literal("Cat", nil, "Dog")})
		assert.Equal(t, "string", m["type"])
		assert.Equal(t, []any{"Cat", "Dog"}, m["enum"])
	})

	t.Run("enum used as the type supplies members", func(t *testing.T) {
		m, _ := propertyMap(t, Param{Name: "unit", Type: Enum("celsius", "fahrenheit")})
		assert.Equal(t, "string", m["type"])
		assert.Equal(t, []any{"celsius", "fahrenheit"}, m["enum"])
	})

	t.Run("no enum without a source", func(t *testing.T) {
		m, _ := propertyMap(t, Param{Name: "a", Type: String()})
		_, ok := m["enum"]
		assert.False(t, ok)
	})
}

func TestFieldOverrides(t *testing.T) {
	t.Run("type override wins over classification", func(t *testing.T) {
		m, _ := propertyMap(t, Param{
			Name: "a",
			Type: Annotated(Number(), Field().Type(TokenInteger)),
		})
		assert.Equal(t, "integer", m["type"])
	})

	t.Run("description override", func(t *testing.T) {
		m, _ := propertyMap(t, Param{
			Name: "a",
			Type: Annotated(Integer(), Doc("inferred"), Field().Desc("overridden")),
		})
		assert.Equal(t, "overridden", m["description"])
	})

	t.Run("enum override", func(t *testing.T) {
		m, _ := propertyMap(t, Param{
			Name: "a",
			Type: Annotated(String(), Field().Enum("red", "green", "blue")),
		})
		assert.Equal(t, []any{"red", "green", "blue"}, m["enum"])
	})

	t.Run("required override on nullable type", func(t *testing.T) {
		_, required := buildProperty(Param{
			Name: "a",
			Type: Annotated(Optional(Integer()), Field().Required(true)),
		})
		assert.True(t, required)
	})

	t.Run("required override can relax", func(t *testing.T) {
		_, required := buildProperty(Param{
			Name: "a",
			Type: Annotated(Integer(), Field().Required(false)),
		})
		assert.False(t, required)
	})

	t.Run("numeric bounds", func(t *testing.T) {
		m, _ := propertyMap(t, Param{
			Name: "a",
			Type: Annotated(Integer(), Field().Min(1).Max(100)),
		})
		assert.Equal(t, float64(1), m["minimum"])
		assert.Equal(t, float64(100), m["maximum"])
	})

	t.Run("exclusive bounds", func(t *testing.T) {
		m, _ := propertyMap(t, Param{
			Name: "a",
			Type: Annotated(Integer(), Field().ExclusiveMin(0).ExclusiveMax(10)),
		})
		assert.Equal(t, float64(0), m["exclusiveMinimum"])
		assert.Equal(t, float64(10), m["exclusiveMaximum"])
	})

	t.Run("string length and pattern", func(t *testing.T) {
		m, _ := propertyMap(t, Param{
			Name: "a",
			Type: Annotated(String(), Field().MinLength(5).MaxLength(10).Pattern("^[a-zA-Z0-9]+$")),
		})
		assert.Equal(t, float64(5), m["minLength"])
		assert.Equal(t, float64(10), m["maxLength"])
		assert.Equal(t, "^[a-zA-Z0-9]+$", m["pattern"])
	})

	t.Run("later field overrides only its own keys", func(t *testing.T) {
		m, _ := propertyMap(t, Param{
			Name: "a",
			Type: Annotated(Integer(),
				Field().Min(1).Max(100),
				Field().Pattern("^[0-9]+$")),
		})
		assert.Equal(t, float64(1), m["minimum"])
		assert.Equal(t, float64(100), m["maximum"])
		assert.Equal(t, "^[0-9]+$", m["pattern"])
	})

	t.Run("bounds combined with description", func(t *testing.T) {
		m, _ := propertyMap(t, Param{
			Name: "a",
			Type: Annotated(Integer(), Field().Desc("The number").Min(1).Max(42)),
		})
		assert.Equal(t, "The number", m["description"])
		assert.Equal(t, float64(1), m["minimum"])
		assert.Equal(t, float64(42), m["maximum"])
	})
}

func TestRawOverrides(t *testing.T) {
	t.Run("raw mapping merges known keys", func(t *testing.T) {
		m, _ := propertyMap(t, Param{
			Name: "a",
			Type: Annotated(Integer(), Raw{"minimum": 10}),
		})
		assert.Equal(t, float64(10), m["minimum"])
	})

	t.Run("raw type override", func(t *testing.T) {
		m, _ := propertyMap(t, Param{
			Name: "a",
			Type: Annotated(Number(), Raw{"type": "integer"}),
		})
		assert.Equal(t, "integer", m["type"])
	})

	t.Run("raw required steers the required flag", func(t *testing.T) {
		prop, required := buildProperty(Param{
			Name: "a",
			Type: Annotated(Optional(Integer()), Raw{"required": true}),
		})
		assert.True(t, required)

		data, err := json.Marshal(prop)
		require.NoError(t, err)
		assert.NotContains(t, string(data), `"required"`)
	})

	t.Run("unrecognized keys carried through", func(t *testing.T) {
		m, _ := propertyMap(t, Param{
			Name: "a",
			Type: Annotated(String(), Raw{"format": "date"}),
		})
		assert.Equal(t, "date", m["format"])
	})

	t.Run("raw default", func(t *testing.T) {
		m, _ := propertyMap(t, Param{
			Name: "a",
			Type: Annotated(String(), Raw{"default": "x"}),
		})
		assert.Equal(t, "x", m["default"])
	})
}

func TestRequiredInference(t *testing.T) {
	t.Run("non-nullable without default is required", func(t *testing.T) {
		_, required := buildProperty(Param{Name: "a", Type: String()})
		assert.True(t, required)
	})

	t.Run("nullable without default is not required", func(t *testing.T) {
		_, required := buildProperty(Param{Name: "a", Type: Optional(String())})
		assert.False(t, required)
	})

	t.Run("default is never required", func(t *testing.T) {
		_, required := buildProperty(Param{
			Name: "a", Type: String(), Default: "x", HasDefault: true,
		})
		assert.False(t, required)

		_, required = buildProperty(Param{
			Name: "a", Type: Literal("x", "y"), Default: "x", HasDefault: true,
		})
		assert.False(t, required)
	})

	t.Run("literal with all non-null values is required", func(t *testing.T) {
		_, required := buildProperty(Param{Name: "a", Type: Literal("x", "y", "z")})
		assert.True(t, required)
	})

	t.Run("literal containing null is not required", func(t *testing.T) {
		_, required := buildProperty(Param{Name: "a", Type: Literal("x", nil)})
		assert.False(t, required)
	})
}

func TestDegradations(t *testing.T) {
	t.Run("unclassifiable type omits the type key", func(t *testing.T) {
		m, required := propertyMap(t, Param{Name: "id", Type: Unknown("uuid.UUID")})
		_, ok := m["type"]
		assert.False(t, ok)
		assert.Equal(t, "The id parameter", m["description"])
		assert.True(t, required)
	})

	t.Run("any type emits the empty-schema marker", func(t *testing.T) {
		m, _ := propertyMap(t, Param{Name: "payload", Type: Any()})
		assert.Equal(t, map[string]any{}, m["type"])
	})

	t.Run("explicit null default is emitted", func(t *testing.T) {
		m, required := propertyMap(t, Param{
			Name: "due", Type: Optional(String()), Default: nil, HasDefault: true,
		})
		v, ok := m["default"]
		assert.True(t, ok)
		assert.Nil(t, v)
		assert.False(t, required)
	})
}
