package google

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"google.golang.org/genai"

	"github.com/funcschema/funcschema"
)

func weatherDocument() *funcschema.Document {
	def := funcschema.Definition{
		Name:        "get_weather",
		Description: "Returns the weather for the given city.",
		Params: []funcschema.Param{
			{
				Name: "city",
				Type: funcschema.String(),
				Meta: []funcschema.Metadata{funcschema.Doc("The city to get the weather for")},
			},
			{
				Name:       "unit",
				Type:       funcschema.Optional(funcschema.String()),
				Meta:       []funcschema.Metadata{funcschema.Enum("celsius", "fahrenheit")},
				Default:    "celsius",
				HasDefault: true,
			},
		},
	}
	return funcschema.GetSchema(def, funcschema.FormatOpenAI)
}

func TestDeclaration(t *testing.T) {
	decl := Declaration(weatherDocument())

	assert.Equal(t, "get_weather", decl.Name)
	assert.Equal(t, "Returns the weather for the given city.", decl.Description)

	require.NotNil(t, decl.Parameters)
	assert.Equal(t, genai.TypeObject, decl.Parameters.Type)
	assert.Equal(t, []string{"city"}, decl.Parameters.Required)

	city, ok := decl.Parameters.Properties["city"]
	require.True(t, ok)
	assert.Equal(t, genai.TypeString, city.Type)
	assert.Equal(t, "The city to get the weather for", city.Description)

	unit, ok := decl.Parameters.Properties["unit"]
	require.True(t, ok)
	assert.Equal(t, []string{"celsius", "fahrenheit"}, unit.Enum)
}

func TestDeclarationArrayItems(t *testing.T) {
	def := funcschema.Definition{
		Name: "tag",
		Params: []funcschema.Param{
			{Name: "labels", Type: funcschema.Array(funcschema.String())},
		},
	}
	decl := Declaration(funcschema.GetSchema(def, funcschema.FormatOpenAI))

	labels := decl.Parameters.Properties["labels"]
	require.NotNil(t, labels)
	assert.Equal(t, genai.TypeArray, labels.Type)
	require.NotNil(t, labels.Items)
	assert.Equal(t, genai.TypeString, labels.Items.Type)
}

func TestDeclarationUnionUnspecified(t *testing.T) {
	def := funcschema.Definition{
		Name: "convert",
		Params: []funcschema.Param{
			{Name: "value", Type: funcschema.Union(funcschema.Integer(), funcschema.String())},
		},
	}
	decl := Declaration(funcschema.GetSchema(def, funcschema.FormatOpenAI))

	value := decl.Parameters.Properties["value"]
	require.NotNil(t, value)
	assert.Equal(t, genai.TypeUnspecified, value.Type)
}

func TestTools(t *testing.T) {
	tools := Tools([]*funcschema.Document{weatherDocument(), weatherDocument()})
	require.Len(t, tools, 1)
	assert.Len(t, tools[0].FunctionDeclarations, 2)

	assert.Nil(t, Tools(nil))
}
