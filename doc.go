// Package funcschema generates JSON tool schemas from function
// signatures.
//
// Given a resolved function definition (name, documentation text, and an
// ordered list of parameters with type expressions, metadata, and
// defaults), the package produces the schema LLM tool-calling APIs
// expect, in two dialects: the OpenAI style, which wraps the object
// schema under "parameters", and the Claude style, which wraps the same
// object under "input_schema".
//
// # Basic Usage
//
// Describe a function with type expressions and metadata, then generate:
//
//	def := funcschema.Definition{
//	    Name:        "get_weather",
//	    Description: "Returns the weather for the given city.",
//	    Params: []funcschema.Param{
//	        {
//	            Name: "city",
//	            Type: funcschema.Annotated(funcschema.String(),
//	                funcschema.Doc("The city to get the weather for")),
//	        },
//	        {
//	            Name: "unit",
//	            Type: funcschema.Annotated(funcschema.Optional(funcschema.String()),
//	                funcschema.Doc("The unit to return the temperature in"),
//	                funcschema.Enum("celsius", "fahrenheit")),
//	            Default:    "celsius",
//	            HasDefault: true,
//	        },
//	    },
//	}
//
//	doc := funcschema.GetSchema(def, funcschema.FormatOpenAI)
//	data, _ := doc.JSON()
//
// A parameter is required when it has no default and its type does not
// accept null; nullable parameters and parameters with defaults are
// optional without further annotation.
//
// # Type Classification
//
// [Classify] maps a type expression onto the JSON Schema vocabulary
// {string, number, integer, boolean, array, object}. Unions classify
// each non-null member, deduplicated in first-seen order, and a result
// of exactly {number, integer} collapses to number. Literal value-sets
// classify by their values' runtime types and supply the enum list.
// Unrecognized types degrade to a property without a type key, never an
// error.
//
// # Constraints
//
// Explicit overrides are expressed with [Field] and merged after
// inference, so they always win:
//
//	funcschema.Param{
//	    Name: "count",
//	    Type: funcschema.Annotated(funcschema.Integer(),
//	        funcschema.Field().Min(1).Max(100).Desc("How many results")),
//	}
//
// # Reflection and Integrations
//
// The core performs no reflection. The structsig package reflects an
// args struct into a [Definition] using struct tags, the sigfile package
// loads definitions from YAML signature files, and the provider/* and
// mcp packages bind generated documents to the Anthropic, OpenAI, Google,
// and MCP SDKs.
package funcschema
