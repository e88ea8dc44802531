// Package google binds funcschema documents to the Google genai API,
// converting the JSON object schema into genai's typed Schema values.
package google

import (
	"encoding/json"

	"google.golang.org/genai"

	"github.com/funcschema/funcschema"
)

// Declaration converts a schema document into a genai function
// declaration.
func Declaration(doc *funcschema.Document) *genai.FunctionDeclaration {
	var schema *genai.Schema
	if data, err := doc.ObjectJSON(); err == nil {
		schema = convertJSONSchema(data)
	}

	return &genai.FunctionDeclaration{
		Name:        doc.Name,
		Description: doc.Description,
		Parameters:  schema,
	}
}

// Tools converts a set of documents into a single genai tool carrying
// one function declaration per document.
func Tools(docs []*funcschema.Document) []*genai.Tool {
	if len(docs) == 0 {
		return nil
	}
	funcs := make([]*genai.FunctionDeclaration, len(docs))
	for i, doc := range docs {
		funcs[i] = Declaration(doc)
	}
	return []*genai.Tool{{FunctionDeclarations: funcs}}
}

func convertJSONSchema(schemaJSON json.RawMessage) *genai.Schema {
	if len(schemaJSON) == 0 {
		return nil
	}

	var schema map[string]any
	if err := json.Unmarshal(schemaJSON, &schema); err != nil {
		return nil
	}

	return convertSchemaObject(schema)
}

func convertSchemaObject(schema map[string]any) *genai.Schema {
	if schema == nil {
		return nil
	}

	result := &genai.Schema{}

	// genai schemas carry a single type; a multi-token or absent type
	// key stays TypeUnspecified.
	if typeVal, ok := schema["type"].(string); ok {
		switch typeVal {
		case "string":
			result.Type = genai.TypeString
		case "number":
			result.Type = genai.TypeNumber
		case "integer":
			result.Type = genai.TypeInteger
		case "boolean":
			result.Type = genai.TypeBoolean
		case "array":
			result.Type = genai.TypeArray
		case "object":
			result.Type = genai.TypeObject
		}
	}

	if desc, ok := schema["description"].(string); ok {
		result.Description = desc
	}

	if enumVal, ok := schema["enum"].([]any); ok {
		for _, e := range enumVal {
			if s, ok := e.(string); ok {
				result.Enum = append(result.Enum, s)
			}
		}
	}

	if props, ok := schema["properties"].(map[string]any); ok {
		result.Properties = make(map[string]*genai.Schema)
		for name, propSchema := range props {
			if propMap, ok := propSchema.(map[string]any); ok {
				result.Properties[name] = convertSchemaObject(propMap)
			}
		}
	}

	if required, ok := schema["required"].([]any); ok {
		for _, r := range required {
			if s, ok := r.(string); ok {
				result.Required = append(result.Required, s)
			}
		}
	}

	if items, ok := schema["items"].(map[string]any); ok {
		result.Items = convertSchemaObject(items)
	}

	return result
}
