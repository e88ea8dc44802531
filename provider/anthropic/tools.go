// Package anthropic binds funcschema documents to the Anthropic
// Messages API, which takes tool schemas in the input_schema dialect.
package anthropic

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/funcschema/funcschema"
)

// Tool converts a schema document into an Anthropic tool parameter.
func Tool(doc *funcschema.Document) anthropic.ToolUnionParam {
	var schema map[string]any
	if data, err := doc.ObjectJSON(); err == nil {
		json.Unmarshal(data, &schema)
	}

	var required []string
	if reqVal, ok := schema["required"].([]any); ok {
		for _, r := range reqVal {
			if s, ok := r.(string); ok {
				required = append(required, s)
			}
		}
	}

	toolParam := anthropic.ToolParam{
		Name: doc.Name,
		InputSchema: anthropic.ToolInputSchemaParam{
			Properties: schema["properties"],
			Required:   required,
		},
	}
	if doc.Description != "" {
		toolParam.Description = anthropic.String(doc.Description)
	}

	return anthropic.ToolUnionParam{
		OfTool: &toolParam,
	}
}

// Tools converts a set of documents.
func Tools(docs []*funcschema.Document) []anthropic.ToolUnionParam {
	if len(docs) == 0 {
		return nil
	}
	result := make([]anthropic.ToolUnionParam, len(docs))
	for i, doc := range docs {
		result[i] = Tool(doc)
	}
	return result
}
