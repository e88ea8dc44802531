// Package openai binds funcschema documents to the OpenAI Chat
// Completions API, which takes tool schemas in the parameters dialect.
package openai

import (
	"encoding/json"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"

	"github.com/funcschema/funcschema"
)

// Tool converts a schema document into an OpenAI tool parameter.
func Tool(doc *funcschema.Document) openai.ChatCompletionToolParam {
	var params shared.FunctionParameters
	if data, err := doc.ObjectJSON(); err == nil {
		json.Unmarshal(data, &params)
	}

	fn := shared.FunctionDefinitionParam{
		Name:       doc.Name,
		Parameters: params,
	}
	if doc.Description != "" {
		fn.Description = openai.String(doc.Description)
	}

	return openai.ChatCompletionToolParam{
		Function: fn,
	}
}

// Tools converts a set of documents.
func Tools(docs []*funcschema.Document) []openai.ChatCompletionToolParam {
	if len(docs) == 0 {
		return nil
	}
	result := make([]openai.ChatCompletionToolParam, len(docs))
	for i, doc := range docs {
		result[i] = Tool(doc)
	}
	return result
}
