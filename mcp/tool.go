// Package mcp binds funcschema documents to the Model Context Protocol.
//
// MCP servers advertise tools with a JSON Schema input definition; the
// object schema funcschema generates is registered verbatim as the
// tool's raw input schema:
//
//	def, _ := structsig.For[WeatherArgs]("get_weather", "Returns the weather.")
//	tool := mcp.Tool(funcschema.GetSchema(def, funcschema.FormatOpenAI))
//	server.AddTool(tool, handler)
package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/funcschema/funcschema"
)

// Tool converts a schema document into an MCP tool. The document's
// object schema becomes the tool's raw input schema, so both dialects
// convert identically.
func Tool(doc *funcschema.Document) mcp.Tool {
	var schema json.RawMessage
	if data, err := doc.ObjectJSON(); err == nil {
		schema = data
	}
	return mcp.NewToolWithRawSchema(doc.Name, doc.Description, schema)
}

// Tools converts a set of documents.
func Tools(docs []*funcschema.Document) []mcp.Tool {
	result := make([]mcp.Tool, len(docs))
	for i, doc := range docs {
		result[i] = Tool(doc)
	}
	return result
}
