// Command mcpserver is a reference MCP server that exposes a generated
// tool schema over stdio.
//
// The get_weather tool is declared as a Go struct, turned into a schema
// document, and registered with the MCP server as a raw JSON Schema, so
// MCP clients discover the same schema an LLM provider would receive.
//
// Usage:
//
//	go run ./cmd/mcpserver
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	mcpsdk "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/funcschema/funcschema"
	fsmcp "github.com/funcschema/funcschema/mcp"
	"github.com/funcschema/funcschema/structsig"
)

// WeatherArgs describes the get_weather tool arguments.
type WeatherArgs struct {
	City string `json:"city" desc:"The city to get the weather for"`
	Unit string `json:"unit,omitempty" desc:"The unit to return the temperature in" enum:"celsius,fahrenheit" default:"celsius"`
}

func main() {
	s := server.NewMCPServer(
		"funcschema-example",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	def := structsig.MustFor[WeatherArgs]("get_weather", "Returns the weather for the given city.")
	doc := funcschema.GetSchema(def, funcschema.FormatOpenAI)

	s.AddTool(fsmcp.Tool(doc), weatherHandler)

	if err := server.ServeStdio(s); err != nil {
		log.Fatal(err)
	}
}

func weatherHandler(ctx context.Context, req mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	var args WeatherArgs
	if req.Params.Arguments != nil {
		data, err := json.Marshal(req.Params.Arguments)
		if err != nil {
			return mcpsdk.NewToolResultError(err.Error()), nil
		}
		if err := json.Unmarshal(data, &args); err != nil {
			return mcpsdk.NewToolResultError(err.Error()), nil
		}
	}

	unit := args.Unit
	if unit == "" {
		unit = "celsius"
	}
	degrees := 21
	if unit == "fahrenheit" {
		degrees = 70
	}

	return mcpsdk.NewToolResultText(fmt.Sprintf("It is %d degrees %s in %s.", degrees, unit, args.City)), nil
}
