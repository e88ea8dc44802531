package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/joho/godotenv"
	openaisdk "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"
	"google.golang.org/genai"

	"github.com/funcschema/funcschema"
	"github.com/funcschema/funcschema/provider/anthropic"
	"github.com/funcschema/funcschema/provider/google"
	"github.com/funcschema/funcschema/provider/openai"
	"github.com/funcschema/funcschema/structsig"
)

// WeatherArgs describes the get_weather tool arguments.
type WeatherArgs struct {
	City string `json:"city" desc:"The city to get the weather for"`
	Unit string `json:"unit,omitempty" desc:"The unit to return the temperature in" enum:"celsius,fahrenheit" default:"celsius"`
}

const prompt = "What is the weather in Paris, in celsius?"

func main() {
	godotenv.Load()
	ctx := context.Background()

	def := structsig.MustFor[WeatherArgs]("get_weather", "Returns the weather for the given city.")

	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		fmt.Println("=== Anthropic ===")
		runAnthropic(ctx, key, def)
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		fmt.Println("\n=== OpenAI ===")
		runOpenAI(ctx, key, def)
	}

	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		fmt.Println("\n=== Google ===")
		runGoogle(ctx, key, def)
	}
}

func runAnthropic(ctx context.Context, key string, def funcschema.Definition) {
	client := anthropicsdk.NewClient(anthropicopt.WithAPIKey(key))
	doc := funcschema.GetSchema(def, funcschema.FormatClaude)

	resp, err := client.Messages.New(ctx, anthropicsdk.MessageNewParams{
		Model:     anthropicsdk.Model("claude-sonnet-4-5"),
		MaxTokens: 1024,
		Messages: []anthropicsdk.MessageParam{
			anthropicsdk.NewUserMessage(anthropicsdk.NewTextBlock(prompt)),
		},
		Tools: []anthropicsdk.ToolUnionParam{anthropic.Tool(doc)},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			fmt.Println(block.Text)
		case "tool_use":
			fmt.Printf("tool call: %s(%s)\n", block.Name, string(block.Input))
		}
	}
}

func runOpenAI(ctx context.Context, key string, def funcschema.Definition) {
	client := openaisdk.NewClient(openaiopt.WithAPIKey(key))
	doc := funcschema.GetSchema(def, funcschema.FormatOpenAI)

	resp, err := client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: "gpt-4o",
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.UserMessage(prompt),
		},
		Tools: []openaisdk.ChatCompletionToolParam{openai.Tool(doc)},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	msg := resp.Choices[0].Message
	if msg.Content != "" {
		fmt.Println(msg.Content)
	}
	for _, tc := range msg.ToolCalls {
		fmt.Printf("tool call: %s(%s)\n", tc.Function.Name, tc.Function.Arguments)
	}
}

func runGoogle(ctx context.Context, key string, def funcschema.Definition) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	doc := funcschema.GetSchema(def, funcschema.FormatOpenAI)

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}
	config := &genai.GenerateContentConfig{
		Tools: google.Tools([]*funcschema.Document{doc}),
	}

	resp, err := client.Models.GenerateContent(ctx, "gemini-2.0-flash", contents, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			fmt.Println(part.Text)
		}
		if part.FunctionCall != nil {
			args, _ := json.Marshal(part.FunctionCall.Args)
			fmt.Printf("tool call: %s(%s)\n", part.FunctionCall.Name, string(args))
		}
	}
}
