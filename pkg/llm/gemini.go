package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient implements Client over the Google GenAI SDK.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed client for the given model.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Complete sends the conversation and returns the model's text and tool calls.
func (c *GeminiClient) Complete(ctx context.Context, req *Request) (*Completion, error) {
	contents := make([]*genai.Content, 0, len(req.Turns))
	for _, turn := range req.Turns {
		contents = append(contents, toContent(turn))
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if len(req.Tools) > 0 {
		config.Tools = []*genai.Tool{{
			FunctionDeclarations: toDeclarations(req.Tools),
		}}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini call failed: %w", err)
	}

	completion := &Completion{}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return completion, nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			completion.Text += part.Text
		}
		if part.FunctionCall != nil {
			completion.Calls = append(completion.Calls, ToolCall{
				Name: part.FunctionCall.Name,
				Args: part.FunctionCall.Args,
			})
		}
	}
	return completion, nil
}

func toContent(turn Turn) *genai.Content {
	content := &genai.Content{Role: turn.Role}
	if turn.Text != "" {
		content.Parts = append(content.Parts, &genai.Part{Text: turn.Text})
	}
	for _, call := range turn.Calls {
		content.Parts = append(content.Parts, &genai.Part{
			FunctionCall: &genai.FunctionCall{Name: call.Name, Args: call.Args},
		})
	}
	for _, result := range turn.Results {
		content.Parts = append(content.Parts, &genai.Part{
			FunctionResponse: &genai.FunctionResponse{
				Name:     result.Name,
				Response: result.Response,
			},
		})
	}
	return content
}

func toDeclarations(tools []ToolDefinition) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, tool := range tools {
		props := make(map[string]*genai.Schema, len(tool.Properties))
		for name, prop := range tool.Properties {
			props[name] = &genai.Schema{
				Type:        toSchemaType(prop.Type),
				Description: prop.Description,
				Enum:        prop.Enum,
			}
		}
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: props,
				Required:   tool.Required,
			},
		})
	}
	return decls
}

func toSchemaType(t string) genai.Type {
	switch t {
	case "string":
		return genai.TypeString
	case "integer":
		return genai.TypeInteger
	case "number":
		return genai.TypeNumber
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}
