// Package llm wraps the vendor LLM SDK behind a small function-calling
// interface so agent loops stay testable with a stub client.
package llm

import "context"

// Role values for conversation turns.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ToolCall is one function call requested by the model.
type ToolCall struct {
	Name string
	Args map[string]any
}

// ToolResult is the outcome of one executed tool call, returned to the model.
type ToolResult struct {
	Name     string
	Response map[string]any
}

// Turn is one conversation entry. A user turn carries Text or Results; a
// model turn carries Text and/or Calls.
type Turn struct {
	Role    string
	Text    string
	Calls   []ToolCall
	Results []ToolResult
}

// Property describes one parameter of a tool.
type Property struct {
	Type        string
	Description string
	Enum        []string
}

// ToolDefinition is a function declaration advertised to the model.
type ToolDefinition struct {
	Name        string
	Description string
	Properties  map[string]Property
	Required    []string
}

// Request is a single completion request.
type Request struct {
	System      string
	Turns       []Turn
	Tools       []ToolDefinition
	Temperature float32
}

// Completion is the model's reply: free text, zero or more tool calls.
type Completion struct {
	Text  string
	Calls []ToolCall
}

// Client is the vendor-neutral completion interface.
type Client interface {
	Complete(ctx context.Context, req *Request) (*Completion, error)
}
