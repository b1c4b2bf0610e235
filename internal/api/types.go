package api

import "context"

// CallToolResult represents the result of a tool call.
//
// Content holds one entry per content block; strings become MCP text
// content, anything else is JSON encoded by the server layer. IsError marks
// a result that describes a failure. It is still a normal response, not a
// protocol error.
type CallToolResult struct {
	Content []interface{} `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// ToolMetadata describes a tool that can be exposed
type ToolMetadata struct {
	Name        string // e.g., "get-kv", "register-service"
	Description string
	Args        []ArgMetadata

	// Destructive marks tools that change Consul state.
	Destructive bool
}

// ArgMetadata describes a single tool argument.
type ArgMetadata struct {
	Name        string
	Type        string // "string", "number", "integer", "boolean", "array", "object"
	Required    bool
	Description string
	Default     interface{}

	// Schema, when set, is used verbatim as the argument's JSON schema
	// (enums, array item types, nested objects). Description and Default
	// above still take precedence.
	Schema map[string]interface{}
}

// ToolProvider is implemented by anything that can list and execute tools.
type ToolProvider interface {
	// Returns all tools this provider offers
	GetTools() []ToolMetadata

	// Executes a tool by name
	ExecuteTool(ctx context.Context, toolName string, args map[string]interface{}) (*CallToolResult, error)
}
