package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"consul-mcp/internal/api"
	"consul-mcp/internal/tools"
	"consul-mcp/pkg/logging"
)

// createServerTools turns the provider's tool list into mcp-go server tools.
func createServerTools(provider api.ToolProvider) []mcpserver.ServerTool {
	metas := provider.GetTools()
	serverTools := make([]mcpserver.ServerTool, 0, len(metas))

	for _, meta := range metas {
		serverTools = append(serverTools, mcpserver.ServerTool{
			Tool: mcp.Tool{
				Name:        meta.Name,
				Description: meta.Description,
				InputSchema: convertToMCPSchema(meta.Args),
				Annotations: toolAnnotations(meta),
			},
			Handler: createToolHandler(provider, meta.Name),
		})
	}

	return serverTools
}

// convertToMCPSchema reuses the schema the tool registry validates against, so
// clients are shown exactly what will be accepted.
func convertToMCPSchema(args []api.ArgMetadata) mcp.ToolInputSchema {
	schema := tools.ArgsSchema(args)

	properties, _ := schema["properties"].(map[string]interface{})
	required, _ := schema["required"].([]string)

	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

func toolAnnotations(meta api.ToolMetadata) mcp.ToolAnnotation {
	return mcp.ToolAnnotation{
		Title:           meta.Name,
		ReadOnlyHint:    boolPtr(!meta.Destructive),
		DestructiveHint: boolPtr(meta.Destructive),
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func createToolHandler(provider api.ToolProvider, toolName string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := make(map[string]interface{})
		if req.Params.Arguments != nil {
			if argsMap, ok := req.Params.Arguments.(map[string]interface{}); ok {
				args = argsMap
			}
		}

		result, err := provider.ExecuteTool(ctx, toolName, args)
		if err != nil {
			logging.Error("Server", err, "Tool execution failed for %s", toolName)
			return mcp.NewToolResultError(fmt.Sprintf("Tool execution failed: %v", err)), nil
		}

		return convertToMCPResult(result), nil
	}
}

func convertToMCPResult(result *api.CallToolResult) *mcp.CallToolResult {
	if result == nil {
		return mcp.NewToolResultError("Tool returned no result")
	}

	content := make([]mcp.Content, len(result.Content))
	for i, c := range result.Content {
		if text, ok := c.(string); ok {
			content[i] = mcp.NewTextContent(text)
			continue
		}
		data, err := json.Marshal(c)
		if err != nil {
			content[i] = mcp.NewTextContent(fmt.Sprintf("%v", c))
			continue
		}
		content[i] = mcp.NewTextContent(string(data))
	}

	return &mcp.CallToolResult{
		Content: content,
		IsError: result.IsError,
	}
}
