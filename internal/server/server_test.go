package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consul-mcp/internal/api"
	"consul-mcp/internal/config"
)

type fakeProvider struct {
	tools []api.ToolMetadata
	calls []string
	args  map[string]interface{}
}

func (p *fakeProvider) GetTools() []api.ToolMetadata {
	return p.tools
}

func (p *fakeProvider) ExecuteTool(ctx context.Context, toolName string, args map[string]interface{}) (*api.CallToolResult, error) {
	p.calls = append(p.calls, toolName)
	p.args = args

	switch toolName {
	case "get-kv":
		return &api.CallToolResult{Content: []interface{}{"Key: app/config\nValue: on"}}, nil
	case "get-leader":
		return &api.CallToolResult{Content: []interface{}{map[string]string{"leader": "10.0.0.1:8300"}}}, nil
	case "put-kv":
		return &api.CallToolResult{Content: []interface{}{"Error putting value for key: a\n\nboom"}, IsError: true}, nil
	default:
		return nil, fmt.Errorf("unknown tool: %s", toolName)
	}
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		tools: []api.ToolMetadata{
			{
				Name:        "get-kv",
				Description: "Get a value",
				Args: []api.ArgMetadata{
					{Name: "key", Type: "string", Required: true, Description: "Key to read"},
				},
			},
			{Name: "get-leader", Description: "Current leader"},
			{
				Name:        "put-kv",
				Description: "Put a value",
				Destructive: true,
				Args: []api.ArgMetadata{
					{Name: "key", Type: "string", Required: true},
					{Name: "flags", Type: "integer", Default: 0},
				},
			},
			{Name: "vanished", Description: "Listed but no longer executable"},
		},
	}
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type toolResult struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	IsError bool `json:"isError"`
}

func call(t *testing.T, s *Server, id int, method string, params interface{}) rpcResponse {
	t.Helper()

	req := map[string]interface{}{"jsonrpc": "2.0", "id": id, "method": method}
	if params != nil {
		req["params"] = params
	}
	raw, err := json.Marshal(req)
	require.NoError(t, err)

	msg := s.MCPServer().HandleMessage(context.Background(), raw)
	require.NotNil(t, msg)

	out, err := json.Marshal(msg)
	require.NoError(t, err)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(out, &resp))
	return resp
}

func initialize(t *testing.T, s *Server) {
	t.Helper()
	resp := call(t, s, 0, "initialize", map[string]interface{}{
		"protocolVersion": "2025-03-26",
		"clientInfo":      map[string]string{"name": "test", "version": "1.0.0"},
		"capabilities":    map[string]interface{}{},
	})
	require.Nil(t, resp.Error)
}

func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) toolResult {
	t.Helper()
	resp := call(t, s, 2, "tools/call", map[string]interface{}{"name": name, "arguments": args})
	require.Nil(t, resp.Error)

	var result toolResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	return result
}

func newTestServer(t *testing.T) (*Server, *fakeProvider) {
	t.Helper()
	provider := newFakeProvider()
	s, err := New(Config{Transport: config.MCPTransportStdio}, provider)
	require.NoError(t, err)
	initialize(t, s)
	return s, provider
}

func TestNew_RequiresProvider(t *testing.T) {
	_, err := New(Config{}, nil)
	assert.Error(t, err)
}

func TestToolsList(t *testing.T) {
	s, _ := newTestServer(t)

	resp := call(t, s, 1, "tools/list", nil)
	require.Nil(t, resp.Error)

	var listed struct {
		Tools []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			InputSchema struct {
				Type       string                            `json:"type"`
				Properties map[string]map[string]interface{} `json:"properties"`
				Required   []string                          `json:"required"`
			} `json:"inputSchema"`
			Annotations struct {
				ReadOnlyHint    *bool `json:"readOnlyHint"`
				DestructiveHint *bool `json:"destructiveHint"`
			} `json:"annotations"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &listed))
	require.Len(t, listed.Tools, 4)

	byName := make(map[string]int)
	for i, tool := range listed.Tools {
		byName[tool.Name] = i
	}

	getKV := listed.Tools[byName["get-kv"]]
	assert.Equal(t, "Get a value", getKV.Description)
	assert.Equal(t, "object", getKV.InputSchema.Type)
	assert.Equal(t, []string{"key"}, getKV.InputSchema.Required)
	assert.Equal(t, "string", getKV.InputSchema.Properties["key"]["type"])
	assert.Equal(t, "Key to read", getKV.InputSchema.Properties["key"]["description"])
	require.NotNil(t, getKV.Annotations.ReadOnlyHint)
	assert.True(t, *getKV.Annotations.ReadOnlyHint)
	require.NotNil(t, getKV.Annotations.DestructiveHint)
	assert.False(t, *getKV.Annotations.DestructiveHint)

	putKV := listed.Tools[byName["put-kv"]]
	assert.EqualValues(t, 0, putKV.InputSchema.Properties["flags"]["default"])
	require.NotNil(t, putKV.Annotations.DestructiveHint)
	assert.True(t, *putKV.Annotations.DestructiveHint)
	assert.False(t, *putKV.Annotations.ReadOnlyHint)
}

func TestToolsCall_TextContent(t *testing.T) {
	s, provider := newTestServer(t)

	result := callTool(t, s, "get-kv", map[string]interface{}{"key": "app/config"})

	assert.False(t, result.IsError)
	require.Len(t, result.Content, 1)
	assert.Equal(t, "text", result.Content[0].Type)
	assert.Equal(t, "Key: app/config\nValue: on", result.Content[0].Text)
	assert.Equal(t, []string{"get-kv"}, provider.calls)
	assert.Equal(t, "app/config", provider.args["key"])
}

func TestToolsCall_NonStringContentIsJSON(t *testing.T) {
	s, _ := newTestServer(t)

	result := callTool(t, s, "get-leader", nil)

	require.Len(t, result.Content, 1)
	assert.JSONEq(t, `{"leader":"10.0.0.1:8300"}`, result.Content[0].Text)
}

func TestToolsCall_ErrorResultKeepsFlag(t *testing.T) {
	s, _ := newTestServer(t)

	result := callTool(t, s, "put-kv", map[string]interface{}{"key": "a"})

	assert.True(t, result.IsError)
	assert.Equal(t, "Error putting value for key: a\n\nboom", result.Content[0].Text)
}

func TestToolsCall_ProviderErrorBecomesErrorResult(t *testing.T) {
	s, _ := newTestServer(t)

	result := callTool(t, s, "vanished", nil)

	assert.True(t, result.IsError)
	assert.Equal(t, "Tool execution failed: unknown tool: vanished", result.Content[0].Text)
}

func TestToolsCall_UnregisteredTool(t *testing.T) {
	s, provider := newTestServer(t)

	resp := call(t, s, 3, "tools/call", map[string]interface{}{"name": "does-not-exist"})

	assert.NotNil(t, resp.Error)
	assert.Empty(t, provider.calls)
}

func TestConvertToMCPResult_Nil(t *testing.T) {
	result := convertToMCPResult(nil)
	assert.True(t, result.IsError)
}

func TestGetEndpoint(t *testing.T) {
	tests := []struct {
		transport string
		expected  string
	}{
		{config.MCPTransportSSE, "http://localhost:8090/sse"},
		{config.MCPTransportStreamableHTTP, "http://localhost:8090/mcp"},
		{config.MCPTransportStdio, "stdio"},
		{"carrier-pigeon", "http://localhost:8090/mcp"},
	}

	for _, tt := range tests {
		t.Run(tt.transport, func(t *testing.T) {
			s, err := New(Config{Transport: tt.transport, Host: "localhost", Port: 8090}, newFakeProvider())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s.GetEndpoint())
		})
	}
}

func TestStop_NotStarted(t *testing.T) {
	s, err := New(Config{Transport: config.MCPTransportStdio}, newFakeProvider())
	require.NoError(t, err)

	err = s.Stop(context.Background())
	assert.Error(t, err)
}

func TestFinish_DoesNotBlock(t *testing.T) {
	s, err := New(Config{}, newFakeProvider())
	require.NoError(t, err)

	s.finish(errors.New("first"))
	s.finish(errors.New("second"))

	err = <-s.Done()
	assert.EqualError(t, err, "first")
}
