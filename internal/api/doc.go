// Package api holds the small set of types shared between the tool registry
// and the transport layers (MCP server and the "call" CLI command).
//
// A ToolProvider publishes ToolMetadata (name, description, argument
// metadata) and executes tools by name, returning a CallToolResult. Keeping
// these types here lets internal/server and cmd depend on the contract
// rather than on internal/tools directly, which makes both easy to test with
// a stub provider.
package api
