// Package server exposes a tool provider over the Model Context Protocol.
//
// Every tool the provider reports is registered with an mcp-go server along
// with its input schema and read-only/destructive annotations. Calls are
// forwarded to the provider unchanged and the provider's result is converted
// to MCP content: strings become text blocks, anything else is JSON encoded.
//
// # Transports
//
//   - stdio: JSON-RPC over stdin/stdout. The server finishes when stdin is
//     closed, which is reported on Done.
//   - sse: Server-Sent Events at /sse with messages posted to /message.
//   - streamable-http: the streamable HTTP transport at /mcp. This is also
//     used for unknown transport names.
package server
