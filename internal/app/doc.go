// Package app wires consul-mcp together and runs it.
//
// NewApplication performs the bootstrap sequence:
//
//  1. Logging to stderr, at debug level when requested
//  2. Configuration from config.yaml and CONSUL_* variables, with command
//     line overrides applied on top and the result validated
//  3. The Consul client, built once and shared by every tool
//  4. The tool registry, filtered in read-only mode
//  5. The MCP server for the selected transport
//
// Run starts the transport and blocks. An errgroup watches both the
// transport and the context: a signal or cancellation stops the transport,
// and a transport that ends by itself (stdin closed) ends Run.
package app
