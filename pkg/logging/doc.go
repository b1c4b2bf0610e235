// Package logging provides subsystem-tagged structured logging for consul-mcp.
//
// The package is a thin layer over log/slog. Every entry carries a
// "subsystem" attribute (Bootstrap, Config, Server, Tools, Consul, ...) so
// that output can be filtered per component, and errors are attached as an
// "error" attribute rather than interpolated into the message.
//
// # Usage
//
//	logging.Init(logging.LevelInfo, os.Stderr, logging.FormatText)
//
//	logging.Info("Bootstrap", "Connecting to Consul at %s", addr)
//	logging.Debug("Tools", "Executing %s", name)
//	logging.Error("Tools", err, "Backend call failed for %s", name)
//
// # Output stream
//
// When the MCP server uses the stdio transport, stdout carries the protocol
// stream. Logs must therefore go to stderr; the application bootstrap wires
// this up and the fallback used before Init also writes to stderr.
//
// # Thread Safety
//
// All functions are safe for concurrent use. Init may be called again (for
// example from tests) to redirect output.
package logging
