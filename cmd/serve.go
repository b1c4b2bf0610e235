package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"consul-mcp/internal/app"
)

var (
	serveTransport  string
	serveHost       string
	servePort       int
	serveReadOnly   bool
	serveTools      []string
	serveDebug      bool
	serveConfigPath string
)

// serveCmd starts the MCP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the consul-mcp MCP server",
	Long: `Starts the MCP server and serves Consul tools until interrupted.

Transports:
  stdio            JSON-RPC over stdin/stdout (default). Logs go to stderr.
  sse              Server-Sent Events on http://HOST:PORT/sse
  streamable-http  Streamable HTTP on http://HOST:PORT/mcp

Configuration:
  Settings are read from config.yaml in ~/.config/consul-mcp, or the
  directory given with --config-path. CONSUL_HOST, CONSUL_PORT,
  CONSUL_SCHEME, CONSUL_HTTP_TOKEN and CONSUL_DATACENTER override the file,
  and the flags below override both.

  --read-only hides every tool that changes Consul state. --tools limits the
  server to tools matching the given glob patterns, e.g. --tools 'get-*,list-*'.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(serveDebug, serveConfigPath)
	cfg.Transport = serveTransport
	cfg.Host = serveHost
	cfg.Port = servePort
	cfg.ReadOnly = serveReadOnly
	cfg.ToolPatterns = serveTools
	cfg.Version = rootCmd.Version
	cfg.LogOutput = cmd.ErrOrStderr()

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveTransport, "transport", "", "MCP transport: stdio, sse or streamable-http (default from config, else stdio)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Bind host for HTTP transports")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Bind port for HTTP transports")
	serveCmd.Flags().BoolVar(&serveReadOnly, "read-only", false, "Only register tools that do not modify Consul")
	serveCmd.Flags().StringSliceVar(&serveTools, "tools", nil, "Only register tools matching these glob patterns")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().StringVar(&serveConfigPath, "config-path", "", "Configuration directory (default ~/.config/consul-mcp)")
}
