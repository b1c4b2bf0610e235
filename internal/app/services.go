package app

import (
	"fmt"

	"consul-mcp/internal/config"
	"consul-mcp/internal/consul"
	"consul-mcp/internal/server"
	"consul-mcp/internal/tools"
	"consul-mcp/pkg/logging"
)

// Services holds the components wired together at startup.
type Services struct {
	// Consul is the backend handle shared by every tool.
	Consul *consul.Client

	// Registry is the immutable tool table bound to Consul.
	Registry *tools.Registry

	// Server exposes Registry over the configured MCP transport.
	Server *server.Server
}

// InitializeServices builds the Consul client, the tool registry and the MCP
// server, in that order.
func InitializeServices(cfg *config.ConsulMCPConfig, version string) (*Services, error) {
	client, err := consul.NewClient(cfg.Consul)
	if err != nil {
		return nil, fmt.Errorf("failed to create Consul client: %w", err)
	}
	logging.Info("Bootstrap", "Using Consul agent at %s", client.Address())

	registry, err := tools.NewRegistry(client,
		tools.WithReadOnly(cfg.Server.ReadOnly),
		tools.WithToolFilter(cfg.Server.EnabledTools, cfg.Server.DisabledTools),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build tool registry: %w", err)
	}
	if registry.ReadOnly() {
		logging.Info("Bootstrap", "Read-only mode: %d tools registered, mutating tools hidden", len(registry.GetTools()))
	} else {
		logging.Info("Bootstrap", "Registered %d tools", len(registry.GetTools()))
	}

	srv, err := server.New(server.Config{
		Transport: cfg.Server.Transport,
		Host:      cfg.Server.Host,
		Port:      cfg.Server.Port,
		Name:      "consul-mcp",
		Version:   version,
	}, registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP server: %w", err)
	}

	return &Services{
		Consul:   client,
		Registry: registry,
		Server:   srv,
	}, nil
}
