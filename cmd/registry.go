package cmd

import (
	"fmt"
	"io"

	"consul-mcp/internal/app"
	"consul-mcp/internal/tools"
)

// loadRegistry bootstraps the application the same way serve does and
// returns its tool registry. No transport is started and no request is sent
// to Consul until a tool runs.
func loadRegistry(configPath string, debug, readOnly bool, patterns []string, logOutput io.Writer) (*tools.Registry, error) {
	cfg := app.NewConfig(debug, configPath)
	cfg.ReadOnly = readOnly
	cfg.ToolPatterns = patterns
	cfg.Version = rootCmd.Version
	cfg.LogOutput = logOutput

	application, err := app.NewApplication(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Services().Registry, nil
}
