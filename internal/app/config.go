package app

import (
	"io"

	"consul-mcp/internal/config"
)

// Config holds the settings that come from the command line. Zero values
// leave the corresponding config file or environment setting in place.
type Config struct {
	// Debug forces debug level logging.
	Debug bool

	// ConfigPath is the directory holding config.yaml. Empty selects
	// ~/.config/consul-mcp.
	ConfigPath string

	// Server overrides.
	Transport string
	Host      string
	Port      int
	ReadOnly  bool

	// ToolPatterns are added to the enabled tool patterns from the config
	// file.
	ToolPatterns []string

	// Version is reported to MCP clients.
	Version string

	// LogOutput receives log output. Defaults to os.Stderr.
	LogOutput io.Writer

	// ConsulMCPConfig is filled in during bootstrap.
	ConsulMCPConfig *config.ConsulMCPConfig
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
	}
}

// applyOverrides copies command line settings onto the loaded configuration.
func (c *Config) applyOverrides(cfg *config.ConsulMCPConfig) {
	if c.Transport != "" {
		cfg.Server.Transport = c.Transport
	}
	if c.Host != "" {
		cfg.Server.Host = c.Host
	}
	if c.Port != 0 {
		cfg.Server.Port = c.Port
	}
	if c.ReadOnly {
		cfg.Server.ReadOnly = true
	}
	if len(c.ToolPatterns) > 0 {
		cfg.Server.EnabledTools = append(cfg.Server.EnabledTools, c.ToolPatterns...)
	}
	if c.Debug {
		cfg.Logging.Level = "debug"
	}
}
