package config

const (
	// DefaultConsulHost is used when neither the config file nor CONSUL_HOST set a host.
	DefaultConsulHost = "localhost"

	// DefaultConsulPort is the Consul agent's default HTTP port.
	DefaultConsulPort = 8500

	// DefaultConsulScheme is the scheme used to talk to the agent.
	DefaultConsulScheme = "http"

	// DefaultServerPort is the bind port for the HTTP based MCP transports.
	DefaultServerPort = 8090
)

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() ConsulMCPConfig {
	return ConsulMCPConfig{
		Consul: ConsulConfig{
			Host:   DefaultConsulHost,
			Port:   DefaultConsulPort,
			Scheme: DefaultConsulScheme,
		},
		Server: ServerConfig{
			Transport: MCPTransportStdio,
			Host:      "localhost",
			Port:      DefaultServerPort,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
