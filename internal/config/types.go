package config

// ConsulMCPConfig is the top-level configuration structure for consul-mcp.
type ConsulMCPConfig struct {
	Consul  ConsulConfig  `yaml:"consul"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

const (
	// MCPTransportStreamableHTTP is the streamable HTTP transport.
	MCPTransportStreamableHTTP = "streamable-http"
	// MCPTransportSSE is the Server-Sent Events transport.
	MCPTransportSSE = "sse"
	// MCPTransportStdio is the standard I/O transport.
	MCPTransportStdio = "stdio"
)

// ConsulConfig describes how to reach the Consul agent.
type ConsulConfig struct {
	Host       string `yaml:"host,omitempty"`       // Agent host (default: localhost)
	Port       int    `yaml:"port,omitempty"`       // Agent HTTP port (default: 8500)
	Scheme     string `yaml:"scheme,omitempty"`     // http or https (default: http)
	Token      string `yaml:"token,omitempty"`      // ACL token sent with every request
	Datacenter string `yaml:"datacenter,omitempty"` // Datacenter override, empty means the agent's own
}

// ServerConfig configures the MCP front-end.
type ServerConfig struct {
	Transport string `yaml:"transport,omitempty"` // stdio, sse or streamable-http (default: stdio)
	Host      string `yaml:"host,omitempty"`      // Bind host for HTTP transports (default: localhost)
	Port      int    `yaml:"port,omitempty"`      // Bind port for HTTP transports (default: 8090)
	ReadOnly  bool   `yaml:"readOnly,omitempty"`  // Hide tools that modify Consul state

	// Glob patterns on tool names. An empty EnabledTools list enables every
	// tool; DisabledTools is applied afterwards.
	EnabledTools  []string `yaml:"enabledTools,omitempty"`
	DisabledTools []string `yaml:"disabledTools,omitempty"`
}

// LoggingConfig configures log output. Logs always go to stderr.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn or error (default: info)
	Format string `yaml:"format,omitempty"` // text or json (default: text)
}
