package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consul-mcp/internal/config"
)

func clearConsulEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvConsulHost,
		config.EnvConsulPort,
		config.EnvConsulScheme,
		config.EnvConsulToken,
		config.EnvConsulDatacenter,
	} {
		t.Setenv(key, "")
	}
}

func newTestConfig(t *testing.T) *Config {
	t.Helper()
	clearConsulEnv(t)
	cfg := NewConfig(false, t.TempDir())
	cfg.LogOutput = &bytes.Buffer{}
	return cfg
}

func TestNewApplication_Defaults(t *testing.T) {
	cfg := newTestConfig(t)

	application, err := NewApplication(cfg)
	require.NoError(t, err)

	services := application.Services()
	require.NotNil(t, services)
	assert.Equal(t, "http://localhost:8500", services.Consul.Address())
	assert.False(t, services.Registry.ReadOnly())
	assert.NotEmpty(t, services.Registry.GetTools())
	assert.Equal(t, "stdio", services.Server.GetEndpoint())
}

func TestNewApplication_ConfigFileAndEnvironment(t *testing.T) {
	cfg := newTestConfig(t)
	content := `consul:
  host: consul.internal
  port: 8501
  scheme: https
server:
  transport: sse
  host: 0.0.0.0
  port: 9000
`
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ConfigPath, "config.yaml"), []byte(content), 0o600))
	t.Setenv(config.EnvConsulHost, "consul.override")

	application, err := NewApplication(cfg)
	require.NoError(t, err)

	services := application.Services()
	assert.Equal(t, "https://consul.override:8501", services.Consul.Address())
	assert.Equal(t, "http://0.0.0.0:9000/sse", services.Server.GetEndpoint())
}

func TestNewApplication_FlagOverrides(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Transport = config.MCPTransportStreamableHTTP
	cfg.Host = "127.0.0.1"
	cfg.Port = 9100
	cfg.ReadOnly = true

	application, err := NewApplication(cfg)
	require.NoError(t, err)

	services := application.Services()
	assert.Equal(t, "http://127.0.0.1:9100/mcp", services.Server.GetEndpoint())
	assert.True(t, services.Registry.ReadOnly())
	for _, tool := range services.Registry.GetTools() {
		assert.False(t, tool.Destructive, "tool %s should be hidden in read-only mode", tool.Name)
	}
	assert.True(t, cfg.ConsulMCPConfig.Server.ReadOnly)
}

func TestNewApplication_ToolPatterns(t *testing.T) {
	cfg := newTestConfig(t)
	content := `server:
  disabledTools:
    - delete-kv
`
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ConfigPath, "config.yaml"), []byte(content), 0o600))
	cfg.ToolPatterns = []string{"*-kv"}

	application, err := NewApplication(cfg)
	require.NoError(t, err)

	var names []string
	for _, tool := range application.Services().Registry.GetTools() {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"get-kv", "list-kv", "put-kv"}, names)
}

func TestNewApplication_InvalidToolPattern(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.ToolPatterns = []string{"get-[kv"}

	_, err := NewApplication(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tool pattern")
}

func TestNewApplication_InvalidTransport(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Transport = "carrier-pigeon"

	_, err := NewApplication(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.transport")
}

func TestNewApplication_InvalidPortEnvironment(t *testing.T) {
	cfg := newTestConfig(t)
	t.Setenv(config.EnvConsulPort, "eighty")

	_, err := NewApplication(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvConsulPort)
}

func TestNewApplication_PreloadedConfig(t *testing.T) {
	cfg := newTestConfig(t)
	preloaded := config.GetDefaultConfig()
	preloaded.Consul.Host = "10.1.2.3"
	cfg.ConsulMCPConfig = &preloaded
	cfg.Debug = true

	application, err := NewApplication(cfg)
	require.NoError(t, err)

	assert.Equal(t, "http://10.1.2.3:8500", application.Services().Consul.Address())
	assert.Equal(t, "debug", cfg.ConsulMCPConfig.Logging.Level)
}

func TestApplication_RunStopsOnCancel(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Transport = config.MCPTransportStreamableHTTP
	cfg.Host = "127.0.0.1"
	cfg.Port = 18931

	application, err := NewApplication(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
