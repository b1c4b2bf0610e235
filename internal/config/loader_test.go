package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConsulEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvConsulHost, EnvConsulPort, EnvConsulScheme, EnvConsulToken, EnvConsulDatacenter} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	clearConsulEnv(t)
	dir := t.TempDir()

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), cfg)
	assert.Equal(t, "localhost", cfg.Consul.Host)
	assert.Equal(t, 8500, cfg.Consul.Port)
	assert.Equal(t, MCPTransportStdio, cfg.Server.Transport)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	clearConsulEnv(t)
	dir := t.TempDir()

	content := `consul:
  host: consul.internal
  port: 8501
  scheme: https
server:
  transport: streamable-http
  port: 9000
  readOnly: true
  disabledTools:
    - restore-snapshot
    - "*-license"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "consul.internal", cfg.Consul.Host)
	assert.Equal(t, 8501, cfg.Consul.Port)
	assert.Equal(t, "https", cfg.Consul.Scheme)
	assert.Equal(t, MCPTransportStreamableHTTP, cfg.Server.Transport)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.True(t, cfg.Server.ReadOnly)
	assert.Equal(t, []string{"restore-snapshot", "*-license"}, cfg.Server.DisabledTools)
	assert.Empty(t, cfg.Server.EnabledTools)
	// untouched values keep their defaults
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	clearConsulEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("consul:\n  host: from-file\n"), 0o600))

	t.Setenv(EnvConsulHost, "from-env")
	t.Setenv(EnvConsulPort, "18500")
	t.Setenv(EnvConsulToken, "secret")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Consul.Host)
	assert.Equal(t, 18500, cfg.Consul.Port)
	assert.Equal(t, "secret", cfg.Consul.Token)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	clearConsulEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("consul: [unclosed"), 0o600))

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading config")
}

func TestApplyEnvOverrides_InvalidPort(t *testing.T) {
	cfg := GetDefaultConfig()
	env := map[string]string{EnvConsulPort: "eighty"}

	err := ApplyEnvOverrides(&cfg, func(k string) string { return env[k] })
	require.Error(t, err)

	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, EnvConsulPort, verr.Field)
	assert.Equal(t, DefaultConsulPort, cfg.Consul.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConsulMCPConfig)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*ConsulMCPConfig) {},
		},
		{
			name:    "empty host",
			mutate:  func(c *ConsulMCPConfig) { c.Consul.Host = " " },
			wantErr: "consul.host",
		},
		{
			name:    "port out of range",
			mutate:  func(c *ConsulMCPConfig) { c.Consul.Port = 70000 },
			wantErr: "consul.port",
		},
		{
			name:    "unknown scheme",
			mutate:  func(c *ConsulMCPConfig) { c.Consul.Scheme = "ftp" },
			wantErr: "consul.scheme",
		},
		{
			name:    "unknown transport",
			mutate:  func(c *ConsulMCPConfig) { c.Server.Transport = "websocket" },
			wantErr: "server.transport",
		},
		{
			name: "server port ignored for stdio",
			mutate: func(c *ConsulMCPConfig) {
				c.Server.Transport = MCPTransportStdio
				c.Server.Port = 0
			},
		},
		{
			name: "server port checked for sse",
			mutate: func(c *ConsulMCPConfig) {
				c.Server.Transport = MCPTransportSSE
				c.Server.Port = 0
			},
			wantErr: "server.port",
		},
		{
			name:    "bad log level",
			mutate:  func(c *ConsulMCPConfig) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(&cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidationErrors_Multiple(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Consul.Host = ""
	cfg.Consul.Scheme = "gopher"

	err := Validate(cfg)
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
	assert.Contains(t, err.Error(), "validation failed")
}
