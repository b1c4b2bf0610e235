package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"consul-mcp/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/consul-mcp"
	configFileName = "config.yaml"
)

// Environment variables that override values from the config file.
const (
	EnvConsulHost       = "CONSUL_HOST"
	EnvConsulPort       = "CONSUL_PORT"
	EnvConsulScheme     = "CONSUL_SCHEME"
	EnvConsulToken      = "CONSUL_HTTP_TOKEN"
	EnvConsulDatacenter = "CONSUL_DATACENTER"
)

// GetDefaultConfigPath returns ~/.config/consul-mcp, or an empty string if the
// home directory cannot be determined.
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		logging.Warn("ConfigLoader", "Could not determine user home directory: %v", err)
		return ""
	}

	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig loads configuration from config.yaml inside configPath, layered
// on top of the defaults, then applies environment overrides and validates
// the result. An empty configPath selects the default directory. A missing
// file is not an error.
func LoadConfig(configPath string) (ConsulMCPConfig, error) {
	if configPath == "" {
		configPath = GetDefaultConfigPath()
	}

	config := GetDefaultConfig()

	if configPath != "" {
		configFilePath := filepath.Join(configPath, configFileName)
		data, err := os.ReadFile(configFilePath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			logging.Debug("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
		case err != nil:
			return ConsulMCPConfig{}, fmt.Errorf("error reading config from %s: %w", configFilePath, err)
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return ConsulMCPConfig{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
			}
			logging.Info("ConfigLoader", "Loaded configuration from %s", configFilePath)
		}
	}

	if err := ApplyEnvOverrides(&config, os.Getenv); err != nil {
		return ConsulMCPConfig{}, err
	}

	if err := Validate(config); err != nil {
		return ConsulMCPConfig{}, err
	}

	return config, nil
}

// ApplyEnvOverrides copies CONSUL_* environment values onto cfg. getenv is
// normally os.Getenv; empty values leave the existing setting untouched.
func ApplyEnvOverrides(cfg *ConsulMCPConfig, getenv func(string) string) error {
	if host := getenv(EnvConsulHost); host != "" {
		cfg.Consul.Host = host
	}

	if portStr := getenv(EnvConsulPort); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return ValidationError{
				Field:   EnvConsulPort,
				Value:   portStr,
				Message: "must be an integer",
			}
		}
		cfg.Consul.Port = port
	}

	if scheme := getenv(EnvConsulScheme); scheme != "" {
		cfg.Consul.Scheme = scheme
	}

	if token := getenv(EnvConsulToken); token != "" {
		cfg.Consul.Token = token
	}

	if dc := getenv(EnvConsulDatacenter); dc != "" {
		cfg.Consul.Datacenter = dc
	}

	return nil
}
