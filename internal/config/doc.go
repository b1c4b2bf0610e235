// Package config provides configuration loading for consul-mcp.
//
// Configuration is layered:
//
//  1. Built-in defaults (GetDefaultConfig)
//  2. config.yaml from the configuration directory
//  3. CONSUL_* environment variables
//
// The default configuration directory is ~/.config/consul-mcp; the
// --config-path flag selects another one. A missing config.yaml is not an
// error, so a bare environment with CONSUL_HOST/CONSUL_PORT (or nothing at
// all) is a valid setup.
//
// # File Format
//
//	consul:
//	  host: consul.service.internal
//	  port: 8500
//	  scheme: https
//	  token: "..."
//	  datacenter: dc1
//	server:
//	  transport: streamable-http
//	  host: 0.0.0.0
//	  port: 8090
//	  readOnly: true
//	  disabledTools:
//	    - "restore-snapshot"
//	    - "*-license"
//	logging:
//	  level: debug
//	  format: json
//
// # Environment Variables
//
//   - CONSUL_HOST: agent host (default "localhost")
//   - CONSUL_PORT: agent HTTP port (default 8500)
//   - CONSUL_SCHEME: http or https
//   - CONSUL_HTTP_TOKEN: ACL token
//   - CONSUL_DATACENTER: datacenter override
//
// Validation failures are reported as ValidationErrors, which collect every
// problem rather than stopping at the first.
package config
