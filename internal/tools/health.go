package tools

import (
	"context"
	"fmt"

	capi "github.com/hashicorp/consul/api"

	"consul-mcp/internal/api"
	"consul-mcp/internal/consul"
	"consul-mcp/internal/formatting"
)

func healthTools() []definition {
	return []definition{
		{
			meta: api.ToolMetadata{
				Name:        "register-health-check",
				Description: "Register a health check with Consul",
				Args: []api.ArgMetadata{
					stringArg("name", "Name of the health check", true),
					stringArg("id", "ID of the health check (defaults to name if not provided)", false),
					stringArg("serviceId", "ID of the service to associate the check with", false),
					stringArg("notes", "Notes about the health check", false),
					stringArg("ttl", "Time to live for the check (e.g., '10s', '1m')", false),
					stringArg("http", "HTTP endpoint to check", false),
					stringArg("interval", "Interval for the check (e.g., '10s', '1m')", false),
					stringArg("timeout", "Timeout for the check (e.g., '5s', '30s')", false),
				},
				Destructive: true,
			},
			handler: endpoint[struct{}]{
				op:    "registering health check",
				idArg: "name",
				call: done(func(ctx context.Context, b consul.Backend, a arguments) error {
					return b.RegisterCheck(ctx, checkRegistration(a))
				}),
				render: func(_ struct{}, a arguments) string {
					return fmt.Sprintf("Successfully registered health check: %s with ID: %s", a.str("name"), a.strOr("id", a.str("name")))
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "deregister-health-check",
				Description: "Deregister a health check from Consul",
				Args: []api.ArgMetadata{
					stringArg("id", "ID of the health check to deregister", true),
				},
				Destructive: true,
			},
			handler: endpoint[struct{}]{
				op:    "deregistering health check with ID",
				idArg: "id",
				call: done(func(ctx context.Context, b consul.Backend, a arguments) error {
					return b.DeregisterCheck(ctx, a.str("id"))
				}),
				render: func(_ struct{}, a arguments) string {
					return "Successfully deregistered health check with ID: " + a.str("id")
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "get-health-checks",
				Description: "Get health checks for a service",
				Args: []api.ArgMetadata{
					stringArg("service", "Name of the service to get health checks for", true),
				},
			},
			handler: endpoint[[]*capi.HealthCheck]{
				op:    "getting health checks for service",
				idArg: "service",
				call: func(ctx context.Context, b consul.Backend, a arguments) ([]*capi.HealthCheck, error) {
					entries, err := b.HealthService(ctx, a.str("service"), "", false)
					if err != nil {
						return nil, err
					}
					var checks []*capi.HealthCheck
					for _, entry := range entries {
						checks = append(checks, entry.Checks...)
					}
					return checks, nil
				},
				empty: emptySlice[*capi.HealthCheck],
				none: func(a arguments) string {
					return "No health checks found for service: " + a.str("service")
				},
				render: func(res []*capi.HealthCheck, a arguments) string {
					return formatting.Titled("Health checks for service "+a.str("service"), formatting.Blocks(res, formatting.HealthCheck))
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "get-health-service",
				Description: "Get health information for the instances of a service",
				Args: []api.ArgMetadata{
					stringArg("name", "Name of the service", true),
					stringArg("tag", "Filter instances by tag", false),
					booleanArg("passing", "Restrict to instances with passing checks", false),
				},
			},
			handler: endpoint[[]*capi.ServiceEntry]{
				op:    "getting system health service",
				idArg: "name",
				call: func(ctx context.Context, b consul.Backend, a arguments) ([]*capi.ServiceEntry, error) {
					return b.HealthService(ctx, a.str("name"), a.str("tag"), a.boolean("passing"))
				},
				empty: emptySlice[*capi.ServiceEntry],
				none: func(a arguments) string {
					return "No healthy instances found for service: " + a.str("name")
				},
				render: func(res []*capi.ServiceEntry, a arguments) string {
					return fmt.Sprintf("System Health service %s:\n\n%s", a.str("name"), formatting.PrettyJSON(res))
				},
			}.handle,
		},
	}
}

// checkRegistration builds a check definition from tool arguments. The
// interval is only meaningful for HTTP checks and is dropped otherwise.
func checkRegistration(a arguments) *capi.AgentCheckRegistration {
	reg := &capi.AgentCheckRegistration{
		ID:        a.strOr("id", a.str("name")),
		Name:      a.str("name"),
		ServiceID: a.str("serviceId"),
		Notes:     a.str("notes"),
	}
	reg.TTL = a.str("ttl")
	reg.Timeout = a.str("timeout")
	if a.has("http") {
		reg.HTTP = a.str("http")
		reg.Interval = a.str("interval")
	}
	return reg
}
