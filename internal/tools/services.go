package tools

import (
	"context"
	"fmt"
	"maps"
	"slices"

	capi "github.com/hashicorp/consul/api"

	"consul-mcp/internal/api"
	"consul-mcp/internal/consul"
	"consul-mcp/internal/formatting"
)

func serviceTools() []definition {
	return []definition{
		{
			meta: api.ToolMetadata{
				Name:        "get-services",
				Description: "Get running services registered with the local agent",
			},
			handler: endpoint[map[string]*capi.AgentService]{
				op: "getting services",
				call: func(ctx context.Context, b consul.Backend, _ arguments) (map[string]*capi.AgentService, error) {
					return b.AgentServices(ctx)
				},
				empty: emptyMap[string, *capi.AgentService],
				none:  noneText("No services found"),
				render: func(res map[string]*capi.AgentService, _ arguments) string {
					services := make([]*capi.AgentService, 0, len(res))
					for _, id := range slices.Sorted(maps.Keys(res)) {
						services = append(services, res[id])
					}
					return formatting.Titled("List of services", formatting.Blocks(services, formatting.Service))
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "register-service",
				Description: "Register a service with Consul",
				Args: []api.ArgMetadata{
					stringArg("name", "Name of the service to register", true),
					stringArg("id", "ID of the service (defaults to name if not provided)", false),
					integerArg("port", "Port the service is running on", nil),
					stringArg("address", "Address the service is running on", false),
					stringListArg("tags", "Tags to associate with the service", false),
				},
				Destructive: true,
			},
			handler: endpoint[struct{}]{
				op:    "registering service",
				idArg: "name",
				call: done(func(ctx context.Context, b consul.Backend, a arguments) error {
					reg := &capi.AgentServiceRegistration{
						ID:      a.strOr("id", a.str("name")),
						Name:    a.str("name"),
						Address: a.str("address"),
						Tags:    a.strings("tags"),
					}
					if a.has("port") {
						reg.Port = a.integer("port")
					}
					return b.RegisterService(ctx, reg)
				}),
				render: func(_ struct{}, a arguments) string {
					return fmt.Sprintf("Successfully registered service: %s with ID: %s", a.str("name"), a.strOr("id", a.str("name")))
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "deregister-service",
				Description: "Deregister a service from Consul",
				Args: []api.ArgMetadata{
					stringArg("id", "ID of the service to deregister", true),
				},
				Destructive: true,
			},
			handler: endpoint[struct{}]{
				op:    "deregistering service with ID",
				idArg: "id",
				call: done(func(ctx context.Context, b consul.Backend, a arguments) error {
					return b.DeregisterService(ctx, a.str("id"))
				}),
				render: func(_ struct{}, a arguments) string {
					return "Successfully deregistered service with ID: " + a.str("id")
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "list-agent-checks",
				Description: "List the checks registered with the local agent",
			},
			handler: endpoint[map[string]*capi.AgentCheck]{
				op: "listing agent checks",
				call: func(ctx context.Context, b consul.Backend, _ arguments) (map[string]*capi.AgentCheck, error) {
					return b.AgentChecks(ctx)
				},
				empty: emptyMap[string, *capi.AgentCheck],
				none:  noneText("No agent checks found"),
				render: func(res map[string]*capi.AgentCheck, _ arguments) string {
					checks := make([]*capi.AgentCheck, 0, len(res))
					for _, id := range slices.Sorted(maps.Keys(res)) {
						checks = append(checks, res[id])
					}
					return formatting.Titled("Agent checks", formatting.Blocks(checks, formatting.AgentCheck))
				},
			}.handle,
		},
	}
}
