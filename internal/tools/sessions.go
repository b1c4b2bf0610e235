package tools

import (
	"context"

	capi "github.com/hashicorp/consul/api"

	"consul-mcp/internal/api"
	"consul-mcp/internal/consul"
	"consul-mcp/internal/formatting"
)

func sessionTools() []definition {
	return []definition{
		{
			meta: api.ToolMetadata{
				Name:        "list-sessions",
				Description: "List all sessions in Consul",
			},
			handler: endpoint[[]*capi.SessionEntry]{
				op: "listing sessions",
				call: func(ctx context.Context, b consul.Backend, _ arguments) ([]*capi.SessionEntry, error) {
					return b.Sessions(ctx)
				},
				empty: emptySlice[*capi.SessionEntry],
				none:  noneText("No sessions found"),
				render: func(res []*capi.SessionEntry, _ arguments) string {
					return formatting.Titled("Sessions", formatting.Blocks(res, formatting.Session))
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "destroy-session",
				Description: "Destroy a session in Consul",
				Args: []api.ArgMetadata{
					stringArg("id", "ID of the session to destroy", true),
				},
				Destructive: true,
			},
			handler: endpoint[struct{}]{
				op:    "destroying session with ID",
				idArg: "id",
				call: done(func(ctx context.Context, b consul.Backend, a arguments) error {
					return b.DestroySession(ctx, a.str("id"))
				}),
				render: func(_ struct{}, a arguments) string {
					return "Successfully destroyed session with ID: " + a.str("id")
				},
			}.handle,
		},
	}
}
