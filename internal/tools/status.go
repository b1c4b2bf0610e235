package tools

import (
	"context"

	"consul-mcp/internal/api"
	"consul-mcp/internal/consul"
)

func statusTools() []definition {
	return []definition{
		{
			meta: api.ToolMetadata{
				Name:        "get-leader",
				Description: "Get the current Raft leader",
			},
			handler: endpoint[string]{
				op: "getting leader",
				call: func(ctx context.Context, b consul.Backend, _ arguments) (string, error) {
					return b.Leader(ctx)
				},
				render: func(leader string, _ arguments) string {
					return "Current leader: " + leader
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "get-peers",
				Description: "Get the current Raft peers",
			},
			handler: endpoint[[]string]{
				op: "getting peers",
				call: func(ctx context.Context, b consul.Backend, _ arguments) ([]string, error) {
					return b.Peers(ctx)
				},
				empty: emptySlice[string],
				none:  noneText("No peers found"),
				render: func(peers []string, _ arguments) string {
					return titled("Current peers", peers)
				},
			}.handle,
		},
	}
}
