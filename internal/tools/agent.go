package tools

import (
	"context"
	"fmt"

	capi "github.com/hashicorp/consul/api"

	"consul-mcp/internal/api"
	"consul-mcp/internal/consul"
	"consul-mcp/internal/formatting"
)

type agentSelf = map[string]map[string]interface{}

func agentTools() []definition {
	return []definition{
		{
			meta: api.ToolMetadata{
				Name:        "get-agent-members",
				Description: "Get the members of the gossip pool as seen by the agent",
				Args: []api.ArgMetadata{
					booleanArg("wan", "List WAN members instead of LAN members", false),
				},
			},
			handler: endpoint[[]*capi.AgentMember]{
				op: "getting agent members",
				call: func(ctx context.Context, b consul.Backend, a arguments) ([]*capi.AgentMember, error) {
					return b.AgentMembers(ctx, a.boolean("wan"))
				},
				empty: emptySlice[*capi.AgentMember],
				none:  noneText("No agent members found"),
				render: func(res []*capi.AgentMember, _ arguments) string {
					return titled("Agent Members", mapLines(res, func(m *capi.AgentMember) string {
						return fmt.Sprintf("Name: %s, Address: %s, Status: %s", m.Name, m.Addr, memberStatus(m.Status))
					}))
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "reload-agent",
				Description: "Reload agent configuration",
				Destructive: true,
			},
			handler: endpoint[struct{}]{
				op: "reloading agent configuration",
				call: done(func(ctx context.Context, b consul.Backend, _ arguments) error {
					return b.ReloadAgent(ctx)
				}),
				render: fixed[struct{}]("Agent configuration reloaded successfully"),
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "get-agent-config",
				Description: "Get agent configuration",
			},
			handler: endpoint[agentSelf]{
				op: "getting agent configuration",
				call: func(ctx context.Context, b consul.Backend, _ arguments) (agentSelf, error) {
					return b.AgentSelf(ctx)
				},
				render: func(self agentSelf, _ arguments) string {
					config := map[string]interface{}{
						"Config":      self["Config"],
						"DebugConfig": self["DebugConfig"],
					}
					return "Agent Configuration:\n\n" + formatting.PrettyJSON(config)
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "get-agent-self",
				Description: "Get agent self information",
			},
			handler: endpoint[agentSelf]{
				op: "getting agent self",
				call: func(ctx context.Context, b consul.Backend, _ arguments) (agentSelf, error) {
					return b.AgentSelf(ctx)
				},
				render: func(self agentSelf, _ arguments) string {
					return "Agent Self:\n\n" + formatting.PrettyJSON(self)
				},
			}.handle,
		},
	}
}

// memberStatus names a serf member status code.
func memberStatus(status int) string {
	switch status {
	case 0:
		return "none"
	case 1:
		return "alive"
	case 2:
		return "leaving"
	case 3:
		return "left"
	case 4:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", status)
	}
}
