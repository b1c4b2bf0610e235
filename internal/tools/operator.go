package tools

import (
	"context"
	"fmt"
	"strings"

	capi "github.com/hashicorp/consul/api"

	"consul-mcp/internal/api"
	"consul-mcp/internal/consul"
	"consul-mcp/internal/formatting"
)

func operatorTools() []definition {
	return []definition{
		{
			meta: api.ToolMetadata{
				Name:        "get-raft-configuration",
				Description: "Get the Raft configuration",
			},
			handler: endpoint[*capi.RaftConfiguration]{
				op: "getting Raft configuration",
				call: func(ctx context.Context, b consul.Backend, _ arguments) (*capi.RaftConfiguration, error) {
					return b.RaftConfiguration(ctx)
				},
				empty: func(cfg *capi.RaftConfiguration) bool { return cfg == nil || len(cfg.Servers) == 0 },
				none:  noneText("No Raft configuration found"),
				render: func(cfg *capi.RaftConfiguration, _ arguments) string {
					return titled("Raft Configuration", mapLines(cfg.Servers, func(s *capi.RaftServer) string {
						return fmt.Sprintf("ID: %s, Address: %s, Leader: %t, Voter: %t", s.ID, s.Address, s.Leader, s.Voter)
					}))
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "get-autopilot-configuration",
				Description: "Get the Autopilot configuration",
			},
			handler: endpoint[*capi.AutopilotConfiguration]{
				op: "getting Autopilot configuration",
				call: func(ctx context.Context, b consul.Backend, _ arguments) (*capi.AutopilotConfiguration, error) {
					return b.AutopilotConfiguration(ctx)
				},
				render: func(cfg *capi.AutopilotConfiguration, _ arguments) string {
					return "Autopilot Configuration:\n\n" + formatting.PrettyJSON(cfg)
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "create-network-area",
				Description: "Create a network area linking this datacenter to a peer (Enterprise)",
				Args: []api.ArgMetadata{
					stringArg("peerDatacenter", "Name of the peer datacenter", true),
					stringListArg("retryJoin", "Server addresses to join, retried until successful", false),
					booleanArg("useTLS", "Use TLS for gossip within the area", false),
				},
				Destructive: true,
			},
			handler: endpoint[string]{
				op:    "creating network area",
				idArg: "peerDatacenter",
				call: func(ctx context.Context, b consul.Backend, a arguments) (string, error) {
					return b.CreateArea(ctx, &capi.Area{
						PeerDatacenter: a.str("peerDatacenter"),
						RetryJoin:      a.strings("retryJoin"),
						UseTLS:         a.boolean("useTLS"),
					})
				},
				render: func(id string, _ arguments) string {
					return "Created network area: " + id
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "join-network-area",
				Description: "Join servers of the peer datacenter into a network area (Enterprise)",
				Args: []api.ArgMetadata{
					stringArg("id", "ID of the network area", true),
					stringListArg("addresses", "Addresses of servers in the peer datacenter", true),
				},
				Destructive: true,
			},
			handler: endpoint[[]*capi.AreaJoinResponse]{
				op:    "joining network area",
				idArg: "id",
				call: func(ctx context.Context, b consul.Backend, a arguments) ([]*capi.AreaJoinResponse, error) {
					return b.JoinArea(ctx, a.str("id"), a.strings("addresses"))
				},
				render: func(res []*capi.AreaJoinResponse, a arguments) string {
					return titled("Joined network area "+a.str("id"), mapLines(res, func(r *capi.AreaJoinResponse) string {
						errText := r.Error
						if errText == "" {
							errText = "None"
						}
						return fmt.Sprintf("Address: %s, Joined: %t, Error: %s", r.Address, r.Joined, errText)
					}))
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "list-network-areas",
				Description: "List all network areas (Enterprise)",
			},
			handler: endpoint[[]*capi.Area]{
				op: "listing network areas",
				call: func(ctx context.Context, b consul.Backend, _ arguments) ([]*capi.Area, error) {
					return b.Areas(ctx)
				},
				empty: emptySlice[*capi.Area],
				none:  noneText("No network areas found"),
				render: func(res []*capi.Area, _ arguments) string {
					return titled("Network Areas", mapLines(res, func(area *capi.Area) string {
						return fmt.Sprintf("ID: %s, Peer Datacenter: %s, Retry Join: %s", area.ID, area.PeerDatacenter, strings.Join(area.RetryJoin, ", "))
					}))
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "get-license",
				Description: "Get the Consul Enterprise license",
			},
			handler: endpoint[*capi.LicenseReply]{
				op: "getting license",
				call: func(ctx context.Context, b consul.Backend, _ arguments) (*capi.LicenseReply, error) {
					return b.License(ctx)
				},
				render: func(reply *capi.LicenseReply, _ arguments) string {
					return "License:\n\n" + formatting.PrettyJSON(reply)
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "put-license",
				Description: "Install a new Consul Enterprise license",
				Args: []api.ArgMetadata{
					stringArg("license", "Signed license blob", true),
				},
				Destructive: true,
			},
			handler: endpoint[*capi.LicenseReply]{
				op: "updating license",
				call: func(ctx context.Context, b consul.Backend, a arguments) (*capi.LicenseReply, error) {
					return b.PutLicense(ctx, a.str("license"))
				},
				render: func(reply *capi.LicenseReply, _ arguments) string {
					id := "Unknown"
					if reply != nil && reply.License != nil && reply.License.LicenseID != "" {
						id = reply.License.LicenseID
					}
					var sb strings.Builder
					sb.WriteString("License updated: " + id)
					if reply != nil {
						for _, w := range reply.Warnings {
							sb.WriteString("\nWarning: " + w)
						}
					}
					return sb.String()
				},
			}.handle,
		},
	}
}
