package tools

import (
	"context"
	"fmt"

	capi "github.com/hashicorp/consul/api"

	"consul-mcp/internal/api"
	"consul-mcp/internal/consul"
	"consul-mcp/internal/formatting"
)

func intentionTools() []definition {
	return []definition{
		{
			meta: api.ToolMetadata{
				Name:        "create-intention",
				Description: "Create or update a service mesh intention",
				Args: []api.ArgMetadata{
					stringArg("source", "Source service name", true),
					stringArg("destination", "Destination service name", true),
					enumArg("action", "Whether traffic is allowed or denied", string(capi.IntentionActionAllow), string(capi.IntentionActionDeny)),
					stringArg("description", "Human readable description", false),
				},
				Destructive: true,
			},
			handler: endpoint[struct{}]{
				op:    "creating intention",
				idArg: "source",
				call: done(func(ctx context.Context, b consul.Backend, a arguments) error {
					return b.UpsertIntention(ctx, &capi.Intention{
						SourceName:      a.str("source"),
						DestinationName: a.str("destination"),
						Action:          capi.IntentionAction(a.str("action")),
						Description:     a.str("description"),
					})
				}),
				render: func(_ struct{}, a arguments) string {
					return fmt.Sprintf("Created intention: %s => %s (%s)", a.str("source"), a.str("destination"), a.str("action"))
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "list-intentions",
				Description: "List all service mesh intentions",
			},
			handler: endpoint[[]*capi.Intention]{
				op: "listing intentions",
				call: func(ctx context.Context, b consul.Backend, _ arguments) ([]*capi.Intention, error) {
					return b.Intentions(ctx)
				},
				empty: emptySlice[*capi.Intention],
				none:  noneText("No intentions found"),
				render: func(res []*capi.Intention, _ arguments) string {
					return titled("Intentions", mapLines(res, func(ixn *capi.Intention) string {
						action := string(ixn.Action)
						if action == "" {
							action = "Unknown"
						}
						description := ixn.Description
						if description == "" {
							description = "None"
						}
						return fmt.Sprintf("Source: %s, Destination: %s, Action: %s, Description: %s", ixn.SourceName, ixn.DestinationName, action, description)
					}))
				},
			}.handle,
		},
	}
}

func caTools() []definition {
	return []definition{
		{
			meta: api.ToolMetadata{
				Name:        "get-ca-configuration",
				Description: "Get the service mesh certificate authority configuration",
			},
			handler: endpoint[*capi.CAConfig]{
				op: "getting Connect CA configuration",
				call: func(ctx context.Context, b consul.Backend, _ arguments) (*capi.CAConfig, error) {
					return b.CAConfiguration(ctx)
				},
				render: func(conf *capi.CAConfig, _ arguments) string {
					return "Connect CA Configuration:\n\n" + formatting.PrettyJSON(conf)
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "set-ca-configuration",
				Description: "Update the service mesh certificate authority configuration",
				Args: []api.ArgMetadata{
					stringArg("provider", "CA provider (consul, vault or aws-pca)", true),
					{
						Name:        "config",
						Type:        "object",
						Description: "Provider specific configuration",
					},
				},
				Destructive: true,
			},
			handler: endpoint[struct{}]{
				op:    "setting Connect CA configuration",
				idArg: "provider",
				call: done(func(ctx context.Context, b consul.Backend, a arguments) error {
					return b.SetCAConfiguration(ctx, &capi.CAConfig{
						Provider: a.str("provider"),
						Config:   a.object("config"),
					})
				}),
				render: func(_ struct{}, a arguments) string {
					return "Connect CA configuration updated: provider " + a.str("provider")
				},
			}.handle,
		},
	}
}
