package tools

import (
	"context"
	"fmt"

	capi "github.com/hashicorp/consul/api"

	"consul-mcp/internal/api"
	"consul-mcp/internal/consul"
)

func eventTools() []definition {
	return []definition{
		{
			meta: api.ToolMetadata{
				Name:        "fire-event",
				Description: "Fire a new event",
				Args: []api.ArgMetadata{
					stringArg("name", "Name of the event", true),
					stringArg("payload", "Event payload", false),
					stringArg("node", "Regular expression restricting delivery to matching node names", false),
					stringArg("service", "Regular expression restricting delivery to nodes running matching services", false),
					stringArg("tag", "Regular expression restricting delivery to services with matching tags", false),
				},
				Destructive: true,
			},
			handler: endpoint[string]{
				op:    "firing event",
				idArg: "name",
				call: func(ctx context.Context, b consul.Backend, a arguments) (string, error) {
					event := &capi.UserEvent{
						Name:          a.str("name"),
						NodeFilter:    a.str("node"),
						ServiceFilter: a.str("service"),
						TagFilter:     a.str("tag"),
					}
					if a.has("payload") {
						event.Payload = []byte(a.str("payload"))
					}
					return b.FireEvent(ctx, event)
				},
				render: func(id string, _ arguments) string {
					return "Fired event: " + id
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "list-events",
				Description: "List recent events known to the agent",
				Args: []api.ArgMetadata{
					stringArg("name", "Filter events by name", false),
				},
			},
			handler: endpoint[[]*capi.UserEvent]{
				op: "listing events",
				call: func(ctx context.Context, b consul.Backend, a arguments) ([]*capi.UserEvent, error) {
					return b.Events(ctx, a.str("name"))
				},
				empty: emptySlice[*capi.UserEvent],
				none:  noneText("No events found"),
				render: func(res []*capi.UserEvent, _ arguments) string {
					return titled("Events", mapLines(res, func(e *capi.UserEvent) string {
						payload := string(e.Payload)
						if payload == "" {
							payload = "None"
						}
						return fmt.Sprintf("ID: %s, Name: %s, Payload: %s", e.ID, e.Name, payload)
					}))
				},
			}.handle,
		},
	}
}
