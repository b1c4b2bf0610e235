package tools

import (
	"context"
	"fmt"

	capi "github.com/hashicorp/consul/api"

	"consul-mcp/internal/api"
	"consul-mcp/internal/consul"
)

// Namespaces and admin partitions require Consul Enterprise; community
// agents answer these endpoints with an error that surfaces as a failed call.
func tenancyTools() []definition {
	return []definition{
		{
			meta: api.ToolMetadata{
				Name:        "create-namespace",
				Description: "Create a namespace (Enterprise)",
				Args: []api.ArgMetadata{
					stringArg("name", "Name of the namespace", true),
					stringArg("description", "Description of the namespace", false),
				},
				Destructive: true,
			},
			handler: endpoint[*capi.Namespace]{
				op:    "creating namespace",
				idArg: "name",
				call: func(ctx context.Context, b consul.Backend, a arguments) (*capi.Namespace, error) {
					return b.CreateNamespace(ctx, &capi.Namespace{Name: a.str("name"), Description: a.str("description")})
				},
				render: func(ns *capi.Namespace, a arguments) string {
					if ns == nil {
						return "Created namespace: " + a.str("name")
					}
					return "Created namespace: " + createdName(ns.Name, a)
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "list-namespaces",
				Description: "List all namespaces (Enterprise)",
			},
			handler: endpoint[[]*capi.Namespace]{
				op: "listing namespaces",
				call: func(ctx context.Context, b consul.Backend, _ arguments) ([]*capi.Namespace, error) {
					return b.Namespaces(ctx)
				},
				empty: emptySlice[*capi.Namespace],
				none:  noneText("No namespaces found"),
				render: func(res []*capi.Namespace, _ arguments) string {
					return titled("Namespaces", mapLines(res, func(ns *capi.Namespace) string {
						return nameDescription(ns.Name, ns.Description)
					}))
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "create-partition",
				Description: "Create an admin partition (Enterprise)",
				Args: []api.ArgMetadata{
					stringArg("name", "Name of the partition", true),
					stringArg("description", "Description of the partition", false),
				},
				Destructive: true,
			},
			handler: endpoint[*capi.Partition]{
				op:    "creating partition",
				idArg: "name",
				call: func(ctx context.Context, b consul.Backend, a arguments) (*capi.Partition, error) {
					return b.CreatePartition(ctx, &capi.Partition{Name: a.str("name"), Description: a.str("description")})
				},
				render: func(p *capi.Partition, a arguments) string {
					if p == nil {
						return "Created partition: " + a.str("name")
					}
					return "Created partition: " + createdName(p.Name, a)
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "list-partitions",
				Description: "List all admin partitions (Enterprise)",
			},
			handler: endpoint[[]*capi.Partition]{
				op: "listing partitions",
				call: func(ctx context.Context, b consul.Backend, _ arguments) ([]*capi.Partition, error) {
					return b.Partitions(ctx)
				},
				empty: emptySlice[*capi.Partition],
				none:  noneText("No partitions found"),
				render: func(res []*capi.Partition, _ arguments) string {
					return titled("Partitions", mapLines(res, func(p *capi.Partition) string {
						return nameDescription(p.Name, p.Description)
					}))
				},
			}.handle,
		},
	}
}

func createdName(name string, a arguments) string {
	if name == "" {
		return a.str("name")
	}
	return name
}

func nameDescription(name, description string) string {
	if description == "" {
		description = "None"
	}
	return fmt.Sprintf("Name: %s, Description: %s", name, description)
}
