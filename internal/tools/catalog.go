package tools

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	capi "github.com/hashicorp/consul/api"

	"consul-mcp/internal/api"
	"consul-mcp/internal/consul"
	"consul-mcp/internal/formatting"
)

func catalogTools() []definition {
	return []definition{
		{
			meta: api.ToolMetadata{
				Name:        "list-catalog-services",
				Description: "List all services in the catalog",
			},
			handler: endpoint[map[string][]string]{
				op: "listing catalog services",
				call: func(ctx context.Context, b consul.Backend, _ arguments) (map[string][]string, error) {
					return b.CatalogServices(ctx)
				},
				empty: emptyMap[string, []string],
				none:  noneText("No services found in the catalog"),
				render: func(res map[string][]string, _ arguments) string {
					names := slices.Sorted(maps.Keys(res))
					return titled("Catalog services", mapLines(names, func(name string) string {
						tags := strings.Join(res[name], ", ")
						if tags == "" {
							tags = "No tags"
						}
						return fmt.Sprintf("%s: %s", name, tags)
					}))
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "get-catalog-service",
				Description: "Get information about a specific service from the catalog",
				Args: []api.ArgMetadata{
					stringArg("service", "Name of the service to get information for", true),
				},
			},
			handler: endpoint[[]*capi.CatalogService]{
				op:    "getting information for service",
				idArg: "service",
				call: func(ctx context.Context, b consul.Backend, a arguments) ([]*capi.CatalogService, error) {
					return b.CatalogService(ctx, a.str("service"))
				},
				empty: emptySlice[*capi.CatalogService],
				none: func(a arguments) string {
					return "No information found for service: " + a.str("service")
				},
				render: func(res []*capi.CatalogService, a arguments) string {
					return formatting.Titled("Service information for "+a.str("service"), formatting.Blocks(res, formatting.CatalogNode))
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "get-catalog-nodes",
				Description: "List all nodes in the catalog",
			},
			handler: endpoint[[]*capi.Node]{
				op: "getting catalog nodes",
				call: func(ctx context.Context, b consul.Backend, _ arguments) ([]*capi.Node, error) {
					return b.CatalogNodes(ctx)
				},
				empty: emptySlice[*capi.Node],
				none:  noneText("No nodes found in the catalog"),
				render: func(res []*capi.Node, _ arguments) string {
					return formatting.Titled("Catalog nodes", formatting.Blocks(res, formatting.Node))
				},
			}.handle,
		},
	}
}
