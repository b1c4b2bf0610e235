package tools

import (
	"context"
	"fmt"

	capi "github.com/hashicorp/consul/api"

	"consul-mcp/internal/api"
	"consul-mcp/internal/consul"
	"consul-mcp/internal/formatting"
)

func coordinateTools() []definition {
	return []definition{
		{
			meta: api.ToolMetadata{
				Name:        "get-node-coordinates",
				Description: "Get network coordinates for a specific node",
				Args: []api.ArgMetadata{
					stringArg("node", "Name of the node", true),
				},
			},
			handler: endpoint[[]*capi.CoordinateEntry]{
				op:    "getting coordinates for node",
				idArg: "node",
				call: func(ctx context.Context, b consul.Backend, a arguments) ([]*capi.CoordinateEntry, error) {
					return b.NodeCoordinates(ctx, a.str("node"))
				},
				empty: emptySlice[*capi.CoordinateEntry],
				none: func(a arguments) string {
					return "No coordinates found for node: " + a.str("node")
				},
				render: func(res []*capi.CoordinateEntry, a arguments) string {
					return titled("Coordinates for "+a.str("node"), mapLines(res, func(c *capi.CoordinateEntry) string {
						return fmt.Sprintf("Node: %s, Segment: %s, Coord: %s", c.Node, c.Segment, formatting.CompactJSON(c.Coord))
					}))
				},
			}.handle,
		},
	}
}
