package tools

import (
	"context"
	"fmt"

	capi "github.com/hashicorp/consul/api"

	"consul-mcp/internal/api"
	"consul-mcp/internal/consul"
	"consul-mcp/internal/formatting"
)

// defaultNearestN is the failover fan-out used when none is given.
const defaultNearestN = 3

func preparedQueryTools() []definition {
	return []definition{
		{
			meta: api.ToolMetadata{
				Name:        "create-prepared-query",
				Description: "Create a new prepared query",
				Args: []api.ArgMetadata{
					stringArg("name", "Name of the prepared query", true),
					stringArg("service", "Service to query", true),
					integerArg("nearestN", "Number of nearest remote datacenters to fail over to", defaultNearestN),
					stringListArg("datacenters", "Datacenters to fail over to, in order", false),
				},
				Destructive: true,
			},
			handler: endpoint[string]{
				op:    "creating prepared query",
				idArg: "name",
				call: func(ctx context.Context, b consul.Backend, a arguments) (string, error) {
					datacenters := a.strings("datacenters")
					if datacenters == nil {
						datacenters = []string{}
					}
					return b.CreatePreparedQuery(ctx, &capi.PreparedQueryDefinition{
						Name: a.str("name"),
						Service: capi.ServiceQuery{
							Service: a.str("service"),
							Failover: capi.QueryFailoverOptions{
								NearestN:    a.integer("nearestN"),
								Datacenters: datacenters,
							},
						},
					})
				},
				render: func(id string, _ arguments) string {
					return "Created prepared query: " + id
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "list-prepared-queries",
				Description: "List all prepared queries",
			},
			handler: endpoint[[]*capi.PreparedQueryDefinition]{
				op: "listing prepared queries",
				call: func(ctx context.Context, b consul.Backend, _ arguments) ([]*capi.PreparedQueryDefinition, error) {
					return b.PreparedQueries(ctx)
				},
				empty: emptySlice[*capi.PreparedQueryDefinition],
				none:  noneText("No prepared queries found"),
				render: func(res []*capi.PreparedQueryDefinition, _ arguments) string {
					return titled("Prepared Queries", mapLines(res, func(q *capi.PreparedQueryDefinition) string {
						return fmt.Sprintf("ID: %s, Name: %s, Service: %s", q.ID, q.Name, q.Service.Service)
					}))
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "execute-prepared-query",
				Description: "Execute a prepared query",
				Args: []api.ArgMetadata{
					stringArg("id", "ID or name of the prepared query", true),
				},
			},
			handler: endpoint[*capi.PreparedQueryExecuteResponse]{
				op:    "executing prepared query",
				idArg: "id",
				call: func(ctx context.Context, b consul.Backend, a arguments) (*capi.PreparedQueryExecuteResponse, error) {
					return b.ExecutePreparedQuery(ctx, a.str("id"))
				},
				render: func(res *capi.PreparedQueryExecuteResponse, _ arguments) string {
					return "Query results:\n\n" + formatting.PrettyJSON(res)
				},
			}.handle,
		},
	}
}
