package tools

import (
	"context"
	"fmt"

	capi "github.com/hashicorp/consul/api"

	"consul-mcp/internal/api"
	"consul-mcp/internal/consul"
)

const (
	tokenTypeClient     = "client"
	tokenTypeManagement = "management"

	// globalManagementPolicy is the built-in policy granting full access.
	globalManagementPolicy   = "global-management"
	globalManagementPolicyID = "00000000-0000-0000-0000-000000000001"
)

func aclTools() []definition {
	return []definition{
		{
			meta: api.ToolMetadata{
				Name:        "create-acl-token",
				Description: "Create a new ACL token",
				Args: []api.ArgMetadata{
					stringArg("name", "Name of the ACL token", true),
					enumArg("type", "Type of ACL token; management tokens get the global-management policy", tokenTypeClient, tokenTypeManagement),
					stringListArg("policies", "Names of policies to link to the token", false),
				},
				Destructive: true,
			},
			handler: endpoint[*capi.ACLToken]{
				op:    "creating ACL token",
				idArg: "name",
				call: func(ctx context.Context, b consul.Backend, a arguments) (*capi.ACLToken, error) {
					return b.CreateACLToken(ctx, newACLToken(a))
				},
				render: func(token *capi.ACLToken, _ arguments) string {
					if token == nil {
						return "Created ACL token: Unknown"
					}
					return "Created ACL token: " + token.AccessorID
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "list-acl-tokens",
				Description: "List all ACL tokens",
			},
			handler: endpoint[[]*capi.ACLTokenListEntry]{
				op: "listing ACL tokens",
				call: func(ctx context.Context, b consul.Backend, _ arguments) ([]*capi.ACLTokenListEntry, error) {
					return b.ACLTokens(ctx)
				},
				empty: emptySlice[*capi.ACLTokenListEntry],
				none:  noneText("No ACL tokens found"),
				render: func(res []*capi.ACLTokenListEntry, _ arguments) string {
					return titled("ACL Tokens", mapLines(res, func(t *capi.ACLTokenListEntry) string {
						return fmt.Sprintf("ID: %s, Name: %s, Type: %s", t.AccessorID, t.Description, tokenType(t.Policies))
					}))
				},
			}.handle,
		},
	}
}

// newACLToken builds a token whose description carries the requested name.
func newACLToken(a arguments) *capi.ACLToken {
	token := &capi.ACLToken{Description: a.str("name")}
	for _, name := range a.strings("policies") {
		token.Policies = append(token.Policies, &capi.ACLTokenPolicyLink{Name: name})
	}
	if a.str("type") == tokenTypeManagement && tokenType(token.Policies) != tokenTypeManagement {
		token.Policies = append(token.Policies, &capi.ACLTokenPolicyLink{Name: globalManagementPolicy})
	}
	return token
}

// tokenType classifies a token by whether it carries the global-management
// policy.
func tokenType(policies []*capi.ACLTokenPolicyLink) string {
	for _, p := range policies {
		if p.Name == globalManagementPolicy || p.ID == globalManagementPolicyID {
			return tokenTypeManagement
		}
	}
	return tokenTypeClient
}
