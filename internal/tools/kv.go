package tools

import (
	"context"
	"fmt"

	capi "github.com/hashicorp/consul/api"

	"consul-mcp/internal/api"
	"consul-mcp/internal/consul"
	"consul-mcp/internal/formatting"
)

var txnOperationSchema = map[string]interface{}{
	"type":     "array",
	"minItems": 1,
	"items": map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"operation": map[string]interface{}{"type": "string", "enum": []string{"set", "delete", "get"}},
			"key":       map[string]interface{}{"type": "string"},
			"value":     map[string]interface{}{"type": "string"},
		},
		"required": []string{"operation", "key"},
	},
}

func kvTools() []definition {
	return []definition{
		{
			meta: api.ToolMetadata{
				Name:        "get-kv",
				Description: "Get a value from the KV store",
				Args: []api.ArgMetadata{
					stringArg("key", "Key to get from the KV store", true),
				},
			},
			handler: endpoint[*consul.KVPair]{
				op:    "getting value for key",
				idArg: "key",
				call: func(ctx context.Context, b consul.Backend, a arguments) (*consul.KVPair, error) {
					return b.KVGet(ctx, a.str("key"))
				},
				empty: func(p *consul.KVPair) bool { return p == nil },
				none: func(a arguments) string {
					return "No value found for key: " + a.str("key")
				},
				render: func(p *consul.KVPair, _ arguments) string {
					return formatting.KVPair(p)
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "list-kv",
				Description: "List keys in the KV store",
				Args: []api.ArgMetadata{
					stringArg("prefix", "Prefix to filter keys by", false),
				},
			},
			handler: endpoint[[]string]{
				op:    "listing keys",
				idArg: "prefix",
				call: func(ctx context.Context, b consul.Backend, a arguments) ([]string, error) {
					return b.KVKeys(ctx, a.str("prefix"))
				},
				empty: emptySlice[string],
				none: func(a arguments) string {
					return "No keys found" + prefixSuffix(a)
				},
				render: func(keys []string, a arguments) string {
					return titled("Keys in KV store"+prefixSuffix(a), keys)
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "put-kv",
				Description: "Put a value in the KV store",
				Args: []api.ArgMetadata{
					stringArg("key", "Key to put in the KV store", true),
					stringArg("value", "Value to put in the KV store", true),
					integerArg("flags", "Opaque unsigned integer stored with the key", nil),
				},
				Destructive: true,
			},
			handler: endpoint[struct{}]{
				op:    "putting value for key",
				idArg: "key",
				call: done(func(ctx context.Context, b consul.Backend, a arguments) error {
					return b.KVPut(ctx, a.str("key"), []byte(a.str("value")), uint64(a.integer("flags")))
				}),
				render: func(_ struct{}, a arguments) string {
					return "Successfully put value for key: " + a.str("key")
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "delete-kv",
				Description: "Delete a key from the KV store",
				Args: []api.ArgMetadata{
					stringArg("key", "Key to delete from the KV store", true),
				},
				Destructive: true,
			},
			handler: endpoint[struct{}]{
				op:    "deleting key",
				idArg: "key",
				call: done(func(ctx context.Context, b consul.Backend, a arguments) error {
					return b.KVDelete(ctx, a.str("key"))
				}),
				render: func(_ struct{}, a arguments) string {
					return "Successfully deleted key: " + a.str("key")
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "kv-transaction",
				Description: "Perform a KV transaction",
				Args: []api.ArgMetadata{
					{
						Name:        "operations",
						Type:        "array",
						Required:    true,
						Description: "List of operations to perform (operation: set, delete or get)",
						Schema:      txnOperationSchema,
					},
				},
				Destructive: true,
			},
			handler: endpoint[*consul.TxnOutcome]{
				op: "performing KV transaction",
				call: func(ctx context.Context, b consul.Backend, a arguments) (*consul.TxnOutcome, error) {
					return b.Txn(ctx, txnOps(a.objects("operations")))
				},
				render: func(res *consul.TxnOutcome, _ arguments) string {
					return fmt.Sprintf("Transaction Result:\n\n%s", formatting.PrettyJSON(res))
				},
			}.handle,
		},
	}
}

func prefixSuffix(a arguments) string {
	if p := a.str("prefix"); p != "" {
		return " with prefix: " + p
	}
	return ""
}

// txnOps converts validated transaction arguments into KV operations.
func txnOps(operations []map[string]interface{}) capi.TxnOps {
	ops := make(capi.TxnOps, 0, len(operations))
	for _, raw := range operations {
		op := arguments(raw)
		kv := &capi.KVTxnOp{Key: op.str("key")}
		switch op.str("operation") {
		case "set":
			kv.Verb = capi.KVSet
			kv.Value = []byte(op.str("value"))
		case "delete":
			kv.Verb = capi.KVDelete
		case "get":
			kv.Verb = capi.KVGet
		}
		ops = append(ops, &capi.TxnOp{KV: kv})
	}
	return ops
}
