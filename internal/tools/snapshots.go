package tools

import (
	"context"
	"fmt"
	"os"

	"consul-mcp/internal/api"
	"consul-mcp/internal/consul"
)

func snapshotTools() []definition {
	return []definition{
		{
			meta: api.ToolMetadata{
				Name:        "save-snapshot",
				Description: "Save a snapshot of the cluster state to a file on the server host",
				Args: []api.ArgMetadata{
					stringArg("path", "Destination file path", true),
				},
			},
			handler: endpoint[*consul.SnapshotInfo]{
				op:    "saving snapshot to",
				idArg: "path",
				call: func(ctx context.Context, b consul.Backend, a arguments) (*consul.SnapshotInfo, error) {
					return saveSnapshot(ctx, b, a.str("path"))
				},
				render: func(info *consul.SnapshotInfo, a arguments) string {
					return fmt.Sprintf("Snapshot saved to %s (%d bytes, index %d)", a.str("path"), info.Bytes, info.Index)
				},
			}.handle,
		},
		{
			meta: api.ToolMetadata{
				Name:        "restore-snapshot",
				Description: "Restore the cluster state from a snapshot file on the server host",
				Args: []api.ArgMetadata{
					stringArg("path", "Snapshot file path", true),
				},
				Destructive: true,
			},
			handler: endpoint[struct{}]{
				op:    "restoring snapshot from",
				idArg: "path",
				call: done(func(ctx context.Context, b consul.Backend, a arguments) error {
					f, err := os.Open(a.str("path"))
					if err != nil {
						return err
					}
					defer f.Close()
					return b.RestoreSnapshot(ctx, f)
				}),
				render: func(_ struct{}, a arguments) string {
					return "Snapshot restored from " + a.str("path")
				},
			}.handle,
		},
	}
}

// saveSnapshot writes a snapshot to path. A partially written file is removed
// on failure.
func saveSnapshot(ctx context.Context, b consul.Backend, path string) (*consul.SnapshotInfo, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	info, err := b.SaveSnapshot(ctx, f)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, err
	}
	return info, nil
}
