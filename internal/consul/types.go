package consul

import (
	"encoding/base64"

	"github.com/hashicorp/consul/api"
)

// KVPair is a key-value record as the Consul HTTP API transmits it: the value
// stays in its base64 transport encoding until something needs to display it.
type KVPair struct {
	Key         string
	Value       *string // base64 encoded; nil when the key holds no value
	Flags       uint64
	ModifyIndex uint64
	Session     string
}

// newKVPair converts a client-side pair into its wire representation.
func newKVPair(p *api.KVPair) *KVPair {
	if p == nil {
		return nil
	}

	pair := &KVPair{
		Key:         p.Key,
		Flags:       p.Flags,
		ModifyIndex: p.ModifyIndex,
		Session:     p.Session,
	}
	if p.Value != nil {
		encoded := base64.StdEncoding.EncodeToString(p.Value)
		pair.Value = &encoded
	}
	return pair
}

// TxnOutcome is the result of a transaction. Committed is false when Consul
// rolled the transaction back; Response then carries the per-operation errors.
type TxnOutcome struct {
	Committed bool             `json:"committed"`
	Response  *api.TxnResponse `json:"response,omitempty"`
}

// SnapshotInfo describes a snapshot written by SaveSnapshot.
type SnapshotInfo struct {
	Index uint64
	Bytes int64
}
