package consul

import (
	"context"
	"io"

	"github.com/hashicorp/consul/api"
)

// Backend is the set of Consul endpoints the tool registry uses. Each method
// maps to exactly one HTTP API call. *Client implements it against a real
// agent; tests substitute fakes.
type Backend interface {
	// Agent
	AgentServices(ctx context.Context) (map[string]*api.AgentService, error)
	RegisterService(ctx context.Context, reg *api.AgentServiceRegistration) error
	DeregisterService(ctx context.Context, serviceID string) error
	AgentChecks(ctx context.Context) (map[string]*api.AgentCheck, error)
	RegisterCheck(ctx context.Context, reg *api.AgentCheckRegistration) error
	DeregisterCheck(ctx context.Context, checkID string) error
	AgentMembers(ctx context.Context, wan bool) ([]*api.AgentMember, error)
	AgentSelf(ctx context.Context) (map[string]map[string]interface{}, error)
	ReloadAgent(ctx context.Context) error

	// Health
	HealthService(ctx context.Context, service, tag string, passingOnly bool) ([]*api.ServiceEntry, error)

	// Catalog
	CatalogServices(ctx context.Context) (map[string][]string, error)
	CatalogService(ctx context.Context, service string) ([]*api.CatalogService, error)
	CatalogNodes(ctx context.Context) ([]*api.Node, error)

	// KV store. KVGet returns nil, nil when the key does not exist.
	KVGet(ctx context.Context, key string) (*KVPair, error)
	KVKeys(ctx context.Context, prefix string) ([]string, error)
	KVPut(ctx context.Context, key string, value []byte, flags uint64) error
	KVDelete(ctx context.Context, key string) error
	Txn(ctx context.Context, ops api.TxnOps) (*TxnOutcome, error)

	// Sessions
	Sessions(ctx context.Context) ([]*api.SessionEntry, error)
	DestroySession(ctx context.Context, sessionID string) error

	// ACL
	CreateACLToken(ctx context.Context, token *api.ACLToken) (*api.ACLToken, error)
	ACLTokens(ctx context.Context) ([]*api.ACLTokenListEntry, error)

	// Events
	FireEvent(ctx context.Context, event *api.UserEvent) (string, error)
	Events(ctx context.Context, name string) ([]*api.UserEvent, error)

	// Coordinates
	NodeCoordinates(ctx context.Context, node string) ([]*api.CoordinateEntry, error)

	// Operator
	RaftConfiguration(ctx context.Context) (*api.RaftConfiguration, error)
	AutopilotConfiguration(ctx context.Context) (*api.AutopilotConfiguration, error)
	CreateArea(ctx context.Context, area *api.Area) (string, error)
	JoinArea(ctx context.Context, areaID string, addresses []string) ([]*api.AreaJoinResponse, error)
	Areas(ctx context.Context) ([]*api.Area, error)
	License(ctx context.Context) (*api.LicenseReply, error)
	PutLicense(ctx context.Context, license string) (*api.LicenseReply, error)

	// Prepared queries
	CreatePreparedQuery(ctx context.Context, def *api.PreparedQueryDefinition) (string, error)
	PreparedQueries(ctx context.Context) ([]*api.PreparedQueryDefinition, error)
	ExecutePreparedQuery(ctx context.Context, queryIDOrName string) (*api.PreparedQueryExecuteResponse, error)

	// Status
	Leader(ctx context.Context) (string, error)
	Peers(ctx context.Context) ([]string, error)

	// Snapshots
	SaveSnapshot(ctx context.Context, w io.Writer) (*SnapshotInfo, error)
	RestoreSnapshot(ctx context.Context, r io.Reader) error

	// Connect
	UpsertIntention(ctx context.Context, ixn *api.Intention) error
	Intentions(ctx context.Context) ([]*api.Intention, error)
	CAConfiguration(ctx context.Context) (*api.CAConfig, error)
	SetCAConfiguration(ctx context.Context, conf *api.CAConfig) error

	// Enterprise
	CreateNamespace(ctx context.Context, ns *api.Namespace) (*api.Namespace, error)
	Namespaces(ctx context.Context) ([]*api.Namespace, error)
	CreatePartition(ctx context.Context, partition *api.Partition) (*api.Partition, error)
	Partitions(ctx context.Context) ([]*api.Partition, error)
}
