package tools

import (
	"context"
	"encoding/base64"
	"io"
	"sort"
	"strings"

	capi "github.com/hashicorp/consul/api"

	"consul-mcp/internal/consul"
)

// fakeBackend is an in-memory consul.Backend. When err is set every call
// fails with it. Mutating calls are recorded so tests can inspect what would
// have been sent to Consul.
type fakeBackend struct {
	err error

	services     map[string]*capi.AgentService
	checks       map[string]*capi.AgentCheck
	members      []*capi.AgentMember
	self         map[string]map[string]interface{}
	healthByName map[string][]*capi.ServiceEntry

	catalogServices map[string][]string
	catalogByName   map[string][]*capi.CatalogService
	nodes           []*capi.Node

	kv       map[string][]byte
	kvFlags  map[string]uint64
	txn      *consul.TxnOutcome
	sessions []*capi.SessionEntry

	tokens        []*capi.ACLTokenListEntry
	events        []*capi.UserEvent
	coords        map[string][]*capi.CoordinateEntry
	raft          *capi.RaftConfiguration
	autopilot     *capi.AutopilotConfiguration
	areas         []*capi.Area
	areaJoin      []*capi.AreaJoinResponse
	license       *capi.LicenseReply
	queries       []*capi.PreparedQueryDefinition
	queryResponse *capi.PreparedQueryExecuteResponse
	leader        string
	peers         []string
	snapshot      []byte
	intentions    []*capi.Intention
	caConfig      *capi.CAConfig
	namespaces    []*capi.Namespace
	partitions    []*capi.Partition

	// Recorded requests.
	registeredService *capi.AgentServiceRegistration
	registeredCheck   *capi.AgentCheckRegistration
	createdToken      *capi.ACLToken
	firedEvent        *capi.UserEvent
	txnOps            capi.TxnOps
	createdQuery      *capi.PreparedQueryDefinition
	upserted          *capi.Intention
	restored          []byte
	deregistered      []string
	reloaded          bool
}

var _ consul.Backend = (*fakeBackend)(nil)

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		kv:      map[string][]byte{},
		kvFlags: map[string]uint64{},
	}
}

func (f *fakeBackend) AgentServices(context.Context) (map[string]*capi.AgentService, error) {
	return f.services, f.err
}

func (f *fakeBackend) RegisterService(_ context.Context, reg *capi.AgentServiceRegistration) error {
	if f.err != nil {
		return f.err
	}
	f.registeredService = reg
	return nil
}

func (f *fakeBackend) DeregisterService(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deregistered = append(f.deregistered, "service:"+id)
	return nil
}

func (f *fakeBackend) AgentChecks(context.Context) (map[string]*capi.AgentCheck, error) {
	return f.checks, f.err
}

func (f *fakeBackend) RegisterCheck(_ context.Context, reg *capi.AgentCheckRegistration) error {
	if f.err != nil {
		return f.err
	}
	f.registeredCheck = reg
	return nil
}

func (f *fakeBackend) DeregisterCheck(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deregistered = append(f.deregistered, "check:"+id)
	return nil
}

func (f *fakeBackend) AgentMembers(context.Context, bool) ([]*capi.AgentMember, error) {
	return f.members, f.err
}

func (f *fakeBackend) AgentSelf(context.Context) (map[string]map[string]interface{}, error) {
	return f.self, f.err
}

func (f *fakeBackend) ReloadAgent(context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.reloaded = true
	return nil
}

func (f *fakeBackend) HealthService(_ context.Context, service, tag string, passingOnly bool) ([]*capi.ServiceEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*capi.ServiceEntry
	for _, e := range f.healthByName[service] {
		if tag != "" && (e.Service == nil || !contains(e.Service.Tags, tag)) {
			continue
		}
		if passingOnly && e.Checks.AggregatedStatus() != capi.HealthPassing {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeBackend) CatalogServices(context.Context) (map[string][]string, error) {
	return f.catalogServices, f.err
}

func (f *fakeBackend) CatalogService(_ context.Context, service string) ([]*capi.CatalogService, error) {
	return f.catalogByName[service], f.err
}

func (f *fakeBackend) CatalogNodes(context.Context) ([]*capi.Node, error) {
	return f.nodes, f.err
}

func (f *fakeBackend) KVGet(_ context.Context, key string) (*consul.KVPair, error) {
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.kv[key]
	if !ok {
		return nil, nil
	}
	encoded := base64.StdEncoding.EncodeToString(v)
	return &consul.KVPair{Key: key, Value: &encoded, Flags: f.kvFlags[key], ModifyIndex: 1}, nil
}

func (f *fakeBackend) KVKeys(_ context.Context, prefix string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	var keys []string
	for k := range f.kv {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (f *fakeBackend) KVPut(_ context.Context, key string, value []byte, flags uint64) error {
	if f.err != nil {
		return f.err
	}
	f.kv[key] = value
	f.kvFlags[key] = flags
	return nil
}

func (f *fakeBackend) KVDelete(_ context.Context, key string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.kv, key)
	return nil
}

func (f *fakeBackend) Txn(_ context.Context, ops capi.TxnOps) (*consul.TxnOutcome, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.txnOps = ops
	return f.txn, nil
}

func (f *fakeBackend) Sessions(context.Context) ([]*capi.SessionEntry, error) {
	return f.sessions, f.err
}

func (f *fakeBackend) DestroySession(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deregistered = append(f.deregistered, "session:"+id)
	return nil
}

func (f *fakeBackend) CreateACLToken(_ context.Context, token *capi.ACLToken) (*capi.ACLToken, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.createdToken = token
	created := *token
	created.AccessorID = "6a1253d2-1785-24fd-91c2-f8e78c745511"
	return &created, nil
}

func (f *fakeBackend) ACLTokens(context.Context) ([]*capi.ACLTokenListEntry, error) {
	return f.tokens, f.err
}

func (f *fakeBackend) FireEvent(_ context.Context, event *capi.UserEvent) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.firedEvent = event
	return "b54fe110-7af5-cafc-d1fb-afc8ba432b1c", nil
}

func (f *fakeBackend) Events(context.Context, string) ([]*capi.UserEvent, error) {
	return f.events, f.err
}

func (f *fakeBackend) NodeCoordinates(_ context.Context, node string) ([]*capi.CoordinateEntry, error) {
	return f.coords[node], f.err
}

func (f *fakeBackend) RaftConfiguration(context.Context) (*capi.RaftConfiguration, error) {
	return f.raft, f.err
}

func (f *fakeBackend) AutopilotConfiguration(context.Context) (*capi.AutopilotConfiguration, error) {
	return f.autopilot, f.err
}

func (f *fakeBackend) CreateArea(_ context.Context, area *capi.Area) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "8f246b77-f3e1-ff88-5b48-8ec93abf3e05", nil
}

func (f *fakeBackend) JoinArea(context.Context, string, []string) ([]*capi.AreaJoinResponse, error) {
	return f.areaJoin, f.err
}

func (f *fakeBackend) Areas(context.Context) ([]*capi.Area, error) {
	return f.areas, f.err
}

func (f *fakeBackend) License(context.Context) (*capi.LicenseReply, error) {
	return f.license, f.err
}

func (f *fakeBackend) PutLicense(context.Context, string) (*capi.LicenseReply, error) {
	return f.license, f.err
}

func (f *fakeBackend) CreatePreparedQuery(_ context.Context, def *capi.PreparedQueryDefinition) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.createdQuery = def
	return "8f246b77-f3e1-ff88-5b48-8ec93abf3e05", nil
}

func (f *fakeBackend) PreparedQueries(context.Context) ([]*capi.PreparedQueryDefinition, error) {
	return f.queries, f.err
}

func (f *fakeBackend) ExecutePreparedQuery(context.Context, string) (*capi.PreparedQueryExecuteResponse, error) {
	return f.queryResponse, f.err
}

func (f *fakeBackend) Leader(context.Context) (string, error) {
	return f.leader, f.err
}

func (f *fakeBackend) Peers(context.Context) ([]string, error) {
	return f.peers, f.err
}

func (f *fakeBackend) SaveSnapshot(_ context.Context, w io.Writer) (*consul.SnapshotInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	n, err := w.Write(f.snapshot)
	if err != nil {
		return nil, err
	}
	return &consul.SnapshotInfo{Index: 42, Bytes: int64(n)}, nil
}

func (f *fakeBackend) RestoreSnapshot(_ context.Context, r io.Reader) error {
	if f.err != nil {
		return f.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.restored = data
	return nil
}

func (f *fakeBackend) UpsertIntention(_ context.Context, ixn *capi.Intention) error {
	if f.err != nil {
		return f.err
	}
	f.upserted = ixn
	return nil
}

func (f *fakeBackend) Intentions(context.Context) ([]*capi.Intention, error) {
	return f.intentions, f.err
}

func (f *fakeBackend) CAConfiguration(context.Context) (*capi.CAConfig, error) {
	return f.caConfig, f.err
}

func (f *fakeBackend) SetCAConfiguration(_ context.Context, conf *capi.CAConfig) error {
	if f.err != nil {
		return f.err
	}
	f.caConfig = conf
	return nil
}

func (f *fakeBackend) CreateNamespace(_ context.Context, ns *capi.Namespace) (*capi.Namespace, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.namespaces = append(f.namespaces, ns)
	return ns, nil
}

func (f *fakeBackend) Namespaces(context.Context) ([]*capi.Namespace, error) {
	return f.namespaces, f.err
}

func (f *fakeBackend) CreatePartition(_ context.Context, p *capi.Partition) (*capi.Partition, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.partitions = append(f.partitions, p)
	return p, nil
}

func (f *fakeBackend) Partitions(context.Context) ([]*capi.Partition, error) {
	return f.partitions, f.err
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
