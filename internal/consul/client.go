package consul

import (
	"context"
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/hashicorp/consul/api"

	"consul-mcp/internal/config"
	"consul-mcp/pkg/logging"
)

// Client implements Backend on top of the official Consul API client.
type Client struct {
	api     *api.Client
	address string
}

var _ Backend = (*Client)(nil)

// NewClient creates a client for the agent described by cfg. No request is
// made; connectivity problems surface on the first call.
func NewClient(cfg config.ConsulConfig) (*Client, error) {
	apiCfg := api.DefaultConfig()
	apiCfg.Address = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	if cfg.Scheme != "" {
		apiCfg.Scheme = cfg.Scheme
	}
	if cfg.Token != "" {
		apiCfg.Token = cfg.Token
	}
	if cfg.Datacenter != "" {
		apiCfg.Datacenter = cfg.Datacenter
	}

	c, err := api.NewClient(apiCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create consul client: %w", err)
	}

	address := fmt.Sprintf("%s://%s", apiCfg.Scheme, apiCfg.Address)
	logging.Debug("Consul", "Created client for %s", address)

	return &Client{api: c, address: address}, nil
}

// Address returns the agent URL the client talks to.
func (c *Client) Address() string {
	return c.address
}

func queryOpts(ctx context.Context) *api.QueryOptions {
	return (&api.QueryOptions{}).WithContext(ctx)
}

func writeOpts(ctx context.Context) *api.WriteOptions {
	return (&api.WriteOptions{}).WithContext(ctx)
}

func (c *Client) AgentServices(ctx context.Context) (map[string]*api.AgentService, error) {
	return c.api.Agent().ServicesWithFilterOpts("", queryOpts(ctx))
}

func (c *Client) RegisterService(ctx context.Context, reg *api.AgentServiceRegistration) error {
	return c.api.Agent().ServiceRegisterOpts(reg, api.ServiceRegisterOpts{}.WithContext(ctx))
}

func (c *Client) DeregisterService(ctx context.Context, serviceID string) error {
	return c.api.Agent().ServiceDeregisterOpts(serviceID, queryOpts(ctx))
}

func (c *Client) AgentChecks(ctx context.Context) (map[string]*api.AgentCheck, error) {
	return c.api.Agent().ChecksWithFilterOpts("", queryOpts(ctx))
}

func (c *Client) RegisterCheck(ctx context.Context, reg *api.AgentCheckRegistration) error {
	return c.api.Agent().CheckRegisterOpts(reg, queryOpts(ctx))
}

func (c *Client) DeregisterCheck(ctx context.Context, checkID string) error {
	return c.api.Agent().CheckDeregisterOpts(checkID, queryOpts(ctx))
}

// Members, Self and Reload have no options variant in the API client, so
// these three calls cannot be cancelled mid-flight.

func (c *Client) AgentMembers(_ context.Context, wan bool) ([]*api.AgentMember, error) {
	return c.api.Agent().Members(wan)
}

func (c *Client) AgentSelf(_ context.Context) (map[string]map[string]interface{}, error) {
	return c.api.Agent().Self()
}

func (c *Client) ReloadAgent(_ context.Context) error {
	return c.api.Agent().Reload()
}

func (c *Client) HealthService(ctx context.Context, service, tag string, passingOnly bool) ([]*api.ServiceEntry, error) {
	entries, _, err := c.api.Health().Service(service, tag, passingOnly, queryOpts(ctx))
	return entries, err
}

func (c *Client) CatalogServices(ctx context.Context) (map[string][]string, error) {
	services, _, err := c.api.Catalog().Services(queryOpts(ctx))
	return services, err
}

func (c *Client) CatalogService(ctx context.Context, service string) ([]*api.CatalogService, error) {
	entries, _, err := c.api.Catalog().Service(service, "", queryOpts(ctx))
	return entries, err
}

func (c *Client) CatalogNodes(ctx context.Context) ([]*api.Node, error) {
	nodes, _, err := c.api.Catalog().Nodes(queryOpts(ctx))
	return nodes, err
}

func (c *Client) KVGet(ctx context.Context, key string) (*KVPair, error) {
	pair, _, err := c.api.KV().Get(key, queryOpts(ctx))
	if err != nil {
		return nil, err
	}
	return newKVPair(pair), nil
}

func (c *Client) KVKeys(ctx context.Context, prefix string) ([]string, error) {
	keys, _, err := c.api.KV().Keys(prefix, "", queryOpts(ctx))
	return keys, err
}

func (c *Client) KVPut(ctx context.Context, key string, value []byte, flags uint64) error {
	_, err := c.api.KV().Put(&api.KVPair{Key: key, Value: value, Flags: flags}, writeOpts(ctx))
	return err
}

func (c *Client) KVDelete(ctx context.Context, key string) error {
	_, err := c.api.KV().Delete(key, writeOpts(ctx))
	return err
}

func (c *Client) Txn(ctx context.Context, ops api.TxnOps) (*TxnOutcome, error) {
	ok, resp, _, err := c.api.Txn().Txn(ops, queryOpts(ctx))
	if err != nil {
		return nil, err
	}
	return &TxnOutcome{Committed: ok, Response: resp}, nil
}

func (c *Client) Sessions(ctx context.Context) ([]*api.SessionEntry, error) {
	sessions, _, err := c.api.Session().List(queryOpts(ctx))
	return sessions, err
}

func (c *Client) DestroySession(ctx context.Context, sessionID string) error {
	_, err := c.api.Session().Destroy(sessionID, writeOpts(ctx))
	return err
}

func (c *Client) CreateACLToken(ctx context.Context, token *api.ACLToken) (*api.ACLToken, error) {
	created, _, err := c.api.ACL().TokenCreate(token, writeOpts(ctx))
	return created, err
}

func (c *Client) ACLTokens(ctx context.Context) ([]*api.ACLTokenListEntry, error) {
	tokens, _, err := c.api.ACL().TokenList(queryOpts(ctx))
	return tokens, err
}

func (c *Client) FireEvent(ctx context.Context, event *api.UserEvent) (string, error) {
	id, _, err := c.api.Event().Fire(event, writeOpts(ctx))
	return id, err
}

func (c *Client) Events(ctx context.Context, name string) ([]*api.UserEvent, error) {
	events, _, err := c.api.Event().List(name, queryOpts(ctx))
	return events, err
}

func (c *Client) NodeCoordinates(ctx context.Context, node string) ([]*api.CoordinateEntry, error) {
	coords, _, err := c.api.Coordinate().Node(node, queryOpts(ctx))
	return coords, err
}

func (c *Client) RaftConfiguration(ctx context.Context) (*api.RaftConfiguration, error) {
	return c.api.Operator().RaftGetConfiguration(queryOpts(ctx))
}

func (c *Client) AutopilotConfiguration(ctx context.Context) (*api.AutopilotConfiguration, error) {
	return c.api.Operator().AutopilotGetConfiguration(queryOpts(ctx))
}

func (c *Client) CreateArea(ctx context.Context, area *api.Area) (string, error) {
	id, _, err := c.api.Operator().AreaCreate(area, writeOpts(ctx))
	return id, err
}

func (c *Client) JoinArea(ctx context.Context, areaID string, addresses []string) ([]*api.AreaJoinResponse, error) {
	resp, _, err := c.api.Operator().AreaJoin(areaID, addresses, writeOpts(ctx))
	return resp, err
}

func (c *Client) Areas(ctx context.Context) ([]*api.Area, error) {
	areas, _, err := c.api.Operator().AreaList(queryOpts(ctx))
	return areas, err
}

func (c *Client) License(ctx context.Context) (*api.LicenseReply, error) {
	return c.api.Operator().LicenseGet(queryOpts(ctx))
}

func (c *Client) PutLicense(ctx context.Context, license string) (*api.LicenseReply, error) {
	return c.api.Operator().LicensePut(license, writeOpts(ctx))
}

func (c *Client) CreatePreparedQuery(ctx context.Context, def *api.PreparedQueryDefinition) (string, error) {
	id, _, err := c.api.PreparedQuery().Create(def, writeOpts(ctx))
	return id, err
}

func (c *Client) PreparedQueries(ctx context.Context) ([]*api.PreparedQueryDefinition, error) {
	queries, _, err := c.api.PreparedQuery().List(queryOpts(ctx))
	return queries, err
}

func (c *Client) ExecutePreparedQuery(ctx context.Context, queryIDOrName string) (*api.PreparedQueryExecuteResponse, error) {
	resp, _, err := c.api.PreparedQuery().Execute(queryIDOrName, queryOpts(ctx))
	return resp, err
}

func (c *Client) Leader(ctx context.Context) (string, error) {
	return c.api.Status().LeaderWithQueryOptions(queryOpts(ctx))
}

func (c *Client) Peers(ctx context.Context) ([]string, error) {
	return c.api.Status().PeersWithQueryOptions(queryOpts(ctx))
}

// SaveSnapshot streams a snapshot of the cluster state into w.
func (c *Client) SaveSnapshot(ctx context.Context, w io.Writer) (*SnapshotInfo, error) {
	rc, meta, err := c.api.Snapshot().Save(queryOpts(ctx))
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	n, err := io.Copy(w, rc)
	if err != nil {
		return nil, fmt.Errorf("failed to write snapshot: %w", err)
	}

	info := &SnapshotInfo{Bytes: n}
	if meta != nil {
		info.Index = meta.LastIndex
	}
	return info, nil
}

func (c *Client) RestoreSnapshot(ctx context.Context, r io.Reader) error {
	return c.api.Snapshot().Restore(writeOpts(ctx), r)
}

func (c *Client) UpsertIntention(ctx context.Context, ixn *api.Intention) error {
	_, err := c.api.Connect().IntentionUpsert(ixn, writeOpts(ctx))
	return err
}

func (c *Client) Intentions(ctx context.Context) ([]*api.Intention, error) {
	ixns, _, err := c.api.Connect().Intentions(queryOpts(ctx))
	return ixns, err
}

func (c *Client) CAConfiguration(ctx context.Context) (*api.CAConfig, error) {
	conf, _, err := c.api.Connect().CAGetConfig(queryOpts(ctx))
	return conf, err
}

func (c *Client) SetCAConfiguration(ctx context.Context, conf *api.CAConfig) error {
	_, err := c.api.Connect().CASetConfig(conf, writeOpts(ctx))
	return err
}

func (c *Client) CreateNamespace(ctx context.Context, ns *api.Namespace) (*api.Namespace, error) {
	created, _, err := c.api.Namespaces().Create(ns, writeOpts(ctx))
	return created, err
}

func (c *Client) Namespaces(ctx context.Context) ([]*api.Namespace, error) {
	namespaces, _, err := c.api.Namespaces().List(queryOpts(ctx))
	return namespaces, err
}

func (c *Client) CreatePartition(ctx context.Context, partition *api.Partition) (*api.Partition, error) {
	created, _, err := c.api.Partitions().Create(ctx, partition, nil)
	return created, err
}

func (c *Client) Partitions(ctx context.Context) ([]*api.Partition, error) {
	partitions, _, err := c.api.Partitions().List(ctx, nil)
	return partitions, err
}
