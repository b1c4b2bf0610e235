package formatting

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/hashicorp/consul/api"

	"consul-mcp/internal/consul"
	pkgstrings "consul-mcp/pkg/strings"
)

const (
	unknown    = "Unknown"
	noneValue  = "None"
	noOutput   = "No output"
	noValue    = "No value"
	blockClose = "---"
)

func uintOrUnknown(v uint64) string {
	if v == 0 {
		return unknown
	}
	return strconv.FormatUint(v, 10)
}

func intOrUnknown(v int) string {
	if v == 0 {
		return unknown
	}
	return strconv.Itoa(v)
}

func block(lines ...string) string {
	return strings.Join(append(lines, blockClose), "\n")
}

// Service renders an agent service registration. Tags are comma joined; a
// service without tags, whether nil or empty, shows "Unknown".
func Service(s *api.AgentService) string {
	return block(
		"ID: "+pkgstrings.OrDefault(s.ID, unknown),
		"Port: "+intOrUnknown(s.Port),
		"Service: "+pkgstrings.OrDefault(s.Service, unknown),
		"Tags: "+pkgstrings.JoinOrDefault(s.Tags, ",", unknown),
	)
}

// HealthCheck renders a single health check.
func HealthCheck(c *api.HealthCheck) string {
	return block(
		"Node: "+pkgstrings.OrDefault(c.Node, unknown),
		"CheckID: "+pkgstrings.OrDefault(c.CheckID, unknown),
		"Name: "+pkgstrings.OrDefault(c.Name, unknown),
		"Status: "+pkgstrings.OrDefault(c.Status, unknown),
		"ServiceName: "+pkgstrings.OrDefault(c.ServiceName, unknown),
		"Output: "+pkgstrings.OrDefault(c.Output, noOutput),
	)
}

// AgentCheck renders a check registered with the local agent using the
// health check layout.
func AgentCheck(c *api.AgentCheck) string {
	return HealthCheck(&api.HealthCheck{
		Node:        c.Node,
		CheckID:     c.CheckID,
		Name:        c.Name,
		Status:      c.Status,
		ServiceName: c.ServiceName,
		Output:      c.Output,
	})
}

// CatalogNode renders a catalog entry. Plain nodes without a service leave
// the service fields at their placeholders.
func CatalogNode(n *api.CatalogService) string {
	return block(
		"Node: "+pkgstrings.OrDefault(n.Node, unknown),
		"Address: "+pkgstrings.OrDefault(n.Address, unknown),
		"ServiceID: "+pkgstrings.OrDefault(n.ServiceID, unknown),
		"ServiceName: "+pkgstrings.OrDefault(n.ServiceName, unknown),
		"ServicePort: "+intOrUnknown(n.ServicePort),
		"ServiceTags: "+pkgstrings.JoinOrDefault(n.ServiceTags, ", ", noneValue),
	)
}

// Node renders a catalog node through the CatalogNode layout.
func Node(n *api.Node) string {
	return CatalogNode(&api.CatalogService{
		Node:    n.Node,
		Address: n.Address,
	})
}

// KVPair renders a key-value pair with its value decoded.
func KVPair(p *consul.KVPair) string {
	value := noValue
	if p.Value != nil {
		value = DecodeValue(*p.Value)
	}

	return block(
		"Key: "+pkgstrings.OrDefault(p.Key, unknown),
		"Value: "+value,
		"Flags: "+strconv.FormatUint(p.Flags, 10),
		"Last Modified Index: "+uintOrUnknown(p.ModifyIndex),
	)
}

// DecodeValue decodes a base64 KV value. Input that is not valid base64 is
// returned unchanged.
func DecodeValue(encoded string) string {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return encoded
	}
	return string(decoded)
}

// Session renders a session entry.
func Session(s *api.SessionEntry) string {
	checks := s.Checks
	if len(checks) == 0 {
		checks = append(checks, s.NodeChecks...)
		for _, sc := range s.ServiceChecks {
			checks = append(checks, sc.ID)
		}
	}

	lockDelay := unknown
	if s.LockDelay > 0 {
		lockDelay = s.LockDelay.String()
	}

	return block(
		"ID: "+pkgstrings.OrDefault(s.ID, unknown),
		"Name: "+pkgstrings.OrDefault(s.Name, unknown),
		"Node: "+pkgstrings.OrDefault(s.Node, unknown),
		"Checks: "+pkgstrings.JoinOrDefault(checks, ", ", noneValue),
		"LockDelay: "+lockDelay,
		"Behavior: "+pkgstrings.OrDefault(s.Behavior, unknown),
		"TTL: "+pkgstrings.OrDefault(s.TTL, unknown),
	)
}

// Blocks renders every item with render and joins the results with newlines.
func Blocks[T any](items []T, render func(T) string) string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, render(item))
	}
	return strings.Join(out, "\n")
}

// Titled prefixes body with a title line followed by a blank line.
func Titled(title, body string) string {
	return title + ":\n\n" + body
}
