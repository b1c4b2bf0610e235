// Package consul wraps the HashiCorp Consul API client behind the Backend
// interface used by the tool registry.
//
// Every Backend method corresponds to one Consul HTTP endpoint and returns
// the client library's entity types unchanged, with one exception: KV pairs
// keep their value base64 encoded, exactly as the HTTP API transmits it, so
// that the formatting layer owns decoding.
package consul
