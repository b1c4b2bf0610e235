// Package formatting turns Consul entities and tool results into text.
//
// The Consul renderers (Service, HealthCheck, CatalogNode, KVPair, Session)
// emit one "Field: value" line per attribute and close each record with a
// "---" line. Absent values are replaced by fixed placeholders so that output
// shape does not depend on which fields the agent populated.
//
// Output helpers (WriteTools, WriteResult) serve the CLI and support text,
// table, JSON and YAML rendering.
package formatting
