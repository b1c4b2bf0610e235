// Package tools defines the Consul administration tools and executes them.
//
// Every tool is a row in a declarative table: metadata (name, description,
// arguments, whether it mutates Consul) plus an endpoint value describing
// which backend method to call, how to render the result, and what to say
// when the result is empty. A single generic dispatch path runs all of them.
//
// Registry.ExecuteTool validates arguments against a JSON schema derived
// from the metadata, invokes the tool, and converts backend failures into
// results flagged with IsError. Callers therefore receive a text response
// for every call on a known tool; only unknown tool names produce a Go error.
//
// With WithReadOnly(true) the registry leaves out every mutating tool.
package tools
