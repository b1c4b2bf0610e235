package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"consul-mcp/internal/api"
	"consul-mcp/internal/consul"
	"consul-mcp/pkg/logging"
)

// Option configures a Registry.
type Option func(*Registry)

// WithReadOnly leaves out every tool that changes Consul state.
func WithReadOnly(readOnly bool) Option {
	return func(r *Registry) {
		r.readOnly = readOnly
	}
}

type registeredTool struct {
	definition
	schema *jsonschema.Schema
}

// Registry holds the tool table bound to one backend. It is immutable after
// construction and safe for concurrent use.
type Registry struct {
	backend  consul.Backend
	readOnly bool
	filter   toolFilter

	tools  []*registeredTool
	byName map[string]*registeredTool
}

var _ api.ToolProvider = (*Registry)(nil)

// NewRegistry builds the registry of all Consul tools bound to backend.
func NewRegistry(backend consul.Backend, opts ...Option) (*Registry, error) {
	return newRegistry(backend, catalogue(), opts...)
}

func newRegistry(backend consul.Backend, defs []definition, opts ...Option) (*Registry, error) {
	if backend == nil {
		return nil, errors.New("tool registry requires a consul backend")
	}

	r := &Registry{
		backend: backend,
		byName:  make(map[string]*registeredTool, len(defs)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.filter.validate(); err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		name := def.meta.Name
		if seen[name] {
			return nil, fmt.Errorf("duplicate tool name %q", name)
		}
		seen[name] = true

		if r.readOnly && def.meta.Destructive {
			logging.Debug("Tools", "Read-only mode: skipping %s", name)
			continue
		}
		if !r.filter.allows(name) {
			logging.Debug("Tools", "Tool filter: skipping %s", name)
			continue
		}

		schema, err := compileArgsSchema(compiler, def.meta)
		if err != nil {
			return nil, fmt.Errorf("failed to build input schema for %s: %w", name, err)
		}

		t := &registeredTool{definition: def, schema: schema}
		r.tools = append(r.tools, t)
		r.byName[name] = t
	}

	logging.Debug("Tools", "Registered %d tools (read-only: %t)", len(r.tools), r.readOnly)
	return r, nil
}

// GetTools returns the metadata of all registered tools in declaration order.
func (r *Registry) GetTools() []api.ToolMetadata {
	out := make([]api.ToolMetadata, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t.meta)
	}
	return out
}

// Lookup returns the metadata of a single tool.
func (r *Registry) Lookup(name string) (api.ToolMetadata, bool) {
	t, ok := r.byName[name]
	if !ok {
		return api.ToolMetadata{}, false
	}
	return t.meta, true
}

// ReadOnly reports whether mutating tools were left out.
func (r *Registry) ReadOnly() bool {
	return r.readOnly
}

// ExecuteTool runs a tool by name.
//
// Only an unknown tool name yields a Go error. Invalid arguments and backend
// failures are returned as results with IsError set, so that the caller
// always receives a well-formed response.
func (r *Registry) ExecuteTool(ctx context.Context, toolName string, args map[string]interface{}) (*api.CallToolResult, error) {
	t, ok := r.byName[toolName]
	if !ok {
		return nil, fmt.Errorf("unknown tool: %s", toolName)
	}

	callID := uuid.NewString()
	logging.Debug("Tools", "Executing %s (call %s)", toolName, callID)

	args = withDefaults(t.meta.Args, args)
	if err := validateArgs(t.schema, args); err != nil {
		verr := &ValidationError{Tool: toolName, Err: err}
		logging.Warn("Tools", "Rejected %s (call %s): %v", toolName, callID, err)
		return errorResult(verr.Message()), nil
	}

	result, err := t.handler(ctx, r.backend, arguments(args))
	if err != nil {
		var berr *BackendError
		if !errors.As(err, &berr) {
			berr = &BackendError{Operation: "executing " + toolName, Err: err}
		}
		logging.Error("Tools", err, "Tool %s failed (call %s, identifier %q)", toolName, callID, berr.Identifier)
		return errorResult(berr.Text()), nil
	}

	logging.Debug("Tools", "Completed %s (call %s)", toolName, callID)
	return result, nil
}
