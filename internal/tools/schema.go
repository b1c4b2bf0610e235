package tools

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"consul-mcp/internal/api"
)

// ArgsSchema builds the JSON schema of a tool's input object from its
// argument metadata. The same document is advertised to MCP clients and used
// for validation.
func ArgsSchema(args []api.ArgMetadata) map[string]interface{} {
	properties := make(map[string]interface{}, len(args))
	required := []string{}

	for _, arg := range args {
		prop := make(map[string]interface{})
		for k, v := range arg.Schema {
			prop[k] = v
		}
		if _, ok := prop["type"]; !ok && arg.Type != "" {
			prop["type"] = arg.Type
		}
		if arg.Description != "" {
			prop["description"] = arg.Description
		}
		if arg.Default != nil {
			prop["default"] = arg.Default
		}
		properties[arg.Name] = prop

		if arg.Required {
			required = append(required, arg.Name)
		}
	}

	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

func schemaURL(tool string) string {
	return fmt.Sprintf("mem://tools/%s.schema.json", tool)
}

// compileArgsSchema registers the tool's input schema with c and compiles it.
func compileArgsSchema(c *jsonschema.Compiler, meta api.ToolMetadata) (*jsonschema.Schema, error) {
	data, err := json.Marshal(ArgsSchema(meta.Args))
	if err != nil {
		return nil, fmt.Errorf("encode schema %s: %w", meta.Name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode schema %s: %w", meta.Name, err)
	}
	if err := c.AddResource(schemaURL(meta.Name), doc); err != nil {
		return nil, fmt.Errorf("register schema %s: %w", meta.Name, err)
	}
	s, err := c.Compile(schemaURL(meta.Name))
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", meta.Name, err)
	}
	return s, nil
}

// withDefaults returns a copy of args with declared defaults filled in for
// absent arguments.
func withDefaults(meta []api.ArgMetadata, args map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(args)+len(meta))
	for k, v := range args {
		out[k] = v
	}
	for _, arg := range meta {
		if arg.Default == nil {
			continue
		}
		if v, ok := out[arg.Name]; !ok || v == nil {
			out[arg.Name] = arg.Default
		}
	}
	return out
}

// validateArgs checks args against schema. The arguments are passed through
// a JSON round trip first so that values built in Go (CLI input, defaults)
// are validated in the same shape an MCP client would have sent them.
func validateArgs(schema *jsonschema.Schema, args map[string]interface{}) error {
	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode arguments: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode arguments: %w", err)
	}
	return schema.Validate(inst)
}
