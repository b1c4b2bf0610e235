package tools

import (
	"math"

	"consul-mcp/internal/api"
)

// catalogue returns every tool definition in declaration order.
func catalogue() []definition {
	groups := [][]definition{
		serviceTools(),
		healthTools(),
		catalogTools(),
		kvTools(),
		sessionTools(),
		aclTools(),
		eventTools(),
		coordinateTools(),
		operatorTools(),
		preparedQueryTools(),
		statusTools(),
		agentTools(),
		snapshotTools(),
		intentionTools(),
		caTools(),
		tenancyTools(),
	}

	var defs []definition
	for _, g := range groups {
		defs = append(defs, g...)
	}
	return defs
}

func stringArg(name, description string, required bool) api.ArgMetadata {
	return api.ArgMetadata{
		Name:        name,
		Type:        "string",
		Required:    required,
		Description: description,
	}
}

func integerArg(name, description string, def interface{}) api.ArgMetadata {
	return api.ArgMetadata{
		Name:        name,
		Type:        "integer",
		Description: description,
		Default:     def,
		Schema:      map[string]interface{}{"type": "integer", "minimum": 0, "maximum": math.MaxInt64},
	}
}

func booleanArg(name, description string, def bool) api.ArgMetadata {
	return api.ArgMetadata{
		Name:        name,
		Type:        "boolean",
		Description: description,
		Default:     def,
	}
}

func stringListArg(name, description string, required bool) api.ArgMetadata {
	return api.ArgMetadata{
		Name:        name,
		Type:        "array",
		Required:    required,
		Description: description,
		Schema: map[string]interface{}{
			"type":  "array",
			"items": map[string]interface{}{"type": "string"},
		},
	}
}

func enumArg(name, description string, values ...string) api.ArgMetadata {
	return api.ArgMetadata{
		Name:        name,
		Type:        "string",
		Required:    true,
		Description: description,
		Schema: map[string]interface{}{
			"type": "string",
			"enum": values,
		},
	}
}
