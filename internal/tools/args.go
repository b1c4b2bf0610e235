package tools

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// arguments wraps the decoded argument map of a tool call. Accessors return
// zero values for absent arguments; presence and types are guaranteed by
// schema validation before a handler runs.
type arguments map[string]interface{}

func (a arguments) has(name string) bool {
	v, ok := a[name]
	return ok && v != nil
}

func (a arguments) str(name string) string {
	switch v := a[name].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// strOr returns the named string argument, or fallback when it is empty.
func (a arguments) strOr(name, fallback string) string {
	if s := a.str(name); s != "" {
		return s
	}
	return fallback
}

func (a arguments) integer(name string) int {
	switch v := a[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	default:
		return 0
	}
}

func (a arguments) boolean(name string) bool {
	switch v := a[name].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}

func (a arguments) strings(name string) []string {
	switch v := a[name].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func (a arguments) object(name string) map[string]interface{} {
	if m, ok := a[name].(map[string]interface{}); ok {
		return m
	}
	return nil
}

func (a arguments) objects(name string) []map[string]interface{} {
	items, ok := a[name].([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}
