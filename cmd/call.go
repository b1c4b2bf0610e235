package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/muhammadmuzzammil1998/jsonc"
	"github.com/spf13/cobra"

	"consul-mcp/internal/api"
	"consul-mcp/internal/formatting"
)

var (
	callArgs         []string
	callJSON         string
	callJSONFile     string
	callQuiet        bool
	callOutputFormat string
	callConfigPath   string
	callReadOnly     bool
	callDebug        bool
)

var callCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Run a single tool against Consul",
	Long: `Runs one tool against the configured Consul agent and prints its result.

Arguments are given with --arg name=value and converted to the type the tool
declares. Arrays accept either a JSON array or a comma separated list;
objects must be JSON. --json supplies all arguments as one JSON object, and
--json-file reads that object from a file; both accept // and /* */
comments. --arg values are applied on top.

The command exits with status 2 when the tool reports an error.

Examples:
  consul-mcp call get-leader
  consul-mcp call get-kv --arg key=app/config
  consul-mcp call register-service --arg name=web --arg port=8080 --arg tags=v1,canary
  consul-mcp call kv-transaction --json '{"operations":[{"operation":"get","key":"a"}]}'
  consul-mcp call create-prepared-query --json-file query.jsonc`,
	Args: cobra.ExactArgs(1),
	RunE: runCall,
}

func runCall(cmd *cobra.Command, args []string) error {
	toolName := args[0]

	format, err := formatting.ParseOutputFormat(callOutputFormat)
	if err != nil {
		return err
	}

	registry, err := loadRegistry(callConfigPath, callDebug, callReadOnly, nil, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	meta, ok := registry.Lookup(toolName)
	if !ok {
		return fmt.Errorf("unknown tool: %s (run 'consul-mcp tools' to list tools)", toolName)
	}

	jsonArgs := callJSON
	if callJSONFile != "" {
		if jsonArgs != "" {
			return fmt.Errorf("--json and --json-file cannot be used together")
		}
		data, err := os.ReadFile(callJSONFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", callJSONFile, err)
		}
		jsonArgs = string(data)
	}

	toolArgs, err := parseToolArgs(meta, jsonArgs, callArgs)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var s *spinner.Spinner
	if !callQuiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
		s.Suffix = " Calling " + toolName + "..."
		s.Start()
	}

	result, err := registry.ExecuteTool(ctx, toolName, toolArgs)

	if s != nil {
		s.Stop()
	}
	if err != nil {
		return err
	}

	if err := formatting.WriteResult(cmd.OutOrStdout(), result, format); err != nil {
		return err
	}
	if result.IsError {
		return &ToolError{Tool: toolName}
	}
	return nil
}

// parseToolArgs merges the --json object and the --arg pairs into a single
// argument map, converting each pair to the declared argument type. The JSON
// object may contain comments.
func parseToolArgs(meta api.ToolMetadata, jsonArgs string, pairs []string) (map[string]interface{}, error) {
	out := make(map[string]interface{})

	if strings.TrimSpace(jsonArgs) != "" {
		if err := json.Unmarshal(jsonc.ToJSON([]byte(jsonArgs)), &out); err != nil {
			return nil, fmt.Errorf("invalid --json value: %w", err)
		}
	}

	declared := make(map[string]api.ArgMetadata, len(meta.Args))
	for _, a := range meta.Args {
		declared[a.Name] = a
	}

	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --arg %q, expected name=value", pair)
		}
		arg, ok := declared[name]
		if !ok {
			return nil, fmt.Errorf("tool %s has no argument %q", meta.Name, name)
		}
		v, err := coerceArg(arg, raw)
		if err != nil {
			return nil, fmt.Errorf("argument %s: %w", name, err)
		}
		out[name] = v
	}

	return out, nil
}

func coerceArg(arg api.ArgMetadata, raw string) (interface{}, error) {
	switch arg.Type {
	case "integer":
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("expected an integer, got %q", raw)
		}
		return n, nil
	case "number":
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("expected a number, got %q", raw)
		}
		return f, nil
	case "boolean":
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("expected true or false, got %q", raw)
		}
		return b, nil
	case "array":
		if strings.HasPrefix(strings.TrimSpace(raw), "[") {
			var items []interface{}
			if err := json.Unmarshal([]byte(raw), &items); err != nil {
				return nil, fmt.Errorf("invalid JSON array: %w", err)
			}
			return items, nil
		}
		if raw == "" {
			return []interface{}{}, nil
		}
		parts := strings.Split(raw, ",")
		items := make([]interface{}, len(parts))
		for i, p := range parts {
			items[i] = strings.TrimSpace(p)
		}
		return items, nil
	case "object":
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(raw), &obj); err != nil {
			return nil, fmt.Errorf("invalid JSON object: %w", err)
		}
		return obj, nil
	default:
		return raw, nil
	}
}

func init() {
	rootCmd.AddCommand(callCmd)

	callCmd.Flags().StringArrayVar(&callArgs, "arg", nil, "Tool argument as name=value (repeatable)")
	callCmd.Flags().StringVar(&callJSON, "json", "", "All tool arguments as a JSON object")
	callCmd.Flags().StringVar(&callJSONFile, "json-file", "", "Read all tool arguments from a JSON file")
	callCmd.Flags().BoolVarP(&callQuiet, "quiet", "q", false, "Do not show a progress spinner")
	callCmd.Flags().StringVarP(&callOutputFormat, "output", "o", "text", "Output format (text, json, yaml)")
	callCmd.Flags().StringVar(&callConfigPath, "config-path", "", "Configuration directory (default ~/.config/consul-mcp)")
	callCmd.Flags().BoolVar(&callReadOnly, "read-only", false, "Refuse tools that modify Consul")
	callCmd.Flags().BoolVar(&callDebug, "debug", false, "Enable debug logging")
}
