package cmd

import (
	"github.com/spf13/cobra"

	"consul-mcp/internal/formatting"
)

var (
	toolsOutputFormat string
	toolsReadOnly     bool
	toolsConfigPath   string
	toolsDebug        bool
	toolsFilter       []string
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools consul-mcp exposes",
	Long: `Lists every registered tool with its arguments. Required arguments are
marked with *. With --read-only, only the tools that serve would expose in
read-only mode are shown. --filter takes glob patterns on tool names.

Examples:
  consul-mcp tools
  consul-mcp tools --read-only
  consul-mcp tools --filter '*-kv' --filter 'get-*'
  consul-mcp tools --output json`,
	Args: cobra.NoArgs,
	RunE: runTools,
}

func runTools(cmd *cobra.Command, args []string) error {
	format, err := formatting.ParseOutputFormat(toolsOutputFormat)
	if err != nil {
		return err
	}

	registry, err := loadRegistry(toolsConfigPath, toolsDebug, toolsReadOnly, toolsFilter, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	return formatting.WriteTools(cmd.OutOrStdout(), registry.GetTools(), format)
}

func init() {
	rootCmd.AddCommand(toolsCmd)

	toolsCmd.Flags().StringVarP(&toolsOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	toolsCmd.Flags().BoolVar(&toolsReadOnly, "read-only", false, "Only list tools that do not modify Consul")
	toolsCmd.Flags().StringVar(&toolsConfigPath, "config-path", "", "Configuration directory (default ~/.config/consul-mcp)")
	toolsCmd.Flags().StringSliceVar(&toolsFilter, "filter", nil, "Only list tools matching these glob patterns")
	toolsCmd.Flags().BoolVar(&toolsDebug, "debug", false, "Enable debug logging")
}
