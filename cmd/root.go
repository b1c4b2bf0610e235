package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeToolError indicates that a tool ran but reported a failure.
	ExitCodeToolError = 2
)

// ToolError is returned by call when the tool result is marked as an error.
// The result text has already been printed.
type ToolError struct {
	Tool string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("tool %s reported an error", e.Tool)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "consul-mcp",
	Short: "Expose the Consul HTTP API as MCP tools",
	Long: `consul-mcp is a Model Context Protocol server for HashiCorp Consul.

It offers services, health checks, the catalog, the KV store, sessions, ACL
tokens, events, prepared queries, snapshots, Connect and operator endpoints
as tools that an AI assistant can call. Run 'consul-mcp serve' to start the
server, or 'consul-mcp call' to run a single tool from the shell.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute runs the root command and exits with a code describing the outcome.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "consul-mcp version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
func getExitCode(err error) int {
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return ExitCodeToolError
	}

	return ExitCodeError
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
