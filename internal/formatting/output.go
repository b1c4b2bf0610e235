package formatting

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"consul-mcp/internal/api"
	pkgstrings "consul-mcp/pkg/strings"
)

// OutputFormat selects how the CLI renders tool listings and call results.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"  // Plain tool output
	FormatTable OutputFormat = "table" // Rich table output
	FormatJSON  OutputFormat = "json"  // JSON output
	FormatYAML  OutputFormat = "yaml"  // YAML output
)

// ParseOutputFormat validates a user supplied format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected text, table, json or yaml)", s)
	}
}

// toolView is the serialisable shape of a tool listing entry.
type toolView struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Destructive bool      `json:"destructive" yaml:"destructive"`
	Args        []argView `json:"args,omitempty" yaml:"args,omitempty"`
}

type argView struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Required bool   `json:"required" yaml:"required"`
}

func toToolViews(tools []api.ToolMetadata) []toolView {
	views := make([]toolView, 0, len(tools))
	for _, t := range tools {
		v := toolView{Name: t.Name, Description: t.Description, Destructive: t.Destructive}
		for _, a := range t.Args {
			v.Args = append(v.Args, argView{Name: a.Name, Type: a.Type, Required: a.Required})
		}
		views = append(views, v)
	}
	return views
}

// WriteTools renders a tool listing to w.
func WriteTools(w io.Writer, tools []api.ToolMetadata, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, toToolViews(tools))
	case FormatYAML:
		return writeYAML(w, toToolViews(tools))
	case FormatText:
		for _, t := range tools {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", t.Name, pkgstrings.TruncateDescription(t.Description, pkgstrings.DefaultDescriptionMaxLen)); err != nil {
				return err
			}
		}
		return nil
	default:
		return writeToolsTable(w, tools)
	}
}

func writeToolsTable(w io.Writer, tools []api.ToolMetadata) error {
	if len(tools) == 0 {
		_, err := fmt.Fprintf(w, "%s %s\n", text.FgYellow.Sprint("📋"), text.FgYellow.Sprint("No tools found"))
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("NAME"),
		text.FgHiCyan.Sprint("ARGS"),
		text.FgHiCyan.Sprint("MUTATES"),
		text.FgHiCyan.Sprint("DESCRIPTION"),
	})

	for _, tool := range tools {
		mutates := text.FgGreen.Sprint("no")
		if tool.Destructive {
			mutates = text.FgRed.Sprint("yes")
		}
		t.AppendRow(table.Row{
			tool.Name,
			formatArgs(tool.Args),
			mutates,
			pkgstrings.TruncateDescription(tool.Description, pkgstrings.DefaultDescriptionMaxLen),
		})
	}

	t.Render()

	_, err := fmt.Fprintf(w, "\n%s %s %s\n",
		text.FgHiBlue.Sprint("Total:"),
		text.FgHiWhite.Sprint(len(tools)),
		text.FgHiBlue.Sprint("tools"))
	return err
}

// formatArgs lists argument names, marking required ones with an asterisk.
func formatArgs(args []api.ArgMetadata) string {
	if len(args) == 0 {
		return "-"
	}
	names := make([]string, 0, len(args))
	for _, a := range args {
		if a.Required {
			names = append(names, a.Name+"*")
		} else {
			names = append(names, a.Name)
		}
	}
	return strings.Join(names, ", ")
}

// resultView is the serialisable shape of a call result.
type resultView struct {
	IsError bool     `json:"isError" yaml:"isError"`
	Content []string `json:"content" yaml:"content"`
}

// ResultText joins the text blocks of a call result.
func ResultText(result *api.CallToolResult) string {
	parts := make([]string, 0, len(result.Content))
	for _, c := range result.Content {
		switch v := c.(type) {
		case string:
			parts = append(parts, v)
		default:
			parts = append(parts, PrettyJSON(v))
		}
	}
	return strings.Join(parts, "\n")
}

// WriteResult renders a call result to w.
func WriteResult(w io.Writer, result *api.CallToolResult, format OutputFormat) error {
	switch format {
	case FormatJSON, FormatYAML:
		view := resultView{IsError: result.IsError, Content: []string{}}
		for _, c := range result.Content {
			if s, ok := c.(string); ok {
				view.Content = append(view.Content, s)
			} else {
				view.Content = append(view.Content, PrettyJSON(c))
			}
		}
		if format == FormatJSON {
			return writeJSON(w, view)
		}
		return writeYAML(w, view)
	default:
		_, err := fmt.Fprintln(w, ResultText(result))
		return err
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to format YAML: %w", err)
	}
	_, err = w.Write(b)
	return err
}
