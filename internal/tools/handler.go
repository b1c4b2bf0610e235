package tools

import (
	"context"
	"strings"

	"consul-mcp/internal/api"
	"consul-mcp/internal/consul"
)

// handlerFunc executes one tool against the backend. A returned error is
// always a *BackendError.
type handlerFunc func(ctx context.Context, b consul.Backend, a arguments) (*api.CallToolResult, error)

// definition binds tool metadata to its handler.
type definition struct {
	meta    api.ToolMetadata
	handler handlerFunc
}

// endpoint is the single dispatch path shared by every tool: call one Consul
// endpoint, detect the empty case, render the result.
type endpoint[T any] struct {
	// op names the operation in failure messages ("getting value for key").
	op string
	// idArg is the argument echoed as identifier in failure messages.
	idArg string

	call   func(ctx context.Context, b consul.Backend, a arguments) (T, error)
	empty  func(res T) bool
	none   func(a arguments) string
	render func(res T, a arguments) string
}

func (e endpoint[T]) handle(ctx context.Context, b consul.Backend, a arguments) (*api.CallToolResult, error) {
	res, err := e.call(ctx, b, a)
	if err != nil {
		be := &BackendError{Operation: e.op, Err: err}
		if e.idArg != "" {
			be.Identifier = a.str(e.idArg)
		}
		return nil, be
	}

	if e.empty != nil && e.empty(res) {
		return textResult(e.none(a)), nil
	}
	return textResult(e.render(res, a)), nil
}

// done adapts a call that returns only an error.
func done(call func(ctx context.Context, b consul.Backend, a arguments) error) func(context.Context, consul.Backend, arguments) (struct{}, error) {
	return func(ctx context.Context, b consul.Backend, a arguments) (struct{}, error) {
		return struct{}{}, call(ctx, b, a)
	}
}

// fixed returns a constant message renderer.
func fixed[T any](text string) func(T, arguments) string {
	return func(T, arguments) string { return text }
}

// noneText returns a constant empty-result message.
func noneText(text string) func(arguments) string {
	return func(arguments) string { return text }
}

func emptySlice[T any](res []T) bool { return len(res) == 0 }

func emptyMap[K comparable, V any](res map[K]V) bool { return len(res) == 0 }

// titled renders "Title:\n\nline\nline".
func titled(title string, lines []string) string {
	return title + ":\n\n" + strings.Join(lines, "\n")
}

// mapLines renders one line per item.
func mapLines[T any](items []T, line func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, line(item))
	}
	return out
}

func textResult(text string) *api.CallToolResult {
	return &api.CallToolResult{
		Content: []interface{}{text},
		IsError: false,
	}
}

func errorResult(message string) *api.CallToolResult {
	return &api.CallToolResult{
		Content: []interface{}{message},
		IsError: true,
	}
}
