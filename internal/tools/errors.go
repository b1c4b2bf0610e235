package tools

import "fmt"

// BackendError reports a failed Consul call together with the operation that
// was attempted and, when the tool has one, the identifier it acted on.
type BackendError struct {
	Operation  string // e.g. "getting value for key"
	Identifier string // e.g. the key; empty when the tool has no identifier
	Err        error
}

func (e *BackendError) Error() string {
	if e.Identifier != "" {
		return fmt.Sprintf("error %s %s: %v", e.Operation, e.Identifier, e.Err)
	}
	return fmt.Sprintf("error %s: %v", e.Operation, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Message returns the caller-facing summary, e.g.
// "Error getting value for key: app/config".
func (e *BackendError) Message() string {
	if e.Identifier != "" {
		return fmt.Sprintf("Error %s: %s", e.Operation, e.Identifier)
	}
	return "Error " + e.Operation
}

// Text is the full result text: the summary followed by the cause.
func (e *BackendError) Text() string {
	if e.Err == nil {
		return e.Message()
	}
	return e.Message() + "\n\n" + e.Err.Error()
}

// ValidationError is returned when tool arguments do not match the tool's
// input schema.
type ValidationError struct {
	Tool string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %v", e.Tool, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Message returns the caller-facing text.
func (e *ValidationError) Message() string {
	return fmt.Sprintf("Invalid arguments for %s: %v", e.Tool, e.Err)
}
