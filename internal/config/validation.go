package config

import (
	"fmt"
	"strings"

	"consul-mcp/pkg/logging"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

// ValidateOneOf checks that value is one of allowed.
func ValidateOneOf(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
	}
}

// ValidatePort checks that port is a usable TCP port number.
func ValidatePort(field string, port int) error {
	if port < 1 || port > 65535 {
		return ValidationError{
			Field:   field,
			Value:   port,
			Message: "must be between 1 and 65535",
		}
	}
	return nil
}

// Validate checks the whole configuration and returns every problem found.
func Validate(cfg ConsulMCPConfig) error {
	var errs ValidationErrors

	if strings.TrimSpace(cfg.Consul.Host) == "" {
		errs.Add("consul.host", "is required")
	}
	if err := ValidatePort("consul.port", cfg.Consul.Port); err != nil {
		errs = append(errs, err.(ValidationError))
	}
	if err := ValidateOneOf("consul.scheme", cfg.Consul.Scheme, []string{"http", "https"}); err != nil {
		errs = append(errs, err.(ValidationError))
	}

	transports := []string{MCPTransportStdio, MCPTransportSSE, MCPTransportStreamableHTTP}
	if err := ValidateOneOf("server.transport", cfg.Server.Transport, transports); err != nil {
		errs = append(errs, err.(ValidationError))
	}
	if cfg.Server.Transport != MCPTransportStdio {
		if err := ValidatePort("server.port", cfg.Server.Port); err != nil {
			errs = append(errs, err.(ValidationError))
		}
	}

	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		errs.Add("logging.level", err.Error(), cfg.Logging.Level)
	}
	if err := ValidateOneOf("logging.format", cfg.Logging.Format, []string{"text", "json"}); err != nil {
		errs = append(errs, err.(ValidationError))
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
