package errors

import (
	"fmt"
	"strings"
	"time"
)

// Error types for strsim
type ErrorType string

const (
	// Configuration errors
	ErrorTypeConfig ErrorType = "config"

	// Unknown or unsupported similarity algorithm
	ErrorTypeAlgorithm ErrorType = "algorithm"

	// Bad caller input outside the scoring kernel (CLI arguments, options)
	ErrorTypeInput ErrorType = "input"
)

// ConfigError represents a configuration error
type ConfigError struct {
	Type       ErrorType
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Type:       ErrorTypeConfig,
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("config error for field %s: %v", e.Field, e.Underlying)
	}
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// AlgorithmError reports an algorithm name that is not registered
type AlgorithmError struct {
	Type      ErrorType
	Name      string
	Supported []string
	Timestamp time.Time
}

// NewAlgorithmError creates a new algorithm error
func NewAlgorithmError(name string, supported []string) *AlgorithmError {
	return &AlgorithmError{
		Type:      ErrorTypeAlgorithm,
		Name:      name,
		Supported: supported,
		Timestamp: time.Now(),
	}
}

// Error implements the error interface
func (e *AlgorithmError) Error() string {
	if len(e.Supported) == 0 {
		return fmt.Sprintf("unknown algorithm %q", e.Name)
	}
	return fmt.Sprintf("unknown algorithm %q (must be one of %s)", e.Name, strings.Join(e.Supported, ", "))
}

// InputError represents invalid input supplied by a caller
type InputError struct {
	Type       ErrorType
	Operation  string
	Underlying error
	Timestamp  time.Time
}

// NewInputError creates a new input error
func NewInputError(op string, err error) *InputError {
	return &InputError{
		Type:       ErrorTypeInput,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *InputError) Error() string {
	return fmt.Sprintf("%s: invalid input: %v", e.Operation, e.Underlying)
}

// Unwrap returns the underlying error
func (e *InputError) Unwrap() error {
	return e.Underlying
}

// MultiError represents multiple errors
type MultiError struct {
	Errors []error
}

// NewMultiError creates a new multi-error
func NewMultiError(errs []error) *MultiError {
	// Filter out nil errors
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Errors: filtered}
}

// Error implements the error interface
func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
}

// Unwrap returns all errors
func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// ErrorOrNil returns nil when no errors were collected
func (e *MultiError) ErrorOrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}
