package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitSuccess       = 0
	ExitErrorGeneric  = 1
	ExitErrorTimeout  = 2
	ExitErrorMismatch = 3   // two implementations disagreed
	ExitErrorConfig   = 4   // invalid flags, environment or operands
	ExitErrorCanceled = 130 // SIGINT
)

// ConfigError reports invalid user configuration: flags, environment
// variables or a flag combination that cannot run.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError reports a malformed value for a named input, such as an
// operand that does not parse or does not fit the selected width.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError reports that two implementations of the same operation
// produced different results for the same input. It is the failure raised
// by cross-checking, never by the arithmetic itself.
type MismatchError struct {
	// Operation names the operation that disagreed (e.g., "karatsuba").
	Operation string
	// Width is the operand width in bits.
	Width int
	// Input is a printable rendering of the operands that triggered it.
	Input string
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("%s mismatch at %d bits for input %s", e.Operation, e.Width, e.Input)
}

// WrapError prefixes err with a formatted message, keeping it unwrappable.
// A nil err stays nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err stems from a canceled or expired
// context.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
