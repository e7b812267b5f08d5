// Package apperrors defines the error types the application reports and the
// mapping from those errors to process exit codes. Every type unwraps, so
// callers use errors.Is and errors.As through fmt.Errorf("%w") chains.
package apperrors
