package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the ANSI sequences used when printing errors, so
// this package does not depend on the UI theme package.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleCalculationError prints err to out and maps it to an exit code.
// A nil error returns ExitSuccess without printing anything.
//
// Parameters:
//   - err: The error returned by a check, calibration or evaluation.
//   - duration: How long the operation ran before failing (0 if unknown).
//   - out: The writer for the error message.
//   - colors: The color sequences to use.
//
// Returns:
//   - int: The exit code for the error class.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	suffix := ""
	if duration > 0 {
		suffix = fmt.Sprintf(" after %s", duration)
	}

	var mismatchErr MismatchError
	var configErr ConfigError
	var validationErr ValidationError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sTimeout%s: the operation exceeded its time limit%s.\n", colors.Yellow(), colors.Reset(), suffix)
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sCanceled%s%s.\n", colors.Yellow(), colors.Reset(), suffix)
		return ExitErrorCanceled
	case errors.As(err, &mismatchErr):
		fmt.Fprintf(out, "%sMismatch%s: %v%s\n", colors.Red(), colors.Reset(), mismatchErr, suffix)
		return ExitErrorMismatch
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		fmt.Fprintf(out, "%sInvalid input%s: %v\n", colors.Red(), colors.Reset(), err)
		return ExitErrorConfig
	default:
		fmt.Fprintf(out, "%sError%s: %v%s\n", colors.Red(), colors.Reset(), err, suffix)
		return ExitErrorGeneric
	}
}
