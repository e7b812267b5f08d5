// Package config parses and validates the command-line configuration of the
// widearith tool. Values come from flags, then WIDEARITH_* environment
// variables, then defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/widearith/internal/errors"
)

// EnvPrefix is prepended to every environment override key.
const EnvPrefix = "WIDEARITH_"

// Defaults.
const (
	DefaultOp         = "add"
	DefaultWidth      = 512
	DefaultMode       = "eval"
	DefaultIterations = 10000
	DefaultSeed       = 1
	DefaultKernel     = "auto"
	DefaultTimeout    = 5 * time.Minute
	DefaultTheme      = "dark"
)

// Supported values for the enumerated flags.
var (
	Ops     = []string{"add", "sub", "mul", "kmul", "sqr", "mulscalar", "shl", "shr", "cmp", "clz"}
	Widths  = []int{128, 256, 512, 1024}
	Modes   = []string{"eval", "verify", "vector", "calibrate", "repl"}
	Kernels = []string{"auto", "scalar", "avx512"}
	Themes  = []string{"dark", "light", "orange", "none"}
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Op is the operation evaluated in eval mode.
	Op string
	// Width is the operand width in bits.
	Width int
	// A and B are the operands, in 0x-prefixed hex or decimal.
	A, B string
	// Shift is the bit count for shl/shr.
	Shift uint
	// Mode selects what the run does.
	Mode string
	// Iterations is the number of cases per verification suite.
	Iterations int
	// Seed makes verification operand generation reproducible.
	Seed int64
	// Workers is the number of verification goroutines; 0 picks a value
	// from the CPU count.
	Workers int
	// Kernel selects the vector kernel.
	Kernel  string
	Timeout time.Duration
	// MetricsAddr, when set, serves Prometheus metrics at /metrics.
	MetricsAddr string
	// Output is an optional file receiving the result or report.
	Output  string
	Quiet   bool
	Verbose bool
	// Decimal prints values in base 10 instead of hexadecimal.
	Decimal bool
	NoColor bool
	// Theme names the color theme; NoColor and NO_COLOR take precedence.
	Theme string
	// TUI shows verification progress in the interactive dashboard.
	TUI bool
	// CalibrationProfile overrides the profile path.
	CalibrationProfile string
}

// ParseConfig parses args into an AppConfig, applies environment overrides
// for flags that were not set, and validates the result.
//
// On --help it returns flag.ErrHelp after printing usage to errorWriter.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.Op, "op", DefaultOp, "Operation: "+strings.Join(Ops, ", ")+".")
	fs.IntVar(&config.Width, "width", DefaultWidth, "Operand width in bits (128, 256, 512, 1024).")
	fs.IntVar(&config.Width, "w", DefaultWidth, "Shorthand for --width.")
	fs.StringVar(&config.A, "a", "0", "First operand (0x hex or decimal).")
	fs.StringVar(&config.B, "b", "0", "Second operand; for mulscalar only the low limb is used.")
	fs.UintVar(&config.Shift, "shift", 0, "Shift count for shl/shr (0-63).")
	fs.StringVar(&config.Mode, "mode", DefaultMode, "Mode: "+strings.Join(Modes, ", ")+".")
	fs.IntVar(&config.Iterations, "iterations", DefaultIterations, "Cases per verification suite.")
	fs.Int64Var(&config.Seed, "seed", DefaultSeed, "Seed for verification operands.")
	fs.IntVar(&config.Workers, "workers", 0, "Verification workers (0 = adaptive).")
	fs.StringVar(&config.Kernel, "kernel", DefaultKernel, "Vector kernel: auto, scalar, avx512.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum run time (e.g. 30s, 5m).")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090).")
	fs.StringVar(&config.Output, "output", "", "Write the result or report to this file.")
	fs.StringVar(&config.Output, "o", "", "Shorthand for --output.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the result value.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Show per-suite details and debug logs.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&config.Decimal, "decimal", false, "Print results in decimal instead of hexadecimal.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.Theme, "theme", DefaultTheme, "Color theme: "+strings.Join(Themes, ", ")+".")
	fs.BoolVar(&config.TUI, "tui", false, "Run verify or vector mode in the interactive dashboard.")
	fs.StringVar(&config.CalibrationProfile, "calibration-profile", "", "Calibration profile path (default ~/.widearith_calibration.json).")

	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errorWriter, "Fixed-width multi-precision arithmetic: evaluate, verify and calibrate.\n\n")
		fs.PrintDefaults()
		fmt.Fprintf(errorWriter, "\nEnvironment variables with the %s prefix override unset flags.\n", EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)
	config.Op = strings.ToLower(config.Op)
	config.Mode = strings.ToLower(config.Mode)
	config.Kernel = strings.ToLower(config.Kernel)
	config.Theme = strings.ToLower(config.Theme)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks semantic consistency. Operand syntax is checked later by
// the wide parsers, which know the width.
func (c AppConfig) Validate() error {
	if !slices.Contains(Ops, c.Op) {
		return apperrors.NewConfigError("unknown operation %q (valid: %s)", c.Op, strings.Join(Ops, ", "))
	}
	if !slices.Contains(Widths, c.Width) {
		return apperrors.NewConfigError("unsupported width %d (valid: 128, 256, 512, 1024)", c.Width)
	}
	if !slices.Contains(Modes, c.Mode) {
		return apperrors.NewConfigError("unknown mode %q (valid: %s)", c.Mode, strings.Join(Modes, ", "))
	}
	if !slices.Contains(Kernels, c.Kernel) {
		return apperrors.NewConfigError("unknown kernel %q (valid: %s)", c.Kernel, strings.Join(Kernels, ", "))
	}
	if !slices.Contains(Themes, c.Theme) {
		return apperrors.NewConfigError("unknown theme %q (valid: %s)", c.Theme, strings.Join(Themes, ", "))
	}
	if c.Op == "kmul" && c.Width > 256 {
		return apperrors.NewConfigError("kmul is defined for widths 128 and 256, got %d", c.Width)
	}
	if (c.Op == "shl" || c.Op == "shr") && c.Shift >= 64 {
		return apperrors.NewConfigError("shift must be in [0, 64), got %d", c.Shift)
	}
	if c.Iterations <= 0 {
		return apperrors.NewConfigError("iterations must be positive, got %d", c.Iterations)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("workers cannot be negative, got %d", c.Workers)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive")
	}
	return nil
}
