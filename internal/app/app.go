// Package app wires configuration, calibration and the run modes together.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/widearith/internal/calibration"
	"github.com/agbru/widearith/internal/config"
	apperrors "github.com/agbru/widearith/internal/errors"
	"github.com/agbru/widearith/internal/logging"
	"github.com/agbru/widearith/internal/ui"
)

// Application represents the widearith application instance.
type Application struct {
	Config config.AppConfig
	// Profile holds the strategies in effect. ProfileLoaded is false when
	// they were estimated instead of read from a calibration profile.
	Profile       *calibration.CalibrationProfile
	ProfileLoaded bool
	Logger        logging.Logger
	ErrWriter     io.Writer
	// In feeds the REPL; nil means standard input.
	In io.Reader
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets the application logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithInput sets the reader the REPL consumes.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.In = r }
}

// New creates a new Application by parsing command-line arguments and
// installing the cached calibration profile, or estimated strategies when
// there is none.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "widearith")
	}

	programName := "widearith"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	cfg = config.ApplyAdaptiveDefaults(cfg)

	if profile, loaded := calibration.LoadCachedCalibration(cfg.CalibrationProfile); loaded {
		app.Profile, app.ProfileLoaded = profile, true
		if profile.IsStale(calibration.DefaultMaxProfileAge) {
			app.Logger.Info("calibration profile is stale, consider -mode calibrate",
				logging.String("calibrated_at", profile.CalibratedAt.String()))
		}
	} else {
		calibration.ApplyEstimates()
		app.Profile = calibration.NewProfile()
	}

	app.Config = cfg
	return app, nil
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	level := zerolog.InfoLevel
	if a.Config.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	ui.InitTheme(a.Config.Theme, a.Config.NoColor)

	if a.Config.Mode == "repl" {
		return a.runREPL(out)
	}

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	switch a.Config.Mode {
	case "calibrate":
		return a.runCalibration(ctx, out)
	case "verify", "vector":
		return a.runVerify(ctx, out)
	default:
		return a.runEval(ctx, out)
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeForError maps a construction error to an exit code.
func ExitCodeForError(err error) int {
	if IsHelpError(err) {
		return apperrors.ExitSuccess
	}
	var cfgErr apperrors.ConfigError
	if errors.As(err, &cfgErr) {
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitErrorGeneric
}
