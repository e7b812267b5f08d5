package app

import (
	"context"
	"io"

	"github.com/agbru/widearith/internal/calibration"
	"github.com/agbru/widearith/internal/cli"
	apperrors "github.com/agbru/widearith/internal/errors"
)

// runCalibration times the strategies, installs the winners and saves the
// profile.
func (a *Application) runCalibration(ctx context.Context, out io.Writer) int {
	path := a.Config.CalibrationProfile
	if path == "" {
		path = calibration.GetDefaultProfilePath()
	}
	opts := calibration.Options{
		Iterations:  calibration.IterationBudget(false),
		ProfilePath: path,
		Logger:      a.Logger,
		Out:         out,
		Progress:    cli.DisplayProgress,
	}
	if a.Config.Quiet {
		opts.Out, opts.Progress = io.Discard, nil
	}

	profile, err := calibration.RunCalibration(ctx, opts)
	if err != nil {
		return cli.CLIResultPresenter{}.HandleError(err, 0, a.ErrWriter)
	}
	a.Profile, a.ProfileLoaded = profile, true
	if !a.Config.Quiet {
		calibration.PrintProfileSummary(profile, "saved to "+path, out)
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive session. It has no timeout.
func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(cli.REPLConfig{Width: a.Config.Width, Decimal: a.Config.Decimal})
	if a.In != nil {
		repl.SetInput(a.In)
	}
	repl.SetOutput(out)
	if a.Config.Verbose {
		source := "estimated"
		if a.ProfileLoaded {
			source = "cached profile"
		}
		calibration.PrintProfileSummary(a.Profile, source, out)
	}
	repl.Start()
	return apperrors.ExitSuccess
}
