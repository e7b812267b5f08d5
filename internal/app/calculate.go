package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/widearith/internal/cli"
	apperrors "github.com/agbru/widearith/internal/errors"
	"github.com/agbru/widearith/internal/logging"
	"github.com/agbru/widearith/internal/simd"
	"github.com/agbru/widearith/internal/wide"
)

// runEval evaluates a single operation on the configured operands.
func (a *Application) runEval(ctx context.Context, out io.Writer) int {
	presenter := cli.CLIResultPresenter{}
	if err := ctx.Err(); err != nil {
		return presenter.HandleError(err, 0, a.ErrWriter)
	}

	ops, err := wide.OpsFor(a.Config.Width)
	if err != nil {
		return presenter.HandleError(err, 0, a.ErrWriter)
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, simd.Best().Name(), out)
	}

	start := time.Now()
	res, err := ops.Eval(a.Config.Op, a.Config.A, a.Config.B, a.Config.Shift)
	duration := time.Since(start)
	if err != nil {
		return presenter.HandleError(err, duration, a.ErrWriter)
	}
	a.Logger.Debug("evaluated",
		logging.String("op", a.Config.Op),
		logging.Int("width", a.Config.Width),
		logging.Duration("duration", duration))

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.Output,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		Decimal:    a.Config.Decimal,
	}
	if err := cli.DisplayResultWithConfig(out, res, duration, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
