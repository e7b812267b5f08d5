package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/agbru/widearith/internal/cli"
	apperrors "github.com/agbru/widearith/internal/errors"
	"github.com/agbru/widearith/internal/logging"
	"github.com/agbru/widearith/internal/metrics"
	"github.com/agbru/widearith/internal/server"
	"github.com/agbru/widearith/internal/simd"
	"github.com/agbru/widearith/internal/sysmon"
	"github.com/agbru/widearith/internal/tui"
	"github.com/agbru/widearith/internal/ui"
	"github.com/agbru/widearith/internal/verify"
)

// metricsNamespace prefixes every exported verification metric.
const metricsNamespace = "widearith"

// runVerify cross-checks the implementations. Vector mode on a host
// without AVX-512 prints a notice and succeeds: there is nothing to compare.
func (a *Application) runVerify(ctx context.Context, out io.Writer) int {
	kernel, err := simd.Select(a.Config.Kernel)
	switch {
	case errors.Is(err, simd.ErrUnsupported):
		a.Logger.Debug("hardware kernel unavailable", logging.String("kernel", a.Config.Kernel))
		kernel = nil
	case err != nil:
		return cli.CLIResultPresenter{}.HandleError(apperrors.NewConfigError("%v", err), 0, a.ErrWriter)
	}

	suites, err := verify.SelectSuites(a.Config, verify.DefaultOracle(), kernel)
	if errors.Is(err, simd.ErrUnsupported) {
		if !a.Config.Quiet {
			fmt.Fprintf(out, "%sSkipping vector verification%s: no AVX-512 kernel on this host (%s).\n",
				ui.ColorYellow(), ui.ColorReset(), simd.GetCPUFeatures())
		}
		return apperrors.ExitSuccess
	}
	if err != nil {
		return cli.CLIResultPresenter{}.HandleError(err, 0, a.ErrWriter)
	}

	recorder := metrics.NewVerification(metricsNamespace)
	if a.Config.MetricsAddr != "" {
		stop, err := a.startMetricsServer(ctx, recorder)
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "Error starting metrics server: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		defer stop()
	}

	runner := verify.NewRunner(verify.Options{
		Iterations: a.Config.Iterations,
		Workers:    a.Config.Workers,
		Seed:       a.Config.Seed,
	}, recorder, a.Logger)
	if a.Config.TUI {
		return tui.Run(ctx, suites, runner, a.Config.Mode, Version)
	}

	kernelName := simd.Scalar().Name()
	if kernel != nil {
		kernelName = kernel.Name()
	}
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, kernelName, out)
		cli.PrintExecutionMode(suites, out)
	}

	var reporter verify.ProgressReporter = cli.CLIProgressReporter{}
	progressOut, tableOut := out, out
	if a.Config.Quiet {
		reporter = verify.NullProgressReporter{}
		progressOut, tableOut = io.Discard, io.Discard
	}

	mem := metrics.NewMemoryCollector()
	before := mem.Snapshot()
	results := runner.Run(ctx, suites, reporter, progressOut)

	code := verify.AnalyzeResults(results, cli.CLIResultPresenter{}, tableOut)
	if a.Config.Quiet && code != apperrors.ExitSuccess {
		cli.CLIResultPresenter{}.HandleError(firstError(results), 0, a.ErrWriter)
	}

	if err := cli.WriteReportToFile(results, a.Config.Output); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving report: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if a.Config.Verbose && !a.Config.Quiet {
		printRunStats(mem.Snapshot().Since(before), out)
	}
	return code
}

// startMetricsServer serves the verification metrics until ctx ends or the
// returned stop func is called.
func (a *Application) startMetricsServer(ctx context.Context, recorder *metrics.Verification) (func(), error) {
	srv, err := server.New(a.Config.MetricsAddr, a.Logger, recorder.Collectors()...)
	if err != nil {
		return nil, err
	}
	if _, err := srv.Start(ctx); err != nil {
		return nil, err
	}
	return func() {
		if err := srv.Shutdown(); err != nil {
			a.Logger.Error("metrics server shutdown", err)
		}
	}, nil
}

// printRunStats shows the memory gauges after the run and the GC work
// done during it.
func printRunStats(snap metrics.MemorySnapshot, out io.Writer) {
	cli.DisplayMemoryStats(snap.HeapAlloc, snap.Sys, snap.NumGC, snap.PauseTotalNs, out)
	cli.DisplaySystemStats(sysmon.Sample(), out)
	fmt.Fprintf(out, "Goroutines at exit: %d\n", snap.Goroutines)
}

func firstError(results []verify.CheckResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
