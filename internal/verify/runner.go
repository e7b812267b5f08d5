package verify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/widearith/internal/errors"
	"github.com/agbru/widearith/internal/logging"
	"github.com/agbru/widearith/internal/progress"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel, per suite.
const ProgressBufferMultiplier = 5

// progressSteps is the number of intermediate updates a suite emits.
const progressSteps = 100

// ctxCheckInterval is how many cases a worker runs between context checks.
const ctxCheckInterval = 64

var tracer = otel.Tracer("github.com/agbru/widearith/internal/verify")

// Options controls how a run is split up.
type Options struct {
	// Iterations is the number of cases per suite.
	Iterations int
	// Workers is the number of goroutines per suite.
	Workers int
	// Seed selects the random operands.
	Seed int64
}

// Runner executes suites.
type Runner struct {
	opts     Options
	recorder Recorder
	logger   logging.Logger
}

// NewRunner creates a runner. A nil recorder or logger disables that output.
func NewRunner(opts Options, recorder Recorder, logger logging.Logger) *Runner {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if recorder == nil {
		recorder = NopRecorder{}
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Runner{opts: opts, recorder: recorder, logger: logger}
}

// Run executes the suites one after another, each spread over the
// configured workers, and returns one result per suite in input order.
// Suites not reached before ctx ends report the context error.
func (r *Runner) Run(ctx context.Context, suites []Suite, reporter ProgressReporter, out io.Writer) []CheckResult {
	results := make([]CheckResult, len(suites))
	progressChan := make(chan progress.ProgressUpdate, len(suites)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(suites), out)

	for i, s := range suites {
		if err := ctx.Err(); err != nil {
			results[i] = CheckResult{Name: s.Name, Err: err}
			continue
		}
		results[i] = r.runSuite(ctx, i, s, progressChan)
	}

	close(progressChan)
	displayWg.Wait()
	return results
}

func (r *Runner) runSuite(ctx context.Context, idx int, s Suite, progressChan chan<- progress.ProgressUpdate) CheckResult {
	ctx, span := tracer.Start(ctx, "verify.suite")
	defer span.End()
	span.SetAttributes(
		attribute.String("suite", s.Name),
		attribute.Int("width", s.Width),
		attribute.Int("iterations", r.opts.Iterations),
		attribute.Int("workers", r.opts.Workers),
	)

	r.recorder.SuiteStarted(s.Name)
	r.logger.Debug("suite started", logging.String("suite", s.Name), logging.Int("iterations", r.opts.Iterations))

	n := r.opts.Iterations
	workers := min(r.opts.Workers, max(n, 1))
	step := max(n/progressSteps, 1)
	var done atomic.Int64

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			src := newSource(r.opts.Seed, idx)
			for i, k := w, 0; i < n; i, k = i+workers, k+1 {
				if k%ctxCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				src.reset(i)
				if err := s.Check(src); err != nil {
					return err
				}
				if c := done.Add(1); c%int64(step) == 0 {
					select {
					case progressChan <- progress.ProgressUpdate{SuiteIndex: idx, Value: float64(c) / float64(n)}:
					default:
					}
				}
			}
			return nil
		})
	}
	err := g.Wait()
	elapsed := time.Since(start)
	cases := int(done.Load())

	if err == nil {
		progressChan <- progress.ProgressUpdate{SuiteIndex: idx, Value: 1}
	}

	r.recorder.SuiteFinished(s.Name, cases, elapsed, err)
	span.SetAttributes(attribute.Int("cases", cases))
	switch {
	case apperrors.IsContextError(err):
		span.SetStatus(codes.Error, err.Error())
		r.logger.Debug("suite interrupted", logging.String("suite", s.Name), logging.Int("cases", cases))
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.Error("suite failed", err, logging.String("suite", s.Name), logging.Int("cases", cases))
	default:
		r.logger.Debug("suite passed", logging.String("suite", s.Name), logging.Int("cases", cases),
			logging.Duration("elapsed", elapsed))
	}
	return CheckResult{Name: s.Name, Cases: cases, Duration: elapsed, Err: err}
}

// AnalyzeResults presents the results and returns the exit code: success
// when every suite passed, ExitErrorMismatch when any implementation
// disagreed, and the presenter's code for other failures.
func AnalyzeResults(results []CheckResult, presenter ResultPresenter, out io.Writer) int {
	presenter.PresentComparisonTable(results, out)

	var firstErr error
	totalCases := 0
	for _, res := range results {
		totalCases += res.Cases
		var mm apperrors.MismatchError
		if errors.As(res.Err, &mm) {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %s disagrees with the reference (%s).\n", mm.Operation, mm.Input)
			return apperrors.ExitErrorMismatch
		}
		if res.Err != nil && firstErr == nil {
			firstErr = res.Err
		}
	}
	if firstErr != nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. Verification did not complete.\n")
		return presenter.HandleError(firstErr, 0, out)
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. %d suites, %d cases, no mismatch.\n", len(results), totalCases)
	return apperrors.ExitSuccess
}
