// Package calibration times the alternative multiplication strategies and
// vector kernels on the current host and persists the winners in a profile.
package calibration

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/widearith/internal/logging"
	"github.com/agbru/widearith/internal/progress"
	"github.com/agbru/widearith/internal/simd"
	"github.com/agbru/widearith/internal/wide"
)

var tracer = otel.Tracer("github.com/agbru/widearith/internal/calibration")

// ctxCheckInterval is how many operations run between context checks.
const ctxCheckInterval = 1024

// operandPool is the number of distinct operands cycled through while
// timing, so the loop does not multiply the same values every time.
const operandPool = 64

// ProgressDisplay renders progress updates until the channel is closed and
// then calls wg.Done. cli.DisplayProgress satisfies it.
type ProgressDisplay func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numTasks int, out io.Writer)

// Options configures RunCalibration.
type Options struct {
	// Iterations per candidate; IterationBudget(false) when zero.
	Iterations int
	// ProfilePath receives the resulting profile. Empty skips saving.
	ProfilePath string
	Logger      logging.Logger
	Out         io.Writer
	// Progress is optional.
	Progress ProgressDisplay
}

type calibrationResult struct {
	Task      string
	Candidate string
	Duration  time.Duration
	Err       error
}

type candidate struct {
	task, name string
	run        func(ctx context.Context, n int, report func(float64)) error
}

// sink keeps the timed loops from being optimized away.
var sink uint64

// RunCalibration times every candidate, installs the fastest multiplication
// strategy per width and returns a profile describing the outcome. A
// canceled context aborts the run without changing any strategy.
func RunCalibration(ctx context.Context, opts Options) (*CalibrationProfile, error) {
	if opts.Iterations <= 0 {
		opts.Iterations = IterationBudget(false)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger(io.Discard, "calibration")
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}

	ctx, span := tracer.Start(ctx, "calibration.run")
	defer span.End()
	span.SetAttributes(attribute.Int("iterations", opts.Iterations))

	candidates := buildCandidates()
	progressChan := make(chan progress.ProgressUpdate, len(candidates))
	var displayWg sync.WaitGroup
	display := opts.Progress
	if display == nil {
		display = drainProgress
	}
	displayWg.Add(1)
	go display(&displayWg, progressChan, len(candidates), opts.Out)

	start := time.Now()
	results := make([]calibrationResult, 0, len(candidates))
	var runErr error
	for i, c := range candidates {
		report := func(v float64) {
			select {
			case progressChan <- progress.ProgressUpdate{SuiteIndex: i, Value: v}:
			default:
			}
		}
		res := calibrationResult{Task: c.task, Candidate: c.name}
		t0 := time.Now()
		res.Err = c.run(ctx, opts.Iterations, report)
		res.Duration = time.Since(t0)
		results = append(results, res)
		if res.Err != nil {
			runErr = res.Err
			break
		}
		progressChan <- progress.ProgressUpdate{SuiteIndex: i, Value: 1}
		opts.Logger.Debug("candidate timed",
			logging.String("task", c.task),
			logging.String("candidate", c.name),
			logging.Duration("duration", res.Duration))
	}
	close(progressChan)
	displayWg.Wait()

	if runErr != nil {
		span.RecordError(runErr)
		span.SetStatus(codes.Error, runErr.Error())
		return nil, runErr
	}

	best := bestPerTask(results)
	for _, w := range wide.KaratsubaWidths {
		name, ok := best[fmt.Sprintf("mul/%d", w)]
		if !ok {
			continue
		}
		s, err := wide.ParseMulStrategy(name)
		if err != nil {
			return nil, err
		}
		if err := wide.SetMulStrategy(w, s); err != nil {
			return nil, err
		}
	}

	profile := NewProfile()
	if k, ok := best["vector"]; ok {
		profile.PreferredKernel = k
	}
	profile.CalibrationIterations = opts.Iterations
	profile.CalibrationTime = time.Since(start).Round(time.Millisecond).String()

	printCalibrationResults(opts.Out, results, best)
	span.SetAttributes(
		attribute.String("mul128", profile.MulStrategy128),
		attribute.String("mul256", profile.MulStrategy256),
		attribute.String("kernel", profile.PreferredKernel),
	)

	if opts.ProfilePath != "" {
		if err := profile.SaveProfile(opts.ProfilePath); err != nil {
			opts.Logger.Error("saving calibration profile", err, logging.String("path", opts.ProfilePath))
			return profile, err
		}
		opts.Logger.Info("calibration profile saved", logging.String("path", opts.ProfilePath))
	}
	return profile, nil
}

func drainProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}

// bestPerTask maps each task to its fastest successful candidate.
func bestPerTask(results []calibrationResult) map[string]string {
	best := make(map[string]string)
	fastest := make(map[string]time.Duration)
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if d, ok := fastest[r.Task]; !ok || r.Duration < d {
			fastest[r.Task] = r.Duration
			best[r.Task] = r.Candidate
		}
	}
	return best
}

func buildCandidates() []candidate {
	var cs []candidate
	for _, w := range wide.KaratsubaWidths {
		ops, err := wide.OpsFor(w)
		if err != nil {
			continue
		}
		task := fmt.Sprintf("mul/%d", w)
		cs = append(cs,
			candidate{task, wide.MulSchoolbook.String(), mulLoop(ops, ops.MulWide)},
			candidate{task, wide.MulKaratsuba.String(), mulLoop(ops, ops.MulKaratsuba)},
		)
	}
	for _, k := range CandidateKernels() {
		cs = append(cs, candidate{"vector", k.Name(), kernelLoop(k)})
	}
	return cs
}

func mulLoop(ops *wide.Ops, mul func(a, b []uint64) []uint64) func(context.Context, int, func(float64)) error {
	return func(ctx context.Context, n int, report func(float64)) error {
		r := rand.New(rand.NewPCG(uint64(ops.Width), 0x9e3779b97f4a7c15))
		pool := make([][]uint64, operandPool)
		for i := range pool {
			pool[i] = make([]uint64, ops.Limbs)
			for j := range pool[i] {
				pool[i][j] = r.Uint64()
			}
		}
		var acc uint64
		for i := 0; i < n; i++ {
			if i%ctxCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
				report(float64(i) / float64(n))
			}
			p := mul(pool[i%operandPool], pool[(i+1)%operandPool])
			acc ^= p[0]
		}
		sink ^= acc
		return nil
	}
}

func kernelLoop(k simd.Kernel) func(context.Context, int, func(float64)) error {
	return func(ctx context.Context, n int, report func(float64)) error {
		r := rand.New(rand.NewPCG(8, 0x9e3779b97f4a7c15))
		var a, b simd.Vec8
		for i := range a {
			a[i], b[i] = r.Uint64(), r.Uint64()&63
		}
		for i := 0; i < n; i++ {
			if i%ctxCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
				report(float64(i) / float64(n))
			}
			a = k.Add(k.Xor(a, b), k.ShlVar(a, b))
			a = k.Min(a, k.Permute(a, b))
		}
		sink ^= a[0]
		return nil
	}
}
