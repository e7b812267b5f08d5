package verify

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/widearith/internal/progress"
)

// CheckResult is the outcome of one verification suite.
type CheckResult struct {
	// Name identifies the suite, e.g. "mul/256" or "vector/avx512".
	Name string
	// Cases is the number of cases that completed before the suite ended.
	Cases int
	// Duration is the wall time of the suite.
	Duration time.Duration
	// Err is nil on success, an apperrors.MismatchError on disagreement, or
	// the context error if the run was interrupted.
	Err error
}

// ProgressReporter defines the interface for displaying verification
// progress. It decouples the runner from the presentation layer.
type ProgressReporter interface {
	// DisplayProgress consumes updates until progressChan is closed, then
	// calls wg.Done.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numSuites int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numSuites int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numSuites int, out io.Writer) {
	f(wg, progressChan, numSuites, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Used in quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders suite results.
type ResultPresenter interface {
	// PresentComparisonTable displays one row per suite.
	PresentComparisonTable(results []CheckResult, out io.Writer)
	// HandleError reports a non-mismatch failure and returns its exit code.
	HandleError(err error, duration time.Duration, out io.Writer) int
}

// Recorder receives suite lifecycle events, typically to export metrics.
type Recorder interface {
	SuiteStarted(suite string)
	SuiteFinished(suite string, cases int, d time.Duration, err error)
}

// NopRecorder discards all events.
type NopRecorder struct{}

func (NopRecorder) SuiteStarted(string)                               {}
func (NopRecorder) SuiteFinished(string, int, time.Duration, error) {}
