package verify

import (
	"time"

	"github.com/agbru/widearith/internal/format"
	"github.com/agbru/widearith/internal/progress"
)

// ProgressAggregator folds per-suite updates into one average with an ETA.
// Progress reporters share it so the CLI and the dashboard agree.
type ProgressAggregator struct {
	state *format.ProgressWithETA
}

// NewProgressAggregator creates an aggregator for numSuites suites, or
// returns nil when there is nothing to aggregate.
func NewProgressAggregator(numSuites int) *ProgressAggregator {
	if numSuites <= 0 {
		return nil
	}
	return &ProgressAggregator{state: format.NewProgressWithETA(numSuites)}
}

// AggregatedProgress is one update together with the run-wide view.
type AggregatedProgress struct {
	SuiteIndex      int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// Update records an update and returns the new aggregate.
func (a *ProgressAggregator) Update(update progress.ProgressUpdate) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(update.SuiteIndex, update.Value)
	return AggregatedProgress{
		SuiteIndex:      update.SuiteIndex,
		Value:           update.Value,
		AverageProgress: avg,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average without recording anything.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current estimate, for refreshes between updates.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// DrainChannel discards updates until progressChan is closed.
func DrainChannel(progressChan <-chan progress.ProgressUpdate) {
	for range progressChan {
	}
}
