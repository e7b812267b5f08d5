package tui

import (
	"time"

	"github.com/agbru/widearith/internal/verify"
)

// ProgressMsg carries one suite's progress and the run average.
type ProgressMsg struct {
	SuiteIndex      int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// ProgressDoneMsg signals that the progress channel was closed.
type ProgressDoneMsg struct{}

// ResultsMsg carries the per-suite results once the run ends.
type ResultsMsg struct {
	Results []verify.CheckResult
}

// ErrorMsg reports the first failure of a run.
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// VerificationCompleteMsg is sent when a run finishes. Generation lets the
// model ignore runs it has already restarted.
type VerificationCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg is sent when the run context ends.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}

// TickMsg drives the periodic resource sampling.
type TickMsg time.Time

// MemStatsMsg is a runtime memory sample.
type MemStatsMsg struct {
	Alloc        uint64
	HeapSys      uint64
	NumGC        uint32
	NumGoroutine int
}

// SysStatsMsg is a host CPU and memory sample, both in percent.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}
