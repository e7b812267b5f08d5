package tui

import (
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/widearith/internal/errors"
	"github.com/agbru/widearith/internal/progress"
	"github.com/agbru/widearith/internal/verify"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe). Messages
// sent before SetProgram are dropped.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// sender is the part of programRef the bridge needs; tests substitute a
// recorder.
type sender interface {
	Send(msg tea.Msg)
}

// TUIProgressReporter forwards verification progress as ProgressMsg.
type TUIProgressReporter struct {
	ref sender
}

var _ verify.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress drains the progress channel and sends ProgressMsg to the
// dashboard, then ProgressDoneMsg.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numSuites int, _ io.Writer) {
	defer wg.Done()
	defer t.ref.Send(ProgressDoneMsg{})

	agg := verify.NewProgressAggregator(numSuites)
	if agg == nil {
		verify.DrainChannel(progressChan)
		return
	}
	for update := range progressChan {
		p := agg.Update(update)
		t.ref.Send(ProgressMsg{
			SuiteIndex:      p.SuiteIndex,
			Value:           p.Value,
			AverageProgress: p.AverageProgress,
			ETA:             p.ETA,
		})
	}
}

// TUIResultPresenter sends results to the dashboard instead of writing
// them out.
type TUIResultPresenter struct {
	ref sender
}

var _ verify.ResultPresenter = (*TUIResultPresenter)(nil)

// PresentComparisonTable sends the results to the dashboard.
func (t *TUIResultPresenter) PresentComparisonTable(results []verify.CheckResult, _ io.Writer) {
	t.ref.Send(ResultsMsg{Results: results})
}

// HandleError sends an error message to the dashboard and returns the exit
// code.
func (t *TUIResultPresenter) HandleError(err error, duration time.Duration, _ io.Writer) int {
	t.ref.Send(ErrorMsg{Err: err, Duration: duration})
	return apperrors.HandleCalculationError(err, duration, io.Discard, plainColors{})
}

// plainColors satisfies apperrors.ColorProvider for discarded output.
type plainColors struct{}

func (plainColors) Red() string    { return "" }
func (plainColors) Yellow() string { return "" }
func (plainColors) Reset() string  { return "" }
