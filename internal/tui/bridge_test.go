package tui

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/widearith/internal/errors"
	"github.com/agbru/widearith/internal/progress"
	"github.com/agbru/widearith/internal/verify"
)

type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) {
	r.mu.Lock()
	r.msgs = append(r.msgs, msg)
	r.mu.Unlock()
}

func (r *recordingSender) messages() []tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]tea.Msg(nil), r.msgs...)
}

func TestProgramRefDropsWithoutProgram(t *testing.T) {
	t.Parallel()
	var ref programRef
	ref.Send(TickMsg(time.Now()))
}

func TestTUIProgressReporter(t *testing.T) {
	t.Parallel()
	rec := &recordingSender{}
	reporter := &TUIProgressReporter{ref: rec}

	ch := make(chan progress.ProgressUpdate, 2)
	ch <- progress.ProgressUpdate{SuiteIndex: 0, Value: 0.5}
	ch <- progress.ProgressUpdate{SuiteIndex: 1, Value: 1}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	reporter.DisplayProgress(&wg, ch, 2, io.Discard)
	wg.Wait()

	msgs := rec.messages()
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3", len(msgs))
	}
	last, ok := msgs[1].(ProgressMsg)
	if !ok {
		t.Fatalf("msgs[1] = %T, want ProgressMsg", msgs[1])
	}
	if last.SuiteIndex != 1 || last.AverageProgress != 0.75 {
		t.Errorf("got %+v, want suite 1 with average 0.75", last)
	}
	if _, ok := msgs[2].(ProgressDoneMsg); !ok {
		t.Errorf("msgs[2] = %T, want ProgressDoneMsg", msgs[2])
	}
}

func TestTUIProgressReporterZeroSuites(t *testing.T) {
	t.Parallel()
	rec := &recordingSender{}
	ch := make(chan progress.ProgressUpdate, 1)
	ch <- progress.ProgressUpdate{}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	(&TUIProgressReporter{ref: rec}).DisplayProgress(&wg, ch, 0, io.Discard)
	wg.Wait()

	msgs := rec.messages()
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
}

func TestTUIResultPresenter(t *testing.T) {
	t.Parallel()
	rec := &recordingSender{}
	p := &TUIResultPresenter{ref: rec}

	results := []verify.CheckResult{{Name: "add/256", Cases: 10}}
	p.PresentComparisonTable(results, io.Discard)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"timeout", context.DeadlineExceeded, apperrors.ExitErrorTimeout},
		{"generic", errors.New("boom"), apperrors.ExitErrorGeneric},
	}
	for _, tt := range tests {
		if got := p.HandleError(tt.err, time.Second, io.Discard); got != tt.want {
			t.Errorf("%s: HandleError = %d, want %d", tt.name, got, tt.want)
		}
	}

	msgs := rec.messages()
	if rm, ok := msgs[0].(ResultsMsg); !ok || len(rm.Results) != 1 {
		t.Errorf("msgs[0] = %#v, want ResultsMsg with one result", msgs[0])
	}
	if _, ok := msgs[1].(ErrorMsg); !ok {
		t.Errorf("msgs[1] = %T, want ErrorMsg", msgs[1])
	}
}
