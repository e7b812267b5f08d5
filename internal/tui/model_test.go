package tui

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/widearith/internal/errors"
	"github.com/agbru/widearith/internal/progress"
	"github.com/agbru/widearith/internal/verify"
)

type fakeRunner struct {
	err error
}

func (f fakeRunner) Run(_ context.Context, suites []verify.Suite, reporter verify.ProgressReporter, out io.Writer) []verify.CheckResult {
	ch := make(chan progress.ProgressUpdate, len(suites))
	var wg sync.WaitGroup
	wg.Add(1)
	go reporter.DisplayProgress(&wg, ch, len(suites), out)
	results := make([]verify.CheckResult, len(suites))
	for i, s := range suites {
		ch <- progress.ProgressUpdate{SuiteIndex: i, Value: 1}
		results[i] = verify.CheckResult{Name: s.Name, Cases: 4, Err: f.err}
	}
	close(ch)
	wg.Wait()
	return results
}

var testSuites = []verify.Suite{{Name: "add/256", Width: 256}, {Name: "mul/512", Width: 512}}

func newTestModel(t *testing.T, runner SuiteRunner) Model {
	t.Helper()
	m := NewModel(context.Background(), testSuites, runner, "verify", "dev")
	t.Cleanup(m.cancel)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func TestStartVerificationCmd(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"pass", nil, apperrors.ExitSuccess},
		{"mismatch", apperrors.MismatchError{Operation: "add", Width: 256, Input: "0x1"}, apperrors.ExitErrorMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cmd := startVerificationCmd(&programRef{}, context.Background(), testSuites, fakeRunner{err: tt.err}, 7)
			msg, ok := cmd().(VerificationCompleteMsg)
			if !ok {
				t.Fatalf("got %T, want VerificationCompleteMsg", msg)
			}
			if msg.ExitCode != tt.want || msg.Generation != 7 {
				t.Errorf("got %+v, want exit %d generation 7", msg, tt.want)
			}
		})
	}
}

func TestModelProgressAndCompletion(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, fakeRunner{})

	updated, _ := m.Update(ProgressMsg{SuiteIndex: 1, Value: 0.5, AverageProgress: 0.25, ETA: time.Second})
	m = updated.(Model)
	if m.panel.progress[1] != 0.5 {
		t.Errorf("suite progress = %v, want 0.5", m.panel.progress[1])
	}

	updated, _ = m.Update(ResultsMsg{Results: []verify.CheckResult{{Name: "add/256", Cases: 3}, {Name: "mul/512", Cases: 3}}})
	m = updated.(Model)
	updated, _ = m.Update(VerificationCompleteMsg{ExitCode: apperrors.ExitSuccess})
	m = updated.(Model)

	if !m.done || m.exitCode != apperrors.ExitSuccess {
		t.Fatalf("done=%v exit=%d, want done with success", m.done, m.exitCode)
	}
	view := m.View()
	for _, want := range []string{"widearith verify", "add/256", "PASS", "PASSED"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelIgnoresStaleGeneration(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, fakeRunner{})
	m.generation = 2

	updated, cmd := m.Update(VerificationCompleteMsg{ExitCode: apperrors.ExitErrorMismatch, Generation: 1})
	m = updated.(Model)
	if m.done || cmd != nil {
		t.Error("stale completion should be ignored")
	}
	updated, cmd = m.Update(ContextCancelledMsg{Err: context.Canceled, Generation: 1})
	m = updated.(Model)
	if m.done || cmd != nil {
		t.Error("stale cancellation should be ignored")
	}
}

func TestModelContextCancelled(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want int
	}{
		{context.DeadlineExceeded, apperrors.ExitErrorTimeout},
		{context.Canceled, apperrors.ExitErrorCanceled},
	}
	for _, tt := range tests {
		m := newTestModel(t, fakeRunner{})
		updated, cmd := m.Update(ContextCancelledMsg{Err: tt.err})
		m = updated.(Model)
		if m.exitCode != tt.want {
			t.Errorf("%v: exit = %d, want %d", tt.err, m.exitCode, tt.want)
		}
		if cmd == nil {
			t.Errorf("%v: expected quit command", tt.err)
		}
	}
}

func TestModelKeys(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, fakeRunner{})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m = updated.(Model)
	if !m.paused || !strings.Contains(m.View(), "PAUSED") {
		t.Error("p should pause the display")
	}

	updated, _ = m.Update(ProgressMsg{SuiteIndex: 0, Value: 0.9})
	m = updated.(Model)
	if m.panel.progress[0] != 0 {
		t.Error("paused model should ignore progress")
	}

	m.done = true
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = updated.(Model)
	if m.generation != 1 || m.done || m.paused || cmd == nil {
		t.Errorf("rerun: generation=%d done=%v paused=%v", m.generation, m.done, m.paused)
	}

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = updated.(Model)
	if cmd == nil || m.exitCode != apperrors.ExitErrorCanceled {
		t.Errorf("quit while running: exit=%d", m.exitCode)
	}
	if !errors.Is(m.ctx.Err(), context.Canceled) {
		t.Error("quit should cancel the run context")
	}
}

func TestModelFailureFooter(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, fakeRunner{})
	updated, _ := m.Update(ResultsMsg{Results: []verify.CheckResult{
		{Name: "add/256", Err: errors.New("add mismatch")},
		{Name: "mul/512", Cases: 1},
	}})
	m = updated.(Model)
	updated, _ = m.Update(VerificationCompleteMsg{ExitCode: apperrors.ExitErrorMismatch})
	m = updated.(Model)
	view := m.View()
	if !strings.Contains(view, "FAILED") || !strings.Contains(view, "add mismatch") {
		t.Errorf("view should report the failure:\n%s", view)
	}
}

func TestViewBeforeResize(t *testing.T) {
	t.Parallel()
	m := NewModel(context.Background(), testSuites, fakeRunner{}, "verify", "dev")
	defer m.cancel()
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() = %q", got)
	}
}

func TestModelResourceSamples(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, fakeRunner{})
	updated, _ := m.Update(MemStatsMsg{Alloc: 3 << 20, HeapSys: 8 << 20, NumGC: 2, NumGoroutine: 5})
	m = updated.(Model)
	updated, _ = m.Update(SysStatsMsg{CPUPercent: 50, MemPercent: 25})
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{"3.0 MB", "8.0 MB", "CPU  50.0%", "MEM  25.0%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m.done = true
	if _, cmd := m.Update(TickMsg(time.Now())); cmd != nil {
		t.Error("ticks should stop once the run is done")
	}
}

type recordingRunner struct {
	mu   sync.Mutex
	seen []string
}

func (r *recordingRunner) Run(ctx context.Context, suites []verify.Suite, reporter verify.ProgressReporter, out io.Writer) []verify.CheckResult {
	r.mu.Lock()
	for _, s := range suites {
		r.seen = append(r.seen, s.Name)
	}
	r.mu.Unlock()
	return fakeRunner{}.Run(ctx, suites, reporter, out)
}

func TestInitRunsConfiguredSuites(t *testing.T) {
	t.Parallel()
	runner := &recordingRunner{}
	m := newTestModel(t, runner)

	batch, ok := m.Init()().(tea.BatchMsg)
	if !ok || len(batch) < 2 {
		t.Fatalf("Init should batch the tick, run and watch commands")
	}
	msg, ok := batch[1]().(VerificationCompleteMsg)
	if !ok || msg.ExitCode != apperrors.ExitSuccess {
		t.Fatalf("run command returned %#v", msg)
	}
	if got := strings.Join(runner.seen, ","); got != "add/256,mul/512" {
		t.Errorf("runner saw suites %q", got)
	}
}
