package tui

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/widearith/internal/errors"
	"github.com/agbru/widearith/internal/metrics"
	"github.com/agbru/widearith/internal/sysmon"
	"github.com/agbru/widearith/internal/verify"
)

// SuiteRunner runs verification suites. *verify.Runner satisfies it.
type SuiteRunner interface {
	Run(ctx context.Context, suites []verify.Suite, reporter verify.ProgressReporter, out io.Writer) []verify.CheckResult
}

// ExecutionState holds the execution-related fields of a dashboard session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	suites     []verify.Suite
	runner     SuiteRunner
	generation uint64
	done       bool
	failed     bool
	exitCode   int
}

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

// Layout constants for the dashboard.
const (
	headerHeight       = 1
	footerHeight       = 1
	minBodyHeight      = 4
	MetricsPanelHeight = 5
)

func (l LayoutManager) bodyHeight() int {
	return max(l.height-headerHeight-footerHeight, minBodyHeight)
}

func (l LayoutManager) suitesHeight() int {
	return max(l.bodyHeight()-MetricsPanelHeight, minBodyHeight/2)
}

// Model is the root bubbletea model for the verification dashboard.
type Model struct {
	header  HeaderModel
	panel   SuitesModel
	metrics MetricsModel
	help    help.Model

	keymap KeyMap

	ExecutionState
	LayoutManager

	parentCtx context.Context
	ref       *programRef
	paused    bool
}

// NewModel creates a dashboard for the given suites.
func NewModel(parentCtx context.Context, suites []verify.Suite, runner SuiteRunner, mode, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)
	return Model{
		header:  NewHeaderModel(version, mode),
		panel:   NewSuitesModel(suites),
		metrics: NewMetricsModel(),
		help:    help.New(),
		keymap:  DefaultKeyMap(),
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			suites:   suites,
			runner:   runner,
			exitCode: apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		ref:       &programRef{},
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return m.startCmds()
}

func (m Model) startCmds() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startVerificationCmd(m.ref, m.ctx, m.suites, m.runner, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case ProgressMsg:
		if !m.paused {
			m.panel.Update(msg)
		}
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case ResultsMsg:
		m.panel.SetResults(msg.Results)
		m.failed = m.panel.Failed()
		return m, nil

	case ErrorMsg:
		m.failed = true
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		if !m.paused {
			return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())
		}
		return m, tickCmd()

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.metrics.UpdateSysStats(msg)
		return m, nil

	case VerificationCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.failed = m.failed || msg.ExitCode != apperrors.ExitSuccess
		m.header.SetDone()
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		if !m.done {
			m.exitCode = exitCodeForContext(msg.Err)
		}
		m.done = true
		m.header.SetDone()
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if !m.done {
			m.exitCode = apperrors.ExitErrorCanceled
		}
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		return m, nil

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		m.cancel()

		m.generation++
		m.ctx, m.cancel = context.WithCancel(m.parentCtx)

		m.header.Reset()
		m.panel.Reset()
		m.metrics = NewMetricsModel()
		m.layoutPanels()
		m.done = false
		m.failed = false
		m.paused = false
		m.exitCode = apperrors.ExitSuccess
		return m, m.startCmds()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	body := lipgloss.JoinVertical(lipgloss.Left, m.panel.View(), m.metrics.View())
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footerView())
}

func (m Model) footerView() string {
	var status string
	switch {
	case m.done && m.failed:
		status = failStyle.Render("FAILED")
	case m.done:
		status = passStyle.Render("PASSED")
	case m.paused:
		status = statusPausedStyle.Render("PAUSED")
	default:
		status = statusRunningStyle.Render("RUNNING")
	}
	return status + "  " + m.help.View(m.keymap)
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.help.Width = m.width
	m.panel.SetSize(m.width, m.suitesHeight())
	m.metrics.SetSize(m.width, MetricsPanelHeight)
}

func exitCodeForContext(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.ExitErrorTimeout
	}
	return apperrors.ExitErrorCanceled
}

// Run starts the dashboard, runs the suites and returns the exit code.
func Run(ctx context.Context, suites []verify.Suite, runner SuiteRunner, mode, version string) int {
	initTUIStyles()

	model := NewModel(ctx, suites, runner, mode, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	// Set before Run so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if m, ok := finalModel.(Model); ok {
		m.cancel()
		if !m.done && ctx.Err() != nil {
			return exitCodeForContext(ctx.Err())
		}
		return m.exitCode
	}
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return exitCodeForContext(ctx.Err())
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// startVerificationCmd runs the suites and reports the exit code.
func startVerificationCmd(ref *programRef, ctx context.Context, suites []verify.Suite, runner SuiteRunner, gen uint64) tea.Cmd {
	return func() tea.Msg {
		results := runner.Run(ctx, suites, &TUIProgressReporter{ref: ref}, io.Discard)
		exitCode := verify.AnalyzeResults(results, &TUIResultPresenter{ref: ref}, io.Discard)
		return VerificationCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		snap := metrics.NewMemoryCollector().Snapshot()
		return MemStatsMsg{
			Alloc:        snap.HeapAlloc,
			HeapSys:      snap.HeapSys,
			NumGC:        snap.NumGC,
			NumGoroutine: snap.Goroutines,
		}
	}
}

func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{CPUPercent: s.CPUPercent, MemPercent: s.MemPercent}
	}
}

// watchContextCmd waits for the run context to end.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
