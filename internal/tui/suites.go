package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/agbru/widearith/internal/format"
	"github.com/agbru/widearith/internal/verify"
)

const (
	// minBarWidth keeps progress bars readable on narrow terminals.
	minBarWidth = 10
	maxBarWidth = 40
	// panelChrome is the border plus horizontal padding of panelStyle.
	panelChrome = 4
)

// SuitesModel renders one row per suite: name, progress bar and status.
type SuitesModel struct {
	names    []string
	progress []float64
	results  []verify.CheckResult
	average  float64
	eta      string
	width    int
	height   int
}

// NewSuitesModel creates the panel for the given suites.
func NewSuitesModel(suites []verify.Suite) SuitesModel {
	names := make([]string, len(suites))
	for i, s := range suites {
		names[i] = s.Name
	}
	return SuitesModel{names: names, progress: make([]float64, len(suites))}
}

// SetSize updates the panel dimensions.
func (s *SuitesModel) SetSize(w, h int) {
	s.width, s.height = w, h
}

// Update records a progress message.
func (s *SuitesModel) Update(msg ProgressMsg) {
	if msg.SuiteIndex >= 0 && msg.SuiteIndex < len(s.progress) {
		s.progress[msg.SuiteIndex] = msg.Value
	}
	s.average = msg.AverageProgress
	s.eta = format.FormatETA(msg.ETA)
}

// SetResults records the final results.
func (s *SuitesModel) SetResults(results []verify.CheckResult) {
	s.results = results
	for i, r := range results {
		if i < len(s.progress) && r.Err == nil {
			s.progress[i] = 1
		}
	}
}

// Failed reports whether any recorded result is a failure.
func (s SuitesModel) Failed() bool {
	for _, r := range s.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Reset clears progress and results for a rerun.
func (s *SuitesModel) Reset() {
	clear(s.progress)
	s.results = nil
	s.average = 0
	s.eta = ""
}

// View renders the panel. Each row fits the inner panel width: the bar
// shrinks first, then failure text is cut to the columns left over.
func (s SuitesModel) View() string {
	nameW := 0
	for _, n := range s.names {
		nameW = max(nameW, lipgloss.Width(n))
	}
	// border and padding take two columns per side; the percent column
	// and three separators take nine more.
	avail := s.width - panelChrome - nameW - 9
	statusW := s.statusWidth()
	barW := min(max(avail-statusW, minBarWidth), maxBarWidth)
	statusW = max(avail-barW, 0)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  ETA %s\n", titleStyle.Render("Suites"),
		format.ProgressBar(s.average, barW/2), s.eta)
	for i, name := range s.names {
		fmt.Fprintf(&b, "%s%s %s %5.1f%% %s\n",
			suiteNameStyle.Render(name), spaces(nameW-lipgloss.Width(name)),
			barStyle.Render(format.ProgressBar(s.progress[i], barW)),
			s.progress[i]*100, s.status(i, statusW))
	}
	return panelStyle.Width(max(s.width-2, 0)).Height(max(s.height-2, 0)).
		Render(strings.TrimRight(b.String(), "\n"))
}

// statusWidth is the widest status that is never truncated: "running" or a
// PASS line.
func (s SuitesModel) statusWidth() int {
	w := lipgloss.Width("running")
	for i, r := range s.results {
		if r.Err == nil {
			w = max(w, lipgloss.Width(s.status(i, 0)))
		}
	}
	return w
}

// status renders the status column for suite i. Failure messages are cut to
// w columns; w <= 0 disables the cut.
func (s SuitesModel) status(i, w int) string {
	if i >= len(s.results) {
		return dimStyle.Render("running")
	}
	r := s.results[i]
	if r.Err != nil {
		msg := strings.Join(strings.Fields(r.Err.Error()), " ")
		if w > 0 {
			msg = ansi.Truncate(msg, max(w-len("FAIL "), 0), "...")
		}
		return failStyle.Render("FAIL") + " " + msg
	}
	return passStyle.Render("PASS") + dimStyle.Render(fmt.Sprintf(" %d cases", r.Cases))
}
