package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/widearith/internal/format"
)

// HeaderModel renders the top bar: title, version, mode and elapsed time.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	mode      string
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version, mode string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
		mode:      mode,
	}
}

// SetDone freezes the elapsed timer.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// Elapsed returns the time since start, or the frozen duration once done.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "widearith " + h.mode
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	row := titleStyle.Render(titleText) +
		dimStyle.Render(" | ") +
		fmt.Sprintf("Elapsed: %s", format.FormatExecutionDuration(h.Elapsed()))

	gap := max(h.width-2-lipgloss.Width(row), 0)
	return headerStyle.Width(max(h.width, 0)).Render(row + spaces(gap))
}

// spaces returns n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
