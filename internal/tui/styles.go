package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/widearith/internal/ui"
)

// Style variables for the dashboard, rebuilt from the ui theme by
// initTUIStyles.
var (
	panelStyle         lipgloss.Style
	headerStyle        lipgloss.Style
	titleStyle         lipgloss.Style
	dimStyle           lipgloss.Style
	suiteNameStyle     lipgloss.Style
	barStyle           lipgloss.Style
	passStyle          lipgloss.Style
	failStyle          lipgloss.Style
	metricValueStyle   lipgloss.Style
	statusRunningStyle lipgloss.Style
	statusPausedStyle  lipgloss.Style
	cpuSparklineStyle  lipgloss.Style
	memSparklineStyle  lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds the styles from the current ui theme. Run calls it
// again after app.Run has applied InitTheme.
func initTUIStyles() {
	s := ui.CurrentStyles()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Dim.GetForeground()).
		Padding(0, 1)
	headerStyle = s.Header.Padding(0, 1)
	titleStyle = s.Header
	dimStyle = s.Dim
	suiteNameStyle = s.Accent
	barStyle = s.Accent
	passStyle = s.Pass
	failStyle = s.Fail
	metricValueStyle = s.Accent.Bold(true)
	statusRunningStyle = s.Pass
	statusPausedStyle = s.Warning.Bold(true)
	cpuSparklineStyle = s.Accent
	memSparklineStyle = s.Warning
}
