package cli

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/widearith/internal/errors"
	"github.com/agbru/widearith/internal/format"
	"github.com/agbru/widearith/internal/progress"
	"github.com/agbru/widearith/internal/sysmon"
	"github.com/agbru/widearith/internal/ui"
	"github.com/agbru/widearith/internal/verify"
)

// CLIProgressReporter implements verify.ProgressReporter with a spinner and
// progress bar.
type CLIProgressReporter struct{}

var _ verify.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for running suites.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numSuites int, out io.Writer) {
	DisplayProgress(wg, progressChan, numSuites, out)
}

// CLIResultPresenter implements verify.ResultPresenter for terminal output.
type CLIResultPresenter struct{}

var _ verify.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable prints one row per suite with its case count,
// duration and status. Padding is computed on the rendered width so the
// styled status badges do not break alignment.
func (CLIResultPresenter) PresentComparisonTable(results []verify.CheckResult, out io.Writer) {
	styles := ui.CurrentStyles()
	fmt.Fprintf(out, "\n%s\n", styles.Header.Render("--- Verification Summary ---"))

	nameW, casesW, durW := len("Suite"), len("Cases"), len("Duration")
	rows := make([][3]string, len(results))
	for i, res := range results {
		rows[i] = [3]string{res.Name, strconv.Itoa(res.Cases), formatDuration(res.Duration)}
		nameW = max(nameW, len(rows[i][0]))
		casesW = max(casesW, len(rows[i][1]))
		durW = max(durW, lipgloss.Width(rows[i][2]))
	}

	fmt.Fprintf(out, "%s%s   %s%s   %s%s   %s\n",
		underline("Suite"), padRight("", nameW-len("Suite")),
		underline("Cases"), padRight("", casesW-len("Cases")),
		underline("Duration"), padRight("", durW-len("Duration")),
		underline("Status"))

	for i, res := range results {
		var status string
		if res.Err != nil {
			status = styles.Fail.Render("FAIL") + " " + res.Err.Error()
		} else {
			status = styles.Pass.Render("PASS")
		}
		name, cases, dur := rows[i][0], rows[i][1], rows[i][2]
		fmt.Fprintf(out, "%s%s   %s%s   %s%s   %s\n",
			styles.Accent.Render(name), padRight("", nameW-len(name)),
			padRight("", casesW-len(cases)), cases,
			dur, padRight("", durW-lipgloss.Width(dur)),
			status)
	}
}

// HandleError handles verification errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}

// CLIColorProvider supplies theme colors to the error handler.
type CLIColorProvider struct{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

func underline(s string) string {
	return ui.ColorUnderline() + s + ui.ColorReset()
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// DisplayMemoryStats shows memory statistics after a run.
func DisplayMemoryStats(heapAlloc, sys uint64, numGC uint32, pauseTotalNs uint64, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", formatBytes(heapAlloc))
	fmt.Fprintf(out, "  System memory:   %s\n", formatBytes(sys))
	fmt.Fprintf(out, "  GC cycles:       %d\n", numGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(pauseTotalNs)/1e6)
}

// DisplaySystemStats shows the host load sampled at the end of a run.
func DisplaySystemStats(s sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "Host load: CPU %s%.1f%%%s, memory %s%.1f%%%s\n",
		ui.ColorCyan(), s.CPUPercent, ui.ColorReset(),
		ui.ColorCyan(), s.MemPercent, ui.ColorReset())
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
