package calibration

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/agbru/widearith/internal/format"
	"github.com/agbru/widearith/internal/ui"
)

// printCalibrationResults formats and prints the calibration results table.
func printCalibrationResults(out io.Writer, results []calibrationResult, best map[string]string) {
	fmt.Fprintf(out, "\n%s\n", ui.CurrentStyles().Header.Render("--- Calibration Summary ---"))
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sTask%s\t%sCandidate%s\t│ %sExecution Time%s\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())
	fmt.Fprintf(tw, "  %s\t%s\t┼%s\n", strings.Repeat("─", 8), strings.Repeat("─", 10), strings.Repeat("─", 25))
	for _, res := range results {
		durationStr := fmt.Sprintf("%sN/A%s", ui.ColorRed(), ui.ColorReset())
		if res.Err == nil {
			durationStr = format.FormatExecutionDuration(res.Duration)
			if res.Duration == 0 {
				durationStr = "< 1µs"
			}
		}
		highlight := ""
		if best[res.Task] == res.Candidate && res.Err == nil {
			highlight = fmt.Sprintf(" %s(Optimal)%s", ui.ColorGreen(), ui.ColorReset())
		}
		fmt.Fprintf(tw, "  %s%s%s\t%s\t│ %s%s%s%s\n",
			ui.ColorCyan(), res.Task, ui.ColorReset(), res.Candidate,
			ui.ColorYellow(), durationStr, ui.ColorReset(), highlight)
	}
	tw.Flush()
}

// PrintProfileSummary prints the strategies a loaded or fresh profile
// installs.
// source says where the strategies came from, e.g. "cached profile".
func PrintProfileSummary(p *CalibrationProfile, source string, out io.Writer) {
	fmt.Fprintf(out, "%sCalibration%s (%s): mul128=%s%s%s, mul256=%s%s%s, kernel=%s%s%s\n",
		ui.ColorGreen(), ui.ColorReset(), source,
		ui.ColorYellow(), p.MulStrategy128, ui.ColorReset(),
		ui.ColorYellow(), p.MulStrategy256, ui.ColorReset(),
		ui.ColorYellow(), p.PreferredKernel, ui.ColorReset())
}
