package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/widearith/internal/config"
	"github.com/agbru/widearith/internal/simd"
	"github.com/agbru/widearith/internal/ui"
	"github.com/agbru/widearith/internal/verify"
	"github.com/agbru/widearith/internal/wide"
)

// PrintExecutionConfig displays the run configuration: mode, operands or
// iteration budget, environment and the active strategies.
func PrintExecutionConfig(cfg config.AppConfig, kernel string, out io.Writer) {
	fmt.Fprintf(out, "%s\n", ui.CurrentStyles().Header.Render("--- Execution Configuration ---"))
	switch cfg.Mode {
	case "eval":
		fmt.Fprintf(out, "Evaluating %s%s%s on %s%d%s-bit operands with a timeout of %s%s%s.\n",
			ui.ColorMagenta(), cfg.Op, ui.ColorReset(), ui.ColorCyan(), cfg.Width, ui.ColorReset(),
			ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	default:
		fmt.Fprintf(out, "Running %s%s%s: %s%d%s cases per suite, %s%d%s workers, seed %d, timeout %s%s%s.\n",
			ui.ColorMagenta(), cfg.Mode, ui.ColorReset(),
			ui.ColorCyan(), cfg.Iterations, ui.ColorReset(),
			ui.ColorCyan(), cfg.Workers, ui.ColorReset(),
			cfg.Seed, ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s, CPU features %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset(),
		ui.ColorCyan(), simd.GetCPUFeatures(), ui.ColorReset())
	fmt.Fprintf(out, "Strategies: mul128=%s%s%s, mul256=%s%s%s, vector kernel=%s%s%s.\n",
		ui.ColorCyan(), wide.GetMulStrategy(128), ui.ColorReset(),
		ui.ColorCyan(), wide.GetMulStrategy(256), ui.ColorReset(),
		ui.ColorCyan(), kernel, ui.ColorReset())
}

// PrintExecutionMode lists the suites a verification run will execute.
func PrintExecutionMode(suites []verify.Suite, out io.Writer) {
	var modeDesc string
	if len(suites) == 1 {
		modeDesc = fmt.Sprintf("single suite %s%s%s", ui.ColorGreen(), suites[0].Name, ui.ColorReset())
	} else {
		modeDesc = fmt.Sprintf("%s%d%s suites across widths %v", ui.ColorGreen(), len(suites), ui.ColorReset(), suiteWidths(suites))
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}

func suiteWidths(suites []verify.Suite) []int {
	var widths []int
	seen := make(map[int]bool)
	for _, s := range suites {
		if !seen[s.Width] {
			seen[s.Width] = true
			widths = append(widths, s.Width)
		}
	}
	return widths
}
