// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult], [FormatValue].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile], [WriteReportToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/widearith/internal/format"
	"github.com/agbru/widearith/internal/ui"
	"github.com/agbru/widearith/internal/verify"
	"github.com/agbru/widearith/internal/wide"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet prints only the value.
	Quiet bool
	// Verbose disables truncation of long values.
	Verbose bool
	// Decimal shows values in base 10 instead of hexadecimal.
	Decimal bool
}

// FormatValue renders the result value in the requested base. Decimal
// values get thousands separators.
func FormatValue(res wide.Result, decimal bool) string {
	if decimal {
		return format.FormatNumberString(res.Decimal())
	}
	return res.Hex()
}

// truncateValue shortens s to its first and last HexDisplayEdges characters
// when it exceeds TruncationLimit.
func truncateValue(s string) (string, bool) {
	if len(s) <= TruncationLimit {
		return s, false
	}
	return s[:HexDisplayEdges] + "..." + s[len(s)-HexDisplayEdges:], true
}

// WriteResultToFile writes an evaluation result to a file, creating parent
// directories as needed.
func WriteResultToFile(res wide.Result, duration time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# widearith result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Operation: %s\n", res.Op)
	fmt.Fprintf(file, "# Width: %d\n", res.Width)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	if res.Value != nil {
		fmt.Fprintf(file, "# Bits: %d\n", res.BitLen())
	}
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "value = %s\n", res.Hex())
	if res.Value != nil {
		fmt.Fprintf(file, "decimal = %s\n", res.Decimal())
	}
	if res.HasCarry {
		fmt.Fprintf(file, "carry = %d\n", res.Carry)
	}

	return file.Close()
}

// FormatQuietResult returns the bare value for scripting.
func FormatQuietResult(res wide.Result, decimal bool) string {
	if decimal {
		return res.Decimal()
	}
	return res.Hex()
}

// DisplayQuietResult outputs a result in quiet mode.
func DisplayQuietResult(out io.Writer, res wide.Result, decimal bool) {
	fmt.Fprintln(out, FormatQuietResult(res, decimal))
}

// DisplayResult prints the value, carry or borrow, and timing of an
// evaluation.
func DisplayResult(res wide.Result, duration time.Duration, verbose, decimal bool, out io.Writer) {
	styles := ui.CurrentStyles()
	fmt.Fprintf(out, "\n%s\n", styles.Header.Render("--- Result ---"))
	fmt.Fprintf(out, "Operation: %s%s%s on %s%d%s-bit operands\n",
		ui.ColorMagenta(), res.Op, ui.ColorReset(), ui.ColorCyan(), res.Width, ui.ColorReset())
	fmt.Fprintf(out, "Time:      %s%s%s\n", ui.ColorYellow(), formatDuration(duration), ui.ColorReset())

	value := FormatValue(res, decimal)
	truncated := false
	if !verbose {
		value, truncated = truncateValue(value)
	}
	fmt.Fprintf(out, "Value:     %s%s%s", ui.ColorGreen(), value, ui.ColorReset())
	if truncated {
		fmt.Fprintf(out, " (truncated)")
	}
	fmt.Fprintln(out)

	if res.Value != nil {
		fmt.Fprintf(out, "Bits:      %d of %d\n", res.BitLen(), len(res.Value)*64)
	}
	if res.HasCarry {
		label := "Carry"
		if res.Op == "sub" {
			label = "Borrow"
		}
		fmt.Fprintf(out, "%-10s %s%d%s\n", label+":", ui.ColorCyan(), res.Carry, ui.ColorReset())
	}
	if truncated {
		fmt.Fprintf(out, "%s\n", styles.Dim.Render("Tip: use -v to print the full value."))
	}
}

// DisplayResultWithConfig displays a result with the given output
// configuration and saves it when an output file is set.
func DisplayResultWithConfig(out io.Writer, res wide.Result, duration time.Duration, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, res, config.Decimal)
	} else {
		DisplayResult(res, duration, config.Verbose, config.Decimal, out)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(res, duration, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}
	return nil
}

// WriteReportToFile writes a plain-text verification report, one line per
// suite, to path.
func WriteReportToFile(results []verify.CheckResult, path string) error {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# widearith verification report\n")
	fmt.Fprintf(file, "# Generated: %s\n\n", time.Now().Format(time.RFC3339))
	for _, res := range results {
		status := "PASS"
		if res.Err != nil {
			status = "FAIL " + res.Err.Error()
		}
		fmt.Fprintf(file, "%s\t%d\t%s\t%s\n", res.Name, res.Cases, res.Duration, status)
	}
	return file.Close()
}
