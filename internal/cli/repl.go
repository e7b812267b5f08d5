// Package cli provides terminal presentation for evaluation results and
// verification runs, and the interactive REPL.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/widearith/internal/ui"
	"github.com/agbru/widearith/internal/wide"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Width is the initial operand width in bits.
	Width int
	// Decimal displays results in base 10 instead of hexadecimal.
	Decimal bool
}

// replOps lists the operations the REPL accepts and their operand count.
var replOps = map[string]int{
	"add": 2, "sub": 2, "mul": 2, "kmul": 2, "cmp": 2, "mulscalar": 2,
	"sqr": 1, "clz": 1,
	"shl": 2, "shr": 2,
}

// REPL is an interactive session evaluating one operation per line.
type REPL struct {
	config REPLConfig
	ops    *wide.Ops
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a new REPL instance. An unsupported width falls back to
// 256 bits.
func NewREPL(config REPLConfig) *REPL {
	ops, err := wide.OpsFor(config.Width)
	if err != nil {
		ops, _ = wide.OpsFor(256)
		config.Width = 256
	}
	return &REPL{
		config: config,
		ops:    ops,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start reads and evaluates commands until exit or EOF.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprintf(r.out, "%su%d> %s", ui.ColorGreen(), r.config.Width, ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}
		eof := errors.Is(err, io.EOF)

		if input = strings.TrimSpace(input); input != "" {
			if !r.processCommand(input) {
				return
			}
		}
		if eof {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %swidearith - Interactive Mode%s                         %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	y, rst := ui.ColorYellow(), ui.ColorReset()
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), rst)
	fmt.Fprintf(r.out, "  %sadd|sub|mul|kmul|cmp <a> <b>%s - Binary operation (0x hex or decimal)\n", y, rst)
	fmt.Fprintf(r.out, "  %smulscalar <a> <s>%s            - Multiply by a 64-bit scalar\n", y, rst)
	fmt.Fprintf(r.out, "  %ssqr|clz <a>%s                  - Unary operation\n", y, rst)
	fmt.Fprintf(r.out, "  %sshl|shr <a> <n>%s              - Shift by n bits (0-63)\n", y, rst)
	fmt.Fprintf(r.out, "  %swidth <bits>%s                 - Change width (%s)\n", y, rst, widthList())
	fmt.Fprintf(r.out, "  %shex%s / %sdec%s                    - Choose the output base\n", y, rst, y, rst)
	fmt.Fprintf(r.out, "  %sstatus%s                       - Display current configuration\n", y, rst)
	fmt.Fprintf(r.out, "  %shelp%s                         - Display this help\n", y, rst)
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s                  - Exit interactive mode\n", y, rst, y, rst)
}

func widthList() string {
	parts := make([]string, len(wide.Widths))
	for i, w := range wide.Widths {
		parts[i] = strconv.Itoa(w)
	}
	return strings.Join(parts, ", ")
}

// processCommand parses and executes a command line. It returns false when
// the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	if n, ok := replOps[cmd]; ok {
		r.cmdEval(cmd, n, args)
		return true
	}

	switch cmd {
	case "width", "w":
		r.cmdWidth(args)
	case "hex":
		r.setDecimal(false)
	case "dec":
		r.setDecimal(true)
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}
	return true
}

func (r *REPL) cmdEval(op string, arity int, args []string) {
	if len(args) != arity {
		fmt.Fprintf(r.out, "%sUsage: %s needs %d operand(s)%s\n", ui.ColorRed(), op, arity, ui.ColorReset())
		return
	}

	a, b := args[0], ""
	var shift uint
	if arity == 2 {
		b = args[1]
	}
	if op == "shl" || op == "shr" {
		n, err := strconv.ParseUint(b, 10, 8)
		if err != nil {
			fmt.Fprintf(r.out, "%sInvalid shift: %s%s\n", ui.ColorRed(), b, ui.ColorReset())
			return
		}
		shift = uint(n)
	}

	start := time.Now()
	res, err := r.ops.Eval(op, a, b, shift)
	duration := time.Since(start)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	value, truncated := truncateValue(FormatValue(res, r.config.Decimal))
	fmt.Fprintf(r.out, "  = %s%s%s", ui.ColorGreen(), value, ui.ColorReset())
	if truncated {
		fmt.Fprint(r.out, " (truncated)")
	}
	fmt.Fprintln(r.out)
	if res.HasCarry {
		label := "carry"
		if op == "sub" {
			label = "borrow"
		}
		fmt.Fprintf(r.out, "  %s = %s%d%s\n", label, ui.ColorCyan(), res.Carry, ui.ColorReset())
	}
	fmt.Fprintf(r.out, "  %s(%s)%s\n", ui.ColorCyan(), formatDuration(duration), ui.ColorReset())
}

func (r *REPL) cmdWidth(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: width <bits>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	w, err := strconv.Atoi(args[0])
	if err != nil || !slices.Contains(wide.Widths, w) {
		fmt.Fprintf(r.out, "%sUnsupported width: %s (valid: %s)%s\n", ui.ColorRed(), args[0], widthList(), ui.ColorReset())
		return
	}
	r.ops, _ = wide.OpsFor(w)
	r.config.Width = w
	fmt.Fprintf(r.out, "Width changed to: %s%d%s bits\n", ui.ColorGreen(), w, ui.ColorReset())
}

func (r *REPL) setDecimal(decimal bool) {
	r.config.Decimal = decimal
	base := "hexadecimal"
	if decimal {
		base = "decimal"
	}
	fmt.Fprintf(r.out, "Output base: %s%s%s\n", ui.ColorGreen(), base, ui.ColorReset())
}

func (r *REPL) cmdStatus() {
	base := "hexadecimal"
	if r.config.Decimal {
		base = "decimal"
	}
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Width:        %s%d%s bits\n", ui.ColorCyan(), r.config.Width, ui.ColorReset())
	fmt.Fprintf(r.out, "  Output base:  %s%s%s\n", ui.ColorCyan(), base, ui.ColorReset())
	fmt.Fprintf(r.out, "  Mul strategy: %s%s%s\n", ui.ColorCyan(), wide.GetMulStrategy(r.config.Width), ui.ColorReset())
	fmt.Fprintln(r.out)
}
