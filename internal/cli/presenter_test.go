package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/widearith/internal/errors"
	"github.com/agbru/widearith/internal/sysmon"
	"github.com/agbru/widearith/internal/verify"
)

func TestPresentComparisonTable(t *testing.T) {
	t.Parallel()
	results := []verify.CheckResult{
		{Name: "mul/128", Cases: 1000, Duration: 3 * time.Millisecond},
		{Name: "vector/avx512", Cases: 12, Err: apperrors.MismatchError{Operation: "add", Width: 512, Input: "case 11"}},
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	output := buf.String()

	for _, want := range []string{"Verification Summary", "Suite", "Cases", "mul/128", "1000", "PASS", "vector/avx512", "FAIL", "case 11", "< 1µs"} {
		if !strings.Contains(output, want) {
			t.Errorf("table missing %q:\n%s", want, output)
		}
	}
}

func TestCLIResultPresenter_HandleError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"timeout", context.DeadlineExceeded, apperrors.ExitErrorTimeout},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled},
		{"mismatch", apperrors.MismatchError{Operation: "mul", Width: 128}, apperrors.ExitErrorMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if got := (CLIResultPresenter{}).HandleError(tt.err, time.Second, &buf); got != tt.want {
				t.Errorf("HandleError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestDisplayStats(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayMemoryStats(3<<20, 10<<20, 4, 1_500_000, &buf)
	DisplaySystemStats(sysmon.Stats{CPUPercent: 12.5, MemPercent: 40}, &buf)
	output := buf.String()
	for _, want := range []string{"3.0 MiB", "10.0 MiB", "GC cycles:       4", "1.50ms", "12.5%", "40.0%"} {
		if !strings.Contains(output, want) {
			t.Errorf("stats output missing %q:\n%s", want, output)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1 << 30, "1.0 GiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
