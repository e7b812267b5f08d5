package tui

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/widearith/internal/errors"
	"github.com/agbru/widearith/internal/verify"
)

func TestSuitesViewFitsWidth(t *testing.T) {
	t.Parallel()
	longInput := "0x" + strings.Repeat("f", 256)
	tests := []struct {
		name  string
		width int
		err   error
	}{
		{"mismatch", 100, apperrors.MismatchError{Operation: "add", Width: 256, Input: longInput}},
		{"short error", 100, errors.New("add mismatch")},
		{"multibyte", 60, errors.New(strings.Repeat("é→", 40))},
		{"narrow", 50, apperrors.MismatchError{Operation: "mul", Width: 512, Input: longInput}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewSuitesModel(testSuites)
			s.SetSize(tt.width, 10)
			s.SetResults([]verify.CheckResult{
				{Name: "add/256", Err: tt.err},
				{Name: "mul/512", Cases: 1},
			})
			view := s.View()
			if !utf8.ValidString(view) {
				t.Fatal("view is not valid UTF-8")
			}
			for _, line := range strings.Split(view, "\n") {
				if w := lipgloss.Width(line); w > tt.width {
					t.Errorf("line is %d columns, panel is %d: %q", w, tt.width, line)
				}
			}
			if !rowHas(view, "add/256", "FAIL") || !rowHas(view, "mul/512", "PASS 1 cases") {
				t.Errorf("status wrapped off its row:\n%s", view)
			}
		})
	}
}

func TestSuitesViewKeepsShortErrors(t *testing.T) {
	t.Parallel()
	s := NewSuitesModel(testSuites)
	s.SetSize(100, 10)
	s.SetResults([]verify.CheckResult{{Name: "add/256", Err: errors.New("add mismatch")}})
	if !rowHas(s.View(), "add/256", "FAIL add mismatch") {
		t.Errorf("short error should be shown whole:\n%s", s.View())
	}
}

// rowHas reports whether a single rendered line contains both a and b.
func rowHas(view, a, b string) bool {
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, a) && strings.Contains(line, b) {
			return true
		}
	}
	return false
}
