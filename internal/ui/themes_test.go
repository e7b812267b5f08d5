package ui

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSetTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"orange", "orange"},
		{"none", "none"},
		{"bogus", "dark"},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q): theme = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitTheme_NoColor(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	InitTheme("light", true)
	if ColorRed() != "" || ColorReset() != "" {
		t.Error("colors should be empty with noColor set")
	}
	if got := CurrentStyles().Pass.Render("PASS"); got != "PASS" {
		t.Errorf("plain style rendered %q", got)
	}
}

func TestInitTheme_NoColorEnv(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())
	t.Setenv("NO_COLOR", "1")

	InitTheme("orange", false)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("NO_COLOR should select the none theme, got %q", GetCurrentTheme().Name)
	}
}

func TestColorAccessorsFollowTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	SetCurrentTheme(LightTheme)
	if ColorRed() != LightTheme.Error || ColorGreen() != LightTheme.Success {
		t.Error("color accessors do not follow the active theme")
	}
}

func TestInitThemeByName(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())
	t.Setenv("NO_COLOR", "")
	os.Unsetenv("NO_COLOR")

	InitTheme("light", false)
	if GetCurrentTheme().Name != "light" {
		t.Errorf("theme = %q, want light", GetCurrentTheme().Name)
	}
	if _, ok := CurrentStyles().Pass.GetForeground().(lipgloss.Color); !ok {
		t.Error("light theme should have styled output")
	}
}
