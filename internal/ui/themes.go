package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a color scheme for plain terminal output. Every field but Name
// holds an ANSI escape sequence, empty when colors are off.
type Theme struct {
	Name      string
	Primary   string // headings and values
	Secondary string // labels
	Success   string
	Warning   string
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string
}

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;141m", // Purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme suits light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // Dark blue
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Info:      "\033[38;5;54m",  // Dark purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// OrangeTheme is an orange-dominant dark theme.
	OrangeTheme = Theme{
		Name:      "orange",
		Primary:   "\033[38;5;208m", // Orange
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;214m", // Light orange
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;69m",  // Blue
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// Styles holds the lipgloss styles used for headers and status badges.
type Styles struct {
	Header  lipgloss.Style
	Pass    lipgloss.Style
	Fail    lipgloss.Style
	Dim     lipgloss.Style
	Accent  lipgloss.Style
	Warning lipgloss.Style
}

func newStyles(header, pass, fail, dim, accent, warning string) Styles {
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	return Styles{
		Header:  fg(header).Bold(true),
		Pass:    fg(pass).Bold(true),
		Fail:    fg(fail).Bold(true),
		Dim:     fg(dim),
		Accent:  fg(accent),
		Warning: fg(warning),
	}
}

// themeStyles maps a theme name to its lipgloss rendition. The none theme
// is absent: zero styles render their input unchanged.
var themeStyles = map[string]Styles{
	"dark":   newStyles("39", "82", "196", "245", "141", "220"),
	"light":  newStyles("27", "28", "124", "240", "54", "130"),
	"orange": newStyles("208", "82", "196", "245", "69", "214"),
}

// themesByName lists the selectable themes.
var themesByName = map[string]Theme{
	DarkTheme.Name:    DarkTheme,
	LightTheme.Name:   LightTheme,
	OrangeTheme.Name:  OrangeTheme,
	NoColorTheme.Name: NoColorTheme,
}

// CurrentStyles returns the styles matching the active theme.
func CurrentStyles() Styles {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return themeStyles[currentTheme.Name]
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name. Unknown names select DarkTheme.
func SetTheme(name string) {
	t, ok := themesByName[name]
	if !ok {
		t = DarkTheme
	}
	SetCurrentTheme(t)
}

// InitTheme activates the named theme unless colors are disabled by
// noColor or by a NO_COLOR environment variable (https://no-color.org/).
func InitTheme(name string, noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetTheme(name)
}
