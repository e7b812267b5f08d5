// Package ui holds the color themes shared by the CLI output, the REPL and
// the dashboard. Callers ask for the current theme's ANSI codes or lipgloss
// styles instead of hard-coding colors.
package ui
