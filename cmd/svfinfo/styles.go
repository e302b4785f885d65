package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("#2E86DE")
	accentColor  = lipgloss.Color("#FFA500")
	mutedColor   = lipgloss.Color("#888888")
	errorColor   = lipgloss.Color("#A40000")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(20)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)
)

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

func printSection(w io.Writer, name string) {
	fmt.Fprintln(w, sectionStyle.Render(name))
}

func printKeyValue(w io.Writer, key, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", keyStyle.Render(key), valueStyle.Render(fmt.Sprintf(format, args...)))
}

func printError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", errorStyle.Render("Error:"), message)
}
