package internal

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
)

// isTerminal checks if the writer is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printDecorated(w io.Writer, mark string, style lipgloss.Style, plainPrefix, message string) {
	if isTerminal(w) {
		_, _ = fmt.Fprintf(w, "%s %s\n", style.Render(mark), message)
		return
	}
	_, _ = fmt.Fprintf(w, "%s%s\n", plainPrefix, message)
}

// PrintSuccess prints a success message to w
func PrintSuccess(w io.Writer, message string) {
	printDecorated(w, "✓", successStyle, "", message)
}

// PrintError prints an error message to w
func PrintError(w io.Writer, message string) {
	printDecorated(w, "✗", errorStyle, "", message)
}

// PrintInfo prints an informational message to w
func PrintInfo(w io.Writer, message string) {
	printDecorated(w, "ℹ", progressStyle, "", message)
}

// PrintWarning prints a warning to w
func PrintWarning(w io.Writer, message string) {
	printDecorated(w, "⚠", warningStyle, "warning: ", message)
}
