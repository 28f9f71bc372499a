package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	red    = lipgloss.Color("1")
	yellow = lipgloss.Color("3")
	dim    = lipgloss.Color("8")

	Error   = lipgloss.NewStyle().Foreground(red)
	Warning = lipgloss.NewStyle().Foreground(yellow)
	Dim     = lipgloss.NewStyle().Foreground(dim)
)

func init() {
	// Diagnostics go to stderr, so that is the stream whose TTY-ness counts.
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// ErrorMsg prints an error with formatting and optional hints
func ErrorMsg(w io.Writer, title string, err error, hints ...string) {
	fmt.Fprintf(w, "%s %s\n", Error.Render("✗"), title)
	if err != nil {
		fmt.Fprintf(w, "  %s\n", Dim.Render(err.Error()))
	}
	for _, hint := range hints {
		fmt.Fprintf(w, "  %s %s\n", Dim.Render("Hint:"), hint)
	}
}

// WarnMsg prints a warning message
func WarnMsg(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", Warning.Render("!"), msg)
}
