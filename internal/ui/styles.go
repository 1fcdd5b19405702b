package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// ------- minimal styling helpers (Lip Gloss) -------
var (
	Title   = lipgloss.NewStyle().Bold(true)
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	Accent  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	Muted   = lipgloss.NewStyle().Faint(true)
	Error   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	Selected = lipgloss.NewStyle().Bold(true).Reverse(true)
	Done     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	Help     = lipgloss.NewStyle().Faint(true)
)

const (
	BoxChecked   = "☑"
	BoxUnchecked = "☐"
)

func OK(msg string) {
	fmt.Println(Success.Render("✔ " + msg))
}

func Fail(msg string) {
	fmt.Fprintln(os.Stderr, Error.Render("✖ "+msg))
}

func Hint(msg string) {
	fmt.Fprintln(os.Stderr, Muted.Render(msg))
}
