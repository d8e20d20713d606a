// Package pretty provides lipgloss-based styled output for the CLI.
package pretty

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// defaultTermWidth is used when the output is not a terminal.
const defaultTermWidth = 100

// Styles contains the styled renderers for CLI output.
type Styles struct {
	Title       lipgloss.Style
	RuleName    lipgloss.Style
	ChainName   lipgloss.Style
	Enabled     lipgloss.Style
	Disabled    lipgloss.Style
	TableHeader lipgloss.Style
	Dim         lipgloss.Style
}

// NewStyles creates styles, plain when color is disabled.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Title:       plain,
			RuleName:    plain,
			ChainName:   plain,
			Enabled:     plain,
			Disabled:    plain,
			TableHeader: plain,
			Dim:         plain,
		}
	}
	return &Styles{
		Title:       lipgloss.NewStyle().Bold(true),
		RuleName:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		ChainName:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Enabled:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Disabled:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		TableHeader: lipgloss.NewStyle().Bold(true).Underline(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// ColorEnabled resolves a color mode flag ("auto", "always", "never")
// against whether f is a terminal.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}

// TerminalWidth returns the terminal width of f, or a default when f
// is not a terminal.
func TerminalWidth(f *os.File) int {
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultTermWidth
}
