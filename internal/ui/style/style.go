// Package style provides the colors and icons shared by the CLI output.
package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Iris   = lipgloss.Color("#8B5CF6")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// ColorProfile returns the color profile for output, honoring NO_COLOR.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// NewOutput creates a termenv output writing to w with the detected profile.
func NewOutput(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(ColorProfile()), termenv.WithTTY(true))
}

// Renderer returns a lipgloss renderer bound to w with the detected profile.
func Renderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(ColorProfile())
	return r
}

// Diagnostic styles compiler messages by severity.
func Diagnostic(r *lipgloss.Renderer, severity string) lipgloss.Style {
	switch severity {
	case "error":
		return r.NewStyle().Foreground(Red)
	case "warning":
		return r.NewStyle().Foreground(Yellow)
	default:
		return r.NewStyle().Foreground(Slate)
	}
}
