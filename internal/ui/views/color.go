package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ApplyColorMode forces plain output when noColor is set or NO_COLOR is in
// the environment
func ApplyColorMode(noColor bool) {
	if noColor || termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}
