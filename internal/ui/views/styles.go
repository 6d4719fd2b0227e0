package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Prompt      lipgloss.Style
	Dim         lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	Cursor      lipgloss.Style
	Country     lipgloss.Style
	ModalBox    lipgloss.Style
	ModalTitle  lipgloss.Style
	ModalLabel  lipgloss.Style
	Button      lipgloss.Style
	Backdrop    lipgloss.Style
	StatusError lipgloss.Style
	StatusBusy  lipgloss.Style
	StatusOK    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		Help:      lipgloss.NewStyle().Faint(true),
		Main:      lipgloss.NewStyle().Padding(mainPadY, mainPadX),
		Scroll:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Country:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(modalPadY, modalPadX),
		ModalTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		ModalLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Backdrop:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusBusy:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusOK:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
