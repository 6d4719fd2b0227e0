package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"citysearch/internal/domain"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	promptText    = "City › "
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Query        string
	InputView    string // rendered text input
	InputFocused bool

	Items       []domain.Suggestion
	Cursor      int
	ListVisible bool
	MaxVisible  int

	ErrorMessage string
	Detail       *domain.SelectionDetail

	Loading       bool
	LoadedCount   int
	Resolving     bool
	ResolvingCity string
	Spinner       string

	ShowHelp    bool
	HelpContent string // full help, shown as an overlay
	HelpView    string // one-line key hints for the footer
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	listRender  *SuggestionRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		listRender:  NewSuggestionRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// InnerWidth is the usable width inside the main padding
func InnerWidth(width int) int {
	if width <= 0 {
		width = defaultWidth
	}
	w := width - 2*mainPadX
	if w < 1 {
		w = 1
	}
	return w
}

// PromptWidth is the width taken by the input prompt
func PromptWidth() int {
	return lipgloss.Width(promptText)
}

// Render produces the complete view and the layout of its clickable parts
func (r *Renderer) Render(state ViewState) (string, Layout) {
	width, height := state.Width, state.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	inner := InnerWidth(width)

	var layout Layout
	lines := make([]string, 0, height)

	lines = append(lines, r.renderTitle(state, inner))
	lines = append(lines, "")

	prompt := r.styles.Prompt.Render(promptText)
	if !state.InputFocused {
		prompt = r.styles.Dim.Render(promptText)
	}
	lines = append(lines, prompt+state.InputView)
	layout.Input = Rect{X: mainPadX, Y: mainPadY + inputRow, W: inner, H: 1}

	if state.ListVisible && len(state.Items) > 0 {
		listLines, offset, rows := r.listRender.RenderList(state.Items, state.Query, state.Cursor, state.MaxVisible, inner)
		lines = append(lines, listLines...)
		layout.List = Rect{X: mainPadX, Y: mainPadY + listRow, W: inner, H: len(listLines)}
		layout.ListOffset = offset
		layout.ListRows = rows
	}

	if state.ErrorMessage != "" {
		lines = append(lines, r.styles.StatusError.Render(state.ErrorMessage))
	}

	// push the key hints to the bottom
	if state.HelpView != "" {
		available := height - 2*mainPadY
		for len(lines) < available-1 {
			lines = append(lines, "")
		}
		lines = append(lines, r.styles.Help.Render(state.HelpView))
	}

	mainStyle := r.styles.Main.MaxHeight(height)
	finalContent := mainStyle.Render(strings.Join(lines, "\n"))

	if state.Detail != nil {
		popup := r.popupRender.RenderDetail(state.Detail)
		out, rect := r.popupRender.RenderPopupOverlay(finalContent, popup, height, width)
		layout.Modal = rect
		layout.Close = CloseRect(rect)
		return out, layout
	}

	if state.ShowHelp && state.HelpContent != "" {
		popup := r.styles.ModalBox.Render(state.HelpContent)
		out, rect := r.popupRender.RenderPopupOverlay(finalContent, popup, height, width)
		layout.Modal = rect
		return out, layout
	}

	return finalContent, layout
}

// renderTitle builds the title line with right-aligned activity
func (r *Renderer) renderTitle(state ViewState, width int) string {
	logo := r.styles.Title.Render("citysearch")

	var right string
	switch {
	case state.Loading:
		right = r.styles.StatusBusy.Render(fmt.Sprintf("%s Loading cities", state.Spinner))
	case state.Resolving:
		right = r.styles.StatusBusy.Render(fmt.Sprintf("%s Resolving %s", state.Spinner, state.ResolvingCity))
	case state.LoadedCount > 0:
		right = r.styles.StatusOK.Render(humanize.Comma(int64(state.LoadedCount)) + " cities")
	}
	if right == "" {
		return logo
	}

	padding := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}
