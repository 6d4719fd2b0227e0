package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"citysearch/internal/domain"
)

// CloseLabel is the modal's close control
const CloseLabel = "[ Close ]"

// closeLine is the content row of CloseLabel inside the modal
const closeLine = 5

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderDetail draws the selection modal
func (pr *PopupRenderer) RenderDetail(d *domain.SelectionDetail) string {
	lines := []string{
		pr.styles.ModalTitle.Render("Selected city"),
		"",
		pr.styles.ModalLabel.Render("City: ") + d.City,
		pr.styles.ModalLabel.Render("Country: ") + d.Country,
		"",
		pr.styles.Button.Render(CloseLabel),
	}
	return pr.styles.ModalBox.Render(strings.Join(lines, "\n"))
}

// CloseRect locates the close button of a modal drawn at modal
func CloseRect(modal Rect) Rect {
	return Rect{
		X: modal.X + 1 + modalPadX,
		Y: modal.Y + 1 + modalPadY + closeLine,
		W: runewidth.StringWidth(CloseLabel),
		H: 1,
	}
}

// RenderPopupOverlay centers popup on top of a greyed out copy of main
// and returns where the popup landed
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popup string, height, width int) (string, Rect) {
	popupLines := strings.Split(popup, "\n")
	w := lipgloss.Width(popup)
	h := len(popupLines)

	x := (width - w) / 2
	y := (height - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	lines := strings.Split(mainContent, "\n")
	for len(lines) < y+h {
		lines = append(lines, "")
	}

	for i, line := range lines {
		plain := ansi.Strip(line)
		row := i - y
		if row < 0 || row >= h {
			lines[i] = pr.backdrop(plain)
			continue
		}
		left := runewidth.FillRight(runewidth.Truncate(plain, x, ""), x)
		right := runewidth.TruncateLeft(plain, x+w, "")
		lines[i] = pr.backdrop(left) + popupLines[row] + pr.backdrop(right)
	}

	return strings.Join(lines, "\n"), Rect{X: x, Y: y, W: w, H: h}
}

func (pr *PopupRenderer) backdrop(plain string) string {
	if plain == "" {
		return ""
	}
	return pr.styles.Backdrop.Render(plain)
}

// StripANSI removes escape sequences from s
func StripANSI(s string) string {
	return ansi.Strip(s)
}
