package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"citysearch/internal/domain"
	"citysearch/internal/logic"
)

const ellipsis = "…"

// SuggestionRenderer draws the dropdown rows
type SuggestionRenderer struct {
	styles *Styles
}

func NewSuggestionRenderer(styles *Styles) *SuggestionRenderer {
	return &SuggestionRenderer{styles: styles}
}

// Window returns the slice of the list to draw so that cursor stays visible
func Window(total, cursor, maxVisible int) (offset, rows int) {
	if maxVisible < 1 {
		maxVisible = 1
	}
	rows = total
	if rows > maxVisible {
		rows = maxVisible
	}
	if cursor >= maxVisible {
		offset = cursor - maxVisible + 1
	}
	if offset+rows > total {
		offset = total - rows
	}
	if offset < 0 {
		offset = 0
	}
	return offset, rows
}

// RenderList returns the suggestion rows followed by an optional position line
func (sr *SuggestionRenderer) RenderList(items []domain.Suggestion, query string, cursor, maxVisible, width int) (lines []string, offset, rows int) {
	offset, rows = Window(len(items), cursor, maxVisible)
	for i := offset; i < offset+rows; i++ {
		lines = append(lines, sr.RenderRow(items[i], query, i == cursor, width))
	}
	if rows < len(items) {
		lines = append(lines, sr.styles.Scroll.Render(fmt.Sprintf("  %d-%d of %d", offset+1, offset+rows, len(items))))
	}
	return lines, offset, rows
}

// RenderRow draws one suggestion with the query emphasized in the city name
func (sr *SuggestionRenderer) RenderRow(s domain.Suggestion, query string, selected bool, width int) string {
	var b strings.Builder
	if selected {
		b.WriteString(sr.styles.Cursor.Render("› "))
	} else {
		b.WriteString("  ")
	}
	budget := width - 2

	budget = sr.writeSegments(&b, logic.Highlight(s.City, query), budget)

	if s.Country != "" && budget > 0 {
		budget = sr.writeStyled(&b, sr.styles.Country, "  "+s.Country, budget)
	}
	if pop, ok := s.Population(); ok && budget > 0 {
		sr.writeStyled(&b, sr.styles.Dim, "  pop. "+humanize.Comma(int64(pop)), budget)
	}
	return b.String()
}

func (sr *SuggestionRenderer) writeSegments(b *strings.Builder, segs []logic.Segment, budget int) int {
	for _, seg := range segs {
		if budget <= 0 {
			break
		}
		if seg.Emphasized {
			budget = sr.writeStyled(b, sr.styles.Highlight, seg.Text, budget)
		} else {
			budget = sr.writePlain(b, seg.Text, budget)
		}
	}
	return budget
}

func (sr *SuggestionRenderer) writePlain(b *strings.Builder, text string, budget int) int {
	text = fit(text, budget)
	b.WriteString(text)
	return budget - runewidth.StringWidth(text)
}

func (sr *SuggestionRenderer) writeStyled(b *strings.Builder, style lipgloss.Style, text string, budget int) int {
	text = fit(text, budget)
	if text != "" {
		b.WriteString(style.Render(text))
	}
	return budget - runewidth.StringWidth(text)
}

// fit truncates text to budget cells, marking the cut with an ellipsis
func fit(text string, budget int) string {
	if budget <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= budget {
		return text
	}
	return runewidth.Truncate(text, budget, ellipsis)
}
