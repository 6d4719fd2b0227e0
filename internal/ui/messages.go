package ui

import (
	"citysearch/internal/domain"
)

// suggestionsLoadedMsg carries the result of the initial store load
type suggestionsLoadedMsg struct {
	items []domain.Suggestion
	err   error
}

// selectionResolvedMsg carries the result of resolving a chosen suggestion
type selectionResolvedMsg struct {
	seq    uint64
	city   string
	detail *domain.SelectionDetail
	err    error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
