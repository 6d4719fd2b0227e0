package state

import (
	"citysearch/internal/domain"
	"citysearch/internal/logic"
)

// Phase is the interaction phase of the widget
type Phase int

const (
	PhaseIdle     Phase = iota // input never focused
	PhaseBrowsing              // typing and picking from the list
	PhaseSelected              // detail modal open
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBrowsing:
		return "browsing"
	case PhaseSelected:
		return "selected"
	default:
		return "unknown"
	}
}

// AppState contains all the application state
type AppState struct {
	Phase Phase

	// Query data
	Query    string              // current input text
	Filtered []domain.Suggestion // store filtered by Query, store order
	Cursor   int                 // highlighted row in Filtered

	// Selection state
	Detail     *domain.SelectionDetail // non-nil exactly while Phase is PhaseSelected
	PendingSeq uint64                  // sequence of the latest resolution request
	Resolving  bool
	Resolved   string // city of the pending or last resolution

	// UI state
	ListVisible  bool
	FocusedOnce  bool
	ErrorMessage string
	ShowHelp     bool
	Loading      bool // initial store load in flight
	LoadedCount  int  // suggestions available after a successful load
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Phase:    PhaseIdle,
		Filtered: make([]domain.Suggestion, 0),
	}
}

// Focus applies the first-focus rule: the whole store becomes the list and
// the list is shown. Later focuses change nothing. Returns true when the
// rule fired.
func (s *AppState) Focus(all []domain.Suggestion) bool {
	if s.FocusedOnce {
		return false
	}
	s.FocusedOnce = true
	if s.Phase == PhaseSelected {
		return true
	}
	s.Filtered = logic.Filter(all, "").Items
	s.Cursor = 0
	s.ListVisible = true
	s.Phase = PhaseBrowsing
	return true
}

// SetQuery recomputes the list for a new input text. Ignored while the
// modal is open.
func (s *AppState) SetQuery(all []domain.Suggestion, query string) {
	if s.Phase == PhaseSelected {
		return
	}
	s.Query = query
	s.Phase = PhaseBrowsing
	s.apply(logic.Filter(all, query))
	s.Cursor = 0
}

// Refresh re-runs the filter after the store content changed
func (s *AppState) Refresh(all []domain.Suggestion) {
	if s.Phase != PhaseBrowsing {
		return
	}
	s.apply(logic.Filter(all, s.Query))
	s.clampCursor()
}

func (s *AppState) apply(res logic.FilterResult) {
	s.Filtered = res.Items
	switch {
	case res.Touched && res.ShowList:
		s.ListVisible = true
		s.ErrorMessage = ""
	case res.Touched:
		s.ErrorMessage = res.Error
	}
}

// BeginSelect records a click on a suggestion. The returned sequence number
// must be passed back to ApplyResolution.
func (s *AppState) BeginSelect(selected domain.Suggestion) (uint64, bool) {
	if s.Phase != PhaseBrowsing {
		return 0, false
	}
	s.Query = selected.City
	s.PendingSeq++
	s.Resolving = true
	s.Resolved = selected.City
	return s.PendingSeq, true
}

// ApplyResolution installs the outcome of the resolution numbered seq.
// Outcomes of superseded requests, or arriving after the user left the
// list, are dropped and false is returned.
func (s *AppState) ApplyResolution(seq uint64, detail *domain.SelectionDetail, err error) bool {
	if seq != s.PendingSeq || !s.Resolving {
		return false
	}
	s.Resolving = false
	if s.Phase != PhaseBrowsing {
		return false
	}
	if err != nil || detail == nil {
		s.ErrorMessage = logic.NoMatchesMessage
		return true
	}
	s.Detail = detail
	s.ListVisible = false
	s.ErrorMessage = ""
	s.Phase = PhaseSelected
	return true
}

// CloseModal drops the detail and returns to browsing
func (s *AppState) CloseModal() bool {
	if s.Phase != PhaseSelected {
		return false
	}
	s.Detail = nil
	s.Phase = PhaseBrowsing
	return true
}

// DismissList hides the list, leaving query and modal untouched
func (s *AppState) DismissList() bool {
	if !s.ListVisible {
		return false
	}
	s.ListVisible = false
	return true
}

// RevealList shows a dismissed list again
func (s *AppState) RevealList() bool {
	if s.Phase != PhaseBrowsing || s.ListVisible || len(s.Filtered) == 0 {
		return false
	}
	s.ListVisible = true
	return true
}

// MoveCursor moves the highlighted row, clamped to the list
func (s *AppState) MoveCursor(delta int) {
	if !s.ListVisible || len(s.Filtered) == 0 {
		return
	}
	s.Cursor += delta
	s.clampCursor()
}

func (s *AppState) clampCursor() {
	if s.Cursor >= len(s.Filtered) {
		s.Cursor = len(s.Filtered) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// CursorSuggestion returns the highlighted suggestion of a visible list
func (s *AppState) CursorSuggestion() (domain.Suggestion, bool) {
	if !s.ListVisible || s.Cursor < 0 || s.Cursor >= len(s.Filtered) {
		return domain.Suggestion{}, false
	}
	return s.Filtered[s.Cursor], true
}

func (s *AppState) ModalVisible() bool {
	return s.Detail != nil
}
