package logic

import (
	"strings"
	"unicode/utf8"

	"citysearch/internal/domain"
)

// FilterResult is the outcome of filtering the store for a query
type FilterResult struct {
	Items []domain.Suggestion

	// Touched is false for an empty query: list visibility and the error
	// line are then left to the caller's focus handling.
	Touched bool
	// ShowList asks the caller to make the list visible
	ShowList bool
	// Error is the message to show; empty means clear it
	Error string
}

// Filter returns every suggestion whose city contains query, ignoring case,
// in store order. An empty query returns the whole store.
func Filter(store []domain.Suggestion, query string) FilterResult {
	if query == "" {
		items := make([]domain.Suggestion, len(store))
		copy(items, store)
		return FilterResult{Items: items}
	}

	items := make([]domain.Suggestion, 0)
	for _, s := range store {
		if ContainsFold(s.City, query) {
			items = append(items, s)
		}
	}

	res := FilterResult{Items: items, Touched: true}
	if len(items) > 0 {
		res.ShowList = true
	} else {
		res.Error = NoMatchesMessage
	}
	return res
}

// ContainsFold reports whether substr is within s under Unicode case folding
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	_, _, ok := indexFold(s, substr, 0)
	return ok
}

// indexFold returns the byte range of the first case-insensitive occurrence
// of substr in s at or after byte offset from. The match always spans as
// many runes as substr, so offsets stay valid even when upper and lower
// case forms differ in encoded length.
func indexFold(s, substr string, from int) (start, end int, ok bool) {
	n := utf8.RuneCountInString(substr)
	for i := from; i < len(s); {
		j, k := i, 0
		for k < n && j < len(s) {
			_, size := utf8.DecodeRuneInString(s[j:])
			j += size
			k++
		}
		if k < n {
			return 0, 0, false
		}
		if strings.EqualFold(s[i:j], substr) {
			return i, j, true
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return 0, 0, false
}
