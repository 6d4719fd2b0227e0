package logic

import "citysearch/internal/domain"

// SuggestionStore provides access to the loaded suggestions
type SuggestionStore interface {
	// All returns the suggestions in source order. Callers may not modify the result.
	All() []domain.Suggestion
	// Lookup returns the first suggestion whose city equals city exactly.
	Lookup(city string) (domain.Suggestion, bool)
	// Replace installs a freshly loaded data set.
	Replace(items []domain.Suggestion)
	Len() int
	Loaded() bool
}

// NoMatchesMessage is the single user-visible error of the widget
const NoMatchesMessage = "No matches found."
