package logic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citysearch/internal/domain"
)

func sampleStore() []domain.Suggestion {
	return []domain.Suggestion{
		{City: "Paris", Country: "France"},
		{City: "Parma", Country: "Italy"},
		{City: "San Francisco", Country: "United States"},
		{City: "Kyoto", Country: "Japan"},
		{City: "Spartanburg", Country: "United States"},
		{City: "ISTANBUL", Country: "Turkey"},
	}
}

func cities(items []domain.Suggestion) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = s.City
	}
	return out
}

func TestFilterEmptyQueryReturnsStore(t *testing.T) {
	store := sampleStore()
	res := Filter(store, "")

	assert.Equal(t, store, res.Items)
	assert.False(t, res.Touched)
	assert.False(t, res.ShowList)
	assert.Empty(t, res.Error)

	// The result is a fresh slice
	res.Items[0].City = "changed"
	assert.Equal(t, "Paris", store[0].City)
}

func TestFilterMatchesCaseInsensitiveSubstring(t *testing.T) {
	res := Filter(sampleStore(), "par")

	assert.Equal(t, []string{"Paris", "Parma", "Spartanburg"}, cities(res.Items))
	assert.True(t, res.Touched)
	assert.True(t, res.ShowList)
	assert.Empty(t, res.Error)
}

func TestFilterNoMatches(t *testing.T) {
	res := Filter(sampleStore(), "xyz")

	assert.Empty(t, res.Items)
	assert.True(t, res.Touched)
	assert.False(t, res.ShowList)
	assert.Equal(t, NoMatchesMessage, res.Error)
}

func TestFilterSpecialCharactersAreLiteral(t *testing.T) {
	store := []domain.Suggestion{
		{City: "St. Louis"},
		{City: "Stoke"},
		{City: "Frankfurt (Oder)"},
	}

	assert.Equal(t, []string{"St. Louis"}, cities(Filter(store, "t.").Items))
	assert.Equal(t, []string{"Frankfurt (Oder)"}, cities(Filter(store, "(o").Items))
	assert.Empty(t, Filter(store, ".*").Items)
}

func TestFilterSubsetProperty(t *testing.T) {
	store := sampleStore()
	for _, q := range []string{"a", "AN", "s", "o", "ist", "zz", " "} {
		res := Filter(store, q)

		in := make(map[string]bool)
		for _, s := range res.Items {
			in[s.City] = true
			assert.True(t, strings.Contains(strings.ToLower(s.City), strings.ToLower(q)), "query %q kept %q", q, s.City)
		}
		for _, s := range store {
			if !in[s.City] {
				assert.False(t, strings.Contains(strings.ToLower(s.City), strings.ToLower(q)), "query %q dropped %q", q, s.City)
			}
		}

		// store order preserved
		last := -1
		for _, s := range res.Items {
			for i, o := range store {
				if o.City == s.City {
					require.Greater(t, i, last)
					last = i
				}
			}
		}
	}
}

func TestContainsFoldUnicode(t *testing.T) {
	assert.True(t, ContainsFold("Zürich", "ZÜR"))
	assert.True(t, ContainsFold("São Paulo", "são"))
	assert.True(t, ContainsFold("anything", ""))
	assert.False(t, ContainsFold("Ab", "abc"))
}
