package logic

import (
	"github.com/tchap/go-patricia/v2/patricia"

	"citysearch/internal/domain"
)

// CityIndex maps exact city names to their first position in a suggestion list
type CityIndex struct {
	trie *patricia.Trie
	size int
}

// NewCityIndex indexes items by city. When several entries share a city name
// the earliest one wins. Entries with an empty city are not indexed.
func NewCityIndex(items []domain.Suggestion) *CityIndex {
	ix := &CityIndex{trie: patricia.NewTrie()}
	for i, s := range items {
		if s.City == "" {
			continue
		}
		if ix.trie.Insert(patricia.Prefix(s.City), i) {
			ix.size++
		}
	}
	return ix
}

// Lookup returns the position of the first entry named city
func (ix *CityIndex) Lookup(city string) (int, bool) {
	if city == "" {
		return 0, false
	}
	item := ix.trie.Get(patricia.Prefix(city))
	if item == nil {
		return 0, false
	}
	return item.(int), true
}

// Size returns the number of distinct city names
func (ix *CityIndex) Size() int {
	return ix.size
}
