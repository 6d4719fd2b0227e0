package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Suggestion is one selectable city returned by the data source
type Suggestion struct {
	City             string            `json:"city"`
	Country          string            `json:"country"`
	PopulationCounts []PopulationCount `json:"populationCounts,omitempty"`

	// Extra holds every other field of the source record untouched
	Extra map[string]json.RawMessage `json:"-"`
}

// PopulationCount is a single census figure for a city
type PopulationCount struct {
	Year        string `json:"year"`
	Value       string `json:"value"`
	Sex         string `json:"sex,omitempty"`
	Reliability string `json:"reliabilty,omitempty"` // sic, matches the upstream API
}

// SelectionDetail is the record shown in the detail modal
type SelectionDetail struct {
	City    string
	Country string
}

// knownFields are decoded into typed fields and kept out of Extra
var knownFields = map[string]struct{}{
	"city":             {},
	"country":          {},
	"populationCounts": {},
}

// UnmarshalJSON decodes the typed fields and keeps the rest in Extra
func (s *Suggestion) UnmarshalJSON(data []byte) error {
	type plain Suggestion
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for k, v := range raw {
		if _, ok := knownFields[k]; ok {
			continue
		}
		if p.Extra == nil {
			p.Extra = make(map[string]json.RawMessage)
		}
		p.Extra[k] = v
	}

	*s = Suggestion(p)
	return nil
}

// MarshalJSON writes the typed fields back together with Extra
func (s Suggestion) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Extra)+3)
	for k, v := range s.Extra {
		out[k] = v
	}
	out["city"] = s.City
	out["country"] = s.Country
	if len(s.PopulationCounts) > 0 {
		out["populationCounts"] = s.PopulationCounts
	}
	return json.Marshal(out)
}

// Population returns the most recent population figure, if any
func (s Suggestion) Population() (float64, bool) {
	var (
		best     float64
		bestYear = -1
	)
	for _, pc := range s.PopulationCounts {
		year, err := strconv.Atoi(pc.Year)
		if err != nil {
			continue
		}
		value, err := strconv.ParseFloat(pc.Value, 64)
		if err != nil {
			continue
		}
		if year > bestYear {
			bestYear = year
			best = value
		}
	}
	return best, bestYear >= 0
}

// Detail extracts the fields shown in the detail modal
func (s Suggestion) Detail() *SelectionDetail {
	return &SelectionDetail{City: s.City, Country: s.Country}
}

func (s Suggestion) String() string {
	return fmt.Sprintf("%s, %s", s.City, s.Country)
}
