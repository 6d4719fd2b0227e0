package logic

// Segment is a run of display text, emphasized when it matched the query
type Segment struct {
	Text       string
	Emphasized bool
}

// Highlight splits text around every case-insensitive occurrence of query,
// left to right and non-overlapping. Matched pieces keep the casing of text.
// query is matched literally; no character has pattern meaning.
func Highlight(text, query string) []Segment {
	if query == "" {
		return []Segment{{Text: text}}
	}

	var segs []Segment
	last := 0
	for {
		start, end, ok := indexFold(text, query, last)
		if !ok {
			break
		}
		if start > last {
			segs = append(segs, Segment{Text: text[last:start]})
		}
		segs = append(segs, Segment{Text: text[start:end], Emphasized: true})
		last = end
	}

	if last < len(text) || len(segs) == 0 {
		segs = append(segs, Segment{Text: text[last:]})
	}
	return segs
}
