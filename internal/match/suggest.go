package match

import (
	"sort"
)

// DefaultMinScore is the similarity below which names are not suggested.
const DefaultMinScore = 0.6

// Suggestion is a known name similar to the queried one.
type Suggestion struct {
	Name  string
	Score float64
}

// Suggest ranks names by similarity to query and returns at most limit
// suggestions scoring at least minScore. Ties are broken by name.
func Suggest(query string, names []string, limit int, minScore float64) []Suggestion {
	norm := NormalizeName(query)

	var out []Suggestion

	for _, name := range names {
		if name == query {
			continue
		}

		score := Similarity(norm, NormalizeName(name))
		if score < minScore {
			continue
		}

		out = append(out, Suggestion{Name: name, Score: score})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].Name < out[j].Name
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}
