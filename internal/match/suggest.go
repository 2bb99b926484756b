package match

import "sort"

const (
	// DefaultMinScore is the minimum similarity for a name to be suggested.
	DefaultMinScore = 0.6
	// DefaultMaxSuggestions caps the number of suggestions returned.
	DefaultMaxSuggestions = 3
)

// Candidate is a known name scored against a missing one.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every known name against missing and returns those at or above
// minScore, best first. Ties are broken by name so the output is stable.
func Rank(missing string, known []string, minScore float64) CandidateList {
	var candidates CandidateList

	for _, name := range known {
		if name == missing {
			continue
		}

		score := Score(missing, name)
		if score < minScore {
			continue
		}

		candidates = append(candidates, Candidate{Name: name, Score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}

		return candidates[i].Name < candidates[j].Name
	})

	return candidates
}

// Top returns up to n candidate names.
func (c CandidateList) Top(n int) []string {
	if n <= 0 || n > len(c) {
		n = len(c)
	}

	names := make([]string, 0, n)
	for _, cand := range c[:n] {
		names = append(names, cand.Name)
	}

	return names
}

// Suggest returns up to limit known names similar to missing.
func Suggest(missing string, known []string, minScore float64, limit int) []string {
	if len(known) == 0 {
		return nil
	}

	return Rank(missing, known, minScore).Top(limit)
}
