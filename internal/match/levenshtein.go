package match

// Levenshtein returns the edit distance between a and b, counted in runes.
func Levenshtein(a, b string) int {
	return distance([]rune(a), []rune(b))
}

func distance(a, b []rune) int {
	if len(a) > len(b) {
		a, b = b, a
	}

	// row[i] is the distance between a[:i] and the prefix of b seen so far.
	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for _, rb := range b {
		diag := row[0]
		row[0]++

		for i, ra := range a {
			cost := 1
			if ra == rb {
				cost = 0
			}

			next := min(row[i+1]+1, row[i]+1, diag+cost)
			diag = row[i+1]
			row[i+1] = next
		}
	}

	return row[len(a)]
}

// Similarity is 1 - distance / max(len), in runes. Two empty strings score 1.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)

	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1
	}

	return 1 - float64(distance(ra, rb))/float64(longest)
}

// Score compares two entity names after normalizing them.
func Score(a, b string) float64 {
	return Similarity(NormalizeName(a), NormalizeName(b))
}
