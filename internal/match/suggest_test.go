package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank_OrdersByScoreThenName(t *testing.T) {
	known := []string{"Mat B", "Concrete", "Mat C", "Generic Roof Membrane"}

	got := Rank("Mat A", known, 0.5)

	assert.Equal(t, []string{"Mat B", "Mat C"}, got.Top(0))
	for _, c := range got {
		assert.InDelta(t, 0.75, c.Score, 0.001)
	}
}

func TestRank_SkipsExactName(t *testing.T) {
	got := Rank("Mat A", []string{"Mat A", "mat_a"}, 0.5)

	assert.Equal(t, []string{"mat_a"}, got.Top(0))
}

func TestSuggest(t *testing.T) {
	known := []string{"Generic Roof Membrane", "Generic Wall Membrane", "Argon Gap"}

	assert.Equal(t, []string{"Generic Roof Membrane"},
		Suggest("Generic Roof Membrance", known, 0.9, DefaultMaxSuggestions))
	assert.Len(t, Suggest("Generic Roof Membrance", known, 0.5, 1), 1)
	assert.Empty(t, Suggest("Xenon", known, DefaultMinScore, DefaultMaxSuggestions))
	assert.Nil(t, Suggest("Xenon", nil, DefaultMinScore, DefaultMaxSuggestions))
}
