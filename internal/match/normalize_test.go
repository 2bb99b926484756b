package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Generic Roof Membrane", "genericroofmembrane"},
		{"generic_roof_membrane", "genericroofmembrane"},
		{"generic-roof-membrane", "genericroofmembrane"},
		{"GenericRoofMembrane", "genericroofmembrane"},
		{"Mat A", "mata"},
		{"ConcreteSlab_8in", "concreteslab8in"},
		{"Door 1.5/2", "door152"},
		{"Béton Armé", "bétonarmé"},
		{"Tab\tSeparated", "tabseparated"},
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}
