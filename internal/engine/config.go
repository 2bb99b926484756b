package engine

import (
	"slices"

	"energymodel-translator/internal/match"
	"energymodel-translator/internal/target"
)

// Config holds configuration for materialization.
type Config struct {
	// MaxDepth limits reference and child recursion (0 = unlimited).
	MaxDepth int
	// MaxSuggestions caps did-you-mean names on unresolved references.
	MaxSuggestions int
	// MinSuggestionScore is the minimum similarity for a suggested name.
	MinSuggestionScore float64
	// Deduplicated lists the categories whose objects are reused by name.
	Deduplicated []target.Category
}

// DefaultConfig returns the default materialization configuration.
func DefaultConfig() Config {
	return Config{
		MaxDepth:           32,
		MaxSuggestions:     match.DefaultMaxSuggestions,
		MinSuggestionScore: match.DefaultMinScore,
		Deduplicated: []target.Category{
			target.CategoryMaterial,
			target.CategoryConstruction,
			target.CategoryScheduleTypeLimit,
			target.CategorySchedule,
		},
	}
}

func (c Config) deduplicates(cat target.Category) bool {
	return slices.Contains(c.Deduplicated, cat)
}
