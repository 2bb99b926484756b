// Package match ranks known entity names by similarity to one that could not
// be resolved, for did-you-mean hints.
//
// Key functions:
//   - NormalizeName: folds case and separators out of an entity name
//   - Levenshtein: edit distance in runes
//   - Suggest: ranks known names by similarity to a missing one
package match
