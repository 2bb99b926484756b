// Package diagnostic provides structured warnings and errors collected while
// validating and translating abridged energy-model records.
//
// Key capabilities:
//   - Field-level validation errors with dotted paths
//   - Non-fatal warnings (unknown fields, skipped optional references)
//   - Suggestions attached to unresolved names
package diagnostic
