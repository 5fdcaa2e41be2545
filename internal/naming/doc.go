// Package naming provides the naming conventions applied to schema models
// and fuzzy identifier matching for diagnostics.
//
// Key functions:
//   - Canonical: derives the PascalCase singular model name ("merchants" -> "Merchant")
//   - IsPascalCase: checks an identifier against the convention
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Closest: ranks known names by similarity to a missing one
package naming
