// Package diagnostic provides structured errors, warnings, and
// "why this changed" notes produced while normalizing a schema.
//
// Key capabilities:
//   - Missing target reports with closest-name suggestions
//   - Structural ambiguity errors (duplicate models)
//   - Explanation of every edit applied to the document
package diagnostic
