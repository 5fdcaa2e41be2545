// Package schemafile reads a schema file whole and replaces it whole.
//
// Writes go to a temporary file in the target directory which is synced
// and renamed over the original, so readers see either the old or the new
// schema and a failed write leaves the original in place.
package schemafile
