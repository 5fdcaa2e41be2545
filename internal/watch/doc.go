// Package watch re-runs a callback whenever a single file changes.
//
// The parent directory is watched rather than the file itself, so the
// callback also fires when the file is replaced by rename, which is how
// editors and schemafile.Write save.
package watch
