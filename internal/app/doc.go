// Package app wires configuration, file I/O, the rewrite passes and logging
// into a single normalization run, optionally repeated in watch mode.
package app
