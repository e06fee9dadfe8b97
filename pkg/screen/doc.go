// Package screen provides known device screen sizes, as they are reported to
// a keyboard extension, and orientation-aware comparisons between them.
package screen
