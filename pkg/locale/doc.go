// Package locale provides the closed set of locales that keyboards can be
// built for, along with their identifiers, native display names, flags and
// text direction.
//
// All values are static and safe for concurrent use.
package locale
