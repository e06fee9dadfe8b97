// Package render writes locales and screen sizes in the supported output
// formats.
package render
