package screen

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidSize indicates that a size string could not be parsed.
var ErrInvalidSize = errors.New("invalid size")

// Orientation describes how a [Size] is oriented.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
	Square    Orientation = "square"
)

// Size is a width and height pair, in points.
type Size struct {
	Width  float64 `json:"width"  yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// NewSize creates a new [Size].
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Flipped returns the size with width and height swapped.
func (s Size) Flipped() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// IsScreenSize reports whether s matches other in either orientation.
// Components are compared exactly.
func (s Size) IsScreenSize(other Size) bool {
	return s == other || s == other.Flipped()
}

// Orientation returns the orientation of s.
func (s Size) Orientation() Orientation {
	switch {
	case s.Height > s.Width:
		return Portrait
	case s.Width > s.Height:
		return Landscape
	}

	return Square
}

// Area returns the number of points covered by s.
func (s Size) Area() float64 {
	return s.Width * s.Height
}

func (s Size) String() string {
	return formatDimension(s.Width) + "x" + formatDimension(s.Height)
}

// ParseSize parses a size in the form "WIDTHxHEIGHT", e.g. "1024x1366".
// The multiplication sign "×" is accepted as a separator.
func ParseSize(str string) (Size, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(str), "×", "x")

	w, h, ok := strings.Cut(strings.ToLower(normalized), "x")
	if !ok {
		return Size{}, fmt.Errorf("%w: %q: expected WIDTHxHEIGHT", ErrInvalidSize, str)
	}

	width, err := parseDimension(w)
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q: width: %w", ErrInvalidSize, str, err)
	}

	height, err := parseDimension(h)
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q: height: %w", ErrInvalidSize, str, err)
	}

	return Size{Width: width, Height: height}, nil
}

func parseDimension(str string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", str, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite dimension %q", str)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative dimension %q", str)
	}

	return v, nil
}

func formatDimension(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
