package locale

import (
	"slices"
	"strings"
)

// Compare orders locales by their case-folded localized name.
func Compare(a, b Locale) int {
	return strings.Compare(a.entry().sortKey, b.entry().sortKey)
}

// Sort returns a sorted copy of ls, ordered by [Compare].
func Sort(ls []Locale) []Locale {
	sorted := slices.Clone(ls)
	slices.SortStableFunc(sorted, Compare)

	return sorted
}

// SortInsertFirst is like [Sort], but moves first to the front of the result.
// All other locales keep their sorted order. If first is not in ls, the
// result is the same as [Sort].
func SortInsertFirst(ls []Locale, first Locale) []Locale {
	sorted := Sort(ls)

	i := slices.Index(sorted, first)
	if i <= 0 {
		return sorted
	}

	copy(sorted[1:i+1], sorted[:i])
	sorted[0] = first

	return sorted
}
