package locale

import (
	"github.com/sahilm/fuzzy"
)

type searchSource []Locale

func (s searchSource) String(i int) string {
	l := s[i]

	return l.ID() + " " + l.LocalizedName() + " " + l.DisplayName()
}

func (s searchSource) Len() int {
	return len(s)
}

// Search returns the locales in ls that fuzzy-match query against their
// identifier and names, best match first. An empty query returns all of ls,
// sorted.
func Search(query string, ls []Locale) []Locale {
	if query == "" {
		return Sort(ls)
	}

	matches := fuzzy.FindFrom(query, searchSource(ls))

	results := make([]Locale, 0, len(matches))
	for _, m := range matches {
		results = append(results, ls[m.Index])
	}

	return results
}
