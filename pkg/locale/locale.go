package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ErrUnknownLocale indicates that an identifier does not name a supported
// [Locale].
var ErrUnknownLocale = errors.New("unknown locale")

// Locale is a supported keyboard locale. The only valid values are the
// package-level variables; the zero value is [Undefined].
type Locale struct {
	idx uint8
}

var (
	Undefined = Locale{}

	Danish     = Locale{1}
	Dutch      = Locale{2}
	English    = Locale{3}
	EnglishGB  = Locale{4}
	EnglishUS  = Locale{5}
	Estonian   = Locale{6}
	French     = Locale{7}
	Finnish    = Locale{8}
	German     = Locale{9}
	Italian    = Locale{10}
	Latvian    = Locale{11}
	Lithuanian = Locale{12}
	Norwegian  = Locale{13}
	Russian    = Locale{14}
	Spanish    = Locale{15}
	Swedish    = Locale{16}
	Ukrainian  = Locale{17}
)

type entry struct {
	id   string
	name string
	flag string
	ltr  bool

	// Derived in init.
	tag         language.Tag
	displayName string
	sortKey     string
}

// Index 0 is [Undefined], which reads left to right.
var table = [...]entry{
	{ltr: true},
	{id: "da", name: "dansk", flag: "🇩🇰", ltr: true},
	{id: "nl", name: "Nederlands", flag: "🇳🇱", ltr: true},
	{id: "en", name: "English", flag: "🇺🇸", ltr: true},
	{id: "en-GB", name: "English (United Kingdom)", flag: "🇬🇧", ltr: true},
	{id: "en-US", name: "English (United States)", flag: "🇺🇸", ltr: true},
	{id: "et", name: "eesti", flag: "🇪🇪", ltr: true},
	{id: "fr", name: "français", flag: "🇫🇷", ltr: true},
	{id: "fi", name: "suomi", flag: "🇫🇮", ltr: true},
	{id: "de", name: "Deutsch", flag: "🇩🇪", ltr: true},
	{id: "it", name: "italiano", flag: "🇮🇹", ltr: true},
	{id: "lv", name: "latviešu", flag: "🇱🇻", ltr: true},
	{id: "lt", name: "lietuvių", flag: "🇱🇹", ltr: true},
	{id: "nb", name: "norsk bokmål", flag: "🇳🇴", ltr: true},
	{id: "ru", name: "русский", flag: "🇷🇺", ltr: true},
	{id: "es", name: "español", flag: "🇪🇸", ltr: true},
	{id: "sv", name: "svenska", flag: "🇸🇪", ltr: true},
	{id: "uk", name: "українська", flag: "🇺🇦", ltr: true},
}

var byID = map[string]Locale{}

func init() {
	// Casers are stateful, so everything derived from them is computed once
	// here and never touched again.
	title := cases.Title(language.Und)
	fold := cases.Fold()

	for i := 1; i < len(table); i++ {
		e := &table[i]
		e.tag = language.MustParse(e.id)
		e.displayName = title.String(e.name)
		e.sortKey = fold.String(norm.NFC.String(e.name))

		byID[e.id] = Locale{uint8(i)} //nolint:gosec // G115: bounded by table size.
	}
}

// All returns every supported locale in declaration order. The returned
// slice is safe to modify.
func All() []Locale {
	all := make([]Locale, 0, len(table)-1)
	for i := 1; i < len(table); i++ {
		all = append(all, Locale{uint8(i)}) //nolint:gosec // G115: bounded by table size.
	}

	return all
}

// Parse returns the [Locale] for the given identifier. Identifiers are
// matched as BCP 47 tags, so "en_gb" and "EN-GB" both return [EnglishGB].
func Parse(id string) (Locale, error) {
	if l, ok := byID[id]; ok {
		return l, nil
	}

	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(id), "_", "-"))
	if err != nil {
		return Undefined, fmt.Errorf("%w: %q: %w", ErrUnknownLocale, id, err)
	}

	if l, ok := byID[tag.String()]; ok {
		return l, nil
	}

	return Undefined, fmt.Errorf("%w: %q", ErrUnknownLocale, id)
}

func (l Locale) entry() *entry {
	if int(l.idx) >= len(table) {
		return &table[0]
	}

	return &table[l.idx]
}

// ID returns the locale identifier, e.g. "en-GB".
func (l Locale) ID() string {
	return l.entry().id
}

// LocalizedName returns the name of the locale in its own language.
func (l Locale) LocalizedName() string {
	return l.entry().name
}

// DisplayName returns [Locale.LocalizedName] in title case, as it is shown in
// locale pickers.
func (l Locale) DisplayName() string {
	return l.entry().displayName
}

// Flag returns the flag emoji for the locale.
func (l Locale) Flag() string {
	return l.entry().flag
}

// IsLeftToRight reports whether text in the locale is written left to right.
func (l Locale) IsLeftToRight() bool {
	return l.entry().ltr
}

// IsRightToLeft reports whether text in the locale is written right to left.
func (l Locale) IsRightToLeft() bool {
	return !l.IsLeftToRight()
}

// Tag returns the language tag for the locale. Its string form is always
// equal to [Locale.ID].
func (l Locale) Tag() language.Tag {
	return l.entry().tag
}

// IsDefined reports whether l is one of the supported locales.
func (l Locale) IsDefined() bool {
	return l.idx != 0 && int(l.idx) < len(table)
}

func (l Locale) String() string {
	if !l.IsDefined() {
		return "undefined"
	}

	return l.ID()
}

// MarshalText implements [encoding.TextMarshaler].
func (l Locale) MarshalText() ([]byte, error) {
	return []byte(l.ID()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Locale) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*l = Undefined

		return nil
	}

	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*l = parsed

	return nil
}
