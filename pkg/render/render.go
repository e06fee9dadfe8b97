package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/goccy/go-yaml"
	"golang.org/x/term"

	"github.com/grammatek/KeyboardKit/pkg/locale"
	"github.com/grammatek/KeyboardKit/pkg/screen"
)

// Format is an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")

	AllFormats = []string{
		string(FormatText),
		string(FormatJSON),
		string(FormatYAML),
	}
)

// ParseFormat returns the [Format] named by format.
func ParseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if slices.Contains([]Format{FormatText, FormatJSON, FormatYAML}, f) {
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// LocaleRecord is the serialized form of a [locale.Locale].
type LocaleRecord struct {
	ID          string `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	DisplayName string `json:"displayName" yaml:"displayName"`
	Flag        string `json:"flag"        yaml:"flag"`
	LTR         bool   `json:"ltr"         yaml:"ltr"`
}

// NewLocaleRecord creates a [LocaleRecord] for l.
func NewLocaleRecord(l locale.Locale) LocaleRecord {
	return LocaleRecord{
		ID:          l.ID(),
		Name:        l.LocalizedName(),
		DisplayName: l.DisplayName(),
		Flag:        l.Flag(),
		LTR:         l.IsLeftToRight(),
	}
}

// ScreenRecord is the serialized form of a [screen.Device].
type ScreenRecord struct {
	Name      string      `json:"name"      yaml:"name"`
	Portrait  screen.Size `json:"portrait"  yaml:"portrait"`
	Landscape screen.Size `json:"landscape" yaml:"landscape"`
	Points    int64       `json:"points"    yaml:"points"`
}

// NewScreenRecord creates a [ScreenRecord] for d.
func NewScreenRecord(d screen.Device) ScreenRecord {
	return ScreenRecord{
		Name:      d.String(),
		Portrait:  d.Portrait(),
		Landscape: d.Landscape(),
		Points:    int64(d.Portrait().Area()),
	}
}

// Locales writes ls to w in the given format.
func Locales(w io.Writer, format Format, ls []locale.Locale) error {
	records := make([]LocaleRecord, 0, len(ls))
	for _, l := range ls {
		records = append(records, NewLocaleRecord(l))
	}

	if format != FormatText {
		return encode(w, format, records)
	}

	t := newTable(w, "ID", "NAME", "FLAG", "DIRECTION")
	for _, r := range records {
		direction := "ltr"
		if !r.LTR {
			direction = "rtl"
		}

		t.Row(r.ID, r.DisplayName, r.Flag, direction)
	}

	return writeLine(w, t.String())
}

// Screens writes devices to w in the given format.
func Screens(w io.Writer, format Format, devices []screen.Device) error {
	records := make([]ScreenRecord, 0, len(devices))
	for _, d := range devices {
		records = append(records, NewScreenRecord(d))
	}

	if format != FormatText {
		return encode(w, format, records)
	}

	t := newTable(w, "DEVICE", "PORTRAIT", "LANDSCAPE", "POINTS")
	for _, r := range records {
		t.Row(r.Name, r.Portrait.String(), r.Landscape.String(), humanize.Comma(r.Points))
	}

	return writeLine(w, t.String())
}

// Value writes a single value to w in the given format. Text output uses the
// value's default formatting.
func Value(w io.Writer, format Format, v any) error {
	if format != FormatText {
		return encode(w, format, v)
	}

	return writeLine(w, fmt.Sprint(v))
}

func encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		err := enc.Encode(v)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil

	case FormatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		_, err = w.Write(b)
		if err != nil {
			return fmt.Errorf("write yaml: %w", err)
		}

		return nil

	case FormatText:
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func newTable(w io.Writer, headers ...string) *table.Table {
	headerStyle := lipgloss.NewStyle().Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	if isTerminal(w) {
		headerStyle = headerStyle.Bold(true)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int.
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
