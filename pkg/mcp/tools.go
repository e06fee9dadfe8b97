package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/grammatek/KeyboardKit/pkg/expr"
	"github.com/grammatek/KeyboardKit/pkg/locale"
	"github.com/grammatek/KeyboardKit/pkg/render"
	"github.com/grammatek/KeyboardKit/pkg/screen"
)

// ListLocalesParams defines parameters for the list_locales tool.
type ListLocalesParams struct {
	First  string `json:"first,omitempty"`
	Filter string `json:"filter,omitempty"`
}

// ListLocalesResult contains the result of listing locales.
type ListLocalesResult struct {
	Error   string                `json:"error,omitempty"`
	Locales []render.LocaleRecord `json:"locales"`
	Count   int                   `json:"count"`
}

// GetLocaleParams defines parameters for the get_locale tool.
type GetLocaleParams struct {
	ID string `json:"id"`
}

// GetLocaleResult contains the result of getting a single locale.
type GetLocaleResult struct {
	Locale *render.LocaleRecord `json:"locale,omitempty"`
	Error  string               `json:"error,omitempty"`
	Found  bool                 `json:"found"`
}

// MatchScreenParams defines parameters for the match_screen tool.
type MatchScreenParams struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MatchScreenResult contains the result of matching a screen size.
type MatchScreenResult struct {
	Device      string `json:"device,omitempty"`
	Orientation string `json:"orientation"`
	Found       bool   `json:"found"`
}

// ListLocales lists locales sorted by native name. Invalid parameters are
// reported in the result rather than as a protocol error.
func ListLocales(params ListLocalesParams) ListLocalesResult {
	first := locale.Undefined
	if params.First != "" {
		l, err := locale.Parse(params.First)
		if err != nil {
			return ListLocalesResult{Error: err.Error(), Locales: []render.LocaleRecord{}}
		}

		first = l
	}

	ls, err := expr.SelectLocales(params.Filter, first, locale.All())
	if err != nil {
		return ListLocalesResult{Error: err.Error(), Locales: []render.LocaleRecord{}}
	}

	result := ListLocalesResult{
		Locales: make([]render.LocaleRecord, 0, len(ls)),
		Count:   len(ls),
	}
	for _, l := range ls {
		result.Locales = append(result.Locales, render.NewLocaleRecord(l))
	}

	return result
}

// GetLocale looks up a single locale.
func GetLocale(params GetLocaleParams) GetLocaleResult {
	l, err := locale.Parse(params.ID)
	if err != nil {
		return GetLocaleResult{Error: err.Error()}
	}

	rec := render.NewLocaleRecord(l)

	return GetLocaleResult{Locale: &rec, Found: true}
}

// MatchScreen finds the device with the given screen size.
func MatchScreen(params MatchScreenParams) MatchScreenResult {
	s := screen.NewSize(params.Width, params.Height)

	result := MatchScreenResult{Orientation: string(s.Orientation())}

	if d, ok := screen.Match(s); ok {
		result.Device = d.String()
		result.Found = true
	}

	return result
}

func (s *Server) handleListLocales(
	_ context.Context,
	_ *mcp.ServerSession,
	params *mcp.CallToolParamsFor[ListLocalesParams],
) (*mcp.CallToolResultFor[ListLocalesResult], error) {
	result := ListLocales(params.Arguments)

	msg := fmt.Sprintf("Found %d locales.", result.Count)
	if result.Error != "" {
		msg = "INVALID INPUT ERROR: " + result.Error
	}

	return &mcp.CallToolResultFor[ListLocalesResult]{
		Content:           []mcp.Content{&mcp.TextContent{Text: msg}},
		StructuredContent: result,
		IsError:           result.Error != "",
	}, nil
}

func (s *Server) handleGetLocale(
	_ context.Context,
	_ *mcp.ServerSession,
	params *mcp.CallToolParamsFor[GetLocaleParams],
) (*mcp.CallToolResultFor[GetLocaleResult], error) {
	result := GetLocale(params.Arguments)

	msg := fmt.Sprintf("INVALID INPUT ERROR: %s. Use an id from the list_locales tool.", result.Error)
	if result.Found {
		msg = fmt.Sprintf("Found locale %s (%s).", result.Locale.ID, result.Locale.DisplayName)
	}

	return &mcp.CallToolResultFor[GetLocaleResult]{
		Content:           []mcp.Content{&mcp.TextContent{Text: msg}},
		StructuredContent: result,
		IsError:           !result.Found,
	}, nil
}

func (s *Server) handleMatchScreen(
	_ context.Context,
	_ *mcp.ServerSession,
	params *mcp.CallToolParamsFor[MatchScreenParams],
) (*mcp.CallToolResultFor[MatchScreenResult], error) {
	result := MatchScreen(params.Arguments)

	size := screen.NewSize(params.Arguments.Width, params.Arguments.Height)

	msg := fmt.Sprintf("No known device has a %s screen.", size)
	if result.Found {
		msg = fmt.Sprintf("%s is a %s screen in %s orientation.", size, result.Device, result.Orientation)
	}

	return &mcp.CallToolResultFor[MatchScreenResult]{
		Content:           []mcp.Content{&mcp.TextContent{Text: msg}},
		StructuredContent: result,
	}, nil
}
