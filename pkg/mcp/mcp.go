// Package mcp serves the locale and screen tables over the Model Context
// Protocol.
package mcp

const (
	name         = "kbkit"
	instructions = `MCP Server 'kbkit' answers questions about the locales and device screen sizes supported by a keyboard extension.

Tools:
- 'list_locales' lists supported locales sorted by their native name. Use 'first' to pin a locale to the top and 'filter' to narrow the list with a CEL expression over id, name, displayName, flag, language, region, ltr and rtl.
- 'get_locale' returns a single locale by identifier, e.g. "en-GB".
- 'match_screen' reports which known device, if any, has the given screen size in either orientation.
`
)
