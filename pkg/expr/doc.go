// Package expr provides CEL (Common Expression Language) filters over
// keyboard locales.
//
// Filter expressions must evaluate to a bool and have access to:
//   - `id` (string): The locale identifier, e.g. "en-GB"
//   - `name` (string): The localized name, e.g. "norsk bokmål"
//   - `displayName` (string): The title-cased localized name
//   - `flag` (string): The flag emoji
//   - `language` (string): The base language subtag, e.g. "en"
//   - `region` (string): The region subtag, empty if the id has none
//   - `ltr`, `rtl` (bool): The text direction
//
// The function `langBase(string)` returns the base language of any BCP 47
// tag, so `language == langBase("en_AU")` selects all English locales.
package expr
