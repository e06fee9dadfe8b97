package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grammatek/KeyboardKit/internal/cli"
	"github.com/grammatek/KeyboardKit/pkg/config"
	"github.com/grammatek/KeyboardKit/pkg/locale"
	"github.com/grammatek/KeyboardKit/pkg/render"
)

// run executes the root command with a config path inside a temporary
// directory, returning stdout.
func run(t *testing.T, configYAML string, args ...string) (string, error) {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if configYAML != "" {
		require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0o600))
	}

	var stdout, stderr bytes.Buffer

	cmd := cli.NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath, "--log-level", "error"}, args...))

	err := cmd.Execute()

	return stdout.String(), err
}

func localeIDs(t *testing.T, out string) []string {
	t.Helper()

	var records []render.LocaleRecord

	require.NoError(t, json.Unmarshal([]byte(out), &records))

	ids := []string{}
	for _, r := range records {
		ids = append(ids, r.ID)
	}

	return ids
}

func TestLocalesCmd(t *testing.T) {
	tcs := map[string]struct {
		config string
		args   []string
		want   []string
	}{
		"sorted": {
			args: []string{"locales", "-o", "json"},
			want: []string{
				"da", "de", "et", "en", "en-GB", "en-US", "es", "fr", "it",
				"lv", "lt", "nl", "nb", "fi", "sv", "ru", "uk",
			},
		},
		"first and filter flags": {
			args: []string{"locales", "-o", "json", "--first", "en-US", "--filter", `language == "en"`},
			want: []string{"en-US", "en", "en-GB"},
		},
		"config defaults": {
			config: `apiVersion: kbkit.grammatek.com/v1beta1
kind: Configuration
locales:
  first: uk
  filter: id in ["uk", "ru", "da"]
output:
  format: json
`,
			args: []string{"locales"},
			want: []string{"uk", "da", "ru"},
		},
		"flags override config": {
			config: `apiVersion: kbkit.grammatek.com/v1beta1
kind: Configuration
locales:
  first: uk
  filter: id in ["uk", "ru", "da"]
`,
			args: []string{"locales", "-o", "json", "--first", "ru"},
			want: []string{"ru", "da", "uk"},
		},
		"get": {
			args: []string{"locales", "get", "nb", "-o", "json"},
			want: []string{"nb"},
		},
		"find": {
			args: []string{"locales", "find", "svenska", "-o", "json"},
			want: []string{"sv"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, tc.config, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, localeIDs(t, out))
		})
	}
}

func TestLocalesCmd_Text(t *testing.T) {
	out, err := run(t, "", "locales", "--first", "en")
	require.NoError(t, err)

	english := strings.Index(out, "English")
	dansk := strings.Index(out, "Dansk")

	require.NotEqual(t, -1, english)
	require.NotEqual(t, -1, dansk)
	assert.Less(t, english, dansk)
}

func TestLocalesCmd_Errors(t *testing.T) {
	tcs := map[string][]string{
		"unknown first":  {"locales", "--first", "xx"},
		"bad filter":     {"locales", "--filter", "id =="},
		"bad output":     {"locales", "-o", "xml"},
		"unknown get":    {"locales", "get", "ar"},
		"get needs args": {"locales", "get"},
	}

	for name, args := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, "", args...)
			require.Error(t, err)
		})
	}
}

func TestScreensCmd(t *testing.T) {
	out, err := run(t, "", "screens", "-o", "json")
	require.NoError(t, err)

	var records []render.ScreenRecord

	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 4)
	assert.Equal(t, "iPadProLargeScreen", records[0].Name)

	out, err = run(t, "", "screens", "match", "1366x1024")
	require.NoError(t, err)
	assert.Equal(t, "iPadProLargeScreen (landscape)\n", out)

	out, err = run(t, "", "screens", "match", "428x926", "-o", "json")
	require.NoError(t, err)

	var match cli.ScreenMatch

	require.NoError(t, json.Unmarshal([]byte(out), &match))
	assert.Equal(t, "iPhoneProMaxScreen", match.Device)
	assert.Equal(t, "portrait", match.Orientation)

	_, err = run(t, "", "screens", "match", "100x100")
	require.ErrorIs(t, err, cli.ErrNoMatch)

	_, err = run(t, "", "screens", "match", "big")
	require.Error(t, err)
}

func TestConfigCmd(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "kbkit", "config.yaml")

	cmd := cli.NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", configPath, "--log-level", "error", "config", "write"})
	require.NoError(t, cmd.Execute())

	b, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "kind: Configuration")

	effectivePath := filepath.Join(t.TempDir(), "effective.yaml")

	_, err = run(t, "apiVersion: kbkit.grammatek.com/v1beta1\nkind: Configuration\nlocales:\n  first: et\n",
		"config", "write", "--effective", effectivePath)
	require.NoError(t, err)

	written, err := config.LoadFile(effectivePath)
	require.NoError(t, err)
	assert.Equal(t, locale.Estonian, written.FirstLocale())
	assert.Equal(t, "text", written.Output.Format)

	out, err := run(t, "apiVersion: kbkit.grammatek.com/v1beta1\nkind: Configuration\nlocales:\n  first: fi\n",
		"config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "first: fi")

	out, err = run(t, "", "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"apiVersion"`)

	_, err = run(t, "kind: Nope\n", "config", "show")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "kbkit "))
}
