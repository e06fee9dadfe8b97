package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grammatek/KeyboardKit/pkg/config"
	"github.com/grammatek/KeyboardKit/pkg/locale"
	"github.com/grammatek/KeyboardKit/pkg/schema"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	c := config.NewConfig()

	assert.Equal(t, config.APIVersion, c.APIVersion)
	assert.Equal(t, config.Kind, c.Kind)
	assert.Equal(t, "text", c.Output.Format)
	assert.Equal(t, locale.Undefined, c.FirstLocale())
	require.NoError(t, c.Validate())
}

func TestLoader(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		wantFirst   locale.Locale
		wantFormat  string
		wantFilter  string
		validateErr bool
		loadErr     bool
	}{
		"full": {
			input: `apiVersion: kbkit.grammatek.com/v1beta1
kind: Configuration
locales:
  first: en_GB
  filter: language == "en"
output:
  format: json
`,
			wantFirst:  locale.EnglishGB,
			wantFormat: "json",
			wantFilter: `language == "en"`,
		},
		"minimal": {
			input: `apiVersion: kbkit.grammatek.com/v1beta1
kind: Configuration
`,
			wantFirst:  locale.Undefined,
			wantFormat: "text",
		},
		"wrong kind": {
			input: `apiVersion: kbkit.grammatek.com/v1beta1
kind: Policy
`,
			validateErr: true,
		},
		"missing api version": {
			input:       "kind: Configuration\n",
			validateErr: true,
		},
		"bad format": {
			input: `apiVersion: kbkit.grammatek.com/v1beta1
kind: Configuration
output:
  format: xml
`,
			validateErr: true,
			loadErr:     true,
		},
		"unknown field": {
			input: `apiVersion: kbkit.grammatek.com/v1beta1
kind: Configuration
theme: dark
`,
			validateErr: true,
		},
		"unsupported locale": {
			input: `apiVersion: kbkit.grammatek.com/v1beta1
kind: Configuration
locales:
  first: ar
`,
			loadErr: true,
		},
		"bad filter": {
			input: `apiVersion: kbkit.grammatek.com/v1beta1
kind: Configuration
locales:
  filter: "id =="
`,
			loadErr: true,
		},
		"not yaml": {
			input:       "locales: [",
			validateErr: true,
			loadErr:     true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			l := config.NewLoaderFromBytes([]byte(tc.input))

			err := l.Validate()
			if tc.validateErr {
				require.ErrorIs(t, err, config.ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}

			c, err := l.Load()
			if tc.loadErr {
				require.Error(t, err)

				return
			}
			if tc.validateErr {
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantFirst, c.FirstLocale())
			assert.Equal(t, tc.wantFormat, c.Output.Format)
			assert.Equal(t, tc.wantFilter, c.Locales.Filter)
		})
	}
}

func TestLoader_ValidationErrorHasPath(t *testing.T) {
	t.Parallel()

	l := config.NewLoaderFromBytes([]byte(`apiVersion: kbkit.grammatek.com/v1beta1
kind: Configuration
output:
  format: xml
`))

	err := l.Validate()

	var validationErr *schema.ValidationError

	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "$.output.format", validationErr.Path.String())
	assert.Contains(t, err.Error(), "format: xml")
}

func TestDefaultConfigYAML(t *testing.T) {
	t.Parallel()

	l := config.NewLoaderFromBytes(config.DefaultConfigYAML())
	require.NoError(t, l.Validate())

	c, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, config.NewConfig(), c)
}

func TestConfig_MarshalYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	c := config.NewConfig()
	c.Locales.First = "sv"

	b, err := c.MarshalYAML()
	require.NoError(t, err)

	l := config.NewLoaderFromBytes(b)
	require.NoError(t, l.Validate())

	got, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, locale.Swedish, got.FirstLocale())
}

func TestWriteAndLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	c, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.NewConfig(), c)

	require.NoError(t, config.WriteDefaultConfig(path, false))

	_, err = os.Stat(path)
	require.NoError(t, err)

	custom := []byte("apiVersion: kbkit.grammatek.com/v1beta1\nkind: Configuration\nlocales:\n  first: de\n")
	require.NoError(t, os.WriteFile(path, custom, 0o600))

	// Existing files are kept unless forced.
	require.NoError(t, config.WriteDefaultConfig(path, false))

	c, err = config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, locale.German, c.FirstLocale())

	require.NoError(t, config.WriteDefaultConfig(path, true))

	c, err = config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, locale.Undefined, c.FirstLocale())

	require.Error(t, config.WriteDefaultConfig(dir, false))
}

func TestConfig_Write(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "kbkit", "config.yaml")

	c := config.NewConfig()
	c.Output.Format = "yaml"
	c.Locales.First = "lv"
	require.NoError(t, c.Write(path, false))

	got, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", got.Output.Format)
	assert.Equal(t, locale.Latvian, got.FirstLocale())

	// Kept without force.
	require.NoError(t, config.NewConfig().Write(path, false))

	got, err = config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", got.Output.Format)

	require.NoError(t, config.NewConfig().Write(path, true))

	got, err = config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "text", got.Output.Format)
	assert.Equal(t, locale.Undefined, got.FirstLocale())

	require.Error(t, c.Write(filepath.Dir(path), true))
}

func TestGetPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	assert.Equal(t, "/tmp/xdg/kbkit/config.yaml", config.GetPath())
}
