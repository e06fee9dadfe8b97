package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/invopop/jsonschema"

	_ "embed"

	"github.com/grammatek/KeyboardKit/pkg/expr"
	"github.com/grammatek/KeyboardKit/pkg/locale"
	"github.com/grammatek/KeyboardKit/pkg/render"
	"github.com/grammatek/KeyboardKit/pkg/schema"
)

const (
	APIVersion = "kbkit.grammatek.com/v1beta1"
	Kind       = "Configuration"

	schemaURL = "https://raw.githubusercontent.com/grammatek/KeyboardKit/refs/heads/main/pkg/config/config.v1beta1.json"
)

var (
	//go:embed config.yaml
	defaultConfigYAML []byte

	ErrInvalidConfig = errors.New("invalid configuration")

	// DefaultValidator validates configuration files against the schema
	// reflected from [Config].
	DefaultValidator = schema.MustNewValidator(schemaURL, mustReflect())
)

//nolint:recvcheck // Must satisfy the jsonschema interface.
type Config struct {
	// Locales configures how locales are listed.
	Locales *LocalesConfig `json:"locales,omitempty" jsonschema:"title=Locales"`
	// Output configures the output format.
	Output *OutputConfig `json:"output,omitempty" jsonschema:"title=Output"`
	// APIVersion specifies the API version for this configuration.
	APIVersion string `json:"apiVersion" jsonschema:"title=API Version"`
	// Kind defines the type of configuration.
	Kind string `json:"kind" jsonschema:"title=Kind"`
}

type LocalesConfig struct {
	// First is the identifier of a locale listed before all others.
	First string `json:"first,omitempty" jsonschema:"title=First"`
	// Filter is a CEL expression selecting the listed locales.
	Filter string `json:"filter,omitempty" jsonschema:"title=Filter"`
}

type OutputConfig struct {
	// Format is the default output format.
	Format string `json:"format,omitempty" jsonschema:"title=Format,enum=text,enum=json,enum=yaml"`
}

// NewConfig creates a new [Config] with default values.
func NewConfig() *Config {
	c := &Config{
		APIVersion: APIVersion,
		Kind:       Kind,
	}
	c.EnsureDefaults()

	return c
}

// EnsureDefaults initializes nil or empty fields to their default values.
func (c *Config) EnsureDefaults() {
	if c.Locales == nil {
		c.Locales = &LocalesConfig{}
	}

	if c.Output == nil {
		c.Output = &OutputConfig{}
	}

	if c.Output.Format == "" {
		c.Output.Format = string(render.FormatText)
	}
}

// Validate checks values that the schema cannot: that the pinned locale is
// supported and that the filter compiles.
func (c *Config) Validate() error {
	if c.Locales != nil && c.Locales.First != "" {
		_, err := locale.Parse(c.Locales.First)
		if err != nil {
			return fmt.Errorf("%w: locales.first: %w", ErrInvalidConfig, err)
		}
	}

	if c.Locales != nil && c.Locales.Filter != "" {
		env, err := expr.NewEnvironment()
		if err != nil {
			return fmt.Errorf("%w: locales.filter: %w", ErrInvalidConfig, err)
		}

		_, err = env.Compile(c.Locales.Filter)
		if err != nil {
			return fmt.Errorf("%w: locales.filter: %w", ErrInvalidConfig, err)
		}
	}

	if c.Output != nil && c.Output.Format != "" {
		_, err := render.ParseFormat(c.Output.Format)
		if err != nil {
			return fmt.Errorf("%w: output.format: %w", ErrInvalidConfig, err)
		}
	}

	return nil
}

// FirstLocale returns the pinned locale, or [locale.Undefined] if none is set.
func (c *Config) FirstLocale() locale.Locale {
	if c.Locales == nil || c.Locales.First == "" {
		return locale.Undefined
	}

	l, err := locale.Parse(c.Locales.First)
	if err != nil {
		return locale.Undefined
	}

	return l
}

func (c Config) JSONSchemaExtend(jss *jsonschema.Schema) {
	if p, ok := jss.Properties.Get("apiVersion"); ok && p != nil {
		p.Enum = []any{APIVersion}
	}

	if p, ok := jss.Properties.Get("kind"); ok && p != nil {
		p.Enum = []any{Kind}
	}
}

// MarshalYAML serializes the config to YAML.
func (c Config) MarshalYAML() ([]byte, error) {
	type alias Config

	b, err := yaml.Marshal(alias(c))
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}

	return b, nil
}

// Write writes the config to path. An existing file is kept unless force
// is set.
func (c Config) Write(path string, force bool) error {
	pathInfo, err := os.Stat(path)
	if pathInfo != nil {
		switch {
		case pathInfo.IsDir():
			return fmt.Errorf("%s: path is a directory", path)
		case err == nil && pathInfo.Mode().IsRegular() && !force:
			slog.Debug("configuration file already exists, skipping write", slog.String("path", path))

			return nil
		}
	}

	err = os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	b, err := c.MarshalYAML()
	if err != nil {
		return err
	}

	err = os.WriteFile(path, b, 0o600)
	if err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// WriteDefaultConfig writes the commented default config.yaml to path. An
// existing file is kept unless force is set.
func WriteDefaultConfig(path string, force bool) error {
	pathInfo, err := os.Stat(path)
	if pathInfo != nil {
		switch {
		case pathInfo.IsDir():
			return fmt.Errorf("%s: path is a directory", path)
		case err == nil && pathInfo.Mode().IsRegular() && !force:
			slog.Debug("configuration file already exists, skipping write", slog.String("path", path))

			return nil
		}
	}

	err = os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	slog.Info("write default configuration", slog.String("path", path))

	err = os.WriteFile(path, defaultConfigYAML, 0o600)
	if err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// DefaultConfigYAML returns the commented default configuration.
func DefaultConfigYAML() []byte {
	return slices.Clone(defaultConfigYAML)
}

// GetPath returns the path to the configuration file.
func GetPath() string {
	if xdgHome, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && xdgHome != "" {
		return filepath.Join(xdgHome, "kbkit", "config.yaml")
	}

	usrHome, err := os.UserHomeDir()
	if err == nil && usrHome != "" {
		return filepath.Join(usrHome, ".config", "kbkit", "config.yaml")
	}

	tmpConfig := filepath.Join(os.TempDir(), "kbkit", "config.yaml")

	slog.Warn("could not determine user config directory, using temp path for config",
		slog.String("path", tmpConfig),
		slog.Any("error", fmt.Errorf("$XDG_CONFIG_HOME is unset, fall back to home directory: %w", err)),
	)

	return tmpConfig
}

// Schema returns the JSON schema for [Config].
func Schema() ([]byte, error) {
	return schema.Reflect(&Config{}) //nolint:wrapcheck // Already wrapped.
}

func mustReflect() []byte {
	b, err := Schema()
	if err != nil {
		panic(err)
	}

	return b
}
