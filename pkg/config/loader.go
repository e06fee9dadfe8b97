package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/grammatek/KeyboardKit/pkg/schema"
)

// Validator validates decoded configuration data.
type Validator interface {
	Validate(data any) error
}

// Loader validates and decodes configuration files.
type Loader struct {
	validator Validator
	data      []byte
}

// NewLoaderFromBytes creates a [Loader] from byte data.
func NewLoaderFromBytes(data []byte) *Loader {
	return &Loader{
		data:      data,
		validator: DefaultValidator,
	}
}

// NewLoaderFromFile creates a [Loader] from a file path.
func NewLoaderFromFile(path string) (*Loader, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-provided config path.
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return NewLoaderFromBytes(data), nil
}

// Validate validates the configuration data against the schema.
func (l *Loader) Validate() error {
	var doc any

	err := yaml.Unmarshal(l.data, &doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if l.validator == nil {
		return nil
	}

	err = l.validator.Validate(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, l.annotate(err))
	}

	return nil
}

// Load decodes the configuration, applies defaults and checks its values.
func (l *Loader) Load() (*Config, error) {
	c := &Config{}

	err := yaml.NewDecoder(bytes.NewReader(l.data)).Decode(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	c.EnsureDefaults()

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	return c, nil
}

// annotate appends the offending source lines to schema validation errors.
func (l *Loader) annotate(err error) error {
	var validationErr *schema.ValidationError
	if !errors.As(err, &validationErr) || validationErr.Path == nil {
		return err
	}

	src, annotateErr := validationErr.Path.AnnotateSource(l.data, false)
	if annotateErr != nil || len(src) == 0 {
		return err
	}

	return fmt.Errorf("%w\n%s", err, src)
}

// LoadFile loads and validates the configuration file at path. A missing file
// yields the default configuration.
func LoadFile(path string) (*Config, error) {
	l, err := NewLoaderFromFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	err = l.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate %q: %w", path, err)
	}

	return l.Load()
}
