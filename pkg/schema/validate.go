// Package schema generates JSON schemas from Go types and validates YAML
// documents against them.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/invopop/jsonschema"

	jsv "github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidationError is a schema violation, located by a [yaml.Path] that can
// be used with [yaml.Path.AnnotateSource].
type ValidationError struct {
	Path   *yaml.Path // YAML path to the failing value.
	Detail string     // Validator message.
}

func (e *ValidationError) Error() string {
	if e.Path != nil {
		return fmt.Sprintf("error at %s: %s", e.Path.String(), e.Detail)
	}

	return "validation error: " + e.Detail
}

// Reflect generates a JSON schema document for v.
func Reflect(v any) ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}

	b, err := json.MarshalIndent(r.Reflect(v), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return b, nil
}

// Validator validates data against a JSON schema.
// Uses [github.com/santhosh-tekuri/jsonschema/v6].
type Validator struct {
	schema *jsv.Schema
}

// NewValidator compiles schemaData, registered under url.
func NewValidator(url string, schemaData []byte) (*Validator, error) {
	doc, err := jsv.UnmarshalJSON(bytes.NewReader(schemaData))
	if err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}

	compiler := jsv.NewCompiler()

	err = compiler.AddResource(url, doc)
	if err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	s, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &Validator{schema: s}, nil
}

// MustNewValidator is like [NewValidator] but panics on error.
func MustNewValidator(url string, schemaData []byte) *Validator {
	v, err := NewValidator(url, schemaData)
	if err != nil {
		panic(err)
	}

	return v
}

// ValidateYAML decodes a YAML document and validates it.
func (v *Validator) ValidateYAML(data []byte) error {
	var doc any

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}

	return v.Validate(doc)
}

// Validate validates decoded data. Values are normalized through JSON first,
// so the output of any YAML or JSON decoder is accepted.
func (v *Validator) Validate(data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("normalize data: %w", err)
	}

	doc, err := jsv.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("normalize data: %w", err)
	}

	err = v.schema.Validate(doc)
	if err == nil {
		return nil
	}

	var validationErr *jsv.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("schema validation: %w", err)
	}

	return &ValidationError{
		Path:   buildPathFromLocation(findMostSpecificLocation(validationErr)),
		Detail: validationErr.Error(),
	}
}

// findMostSpecificLocation returns the longest InstanceLocation among err
// and all of its causes.
func findMostSpecificLocation(err *jsv.ValidationError) []string {
	longest := err.InstanceLocation

	for _, cause := range err.Causes {
		candidate := findMostSpecificLocation(cause)
		if len(candidate) > len(longest) {
			longest = candidate
		}
	}

	return longest
}

func buildPathFromLocation(location []string) *yaml.Path {
	pb := &yaml.PathBuilder{}
	current := pb.Root()

	for _, part := range location {
		if index, err := strconv.ParseUint(part, 10, 64); err == nil {
			current = current.Index(uint(index))
		} else {
			current = current.Child(part)
		}
	}

	return current.Build()
}
