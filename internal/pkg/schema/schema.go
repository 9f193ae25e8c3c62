// internal/pkg/schema/schema.go
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const baseURL = "https://realestate-be/schemas/"

// Names of the embedded schemas
const (
	Property = "property"
	Seed     = "seed"
)

// Validator checks JSON payloads against the embedded schemas.
type Validator struct {
	schemas map[string]*jsonschema.Schema
}

// New compiles every embedded schema.
func New() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	compiler.AssertFormat = true

	var names []string
	err := fs.WalkDir(schemaFS, "schemas", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".json") {
			return nil
		}
		raw, err := schemaFS.ReadFile(p)
		if err != nil {
			return err
		}
		if err := compiler.AddResource(baseURL+path.Base(p), bytes.NewReader(raw)); err != nil {
			return fmt.Errorf("failed to add schema %s: %w", p, err)
		}
		names = append(names, strings.TrimSuffix(path.Base(p), ".json"))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load schemas: %w", err)
	}

	v := &Validator{schemas: make(map[string]*jsonschema.Schema, len(names))}
	for _, name := range names {
		s, err := compiler.Compile(baseURL + name + ".json")
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
		}
		v.schemas[name] = s
	}
	return v, nil
}

// MustNew is New for process start-up.
func MustNew() *Validator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks body against the named schema. Violations wrap
// domain.ErrInvalidInput.
func (v *Validator) Validate(name string, body []byte) error {
	s, ok := v.schemas[name]
	if !ok {
		return fmt.Errorf("schema %q not found", name)
	}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("%w: malformed JSON: %v", domain.ErrInvalidInput, err)
	}

	if err := s.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, describe(verr))
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// ValidateProperty checks a single listing payload.
func (v *Validator) ValidateProperty(body []byte) error {
	return v.Validate(Property, body)
}

// describe flattens the innermost causes into one readable line
func describe(err *jsonschema.ValidationError) string {
	var msgs []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			msgs = append(msgs, loc+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(err)
	return strings.Join(msgs, "; ")
}
