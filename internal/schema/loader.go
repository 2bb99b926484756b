package schema

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed abridged.yaml
var abridged []byte

var (
	defaultOnce   sync.Once
	defaultSchema *Schema
	defaultErr    error
)

// Default returns the embedded schema. The result is shared; do not modify it.
func Default() (*Schema, error) {
	defaultOnce.Do(func() {
		defaultSchema, defaultErr = Parse(abridged)
	})

	return defaultSchema, defaultErr
}

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Schema.
func Parse(data []byte) (*Schema, error) {
	var s Schema

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&s)

	return &s, nil
}

// applyDefaults fills in names and the document version.
func applyDefaults(s *Schema) {
	if s.Version == "" {
		s.Version = "1.0"
	}

	if s.Types == nil {
		s.Types = map[string]*TypeDef{}
	}

	for name, td := range s.Types {
		if td == nil {
			td = &TypeDef{}
			s.Types[name] = td
		}

		td.Name = name
	}
}
