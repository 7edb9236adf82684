// Package gen implements the hetvecgen code generator.
//
// The generator reads a hetvec.yaml file describing one or more
// heterogeneous collections, inspects the Go package it lives in to
// find the element and visitor types, works out which visitor method
// handles each ordered pair of element types, and writes the
// collection types out as Go source.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"os"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// DefaultOutput is the name of the generated file when the
// configuration does not specify one.
const DefaultOutput = "hetvec_gen.go"

// Config represents the top-level hetvec.yaml configuration.
type Config struct {
	// Output is the name of the generated file, relative to the
	// package directory.
	Output string `yaml:"output,omitempty"`

	// Collections lists the collection types to generate.
	Collections []Collection `yaml:"collections"`
}

// Collection describes a single heterogeneous collection type.
type Collection struct {
	// Name is the name of the generated Go type.
	Name string `yaml:"name"`

	// Types holds the element types in declaration order.
	// Each must be a type declared in the package or
	// a predeclared type, and none may appear twice.
	Types []string `yaml:"types"`

	// Visitors lists the visitor types that the collection
	// can be traversed with.
	Visitors []Visitor `yaml:"visitors,omitempty"`
}

// Visitor names a visitor type.
type Visitor struct {
	// Type is the name of the visitor type.
	Type string `yaml:"type"`

	// Method is the name of the generated traversal method.
	// It defaults to "Traverse" followed by Type.
	Method string `yaml:"method,omitempty"`
}

// LoadConfig reads and validates the configuration file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses and validates configuration data.
// Unknown fields are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// OutputFile returns the name of the generated file.
func (cfg *Config) OutputFile() string {
	if cfg.Output == "" {
		return DefaultOutput
	}
	return cfg.Output
}

// Validate checks the configuration for errors that can be found
// without looking at any Go code, and fills in defaults.
func (cfg *Config) Validate() error {
	if len(cfg.Collections) == 0 {
		return errors.New("no collections declared")
	}
	// topLevel maps each generated package-level identifier
	// to the collection that generates it.
	topLevel := make(map[string]string)
	claim := func(ident, coll string) error {
		if other, ok := topLevel[ident]; ok {
			return fmt.Errorf("collection %s: generated name %s clashes with collection %s", coll, ident, other)
		}
		topLevel[ident] = coll
		return nil
	}
	for i := range cfg.Collections {
		c := &cfg.Collections[i]
		if !token.IsIdentifier(c.Name) {
			return fmt.Errorf("collection %d: invalid name %q", i, c.Name)
		}
		if len(c.Types) == 0 {
			return fmt.Errorf("collection %s: no types declared", c.Name)
		}
		if err := c.validate(); err != nil {
			return err
		}
		for _, ident := range c.topLevelNames() {
			if err := claim(ident, c.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Collection) validate() error {
	seen := make(map[string]bool)
	// methods holds the names of the generated methods.
	methods := map[string]bool{
		"Size":     true,
		"Empty":    true,
		"Clear":    true,
		"traverse": true,
	}
	for _, t := range c.Types {
		if !token.IsIdentifier(t) {
			return fmt.Errorf("collection %s: invalid type name %q", c.Name, t)
		}
		if seen[t] {
			return &DuplicateTypeError{
				Collection: c.Name,
				Type:       t,
			}
		}
		seen[t] = true
		m := "Insert" + exported(t)
		if methods[m] {
			return fmt.Errorf("collection %s: types produce clashing method name %s", c.Name, m)
		}
		methods[m] = true
	}
	for i := range c.Visitors {
		v := &c.Visitors[i]
		if !token.IsIdentifier(v.Type) {
			return fmt.Errorf("collection %s: invalid visitor type %q", c.Name, v.Type)
		}
		if v.Method == "" {
			v.Method = "Traverse" + exported(v.Type)
		}
		if !token.IsIdentifier(v.Method) {
			return fmt.Errorf("collection %s: invalid method name %q for visitor %s", c.Name, v.Method, v.Type)
		}
		if methods[v.Method] {
			return fmt.Errorf("collection %s: method name %s for visitor %s is already in use", c.Name, v.Method, v.Type)
		}
		methods[v.Method] = true
	}
	return nil
}

// topLevelNames returns the package-level identifiers
// generated for the collection.
func (c *Collection) topLevelNames() []string {
	names := []string{
		c.Name,
		c.Name + "Elem",
		"New" + c.Name,
		handlersType(c.Name),
	}
	for _, t := range c.Types {
		names = append(names, c.Name+exported(t))
	}
	return names
}

// exported returns s with its first letter in upper case.
func exported(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}

func unexported(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[n:]
}

func handlersType(coll string) string {
	return unexported(coll) + "Handlers"
}
