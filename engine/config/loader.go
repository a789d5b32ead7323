package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Catalog is the set of storefront configurations shipped with the application.
type Catalog struct {
	Stores []StoreConfig `yaml:"stores"`
}

// Load decodes a YAML catalog, fills defaults and validates every store.
// Unknown keys are rejected so a typo in a tuning constant fails loudly.
//
// Parameters:
//   - r: reader over the YAML document
//
// Returns:
//   - *Catalog: the validated catalog
//   - error: decode or validation error
func Load(r io.Reader) (*Catalog, error) {
	var cat Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil {
		if errors.Is(err, io.EOF) {
			return &Catalog{}, nil
		}
		return nil, fmt.Errorf("failed to decode store catalog: %w", err)
	}

	seen := make(map[string]bool, len(cat.Stores))
	for i := range cat.Stores {
		s := cat.Stores[i].WithDefaults()
		if s.Name == "" {
			return nil, &ConfigError{Field: fmt.Sprintf("stores[%d].name", i), Reason: "is empty"}
		}
		if seen[s.Name] {
			return nil, &ConfigError{Store: s.Name, Field: "name", Reason: "is duplicated"}
		}
		seen[s.Name] = true
		if err := s.Validate(); err != nil {
			return nil, err
		}
		cat.Stores[i] = s
	}
	return &cat, nil
}

// LoadFile opens and loads a YAML catalog from disk.
//
// Parameters:
//   - path: file path of the catalog
//
// Returns:
//   - *Catalog: the validated catalog
//   - error: open, decode or validation error
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store catalog %s: %w", path, err)
	}
	defer f.Close()

	cat, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("store catalog %s: %w", path, err)
	}
	return cat, nil
}

// Store looks up a store by name.
//
// Parameters:
//   - name: the store name
//
// Returns:
//   - StoreConfig: the store configuration
//   - bool: false if no store has that name
func (c *Catalog) Store(name string) (StoreConfig, bool) {
	i := slices.IndexFunc(c.Stores, func(s StoreConfig) bool { return s.Name == name })
	if i < 0 {
		return StoreConfig{}, false
	}
	return c.Stores[i], true
}

// Names returns the store names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Stores))
	for i, s := range c.Stores {
		names[i] = s.Name
	}
	return names
}
