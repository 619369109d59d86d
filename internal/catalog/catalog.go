// Package catalog provides the ordered list of named dig patterns that the
// evaluator runs over, loaded from YAML.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/digsim/internal/pattern"
)

//go:embed defaults/catalog.yaml
var defaultCatalogYAML []byte

// Entry is a catalog row as written in the source file. Rows are not
// validated until Style is called, so one malformed pattern does not
// prevent the rest of the catalog from loading.
type Entry struct {
	Name   string
	Rows   []string
	Source string // File the entry came from; empty for the built-in catalog
}

// Style validates the entry's rows and returns the parsed style.
func (e Entry) Style() (pattern.Style, error) {
	p, err := pattern.Parse(e.Rows)
	if err != nil {
		return pattern.Style{}, fmt.Errorf("style %q: %w", e.Name, err)
	}
	return pattern.Style{Name: e.Name, Pattern: p}, nil
}

// Catalog is an ordered set of uniquely named entries.
type Catalog struct {
	Entries []Entry
}

// yamlCatalog represents the YAML structure for a catalog file.
type yamlCatalog struct {
	Patterns []yamlPattern `yaml:"patterns"`
}

// yamlPattern represents a single pattern in YAML format.
type yamlPattern struct {
	Style string   `yaml:"style"`
	Rows  []string `yaml:"rows"`
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var yc yamlCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	c := &Catalog{}
	for i, yp := range yc.Patterns {
		name := strings.TrimSpace(yp.Style)
		if name == "" {
			return nil, fmt.Errorf("pattern %d: missing style name", i)
		}
		if err := c.add(Entry{Name: name, Rows: yp.Rows}); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	c, err := Parse(defaultCatalogYAML)
	if err != nil {
		return nil, fmt.Errorf("catalog: built-in catalog: %w", err)
	}
	return c, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.Entries)
}

// Names returns the style names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		names[i] = e.Name
	}
	return names
}

// Lookup finds an entry by style name, ignoring case and surrounding space.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	key := normalize(name)
	for _, e := range c.Entries {
		if normalize(e.Name) == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Select returns a catalog holding only the named entries, in the order
// requested. An empty list selects everything.
func (c *Catalog) Select(names []string) (*Catalog, error) {
	if len(names) == 0 {
		return c, nil
	}

	out := &Catalog{}
	for _, name := range names {
		e, ok := c.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("catalog: unknown style %q", name)
		}
		if err := out.add(e); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// add appends e, rejecting duplicate names.
func (c *Catalog) add(e Entry) error {
	if existing, ok := c.Lookup(e.Name); ok {
		return fmt.Errorf("catalog: duplicate style %q (already defined as %q)", e.Name, existing.Name)
	}
	c.Entries = append(c.Entries, e)
	return nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
