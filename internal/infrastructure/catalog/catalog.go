// Package catalog loads the fixed sample prompt catalog.
package catalog

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/safety-dash/assets"
	"github.com/doeshing/safety-dash/internal/domain"
	"github.com/doeshing/safety-dash/internal/ports"
)

// Catalog is an immutable, order-preserving category -> prompts mapping.
type Catalog struct {
	version    string
	categories []domain.Category
	prompts    map[domain.Category][]domain.PromptEntry
}

type catalogFile struct {
	Version    string         `yaml:"version"`
	Categories []categoryFile `yaml:"categories"`
}

type categoryFile struct {
	Category string       `yaml:"category"`
	Prompts  []promptFile `yaml:"prompts"`
}

type promptFile struct {
	Label string `yaml:"label"`
	Text  string `yaml:"text"`
}

// NewDefault parses the embedded catalog.
func NewDefault() (*Catalog, error) {
	return Parse(assets.CatalogYAML)
}

// Parse builds a catalog from YAML, preserving the declared order.
func Parse(raw []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, errors.New("catalog declares no categories")
	}

	c := &Catalog{
		version: file.Version,
		prompts: make(map[domain.Category][]domain.PromptEntry, len(file.Categories)),
	}
	for _, cf := range file.Categories {
		category, err := domain.ParseCategory(cf.Category)
		if err != nil {
			return nil, err
		}
		if _, dup := c.prompts[category]; dup {
			return nil, fmt.Errorf("category %s declared twice", category)
		}
		if len(cf.Prompts) == 0 {
			return nil, fmt.Errorf("category %s has no prompts", category)
		}

		seen := make(map[string]bool, len(cf.Prompts))
		entries := make([]domain.PromptEntry, 0, len(cf.Prompts))
		for _, pf := range cf.Prompts {
			if pf.Label == "" || pf.Text == "" {
				return nil, fmt.Errorf("category %s: prompt label and text are required", category)
			}
			if seen[pf.Label] {
				return nil, fmt.Errorf("category %s: duplicate label %q", category, pf.Label)
			}
			seen[pf.Label] = true
			entries = append(entries, domain.PromptEntry{Category: category, Label: pf.Label, Text: pf.Text})
		}

		c.categories = append(c.categories, category)
		c.prompts[category] = entries
	}
	for _, required := range []domain.Category{domain.CategorySafe, domain.CategoryPotentiallyUnsafe} {
		if _, ok := c.prompts[required]; !ok {
			return nil, fmt.Errorf("catalog is missing category %s", required)
		}
	}
	return c, nil
}

// Version returns the asset version string.
func (c *Catalog) Version() string {
	return c.version
}

// Categories returns the categories in menu order.
func (c *Catalog) Categories() []domain.Category {
	return append([]domain.Category(nil), c.categories...)
}

// PromptsFor returns the prompts of a category in menu order.
func (c *Catalog) PromptsFor(category domain.Category) []domain.PromptEntry {
	return append([]domain.PromptEntry(nil), c.prompts[category]...)
}

// Lookup finds a prompt by label within a category.
func (c *Catalog) Lookup(category domain.Category, label string) (domain.PromptEntry, bool) {
	for _, entry := range c.prompts[category] {
		if entry.Label == label {
			return entry, true
		}
	}
	return domain.PromptEntry{}, false
}

var _ ports.PromptCatalog = (*Catalog)(nil)
