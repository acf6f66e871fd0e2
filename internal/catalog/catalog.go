package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

const defaultCategory = "Sorting"

// Catalog is the ordered set of algorithms the dashboard knows how to label.
type Catalog struct {
	Algorithms []domain.Algorithm `yaml:"algorithms"`

	byID map[string]domain.Algorithm
}

func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}
	if err := validate(&c); err != nil {
		return nil, err
	}
	c.index()
	return &c, nil
}

func validate(c *Catalog) error {
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("catalog has no algorithms")
	}
	seen := make(map[string]bool, len(c.Algorithms))
	for i := range c.Algorithms {
		a := &c.Algorithms[i]
		a.ID = strings.TrimSpace(a.ID)
		if a.ID == "" {
			return fmt.Errorf("algorithm at index %d has no id", i)
		}
		if seen[a.ID] {
			return fmt.Errorf("algorithm %q is listed twice", a.ID)
		}
		seen[a.ID] = true
		if a.Complexity == "" {
			return fmt.Errorf("algorithm %q has no complexity", a.ID)
		}
		if a.Name == "" {
			a.Name = a.ID
		}
		if a.Category == "" {
			a.Category = defaultCategory
		}
	}
	return nil
}

func (c *Catalog) index() {
	c.byID = make(map[string]domain.Algorithm, len(c.Algorithms))
	for _, a := range c.Algorithms {
		c.byID[a.ID] = a
	}
}

// Lookup returns the catalog entry for id. Unknown ids come back with the id
// as name and "N/A" as complexity, which is how the UI labels them.
func (c *Catalog) Lookup(id string) (domain.Algorithm, bool) {
	if a, ok := c.byID[id]; ok {
		return a, true
	}
	return domain.Algorithm{ID: id, Name: id, Complexity: "N/A"}, false
}

func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.Algorithms))
	for _, a := range c.Algorithms {
		ids = append(ids, a.ID)
	}
	return ids
}

// Resolve maps ids to catalog entries preserving order; unknown ids are kept
// with placeholder labels.
func (c *Catalog) Resolve(ids []string) []domain.Algorithm {
	out := make([]domain.Algorithm, 0, len(ids))
	for _, id := range ids {
		a, _ := c.Lookup(id)
		out = append(out, a)
	}
	return out
}
