package template

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/alexanderramin/century/internal/domain"
)

// Built-in template ids.
const (
	SavannaStandard      = "savanna-standard"
	DeforestationPasture = "deforestation-pasture"
	PastureMaintenance   = "pasture-maintenance"
	SoyRotation          = "soy-rotation"
)

// ErrTemplateNotFound is returned when no template matches a lookup.
var ErrTemplateNotFound = errors.New("template not found")

//go:embed catalog/*.json
var builtin embed.FS

// Catalog is the read-only set of event templates available to the
// segmenter and to manual preset blocks.
type Catalog struct {
	byID        map[string]*domain.EventTemplate
	roles       map[string]string
	maintenance map[domain.Regime]string
	transition  string
}

// DefaultCatalog loads the embedded templates only.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog("")
}

// LoadCatalog loads the embedded templates and then every *.json file in
// overrideDir, if set. An override replaces the built-in template with the
// same id.
func LoadCatalog(overrideDir string) (*Catalog, error) {
	c := &Catalog{
		byID:        map[string]*domain.EventTemplate{},
		roles:       map[string]string{},
		maintenance: map[domain.Regime]string{},
	}

	entries, err := builtin.ReadDir("catalog")
	if err != nil {
		return nil, fmt.Errorf("reading embedded templates: %w", err)
	}
	for _, e := range entries {
		data, err := builtin.ReadFile("catalog/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading embedded template %s: %w", e.Name(), err)
		}
		if err := c.add(data, e.Name()); err != nil {
			return nil, err
		}
	}

	if overrideDir != "" {
		paths, err := filepath.Glob(filepath.Join(overrideDir, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("listing template overrides: %w", err)
		}
		for _, p := range paths {
			data, err := os.ReadFile(p)
			if err != nil {
				return nil, fmt.Errorf("reading template override: %w", err)
			}
			if err := c.add(data, p); err != nil {
				return nil, err
			}
		}
	}

	for _, r := range []domain.Regime{domain.RegimeSavana, domain.RegimePastagem, domain.RegimeSoja} {
		if _, ok := c.maintenance[r]; !ok {
			return nil, fmt.Errorf("no maintenance template for regime %s", r)
		}
	}
	if c.transition == "" {
		return nil, fmt.Errorf("no transition template")
	}
	return c, nil
}

func (c *Catalog) add(data []byte, source string) error {
	schema, err := ParseSchema(data)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	tmpl, err := Build(schema)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}

	// An override may change the role of an id; drop stale role bindings.
	if old, ok := c.byID[tmpl.ID]; ok {
		if c.maintenance[old.Regime] == tmpl.ID {
			delete(c.maintenance, old.Regime)
		}
		if c.transition == tmpl.ID {
			c.transition = ""
		}
	}

	c.byID[tmpl.ID] = tmpl
	c.roles[tmpl.ID] = schema.Role
	switch schema.Role {
	case RoleMaintenance:
		c.maintenance[tmpl.Regime] = tmpl.ID
	case RoleTransition:
		c.transition = tmpl.ID
	}
	return nil
}

// Get returns the template with the given id.
func (c *Catalog) Get(id string) (*domain.EventTemplate, error) {
	t, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	return t, nil
}

// List returns all templates sorted by id.
func (c *Catalog) List() []*domain.EventTemplate {
	out := make([]*domain.EventTemplate, 0, len(c.byID))
	for _, t := range c.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Role reports whether a template is a maintenance or transition template.
func (c *Catalog) Role(id string) string {
	return c.roles[id]
}

// ForRegime returns the maintenance template of a managed regime.
func (c *Catalog) ForRegime(r domain.Regime) (*domain.EventTemplate, error) {
	id, ok := c.maintenance[r]
	if !ok {
		return nil, fmt.Errorf("%w: no maintenance template for regime %s", ErrTemplateNotFound, r)
	}
	return c.byID[id], nil
}

// Transition returns the savanna-to-pasture deforestation template.
func (c *Catalog) Transition() (*domain.EventTemplate, error) {
	if c.transition == "" {
		return nil, fmt.Errorf("%w: no transition template", ErrTemplateNotFound)
	}
	return c.byID[c.transition], nil
}
