package graph

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Products maps a binary unit's name to the jars recorded for it by the
// upstream packaging step, grouped as base directory to relative jar paths.
type Products map[string]map[string][]string

// Graph holds the build units and jar products loaded from the export file
// written by the upstream build.
type Graph struct {
	units    map[string]*unit
	order    []string
	products Products
}

// Units returns all build units in their declaration order.
func (g *Graph) Units() []Unit {
	us := make([]Unit, 0, len(g.order))
	for _, n := range g.order {
		us = append(us, g.units[n])
	}
	return us
}

// Jars returns the recorded jar products for the named unit, keyed by base
// directory. The result is nil for units without any recorded products.
func (g *Graph) Jars(name string) map[string][]string {
	return g.products[name]
}

// Products returns the full jar product map.
func (g *Graph) Products() Products {
	return g.products
}

type unitSpec struct {
	Name     string   `yaml:"name"`
	Binary   bool     `yaml:"binary,omitempty"`
	Internal bool     `yaml:"internal,omitempty"`
	Language string   `yaml:"language,omitempty"`
	Sources  []string `yaml:"sources,omitempty"`
	Deps     []string `yaml:"deps,omitempty"`
}

type graphSpec struct {
	Units    []unitSpec `yaml:"units,omitempty"`
	Products Products   `yaml:"products,omitempty"`
}

// Load parses a build-graph export and resolves the dependency references
// between its units. Dangling references, duplicated unit names and products
// recorded for unknown units are all rejected as an inconsistent export.
func Load(log *zap.Logger, data []byte) (*Graph, error) {
	var export graphSpec
	if err := yaml.Unmarshal(data, &export); err != nil {
		log.Error("Unable to parse build-graph export content.", zap.Error(err))
		return nil, err
	}

	g := &Graph{
		units:    map[string]*unit{},
		products: export.Products,
	}
	if g.products == nil {
		g.products = Products{}
	}

	for i := range export.Units {
		s := export.Units[i]
		if s.Name == "" {
			log.Error("Build-graph export contains a unit without a name.")
			return nil, fmt.Errorf("unit at index %d has no name", i)
		}
		if g.units[s.Name] != nil {
			log.Error("Build-graph export contains a duplicated unit.", zap.String("unit", s.Name))
			return nil, fmt.Errorf("duplicate unit %q", s.Name)
		}
		g.units[s.Name] = &unit{
			name:     s.Name,
			binary:   s.Binary,
			internal: s.Internal,
			language: s.Language,
			sources:  s.Sources,
		}
		g.order = append(g.order, s.Name)
	}

	for _, s := range export.Units {
		u := g.units[s.Name]
		for _, d := range s.Deps {
			dep := g.units[d]
			if dep == nil {
				log.Error("Build unit depends on an unknown unit.", zap.String("unit", s.Name), zap.String("dependency", d))
				return nil, fmt.Errorf("unit %q depends on unknown unit %q", s.Name, d)
			}
			u.deps = append(u.deps, dep)
		}
	}

	for n := range g.products {
		if g.units[n] == nil {
			log.Error("Jar products are recorded for an unknown unit.", zap.String("unit", n))
			return nil, fmt.Errorf("products recorded for unknown unit %q", n)
		}
	}
	return g, nil
}

type unit struct {
	name     string
	binary   bool
	internal bool
	language string
	sources  []string
	deps     []*unit
}

func (u *unit) Name() string {
	return u.name
}

func (u *unit) IsBinary() bool {
	return u.binary
}

func (u *unit) IsInternal() bool {
	return u.internal
}

func (u *unit) HasSources(ext string) bool {
	if u.language != "" && u.language == strings.TrimPrefix(ext, ".") {
		return true
	}
	for _, s := range u.sources {
		if strings.HasSuffix(s, ext) {
			return true
		}
	}
	return false
}

func (u *unit) Sources() []string {
	return u.sources
}

func (u *unit) Deps() []Unit {
	ds := make([]Unit, len(u.deps))
	for i := range u.deps {
		ds[i] = u.deps[i]
	}
	return ds
}
