package checkers

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
)

// BuilderFunc creates a Checker from generic config.
// Config is a map of checker-specific settings parsed from user config.
type BuilderFunc func(cfg map[string]any) (driven.Checker, error)

// Registry maps checker names to their builders.
// It allows the pipeline to be assembled from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new checker registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a checker builder to the registry.
// Name should be unique and match the checker's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a checker by name with the given config.
// Returns error if the checker name is not registered.
func (r *Registry) Build(name string, cfg map[string]any) (driven.Checker, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown checker: %s", name)
	}
	return builder(cfg)
}

// BuildPipeline builds the named checkers, in order, into one pipeline.
func (r *Registry) BuildPipeline(names []string, cfg map[string]map[string]any) (*Pipeline, error) {
	p := NewPipeline()
	for _, name := range names {
		c, err := r.Build(name, cfg[name])
		if err != nil {
			return nil, err
		}
		p.Add(c)
	}
	return p, nil
}

// Has returns true if a checker with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered checker names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
