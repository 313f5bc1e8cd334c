package engine

import (
	"errors"
	"fmt"
	"slices"

	"TextSidekick/internal/ports"
)

// ErrUnknownStrategy is returned when no engine is registered under a name.
var ErrUnknownStrategy = errors.New("unknown engine strategy")

// Registry keeps a mapping from strategy names to engine implementations.
type Registry struct {
	engines map[string]ports.Engine
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{engines: map[string]ports.Engine{}}
}

// Register adds or replaces an engine implementation.
func (r *Registry) Register(engine ports.Engine) {
	if r.engines == nil {
		r.engines = map[string]ports.Engine{}
	}
	r.engines[engine.Name()] = engine
}

// Resolve returns an engine by name or ErrUnknownStrategy if it is absent.
func (r *Registry) Resolve(name string) (ports.Engine, error) {
	if engine, ok := r.engines[name]; ok {
		return engine, nil
	}
	return nil, fmt.Errorf("engine %q: %w", name, ErrUnknownStrategy)
}

// Names lists registered strategies in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
