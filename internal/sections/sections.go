package sections

import (
	"sort"

	"tweakpanel/internal/core"
	"tweakpanel/internal/tweak"
)

// Builder constructs the ordered panels for one simulation.
type Builder func(sim core.Sim, scope tweak.BaselineScope) []tweak.Panel

var builders = map[string]Builder{}

// Register adds a panel builder for the simulation with the provided name.
func Register(sim string, b Builder) {
	if sim == "" || b == nil {
		return
	}
	builders[sim] = b
}

// Build returns the panels registered for sim, minus any whose name appears in
// disabled.
func Build(sim core.Sim, scope tweak.BaselineScope, disabled ...string) ([]tweak.Panel, bool) {
	if sim == nil {
		return nil, false
	}
	b, ok := builders[sim.Name()]
	if !ok {
		return nil, false
	}
	skip := make(map[string]bool, len(disabled))
	for _, name := range disabled {
		skip[name] = true
	}
	var out []tweak.Panel
	for _, p := range b(sim, scope) {
		if skip[p.Name()] {
			continue
		}
		out = append(out, p)
	}
	return out, true
}

// Sims returns the simulation names that have panels, sorted.
func Sims() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
