package core

import "sort"

// Sim defines the minimal contract a host simulation must implement. The
// simulation owns every gameplay object; tools only observe and edit them.
type Sim interface {
	Name() string
	Reset(seed int64)
	Step()
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames returns the registered simulation names in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Body is the drawable state of a moving simulated object.
type Body struct {
	Position Vec3
	Velocity Vec3
	Heading  float64
	Airborne bool
}
