package tweak

import "tweakpanel/internal/core"

// TransitionFunc observes section lifecycle changes. captured is the number
// of baselines recorded during the tick that triggered the call.
type TransitionFunc func(section string, from, to State, captured int)

// Registry is the ordered set of panels driven once per frame. Order is also
// render order. It is not safe for concurrent use.
type Registry struct {
	panels []Panel
	states []State
	step   *Step

	onTransition TransitionFunc
}

// NewRegistry constructs a registry over panels sharing step. A nil step uses
// DefaultStep.
func NewRegistry(step *Step, panels ...Panel) *Registry {
	if step == nil {
		step = NewStep(DefaultStep)
	}
	r := &Registry{step: step}
	for _, p := range panels {
		if p == nil {
			continue
		}
		r.panels = append(r.panels, p)
		r.states = append(r.states, Unbound)
	}
	return r
}

// OnTransition installs an observer called from Tick whenever a panel changes
// state or captures baselines.
func (r *Registry) OnTransition(fn TransitionFunc) { r.onTransition = fn }

// Step returns the shared global step.
func (r *Registry) Step() *Step { return r.step }

// Len reports the number of panels.
func (r *Registry) Len() int { return len(r.panels) }

// Panels returns the panels in order.
func (r *Registry) Panels() []Panel { return r.panels }

// Panel returns the panel at index i.
func (r *Registry) Panel(i int) (Panel, bool) {
	if i < 0 || i >= len(r.panels) {
		return nil, false
	}
	return r.panels[i], true
}

// Lookup finds a panel by name.
func (r *Registry) Lookup(name string) (Panel, int, bool) {
	for i, p := range r.panels {
		if p.Name() == name {
			return p, i, true
		}
	}
	return nil, -1, false
}

// Tick locates every panel's target and captures missing baselines, in
// order. A panel that finds nothing does not affect the others.
func (r *Registry) Tick(g core.Graph) {
	for i, p := range r.panels {
		n := 0
		if p.Locate(g) {
			n = p.CaptureIfNeeded()
		}
		st := p.State()
		if (st != r.states[i] || n > 0) && r.onTransition != nil {
			r.onTransition(p.Name(), r.states[i], st, n)
		}
		r.states[i] = st
	}
}

// Render returns every panel's view in order.
func (r *Registry) Render() []View {
	views := make([]View, len(r.panels))
	step := r.step.Value()
	for i, p := range r.panels {
		views[i] = p.View(step)
	}
	return views
}

// Apply relays an action to a row of the panel at index section using the
// current global step.
func (r *Registry) Apply(section, row int, a Action) bool {
	p, ok := r.Panel(section)
	if !ok {
		return false
	}
	return p.Apply(row, a, r.step.Value())
}

// Valid reports the validity flag of every panel in order.
func (r *Registry) Valid() []bool {
	out := make([]bool, len(r.panels))
	for i, p := range r.panels {
		out[i] = p.Valid()
	}
	return out
}
