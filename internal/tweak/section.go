package tweak

import "tweakpanel/internal/core"

// Panel is the type-erased face of a Section used by the Registry and by
// render/input adapters.
type Panel interface {
	Name() string
	Title() string
	// Locate re-resolves the target and reports whether it is present.
	Locate(g core.Graph) bool
	// CaptureIfNeeded records baselines for every observable binding that
	// has none yet and returns the number of entries captured.
	CaptureIfNeeded() int
	Valid() bool
	State() State
	View(step float64) View
	// Apply relays an operator action to the binding at row. It reports
	// whether the live field was written.
	Apply(row int, a Action, step float64) bool
}

type group struct {
	title    string
	bindings []int
}

// Section groups one target type with its ordered bindings and their
// baselines. It is not safe for concurrent use.
type Section[T any] struct {
	name     string
	title    string
	missing  string
	resolver Resolver[T]
	bindings []Binding[T]
	groups   []group

	baselines *Baselines

	target   T
	instance InstanceID
	bound    bool
}

// SectionOption configures a Section.
type SectionOption func(*sectionConfig)

type sectionConfig struct {
	title   string
	missing string
	scope   BaselineScope
}

// Title sets the header shown above the section.
func Title(s string) SectionOption {
	return func(c *sectionConfig) { c.title = s }
}

// Missing sets the message shown while the target is absent.
func Missing(s string) SectionOption {
	return func(c *sectionConfig) { c.missing = s }
}

// WithScope selects the baseline keying policy.
func WithScope(s BaselineScope) SectionOption {
	return func(c *sectionConfig) { c.scope = s }
}

// NewSection constructs a section named name whose target is produced by r.
func NewSection[T any](name string, r Resolver[T], opts ...SectionOption) *Section[T] {
	cfg := sectionConfig{title: name, missing: name + " not found"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Section[T]{
		name:      name,
		title:     cfg.title,
		missing:   cfg.missing,
		resolver:  r,
		baselines: NewBaselines(cfg.scope),
	}
}

// Add appends bindings to an untitled group.
func (s *Section[T]) Add(bindings ...Binding[T]) *Section[T] {
	return s.Group("", bindings...)
}

// Group appends a titled group of bindings that read from one sub-object.
func (s *Section[T]) Group(title string, bindings ...Binding[T]) *Section[T] {
	g := group{title: title}
	for _, b := range bindings {
		if b == nil {
			continue
		}
		g.bindings = append(g.bindings, len(s.bindings))
		s.bindings = append(s.bindings, b)
	}
	s.groups = append(s.groups, g)
	return s
}

// Name returns the section identifier.
func (s *Section[T]) Name() string { return s.name }

// Title returns the display header.
func (s *Section[T]) Title() string { return s.title }

// Len reports the number of bindings.
func (s *Section[T]) Len() int { return len(s.bindings) }

// Binding returns the binding at row.
func (s *Section[T]) Binding(row int) (Binding[T], bool) {
	if row < 0 || row >= len(s.bindings) {
		return nil, false
	}
	return s.bindings[row], true
}

// Baselines exposes the section's baseline store.
func (s *Section[T]) Baselines() *Baselines { return s.baselines }

// Target returns the current target while the section is bound.
func (s *Section[T]) Target() (T, bool) { return s.target, s.bound }

// Instance returns the identity of the current target, or zero.
func (s *Section[T]) Instance() InstanceID { return s.instance }

// Valid reports whether a target is currently bound.
func (s *Section[T]) Valid() bool { return s.bound }

// Locate re-resolves the target. Losing the target keeps the baselines.
func (s *Section[T]) Locate(g core.Graph) bool {
	t, inst, ok := s.resolver.Resolve(g)
	if !ok {
		var zero T
		s.target, s.instance, s.bound = zero, 0, false
		return false
	}
	s.target, s.instance, s.bound = t, inst, true
	return true
}

// CaptureIfNeeded implements Panel.
func (s *Section[T]) CaptureIfNeeded() int {
	if !s.bound {
		return 0
	}
	n := 0
	for i, b := range s.bindings {
		if s.baselines.Captured(s.instance, i) {
			continue
		}
		v, ok := b.capture(s.target)
		if !ok {
			continue
		}
		if s.baselines.Capture(s.instance, i, v) {
			n++
		}
	}
	return n
}

// Tick locates the target and captures any missing baselines.
func (s *Section[T]) Tick(g core.Graph) {
	if s.Locate(g) {
		s.CaptureIfNeeded()
	}
}

// State derives the lifecycle state from the current target and baselines.
func (s *Section[T]) State() State {
	if !s.bound {
		return Unbound
	}
	for i := range s.bindings {
		if !s.baselines.Captured(s.instance, i) {
			return BoundUncaptured
		}
	}
	return BoundCaptured
}

// Captured reports whether the binding at row has a baseline for the current
// target.
func (s *Section[T]) Captured(row int) bool {
	return s.baselines.Captured(s.instance, row)
}

// Apply implements Panel. Every action is a no-op while the section is
// unbound.
func (s *Section[T]) Apply(row int, a Action, step float64) bool {
	b, ok := s.Binding(row)
	if !ok || !s.bound {
		return false
	}
	base, captured := s.baselines.Lookup(s.instance, row)
	return b.apply(s.target, a, step, base, captured)
}

// Increment nudges the binding at row up by one step unit.
func (s *Section[T]) Increment(row int, step float64) bool {
	return s.Apply(row, Increment, step)
}

// Decrement nudges the binding at row down by one step unit, honouring its
// floor.
func (s *Section[T]) Decrement(row int, step float64) bool {
	return s.Apply(row, Decrement, step)
}

// Reset restores the binding at row to its baseline once one is captured.
func (s *Section[T]) Reset(row int) bool {
	return s.Apply(row, Reset, 0)
}

// Toggle flips a boolean binding.
func (s *Section[T]) Toggle(row int) bool {
	return s.Apply(row, Toggle, 0)
}

// ResetAll restores every captured binding and returns how many were written.
func (s *Section[T]) ResetAll() int {
	n := 0
	for i := range s.bindings {
		if s.Reset(i) {
			n++
		}
	}
	return n
}

// View implements Panel.
func (s *Section[T]) View(step float64) View {
	v := View{
		Name:  s.name,
		Title: s.title,
		Valid: s.bound,
		State: s.State(),
	}
	if !s.bound {
		v.Missing = s.missing
		return v
	}
	for _, g := range s.groups {
		out := Group{Title: g.title, Found: len(g.bindings) == 0}
		for _, i := range g.bindings {
			b := s.bindings[i]
			base, captured := s.baselines.Lookup(s.instance, i)
			r := b.row(s.target, step, base, captured)
			r.Index = i
			if r.Found {
				out.Found = true
			}
			out.Rows = append(out.Rows, r)
		}
		if !out.Found && g.title != "" {
			out.Missing = "(" + g.title + " not found)"
		}
		v.Groups = append(v.Groups, out)
	}
	return v
}
