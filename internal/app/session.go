package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"tweakpanel/internal/config"
	"tweakpanel/internal/core"
	"tweakpanel/internal/sections"
	"tweakpanel/internal/tweak"
)

// NewLogger returns the logger used for panel notices.
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.New(w, "[tweak] ", log.LstdFlags)
}

type reloader interface {
	Reload()
}

// Session owns one running simulation and the tweak panel attached to it.
// Every method must be called from the loop that steps the simulation.
type Session struct {
	sim      core.Sim
	graph    core.GraphProvider
	registry *tweak.Registry
	settings *config.Resolved
	logger   *log.Logger

	seed   int64
	open   bool
	paused bool
	ticks  int
}

// Initialize builds the simulation named by cfg, loads the optional panel
// configuration and attaches the simulation's panels.
func Initialize(cfg *Config, logger *log.Logger) (*Session, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if logger == nil {
		logger = NewLogger(nil)
	}
	settings, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", cfg.Sim)
	}
	opts := make(map[string]string, len(settings.Sim)+1)
	for k, v := range settings.Sim {
		opts[k] = v
	}
	if _, set := opts["tps"]; !set && cfg.TPS > 0 {
		opts["tps"] = strconv.Itoa(cfg.TPS)
	}
	sim := factory(opts)
	provider, ok := sim.(core.GraphProvider)
	if !ok {
		return nil, fmt.Errorf("sim %q does not expose an object graph", cfg.Sim)
	}
	panels, ok := sections.Build(sim, settings.Scope, settings.Disabled...)
	if !ok {
		return nil, fmt.Errorf("no panels registered for sim %q", cfg.Sim)
	}
	sim.Reset(cfg.Seed)

	s := &Session{
		sim:      sim,
		graph:    provider,
		registry: tweak.NewRegistry(tweak.NewStep(settings.Step), panels...),
		settings: settings,
		logger:   logger,
		seed:     cfg.Seed,
		open:     settings.PanelOpen,
	}
	s.registry.OnTransition(s.logTransition)
	logger.Printf("attached %d sections to %s (baselines per %s)", s.registry.Len(), sim.Name(), settings.Scope)
	s.tick()
	return s, nil
}

// Teardown detaches the panel. The simulation keeps whatever values were
// last written.
func (s *Session) Teardown() {
	if s == nil || s.registry == nil {
		return
	}
	s.logger.Printf("detached from %s after %d ticks", s.sim.Name(), s.ticks)
	s.registry = nil
}

func (s *Session) logTransition(section string, from, to tweak.State, captured int) {
	switch {
	case to == tweak.Unbound:
		s.logger.Printf("%s: target lost, baselines kept", section)
	case from == tweak.Unbound && captured > 0:
		s.logger.Printf("%s: bound, captured %d baselines", section, captured)
	case from == tweak.Unbound:
		s.logger.Printf("%s: bound, %s", section, to)
	default:
		s.logger.Printf("%s: captured %d more baselines", section, captured)
	}
}

// Sim returns the running simulation.
func (s *Session) Sim() core.Sim { return s.sim }

// Registry returns the attached registry, or nil after Teardown.
func (s *Session) Registry() *tweak.Registry { return s.registry }

// Settings returns the resolved panel configuration.
func (s *Session) Settings() *config.Resolved { return s.settings }

// Ticks reports the number of frames advanced.
func (s *Session) Ticks() int { return s.ticks }

// Open reports whether the panel is expanded.
func (s *Session) Open() bool { return s.open }

// ToggleOpen expands or collapses the panel.
func (s *Session) ToggleOpen() { s.open = !s.open }

// Paused reports whether the simulation is paused.
func (s *Session) Paused() bool { return s.paused }

// TogglePause pauses or resumes the simulation. The panel keeps tracking
// targets while paused.
func (s *Session) TogglePause() { s.paused = !s.paused }

// Frame advances the simulation unless paused, then ticks the panel.
func (s *Session) Frame() {
	if !s.paused {
		s.Advance()
		return
	}
	s.tick()
}

// Advance steps the simulation once and ticks the panel.
func (s *Session) Advance() {
	s.sim.Step()
	s.ticks++
	s.tick()
}

func (s *Session) tick() {
	if s.registry == nil {
		return
	}
	s.registry.Tick(s.graph.Graph())
}

// Reset restarts the simulation with seed. Baselines are kept.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.sim.Reset(seed)
	s.ticks = 0
	s.tick()
}

// Seed returns the seed of the last reset.
func (s *Session) Seed() int64 { return s.seed }

// Reload replaces every gameplay object if the simulation supports it.
func (s *Session) Reload() bool {
	r, ok := s.sim.(reloader)
	if !ok {
		return false
	}
	r.Reload()
	s.tick()
	return true
}

// Views returns the panel views, or nil while collapsed or detached.
func (s *Session) Views() []tweak.View {
	if !s.open || s.registry == nil {
		return nil
	}
	return s.registry.Render()
}

// Apply relays an operator action to a section row.
func (s *Session) Apply(section, row int, a tweak.Action) bool {
	if s.registry == nil {
		return false
	}
	return s.registry.Apply(section, row, a)
}

// Step returns the shared global step, or nil after Teardown.
func (s *Session) Step() *tweak.Step {
	if s.registry == nil {
		return nil
	}
	return s.registry.Step()
}
