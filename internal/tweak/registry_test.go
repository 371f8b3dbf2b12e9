package tweak

import (
	"fmt"
	"testing"

	"tweakpanel/internal/scene"
)

type transition struct {
	section  string
	from, to State
	captured int
}

func TestRegistryOrderAndTransitions(t *testing.T) {
	type settings struct{ Gain float64 }
	global := &settings{Gain: 1}
	g := scene.New()

	static := NewSection[*settings]("global", Static(global)).
		Add(Float("Gain", func(s *settings) *float64 { return &s.Gain }))
	rs := rigSection(ScopeInstance)
	reg := NewRegistry(nil, static, nil, rs)

	var seen []transition
	reg.OnTransition(func(section string, from, to State, captured int) {
		seen = append(seen, transition{section, from, to, captured})
	})

	if reg.Len() != 2 {
		t.Fatalf("expected nil panels to be skipped, got %d", reg.Len())
	}
	if reg.Step().Value() != DefaultStep {
		t.Fatalf("expected default step, got %v", reg.Step().Value())
	}

	reg.Tick(g)
	if got := fmt.Sprint(reg.Valid()); got != "[true false]" {
		t.Fatalf("unexpected validity %s", got)
	}
	r := newRig()
	o := g.Spawn("Rig", "Rig", r)
	reg.Tick(g)
	reg.Tick(g)
	g.Destroy(o)
	reg.Tick(g)

	want := []transition{
		{"global", Unbound, BoundCaptured, 1},
		{"rig", Unbound, BoundCaptured, 6},
		{"rig", BoundCaptured, Unbound, 0},
	}
	if len(seen) != len(want) {
		t.Fatalf("expected %d transitions, got %+v", len(want), seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("transition %d: got %+v want %+v", i, seen[i], want[i])
		}
	}

	views := reg.Render()
	if views[0].Name != "global" || views[1].Name != "rig" || views[1].Valid {
		t.Fatalf("unexpected render order or state: %+v", views)
	}
}

func TestRegistryApplyUsesSharedStep(t *testing.T) {
	g := scene.New()
	r := newRig()
	g.Spawn("Rig", "Rig", r)
	reg := NewRegistry(NewStep(2), rigSection(ScopeInstance))
	reg.Tick(g)

	if !reg.Apply(0, rowSpeed, Increment) || r.Speed != 7 {
		t.Fatalf("expected 7 with step 2, got %v", r.Speed)
	}
	reg.Step().Set(0.5)
	reg.Apply(0, rowSpeed, Decrement)
	if r.Speed != 6.5 {
		t.Fatalf("expected 6.5 with step 0.5, got %v", r.Speed)
	}
	if reg.Apply(3, 0, Increment) || reg.Apply(-1, 0, Increment) {
		t.Fatal("expected out-of-range sections to be ignored")
	}
	if _, i, ok := reg.Lookup("rig"); !ok || i != 0 {
		t.Fatalf("expected rig at 0, got %d %v", i, ok)
	}
	if _, _, ok := reg.Lookup("missing"); ok {
		t.Fatal("expected unknown name to miss")
	}
}

func TestRegistryIsolatesMissingSections(t *testing.T) {
	g := scene.New()
	r := newRig()
	g.Spawn("Rig", "Rig", r)
	ghost := NewSection[*rig]("ghost", Find[*rig](Anywhere("Ghost")))
	reg := NewRegistry(nil, ghost, rigSection(ScopeInstance))
	reg.Tick(g)
	if got := fmt.Sprint(reg.Valid()); got != "[false true]" {
		t.Fatalf("unexpected validity %s", got)
	}
	if !reg.Apply(1, rowSpeed, Increment) {
		t.Fatal("expected the located section to stay editable")
	}
}
