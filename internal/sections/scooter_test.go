package sections

import (
	"math"
	"testing"

	"tweakpanel/internal/core"
	"tweakpanel/internal/sims/scooter"
	"tweakpanel/internal/tweak"
)

func spawnedWorld(t *testing.T) (*scooter.World, *tweak.Registry) {
	t.Helper()
	cfg := scooter.DefaultConfig()
	cfg.SpawnDelay = 1
	cfg.SettingsDelay = 0
	w := scooter.NewWithConfig(cfg)
	w.Reset(cfg.Seed)
	panels, ok := Build(w, tweak.ScopeInstance)
	if !ok {
		t.Fatal("expected scooter panels to be registered")
	}
	reg := tweak.NewRegistry(nil, panels...)
	reg.Tick(w.Graph())
	return w, reg
}

func TestScooterSectionOrder(t *testing.T) {
	_, reg := spawnedWorld(t)
	if reg.Len() != len(Names) {
		t.Fatalf("expected %d sections, got %d", len(Names), reg.Len())
	}
	for i, p := range reg.Panels() {
		if p.Name() != Names[i] {
			t.Errorf("section %d: got %s want %s", i, p.Name(), Names[i])
		}
	}
}

func TestOnlyGravityBeforeSpawn(t *testing.T) {
	w, reg := spawnedWorld(t)
	for i, ok := range reg.Valid() {
		if ok != (i == 0) {
			t.Fatalf("section %s valid=%v before spawn", reg.Panels()[i].Name(), ok)
		}
	}
	views := reg.Render()
	if views[1].Missing != "Hop component not found" {
		t.Fatalf("unexpected hop message %q", views[1].Missing)
	}
	w.Step()
	reg.Tick(w.Graph())
	for i, ok := range reg.Valid() {
		if !ok {
			t.Fatalf("section %s invalid after spawn", reg.Panels()[i].Name())
		}
	}
	for i, p := range reg.Panels() {
		if p.State() != tweak.BoundCaptured {
			t.Errorf("section %s: %v after spawn", reg.Panels()[i].Name(), p.State())
		}
	}
}

func TestScaledAndFlooredRows(t *testing.T) {
	w, reg := spawnedWorld(t)
	w.Step()
	reg.Tick(w.Graph())

	apply := func(section string, row int, a tweak.Action) {
		t.Helper()
		_, i, ok := reg.Lookup(section)
		if !ok {
			t.Fatalf("no section %s", section)
		}
		if !reg.Apply(i, row, a) {
			t.Fatalf("%s row %d: %+v not applied", section, row, a)
		}
	}

	hop := w.Scene().FindOfType(scooter.TypeHop).Value().(*scooter.Hop)
	apply(Hop, 0, tweak.Increment)
	if math.Abs(hop.Timer.HopTime-1.4) > 1e-9 {
		t.Fatalf("expected hop time 1.4, got %v", hop.Timer.HopTime)
	}
	apply(Hop, 1, tweak.Decrement)
	if hop.Normal.Strength != 0 {
		t.Fatalf("expected strength floored at 0, got %v", hop.Normal.Strength)
	}

	ts := w.Scene().FindOfType(scooter.TypeTimeSpeed).Value().(*scooter.TimeSpeed)
	apply(TimeSpeed, 0, tweak.Increment)
	if math.Abs(ts.SlowMotion-0.35) > 1e-9 {
		t.Fatalf("expected slow motion 0.35, got %v", ts.SlowMotion)
	}
	_, i, _ := reg.Lookup(TimeSpeed)
	if got := reg.Render()[i].Rows()[0].Value; got != "0.35" {
		t.Fatalf("expected two decimals, got %q", got)
	}

	ctrl := w.Scene().FindOfType(scooter.TypeController).Value().(*scooter.Controller)
	apply(Ground, 0, tweak.Decrement)
	if ctrl.Ground.XDivider != 0.1 {
		t.Fatalf("expected X divider floored at 0.1, got %v", ctrl.Ground.XDivider)
	}
	apply(Ground, 4, tweak.Decrement)
	if ctrl.Ground.LayerMask != 0b11 {
		t.Fatalf("expected mask shrink to 0b11, got %b", ctrl.Ground.LayerMask)
	}

	apply(Gravity, 0, tweak.Increment.On(core.AxisY))
	if math.Abs(w.Physics().Gravity.Y-(-8.81)) > 1e-9 {
		t.Fatalf("expected gravity -8.81, got %v", w.Physics().Gravity.Y)
	}
	_, gi, _ := reg.Lookup(Gravity)
	if reg.Apply(gi, 0, tweak.Increment.On(core.AxisX)) {
		t.Fatal("expected gravity X to be read-only")
	}
}

func TestPlayerFollowsCloneAfterReload(t *testing.T) {
	w, reg := spawnedWorld(t)
	w.Step()
	reg.Tick(w.Graph())
	p, i, _ := reg.Lookup(Player)
	if !p.Valid() {
		t.Fatal("expected player bound to the authored root")
	}
	w.Reload()
	reg.Tick(w.Graph())
	if !p.Valid() {
		t.Fatal("expected player bound to the clone root")
	}
	motor := w.Scene().FindOfType(scooter.TypeMotor).Value().(*scooter.Motor)
	reg.Apply(i, 1, tweak.Decrement)
	if motor.SpeedMultiplier != 0.1 {
		t.Fatalf("expected walk mult floored at 0.1, got %v", motor.SpeedMultiplier)
	}
	reg.Apply(i, 1, tweak.Reset)
	if motor.SpeedMultiplier != 1 {
		t.Fatalf("expected reset to 1, got %v", motor.SpeedMultiplier)
	}
}

func TestMissingControllerSettings(t *testing.T) {
	w, reg := spawnedWorld(t)
	w.Step()
	ctrl := w.Scene().FindOfType(scooter.TypeController).Value().(*scooter.Controller)
	ctrl.Rotation = nil
	reg.Tick(w.Graph())
	p, i, _ := reg.Lookup(Rotation)
	if p.Valid() {
		t.Fatal("expected rotation section invalid without its settings")
	}
	if got := reg.Render()[i].Missing; got != "RotationSettings not found" {
		t.Fatalf("unexpected message %q", got)
	}
	if c, _, _ := reg.Lookup(ScooterCore); !c.Valid() {
		t.Fatal("expected controller core to stay valid")
	}
}

func TestBuildDisabledAndUnknown(t *testing.T) {
	w := scooter.New()
	panels, ok := Build(w, tweak.ScopeType, Gravity, Pump)
	if !ok || len(panels) != len(Names)-2 {
		t.Fatalf("expected %d panels, got %d", len(Names)-2, len(panels))
	}
	if _, ok := Build(nil, tweak.ScopeInstance); ok {
		t.Fatal("expected nil sim to have no panels")
	}
	found := false
	for _, name := range Sims() {
		if name == "scooter" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected scooter builder to be registered")
	}
}
