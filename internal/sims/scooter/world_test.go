package scooter

import "testing"

func newTestWorld(spawn, settings, reload int) *World {
	cfg := DefaultConfig()
	cfg.SpawnDelay = spawn
	cfg.SettingsDelay = settings
	cfg.ReloadEvery = reload
	w := NewWithConfig(cfg)
	w.Reset(cfg.Seed)
	return w
}

func TestSpawnSchedule(t *testing.T) {
	w := newTestWorld(3, 2, 0)
	if _, ok := w.Body(); ok {
		t.Fatal("expected no body before spawn")
	}
	for i := 0; i < 2; i++ {
		w.Step()
	}
	if w.Scene().FindOfType(TypeHop) != nil {
		t.Fatal("expected no hop before the spawn delay")
	}
	w.Step()
	if w.Spawns() != 1 {
		t.Fatalf("expected one spawn, got %d", w.Spawns())
	}
	if w.Scene().Find(PlayerRootName) == nil {
		t.Fatal("expected the authored player root on first spawn")
	}
	h := w.hop()
	if h == nil || h.Timer == nil || h.Normal == nil || h.Low != nil {
		t.Fatalf("expected early hop settings only, got %+v", h)
	}
	w.Step()
	w.Step()
	if h.Low == nil || h.NoseManual == nil || h.FootJam == nil {
		t.Fatal("expected late hop settings after the settings delay")
	}
	if _, ok := w.Body(); !ok {
		t.Fatal("expected body once spawned")
	}
}

func TestReloadReplacesInstances(t *testing.T) {
	w := newTestWorld(1, 0, 0)
	w.Step()
	oldHop := w.Scene().FindOfType(TypeHop)
	if w.hop().Low == nil {
		t.Fatal("expected zero settings delay to attach late settings at spawn")
	}
	w.Reload()
	newHop := w.Scene().FindOfType(TypeHop)
	if oldHop.Alive() || newHop == nil || newHop.ID() == oldHop.ID() {
		t.Fatal("expected a fresh hop instance")
	}
	if w.Scene().Find(PlayerRootName) != nil || w.Scene().Find(PlayerCloneName) == nil {
		t.Fatal("expected respawned player to use the clone root")
	}
	if got := len(w.Scene().Roots()); got != 2 {
		t.Fatalf("expected level and player roots only, got %d", got)
	}
}

func TestPeriodicReload(t *testing.T) {
	w := newTestWorld(2, 0, 5)
	for i := 0; i < 12; i++ {
		w.Step()
	}
	if w.Spawns() != 3 {
		t.Fatalf("expected spawns at ticks 2, 7 and 12, got %d", w.Spawns())
	}
}

func TestResetKeepsPhysics(t *testing.T) {
	w := newTestWorld(0, 0, 0)
	w.Step()
	w.Physics().Gravity.Y = -3
	w.Reset(7)
	if w.Scene().Len() != 0 || w.Ticks() != 0 || w.Spawns() != 0 {
		t.Fatal("expected reset to clear the level")
	}
	if w.Physics().Gravity.Y != -3 {
		t.Fatalf("expected physics to survive reset, got %v", w.Physics().Gravity.Y)
	}
}

func TestDebugRayFollowsGroundSetting(t *testing.T) {
	w := newTestWorld(0, 0, 0)
	w.Step()
	if _, _, ok := w.DebugRay(); ok {
		t.Fatal("expected no ray while debug is off")
	}
	w.controller().Ground.Debug = true
	from, to, ok := w.DebugRay()
	if !ok || from.Y-to.Y <= 0 || to.Y != 0 {
		t.Fatalf("expected a downward ray, got %+v -> %+v", from, to)
	}
}

func TestRiderMovesAfterPush(t *testing.T) {
	w := newTestWorld(0, 0, 0)
	for i := 0; i < 120; i++ {
		w.Step()
	}
	r := w.Rider()
	if r.Pushes == 0 {
		t.Fatal("expected at least one push in two seconds")
	}
	if r.Position.X == 0 && r.Position.Z == 0 {
		t.Fatal("expected the rider to move")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"spawn_delay":    "4",
		"settings_delay": "-1",
		"reload_every":   "90",
		"tps":            "0",
		"seed":           "99",
	})
	if c.SpawnDelay != 4 || c.SettingsDelay != 15 || c.ReloadEvery != 90 || c.TPS != 60 || c.Seed != 99 {
		t.Fatalf("unexpected config %+v", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("expected defaults for nil map")
	}
}
