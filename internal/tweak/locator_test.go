package tweak

import (
	"testing"

	"tweakpanel/internal/core"
	"tweakpanel/internal/scene"
)

type motor struct{ Speed float64 }

func TestAnywhereFindsFirstInInsertionOrder(t *testing.T) {
	g := scene.New()
	root := g.Spawn("Level", "Level", nil)
	first := g.SpawnChild(root, "A", "Motor", &motor{Speed: 1})
	g.Spawn("B", "Motor", &motor{Speed: 2})

	n, ok := Anywhere("Motor").Locate(g)
	if !ok || n.ID() != first.ID() {
		t.Fatalf("expected the nested motor first, got %v %v", n, ok)
	}
	if _, ok := Anywhere("Wheel").Locate(g); ok {
		t.Fatal("expected no wheel")
	}
	if _, ok := Anywhere("Motor").Locate(nil); ok {
		t.Fatal("expected nil graph to locate nothing")
	}
}

func TestChildOfFallsBackToAlternateRoot(t *testing.T) {
	g := scene.New()
	g.Spawn("Loose", "Motor", &motor{Speed: 9})
	clone := g.Spawn("Player(Clone)", "Player", nil)
	model := g.SpawnChild(clone, "Model", "Model", nil)
	want := g.SpawnChild(model, "Motor", "Motor", &motor{Speed: 3})

	loc := ChildOf("Motor", "Player", "Player(Clone)")
	n, ok := loc.Locate(g)
	if !ok || n.ID() != want.ID() {
		t.Fatalf("expected the clone's motor, got %v %v", n, ok)
	}
	root, ok := loc.Root(g)
	if !ok || root.Name() != "Player(Clone)" {
		t.Fatalf("expected clone root, got %v", root)
	}

	authored := g.Spawn("Player", "Player", nil)
	mine := g.SpawnChild(authored, "Motor", "Motor", &motor{Speed: 4})
	if n, _ := loc.Locate(g); n.ID() != mine.ID() {
		t.Fatalf("expected the authored root to win once present, got %d", n.ID())
	}
}

func TestChildOfWithoutRootFindsNothing(t *testing.T) {
	g := scene.New()
	g.Spawn("Motor", "Motor", &motor{})
	if _, ok := ChildOf("Motor", "Player").Locate(g); ok {
		t.Fatal("expected no match outside the named root")
	}
}

func TestFindRejectsWrongPayload(t *testing.T) {
	g := scene.New()
	g.Spawn("Motor", "Motor", "not a motor")
	if _, _, ok := Find[*motor](Anywhere("Motor")).Resolve(g); ok {
		t.Fatal("expected type assertion to fail")
	}
}

func TestResolverFuncCompositeTarget(t *testing.T) {
	type pair struct{ a, b *motor }
	r := ResolverFunc[pair](func(g core.Graph) (pair, InstanceID, bool) {
		an, ok := Anywhere("A").Locate(g)
		if !ok {
			return pair{}, 0, false
		}
		bn, ok := Anywhere("B").Locate(g)
		if !ok {
			return pair{}, 0, false
		}
		return pair{an.Value().(*motor), bn.Value().(*motor)}, InstanceID(an.ID()), true
	})
	g := scene.New()
	g.Spawn("A", "A", &motor{})
	if _, _, ok := r.Resolve(g); ok {
		t.Fatal("expected composite to need both parts")
	}
	g.Spawn("B", "B", &motor{})
	if _, id, ok := r.Resolve(g); !ok || id == 0 {
		t.Fatalf("expected composite to resolve, got %d %v", id, ok)
	}
}
