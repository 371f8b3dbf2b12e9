package scene

import (
	"testing"

	"tweakpanel/internal/core"
)

func names(g *Graph) []string {
	var out []string
	g.Walk(func(n core.Node) bool {
		out = append(out, n.Name())
		return true
	})
	return out
}

func TestWalkDepthFirstInsertionOrder(t *testing.T) {
	g := New()
	a := g.Spawn("a", "T", nil)
	g.SpawnChild(a, "a1", "T", nil)
	a2 := g.SpawnChild(a, "a2", "T", nil)
	g.SpawnChild(a2, "a2x", "T", nil)
	g.Spawn("b", "T", nil)

	got := names(g)
	want := []string{"a", "a1", "a2", "a2x", "b"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
	if g.Len() != 5 {
		t.Fatalf("expected 5 objects, got %d", g.Len())
	}
}

func TestWalkStopsEarly(t *testing.T) {
	g := New()
	a := g.Spawn("a", "T", nil)
	g.SpawnChild(a, "a1", "T", nil)
	g.Spawn("b", "T", nil)
	visited := 0
	done := g.Walk(func(n core.Node) bool {
		visited++
		return n.Name() != "a1"
	})
	if done || visited != 2 {
		t.Fatalf("expected early stop after 2 visits, got %d (done=%v)", visited, done)
	}
}

func TestDestroyRemovesSubtree(t *testing.T) {
	g := New()
	a := g.Spawn("a", "T", nil)
	child := g.SpawnChild(a, "a1", "Leaf", nil)
	g.Spawn("b", "T", nil)
	before := g.Version()

	g.Destroy(a)
	if a.Alive() || child.Alive() {
		t.Fatal("expected subtree to be dead")
	}
	if g.Len() != 1 || g.FindOfType("Leaf") != nil {
		t.Fatalf("expected only b to remain, got %v", names(g))
	}
	if g.Version() == before {
		t.Fatal("expected version to change")
	}
	g.Destroy(a)
	if g.Len() != 1 {
		t.Fatal("expected destroying twice to be harmless")
	}
}

func TestIDsAreNeverReused(t *testing.T) {
	g := New()
	first := g.Spawn("hop", "Hop", nil)
	g.Destroy(first)
	second := g.Spawn("hop", "Hop", nil)
	if first.ID() == second.ID() {
		t.Fatal("expected a fresh id for the respawn")
	}
	if g.Find("hop") != second {
		t.Fatal("expected find to return the live object")
	}
}

func TestSpawnChildOfDeadParentBecomesRoot(t *testing.T) {
	g := New()
	p := g.Spawn("p", "T", nil)
	g.Destroy(p)
	o := g.SpawnChild(p, "orphan", "T", nil)
	if o.Parent() != nil || len(g.Roots()) != 1 {
		t.Fatal("expected orphan to be a root")
	}
	g.Clear()
	if g.Len() != 0 || len(g.Roots()) != 0 {
		t.Fatal("expected empty graph after clear")
	}
}
