package scene

import "tweakpanel/internal/core"

// Object is a named, typed node carrying a host payload. Objects are created
// and destroyed only through their Graph.
type Object struct {
	id       uint64
	name     string
	typ      string
	value    any
	parent   *Object
	children []*Object
	alive    bool
}

// ID returns the object's unique identity within its graph. IDs are never
// reused, so a respawned object of the same type has a different ID.
func (o *Object) ID() uint64 { return o.id }

// Name returns the object's name.
func (o *Object) Name() string { return o.name }

// Type returns the object's type identifier.
func (o *Object) Type() string { return o.typ }

// Value returns the payload attached to the object.
func (o *Object) Value() any { return o.value }

// Parent returns the parent object, or nil for roots.
func (o *Object) Parent() *Object { return o.parent }

// Alive reports whether the object is still part of its graph.
func (o *Object) Alive() bool { return o != nil && o.alive }

// Children returns the direct children in insertion order.
func (o *Object) Children() []*Object { return o.children }

// Walk visits descendants depth first, excluding o.
func (o *Object) Walk(fn func(core.Node) bool) bool {
	for _, c := range o.children {
		if !fn(c) {
			return false
		}
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Graph is the mutable object store of a simulation. It is not safe for
// concurrent use; the owning simulation and its tools share one goroutine.
type Graph struct {
	roots   []*Object
	nextID  uint64
	count   int
	version uint64
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{}
}

// Spawn adds a root object.
func (g *Graph) Spawn(name, typ string, value any) *Object {
	o := g.newObject(name, typ, value)
	g.roots = append(g.roots, o)
	return o
}

// SpawnChild adds an object beneath parent. A nil or destroyed parent makes
// the new object a root.
func (g *Graph) SpawnChild(parent *Object, name, typ string, value any) *Object {
	if !parent.Alive() {
		return g.Spawn(name, typ, value)
	}
	o := g.newObject(name, typ, value)
	o.parent = parent
	parent.children = append(parent.children, o)
	return o
}

func (g *Graph) newObject(name, typ string, value any) *Object {
	g.nextID++
	g.count++
	g.version++
	return &Object{id: g.nextID, name: name, typ: typ, value: value, alive: true}
}

// Destroy removes o and its subtree from the graph.
func (g *Graph) Destroy(o *Object) {
	if !o.Alive() {
		return
	}
	if o.parent != nil {
		o.parent.children = removeObject(o.parent.children, o)
	} else {
		g.roots = removeObject(g.roots, o)
	}
	o.parent = nil
	g.kill(o)
	g.version++
}

func (g *Graph) kill(o *Object) {
	o.alive = false
	g.count--
	for _, c := range o.children {
		g.kill(c)
	}
	o.children = nil
}

func removeObject(list []*Object, o *Object) []*Object {
	for i, c := range list {
		if c == o {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Clear destroys every object.
func (g *Graph) Clear() {
	for len(g.roots) > 0 {
		g.Destroy(g.roots[0])
	}
}

// Len reports the number of live objects.
func (g *Graph) Len() int { return g.count }

// Version changes whenever an object is spawned or destroyed.
func (g *Graph) Version() uint64 { return g.version }

// Roots returns the root objects in insertion order.
func (g *Graph) Roots() []*Object { return g.roots }

// Walk visits every live object depth first.
func (g *Graph) Walk(fn func(core.Node) bool) bool {
	for _, r := range g.roots {
		if !fn(r) {
			return false
		}
		if !r.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first object with the given name, or nil.
func (g *Graph) Find(name string) *Object {
	var found *Object
	g.Walk(func(n core.Node) bool {
		if n.Name() == name {
			found = n.(*Object)
			return false
		}
		return true
	})
	return found
}

// FindOfType returns the first object with the given type, or nil.
func (g *Graph) FindOfType(typ string) *Object {
	var found *Object
	g.Walk(func(n core.Node) bool {
		if n.Type() == typ {
			found = n.(*Object)
			return false
		}
		return true
	})
	return found
}
