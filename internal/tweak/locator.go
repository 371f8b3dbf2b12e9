package tweak

import "tweakpanel/internal/core"

// InstanceID identifies one live target instance. Zero means "no instance".
type InstanceID uint64

// staticInstance identifies targets that exist for the lifetime of the host,
// such as global physics settings.
const staticInstance InstanceID = 1<<64 - 1

// Locator finds at most one node of a given type in a host graph. With no
// roots the whole graph is searched; otherwise the first root name that
// resolves is used and only its descendants are considered.
type Locator struct {
	Type  string
	Roots []string
}

// Anywhere locates the first node of typ anywhere in the graph.
func Anywhere(typ string) Locator {
	return Locator{Type: typ}
}

// ChildOf locates the first descendant of typ beneath the root named root,
// falling back to each alternate name in order when root is absent.
func ChildOf(typ, root string, alternates ...string) Locator {
	roots := make([]string, 0, 1+len(alternates))
	roots = append(roots, root)
	roots = append(roots, alternates...)
	return Locator{Type: typ, Roots: roots}
}

// Locate performs the search. It never mutates the graph.
func (l Locator) Locate(g core.Graph) (core.Node, bool) {
	if g == nil || l.Type == "" {
		return nil, false
	}
	if len(l.Roots) == 0 {
		return firstOfType(g.Walk, l.Type)
	}
	root, ok := l.Root(g)
	if !ok {
		return nil, false
	}
	return firstOfType(root.Walk, l.Type)
}

// Root resolves the search root by name. It reports false when the locator
// searches anywhere or none of the names resolve.
func (l Locator) Root(g core.Graph) (core.Node, bool) {
	for _, name := range l.Roots {
		if n, ok := firstNamed(g, name); ok {
			return n, true
		}
	}
	return nil, false
}

func firstOfType(walk func(func(core.Node) bool) bool, typ string) (core.Node, bool) {
	var found core.Node
	walk(func(n core.Node) bool {
		if n.Type() == typ {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}

func firstNamed(g core.Graph, name string) (core.Node, bool) {
	var found core.Node
	g.Walk(func(n core.Node) bool {
		if n.Name() == name {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}

// Resolver turns a graph into a typed target and its instance identity.
type Resolver[T any] interface {
	Resolve(g core.Graph) (T, InstanceID, bool)
}

// ResolverFunc adapts a function to Resolver. Composite targets, made of
// several nodes that must all be present, are built this way.
type ResolverFunc[T any] func(g core.Graph) (T, InstanceID, bool)

// Resolve calls f.
func (f ResolverFunc[T]) Resolve(g core.Graph) (T, InstanceID, bool) { return f(g) }

type findResolver[T any] struct {
	loc Locator
}

// Find resolves the node located by loc and asserts its value to T.
func Find[T any](loc Locator) Resolver[T] {
	return findResolver[T]{loc: loc}
}

func (r findResolver[T]) Resolve(g core.Graph) (T, InstanceID, bool) {
	var zero T
	n, ok := r.loc.Locate(g)
	if !ok {
		return zero, 0, false
	}
	v, ok := n.Value().(T)
	if !ok {
		return zero, 0, false
	}
	return v, InstanceID(n.ID()), true
}

type staticResolver[T any] struct {
	v T
}

// Static resolves to v on every call, for targets that are always present.
func Static[T any](v T) Resolver[T] {
	return staticResolver[T]{v: v}
}

func (r staticResolver[T]) Resolve(core.Graph) (T, InstanceID, bool) {
	return r.v, staticInstance, true
}
