package core

// Node is a live object in a host graph as seen by tools. Value returns the
// host-owned payload; callers may mutate it but never own it.
type Node interface {
	ID() uint64
	Name() string
	Type() string
	Value() any
	// Walk visits descendants depth first in insertion order, excluding the
	// node itself, until fn returns false. It reports whether the walk ran to
	// completion.
	Walk(fn func(Node) bool) bool
}

// Graph is a read-only view over every live node of a host simulation.
type Graph interface {
	// Walk visits every live node depth first in insertion order until fn
	// returns false. It reports whether the walk ran to completion.
	Walk(fn func(Node) bool) bool
}

// GraphProvider is implemented by simulations that expose their object graph.
type GraphProvider interface {
	Graph() Graph
}
