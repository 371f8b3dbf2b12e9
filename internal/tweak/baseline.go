package tweak

import "fmt"

// BaselineScope selects how captured baselines are keyed.
type BaselineScope uint8

const (
	// ScopeInstance keys baselines by target instance, so a replacement
	// instance captures its own first-seen values.
	ScopeInstance BaselineScope = iota
	// ScopeType keys baselines by binding only: the first instance ever
	// observed supplies the baseline for the lifetime of the engine.
	ScopeType
)

// String returns the configuration name of the scope.
func (s BaselineScope) String() string {
	switch s {
	case ScopeType:
		return "type"
	default:
		return "instance"
	}
}

// ParseBaselineScope parses "instance" or "type". Empty input selects
// ScopeInstance.
func ParseBaselineScope(s string) (BaselineScope, error) {
	switch s {
	case "", "instance":
		return ScopeInstance, nil
	case "type":
		return ScopeType, nil
	}
	return ScopeInstance, fmt.Errorf("unknown baseline scope %q", s)
}

type baselineKey struct {
	instance InstanceID
	field    int
}

// Baselines holds write-once captured values. Presence of an entry is the
// captured flag.
type Baselines struct {
	scope   BaselineScope
	entries map[baselineKey]any
}

// NewBaselines returns an empty store.
func NewBaselines(scope BaselineScope) *Baselines {
	return &Baselines{scope: scope, entries: make(map[baselineKey]any)}
}

// Scope reports the keying policy.
func (b *Baselines) Scope() BaselineScope { return b.scope }

func (b *Baselines) key(inst InstanceID, field int) baselineKey {
	if b.scope == ScopeType {
		inst = 0
	}
	return baselineKey{instance: inst, field: field}
}

// Capture records v for the entry unless one already exists. It reports
// whether v was stored.
func (b *Baselines) Capture(inst InstanceID, field int, v any) bool {
	k := b.key(inst, field)
	if _, ok := b.entries[k]; ok {
		return false
	}
	b.entries[k] = v
	return true
}

// Lookup returns the captured value for the entry.
func (b *Baselines) Lookup(inst InstanceID, field int) (any, bool) {
	v, ok := b.entries[b.key(inst, field)]
	return v, ok
}

// Captured reports whether the entry holds a value.
func (b *Baselines) Captured(inst InstanceID, field int) bool {
	_, ok := b.entries[b.key(inst, field)]
	return ok
}

// Len reports the number of captured entries.
func (b *Baselines) Len() int { return len(b.entries) }
