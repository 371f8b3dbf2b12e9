package tweak

import "tweakpanel/internal/core"

// VectorBinding edits a core.Vec3 field one component at a time.
type VectorBinding[T any] struct {
	label string
	field func(T) *core.Vec3
	opts  fieldOptions
}

// Vector binds a vector field. Every component offered by the Axes option
// gets its own increment, decrement and reset; OpReset with core.AxisNone
// restores the whole vector.
func Vector[T any](label string, field func(T) *core.Vec3, opts ...Option) *VectorBinding[T] {
	return &VectorBinding[T]{label: label, field: field, opts: applyOptions(opts)}
}

// Label returns the display label.
func (b *VectorBinding[T]) Label() string { return b.label }

// Kind reports KindVector.
func (b *VectorBinding[T]) Kind() Kind { return KindVector }

// Current returns the live value.
func (b *VectorBinding[T]) Current(t T) (core.Vec3, bool) {
	p := b.field(t)
	if p == nil {
		return core.Vec3{}, false
	}
	return *p, true
}

func (b *VectorBinding[T]) editable(axis core.Axis) bool {
	for _, a := range b.opts.axes {
		if a == axis {
			return true
		}
	}
	return false
}

func (b *VectorBinding[T]) observable(t T) bool { return b.field(t) != nil }

func (b *VectorBinding[T]) capture(t T) (any, bool) {
	p := b.field(t)
	if p == nil {
		return nil, false
	}
	return *p, true
}

func (b *VectorBinding[T]) apply(t T, a Action, step float64, base any, captured bool) bool {
	p := b.field(t)
	if p == nil {
		return false
	}
	if a.Op == OpReset {
		orig, ok := base.(core.Vec3)
		if !captured || !ok {
			return false
		}
		if a.Axis == core.AxisNone {
			*p = orig
			return true
		}
		c := p.Ptr(a.Axis)
		if c == nil {
			return false
		}
		*c = orig.Component(a.Axis)
		return true
	}
	if !b.editable(a.Axis) {
		return false
	}
	c := p.Ptr(a.Axis)
	if c == nil {
		return false
	}
	unit := step * b.opts.scale
	switch a.Op {
	case OpIncrement:
		*c += unit
	case OpDecrement:
		v := *c - unit
		if b.opts.hasFloor && v < b.opts.floor {
			v = b.opts.floor
		}
		*c = v
	default:
		return false
	}
	return true
}

func (b *VectorBinding[T]) row(t T, _ float64, _ any, captured bool) Row {
	r := Row{Label: b.label, Kind: KindVector, Captured: captured}
	p := b.field(t)
	if p == nil {
		return r
	}
	r.Found = true
	r.Value = formatVec(*p, b.opts.precision)
	prefix := b.opts.caption
	if prefix != "" {
		prefix += " "
	}
	for _, axis := range b.opts.axes {
		name := prefix + axis.String()
		canDec := !b.opts.hasFloor || p.Component(axis) > b.opts.floor
		r.Buttons = append(r.Buttons,
			Button{Caption: name + " -", Action: Decrement.On(axis), Enabled: canDec},
			Button{Caption: name + " +", Action: Increment.On(axis), Enabled: true},
		)
		if len(b.opts.axes) > 1 {
			r.Buttons = append(r.Buttons, Button{Caption: name + " R", Action: Reset.On(axis), Enabled: captured})
		}
	}
	r.Buttons = append(r.Buttons, Button{Caption: "Reset", Action: Reset, Enabled: captured})
	return r
}
