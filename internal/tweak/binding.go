package tweak

import (
	"strconv"

	"tweakpanel/internal/core"
)

// Kind enumerates binding value kinds.
type Kind uint8

const (
	KindFloat Kind = iota
	KindBool
	KindVector
	KindMask
)

// Op is an operator interaction with one binding.
type Op uint8

const (
	OpIncrement Op = iota
	OpDecrement
	OpReset
	OpToggle
)

// Action addresses an Op to a binding. Axis selects a vector component;
// scalar bindings and whole-vector resets use core.AxisNone.
type Action struct {
	Op   Op
	Axis core.Axis
}

var (
	Increment = Action{Op: OpIncrement, Axis: core.AxisNone}
	Decrement = Action{Op: OpDecrement, Axis: core.AxisNone}
	Reset     = Action{Op: OpReset, Axis: core.AxisNone}
	Toggle    = Action{Op: OpToggle, Axis: core.AxisNone}
)

// On returns the action addressed to one vector component.
func (a Action) On(axis core.Axis) Action {
	a.Axis = axis
	return a
}

// Binding describes one editable field of a target of type T. Bindings are
// immutable after construction and carry no per-target state; captured values
// live in the owning section's Baselines.
type Binding[T any] interface {
	Label() string
	Kind() Kind

	observable(t T) bool
	capture(t T) (any, bool)
	apply(t T, a Action, step float64, base any, captured bool) bool
	row(t T, step float64, base any, captured bool) Row
}

type fieldOptions struct {
	scale     float64
	floor     float64
	hasFloor  bool
	precision int
	axes      []core.Axis
	caption   string
}

func defaultOptions() fieldOptions {
	return fieldOptions{scale: 1, precision: 1, axes: core.Axes[:]}
}

// Option configures a binding.
type Option func(*fieldOptions)

// Scale sets the fraction of the global step applied per nudge. Non-positive
// values leave the default of 1.
func Scale(f float64) Option {
	return func(o *fieldOptions) {
		if f > 0 {
			o.scale = f
		}
	}
}

// Floor clamps decrements to min.
func Floor(min float64) Option {
	return func(o *fieldOptions) {
		o.floor = min
		o.hasFloor = true
	}
}

// Precision sets the number of decimals shown.
func Precision(n int) Option {
	return func(o *fieldOptions) {
		if n >= 0 {
			o.precision = n
		}
	}
}

// Axes restricts the vector components offered for editing.
func Axes(axes ...core.Axis) Option {
	return func(o *fieldOptions) {
		if len(axes) > 0 {
			o.axes = append([]core.Axis(nil), axes...)
		}
	}
}

// Caption sets the short prefix used on per-axis or mask buttons.
func Caption(s string) Option {
	return func(o *fieldOptions) { o.caption = s }
}

func applyOptions(opts []Option) fieldOptions {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func formatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func formatVec(v core.Vec3, precision int) string {
	return "(" + formatFloat(v.X, precision) + ", " + formatFloat(v.Y, precision) + ", " + formatFloat(v.Z, precision) + ")"
}
