package tweak

import (
	"strconv"

	"tweakpanel/internal/core"
)

// MaskBinding edits a layer mask by growing or shrinking its contiguous run of
// low bits.
type MaskBinding[T any] struct {
	label string
	field func(T) *core.LayerMask
	opts  fieldOptions
}

// Mask binds a layer mask field.
func Mask[T any](label string, field func(T) *core.LayerMask, opts ...Option) *MaskBinding[T] {
	return &MaskBinding[T]{label: label, field: field, opts: applyOptions(opts)}
}

// Label returns the display label.
func (b *MaskBinding[T]) Label() string { return b.label }

// Kind reports KindMask.
func (b *MaskBinding[T]) Kind() Kind { return KindMask }

// Current returns the live value.
func (b *MaskBinding[T]) Current(t T) (core.LayerMask, bool) {
	p := b.field(t)
	if p == nil {
		return 0, false
	}
	return *p, true
}

func (b *MaskBinding[T]) observable(t T) bool { return b.field(t) != nil }

func (b *MaskBinding[T]) capture(t T) (any, bool) {
	p := b.field(t)
	if p == nil {
		return nil, false
	}
	return *p, true
}

func (b *MaskBinding[T]) apply(t T, a Action, _ float64, base any, captured bool) bool {
	p := b.field(t)
	if p == nil {
		return false
	}
	switch a.Op {
	case OpIncrement:
		*p = p.Grow()
	case OpDecrement:
		*p = p.Shrink()
	case OpReset:
		orig, ok := base.(core.LayerMask)
		if !captured || !ok {
			return false
		}
		*p = orig
	default:
		return false
	}
	return true
}

func (b *MaskBinding[T]) row(t T, _ float64, _ any, captured bool) Row {
	r := Row{Label: b.label, Kind: KindMask, Captured: captured}
	p := b.field(t)
	if p == nil {
		return r
	}
	r.Found = true
	r.Value = strconv.FormatUint(uint64(*p), 10)
	prefix := b.opts.caption
	if prefix == "" {
		prefix = "LM"
	}
	r.Buttons = []Button{
		{Caption: prefix + " -", Action: Decrement, Enabled: *p != 0},
		{Caption: prefix + " +", Action: Increment, Enabled: true},
		{Caption: "Reset", Action: Reset, Enabled: captured},
	}
	return r
}
