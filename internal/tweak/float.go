package tweak

// FloatBinding edits a float64 field by relative nudges.
type FloatBinding[T any] struct {
	label string
	field func(T) *float64
	opts  fieldOptions
}

// Float binds a float64 field. field returns nil while the sub-object that
// holds the value is not observable.
func Float[T any](label string, field func(T) *float64, opts ...Option) *FloatBinding[T] {
	return &FloatBinding[T]{label: label, field: field, opts: applyOptions(opts)}
}

// Label returns the display label.
func (b *FloatBinding[T]) Label() string { return b.label }

// Kind reports KindFloat.
func (b *FloatBinding[T]) Kind() Kind { return KindFloat }

// StepUnit returns the amount one nudge changes the field by.
func (b *FloatBinding[T]) StepUnit(step float64) float64 { return step * b.opts.scale }

// Floor returns the decrement clamp, if any.
func (b *FloatBinding[T]) Floor() (float64, bool) { return b.opts.floor, b.opts.hasFloor }

// Current returns the live value.
func (b *FloatBinding[T]) Current(t T) (float64, bool) {
	p := b.field(t)
	if p == nil {
		return 0, false
	}
	return *p, true
}

func (b *FloatBinding[T]) observable(t T) bool { return b.field(t) != nil }

func (b *FloatBinding[T]) capture(t T) (any, bool) {
	p := b.field(t)
	if p == nil {
		return nil, false
	}
	return *p, true
}

func (b *FloatBinding[T]) apply(t T, a Action, step float64, base any, captured bool) bool {
	p := b.field(t)
	if p == nil {
		return false
	}
	switch a.Op {
	case OpIncrement:
		*p += b.StepUnit(step)
	case OpDecrement:
		v := *p - b.StepUnit(step)
		if b.opts.hasFloor && v < b.opts.floor {
			v = b.opts.floor
		}
		*p = v
	case OpReset:
		orig, ok := base.(float64)
		if !captured || !ok {
			return false
		}
		*p = orig
	default:
		return false
	}
	return true
}

func (b *FloatBinding[T]) row(t T, step float64, base any, captured bool) Row {
	r := Row{Label: b.label, Kind: KindFloat, Captured: captured}
	p := b.field(t)
	if p == nil {
		return r
	}
	r.Found = true
	r.Value = formatFloat(*p, b.opts.precision)
	canDec := !b.opts.hasFloor || *p > b.opts.floor
	r.Buttons = []Button{
		{Caption: "<", Action: Decrement, Enabled: canDec},
		{Caption: ">", Action: Increment, Enabled: true},
		{Caption: "Reset", Action: Reset, Enabled: captured},
	}
	return r
}
