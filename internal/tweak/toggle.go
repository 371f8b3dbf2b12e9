package tweak

// ToggleBinding edits a boolean field.
type ToggleBinding[T any] struct {
	label string
	field func(T) *bool
}

// Bool binds a boolean field. field returns nil while the value is not
// observable.
func Bool[T any](label string, field func(T) *bool) *ToggleBinding[T] {
	return &ToggleBinding[T]{label: label, field: field}
}

// Label returns the display label.
func (b *ToggleBinding[T]) Label() string { return b.label }

// Kind reports KindBool.
func (b *ToggleBinding[T]) Kind() Kind { return KindBool }

// Current returns the live value.
func (b *ToggleBinding[T]) Current(t T) (bool, bool) {
	p := b.field(t)
	if p == nil {
		return false, false
	}
	return *p, true
}

func (b *ToggleBinding[T]) observable(t T) bool { return b.field(t) != nil }

func (b *ToggleBinding[T]) capture(t T) (any, bool) {
	p := b.field(t)
	if p == nil {
		return nil, false
	}
	return *p, true
}

func (b *ToggleBinding[T]) apply(t T, a Action, _ float64, base any, captured bool) bool {
	p := b.field(t)
	if p == nil {
		return false
	}
	switch a.Op {
	case OpToggle:
		*p = !*p
	case OpReset:
		orig, ok := base.(bool)
		if !captured || !ok {
			return false
		}
		*p = orig
	default:
		return false
	}
	return true
}

func (b *ToggleBinding[T]) row(t T, _ float64, _ any, captured bool) Row {
	r := Row{Label: b.label, Kind: KindBool, Captured: captured}
	p := b.field(t)
	if p == nil {
		return r
	}
	r.Found = true
	r.On = *p
	r.Value = "off"
	if *p {
		r.Value = "on"
	}
	r.Buttons = []Button{
		{Caption: "Toggle", Action: Toggle, Enabled: true},
		{Caption: "Reset", Action: Reset, Enabled: captured},
	}
	return r
}
