package tweak

// Button is one operator affordance on a row.
type Button struct {
	Caption string
	Action  Action
	Enabled bool
}

// Row is the display state of one binding.
type Row struct {
	Index    int
	Label    string
	Kind     Kind
	Value    string
	Found    bool
	Captured bool
	// On is the current state of a boolean binding.
	On      bool
	Buttons []Button
}

// Group is a titled run of rows that share a sub-object of the target.
type Group struct {
	Title   string
	Found   bool
	Missing string
	Rows    []Row
}

// View is the display state of one section.
type View struct {
	Name    string
	Title   string
	Valid   bool
	State   State
	Missing string
	Groups  []Group
}

// Rows returns every row of the view in display order.
func (v View) Rows() []Row {
	var rows []Row
	for _, g := range v.Groups {
		rows = append(rows, g.Rows...)
	}
	return rows
}

// State is a section's lifecycle state.
type State uint8

const (
	Unbound State = iota
	BoundUncaptured
	BoundCaptured
)

// String returns a short lowercase description.
func (s State) String() string {
	switch s {
	case BoundUncaptured:
		return "bound"
	case BoundCaptured:
		return "captured"
	default:
		return "unbound"
	}
}
