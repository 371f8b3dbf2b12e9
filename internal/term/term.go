package term

import (
	"fmt"
	"time"

	"tweakpanel/internal/core"
	"tweakpanel/internal/tweak"
	"tweakpanel/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// Host is the session surface the terminal drives.
type Host interface {
	ui.Host
	Sim() core.Sim
	Frame()
	TogglePause()
	Paused() bool
	Reload() bool
	Reset(seed int64)
	Seed() int64
	Ticks() int
}

type entry struct {
	section int
	row     int
}

// Terminal is a keyboard-driven panel rendered with tcell. Its state is only
// the cursor and the step edit buffer; values always come from the host.
type Terminal struct {
	host Host

	cursor  entry
	axis    core.Axis
	editing bool
	saved   string
	status  string
	scroll  int

	views   []tweak.View
	entries []entry
}

// New returns a terminal adapter for host.
func New(host Host) *Terminal {
	t := &Terminal{host: host, axis: core.AxisNone}
	t.refresh()
	return t
}

// Editing reports whether the step buffer has focus.
func (t *Terminal) Editing() bool { return t.editing }

// Axis returns the vector component targeted by adjustments.
func (t *Terminal) Axis() core.Axis { return t.axis }

// Selected returns the section and binding index under the cursor.
func (t *Terminal) Selected() (section, row int, ok bool) {
	if len(t.entries) == 0 {
		return 0, 0, false
	}
	return t.cursor.section, t.cursor.row, true
}

// Status returns the last notice shown on the status line.
func (t *Terminal) Status() string { return t.status }

// refresh re-reads the views and keeps the cursor on the same row when it
// still exists.
func (t *Terminal) refresh() {
	t.views = t.host.Views()
	t.entries = t.entries[:0]
	for si, v := range t.views {
		for _, r := range v.Rows() {
			t.entries = append(t.entries, entry{section: si, row: r.Index})
		}
	}
	if len(t.entries) == 0 {
		return
	}
	if t.indexOf(t.cursor) < 0 {
		t.cursor = t.nearest(t.cursor.section)
	}
}

func (t *Terminal) indexOf(e entry) int {
	for i, c := range t.entries {
		if c == e {
			return i
		}
	}
	return -1
}

// nearest returns the first entry at or after section, wrapping.
func (t *Terminal) nearest(section int) entry {
	for _, e := range t.entries {
		if e.section >= section {
			return e
		}
	}
	return t.entries[0]
}

func (t *Terminal) row(e entry) (tweak.Row, bool) {
	if e.section < 0 || e.section >= len(t.views) {
		return tweak.Row{}, false
	}
	for _, r := range t.views[e.section].Rows() {
		if r.Index == e.row {
			return r, true
		}
	}
	return tweak.Row{}, false
}

// Handle processes one terminal event. It returns false when the operator
// asks to quit.
func (t *Terminal) Handle(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	if t.editing {
		t.edit(key)
		return true
	}
	return t.Do(Decode(key))
}

func (t *Terminal) edit(ev *tcell.EventKey) {
	step := t.host.Step()
	if step == nil {
		t.editing = false
		return
	}
	kind, r := DecodeEdit(ev)
	switch kind {
	case EditInsert:
		step.SetText(step.Text() + string(r))
	case EditBackspace:
		if buf := step.Text(); len(buf) > 0 {
			step.SetText(buf[:len(buf)-1])
		}
	case EditCommit:
		if step.Apply() {
			t.status = "step " + step.Text()
		} else {
			t.status = "invalid step, kept " + step.Text()
		}
		t.editing = false
	case EditCancel:
		step.SetText(t.saved)
		t.editing = false
	}
}

// Do executes a decoded command. It returns false for CmdQuit.
func (t *Terminal) Do(cmd Command) bool {
	switch cmd {
	case CmdQuit:
		return false
	case CmdUp:
		t.move(-1)
	case CmdDown:
		t.move(1)
	case CmdNextSection:
		t.jump(1)
	case CmdPrevSection:
		t.jump(-1)
	case CmdIncrement:
		t.apply(tweak.OpIncrement)
	case CmdDecrement:
		t.apply(tweak.OpDecrement)
	case CmdReset:
		t.apply(tweak.OpReset)
	case CmdToggle:
		t.apply(tweak.OpToggle)
	case CmdAxisX:
		t.axis = core.AxisX
	case CmdAxisY:
		t.axis = core.AxisY
	case CmdAxisZ:
		t.axis = core.AxisZ
	case CmdAxisAll:
		t.axis = core.AxisNone
	case CmdEditStep:
		if step := t.host.Step(); step != nil {
			t.saved = step.Text()
			step.SetText("")
			t.editing = true
		}
	case CmdResetStep:
		if step := t.host.Step(); step != nil {
			step.Reset()
			t.status = "step reset to " + step.Text()
		}
	case CmdTogglePanel:
		t.host.ToggleOpen()
	case CmdPause:
		t.host.TogglePause()
	case CmdReload:
		if t.host.Reload() {
			t.status = "reloaded"
		}
	case CmdRestart:
		t.host.Reset(t.host.Seed())
		t.status = "restarted"
	}
	t.refresh()
	return true
}

func (t *Terminal) move(delta int) {
	if len(t.entries) == 0 {
		return
	}
	i := t.indexOf(t.cursor) + delta
	if i < 0 {
		i = 0
	}
	if i >= len(t.entries) {
		i = len(t.entries) - 1
	}
	t.cursor = t.entries[i]
}

func (t *Terminal) jump(delta int) {
	if len(t.entries) == 0 {
		return
	}
	i := t.indexOf(t.cursor)
	for {
		i += delta
		if i < 0 || i >= len(t.entries) {
			return
		}
		if t.entries[i].section != t.cursor.section {
			break
		}
	}
	if delta < 0 {
		// Land on the first row of the previous section.
		sec := t.entries[i].section
		for i > 0 && t.entries[i-1].section == sec {
			i--
		}
	}
	t.cursor = t.entries[i]
}

// apply finds the selected row's button for op on the current axis and
// relays it when enabled.
func (t *Terminal) apply(op tweak.Op) {
	if len(t.entries) == 0 {
		return
	}
	r, ok := t.row(t.cursor)
	if !ok {
		return
	}
	b, ok := pick(r, op, t.axis)
	if !ok {
		return
	}
	if !b.Enabled {
		t.status = b.Caption + " unavailable"
		return
	}
	t.host.Apply(t.cursor.section, t.cursor.row, b.Action)
}

// pick chooses the button for op. An exact axis match wins; otherwise the
// first button with that op.
func pick(r tweak.Row, op tweak.Op, axis core.Axis) (tweak.Button, bool) {
	var first *tweak.Button
	for i := range r.Buttons {
		b := &r.Buttons[i]
		if b.Action.Op != op {
			continue
		}
		if b.Action.Axis == axis {
			return *b, true
		}
		if first == nil {
			first = b
		}
	}
	if first == nil {
		return tweak.Button{}, false
	}
	return *first, true
}

// LineKind classifies rendered lines for styling.
type LineKind uint8

const (
	LineHeader LineKind = iota
	LineSection
	LineGroup
	LineMissing
	LineRow
	LineStatus
)

// Line is one rendered line of the panel.
type Line struct {
	Kind     LineKind
	Text     string
	Selected bool
}

// Lines renders the panel as styled lines.
func (t *Terminal) Lines() []Line {
	header := fmt.Sprintf("%s  tick %d", t.host.Sim().Name(), t.host.Ticks())
	if t.host.Paused() {
		header += "  [paused]"
	}
	axis := t.axis.String()
	if axis == "" {
		axis = "all"
	}
	header += "  axis " + axis
	lines := []Line{{Kind: LineHeader, Text: header}}
	if step := t.host.Step(); step != nil {
		s := ui.FormatStep(step)
		if t.editing {
			s = "Step: " + step.Text() + "_  (enter apply, esc cancel)"
		}
		lines = append(lines, Line{Kind: LineHeader, Text: s})
	}
	if !t.host.Open() {
		lines = append(lines, Line{Kind: LineMissing, Text: "panel closed (o to open)"})
	}
	for si, v := range t.views {
		lines = append(lines, Line{Kind: LineSection, Text: fmt.Sprintf("%s [%s]", v.Title, v.State)})
		if !v.Valid {
			lines = append(lines, Line{Kind: LineMissing, Text: "  " + v.Missing})
			continue
		}
		for _, g := range v.Groups {
			indent := "  "
			if g.Title != "" {
				lines = append(lines, Line{Kind: LineGroup, Text: "  " + g.Title})
				indent = "    "
			}
			if g.Missing != "" {
				lines = append(lines, Line{Kind: LineMissing, Text: indent + g.Missing})
				continue
			}
			for _, r := range g.Rows {
				sel := len(t.entries) > 0 && t.cursor == entry{section: si, row: r.Index}
				lines = append(lines, Line{Kind: LineRow, Text: indent + ui.FormatRow(r), Selected: sel})
			}
		}
	}
	if t.status != "" {
		lines = append(lines, Line{Kind: LineStatus, Text: t.status})
	}
	return lines
}

func styleFor(l Line) tcell.Style {
	st := tcell.StyleDefault
	switch l.Kind {
	case LineHeader:
		st = st.Foreground(tcell.ColorWhite).Bold(true)
	case LineSection:
		st = st.Foreground(tcell.ColorYellow).Bold(true)
	case LineGroup:
		st = st.Foreground(tcell.ColorAqua)
	case LineMissing:
		st = st.Foreground(tcell.ColorGray)
	case LineStatus:
		st = st.Foreground(tcell.ColorGreen)
	}
	if l.Selected {
		st = st.Reverse(true)
	}
	return st
}

// Draw paints the panel onto screen, scrolling to keep the cursor visible.
func (t *Terminal) Draw(screen tcell.Screen) {
	screen.Clear()
	w, h := screen.Size()
	lines := t.Lines()
	sel := -1
	for i, l := range lines {
		if l.Selected {
			sel = i
			break
		}
	}
	if sel >= 0 {
		if sel < t.scroll {
			t.scroll = sel
		}
		if sel >= t.scroll+h {
			t.scroll = sel - h + 1
		}
	}
	if t.scroll > len(lines)-1 {
		t.scroll = 0
	}
	for y := 0; y < h && t.scroll+y < len(lines); y++ {
		l := lines[t.scroll+y]
		st := styleFor(l)
		x := 0
		for _, r := range l.Text {
			if x >= w {
				break
			}
			screen.SetContent(x, y, r, nil, st)
			x++
		}
	}
	screen.Show()
}

// maxCatchUp bounds the frames run for one wakeup after a stall.
const maxCatchUp = 4

// Run drives the host at tps and redraws after every frame or event until
// the operator quits. Events are read on a separate goroutine and handled
// on the loop.
func (t *Terminal) Run(screen tcell.Screen, tps int) {
	clock := core.NewFixedStep(tps)
	ticker := time.NewTicker(clock.Interval())
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			if !t.Handle(ev) {
				return
			}
		case <-ticker.C:
			for n := clock.Due(maxCatchUp); n > 0; n-- {
				t.host.Frame()
			}
			t.refresh()
		}
		t.Draw(screen)
	}
}
