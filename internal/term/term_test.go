package term

import (
	"strings"
	"testing"

	"tweakpanel/internal/core"
	"tweakpanel/internal/scene"
	"tweakpanel/internal/tweak"

	"github.com/gdamore/tcell/v2"
)

type board struct {
	Speed  float64
	Debug  bool
	Offset core.Vec3
}

type fakeSim struct{}

func (fakeSim) Name() string { return "fake" }
func (fakeSim) Reset(int64) {}
func (fakeSim) Step() {}

type fakeHost struct {
	graph    *scene.Graph
	registry *tweak.Registry
	open     bool
	paused   bool
	frames   int
	reloads  int
}

func newFakeHost(t *testing.T) (*fakeHost, *board) {
	t.Helper()
	b := &board{Speed: 5, Offset: core.Vec3{X: 1, Y: 2, Z: 3}}
	g := scene.New()
	g.Spawn("Board", "Board", b)
	sec := tweak.NewSection[*board]("board", tweak.Find[*board](tweak.Anywhere("Board")), tweak.Title("Board")).
		Add(
			tweak.Float("Speed", func(b *board) *float64 { return &b.Speed }, tweak.Floor(0)),
			tweak.Bool("Debug", func(b *board) *bool { return &b.Debug }),
			tweak.Vector("Offset", func(b *board) *core.Vec3 { return &b.Offset }),
		)
	missing := tweak.NewSection[*board]("ghost", tweak.Find[*board](tweak.Anywhere("Ghost")), tweak.Title("Ghost"))
	h := &fakeHost{graph: g, registry: tweak.NewRegistry(nil, sec, missing), open: true}
	h.registry.Tick(g)
	return h, b
}

func (h *fakeHost) Views() []tweak.View {
	if !h.open {
		return nil
	}
	return h.registry.Render()
}
func (h *fakeHost) Apply(section, row int, a tweak.Action) bool {
	return h.registry.Apply(section, row, a)
}
func (h *fakeHost) Step() *tweak.Step { return h.registry.Step() }
func (h *fakeHost) Open() bool { return h.open }
func (h *fakeHost) ToggleOpen() { h.open = !h.open }
func (h *fakeHost) Sim() core.Sim { return fakeSim{} }
func (h *fakeHost) Frame() {
	h.frames++
	h.registry.Tick(h.graph)
}
func (h *fakeHost) TogglePause() { h.paused = !h.paused }
func (h *fakeHost) Paused() bool { return h.paused }
func (h *fakeHost) Reload() bool { h.reloads++; return true }
func (h *fakeHost) Reset(int64) {}
func (h *fakeHost) Seed() int64 { return 0 }
func (h *fakeHost) Ticks() int { return h.frames }

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }
func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestDecode(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Command
	}{
		{key(tcell.KeyEscape), CmdQuit},
		{runeKey('q'), CmdQuit},
		{key(tcell.KeyUp), CmdUp},
		{runeKey('j'), CmdDown},
		{key(tcell.KeyRight), CmdIncrement},
		{runeKey('-'), CmdDecrement},
		{runeKey('r'), CmdReset},
		{runeKey(' '), CmdToggle},
		{runeKey('y'), CmdAxisY},
		{runeKey('s'), CmdEditStep},
		{runeKey('S'), CmdResetStep},
		{key(tcell.KeyTab), CmdNextSection},
		{runeKey('?'), CmdNone},
	}
	for _, tc := range tests {
		if got := Decode(tc.ev); got != tc.want {
			t.Errorf("Decode(%v) = %v, want %v", tc.ev.Name(), got, tc.want)
		}
	}
}

func TestDecodeEdit(t *testing.T) {
	if k, r := DecodeEdit(runeKey('7')); k != EditInsert || r != '7' {
		t.Fatalf("expected digit insert, got %v %q", k, r)
	}
	if k, _ := DecodeEdit(runeKey('x')); k != EditIgnore {
		t.Fatalf("expected letters to be ignored, got %v", k)
	}
	if k, _ := DecodeEdit(key(tcell.KeyEnter)); k != EditCommit {
		t.Fatalf("expected commit, got %v", k)
	}
	if k, _ := DecodeEdit(key(tcell.KeyEscape)); k != EditCancel {
		t.Fatalf("expected cancel, got %v", k)
	}
}

func TestAdjustSelectedRow(t *testing.T) {
	h, b := newFakeHost(t)
	term := New(h)
	if sec, row, ok := term.Selected(); !ok || sec != 0 || row != 0 {
		t.Fatalf("expected cursor on first row, got %d %d %v", sec, row, ok)
	}
	term.Do(CmdIncrement)
	if b.Speed != 15 {
		t.Fatalf("expected 15 after increment, got %v", b.Speed)
	}
	term.Do(CmdDecrement)
	term.Do(CmdDecrement)
	if b.Speed != 0 {
		t.Fatalf("expected floor clamp to 0, got %v", b.Speed)
	}
	term.Do(CmdDecrement)
	if !strings.Contains(term.Status(), "unavailable") {
		t.Fatalf("expected disabled decrement notice, got %q", term.Status())
	}
	term.Do(CmdReset)
	if b.Speed != 5 {
		t.Fatalf("expected reset to 5, got %v", b.Speed)
	}
}

func TestToggleAndVectorAxis(t *testing.T) {
	h, b := newFakeHost(t)
	term := New(h)
	term.Do(CmdDown)
	term.Do(CmdToggle)
	if !b.Debug {
		t.Fatal("expected toggle to flip debug on")
	}
	term.Do(CmdDown)
	term.Do(CmdAxisZ)
	term.Do(CmdIncrement)
	if b.Offset != (core.Vec3{X: 1, Y: 2, Z: 13}) {
		t.Fatalf("expected Z increment, got %+v", b.Offset)
	}
	term.Do(CmdAxisX)
	term.Do(CmdIncrement)
	term.Do(CmdAxisAll)
	term.Do(CmdReset)
	if b.Offset != (core.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Fatalf("expected whole-vector reset, got %+v", b.Offset)
	}
}

func TestStepEditing(t *testing.T) {
	h, b := newFakeHost(t)
	term := New(h)
	term.Handle(runeKey('s'))
	if !term.Editing() {
		t.Fatal("expected edit mode")
	}
	for _, r := range "2.5" {
		term.Handle(runeKey(r))
	}
	term.Handle(key(tcell.KeyEnter))
	if term.Editing() {
		t.Fatal("expected edit mode to end on enter")
	}
	if got := h.Step().Value(); got != 2.5 {
		t.Fatalf("expected step 2.5, got %v", got)
	}
	term.Do(CmdIncrement)
	if b.Speed != 7.5 {
		t.Fatalf("expected 7.5 with step 2.5, got %v", b.Speed)
	}

	term.Handle(runeKey('s'))
	term.Handle(runeKey('-'))
	term.Handle(runeKey('-'))
	term.Handle(key(tcell.KeyEnter))
	if got := h.Step().Value(); got != 2.5 {
		t.Fatalf("expected invalid input to keep 2.5, got %v", got)
	}
	if got := h.Step().Text(); got != "2.5" {
		t.Fatalf("expected buffer reverted to 2.5, got %q", got)
	}

	term.Handle(runeKey('s'))
	term.Handle(runeKey('9'))
	term.Handle(key(tcell.KeyEscape))
	if got := h.Step().Text(); got != "2.5" {
		t.Fatalf("expected cancel to restore buffer, got %q", got)
	}

	term.Do(CmdResetStep)
	if got := h.Step().Text(); got != "10.0" {
		t.Fatalf("expected default step text, got %q", got)
	}
}

func TestLinesShowMissingAndSelection(t *testing.T) {
	h, _ := newFakeHost(t)
	term := New(h)
	var selected, missing int
	for _, l := range term.Lines() {
		if l.Selected {
			selected++
			if !strings.Contains(l.Text, "Speed: 5.0") {
				t.Errorf("unexpected selected line %q", l.Text)
			}
		}
		if l.Kind == LineMissing && strings.Contains(l.Text, "ghost not found") {
			missing++
		}
	}
	if selected != 1 {
		t.Fatalf("expected exactly one selected line, got %d", selected)
	}
	if missing != 1 {
		t.Fatalf("expected the missing section message, got %d", missing)
	}
}

func TestClosedPanelHidesRows(t *testing.T) {
	h, b := newFakeHost(t)
	term := New(h)
	term.Do(CmdTogglePanel)
	if h.Open() {
		t.Fatal("expected panel closed")
	}
	term.Do(CmdIncrement)
	if b.Speed != 5 {
		t.Fatalf("expected no edits while closed, got %v", b.Speed)
	}
	if _, _, ok := term.Selected(); ok {
		t.Fatal("expected no selectable rows while closed")
	}
}

func TestDrawOnSimulationScreen(t *testing.T) {
	h, _ := newFakeHost(t)
	term := New(h)
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(60, 4)
	term.Draw(screen)
	r, _, _, _ := screen.GetContent(0, 0)
	if r != 'f' {
		t.Fatalf("expected header to start with sim name, got %q", r)
	}
}
