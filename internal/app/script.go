package app

import (
	"fmt"
	"strconv"
	"strings"

	"tweakpanel/internal/core"
	"tweakpanel/internal/tweak"
)

// ScriptAction is one scripted operator action of the form
// section/row/op[/axis], where row is a binding index or label.
type ScriptAction struct {
	Section string
	Row     string
	Action  tweak.Action
}

// String returns the action in its parseable form.
func (a ScriptAction) String() string {
	s := fmt.Sprintf("%s/%s/%s", a.Section, a.Row, opName(a.Action.Op))
	if a.Action.Axis != core.AxisNone {
		s += "/" + strings.ToLower(a.Action.Axis.String())
	}
	return s
}

func opName(op tweak.Op) string {
	switch op {
	case tweak.OpIncrement:
		return "inc"
	case tweak.OpDecrement:
		return "dec"
	case tweak.OpReset:
		return "reset"
	default:
		return "toggle"
	}
}

// ParseAction parses section/row/op[/axis].
func ParseAction(s string) (ScriptAction, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) < 3 || len(parts) > 4 {
		return ScriptAction{}, fmt.Errorf("action %q: want section/row/op[/axis]", s)
	}
	out := ScriptAction{Section: parts[0], Row: parts[1]}
	if out.Section == "" || out.Row == "" {
		return ScriptAction{}, fmt.Errorf("action %q: empty section or row", s)
	}
	switch strings.ToLower(parts[2]) {
	case "inc", "+":
		out.Action = tweak.Increment
	case "dec", "-":
		out.Action = tweak.Decrement
	case "reset":
		out.Action = tweak.Reset
	case "toggle":
		out.Action = tweak.Toggle
	default:
		return ScriptAction{}, fmt.Errorf("action %q: unknown op %q", s, parts[2])
	}
	if len(parts) == 4 {
		switch strings.ToLower(parts[3]) {
		case "x":
			out.Action = out.Action.On(core.AxisX)
		case "y":
			out.Action = out.Action.On(core.AxisY)
		case "z":
			out.Action = out.Action.On(core.AxisZ)
		default:
			return ScriptAction{}, fmt.Errorf("action %q: unknown axis %q", s, parts[3])
		}
	}
	return out, nil
}

// Run applies a scripted action. It reports whether a live field was
// written; an unknown section or row is an error.
func (s *Session) Run(a ScriptAction) (bool, error) {
	if s.registry == nil {
		return false, fmt.Errorf("session detached")
	}
	p, section, ok := s.registry.Lookup(a.Section)
	if !ok {
		return false, fmt.Errorf("unknown section %q", a.Section)
	}
	row, err := resolveRow(p, a.Row, s.registry.Step().Value())
	if err != nil {
		return false, fmt.Errorf("section %s: %w", a.Section, err)
	}
	return s.registry.Apply(section, row, a.Action), nil
}

func resolveRow(p tweak.Panel, row string, step float64) (int, error) {
	if i, err := strconv.Atoi(row); err == nil {
		return i, nil
	}
	for _, r := range p.View(step).Rows() {
		if strings.EqualFold(r.Label, row) {
			return r.Index, nil
		}
	}
	if !p.Valid() {
		return 0, fmt.Errorf("row %q unknown while target is absent", row)
	}
	return 0, fmt.Errorf("unknown row %q", row)
}
