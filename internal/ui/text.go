package ui

import (
	"fmt"
	"io"
	"strings"

	"tweakpanel/internal/tweak"
)

// Host is the panel surface the adapters drive. app.Session implements it.
type Host interface {
	Views() []tweak.View
	Apply(section, row int, a tweak.Action) bool
	Step() *tweak.Step
	Open() bool
	ToggleOpen()
}

// FormatStep renders the global step line.
func FormatStep(step *tweak.Step) string {
	if step == nil {
		return "Step: --"
	}
	line := fmt.Sprintf("Step: %s", tweak.FormatStepValue(step.Value()))
	if step.Text() != tweak.FormatStepValue(step.Value()) {
		line += fmt.Sprintf(" [editing %q]", step.Text())
	}
	return line
}

// FormatButtons renders a row's buttons; disabled ones are parenthesised.
func FormatButtons(buttons []tweak.Button) string {
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		if b.Enabled {
			parts = append(parts, "["+b.Caption+"]")
		} else {
			parts = append(parts, "("+b.Caption+")")
		}
	}
	return strings.Join(parts, " ")
}

// FormatRow renders one row as a single line without indentation.
func FormatRow(r tweak.Row) string {
	value := r.Value
	if !r.Found {
		value = "--"
	}
	line := fmt.Sprintf("%d %s: %s", r.Index, r.Label, value)
	if buttons := FormatButtons(r.Buttons); buttons != "" {
		line += "  " + buttons
	}
	return line
}

// WriteText renders the step line and every view as plain text.
func WriteText(w io.Writer, views []tweak.View, step *tweak.Step) error {
	var b strings.Builder
	b.WriteString(FormatStep(step))
	b.WriteByte('\n')
	for i, v := range views {
		fmt.Fprintf(&b, "#%d %s [%s]\n", i, v.Title, v.State)
		if !v.Valid {
			fmt.Fprintf(&b, "    %s\n", v.Missing)
			continue
		}
		for _, g := range v.Groups {
			indent := "    "
			if g.Title != "" {
				fmt.Fprintf(&b, "    -- %s --\n", g.Title)
				indent = "      "
			}
			if g.Missing != "" {
				fmt.Fprintf(&b, "%s%s\n", indent, g.Missing)
				continue
			}
			for _, r := range g.Rows {
				b.WriteString(indent)
				b.WriteString(FormatRow(r))
				b.WriteByte('\n')
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
