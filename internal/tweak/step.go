package tweak

import (
	"math"
	"strconv"
	"strings"
)

// DefaultStep is the global step restored by Step.Reset.
const DefaultStep = 10.0

// Step is the operator-editable global adjustment unit shared by every
// binding. Text is the editing buffer; it only takes effect on Apply.
type Step struct {
	value float64
	def   float64
	text  string
}

// NewStep returns a step starting at def, clamped to non-negative.
func NewStep(def float64) *Step {
	if def < 0 || math.IsNaN(def) || math.IsInf(def, 0) {
		def = DefaultStep
	}
	s := &Step{def: def}
	s.Set(def)
	return s
}

// Value returns the effective step.
func (s *Step) Value() float64 { return s.value }

// Text returns the editing buffer.
func (s *Step) Text() string { return s.text }

// SetText replaces the editing buffer without changing the value.
func (s *Step) SetText(t string) { s.text = t }

// Set assigns the value directly, clamping to non-negative, and rewrites the
// buffer.
func (s *Step) Set(v float64) {
	if v < 0 {
		v = 0
	}
	s.value = v
	s.text = FormatStepValue(v)
}

// Apply parses the buffer. A valid number becomes the value, clamped to
// non-negative; anything else reverts the buffer to the current value.
func (s *Step) Apply() bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(s.text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		s.text = FormatStepValue(s.value)
		return false
	}
	if v < 0 {
		v = 0
	}
	s.value = v
	return true
}

// Reset restores the default value and buffer.
func (s *Step) Reset() { s.Set(s.def) }

// FormatStepValue formats v the way the step buffer displays it.
func FormatStepValue(v float64) string { return formatFloat(v, 1) }
