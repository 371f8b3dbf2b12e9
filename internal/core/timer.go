package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate
// when the caller's loop runs at a different cadence (terminal redraws, for
// example).
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval reports the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Due returns how many ticks are pending, at most max. When the backlog
// exceeds max the remainder is dropped so a stalled caller does not spiral.
func (f *FixedStep) Due(max int) int {
	n := 0
	for n < max && f.ShouldStep() {
		n++
	}
	if n == max && f.accumulator >= f.step {
		f.accumulator = 0
	}
	return n
}
