package core

import "time"

// Tick interval bounds for the speed controls.
const (
	MinTickInterval = 16 * time.Millisecond
	MaxTickInterval = 1024 * time.Millisecond
)

// FixedStep helps run simulation updates at a steady tick interval.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller with the given interval,
// clamped to [MinTickInterval, MaxTickInterval].
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// Interval returns the current tick interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// SetInterval changes the tick interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval < MinTickInterval {
		interval = MinTickInterval
	}
	if interval > MaxTickInterval {
		interval = MaxTickInterval
	}
	f.step = interval
}

// Faster halves the tick interval, down to MinTickInterval.
func (f *FixedStep) Faster() { f.SetInterval(f.step / 2) }

// Slower doubles the tick interval, up to MaxTickInterval.
func (f *FixedStep) Slower() { f.SetInterval(f.step * 2) }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator = 0
		return true
	}
	return false
}
