package core

import "time"

// FixedStep paces simulation ticks at a steady rate independent of the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS. The
// first call to ShouldStep always reports true.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	f.step = time.Second / time.Duration(tps)
}

// Reset drops any accumulated time, e.g. after the driver was paused.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

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
		f.accumulator -= f.step
		// Never queue more than one pending tick; a slow frame should not
		// make the agent jump several cells at once.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
