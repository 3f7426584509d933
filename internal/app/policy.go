package app

type stepper interface {
	Propose(dx, dy int)
	Step()
	AIInterval() int
}

// pacer decides on each driver tick whether the session advances. A queued
// manual move always advances immediately; otherwise the AI acts once every
// AIInterval ticks.
type pacer struct {
	idle       int
	dx, dy     int
	hasPending bool
}

// queue records a manual move for the next tick. Later presses replace
// earlier ones.
func (p *pacer) queue(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	p.dx, p.dy = dx, dy
	p.hasPending = true
}

// tick advances s when a manual move is queued, when force is set, or when
// the AI interval has elapsed. It reports whether s stepped.
func (p *pacer) tick(s stepper, force bool) bool {
	if p.hasPending {
		s.Propose(p.dx, p.dy)
		p.hasPending = false
		p.idle = 0
		s.Step()
		return true
	}
	p.idle++
	interval := s.AIInterval()
	if interval < 1 {
		interval = 1
	}
	if !force && p.idle < interval {
		return false
	}
	p.idle = 0
	s.Step()
	return true
}

func (p *pacer) reset() {
	*p = pacer{}
}
