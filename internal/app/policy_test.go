package app

import "testing"

type fakeSession struct {
	interval int
	steps    int
	proposed [][2]int
}

func (f *fakeSession) Propose(dx, dy int) { f.proposed = append(f.proposed, [2]int{dx, dy}) }
func (f *fakeSession) Step()              { f.steps++ }
func (f *fakeSession) AIInterval() int    { return f.interval }

func TestPacerRunsAIEveryInterval(t *testing.T) {
	s := &fakeSession{interval: 4}
	var p pacer
	stepped := 0
	for i := 0; i < 12; i++ {
		if p.tick(s, false) {
			stepped++
		}
	}
	if stepped != 3 || s.steps != 3 {
		t.Fatalf("expected 3 AI steps in 12 ticks, got %d", s.steps)
	}
	if len(s.proposed) != 0 {
		t.Fatalf("AI ticks should not propose moves: %v", s.proposed)
	}
}

func TestPacerManualMoveStepsImmediately(t *testing.T) {
	s := &fakeSession{interval: 8}
	var p pacer
	p.tick(s, false)
	p.queue(0, -1)
	p.queue(1, 0)
	if !p.tick(s, false) {
		t.Fatal("manual move should step at once")
	}
	if len(s.proposed) != 1 || s.proposed[0] != [2]int{1, 0} {
		t.Fatalf("expected the latest press to win, got %v", s.proposed)
	}
	for i := 0; i < 7; i++ {
		if p.tick(s, false) {
			t.Fatalf("AI should wait a full interval after a manual move, stepped at %d", i)
		}
	}
	if !p.tick(s, false) {
		t.Fatal("AI should act after the interval")
	}
}

func TestPacerForceAndReset(t *testing.T) {
	s := &fakeSession{interval: 100}
	var p pacer
	if !p.tick(s, true) {
		t.Fatal("forced tick should step")
	}
	p.queue(0, 0)
	if p.hasPending {
		t.Fatal("zero vector should not queue")
	}
	p.queue(-1, 0)
	p.reset()
	p.tick(s, false)
	if len(s.proposed) != 0 {
		t.Fatal("reset should drop the queued move")
	}
}

func TestPacerClampsInterval(t *testing.T) {
	s := &fakeSession{interval: 0}
	var p pacer
	if !p.tick(s, false) {
		t.Fatal("non-positive interval should behave as 1")
	}
}
