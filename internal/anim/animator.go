package anim

import "time"

// Invalidator is the host view. Invalidate asks it to draw again on its next
// frame.
type Invalidator interface {
	Invalidate()
}

// Animator paces state updates to one tick per delay. It is driven from the
// host's update loop and never blocks; all calls must come from that loop.
type Animator struct {
	view    Invalidator
	delay   time.Duration
	running bool
	elapsed time.Duration
}

func NewAnimator(view Invalidator, delay time.Duration) *Animator {
	return &Animator{view: view, delay: delay}
}

func (a *Animator) Running() bool {
	return a.running
}

// Start marks the animator running and requests a redraw. Calling it while
// running has no effect.
func (a *Animator) Start() {
	if a.running {
		return
	}
	a.running = true
	a.elapsed = 0
	a.view.Invalidate()
}

// Stop halts ticking. Time already accumulated is dropped.
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.elapsed = 0
}

// Advance adds dt to the pending frame time and calls tick once per whole
// delay, requesting a redraw after each tick. A tick that calls Stop ends the
// burst. It returns the number of ticks fired.
func (a *Animator) Advance(dt time.Duration, tick func()) int {
	if !a.running {
		return 0
	}
	if a.delay <= 0 {
		tick()
		a.view.Invalidate()
		return 1
	}
	a.elapsed += dt
	n := 0
	for a.running && a.elapsed >= a.delay {
		a.elapsed -= a.delay
		tick()
		n++
		a.view.Invalidate()
	}
	return n
}
