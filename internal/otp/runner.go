package otp

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Runner owns the two timers of a challenge: the one-second countdown and
// the auto-submit delay. Callbacks run on timer goroutines; the owner is
// expected to serialize them with its other mutations and to check Closed
// once serialized, since Close may win the race after a timer fired.
type Runner struct {
	clock      clock.Clock
	delay      time.Duration
	onTick     func()
	onComplete func()

	mu            sync.Mutex
	countdown     *clock.Timer
	autoSubmit    *clock.Timer
	countdownGen  uint64
	autoSubmitGen uint64
	closed        bool
}

// NewRunner creates a runner. onTick fires once per armed second and
// onComplete once per armed auto-submit.
func NewRunner(clk clock.Clock, delay time.Duration, onTick, onComplete func()) *Runner {
	if clk == nil {
		clk = clock.New()
	}
	return &Runner{
		clock:      clk,
		delay:      delay,
		onTick:     onTick,
		onComplete: onComplete,
	}
}

// ArmCountdown schedules the next countdown tick one second from now,
// replacing any pending one
func (r *Runner) ArmCountdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	stop(r.countdown)
	r.countdownGen++
	gen := r.countdownGen
	r.countdown = r.clock.AfterFunc(time.Second, func() { r.fire(&r.countdownGen, gen, r.onTick) })
}

// StopCountdown cancels the pending countdown tick
func (r *Runner) StopCountdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	stop(r.countdown)
	r.countdown = nil
	r.countdownGen++
}

// ArmAutoSubmit schedules onComplete after the auto-submit delay. Arming
// again replaces the pending submit, so refilling the last cell submits once.
func (r *Runner) ArmAutoSubmit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	stop(r.autoSubmit)
	r.autoSubmitGen++
	gen := r.autoSubmitGen
	r.autoSubmit = r.clock.AfterFunc(r.delay, func() { r.fire(&r.autoSubmitGen, gen, r.onComplete) })
}

// CancelAutoSubmit drops a pending auto-submit
func (r *Runner) CancelAutoSubmit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	stop(r.autoSubmit)
	r.autoSubmit = nil
	r.autoSubmitGen++
}

// Close stops both timers. Callbacks of timers that already fired become no-ops.
func (r *Runner) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	stop(r.countdown)
	stop(r.autoSubmit)
	r.countdown = nil
	r.autoSubmit = nil
	return nil
}

// Closed reports whether Close was called
func (r *Runner) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// fire runs fn if gen is still the armed generation of its timer
func (r *Runner) fire(current *uint64, gen uint64, fn func()) {
	r.mu.Lock()
	if r.closed || *current != gen {
		r.mu.Unlock()
		return
	}
	*current++
	r.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func stop(t *clock.Timer) {
	if t != nil {
		t.Stop()
	}
}
