package input

import "time"

// Repeater drives per-binding key-repeat: once a repeatable binding is
// pressed and held, it emits the action again after RepeatDelay, then
// every RepeatRate interval. Modeled as a value type polled by the
// caller's event loop rather than a goroutine-per-timer, so deferred work
// stays a small value-typed task scheduled on a single-threaded executor.
type Repeater struct {
	action      string
	repeatDelay time.Duration
	repeatRate  time.Duration

	active    bool
	nextFire  time.Time
	delayDone bool
}

// Start arms the repeater for action, to fire first after delay then
// every rate thereafter.
func (r *Repeater) Start(action string, delay, rate time.Duration, now time.Time) {
	r.action = action
	r.repeatDelay = delay
	r.repeatRate = rate
	r.active = true
	r.delayDone = false
	r.nextFire = now.Add(delay)
}

// Stop disarms the repeater, e.g. on key release.
func (r *Repeater) Stop() {
	r.active = false
}

// Active reports whether a repeat is currently armed.
func (r *Repeater) Active() bool { return r.active }

// Poll reports the action to re-emit if now has passed the next fire
// time, advancing the internal schedule. Returns ("", false) otherwise.
// The caller drives time forward and reads back at most one event per
// call.
func (r *Repeater) Poll(now time.Time) (string, bool) {
	if !r.active || now.Before(r.nextFire) {
		return "", false
	}
	action := r.action
	if !r.delayDone {
		r.delayDone = true
	}
	r.nextFire = now.Add(r.repeatRate)
	return action, true
}
