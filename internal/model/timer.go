package model

import "time"

// Timer is a countdown advanced by simulation time, never by the wall clock.
// A one-shot timer stays finished once its duration has elapsed.
// A repeating timer wraps around and reports how many times it completed
// during the last Tick.
type Timer struct {
	duration      time.Duration
	elapsed       time.Duration
	repeating     bool
	finished      bool
	timesFinished int
}

// NewTimer creates a one-shot timer.
func NewTimer(duration time.Duration) *Timer {
	return &Timer{duration: duration}
}

// NewRepeatingTimer creates a timer that restarts every time it completes.
func NewRepeatingTimer(interval time.Duration) *Timer {
	return &Timer{duration: interval, repeating: true}
}

// Tick advances the timer by delta.
func (t *Timer) Tick(delta time.Duration) {
	if !t.repeating && t.finished {
		t.timesFinished = 0
		return
	}

	t.elapsed += delta
	if t.elapsed < t.duration {
		t.timesFinished = 0
		if t.repeating {
			t.finished = false
		}
		return
	}

	t.finished = true
	switch {
	case !t.repeating:
		t.timesFinished = 1
		t.elapsed = t.duration
	case t.duration <= 0:
		t.timesFinished = 1
		t.elapsed = 0
	default:
		t.timesFinished = int(t.elapsed / t.duration)
		t.elapsed %= t.duration
	}
}

// Finished reports whether the timer completed (one-shot) or wrapped during
// the last Tick (repeating).
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished reports whether the timer completed during the last Tick.
func (t *Timer) JustFinished() bool {
	return t.timesFinished > 0
}

// TimesFinished returns how many times the timer completed during the last Tick.
func (t *Timer) TimesFinished() int {
	return t.timesFinished
}

// Elapsed returns time accumulated since the start (or last wrap).
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Duration returns the configured duration.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Remaining returns the time left until the next completion.
func (t *Timer) Remaining() time.Duration {
	if t.elapsed >= t.duration {
		return 0
	}
	return t.duration - t.elapsed
}

// Reset rewinds the timer to zero.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinished = 0
}

// Progress implements Progressive as (elapsed, total) in seconds.
func (t *Timer) Progress() (float64, float64) {
	return t.elapsed.Seconds(), t.duration.Seconds()
}
