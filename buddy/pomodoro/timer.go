// Package pomodoro implements the two-phase work/break countdown.
package pomodoro

import "time"

// State is the externally visible timer state.
type State uint8

const (
	Idle State = iota
	Running
	AlertFiring
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case AlertFiring:
		return "alert"
	default:
		return "unknown"
	}
}

// Phase selects which duration the countdown uses.
type Phase uint8

const (
	Work Phase = iota
	Break
)

func (p Phase) String() string {
	if p == Break {
		return "break"
	}
	return "work"
}

// Other returns the phase that follows p.
func (p Phase) Other() Phase {
	if p == Work {
		return Break
	}
	return Work
}

// Timer is the countdown state machine. The zero value is not usable; use New.
//
// start is only meaningful while active. alert implies !active.
type Timer struct {
	active bool
	phase  Phase
	start  time.Time
	alert  bool

	work time.Duration
	brk  time.Duration
}

// New returns an idle timer in the work phase.
func New(work, brk time.Duration) *Timer {
	return &Timer{phase: Work, work: work, brk: brk}
}

// State derives the machine state from the flags.
func (t *Timer) State() State {
	switch {
	case t.alert:
		return AlertFiring
	case t.active:
		return Running
	default:
		return Idle
	}
}

func (t *Timer) Phase() Phase { return t.phase }

func (t *Timer) WorkDuration() time.Duration  { return t.work }
func (t *Timer) BreakDuration() time.Duration { return t.brk }

// SetDurations replaces both phase durations. A running countdown picks the
// new value up on its next evaluation.
func (t *Timer) SetDurations(work, brk time.Duration) {
	t.work = work
	t.brk = brk
}

// PhaseDuration is the duration of the current phase.
func (t *Timer) PhaseDuration() time.Duration {
	if t.phase == Break {
		return t.brk
	}
	return t.work
}

// Start begins a countdown for the current phase. It only acts from Idle.
func (t *Timer) Start(now time.Time) bool {
	if t.State() != Idle {
		return false
	}
	t.active = true
	t.start = now
	t.alert = false
	return true
}

// Stop cancels a running countdown without flipping the phase.
func (t *Timer) Stop() bool {
	if t.State() != Running {
		return false
	}
	t.active = false
	return true
}

// Acknowledge clears a firing alert. The next phase is not started.
func (t *Timer) Acknowledge() bool {
	if t.State() != AlertFiring {
		return false
	}
	t.alert = false
	return true
}

// Elapsed returns whole seconds since Start, or 0 when not running.
//
// A wall clock stepped backwards (e.g. by a resync) would make the raw
// difference negative; it is clamped to 0.
func (t *Timer) Elapsed(now time.Time) time.Duration {
	if !t.active {
		return 0
	}
	secs := now.Unix() - t.start.Unix()
	if secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// Remaining returns max(0, phase duration - elapsed).
func (t *Timer) Remaining(now time.Time) time.Duration {
	rem := t.PhaseDuration() - t.Elapsed(now)
	if rem < 0 {
		return 0
	}
	return rem
}

// CheckCompletion fires the alert transition when a running countdown has
// reached zero. It reports true exactly once per countdown; the caller owns
// the audible side effect.
func (t *Timer) CheckCompletion(now time.Time) bool {
	if !t.active || t.alert {
		return false
	}
	if t.Remaining(now) > 0 {
		return false
	}
	t.alert = true
	t.active = false
	t.phase = t.phase.Other()
	return true
}

// Snapshot is a read-only view of the timer at one instant.
type Snapshot struct {
	State     State
	Phase     Phase
	Elapsed   time.Duration
	Duration  time.Duration
	Remaining time.Duration
}

func (t *Timer) Snapshot(now time.Time) Snapshot {
	return Snapshot{
		State:     t.State(),
		Phase:     t.phase,
		Elapsed:   t.Elapsed(now),
		Duration:  t.PhaseDuration(),
		Remaining: t.Remaining(now),
	}
}
