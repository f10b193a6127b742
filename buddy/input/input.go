// Package input debounces the three buttons and applies their per-mode
// meaning to the timer, the settings store and the active mode.
package input

import (
	"time"

	"deskbuddy/buddy/mode"
	"deskbuddy/buddy/pomodoro"
	"deskbuddy/buddy/settings"
	"deskbuddy/hal"
)

// DefaultDebounce is the reference debounce window.
const DefaultDebounce = 200 * time.Millisecond

// Source reports the instantaneous level of a button.
type Source interface {
	Pressed(b hal.Button) (bool, error)
}

// Debouncer tracks the last accepted press per button.
type Debouncer struct {
	window time.Duration
	last   [hal.ButtonCount]time.Duration
	seen   [hal.ButtonCount]bool
}

func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Accept reports whether a press of b observed at monotonic instant now
// counts. The first press of each button is always accepted.
func (d *Debouncer) Accept(b hal.Button, now time.Duration) bool {
	if !b.Valid() {
		return false
	}
	if d.seen[b] && now-d.last[b] <= d.window {
		return false
	}
	d.seen[b] = true
	d.last[b] = now
	return true
}

// Action is what an accepted press did.
type Action uint8

const (
	ActionNone Action = iota
	ActionModeChanged
	ActionTimerStarted
	ActionTimerStopped
	ActionAlertAcknowledged
	ActionSettingAdjusted
	ActionSelectionAdvanced
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionModeChanged:
		return "mode changed"
	case ActionTimerStarted:
		return "timer started"
	case ActionTimerStopped:
		return "timer stopped"
	case ActionAlertAcknowledged:
		return "alert acknowledged"
	case ActionSettingAdjusted:
		return "setting adjusted"
	case ActionSelectionAdvanced:
		return "selection advanced"
	default:
		return "unknown"
	}
}

// Event records one accepted press. Mode is the mode after the press.
type Event struct {
	Button hal.Button
	Mode   mode.Mode
	Action Action
}

// Dispatcher owns the active mode and routes accepted presses.
type Dispatcher struct {
	src      Source
	debounce *Debouncer

	mode  mode.Mode
	timer *pomodoro.Timer
	store *settings.Store

	events []Event
}

func NewDispatcher(src Source, window time.Duration, timer *pomodoro.Timer, store *settings.Store) *Dispatcher {
	return &Dispatcher{
		src:      src,
		debounce: NewDebouncer(window),
		mode:     mode.Clock,
		timer:    timer,
		store:    store,
		events:   make([]Event, 0, hal.ButtonCount),
	}
}

func (d *Dispatcher) Mode() mode.Mode { return d.mode }

// Poll samples every button once. Buttons are evaluated independently in
// Mode, Up, Down order; each yields at most one event. The returned slice
// is reused by the next call.
func (d *Dispatcher) Poll(now time.Time, mono time.Duration) []Event {
	d.events = d.events[:0]
	for b := hal.Button(0); b < hal.ButtonCount; b++ {
		if !d.pressed(b) {
			continue
		}
		if !d.debounce.Accept(b, mono) {
			continue
		}
		action := d.apply(b, now)
		d.events = append(d.events, Event{Button: b, Mode: d.mode, Action: action})
	}
	return d.events
}

func (d *Dispatcher) pressed(b hal.Button) bool {
	if d.src == nil {
		return false
	}
	level, err := d.src.Pressed(b)
	if err != nil {
		return false
	}
	return level
}

func (d *Dispatcher) apply(b hal.Button, now time.Time) Action {
	switch b {
	case hal.ButtonMode:
		d.mode = d.mode.Next()
		return ActionModeChanged
	case hal.ButtonUp:
		return d.up(now)
	case hal.ButtonDown:
		return d.down()
	default:
		return ActionNone
	}
}

func (d *Dispatcher) up(now time.Time) Action {
	switch d.mode {
	case mode.Clock:
		return ActionNone
	case mode.Pomodoro:
		switch d.timer.State() {
		case pomodoro.AlertFiring:
			d.timer.Acknowledge()
			return ActionAlertAcknowledged
		case pomodoro.Idle:
			d.timer.Start(now)
			return ActionTimerStarted
		default:
			return ActionNone
		}
	case mode.Settings:
		if err := d.store.AdjustSelected(1); err != nil {
			return ActionNone
		}
		d.timer.SetDurations(d.store.WorkDuration(), d.store.BreakDuration())
		return ActionSettingAdjusted
	default:
		return ActionNone
	}
}

func (d *Dispatcher) down() Action {
	switch d.mode {
	case mode.Clock:
		return ActionNone
	case mode.Pomodoro:
		switch d.timer.State() {
		case pomodoro.Running:
			d.timer.Stop()
			return ActionTimerStopped
		case pomodoro.AlertFiring:
			d.timer.Acknowledge()
			return ActionAlertAcknowledged
		default:
			return ActionNone
		}
	case mode.Settings:
		d.store.Advance()
		return ActionSelectionAdvanced
	default:
		return ActionNone
	}
}
