// Package app is the desk buddy main loop: it owns every piece of runtime
// state and talks to the outside world only through hal.
package app

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"strings"
	"time"

	"deskbuddy/buddy/anim"
	"deskbuddy/buddy/clock"
	"deskbuddy/buddy/config"
	"deskbuddy/buddy/input"
	"deskbuddy/buddy/mode"
	"deskbuddy/buddy/pomodoro"
	"deskbuddy/buddy/render"
	"deskbuddy/buddy/settings"
	"deskbuddy/buddy/timesync"
	"deskbuddy/hal"
	"deskbuddy/internal/buildinfo"
)

const (
	// ErrorPause follows a failed or panicking step.
	ErrorPause = time.Second

	AlertToneHz = 1000
	AlertBeep   = 200 * time.Millisecond
	AlertGap    = 200 * time.Millisecond
	AlertBeeps  = 3
)

// Options bound a Run.
type Options struct {
	// MaxCycles stops the loop after that many steps; zero runs until ctx
	// is done.
	MaxCycles int
	// LogStatus logs the status line whenever it changes. Headless runs
	// use it in place of the simulator's text row.
	LogStatus bool
}

// Runtime is the single owner of mode, timer and settings state.
type Runtime struct {
	cfg config.Config

	log     hal.Logger
	clock   hal.Clock
	strip   hal.Strip
	buzzer  hal.Buzzer
	network hal.Network
	status  hal.StatusDisplay

	store *settings.Store
	timer *pomodoro.Timer
	input *input.Dispatcher
	sync  *timesync.Scheduler

	frame      []color.RGBA
	lastStatus string
	confirmed  bool
	logStatus  bool
}

// New wires a runtime to h. cfg must be valid; the strip length reported
// by h wins over cfg.NumLEDs.
func New(h hal.HAL, cfg config.Config) (*Runtime, error) {
	if h == nil {
		return nil, errors.New("app: nil HAL")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	strip := h.Strip()
	if strip == nil || strip.Len() <= 0 {
		return nil, errors.New("app: HAL has no LED strip")
	}
	if h.Clock() == nil {
		return nil, errors.New("app: HAL has no clock")
	}

	store := settings.New(cfg.Settings())
	timer := pomodoro.New(store.WorkDuration(), store.BreakDuration())

	r := &Runtime{
		cfg:     cfg,
		log:     h.Logger(),
		clock:   h.Clock(),
		strip:   strip,
		buzzer:  h.Buzzer(),
		network: h.Network(),
		store:   store,
		timer:   timer,
		input:   input.NewDispatcher(h.Buttons(), cfg.Debounce, timer, store),
		frame:   make([]color.RGBA, strip.Len()),
	}
	if sd, ok := h.(hal.StatusDisplay); ok {
		r.status = sd
	}
	if ts := h.TimeSync(); ts != nil {
		r.sync = timesync.New(ts, cfg.ResyncInterval, cfg.SyncTimeout)
	}
	return r, nil
}

// Mode is the active mode.
func (r *Runtime) Mode() mode.Mode { return r.input.Mode() }

// Timer exposes the pomodoro timer for inspection.
func (r *Runtime) Timer() *pomodoro.Timer { return r.timer }

// Settings exposes the settings store for inspection.
func (r *Runtime) Settings() *settings.Store { return r.store }

// Boot plays the startup rainbow, joins the configured network and makes the
// first time sync attempt.
func (r *Runtime) Boot(ctx context.Context) error {
	r.logf("Desk Buddy %s starting (%d LEDs)", buildinfo.Short(), len(r.frame))
	if err := anim.Rainbow(r.strip, r.clock, r.store.ClockConfig().Tenths); err != nil {
		return fmt.Errorf("boot animation: %w", err)
	}
	r.connect(ctx)
	if r.sync != nil {
		r.resync(ctx)
	}
	r.logf("ready, mode: %s", strings.ToUpper(r.Mode().String()))
	r.logf("MODE cycles modes, UP/DOWN control the current mode")
	return nil
}

// Step runs one cycle: poll inputs, evaluate completion, resync if due and
// draw a frame.
func (r *Runtime) Step(ctx context.Context) error {
	for _, ev := range r.input.Poll(r.clock.Now(), r.clock.Monotonic()) {
		r.logEvent(ev)
		if ev.Action == input.ActionModeChanged {
			if err := anim.ModeFlash(r.strip, r.clock, r.store.ClockConfig().Tenths); err != nil {
				return fmt.Errorf("mode flash: %w", err)
			}
		}
	}

	if r.timer.CheckCompletion(r.clock.Now()) {
		r.logf("pomodoro: %s complete, %s next", r.timer.Phase().Other(), r.timer.Phase())
		if err := r.playAlert(); err != nil {
			r.logf("buzzer: %v", err)
		}
	}

	if r.sync != nil && r.sync.Due(r.clock.Monotonic()) {
		r.resync(ctx)
	}

	return r.draw()
}

// Run calls Step every poll period until ctx is done or opts.MaxCycles
// steps have run, then shuts down. A failing or panicking step is logged
// and followed by ErrorPause; the loop carries on.
func (r *Runtime) Run(ctx context.Context, opts Options) error {
	r.logStatus = opts.LogStatus
	for n := 0; opts.MaxCycles <= 0 || n < opts.MaxCycles; n++ {
		if err := ctx.Err(); err != nil {
			r.Shutdown()
			return err
		}
		if err := r.safeStep(ctx); err != nil {
			r.logf("error: %v", err)
			r.clock.Sleep(ErrorPause)
			continue
		}
		r.clock.Sleep(r.cfg.PollPeriod)
	}
	r.Shutdown()
	return nil
}

// Shutdown blanks the strip and silences the buzzer.
func (r *Runtime) Shutdown() {
	r.logf("shutting down")
	if err := anim.Clear(r.strip); err != nil {
		r.logf("strip: %v", err)
	}
	if r.buzzer != nil {
		if err := r.buzzer.Silence(); err != nil {
			r.logf("buzzer: %v", err)
		}
	}
}

// connect chases a pixel along the strip while association is pending.
// Failure is logged and boot carries on.
func (r *Runtime) connect(ctx context.Context) {
	if r.network == nil || r.cfg.WiFiSSID == "" {
		return
	}
	r.logf("network: connecting to %q", r.cfg.WiFiSSID)
	if err := r.network.Connect(ctx, r.cfg.WiFiSSID, r.cfg.WiFiPassword); err != nil {
		r.logf("network: %v", err)
		return
	}
	if err := anim.Connecting(r.strip, r.clock, r.network.Connected, r.cfg.ConnectTimeout); err != nil {
		r.logf("network: %v", err)
		return
	}
	r.logf("network: connected to %q", r.cfg.WiFiSSID)
	r.confirm()
}

func (r *Runtime) resync(ctx context.Context) {
	if err := r.sync.Run(ctx, r.clock.Monotonic()); err != nil {
		ok, failed := r.sync.Stats()
		r.logf("time: sync failed (%d ok, %d failed): %v", ok, failed, err)
		return
	}
	r.logf("time: synced, %s UTC", r.clock.Now().Format(time.TimeOnly))
	r.confirm()
}

// confirm plays the green flash the first time the device comes online,
// whether through association or a first successful sync.
func (r *Runtime) confirm() {
	if r.confirmed {
		return
	}
	r.confirmed = true
	if err := anim.SyncFlash(r.strip, r.clock); err != nil {
		r.logf("strip: %v", err)
	}
}

func (r *Runtime) playAlert() error {
	if r.buzzer == nil {
		return nil
	}
	for i := 0; i < AlertBeeps; i++ {
		if err := r.buzzer.Tone(AlertToneHz, AlertBeep); err != nil {
			_ = r.buzzer.Silence()
			return err
		}
		r.clock.Sleep(AlertGap)
	}
	return nil
}

func (r *Runtime) scene() render.Scene {
	now := r.clock.Now()
	cc := r.store.ClockConfig()
	h, m, s := clock.Fields(now, r.cfg.UTCOffset, cc.Use24Hour)
	sel := r.store.Selected()
	return render.Scene{
		Mode:          r.input.Mode(),
		Hours:         h,
		Minutes:       m,
		Seconds:       s,
		Color:         cc.Color,
		Tenths:        cc.Tenths,
		Timer:         r.timer.Snapshot(now),
		SettingsIndex: int(sel),
		SettingsCount: settings.FieldCount,
		SettingText:   r.store.Describe(sel),
		Monotonic:     r.clock.Monotonic(),
	}
}

func (r *Runtime) draw() error {
	sc := r.scene()
	render.Frame(r.frame, sc)
	if err := r.strip.WriteColors(r.frame); err != nil {
		return fmt.Errorf("strip write: %w", err)
	}
	if err := r.strip.Flush(); err != nil {
		return fmt.Errorf("strip flush: %w", err)
	}

	text := render.Status(sc)
	if r.status != nil {
		r.status.ShowStatus(text)
	}
	if text != r.lastStatus {
		r.lastStatus = text
		if r.logStatus {
			r.logf("status: %s", text)
		}
	}
	return nil
}

func (r *Runtime) logEvent(ev input.Event) {
	switch ev.Action {
	case input.ActionModeChanged:
		r.logf("mode: %s", strings.ToUpper(ev.Mode.String()))
	case input.ActionTimerStarted:
		r.logf("pomodoro: started %s, %d min", r.timer.Phase(), int(r.timer.PhaseDuration()/time.Minute))
	case input.ActionTimerStopped:
		r.logf("pomodoro: stopped")
	case input.ActionAlertAcknowledged:
		r.logf("pomodoro: alert acknowledged, %s ready", r.timer.Phase())
	case input.ActionSettingAdjusted:
		r.logf("settings: %s", r.store.Describe(r.store.Selected()))
	case input.ActionSelectionAdvanced:
		r.logf("settings: selected %s", r.store.Selected())
	}
}

func (r *Runtime) logf(format string, args ...any) {
	if r.log == nil {
		return
	}
	r.log.WriteLineString(fmt.Sprintf(format, args...))
}
