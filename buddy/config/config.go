// Package config is the static configuration record consumed once at boot.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"deskbuddy/buddy/settings"
	"deskbuddy/buddy/timesync"
	"deskbuddy/hal"
)

var ErrInvalid = errors.New("invalid config")

// DefaultConnectTimeout bounds Wi-Fi association at boot.
const DefaultConnectTimeout = 30 * time.Second

// Config is fixed for the lifetime of a run; the settings menu only changes
// the live copies held by settings.Store.
type Config struct {
	NumLEDs    int
	LEDPin     int
	ButtonPins [hal.ButtonCount]int
	BuzzerPin  int

	UTCOffset     time.Duration
	Use24Hour     bool
	Color         color.RGBA
	Brightness    float64
	WorkDuration  time.Duration
	BreakDuration time.Duration

	Debounce   time.Duration
	PollPeriod time.Duration

	ResyncInterval time.Duration
	SyncTimeout    time.Duration
	NTPServer      string

	WiFiSSID       string
	WiFiPassword   string
	ConnectTimeout time.Duration
}

// Default is the reference build: a 30 pixel strip on GP16, buttons on
// GP14/GP15/GP13, buzzer on GP12, Central time.
func Default() Config {
	return Config{
		NumLEDs:    30,
		LEDPin:     16,
		ButtonPins: [hal.ButtonCount]int{hal.ButtonMode: 14, hal.ButtonUp: 15, hal.ButtonDown: 13},
		BuzzerPin:  12,

		UTCOffset:     -6 * time.Hour,
		Use24Hour:     false,
		Color:         color.RGBA{R: 255, G: 100, B: 0, A: 0xFF},
		Brightness:    0.4,
		WorkDuration:  25 * time.Minute,
		BreakDuration: 5 * time.Minute,

		Debounce:   200 * time.Millisecond,
		PollPeriod: 50 * time.Millisecond,

		ResyncInterval: timesync.DefaultInterval,
		SyncTimeout:    timesync.DefaultTimeout,
		NTPServer:      "pool.ntp.org",

		ConnectTimeout: DefaultConnectTimeout,
	}
}

// Validate reports the first out-of-range value, wrapped in ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.NumLEDs <= 0:
		return fmt.Errorf("%w: num_leds %d", ErrInvalid, c.NumLEDs)
	case c.LEDPin < 0 || c.BuzzerPin < 0:
		return fmt.Errorf("%w: negative pin", ErrInvalid)
	case c.UTCOffset < -14*time.Hour || c.UTCOffset > 14*time.Hour:
		return fmt.Errorf("%w: utc offset %v", ErrInvalid, c.UTCOffset)
	case c.Brightness < 0.1 || c.Brightness > 1:
		return fmt.Errorf("%w: brightness %v outside 0.1..1.0", ErrInvalid, c.Brightness)
	case c.WorkDuration < time.Minute || c.BreakDuration < time.Minute:
		return fmt.Errorf("%w: pomodoro durations must be at least one minute", ErrInvalid)
	case c.Debounce < 0:
		return fmt.Errorf("%w: debounce %v", ErrInvalid, c.Debounce)
	case c.PollPeriod <= 0:
		return fmt.Errorf("%w: poll period %v", ErrInvalid, c.PollPeriod)
	case c.ResyncInterval <= 0 || c.SyncTimeout <= 0:
		return fmt.Errorf("%w: resync interval and timeout must be positive", ErrInvalid)
	case c.ConnectTimeout <= 0:
		return fmt.Errorf("%w: connect timeout %v", ErrInvalid, c.ConnectTimeout)
	}

	seen := map[int]hal.Button{}
	for b, pin := range c.ButtonPins {
		if pin < 0 {
			return fmt.Errorf("%w: %s button pin %d", ErrInvalid, hal.Button(b), pin)
		}
		if prev, ok := seen[pin]; ok {
			return fmt.Errorf("%w: %s and %s buttons share GP%d", ErrInvalid, prev, hal.Button(b), pin)
		}
		seen[pin] = hal.Button(b)
	}
	return nil
}

// HAL is the hardware topology handed to hal.New.
func (c Config) HAL() hal.Config {
	return hal.Config{
		NumLEDs:    c.NumLEDs,
		LEDPin:     c.LEDPin,
		ButtonPins: c.ButtonPins,
		BuzzerPin:  c.BuzzerPin,
		NTPServer:  c.NTPServer,
	}
}

// Settings seeds the runtime settings store.
func (c Config) Settings() settings.Defaults {
	return settings.Defaults{
		Use24Hour:     c.Use24Hour,
		Color:         c.Color,
		Brightness:    c.Brightness,
		WorkDuration:  c.WorkDuration,
		BreakDuration: c.BreakDuration,
	}
}
