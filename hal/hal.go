package hal

import (
	"context"
	"errors"
	"image/color"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Strip is an addressable LED strip.
//
// WriteColors stages one colour per pixel; Flush makes the staged buffer
// visible. Callers treat both as fire-and-forget.
type Strip interface {
	Len() int
	WriteColors(px []color.RGBA) error
	Flush() error
}

// Button is a logical momentary button.
type Button uint8

const (
	ButtonMode Button = iota
	ButtonUp
	ButtonDown

	ButtonCount
)

func (b Button) Valid() bool { return b < ButtonCount }

func (b Button) String() string {
	switch b {
	case ButtonMode:
		return "mode"
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	default:
		return "unknown"
	}
}

// Buttons reports the instantaneous pressed state of each button.
type Buttons interface {
	Pressed(b Button) (bool, error)
}

// Buzzer plays blocking tones.
type Buzzer interface {
	Tone(hz uint32, d time.Duration) error
	Silence() error
}

// Clock provides wall-clock and monotonic time.
type Clock interface {
	// Now is the current wall-clock time in UTC.
	Now() time.Time
	// Monotonic is the time since boot; it never goes backwards.
	Monotonic() time.Duration
	Sleep(d time.Duration)
}

// TimeSync corrects the wall clock from a network source.
type TimeSync interface {
	Sync(ctx context.Context) error
}

// Network joins a wireless network.
//
// Connect starts association and returns without waiting for it; Connected
// reports whether the link is up.
type Network interface {
	Connect(ctx context.Context, ssid, password string) error
	Connected() bool
}

// StatusDisplay is implemented by back-ends that can show a line of text
// next to the strip (the host simulator).
type StatusDisplay interface {
	ShowStatus(s string)
}

// HAL provides the only contact point between the firmware and the outside world.
type HAL interface {
	Logger() Logger
	Strip() Strip
	Buttons() Buttons
	Buzzer() Buzzer
	Clock() Clock
	TimeSync() TimeSync
	Network() Network
}

// Config is the fixed hardware topology, consumed once by New.
type Config struct {
	NumLEDs int

	LEDPin     int
	ButtonPins [ButtonCount]int
	BuzzerPin  int

	NTPServer string
}
