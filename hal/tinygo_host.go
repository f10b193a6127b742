//go:build tinygo && !baremetal

package hal

import (
	"fmt"
	"image/color"
	"time"
)

type tinyGoHostHAL struct {
	logger  *tinyGoHostLogger
	strip   *tinyGoHostStrip
	buttons *pinButtons
	clock   *tinyGoHostClock
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU
// pin mapping. Buttons never read as pressed and the strip is printed as a
// row of hex colours.
func New(cfg Config) (HAL, error) {
	if cfg.NumLEDs <= 0 {
		return nil, fmt.Errorf("hal: invalid LED count %d", cfg.NumLEDs)
	}
	l := &tinyGoHostLogger{}

	var pins [ButtonCount]GPIOPin
	for b := range pins {
		pins[b] = newVirtualPin(Button(b).String(), GPIOCapInput|GPIOCapPullUp)
	}
	buttons, err := newPinButtons(pins)
	if err != nil {
		return nil, err
	}

	return &tinyGoHostHAL{
		logger:  l,
		strip:   &tinyGoHostStrip{logger: l, staged: make([]color.RGBA, cfg.NumLEDs)},
		buttons: buttons,
		clock:   &tinyGoHostClock{boot: time.Now()},
	}, nil
}

func (h *tinyGoHostHAL) Logger() Logger     { return h.logger }
func (h *tinyGoHostHAL) Strip() Strip       { return h.strip }
func (h *tinyGoHostHAL) Buttons() Buttons   { return h.buttons }
func (h *tinyGoHostHAL) Buzzer() Buzzer     { return nullBuzzer{} }
func (h *tinyGoHostHAL) Clock() Clock       { return h.clock }
func (h *tinyGoHostHAL) TimeSync() TimeSync { return nullSync{} }
func (h *tinyGoHostHAL) Network() Network   { return nullNetwork{} }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) { println(s) }
func (l *tinyGoHostLogger) WriteLineBytes(b []byte)  { println(string(b)) }

type tinyGoHostClock struct {
	boot time.Time
}

func (c *tinyGoHostClock) Now() time.Time           { return time.Now().UTC() }
func (c *tinyGoHostClock) Monotonic() time.Duration { return time.Since(c.boot) }
func (c *tinyGoHostClock) Sleep(d time.Duration)    { time.Sleep(d) }

type tinyGoHostStrip struct {
	logger *tinyGoHostLogger
	staged []color.RGBA
	last   string
}

func (s *tinyGoHostStrip) Len() int { return len(s.staged) }

func (s *tinyGoHostStrip) WriteColors(px []color.RGBA) error {
	if len(px) != len(s.staged) {
		return fmt.Errorf("strip: got %d pixels, want %d", len(px), len(s.staged))
	}
	copy(s.staged, px)
	return nil
}

// Flush prints the strip only when it changed since the last flush.
func (s *tinyGoHostStrip) Flush() error {
	line := make([]byte, 0, len(s.staged)*7)
	for _, c := range s.staged {
		line = fmt.Appendf(line, "%02x%02x%02x ", c.R, c.G, c.B)
	}
	if string(line) == s.last {
		return nil
	}
	s.last = string(line)
	s.logger.WriteLineBytes(line)
	return nil
}
