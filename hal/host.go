//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger  *hostLogger
	strip   *hostStrip
	fb      *hostFramebuffer
	pins    [ButtonCount]*virtualPin
	buttons *pinButtons
	kbd     *hostKeyboard
	buzzer  Buzzer
	clock   *hostClock
	sync    TimeSync
	network *hostNetwork
}

// New returns a host HAL: a simulated strip drawn into a framebuffer,
// keyboard-driven button pins, and NTP-corrected system time.
func New(cfg Config) (HAL, error) {
	return newHost(cfg)
}

func newHost(cfg Config) (*hostHAL, error) {
	if cfg.NumLEDs <= 0 {
		return nil, fmt.Errorf("hal: invalid LED count %d", cfg.NumLEDs)
	}
	logger := &hostLogger{w: os.Stdout}
	clock := newHostClock()

	var pins [ButtonCount]*virtualPin
	var gpio [ButtonCount]GPIOPin
	for b := range pins {
		pins[b] = newVirtualPin(fmt.Sprintf("GP%d", cfg.ButtonPins[b]), GPIOCapInput|GPIOCapPullUp)
		gpio[b] = pins[b]
	}
	buttons, err := newPinButtons(gpio)
	if err != nil {
		return nil, err
	}

	fb := newHostFramebuffer(stripFramebufferSize(cfg.NumLEDs))
	return &hostHAL{
		logger:  logger,
		strip:   newHostStrip(fb, cfg.NumLEDs),
		fb:      fb,
		pins:    pins,
		buttons: buttons,
		kbd:     newHostKeyboard(pins),
		buzzer:  newHostBuzzer(logger),
		clock:   clock,
		sync:    newNTPSync(cfg.NTPServer, clock),
		network: &hostNetwork{},
	}, nil
}

func (h *hostHAL) Logger() Logger     { return h.logger }
func (h *hostHAL) Strip() Strip       { return h.strip }
func (h *hostHAL) Buttons() Buttons   { return h.buttons }
func (h *hostHAL) Buzzer() Buzzer     { return h.buzzer }
func (h *hostHAL) Clock() Clock       { return h.clock }
func (h *hostHAL) TimeSync() TimeSync { return h.sync }
func (h *hostHAL) Network() Network   { return h.network }

// ShowStatus draws s on the simulator's text row.
func (h *hostHAL) ShowStatus(s string) { h.strip.showStatus(s) }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
