//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/ws2812"
)

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// tinyGoClock has no RTC behind it: wall time starts at the epoch until a
// sync succeeds.
type tinyGoClock struct {
	boot time.Time
}

func newTinyGoClock() *tinyGoClock { return &tinyGoClock{boot: time.Now()} }

func (c *tinyGoClock) Now() time.Time           { return time.Now().UTC() }
func (c *tinyGoClock) Monotonic() time.Duration { return time.Since(c.boot) }
func (c *tinyGoClock) Sleep(d time.Duration)    { time.Sleep(d) }

type machinePin struct {
	pin machine.Pin
}

func (p machinePin) Name() string { return fmt.Sprintf("GP%d", uint8(p.pin)) }
func (p machinePin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	switch {
	case mode == GPIOModeOutput:
		p.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	case pull == GPIOPullUp:
		p.pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	case pull == GPIOPullDown:
		p.pin.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	default:
		p.pin.Configure(machine.PinConfig{Mode: machine.PinInput})
	}
	return nil
}

func (p machinePin) Read() (bool, error) { return p.pin.Get(), nil }

func (p machinePin) Write(level bool) error {
	p.pin.Set(level)
	return nil
}

type ws2812Strip struct {
	dev    ws2812.Device
	staged []color.RGBA
}

func newWS2812Strip(pin machine.Pin, n int) *ws2812Strip {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &ws2812Strip{dev: ws2812.New(pin), staged: make([]color.RGBA, n)}
}

func (s *ws2812Strip) Len() int { return len(s.staged) }

func (s *ws2812Strip) WriteColors(px []color.RGBA) error {
	if len(px) != len(s.staged) {
		return fmt.Errorf("strip: got %d pixels, want %d", len(px), len(s.staged))
	}
	copy(s.staged, px)
	return nil
}

func (s *ws2812Strip) Flush() error {
	return s.dev.WriteColors(s.staged)
}
