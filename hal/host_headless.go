//go:build !tinygo

package hal

import (
	"context"
	"io"
	"os"
)

// RunFunc is the firmware main loop. It must return once ctx is done.
type RunFunc func(ctx context.Context, h HAL) error

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	// Stdin, when set, turns the bytes 'm', 'u' and 'd' into button presses.
	Stdin bool
}

// RunHeadless runs the firmware loop without opening a window.
func RunHeadless(ctx context.Context, cfg Config, hc HeadlessConfig, run RunFunc) error {
	h, err := newHost(cfg)
	if err != nil {
		return err
	}
	if hc.Stdin {
		go pulseFromReader(ctx, os.Stdin, h.pins, h.clock)
	}
	return run(ctx, h)
}

// pulseFromReader holds a button low for pulseLength for each command byte.
func pulseFromReader(ctx context.Context, r io.Reader, pins [ButtonCount]*virtualPin, clock Clock) {
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, c := range buf[:n] {
			b, ok := buttonForByte(c)
			if !ok {
				continue
			}
			pins[b].drive(false)
			clock.Sleep(pulseLength)
			pins[b].drive(true)
		}
		if err != nil || ctx.Err() != nil {
			return
		}
	}
}
