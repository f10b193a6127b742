//go:build !tinygo && !cgo

package hal

import (
	"fmt"
	"time"
)

// hostBuzzer logs tones when no audio backend is available.
type hostBuzzer struct {
	log Logger
}

func newHostBuzzer(log Logger) Buzzer { return hostBuzzer{log: log} }

func (b hostBuzzer) Tone(hz uint32, d time.Duration) error {
	if b.log != nil {
		b.log.WriteLineString(fmt.Sprintf("buzzer: %d Hz for %s", hz, d))
	}
	time.Sleep(d)
	return nil
}

func (b hostBuzzer) Silence() error { return nil }
