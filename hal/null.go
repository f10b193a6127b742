package hal

import (
	"context"
	"time"
)

// nullSync is used where no network stack is available.
type nullSync struct{}

func (nullSync) Sync(context.Context) error { return ErrNotImplemented }

// nullNetwork is used where no radio driver is available.
type nullNetwork struct{}

func (nullNetwork) Connect(context.Context, string, string) error { return ErrNotImplemented }
func (nullNetwork) Connected() bool                               { return false }

// nullBuzzer keeps the timing of a tone without making a sound.
type nullBuzzer struct{}

func (nullBuzzer) Tone(_ uint32, d time.Duration) error {
	time.Sleep(d)
	return nil
}

func (nullBuzzer) Silence() error { return nil }
