//go:build !tinygo && cgo

package hal

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// hostBuzzer plays square-wave tones through Ebiten's audio package.
type hostBuzzer struct {
	mu     sync.Mutex
	ctx    *audio.Context
	player *audio.Player
	log    Logger
}

func newHostBuzzer(log Logger) Buzzer {
	return &hostBuzzer{log: log}
}

func (b *hostBuzzer) Tone(hz uint32, d time.Duration) error {
	pcm := squareWave(hz, d, toneSampleRate)
	if pcm == nil {
		return nil
	}

	b.mu.Lock()
	if b.ctx == nil {
		b.ctx = audio.CurrentContext()
		if b.ctx == nil {
			b.ctx = audio.NewContext(toneSampleRate)
		}
	}
	p := b.ctx.NewPlayerFromBytes(pcm)
	b.player = p
	b.mu.Unlock()

	p.Play()
	time.Sleep(d)

	b.mu.Lock()
	if b.player == p {
		b.player = nil
	}
	b.mu.Unlock()
	return p.Close()
}

func (b *hostBuzzer) Silence() error {
	b.mu.Lock()
	p := b.player
	b.player = nil
	b.mu.Unlock()

	if p == nil {
		return nil
	}
	p.Pause()
	return p.Close()
}
