//go:build !tinygo

package hal

import (
	"fmt"
	"image/color"
	"sync"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Simulator geometry, in framebuffer pixels.
const (
	ledCell     = 16
	ledSize     = 12
	ledMargin   = (ledCell - ledSize) / 2
	statusTop   = ledCell + 2
	statusRow   = 10
	minFBWidth  = 160
	statusInset = 2
)

var statusColor = color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}

func stripFramebufferSize(n int) (w, h int) {
	w = n * ledCell
	if w < minFBWidth {
		w = minFBWidth
	}
	return w, statusTop + statusRow
}

// hostStrip renders each LED as a square on the framebuffer's top row.
type hostStrip struct {
	mu     sync.Mutex
	fb     *hostFramebuffer
	staged []color.RGBA
	status string
}

func newHostStrip(fb *hostFramebuffer, n int) *hostStrip {
	fb.ClearRGB(0, 0, 0)
	return &hostStrip{fb: fb, staged: make([]color.RGBA, n)}
}

func (s *hostStrip) Len() int { return len(s.staged) }

func (s *hostStrip) WriteColors(px []color.RGBA) error {
	if len(px) != len(s.staged) {
		return fmt.Errorf("strip: got %d pixels, want %d", len(px), len(s.staged))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(s.staged, px)
	return nil
}

func (s *hostStrip) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.staged {
		s.fb.fillRect(i*ledCell+ledMargin, ledMargin, ledSize, ledSize, c.R, c.G, c.B)
	}
	return nil
}

func (s *hostStrip) showStatus(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if text == s.status {
		return
	}
	s.status = text
	s.fb.fillRect(0, statusTop, s.fb.Width(), statusRow, 0, 0, 0)
	tinyfont.WriteLine(fbDisplay{fb: s.fb}, &tinyfont.Org01, statusInset, statusTop+statusRow-statusInset, text, statusColor)
}

// fbDisplay adapts the framebuffer to drivers.Displayer for tinyfont.
type fbDisplay struct {
	fb *hostFramebuffer
}

func (d fbDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.fb.setPixel(int(x), int(y), c.R, c.G, c.B)
}

func (d fbDisplay) Display() error { return nil }

var _ drivers.Displayer = fbDisplay{}
