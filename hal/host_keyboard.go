//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// hostKeyboard drives the button pins from the window's keyboard state.
// M/1/Space is Mode, Up/2 is Up, Down/3 is Down.
type hostKeyboard struct {
	pins [ButtonCount]*virtualPin
}

func newHostKeyboard(pins [ButtonCount]*virtualPin) *hostKeyboard {
	return &hostKeyboard{pins: pins}
}

func (k *hostKeyboard) poll() {
	k.set(ButtonMode, ebiten.KeyM, ebiten.KeyDigit1, ebiten.KeySpace)
	k.set(ButtonUp, ebiten.KeyArrowUp, ebiten.KeyDigit2)
	k.set(ButtonDown, ebiten.KeyArrowDown, ebiten.KeyDigit3)
}

func (k *hostKeyboard) set(b Button, keys ...ebiten.Key) {
	pressed := false
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			pressed = true
			break
		}
	}
	// Buttons pull the line low.
	k.pins[b].drive(!pressed)
}
