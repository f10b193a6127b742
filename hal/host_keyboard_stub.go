//go:build !tinygo && !cgo

package hal

type hostKeyboard struct{}

func newHostKeyboard(pins [ButtonCount]*virtualPin) *hostKeyboard {
	_ = pins
	return &hostKeyboard{}
}

func (k *hostKeyboard) poll() {
	// No keyboard support without the window backend.
}
