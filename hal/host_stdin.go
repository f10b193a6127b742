//go:build !tinygo

package hal

import "time"

// pulseLength outlasts one poll period so a keypress is always sampled.
const pulseLength = 120 * time.Millisecond

func buttonForByte(c byte) (Button, bool) {
	switch c {
	case 'm', 'M', '1':
		return ButtonMode, true
	case 'u', 'U', '2':
		return ButtonUp, true
	case 'd', 'D', '3':
		return ButtonDown, true
	default:
		return 0, false
	}
}
