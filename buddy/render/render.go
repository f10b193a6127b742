// Package render maps the runtime state onto strip pixels.
//
// Everything here is a pure function of its arguments; the only notion of
// time is the monotonic instant carried in Scene for alert flashing.
package render

import (
	"image/color"
	"time"

	"deskbuddy/buddy/clock"
	"deskbuddy/buddy/mode"
	"deskbuddy/buddy/pomodoro"
)

var (
	Off        = color.RGBA{A: 0xFF}
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 0xFF}
	ReadyDim   = color.RGBA{R: 100, G: 100, B: 100, A: 0xFF}
	WorkColor  = color.RGBA{R: 0, G: 255, B: 0, A: 0xFF}
	BreakColor = color.RGBA{R: 0, G: 100, B: 255, A: 0xFF}
	AlertA     = color.RGBA{R: 255, G: 0, B: 0, A: 0xFF}
	AlertB     = color.RGBA{R: 255, G: 255, B: 0, A: 0xFF}
)

// AlertHalfPeriod is how long each alert colour is held.
const AlertHalfPeriod = 500 * time.Millisecond

// Digit columns: hours tens/ones, minutes tens/ones, seconds tens/ones.
var digitOffsets = [6]int{0, 3, 7, 10, 14, 17}

const (
	digitHeight     = 3
	hourSeparator   = 6
	minuteSeparator = 13
)

// Scene is everything one frame depends on.
type Scene struct {
	Mode mode.Mode

	Hours, Minutes, Seconds int
	Color                   color.RGBA

	// Tenths is the brightness factor in tenths, [1,10].
	Tenths uint8

	Timer pomodoro.Snapshot

	SettingsIndex int
	SettingsCount int
	SettingText   string

	// Monotonic drives the alert flash.
	Monotonic time.Duration
}

// Frame fills dst (one entry per strip pixel) for s.
func Frame(dst []color.RGBA, s Scene) {
	Fill(dst, Off)
	switch s.Mode {
	case mode.Clock:
		clockFrame(dst, s)
	case mode.Pomodoro:
		pomodoroFrame(dst, s)
	case mode.Settings:
		settingsFrame(dst, s)
	}
}

// Fill sets every pixel of dst to c.
func Fill(dst []color.RGBA, c color.RGBA) {
	for i := range dst {
		dst[i] = c
	}
}

// Scale applies brightness (in tenths) to each channel.
func Scale(c color.RGBA, tenths uint8) color.RGBA {
	t := uint32(tenths)
	if t > 10 {
		t = 10
	}
	return color.RGBA{
		R: uint8(uint32(c.R) * t / 10),
		G: uint8(uint32(c.G) * t / 10),
		B: uint8(uint32(c.B) * t / 10),
		A: 0xFF,
	}
}

// DigitHeight is the number of lit pixels for a decimal digit.
func DigitHeight(d int) int {
	if d <= 0 {
		return 0
	}
	n := d * digitHeight / 9
	if n > digitHeight {
		n = digitHeight
	}
	return n
}

func clockFrame(dst []color.RGBA, s Scene) {
	c := Scale(s.Color, s.Tenths)
	values := [3]int{s.Hours, s.Minutes, s.Seconds}
	for i, v := range values {
		tens, ones := clock.Digits(v)
		drawDigit(dst, digitOffsets[2*i], tens, c)
		drawDigit(dst, digitOffsets[2*i+1], ones, c)
	}
	if s.Seconds%2 == 0 {
		set(dst, hourSeparator, c)
		set(dst, minuteSeparator, c)
	}
}

func drawDigit(dst []color.RGBA, start, d int, c color.RGBA) {
	lit := DigitHeight(d)
	for i := 0; i < digitHeight; i++ {
		if i < lit {
			set(dst, start+i, c)
		} else {
			set(dst, start+i, Off)
		}
	}
}

func pomodoroFrame(dst []color.RGBA, s Scene) {
	switch s.Timer.State {
	case pomodoro.AlertFiring:
		Fill(dst, Scale(AlertColor(s.Monotonic), s.Tenths))
	case pomodoro.Running:
		c := WorkColor
		if s.Timer.Phase == pomodoro.Break {
			c = BreakColor
		}
		c = Scale(c, s.Tenths)
		n := ProgressPixels(s.Timer.Elapsed, s.Timer.Duration, len(dst))
		for i := 0; i < n; i++ {
			dst[i] = c
		}
	default:
		c := Scale(ReadyDim, s.Tenths)
		for i := 0; i < len(dst); i += 3 {
			dst[i] = c
		}
	}
}

// AlertColor selects the flash colour for a monotonic instant.
func AlertColor(mono time.Duration) color.RGBA {
	if (mono/AlertHalfPeriod)%2 == 0 {
		return AlertA
	}
	return AlertB
}

// ProgressPixels is floor(elapsed/duration * n), capped at n.
func ProgressPixels(elapsed, duration time.Duration, n int) int {
	if duration <= 0 {
		return n
	}
	if elapsed <= 0 {
		return 0
	}
	lit := int(int64(elapsed) * int64(n) / int64(duration))
	if lit > n {
		lit = n
	}
	return lit
}

func settingsFrame(dst []color.RGBA, s Scene) {
	pos := SettingsPosition(s.SettingsIndex, s.SettingsCount, len(dst))
	c := Scale(White, s.Tenths)
	for i := range dst {
		if abs(i-pos) < 2 {
			dst[i] = c
		}
	}
}

// SettingsPosition is floor(index/count * n).
func SettingsPosition(index, count, n int) int {
	if count <= 0 {
		return 0
	}
	return index * n / count
}

func set(dst []color.RGBA, i int, c color.RGBA) {
	if i < 0 || i >= len(dst) {
		return
	}
	dst[i] = c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
