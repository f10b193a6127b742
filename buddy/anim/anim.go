// Package anim holds the blocking one-shot strip effects: the boot rainbow,
// the network chase, the mode-change flash and the link confirmation.
//
// Each effect owns the strip until it returns. Write errors end the effect
// early and are returned to the caller.
package anim

import (
	"errors"
	"image/color"
	"time"

	"deskbuddy/buddy/render"
	"deskbuddy/hal"
)

const (
	RainbowStep  = 50 * time.Millisecond
	RainbowHold  = 500 * time.Millisecond
	ConnectStep  = 100 * time.Millisecond
	ModeFlashOn  = 100 * time.Millisecond
	SyncFlashOn  = 200 * time.Millisecond
	SyncFlashes  = 3
	syncFlashOff = SyncFlashOn
)

var (
	SyncColor    = color.RGBA{G: 255, A: 0xFF}
	ConnectColor = color.RGBA{B: 255, A: 0xFF}
)

var ErrConnectTimeout = errors.New("connect timed out")

// Sleeper blocks for a duration. hal.Clock satisfies it.
type Sleeper interface {
	Sleep(d time.Duration)
}

// Rainbow lights the strip one pixel at a time along the hue wheel, holds
// the full sweep, then clears.
func Rainbow(strip hal.Strip, sl Sleeper, tenths uint8) error {
	px := make([]color.RGBA, strip.Len())
	for lit := 1; lit <= len(px); lit++ {
		RainbowFrame(px, lit, tenths)
		if err := show(strip, px); err != nil {
			return err
		}
		sl.Sleep(RainbowStep)
	}
	sl.Sleep(RainbowHold)
	return Clear(strip)
}

// RainbowFrame fills dst with the first lit pixels of the rainbow sweep and
// leaves the rest dark.
func RainbowFrame(dst []color.RGBA, lit int, tenths uint8) {
	n := len(dst)
	for i := range dst {
		if i >= lit {
			dst[i] = render.Off
			continue
		}
		hue := uint8(i * 255 / n)
		dst[i] = render.Scale(HSV(hue, 255, 255), tenths)
	}
}

// Connecting moves a single blue pixel one step along the strip every
// ConnectStep until connected reports true. It gives up with
// ErrConnectTimeout once timeout has been spent waiting. The strip is left
// dark either way.
func Connecting(strip hal.Strip, sl Sleeper, connected func() bool, timeout time.Duration) error {
	px := make([]color.RGBA, strip.Len())
	var waited time.Duration
	for i := 0; !connected(); i++ {
		if waited >= timeout {
			if err := Clear(strip); err != nil {
				return err
			}
			return ErrConnectTimeout
		}
		ConnectingFrame(px, i)
		if err := show(strip, px); err != nil {
			return err
		}
		sl.Sleep(ConnectStep)
		waited += ConnectStep
	}
	return Clear(strip)
}

// ConnectingFrame lights pixel i, wrapping around the strip.
func ConnectingFrame(dst []color.RGBA, i int) {
	render.Fill(dst, render.Off)
	if len(dst) > 0 {
		dst[i%len(dst)] = ConnectColor
	}
}

// ModeFlash shows the whole strip white for ModeFlashOn.
func ModeFlash(strip hal.Strip, sl Sleeper, tenths uint8) error {
	px := make([]color.RGBA, strip.Len())
	render.Fill(px, render.Scale(render.White, tenths))
	if err := show(strip, px); err != nil {
		return err
	}
	sl.Sleep(ModeFlashOn)
	return Clear(strip)
}

// SyncFlash blinks the strip green SyncFlashes times. Like the chase it
// runs at full brightness.
func SyncFlash(strip hal.Strip, sl Sleeper) error {
	on := make([]color.RGBA, strip.Len())
	render.Fill(on, SyncColor)
	for i := 0; i < SyncFlashes; i++ {
		if err := show(strip, on); err != nil {
			return err
		}
		sl.Sleep(SyncFlashOn)
		if err := Clear(strip); err != nil {
			return err
		}
		sl.Sleep(syncFlashOff)
	}
	return nil
}

// Clear blanks the strip.
func Clear(strip hal.Strip) error {
	px := make([]color.RGBA, strip.Len())
	render.Fill(px, render.Off)
	return show(strip, px)
}

func show(strip hal.Strip, px []color.RGBA) error {
	if err := strip.WriteColors(px); err != nil {
		return err
	}
	return strip.Flush()
}

// HSV converts a hue/saturation/value triple, each on a 0..255 scale, to an
// opaque RGB colour.
func HSV(h, s, v uint8) color.RGBA {
	if s == 0 {
		return color.RGBA{R: v, G: v, B: v, A: 0xFF}
	}
	hh := float64(h) / 255 * 6
	i := int(hh)
	f := hh - float64(i)
	sf := float64(s) / 255
	vf := float64(v)

	p := uint8(vf * (1 - sf))
	q := uint8(vf * (1 - sf*f))
	t := uint8(vf * (1 - sf*(1-f)))

	switch i % 6 {
	case 0:
		return color.RGBA{R: v, G: t, B: p, A: 0xFF}
	case 1:
		return color.RGBA{R: q, G: v, B: p, A: 0xFF}
	case 2:
		return color.RGBA{R: p, G: v, B: t, A: 0xFF}
	case 3:
		return color.RGBA{R: p, G: q, B: v, A: 0xFF}
	case 4:
		return color.RGBA{R: t, G: p, B: v, A: 0xFF}
	default:
		return color.RGBA{R: v, G: p, B: q, A: 0xFF}
	}
}
