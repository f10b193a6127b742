// Package settings holds the user-adjustable parameters and their bounds.
package settings

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

var (
	ErrInvalidField     = errors.New("settings: invalid field")
	ErrInvalidDirection = errors.New("settings: invalid direction")
)

// Field identifies one adjustable parameter, in menu order.
type Field uint8

const (
	TimeFormat Field = iota
	Red
	Green
	Blue
	Brightness
	WorkDuration
	BreakDuration

	FieldCount = int(BreakDuration) + 1
)

func (f Field) String() string {
	switch f {
	case TimeFormat:
		return "Time Format (12/24)"
	case Red:
		return "Color - Red"
	case Green:
		return "Color - Green"
	case Blue:
		return "Color - Blue"
	case Brightness:
		return "Brightness"
	case WorkDuration:
		return "Work Duration"
	case BreakDuration:
		return "Break Duration"
	default:
		return fmt.Sprintf("Field(%d)", uint8(f))
	}
}

const (
	colorStep       = 10
	minBrightness   = 1 // tenths
	maxBrightness   = 10
	durationStep    = 60 * time.Second
	minimumDuration = 60 * time.Second
)

// ClockConfig is what the clock face reads.
type ClockConfig struct {
	Use24Hour bool
	Color     color.RGBA

	// Tenths is brightness in tenths, [1,10].
	Tenths uint8
}

// Brightness returns the brightness factor in [0.1,1.0].
func (c ClockConfig) Brightness() float64 { return float64(c.Tenths) / 10 }

// Defaults seeds a Store.
type Defaults struct {
	Use24Hour     bool
	Color         color.RGBA
	Brightness    float64
	WorkDuration  time.Duration
	BreakDuration time.Duration
}

// Store is the ordered list of adjustable fields plus the menu cursor.
type Store struct {
	clock    ClockConfig
	work     time.Duration
	brk      time.Duration
	selected Field
}

// New returns a store seeded from d, with every value clamped into bounds.
func New(d Defaults) *Store {
	s := &Store{
		clock: ClockConfig{
			Use24Hour: d.Use24Hour,
			Color:     color.RGBA{R: d.Color.R, G: d.Color.G, B: d.Color.B, A: 0xFF},
			Tenths:    tenthsFromFactor(d.Brightness),
		},
		work: clampDuration(d.WorkDuration),
		brk:  clampDuration(d.BreakDuration),
	}
	return s
}

func (s *Store) ClockConfig() ClockConfig     { return s.clock }
func (s *Store) WorkDuration() time.Duration  { return s.work }
func (s *Store) BreakDuration() time.Duration { return s.brk }
func (s *Store) Selected() Field              { return s.selected }

// Advance moves the cursor to the next field, wrapping after the last.
func (s *Store) Advance() Field {
	s.selected = Field((int(s.selected) + 1) % FieldCount)
	return s.selected
}

// AdjustSelected adjusts the field under the cursor.
func (s *Store) AdjustSelected(dir int) error {
	return s.Adjust(s.selected, dir)
}

// Adjust changes exactly one field by one step in direction dir (-1 or +1).
// Values are clamped to the field bounds; an unknown field is rejected.
func (s *Store) Adjust(f Field, dir int) error {
	if int(f) >= FieldCount {
		return fmt.Errorf("%w: %d", ErrInvalidField, f)
	}
	if dir != 1 && dir != -1 {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, dir)
	}

	switch f {
	case TimeFormat:
		s.clock.Use24Hour = !s.clock.Use24Hour
	case Red:
		s.clock.Color.R = stepChannel(s.clock.Color.R, dir)
	case Green:
		s.clock.Color.G = stepChannel(s.clock.Color.G, dir)
	case Blue:
		s.clock.Color.B = stepChannel(s.clock.Color.B, dir)
	case Brightness:
		v := int(s.clock.Tenths) + dir
		if v < minBrightness {
			v = minBrightness
		}
		if v > maxBrightness {
			v = maxBrightness
		}
		s.clock.Tenths = uint8(v)
	case WorkDuration:
		s.work = clampDuration(s.work + time.Duration(dir)*durationStep)
	case BreakDuration:
		s.brk = clampDuration(s.brk + time.Duration(dir)*durationStep)
	}
	return nil
}

// Describe renders the current value of f for status output.
func (s *Store) Describe(f Field) string {
	switch f {
	case TimeFormat:
		if s.clock.Use24Hour {
			return "Time format: 24-hour"
		}
		return "Time format: 12-hour"
	case Red:
		return fmt.Sprintf("Red: %d", s.clock.Color.R)
	case Green:
		return fmt.Sprintf("Green: %d", s.clock.Color.G)
	case Blue:
		return fmt.Sprintf("Blue: %d", s.clock.Color.B)
	case Brightness:
		return fmt.Sprintf("Brightness: %.1f", s.clock.Brightness())
	case WorkDuration:
		return fmt.Sprintf("Work: %d min", int(s.work/time.Minute))
	case BreakDuration:
		return fmt.Sprintf("Break: %d min", int(s.brk/time.Minute))
	default:
		return f.String()
	}
}

func stepChannel(c uint8, dir int) uint8 {
	v := int(c) + dir*colorStep
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

func clampDuration(d time.Duration) time.Duration {
	if d < minimumDuration {
		return minimumDuration
	}
	return d
}

func tenthsFromFactor(f float64) uint8 {
	v := int(f*10 + 0.5)
	if v < minBrightness {
		v = minBrightness
	}
	if v > maxBrightness {
		v = maxBrightness
	}
	return uint8(v)
}
