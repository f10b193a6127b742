// Package clock turns a UTC instant into display-ready clock fields.
package clock

import "time"

// Fields applies offset to nowUTC and returns hour, minute and second.
//
// In 12-hour form hour 0 reads 12 and hours after noon drop by 12.
func Fields(nowUTC time.Time, offset time.Duration, use24 bool) (h, m, s int) {
	t := nowUTC.UTC().Add(offset)
	h, m, s = t.Hour(), t.Minute(), t.Second()
	if !use24 {
		h = To12Hour(h)
	}
	return h, m, s
}

// To12Hour converts a 24-hour value in [0,23] to its 12-hour reading.
func To12Hour(h int) int {
	switch {
	case h == 0:
		return 12
	case h > 12:
		return h - 12
	default:
		return h
	}
}

// Digits splits a two-digit value.
func Digits(v int) (tens, ones int) {
	return v / 10, v % 10
}
