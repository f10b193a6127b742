package clock

import (
	"testing"
	"time"
)

func TestTo12Hour(t *testing.T) {
	tcs := []struct {
		in   int
		want int
	}{
		{in: 0, want: 12},
		{in: 1, want: 1},
		{in: 11, want: 11},
		{in: 12, want: 12},
		{in: 13, want: 1},
		{in: 23, want: 11},
	}
	for _, tc := range tcs {
		if got := To12Hour(tc.in); got != tc.want {
			t.Fatalf("To12Hour(%d)=%d; want %d", tc.in, got, tc.want)
		}
	}
}

func TestFields24HourIsIdentity(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for h := 0; h < 24; h++ {
		now := base.Add(time.Duration(h) * time.Hour)
		got, _, _ := Fields(now, 0, true)
		if got != h {
			t.Fatalf("Fields(h=%d, 24h)=%d; want %d", h, got, h)
		}
		got12, _, _ := Fields(now, 0, false)
		if got12 < 1 || got12 > 12 {
			t.Fatalf("Fields(h=%d, 12h)=%d; want in [1,12]", h, got12)
		}
	}
}

func TestFieldsAppliesOffset(t *testing.T) {
	now := time.Date(2024, 3, 1, 3, 4, 5, 0, time.UTC)
	h, m, s := Fields(now, -6*time.Hour, true)
	if h != 21 || m != 4 || s != 5 {
		t.Fatalf("Fields=%02d:%02d:%02d; want 21:04:05", h, m, s)
	}
	h, _, _ = Fields(now, -6*time.Hour, false)
	if h != 9 {
		t.Fatalf("12h hour=%d; want 9", h)
	}
}

func TestFieldsIgnoresLocation(t *testing.T) {
	loc := time.FixedZone("X", 5*3600)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, loc) // 07:00 UTC
	h, _, _ := Fields(now, 0, true)
	if h != 7 {
		t.Fatalf("hour=%d; want 7", h)
	}
}

func TestDigits(t *testing.T) {
	tens, ones := Digits(47)
	if tens != 4 || ones != 7 {
		t.Fatalf("Digits(47)=%d,%d; want 4,7", tens, ones)
	}
}
