package mode

import "testing"

func TestNextCycles(t *testing.T) {
	tcs := []struct {
		in   Mode
		want Mode
	}{
		{in: Clock, want: Pomodoro},
		{in: Pomodoro, want: Settings},
		{in: Settings, want: Clock},
	}
	for _, tc := range tcs {
		if got := tc.in.Next(); got != tc.want {
			t.Fatalf("%s.Next()=%s; want %s", tc.in, got, tc.want)
		}
	}
}

func TestNextFullCycleReturnsToStart(t *testing.T) {
	m := Clock
	for i := 0; i < 3; i++ {
		m = m.Next()
	}
	if m != Clock {
		t.Fatalf("after 3 steps got %s; want clock", m)
	}
}

func TestString(t *testing.T) {
	if got := Mode(9).String(); got != "unknown" {
		t.Fatalf("String()=%q; want unknown", got)
	}
}
