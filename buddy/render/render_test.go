package render

import (
	"image/color"
	"testing"
	"time"

	"deskbuddy/buddy/mode"
	"deskbuddy/buddy/pomodoro"
)

const stripLen = 30

var orange = color.RGBA{R: 255, G: 100, B: 0, A: 0xFF}

func litIndices(px []color.RGBA) []int {
	var out []int
	for i, c := range px {
		if c != Off {
			out = append(out, i)
		}
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDigitHeight(t *testing.T) {
	want := []int{0, 0, 0, 1, 1, 1, 2, 2, 2, 3}
	for d, w := range want {
		if got := DigitHeight(d); got != w {
			t.Fatalf("DigitHeight(%d)=%d; want %d", d, got, w)
		}
	}
}

func TestScale(t *testing.T) {
	tcs := []struct {
		tenths uint8
		want   color.RGBA
	}{
		{tenths: 10, want: color.RGBA{R: 255, G: 100, B: 0, A: 0xFF}},
		{tenths: 4, want: color.RGBA{R: 102, G: 40, B: 0, A: 0xFF}},
		{tenths: 1, want: color.RGBA{R: 25, G: 10, B: 0, A: 0xFF}},
	}
	for _, tc := range tcs {
		if got := Scale(orange, tc.tenths); got != tc.want {
			t.Fatalf("Scale(%d)=%v; want %v", tc.tenths, got, tc.want)
		}
	}
}

func TestClockFrame(t *testing.T) {
	px := make([]color.RGBA, stripLen)
	// 09:36:58 -> digits 0,9 | 3,6 | 5,8
	Frame(px, Scene{Mode: mode.Clock, Hours: 9, Minutes: 36, Seconds: 58, Color: orange, Tenths: 10})

	// Separators at 6 and 13 are lit on the even second.
	want := []int{3, 4, 5, 6, 7, 10, 11, 13, 14, 17, 18}
	if got := litIndices(px); !equalInts(got, want) {
		t.Fatalf("lit=%v; want %v", got, want)
	}
	if px[3] != orange {
		t.Fatalf("px[3]=%v; want %v", px[3], orange)
	}
}

func TestClockSeparatorsBlink(t *testing.T) {
	px := make([]color.RGBA, stripLen)
	Frame(px, Scene{Mode: mode.Clock, Hours: 12, Minutes: 0, Seconds: 1, Color: orange, Tenths: 10})
	if px[6] != Off || px[13] != Off {
		t.Fatal("separators lit on odd second")
	}
	Frame(px, Scene{Mode: mode.Clock, Hours: 12, Minutes: 0, Seconds: 2, Color: orange, Tenths: 10})
	if px[6] == Off || px[13] == Off {
		t.Fatal("separators dark on even second")
	}
}

func TestClockFrameShortStrip(t *testing.T) {
	px := make([]color.RGBA, 8)
	Frame(px, Scene{Mode: mode.Clock, Hours: 23, Minutes: 59, Seconds: 59, Color: orange, Tenths: 10})
	// Only the hour digits fit; writes past the end are dropped.
	if px[3] == Off {
		t.Fatal("expected hours ones lit")
	}
}

func TestPomodoroIdleFrame(t *testing.T) {
	px := make([]color.RGBA, stripLen)
	Frame(px, Scene{Mode: mode.Pomodoro, Tenths: 10, Timer: pomodoro.Snapshot{State: pomodoro.Idle}})
	lit := litIndices(px)
	if len(lit) != 10 {
		t.Fatalf("lit=%d; want 10", len(lit))
	}
	for _, i := range lit {
		if i%3 != 0 {
			t.Fatalf("pixel %d lit; want every third", i)
		}
		if px[i] != ReadyDim {
			t.Fatalf("pixel %d=%v; want %v", i, px[i], ReadyDim)
		}
	}
}

func TestPomodoroProgressFrame(t *testing.T) {
	px := make([]color.RGBA, stripLen)
	tcs := []struct {
		elapsed time.Duration
		phase   pomodoro.Phase
		lit     int
	}{
		{elapsed: 0, phase: pomodoro.Work, lit: 0},
		{elapsed: 59 * time.Second, phase: pomodoro.Work, lit: 0},
		{elapsed: 60 * time.Second, phase: pomodoro.Work, lit: 1},
		{elapsed: 15 * time.Minute, phase: pomodoro.Work, lit: 15},
		{elapsed: 30 * time.Minute, phase: pomodoro.Work, lit: 30},
		{elapsed: 45 * time.Minute, phase: pomodoro.Break, lit: 30},
	}
	for _, tc := range tcs {
		Frame(px, Scene{Mode: mode.Pomodoro, Tenths: 10, Timer: pomodoro.Snapshot{
			State:    pomodoro.Running,
			Phase:    tc.phase,
			Elapsed:  tc.elapsed,
			Duration: 30 * time.Minute,
		}})
		lit := litIndices(px)
		if len(lit) != tc.lit {
			t.Fatalf("elapsed %v lit=%d; want %d", tc.elapsed, len(lit), tc.lit)
		}
		want := WorkColor
		if tc.phase == pomodoro.Break {
			want = BreakColor
		}
		for _, i := range lit {
			if px[i] != want {
				t.Fatalf("pixel %d=%v; want %v", i, px[i], want)
			}
		}
	}
}

func TestAlertFlashFollowsMonotonicClock(t *testing.T) {
	px := make([]color.RGBA, stripLen)
	s := Scene{Mode: mode.Pomodoro, Tenths: 10, Timer: pomodoro.Snapshot{State: pomodoro.AlertFiring}}

	tcs := []struct {
		mono time.Duration
		want color.RGBA
	}{
		{mono: 0, want: AlertA},
		{mono: 499 * time.Millisecond, want: AlertA},
		{mono: 500 * time.Millisecond, want: AlertB},
		{mono: 999 * time.Millisecond, want: AlertB},
		{mono: 1000 * time.Millisecond, want: AlertA},
	}
	for _, tc := range tcs {
		s.Monotonic = tc.mono
		Frame(px, s)
		for i := range px {
			if px[i] != tc.want {
				t.Fatalf("mono %v pixel %d=%v; want %v", tc.mono, i, px[i], tc.want)
			}
		}
	}
}

func TestSettingsFrame(t *testing.T) {
	px := make([]color.RGBA, stripLen)
	tcs := []struct {
		index int
		want  []int
	}{
		{index: 0, want: []int{0, 1}},
		{index: 1, want: []int{3, 4, 5}},
		{index: 6, want: []int{24, 25, 26}},
	}
	for _, tc := range tcs {
		Frame(px, Scene{Mode: mode.Settings, Tenths: 10, SettingsIndex: tc.index, SettingsCount: 7})
		if got := litIndices(px); !equalInts(got, tc.want) {
			t.Fatalf("index %d lit=%v; want %v", tc.index, got, tc.want)
		}
		if px[tc.want[0]] != White {
			t.Fatalf("index %d colour=%v; want white", tc.index, px[tc.want[0]])
		}
	}
}

func TestFrameIsDeterministic(t *testing.T) {
	scenes := []Scene{
		{Mode: mode.Clock, Hours: 10, Minutes: 8, Seconds: 4, Color: orange, Tenths: 4},
		{Mode: mode.Pomodoro, Tenths: 7, Timer: pomodoro.Snapshot{State: pomodoro.Running, Elapsed: time.Minute, Duration: 5 * time.Minute}},
		{Mode: mode.Pomodoro, Tenths: 7, Monotonic: 1234 * time.Millisecond, Timer: pomodoro.Snapshot{State: pomodoro.AlertFiring}},
		{Mode: mode.Settings, Tenths: 2, SettingsIndex: 3, SettingsCount: 7},
	}
	for _, s := range scenes {
		a := make([]color.RGBA, stripLen)
		b := make([]color.RGBA, stripLen)
		for i := range b {
			b[i] = White // stale content must be overwritten
		}
		Frame(a, s)
		Frame(b, s)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("mode %s pixel %d differs: %v vs %v", s.Mode, i, a[i], b[i])
			}
		}
	}
}

func TestProgressPixelsDegenerateDuration(t *testing.T) {
	if got := ProgressPixels(time.Second, 0, stripLen); got != stripLen {
		t.Fatalf("ProgressPixels(dur=0)=%d; want %d", got, stripLen)
	}
}

func TestStatus(t *testing.T) {
	tcs := []struct {
		s    Scene
		want string
	}{
		{s: Scene{Mode: mode.Clock, Hours: 9, Minutes: 5, Seconds: 7}, want: "CLOCK 09:05:07"},
		{s: Scene{Mode: mode.Pomodoro, Timer: pomodoro.Snapshot{State: pomodoro.Idle, Duration: 25 * time.Minute}}, want: "READY WORK 25:00"},
		{s: Scene{Mode: mode.Pomodoro, Timer: pomodoro.Snapshot{State: pomodoro.Running, Phase: pomodoro.Break, Remaining: 4*time.Minute + 59*time.Second}}, want: "BREAK 04:59"},
		{s: Scene{Mode: mode.Pomodoro, Timer: pomodoro.Snapshot{State: pomodoro.AlertFiring, Phase: pomodoro.Break}}, want: "DONE BREAK next"},
		{s: Scene{Mode: mode.Settings, SettingText: "Brightness: 0.4"}, want: "SET Brightness: 0.4"},
	}
	for _, tc := range tcs {
		if got := Status(tc.s); got != tc.want {
			t.Fatalf("Status(%s)=%q; want %q", tc.s.Mode, got, tc.want)
		}
	}
}
