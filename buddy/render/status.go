package render

import (
	"fmt"
	"strings"
	"time"

	"deskbuddy/buddy/mode"
	"deskbuddy/buddy/pomodoro"
)

// Status is a one-line text rendering of s for logs and the simulator.
func Status(s Scene) string {
	switch s.Mode {
	case mode.Clock:
		return fmt.Sprintf("CLOCK %02d:%02d:%02d", s.Hours, s.Minutes, s.Seconds)
	case mode.Pomodoro:
		phase := strings.ToUpper(s.Timer.Phase.String())
		switch s.Timer.State {
		case pomodoro.AlertFiring:
			return fmt.Sprintf("DONE %s next", phase)
		case pomodoro.Running:
			return fmt.Sprintf("%s %s", phase, mmss(s.Timer.Remaining))
		default:
			return fmt.Sprintf("READY %s %s", phase, mmss(s.Timer.Duration))
		}
	case mode.Settings:
		return "SET " + s.SettingText
	default:
		return ""
	}
}

func mmss(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
