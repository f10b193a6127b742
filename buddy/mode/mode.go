package mode

// Mode is the active operating mode. Exactly one is active at a time.
type Mode uint8

const (
	Clock Mode = iota
	Pomodoro
	Settings
)

// Next returns the mode that follows m in the fixed cycle
// Clock -> Pomodoro -> Settings -> Clock.
func (m Mode) Next() Mode {
	switch m {
	case Clock:
		return Pomodoro
	case Pomodoro:
		return Settings
	case Settings:
		return Clock
	default:
		return Clock
	}
}

func (m Mode) String() string {
	switch m {
	case Clock:
		return "clock"
	case Pomodoro:
		return "pomodoro"
	case Settings:
		return "settings"
	default:
		return "unknown"
	}
}
