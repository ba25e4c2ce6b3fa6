package domain

// Default interval lengths, in seconds.
const (
	DefaultWorkDuration       = 25 * 60
	DefaultShortBreakDuration = 5 * 60
	DefaultLongBreakDuration  = 15 * 60
	DefaultLongBreakInterval  = 4
)

// AlarmSounds lists the sound-selection tokens the alarm collaborator
// understands. The app never synthesizes audio; it only forwards the token.
var AlarmSounds = []string{"chime", "bell", "digital", "marimba"}

// Settings holds the static timer configuration.
type Settings struct {
	WorkDuration       int    `json:"work_duration"`        // seconds per work interval
	ShortBreakDuration int    `json:"short_break_duration"` // seconds
	LongBreakDuration  int    `json:"long_break_duration"`  // seconds
	LongBreakInterval  int    `json:"long_break_interval"`  // work units between long breaks
	AlarmSound         string `json:"alarm_sound"`
	MuteAlarms         bool   `json:"mute_alarms"`
	ShowSeconds        bool   `json:"show_seconds"`
}

// DefaultSettings returns the stock configuration.
func DefaultSettings() Settings {
	return Settings{
		WorkDuration:       DefaultWorkDuration,
		ShortBreakDuration: DefaultShortBreakDuration,
		LongBreakDuration:  DefaultLongBreakDuration,
		LongBreakInterval:  DefaultLongBreakInterval,
		AlarmSound:         "chime",
		MuteAlarms:         false,
		ShowSeconds:        true,
	}
}

// Normalize fills invalid or missing fields with defaults. All durations must
// be positive and the long-break interval at least 1; anything else came from
// a corrupt bucket or a bad manual edit and falls back.
func (s Settings) Normalize() Settings {
	defaults := DefaultSettings()

	if s.WorkDuration <= 0 {
		s.WorkDuration = defaults.WorkDuration
	}
	if s.ShortBreakDuration <= 0 {
		s.ShortBreakDuration = defaults.ShortBreakDuration
	}
	if s.LongBreakDuration <= 0 {
		s.LongBreakDuration = defaults.LongBreakDuration
	}
	if s.LongBreakInterval < 1 {
		s.LongBreakInterval = defaults.LongBreakInterval
	}
	if !validAlarmSound(s.AlarmSound) {
		s.AlarmSound = defaults.AlarmSound
	}
	return s
}

// BreakDuration returns the configured break length for the given pomodoro
// count: every LongBreakInterval-th completed unit earns the long break.
func (s Settings) BreakDuration(pomodoroCount int) int {
	if pomodoroCount > 0 && pomodoroCount%s.LongBreakInterval == 0 {
		return s.LongBreakDuration
	}
	return s.ShortBreakDuration
}

func validAlarmSound(sound string) bool {
	for _, known := range AlarmSounds {
		if sound == known {
			return true
		}
	}
	return false
}
