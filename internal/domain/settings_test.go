package domain

import "testing"

func TestSettings_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Settings
		want Settings
	}{
		{
			name: "zero value falls back entirely",
			in:   Settings{},
			want: DefaultSettings(),
		},
		{
			name: "valid settings pass through",
			in: Settings{
				WorkDuration:       3000,
				ShortBreakDuration: 600,
				LongBreakDuration:  1200,
				LongBreakInterval:  3,
				AlarmSound:         "bell",
				MuteAlarms:         true,
			},
			want: Settings{
				WorkDuration:       3000,
				ShortBreakDuration: 600,
				LongBreakDuration:  1200,
				LongBreakInterval:  3,
				AlarmSound:         "bell",
				MuteAlarms:         true,
			},
		},
		{
			name: "negative durations fall back",
			in: Settings{
				WorkDuration:       -5,
				ShortBreakDuration: 300,
				LongBreakDuration:  900,
				LongBreakInterval:  4,
				AlarmSound:         "chime",
			},
			want: Settings{
				WorkDuration:       DefaultWorkDuration,
				ShortBreakDuration: 300,
				LongBreakDuration:  900,
				LongBreakInterval:  4,
				AlarmSound:         "chime",
			},
		},
		{
			name: "unknown alarm sound falls back",
			in: Settings{
				WorkDuration:       1500,
				ShortBreakDuration: 300,
				LongBreakDuration:  900,
				LongBreakInterval:  4,
				AlarmSound:         "vuvuzela",
			},
			want: Settings{
				WorkDuration:       1500,
				ShortBreakDuration: 300,
				LongBreakDuration:  900,
				LongBreakInterval:  4,
				AlarmSound:         "chime",
			},
		},
		{
			name: "interval below one falls back",
			in: Settings{
				WorkDuration:       1500,
				ShortBreakDuration: 300,
				LongBreakDuration:  900,
				LongBreakInterval:  0,
				AlarmSound:         "chime",
			},
			want: Settings{
				WorkDuration:       1500,
				ShortBreakDuration: 300,
				LongBreakDuration:  900,
				LongBreakInterval:  DefaultLongBreakInterval,
				AlarmSound:         "chime",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSettings_BreakDuration(t *testing.T) {
	s := Settings{
		ShortBreakDuration: 300,
		LongBreakDuration:  900,
		LongBreakInterval:  4,
	}

	tests := []struct {
		count int
		want  int
	}{
		{0, 300},
		{1, 300},
		{3, 300},
		{4, 900},
		{5, 300},
		{8, 900},
	}

	for _, tt := range tests {
		if got := s.BreakDuration(tt.count); got != tt.want {
			t.Errorf("BreakDuration(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}
