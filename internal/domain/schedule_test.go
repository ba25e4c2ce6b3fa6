package domain

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		clock   string
		hour    int
		minute  int
		wantErr bool
	}{
		{"08:00", 8, 0, false},
		{"23:59", 23, 59, false},
		{"7:05", 7, 5, false},
		{"00:00", 0, 0, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"-1:30", 0, 0, true},
		{"noon", 0, 0, true},
		{"12", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			h, m, err := ParseClock(tt.clock)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.clock, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if h != tt.hour || m != tt.minute {
				t.Errorf("ParseClock(%q) = %d:%d, want %d:%d", tt.clock, h, m, tt.hour, tt.minute)
			}
		})
	}
}

func TestScheduleBreak_AnchorTime(t *testing.T) {
	origin := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start string
		want  time.Time
	}{
		{
			name:  "later today",
			start: "12:00",
			want:  time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "earlier time of day rolls to tomorrow",
			start: "02:00",
			want:  time.Date(2024, 3, 16, 2, 0, 0, 0, time.UTC),
		},
		{
			name:  "exactly at origin stays today",
			start: "08:00",
			want:  time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ScheduleBreak{StartTime: tt.start, Duration: 30}
			got, err := b.AnchorTime(origin)
			if err != nil {
				t.Fatalf("AnchorTime() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("AnchorTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScheduleBreak_AnchorTime_BadClock(t *testing.T) {
	b := ScheduleBreak{StartTime: "25:99"}
	if _, err := b.AnchorTime(time.Now()); err == nil {
		t.Error("AnchorTime() should fail on an unparseable clock")
	}
}

func TestNewScheduleBreak(t *testing.T) {
	b, err := NewScheduleBreak("Lunch", "12:00", 30)
	if err != nil {
		t.Fatalf("NewScheduleBreak() error = %v", err)
	}
	if b.ID == "" {
		t.Error("break should get an ID")
	}
	if b.Label != "Lunch" || b.StartTime != "12:00" || b.Duration != 30 {
		t.Errorf("unexpected break: %+v", b)
	}

	if _, err := NewScheduleBreak("Nap", "26:00", 30); err == nil {
		t.Error("bad clock should be rejected")
	}
	if _, err := NewScheduleBreak("Nap", "12:00", 0); err == nil {
		t.Error("zero duration should be rejected")
	}

	b, err = NewScheduleBreak("", "15:30", 10)
	if err != nil {
		t.Fatalf("NewScheduleBreak() error = %v", err)
	}
	if b.Label != "Break" {
		t.Errorf("empty label should default to %q, got %q", "Break", b.Label)
	}
}

func TestSchedule_Normalize(t *testing.T) {
	s := Schedule{
		StartHour:   31,
		StartMinute: 12,
		Breaks: []ScheduleBreak{
			{ID: "1", Label: "ok", StartTime: "12:00", Duration: 30},
			{ID: "2", Label: "bad clock", StartTime: "99:00", Duration: 30},
			{ID: "3", Label: "bad duration", StartTime: "13:00", Duration: 0},
		},
	}

	got := s.Normalize()
	if got.StartHour != 8 || got.StartMinute != 0 {
		t.Errorf("start = %d:%d, want 8:0", got.StartHour, got.StartMinute)
	}
	if len(got.Breaks) != 1 || got.Breaks[0].ID != "1" {
		t.Errorf("Normalize() kept %d breaks, want only the valid one", len(got.Breaks))
	}
}

func TestSchedule_StartOn(t *testing.T) {
	s := Schedule{StartHour: 9, StartMinute: 30}
	day := time.Date(2024, 7, 1, 14, 45, 12, 0, time.UTC)
	want := time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC)
	if got := s.StartOn(day); !got.Equal(want) {
		t.Errorf("StartOn() = %v, want %v", got, want)
	}
}
