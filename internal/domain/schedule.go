package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Schedule describes the working day: when it starts and which fixed breaks
// punctuate it.
type Schedule struct {
	StartHour   int             `json:"start_hour"`
	StartMinute int             `json:"start_minute"`
	Breaks      []ScheduleBreak `json:"breaks,omitempty"`
}

// ScheduleBreak is a break pinned to a wall-clock time of day. StartTime is
// always "HH:MM" in 24-hour form; Duration is in minutes.
type ScheduleBreak struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
}

// DefaultSchedule starts the day at 08:00 with no pinned breaks.
func DefaultSchedule() Schedule {
	return Schedule{StartHour: 8}
}

// NewScheduleBreak validates and builds a pinned break.
func NewScheduleBreak(label, startTime string, duration int) (ScheduleBreak, error) {
	if _, _, err := ParseClock(startTime); err != nil {
		return ScheduleBreak{}, err
	}
	if duration < 1 {
		return ScheduleBreak{}, fmt.Errorf("%w: duration %d", ErrInvalidBreak, duration)
	}
	if label == "" {
		label = "Break"
	}
	return ScheduleBreak{
		ID:        uuid.NewString(),
		Label:     label,
		StartTime: startTime,
		Duration:  duration,
	}, nil
}

// Normalize clamps the day start into valid wall-clock range and drops
// breaks whose fields no longer parse. Corrupt buckets land here.
func (s Schedule) Normalize() Schedule {
	if s.StartHour < 0 || s.StartHour > 23 {
		s.StartHour = 8
		s.StartMinute = 0
	}
	if s.StartMinute < 0 || s.StartMinute > 59 {
		s.StartMinute = 0
	}
	var kept []ScheduleBreak
	for _, b := range s.Breaks {
		if _, _, err := ParseClock(b.StartTime); err != nil {
			continue
		}
		if b.Duration < 1 {
			continue
		}
		kept = append(kept, b)
	}
	s.Breaks = kept
	return s
}

// StartOn returns the schedule's day-start instant on the given day.
func (s Schedule) StartOn(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), s.StartHour, s.StartMinute, 0, 0, day.Location())
}

// AnchorTime resolves the break's wall-clock start against an origin instant.
// A time of day already past at the origin lands on the following day.
func (b ScheduleBreak) AnchorTime(origin time.Time) (time.Time, error) {
	h, m, err := ParseClock(b.StartTime)
	if err != nil {
		return time.Time{}, err
	}
	anchored := time.Date(origin.Year(), origin.Month(), origin.Day(), h, m, 0, 0, origin.Location())
	if anchored.Before(origin) {
		anchored = anchored.AddDate(0, 0, 1)
	}
	return anchored, nil
}

// ParseClock parses a 24-hour "HH:MM" string.
func ParseClock(clock string) (hour, minute int, err error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	hour, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	return hour, minute, nil
}
