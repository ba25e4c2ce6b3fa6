package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryType classifies a session log entry.
type EntryType string

const (
	EntryWork         EntryType = "work"
	EntryBreak        EntryType = "break"
	EntryAllPause     EntryType = "allpause"
	EntryGrace        EntryType = "grace"
	EntryTaskComplete EntryType = "task_complete"
)

// String returns the display string.
func (t EntryType) String() string {
	return string(t)
}

// Reason values recorded on log entries.
const (
	// ReasonCompleted marks the work segment that closed a full interval.
	ReasonCompleted = "completed"

	// Grace resolutions.
	ReasonWasWorking    = "was working"
	ReasonWasResting    = "was resting"
	ReasonNoAttribution = "no attribution"
)

// CategoryNone buckets work entries that carry no category.
const CategoryNone = "uncategorized"

// LogEntry is one immutable record in the append-only session log. Durations
// are in seconds. AllPause entries are markers: they record the moment and
// the reason, not a span.
type LogEntry struct {
	ID       string    `json:"id"`
	Type     EntryType `json:"type"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int       `json:"duration"`
	Reason   string    `json:"reason,omitempty"`
	Task     string    `json:"task,omitempty"`
	Category string    `json:"category,omitempty"`
	Color    string    `json:"color,omitempty"`
}

// NewLogEntry builds an entry spanning [start, end] with the duration derived
// from the span. Clock skew never produces a negative duration.
func NewLogEntry(entryType EntryType, start, end time.Time) LogEntry {
	d := int(end.Sub(start) / time.Second)
	if d < 0 {
		d = 0
	}
	return LogEntry{
		ID:       uuid.NewString(),
		Type:     entryType,
		Start:    start,
		End:      end,
		Duration: d,
	}
}

// SessionStats summarizes a span of the log.
type SessionStats struct {
	WorkSeconds    int
	BreakSeconds   int
	Pomodoros      int
	TasksCompleted int
	ByCategory     map[string]int
}

// ComputeStats sums work and break durations over the given entries, counts
// checked tasks, and breaks work seconds down by category. The pomodoro
// count is supplied by the caller: the timer owns it for a live session, the
// log itself for lifetime totals.
func ComputeStats(entries []LogEntry, tasks []Task, pomodoros int) SessionStats {
	stats := SessionStats{
		Pomodoros:  pomodoros,
		ByCategory: map[string]int{},
	}
	for _, e := range entries {
		switch e.Type {
		case EntryWork:
			stats.WorkSeconds += e.Duration
			cat := e.Category
			if cat == "" {
				cat = CategoryNone
			}
			stats.ByCategory[cat] += e.Duration
		case EntryBreak:
			stats.BreakSeconds += e.Duration
		}
	}
	stats.TasksCompleted = CountChecked(tasks)
	return stats
}

// CountCompletedIntervals counts full work intervals recorded in the log.
func CountCompletedIntervals(entries []LogEntry) int {
	n := 0
	for _, e := range entries {
		if e.Type == EntryWork && e.Reason == ReasonCompleted {
			n++
		}
	}
	return n
}

// EntriesSince returns the entries starting at or after t, preserving order.
func EntriesSince(entries []LogEntry, t time.Time) []LogEntry {
	var out []LogEntry
	for _, e := range entries {
		if !e.Start.Before(t) {
			out = append(out, e)
		}
	}
	return out
}
