// Package timeline projects the remaining work queue onto the calendar.
//
// Generate is a pure function of its input snapshot: the queue, the timer
// settings, the pinned breaks, a schedule origin, and the current pomodoro
// count. It walks the queue's work units forward from the origin, inserting
// a short or long break after each unit on the configured cadence, and
// routes every block around the pinned break windows. Two calls with the
// same input produce identical timelines; nothing here reads a clock or
// mutates shared state.
//
// Layout works in whole minutes. Interval lengths are stored in seconds and
// divided down once, so second-level rounding never leaks into block
// positions.
package timeline

import (
	"sort"
	"time"

	"github.com/riordanpawley/valerian/internal/domain"
)

// BlockType classifies a projected block.
type BlockType string

const (
	BlockWork           BlockType = "work"
	BlockBreak          BlockType = "break"
	BlockScheduledBreak BlockType = "scheduled_break"
)

// String returns the display string.
func (t BlockType) String() string {
	return string(t)
}

// Block is one positioned span on the projected day. Offset and Minutes are
// the layout coordinates: minutes from the origin and minutes of length.
type Block struct {
	Type      BlockType
	Label     string
	Color     string
	TaskID    string
	SubtaskID string
	Start     time.Time
	End       time.Time
	Offset    int
	Minutes   int
	Long      bool
}

// Input is the read-only snapshot the generator projects. Origin is the
// schedule's day start already resolved to an instant; supplying it keeps
// the generator free of any clock of its own.
type Input struct {
	Tasks         []domain.Task
	Settings      domain.Settings
	Breaks        []domain.ScheduleBreak
	Origin        time.Time
	PomodoroCount int
}

// Timeline is the generated projection.
type Timeline struct {
	Blocks       []Block
	Origin       time.Time
	TotalMinutes int
}

const (
	dayMinutes    = 24 * 60
	marginMinutes = 60
)

type pinnedSpan struct {
	label string
	start time.Time
	end   time.Time
}

// Generate builds the projected timeline for the input snapshot.
func Generate(in Input) Timeline {
	units := domain.FlattenUnits(in.Tasks)
	pins := anchorBreaks(in.Breaks, in.Origin)

	workMin := layoutMinutes(in.Settings.WorkDuration)
	shortMin := layoutMinutes(in.Settings.ShortBreakDuration)
	longMin := layoutMinutes(in.Settings.LongBreakDuration)
	interval := in.Settings.LongBreakInterval
	if interval < 1 {
		interval = 1
	}

	var blocks []Block
	cursor := in.Origin
	count := in.PomodoroCount

	for _, unit := range units {
		cursor = resolveCollision(cursor, workMin, pins)
		blocks = append(blocks, Block{
			Type:      BlockWork,
			Label:     unit.Label,
			Color:     unit.Color,
			TaskID:    unit.TaskID,
			SubtaskID: unit.SubtaskID,
			Start:     cursor,
			End:       cursor.Add(minutes(workMin)),
			Minutes:   workMin,
		})
		cursor = cursor.Add(minutes(workMin))
		count++

		long := count%interval == 0
		breakMin := shortMin
		label := "Break"
		if long {
			breakMin = longMin
			label = "Long break"
		}
		cursor = resolveCollision(cursor, breakMin, pins)
		blocks = append(blocks, Block{
			Type:    BlockBreak,
			Label:   label,
			Start:   cursor,
			End:     cursor.Add(minutes(breakMin)),
			Minutes: breakMin,
			Long:    long,
		})
		cursor = cursor.Add(minutes(breakMin))
	}

	for _, p := range pins {
		blocks = append(blocks, Block{
			Type:    BlockScheduledBreak,
			Label:   p.label,
			Start:   p.start,
			End:     p.end,
			Minutes: int(p.end.Sub(p.start) / time.Minute),
		})
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Start.Before(blocks[j].Start)
	})

	total := dayMinutes
	for i := range blocks {
		blocks[i].Offset = int(blocks[i].Start.Sub(in.Origin) / time.Minute)
		if end := int(blocks[i].End.Sub(in.Origin)/time.Minute) + marginMinutes; end > total {
			total = end
		}
	}

	return Timeline{
		Blocks:       blocks,
		Origin:       in.Origin,
		TotalMinutes: total,
	}
}

// OffsetOf converts an instant to layout minutes from the origin.
func (t Timeline) OffsetOf(ts time.Time) int {
	return int(ts.Sub(t.Origin) / time.Minute)
}

// End returns the end of the last block, or the origin when nothing is
// projected.
func (t Timeline) End() time.Time {
	end := t.Origin
	for _, b := range t.Blocks {
		if b.End.After(end) {
			end = b.End
		}
	}
	return end
}

// anchorBreaks resolves every pinned break to a concrete window against the
// origin, dropping any whose clock no longer parses. Anchoring guarantees a
// window never starts before the origin: a time of day already past rolls
// to the next day.
func anchorBreaks(breaks []domain.ScheduleBreak, origin time.Time) []pinnedSpan {
	var pins []pinnedSpan
	for _, b := range breaks {
		if b.Duration < 1 {
			continue
		}
		start, err := b.AnchorTime(origin)
		if err != nil {
			continue
		}
		pins = append(pins, pinnedSpan{
			label: b.Label,
			start: start,
			end:   start.Add(minutes(b.Duration)),
		})
	}
	sort.SliceStable(pins, func(i, j int) bool {
		return pins[i].start.Before(pins[j].start)
	})
	return pins
}

// resolveCollision pushes the cursor past every pinned window the candidate
// block would overlap. Advancing past one window can land inside the next,
// so it rescans until a full pass is clean. Blocks are pushed whole; a unit
// is never split across a pinned break.
func resolveCollision(cursor time.Time, length int, pins []pinnedSpan) time.Time {
	span := minutes(length)
	for {
		moved := false
		for _, p := range pins {
			if cursor.Before(p.end) && cursor.Add(span).After(p.start) {
				cursor = p.end
				moved = true
			}
		}
		if !moved {
			return cursor
		}
	}
}

// layoutMinutes converts an interval length in seconds to layout minutes,
// keeping degenerate sub-minute settings visible as one-minute blocks.
func layoutMinutes(seconds int) int {
	m := seconds / 60
	if m < 1 {
		return 1
	}
	return m
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
