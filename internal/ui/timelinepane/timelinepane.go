// Package timelinepane renders the projected day as a proportional strip
// plus the next few upcoming blocks.
package timelinepane

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/valerian/internal/core/timeline"
	"github.com/riordanpawley/valerian/internal/ui/styles"
)

// upcomingRows is how many agenda lines follow the strip.
const upcomingRows = 3

// Render renders the timeline pane: hour marks, the block strip, and the
// next blocks after now.
func Render(tl timeline.Timeline, now time.Time, s *styles.Styles, width int) string {
	header := renderHeader(tl, s, width)
	if len(tl.Blocks) == 0 {
		empty := s.QueueCount.Render("  nothing projected · queue work to fill the day")
		return lipgloss.JoinVertical(lipgloss.Left, header, empty)
	}

	stripWidth := width - 2
	if stripWidth < 10 {
		stripWidth = 10
	}
	window := windowMinutes(tl)
	scale := (window + stripWidth - 1) / stripWidth

	lines := []string{
		header,
		" " + renderHours(tl, scale, stripWidth, s),
		" " + renderStrip(tl, now, scale, stripWidth, s),
	}
	lines = append(lines, renderUpcoming(tl, now, s, width)...)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderHeader(tl timeline.Timeline, s *styles.Styles, width int) string {
	headerText := "─ Timeline "
	span := fmt.Sprintf(" ends %s ", tl.End().Format("15:04"))
	if len(tl.Blocks) == 0 {
		span = " "
	}
	remaining := width - lipgloss.Width(headerText) - lipgloss.Width(span)
	if remaining > 0 {
		headerText += strings.Repeat("─", remaining)
	}
	return s.PaneTitle.Render(headerText) + s.TimelineTime.Render(span)
}

// windowMinutes is the span the strip covers: origin to the last block's
// end plus breathing room, at least four hours so short queues do not
// stretch into noise.
func windowMinutes(tl timeline.Timeline) int {
	last := tl.OffsetOf(tl.End()) + 30
	if last < 4*60 {
		return 4 * 60
	}
	return last
}

// renderHours labels the strip with hour marks at the resolution the
// scale allows.
func renderHours(tl timeline.Timeline, scale, width int, s *styles.Styles) string {
	out := strings.Repeat(" ", width)

	// Whole hours, spaced so "HH:MM" labels never collide.
	step := ((6*scale + 59) / 60) * 60
	if step < 60 {
		step = 60
	}
	for m := 0; ; m += step {
		cell := m / scale
		label := tl.Origin.Add(time.Duration(m) * time.Minute).Format("15:04")
		if cell+len(label) > width {
			break
		}
		out = out[:cell] + label + out[cell+len(label):]
	}
	return s.TimelineTime.Render(out)
}

// renderStrip paints one cell per scale minutes. Later blocks win cell
// conflicts, which keeps pinned windows visible over pushed work.
func renderStrip(tl timeline.Timeline, now time.Time, scale, width int, s *styles.Styles) string {
	type cell struct {
		ch    string
		style lipgloss.Style
	}
	cells := make([]cell, width)
	for i := range cells {
		cells[i] = cell{ch: "·", style: s.TimelineTime}
	}

	paint := func(b timeline.Block, ch string, style lipgloss.Style) {
		start := b.Offset / scale
		end := (b.Offset + b.Minutes + scale - 1) / scale
		if end <= start {
			end = start + 1
		}
		for i := start; i < end && i < width; i++ {
			if i < 0 {
				continue
			}
			cells[i] = cell{ch: ch, style: style}
		}
	}

	for _, b := range tl.Blocks {
		switch b.Type {
		case timeline.BlockWork:
			style := s.TimelineWork
			if b.Color != "" {
				style = style.Foreground(styles.TaskColor(b.Color))
			}
			paint(b, "█", style)
		case timeline.BlockBreak:
			ch := "▒"
			if b.Long {
				ch = "▓"
			}
			paint(b, ch, s.TimelineBreak)
		case timeline.BlockScheduledBreak:
			paint(b, "░", s.TimelinePinned)
		}
	}

	if nowCell := tl.OffsetOf(now) / scale; nowCell >= 0 && nowCell < width {
		cells[nowCell] = cell{ch: "┃", style: s.TimelineNow}
	}

	var b strings.Builder
	for _, c := range cells {
		b.WriteString(c.style.Render(c.ch))
	}
	return b.String()
}

// renderUpcoming lists the next blocks that have not ended yet.
func renderUpcoming(tl timeline.Timeline, now time.Time, s *styles.Styles, width int) []string {
	var lines []string
	for _, b := range tl.Blocks {
		if !b.End.After(now) {
			continue
		}
		if len(lines) >= upcomingRows {
			break
		}
		style := s.TimelineWork
		switch b.Type {
		case timeline.BlockBreak:
			style = s.TimelineBreak
		case timeline.BlockScheduledBreak:
			style = s.TimelinePinned
		}
		label := b.Label
		maxLabel := width - 18
		if maxLabel > 4 && len(label) > maxLabel {
			label = label[:maxLabel-1] + "…"
		}
		line := fmt.Sprintf(" %s  %s  %s",
			s.TimelineTime.Render(b.Start.Format("15:04")),
			style.Render(label),
			s.QueueCount.Render(fmt.Sprintf("%dm", b.Minutes)),
		)
		lines = append(lines, line)
	}
	return lines
}
