// Package timerpane renders the two timer squares: the focus countdown and
// the break bank.
package timerpane

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/valerian/internal/core/timer"
	"github.com/riordanpawley/valerian/internal/domain"
	"github.com/riordanpawley/valerian/internal/ui/styles"
)

// Render renders the work and break squares side by side. focus is the
// square holding UI focus; on an idle timer Space starts that mode.
func Render(st timer.State, settings domain.Settings, focus timer.Mode, unitLabel string, s *styles.Styles, width int) string {
	squareWidth := width / 2
	if squareWidth < 20 {
		squareWidth = 20
	}

	work := renderWorkSquare(st, settings, focus == timer.ModeWork, unitLabel, s, squareWidth)
	brk := renderBreakSquare(st, settings, focus == timer.ModeBreak, s, squareWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, work, brk)
}

func renderWorkSquare(st timer.State, settings domain.Settings, focused bool, unitLabel string, s *styles.Styles, width int) string {
	title := titleLine("Focus", focused, s)
	if st.Running() && st.Mode == timer.ModeWork {
		title = s.ModeWork.Render(" FOCUS ")
	}

	clock := s.Clock.Render(formatClock(st.WorkTime, settings.ShowSeconds))

	sub := s.UnitLabel.Render(truncate(unitLabel, width-6))
	if unitLabel == "" {
		sub = s.UnitLabel.Render("queue empty")
	}

	lines := []string{
		title,
		"",
		clock,
		pomodoroDots(st.PomodoroCount, settings.LongBreakInterval, s),
		sub,
	}
	if note := phaseNote(st, timer.ModeWork, s); note != "" {
		lines = append(lines, note)
	}

	return square(lines, focused, s, width)
}

func renderBreakSquare(st timer.State, settings domain.Settings, focused bool, s *styles.Styles, width int) string {
	title := titleLine("Break", focused, s)
	if st.Running() && st.Mode == timer.ModeBreak {
		title = s.ModeBreak.Render(" BREAK ")
	}

	clockStyle, subText, subStyle := s.Clock, "banked rest", s.Bank
	if st.InDebt() {
		clockStyle, subText, subStyle = s.ClockDebt, "rest debt", s.BankDebt
	}
	clock := clockStyle.Render(formatClock(st.BreakTime, settings.ShowSeconds))

	lines := []string{
		title,
		"",
		clock,
		"",
		subStyle.Render(subText),
	}
	if note := phaseNote(st, timer.ModeBreak, s); note != "" {
		lines = append(lines, note)
	}

	return square(lines, focused, s, width)
}

func titleLine(title string, focused bool, s *styles.Styles) string {
	if focused {
		return s.PaneTitleActive.Render(title)
	}
	return s.PaneTitle.Render(title)
}

func square(lines []string, focused bool, s *styles.Styles, width int) string {
	pane := s.Pane
	if focused {
		pane = s.PaneActive
	}
	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return pane.Width(width).Align(lipgloss.Center).Render(content)
}

// pomodoroDots shows progress toward the next long break: one dot per unit
// of the cadence, filled for units already completed in the current round.
func pomodoroDots(count, interval int, s *styles.Styles) string {
	if interval < 1 {
		interval = 1
	}
	filled := count % interval
	if count > 0 && filled == 0 {
		filled = interval
	}
	var b strings.Builder
	for i := 0; i < interval; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if i < filled {
			b.WriteString(s.PomoDot.Render("●"))
		} else {
			b.WriteString(s.PomoDotDim.Render("○"))
		}
	}
	return b.String()
}

// phaseNote surfaces a suspended phase inside the square the timer was in
// when it stopped.
func phaseNote(st timer.State, mode timer.Mode, s *styles.Styles) string {
	if st.Mode != mode {
		return ""
	}
	switch st.Phase {
	case timer.PhaseAllPaused:
		note := "paused " + domain.FormatClock(st.PauseTotal)
		if st.PauseReason != "" {
			note += " · " + st.PauseReason
		}
		return s.PhaseNote.Render(note)
	case timer.PhaseGrace:
		return s.PhaseNote.Render("resolving " + domain.FormatClock(st.GraceTotal))
	}
	return ""
}

func formatClock(seconds int, showSeconds bool) string {
	if showSeconds {
		return domain.FormatClock(seconds)
	}
	return domain.FormatMinutes(seconds)
}

func truncate(text string, max int) string {
	if max < 1 || len(text) <= max {
		return text
	}
	return text[:max-1] + "…"
}
