package timer

import (
	"time"

	"github.com/riordanpawley/valerian/internal/domain"
)

// Step applies one command and returns the next state plus the effects the
// caller must run. A command that does not apply in the current phase is a
// no-op: the state comes back unchanged with no effects.
func Step(s State, settings domain.Settings, cmd Command) (State, []Effect) {
	switch c := cmd.(type) {
	case Tick:
		return stepTick(s, settings, c)
	case Activate:
		return stepActivate(s, settings, c)
	case Switch:
		return stepSwitch(s, settings, c)
	case Restart:
		return stepRestart(s, settings, c)
	case SetCount:
		return stepSetCount(s, c)
	case OpenGrace:
		return stepOpenGrace(s, c)
	case Resolve:
		return stepResolve(s, settings, c)
	case Pause:
		return stepPause(s, c)
	case Resume:
		return stepResume(s, settings, c)
	case EndSession:
		return stepEndSession(s, c)
	case CloseSummary:
		return stepCloseSummary(s, settings)
	}
	return s, nil
}

func stepTick(s State, settings domain.Settings, c Tick) (State, []Effect) {
	switch s.Phase {
	case PhaseRunning:
		if s.Mode == ModeBreak {
			// The bank drains one-to-one and may cross into debt. Hitting
			// zero is a rendering signal, not a boundary.
			s.BreakTime--
			return s, nil
		}
		if s.WorkTime > 0 {
			s.WorkTime--
			s.UnitTicks++
		}
		if s.WorkTime > 0 {
			return s, nil
		}
		return completeInterval(s, settings, c.Now)
	case PhaseGrace:
		s.GraceTotal = wallSeconds(s.GraceStart, c.Now, s.GraceTotal)
		return s, nil
	case PhaseAllPaused:
		s.PauseTotal = wallSeconds(s.PauseStart, c.Now, s.PauseTotal)
		return s, nil
	}
	return s, nil
}

// completeInterval closes a finished work interval: log it, bank the earned
// rest, count it, advance the queue, and open the grace window.
func completeInterval(s State, settings domain.Settings, now time.Time) (State, []Effect) {
	entry := domain.NewLogEntry(domain.EntryWork, s.SegmentStart, now)
	entry.Reason = domain.ReasonCompleted

	s.BreakTime += Earn(s.UnitTicks)
	s.UnitTicks = 0
	s.PomodoroCount++
	s.Phase = PhaseGrace
	s.GraceContext = GraceAfterWork
	s.GraceStart = now
	s.GraceTotal = 0

	effects := []Effect{
		AppendLog{Entry: entry},
		SaveCount{Count: s.PomodoroCount},
		AdvanceQueue{},
		GraceOpened{Context: GraceAfterWork},
	}
	if !settings.MuteAlarms {
		effects = append(effects, PlayAlarm{Sound: settings.AlarmSound})
	}
	return s, effects
}

func stepActivate(s State, settings domain.Settings, c Activate) (State, []Effect) {
	if s.Phase != PhaseIdle {
		// Focus changes on a live timer are presentation only.
		return s, nil
	}
	s.Phase = PhaseRunning
	s.Mode = c.Mode
	s.SessionStart = c.Now
	s.StartCount = s.PomodoroCount
	s.SegmentStart = c.Now
	if c.Mode == ModeWork {
		s = enterWork(s, settings)
	}
	return s, nil
}

func stepSwitch(s State, settings domain.Settings, c Switch) (State, []Effect) {
	if s.Phase != PhaseRunning {
		return s, nil
	}
	var effects []Effect
	if entry, ok := closeSegment(s, c.Now); ok {
		effects = append(effects, AppendLog{Entry: entry})
	}
	s.Mode = s.Mode.Opposite()
	s.SegmentStart = c.Now
	if s.Mode == ModeWork {
		s = enterWork(s, settings)
	}
	return s, effects
}

func stepRestart(s State, settings domain.Settings, c Restart) (State, []Effect) {
	if s.Phase != PhaseRunning && s.Phase != PhaseIdle {
		return s, nil
	}
	if s.Mode == ModeBreak {
		// The break countdown is the bank; only an explicit override may
		// move it, and never below zero.
		if c.Seconds == nil {
			return s, nil
		}
		s.BreakTime = clampSeconds(*c.Seconds)
		return s, nil
	}
	// Either restart form abandons the current interval; its partial focus
	// stays in the log segment but earns nothing.
	s.UnitTicks = 0
	if c.Seconds != nil {
		s.WorkTime = clampSeconds(*c.Seconds)
		return s, nil
	}
	s.WorkTime = settings.WorkDuration
	return s, nil
}

func stepSetCount(s State, c SetCount) (State, []Effect) {
	count := c.Count
	if count < 0 {
		count = 0
	}
	s.PomodoroCount = count
	return s, []Effect{SaveCount{Count: count}}
}

func stepOpenGrace(s State, c OpenGrace) (State, []Effect) {
	if s.Phase != PhaseRunning {
		return s, nil
	}
	var effects []Effect
	if entry, ok := closeSegment(s, c.Now); ok {
		effects = append(effects, AppendLog{Entry: entry})
	}
	s.Phase = PhaseGrace
	s.GraceContext = c.Context
	s.GraceStart = c.Now
	s.GraceTotal = 0
	effects = append(effects, GraceOpened{Context: c.Context})
	return s, effects
}

func stepResolve(s State, settings domain.Settings, c Resolve) (State, []Effect) {
	if s.Phase != PhaseGrace {
		return s, nil
	}
	total := wallSeconds(s.GraceStart, c.Now, s.GraceTotal)

	entry := domain.NewLogEntry(domain.EntryGrace, s.GraceStart, c.Now)
	entry.Duration = total

	var next Mode
	switch c.Choice {
	case ChoiceNextWork:
		next = ModeWork
		entry.Reason = domain.ReasonNoAttribution
	case ChoiceNextBreak:
		next = ModeBreak
		entry.Reason = domain.ReasonNoAttribution
	case ChoiceWasWorking:
		// Attribution is only on the table once the window has aged in.
		if total < GraceThreshold {
			return s, nil
		}
		s.BreakTime += Earn(total)
		next = ModeBreak
		entry.Reason = domain.ReasonWasWorking
	case ChoiceWasResting:
		if total < GraceThreshold {
			return s, nil
		}
		s.BreakTime -= Spend(total)
		next = ModeWork
		entry.Reason = domain.ReasonWasResting
	default:
		return s, nil
	}

	s.Phase = PhaseRunning
	s.Mode = next
	s.GraceContext = ""
	s.GraceStart = time.Time{}
	s.GraceTotal = 0
	s.SegmentStart = c.Now
	if next == ModeWork {
		s = enterWork(s, settings)
	}
	return s, []Effect{AppendLog{Entry: entry}}
}

func stepPause(s State, c Pause) (State, []Effect) {
	if s.Phase != PhaseRunning {
		return s, nil
	}
	var effects []Effect
	if entry, ok := closeSegment(s, c.Now); ok {
		effects = append(effects, AppendLog{Entry: entry})
	}
	// The pause itself is logged as a marker at the moment of
	// confirmation; the span lives in PauseTotal until resolution.
	marker := domain.NewLogEntry(domain.EntryAllPause, c.Now, c.Now)
	marker.Reason = c.Reason
	effects = append(effects, AppendLog{Entry: marker})

	s.Phase = PhaseAllPaused
	s.PauseStart = c.Now
	s.PauseTotal = 0
	s.PauseReason = c.Reason
	return s, effects
}

func stepResume(s State, settings domain.Settings, c Resume) (State, []Effect) {
	if s.Phase != PhaseAllPaused {
		return s, nil
	}
	s.BreakTime += c.BankAdjust
	s.Phase = PhaseRunning
	s.Mode = c.Mode
	s.PauseStart = time.Time{}
	s.PauseTotal = 0
	s.PauseReason = ""
	s.SegmentStart = c.Now
	if c.Mode == ModeWork {
		s = enterWork(s, settings)
	}
	return s, nil
}

func stepEndSession(s State, c EndSession) (State, []Effect) {
	switch s.Phase {
	case PhaseIdle, PhaseSummary:
		return s, nil
	}

	var effects []Effect
	var closing []domain.LogEntry

	switch s.Phase {
	case PhaseRunning:
		if entry, ok := closeSegment(s, c.Now); ok {
			effects = append(effects, AppendLog{Entry: entry})
			closing = append(closing, entry)
		}
	case PhaseGrace:
		entry := domain.NewLogEntry(domain.EntryGrace, s.GraceStart, c.Now)
		entry.Duration = wallSeconds(s.GraceStart, c.Now, s.GraceTotal)
		entry.Reason = domain.ReasonNoAttribution
		effects = append(effects, AppendLog{Entry: entry})
		closing = append(closing, entry)
	}

	session := domain.EntriesSince(c.Entries, s.SessionStart)
	session = append(session, closing...)
	pomos := s.PomodoroCount - s.StartCount
	if pomos < 0 {
		pomos = 0
	}
	stats := domain.ComputeStats(session, c.Tasks, pomos)

	s.Phase = PhaseSummary
	s.GraceContext = ""
	s.GraceTotal = 0
	s.PauseTotal = 0
	s.PauseReason = ""
	effects = append(effects, ShowSummary{Stats: stats})
	return s, effects
}

func stepCloseSummary(s State, settings domain.Settings) (State, []Effect) {
	if s.Phase != PhaseSummary {
		return s, nil
	}
	fresh := NewState(settings, 0)
	return fresh, []Effect{ResetTasks{}, SaveCount{Count: 0}}
}

// enterWork starts a fresh interval when the previous one was consumed,
// otherwise resumes the remaining countdown and its accumulated focus.
func enterWork(s State, settings domain.Settings) State {
	if s.WorkTime <= 0 {
		s.WorkTime = settings.WorkDuration
		s.UnitTicks = 0
	}
	return s
}

// closeSegment builds the log entry for the span since the running mode was
// entered. Sub-second segments are dropped as noise.
func closeSegment(s State, now time.Time) (domain.LogEntry, bool) {
	entryType := domain.EntryWork
	if s.Mode == ModeBreak {
		entryType = domain.EntryBreak
	}
	entry := domain.NewLogEntry(entryType, s.SegmentStart, now)
	if entry.Duration < 1 {
		return domain.LogEntry{}, false
	}
	return entry, true
}

// wallSeconds measures a suspension span against the wall clock, never
// moving backwards relative to what was already accumulated.
func wallSeconds(start, now time.Time, floor int) int {
	span := int(now.Sub(start) / time.Second)
	if span < floor {
		return floor
	}
	return span
}

func clampSeconds(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
