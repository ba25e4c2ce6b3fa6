// Package timer implements the break-bank timer state machine.
//
// The machine is pure: Step consumes the current state plus one command and
// returns the next state plus a list of effects for the caller to execute
// (log appends, persistence writes, alarm triggers, queue advancement).
// Every command carries the wall-clock instant it happened at, so the
// machine never reads a clock of its own and two runs over the same
// commands produce identical states.
//
// Phases:
//
//	Idle -> Running(work|break) -> Grace -> Running(next mode)
//	Running <-> AllPaused (either mode, reassignable on resume)
//	any running phase -> SummaryShown -> Idle
//
// workTime counts down by one per tick. breakTime is the bank: it counts
// down while resting and may cross zero into debt. Grace and all-pause
// accumulate against the wall clock instead of the tick stream, so time
// spent suspended is never lost to a missed tick.
package timer

import (
	"time"

	"github.com/riordanpawley/valerian/internal/domain"
)

// Mode is which clock the timer is driving.
type Mode string

const (
	ModeWork  Mode = "work"
	ModeBreak Mode = "break"
)

// String returns the display string.
func (m Mode) String() string {
	return string(m)
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == ModeWork {
		return ModeBreak
	}
	return ModeWork
}

// Phase is the coarse machine state.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseRunning   Phase = "running"
	PhaseGrace     Phase = "grace"
	PhaseAllPaused Phase = "allpaused"
	PhaseSummary   Phase = "summary"
)

// GraceContext records which boundary opened the resolver.
type GraceContext string

const (
	GraceAfterWork  GraceContext = "after_work"
	GraceAfterBreak GraceContext = "after_break"
)

// GraceChoice is one resolution of an open grace window.
type GraceChoice string

const (
	// Next-mode choices, offered immediately. No bank adjustment.
	ChoiceNextWork  GraceChoice = "next_work"
	ChoiceNextBreak GraceChoice = "next_break"

	// Attribution choices, offered once the window has aged past the
	// threshold. They settle the whole window at the earn/spend rate.
	ChoiceWasWorking GraceChoice = "was_working"
	ChoiceWasResting GraceChoice = "was_resting"
)

// GraceThreshold is how many accumulated seconds unlock the attribution
// choices. Below it only the next-mode choices are offered.
const GraceThreshold = 30

// EarnRate is the work-to-rest exchange: five focused seconds buy one
// second of rest.
const EarnRate = 5

// Earn converts focused seconds into banked rest.
func Earn(elapsed int) int {
	if elapsed < 0 {
		return 0
	}
	return elapsed / EarnRate
}

// Spend is the one-to-one cost of resting for elapsed seconds.
func Spend(elapsed int) int {
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// State is the full timer state. It is a value; Step returns a new one and
// never mutates its argument.
type State struct {
	Phase Phase
	Mode  Mode

	// WorkTime is seconds remaining in the current work interval, floored
	// at zero. BreakTime is the bank balance and may go negative.
	WorkTime  int
	BreakTime int

	// UnitTicks counts the seconds actually focused on the current work
	// interval, across suspensions. Completion banks Earn(UnitTicks), so an
	// interval shortened by a manual override earns only what was focused.
	UnitTicks int

	PomodoroCount int

	GraceContext GraceContext
	GraceStart   time.Time
	GraceTotal   int

	PauseStart  time.Time
	PauseTotal  int
	PauseReason string

	// SegmentStart opens the log span for the running mode. SessionStart
	// and StartCount anchor the session for summary accounting.
	SegmentStart time.Time
	SessionStart time.Time
	StartCount   int
}

// NewState returns an idle timer. The pomodoro count is whatever the
// persistence layer last saved.
func NewState(settings domain.Settings, pomodoroCount int) State {
	if pomodoroCount < 0 {
		pomodoroCount = 0
	}
	return State{
		Phase:         PhaseIdle,
		Mode:          ModeWork,
		WorkTime:      settings.WorkDuration,
		PomodoroCount: pomodoroCount,
	}
}

// Running reports whether a mode clock is live.
func (s State) Running() bool {
	return s.Phase == PhaseRunning
}

// InDebt reports whether the bank has been spent past zero.
func (s State) InDebt() bool {
	return s.BreakTime < 0
}

// Remaining returns the active mode's countdown value.
func (s State) Remaining() int {
	if s.Mode == ModeBreak {
		return s.BreakTime
	}
	return s.WorkTime
}

// GraceChoices lists the resolutions currently on offer for an open grace
// window, next-mode choices first.
func (s State) GraceChoices() []GraceChoice {
	if s.Phase != PhaseGrace {
		return nil
	}
	choices := []GraceChoice{ChoiceNextWork, ChoiceNextBreak}
	if s.GraceTotal >= GraceThreshold {
		choices = append(choices, ChoiceWasWorking, ChoiceWasResting)
	}
	return choices
}

// Command is one input to the transition function. Commands that depend on
// real time carry it explicitly.
type Command interface {
	isCommand()
}

// Tick advances all live accumulators by one second of real time.
type Tick struct {
	Now time.Time
}

// Activate focuses a mode. On an idle timer it also starts that mode's
// countdown; on a running one it changes nothing.
type Activate struct {
	Mode Mode
	Now  time.Time
}

// Switch toggles the active mode without stopping the clock.
type Switch struct {
	Now time.Time
}

// Restart resets the active mode's countdown. A nil Seconds means the
// configured duration; a value is a manual override clamped to zero or
// more. In break mode only the override form does anything, because the
// break countdown is the bank and the bank has no configured duration.
type Restart struct {
	Seconds *int
	Now     time.Time
}

// SetCount is the manual override for the pomodoro counter.
type SetCount struct {
	Count int
}

// OpenGrace opens the resolver outside the automatic work-completion path.
type OpenGrace struct {
	Context GraceContext
	Now     time.Time
}

// Resolve closes an open grace window with one of the offered choices.
type Resolve struct {
	Choice GraceChoice
	Now    time.Time
}

// Pause suspends both clocks.
type Pause struct {
	Reason string
	Now    time.Time
}

// Resume ends an all-pause. The caller picks the mode to return to and the
// bank adjustment for the paused span: positive to earn it as work,
// negative to spend it as rest, zero to let it go unattributed.
type Resume struct {
	Mode       Mode
	BankAdjust int
	Now        time.Time
}

// EndSession terminates the session and moves to the summary. It carries
// snapshots of the log and queue so the stats can be computed in one pure
// step.
type EndSession struct {
	Entries []domain.LogEntry
	Tasks   []domain.Task
	Now     time.Time
}

// CloseSummary leaves the summary and resets for a fresh session.
type CloseSummary struct {
	Now time.Time
}

func (Tick) isCommand()         {}
func (Activate) isCommand()     {}
func (Switch) isCommand()       {}
func (Restart) isCommand()      {}
func (SetCount) isCommand()     {}
func (OpenGrace) isCommand()    {}
func (Resolve) isCommand()      {}
func (Pause) isCommand()        {}
func (Resume) isCommand()       {}
func (EndSession) isCommand()   {}
func (CloseSummary) isCommand() {}

// Effect is an instruction to the caller. The machine never performs I/O;
// it describes it.
type Effect interface {
	isEffect()
}

// AppendLog asks the caller to append an entry and persist the log. Work
// entries leave the task fields empty for the caller to fill in from the
// live queue, which the machine cannot see.
type AppendLog struct {
	Entry domain.LogEntry
}

// SaveCount asks the caller to persist the pomodoro counter.
type SaveCount struct {
	Count int
}

// PlayAlarm asks the caller to trigger the named sound. Never emitted while
// alarms are muted.
type PlayAlarm struct {
	Sound string
}

// AdvanceQueue asks the caller to credit the finished interval to the first
// open queue item.
type AdvanceQueue struct{}

// GraceOpened tells the caller a grace window just opened.
type GraceOpened struct {
	Context GraceContext
}

// ShowSummary carries the finished session's stats.
type ShowSummary struct {
	Stats domain.SessionStats
}

// ResetTasks asks the caller to clear completion flags and counters on the
// queue for a fresh session.
type ResetTasks struct{}

func (AppendLog) isEffect()    {}
func (SaveCount) isEffect()    {}
func (PlayAlarm) isEffect()    {}
func (AdvanceQueue) isEffect() {}
func (GraceOpened) isEffect()  {}
func (ShowSummary) isEffect()  {}
func (ResetTasks) isEffect()   {}
