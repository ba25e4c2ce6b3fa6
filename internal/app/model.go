// Package app contains the main application model and TEA implementation.
//
// The model owns the whole session state: timer, task queue, log, settings,
// schedule, and group membership. Key presses and overlay results are
// translated into timer commands; the pure core returns effects which the
// model executes here (log appends, bucket saves, alarm, queue advance).
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/valerian/internal/core/timeline"
	"github.com/riordanpawley/valerian/internal/core/timer"
	"github.com/riordanpawley/valerian/internal/domain"
	"github.com/riordanpawley/valerian/internal/services/alarm"
	"github.com/riordanpawley/valerian/internal/services/groupsync"
	"github.com/riordanpawley/valerian/internal/services/navigation"
	"github.com/riordanpawley/valerian/internal/services/reminder"
	"github.com/riordanpawley/valerian/internal/services/store"
	"github.com/riordanpawley/valerian/internal/types"
	"github.com/riordanpawley/valerian/internal/ui/overlay"
	"github.com/riordanpawley/valerian/internal/ui/queuepane"
	"github.com/riordanpawley/valerian/internal/ui/statusbar"
	"github.com/riordanpawley/valerian/internal/ui/styles"
	"github.com/riordanpawley/valerian/internal/ui/timelinepane"
	"github.com/riordanpawley/valerian/internal/ui/timerpane"
	"github.com/riordanpawley/valerian/internal/ui/toast"
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast
type ToastLevel = types.ToastLevel

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

// Deps are the collaborators the model drives. Every field is required.
type Deps struct {
	Store     store.Persistence
	Alarm     alarm.Notifier
	Group     groupsync.Client
	Reminders *reminder.Service
	Logger    *slog.Logger
}

// Model is the main application state
type Model struct {
	// Session state, loaded bucket by bucket
	settings domain.Settings
	tasks    []domain.Task
	entries  []domain.LogEntry
	schedule domain.Schedule
	group    domain.GroupSession

	// Timer core and the square holding UI focus
	timer timer.State
	focus timer.Mode

	// Projection, rebuilt on any input change
	timeline timeline.Timeline
	now      time.Time

	// Navigation (queue cursor)
	nav *navigation.Service

	// UI state
	overlayStack *overlay.Stack
	toasts       []Toast

	// pendingDelete is the row a delete confirmation refers to.
	pendingDelete string

	// Terminal size
	width  int
	height int

	// Styles
	styles *styles.Styles

	// Collaborators
	store      store.Persistence
	alarm      alarm.Notifier
	groupSync  groupsync.Client
	reminders  *reminder.Service
	reminderCh chan domain.ScheduleBreak

	// Logger
	logger *slog.Logger
}

// New creates the application model, loading every bucket from the store.
// Missing or corrupt buckets come back as defaults, never as errors.
func New(deps Deps) Model {
	now := time.Now()

	settings := deps.Store.LoadSettings()
	schedule := deps.Store.LoadSchedule()

	m := Model{
		settings:     settings,
		tasks:        deps.Store.LoadTasks(),
		entries:      deps.Store.LoadLog(),
		schedule:     schedule,
		group:        deps.Store.LoadGroup(),
		timer:        timer.NewState(settings, deps.Store.LoadCount()),
		focus:        timer.ModeWork,
		now:          now,
		nav:          navigation.NewService(),
		overlayStack: overlay.NewStack(),
		styles:       styles.New(),
		store:        deps.Store,
		alarm:        deps.Alarm,
		groupSync:    deps.Group,
		reminders:    deps.Reminders,
		reminderCh:   make(chan domain.ScheduleBreak, 4),
		logger:       deps.Logger,
	}

	m.rebuildTimeline()
	m.scheduleReminders()
	return m
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickEvery(time.Second),
		listenReminders(m.reminderCh),
	)
}

type tickMsg time.Time

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// reminderMsg carries a pinned break whose start time just arrived.
type reminderMsg domain.ScheduleBreak

func listenReminders(ch <-chan domain.ScheduleBreak) tea.Cmd {
	return func() tea.Msg {
		return reminderMsg(<-ch)
	}
}

// groupResultMsg reports the outcome of a group create/join/leave.
type groupResultMsg struct {
	op      string
	session domain.GroupSession
	err     error
}

// peerErrorMsg surfaces a failed mirror. Local state is already saved;
// only the toast happens here.
type peerErrorMsg struct {
	err error
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.overlayStack.IsEmpty() {
			cmd := m.overlayStack.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case reminderMsg:
		brk := domain.ScheduleBreak(msg)
		m.addToast(ToastInfo, fmt.Sprintf("%s starts now (%d min)", brk.Label, brk.Duration), 10*time.Second)
		cmds := []tea.Cmd{listenReminders(m.reminderCh)}
		if !m.settings.MuteAlarms {
			cmds = append(cmds, m.playAlarmCmd(m.settings.AlarmSound))
		}
		return m, tea.Batch(cmds...)

	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil

	// Timer dialog results
	case overlay.GraceResolvedMsg:
		return m.applyTimer(timer.Resolve{Choice: msg.Choice, Now: time.Now()})

	case overlay.PauseRequestedMsg:
		return m.applyTimer(timer.Pause{Reason: msg.Reason, Now: time.Now()})

	case overlay.ResumeRequestedMsg:
		return m.applyTimer(timer.Resume{Mode: msg.Mode, BankAdjust: msg.BankAdjust, Now: time.Now()})

	case overlay.SummaryClosedMsg:
		return m.applyTimer(timer.CloseSummary{Now: time.Now()})

	case overlay.OverrideSubmittedMsg:
		if msg.Kind == overlay.OverrideCount {
			return m.applyTimer(timer.SetCount{Count: msg.Value})
		}
		seconds := msg.Value
		return m.applyTimer(timer.Restart{Seconds: &seconds, Now: time.Now()})

	case overlay.ConfirmedMsg:
		return m.handleConfirmed(msg.Key)

	// Queue and schedule edits
	case overlay.TaskSubmittedMsg:
		return m.handleTaskSubmitted(msg)

	case overlay.BreakAddedMsg:
		m.schedule.Breaks = append(m.schedule.Breaks, msg.Break)
		m.saveSchedule()
		m.scheduleReminders()
		m.rebuildTimeline()
		return m, nil

	case overlay.BreakDeletedMsg:
		kept := m.schedule.Breaks[:0]
		for _, b := range m.schedule.Breaks {
			if b.ID != msg.ID {
				kept = append(kept, b)
			}
		}
		m.schedule.Breaks = kept
		m.saveSchedule()
		m.scheduleReminders()
		m.rebuildTimeline()
		return m, nil

	case overlay.SettingsChangedMsg:
		m.settings = msg.Settings.Normalize()
		if err := m.store.SaveSettings(m.settings); err != nil {
			m.addToast(ToastError, err.Error(), 5*time.Second)
		}
		m.rebuildTimeline()
		return m, nil

	// Group session
	case overlay.GroupCreateMsg:
		return m, m.groupCmd("create", "")

	case overlay.GroupJoinMsg:
		return m, m.groupCmd("join", msg.ID)

	case overlay.GroupLeaveMsg:
		return m, m.groupCmd("leave", "")

	case groupResultMsg:
		return m.handleGroupResult(msg)

	case peerErrorMsg:
		m.addToast(ToastWarning, msg.err.Error(), 5*time.Second)
		return m, nil
	}

	// Everything else belongs to the open overlay, if any.
	if !m.overlayStack.IsEmpty() {
		cmd := m.overlayStack.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleTick advances the clocks by one second and refreshes anything that
// watches them.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.now = now
	m.expireToasts(now)

	next, cmd := m.applyTimer(timer.Tick{Now: now})
	m = next.(Model)

	// Keep an open grace/resume dialog's counter moving.
	var overlayCmd tea.Cmd
	switch m.timer.Phase {
	case timer.PhaseGrace:
		overlayCmd = m.overlayStack.Update(overlay.GraceTickMsg{Total: m.timer.GraceTotal})
	case timer.PhaseAllPaused:
		overlayCmd = m.overlayStack.Update(overlay.PauseTickMsg{Total: m.timer.PauseTotal})
	}

	return m, tea.Batch(cmd, overlayCmd, tickEvery(time.Second))
}

// handleKey handles key presses with no overlay open.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Timer
	case " ":
		switch m.timer.Phase {
		case timer.PhaseIdle:
			return m.applyTimer(timer.Activate{Mode: m.focus, Now: time.Now()})
		case timer.PhaseAllPaused:
			return m, m.overlayStack.Push(overlay.NewResumeDialog(m.timer.PauseTotal))
		}
		return m, nil

	case "tab":
		m.focus = m.focus.Opposite()
		return m, nil

	case "s":
		return m.applyTimer(timer.Switch{Now: time.Now()})

	case "r":
		return m.applyTimer(timer.Restart{Now: time.Now()})

	case "R":
		return m, m.overlayStack.Push(overlay.NewOverrideDialog(overlay.OverrideRemaining))

	case "=":
		return m, m.overlayStack.Push(overlay.NewOverrideDialog(overlay.OverrideCount))

	case "+":
		return m.applyTimer(timer.SetCount{Count: m.timer.PomodoroCount + 1})

	case "-":
		return m.applyTimer(timer.SetCount{Count: m.timer.PomodoroCount - 1})

	case "p":
		if m.timer.Running() {
			return m, m.overlayStack.Push(overlay.NewPauseDialog())
		}
		return m, nil

	case "e":
		switch m.timer.Phase {
		case timer.PhaseIdle, timer.PhaseSummary:
			return m, nil
		}
		return m, m.overlayStack.Push(overlay.NewConfirmDialog(
			"end", "End Session", "End the session and show the summary?"))

	// Queue navigation
	case "j", "down":
		m.nav.MoveDown(m.tasks)
		return m, nil

	case "k", "up":
		m.nav.MoveUp(m.tasks)
		return m, nil

	case "J":
		return m.reorderSelected(1), nil

	case "K":
		return m.reorderSelected(-1), nil

	// Queue edits
	case "a":
		return m, m.overlayStack.Push(overlay.NewTaskForm())

	case "A":
		task, _ := m.nav.CurrentTask(m.tasks)
		if task == nil {
			m.addToast(ToastWarning, "select a task first", 3*time.Second)
			return m, nil
		}
		return m, m.overlayStack.Push(overlay.NewSubtaskForm(task.ID))

	case "enter":
		task, sub := m.nav.CurrentTask(m.tasks)
		switch {
		case sub != nil:
			return m, m.overlayStack.Push(overlay.EditSubtaskForm(task.ID, *sub))
		case task != nil:
			return m, m.overlayStack.Push(overlay.EditTaskForm(*task))
		}
		return m, nil

	case "x":
		return m.toggleSelected(), nil

	case "d":
		row, ok := m.nav.Current(m.tasks)
		if !ok {
			return m, nil
		}
		m.pendingDelete = row.ID()
		return m, m.overlayStack.Push(overlay.NewConfirmDialog(
			"delete", "Delete", "Delete the selected item? Subtasks go with it."))

	case "S":
		return m.splitSelected(), nil

	// Schedule, settings, session
	case "b":
		return m, m.overlayStack.Push(overlay.NewBreakEditor(m.schedule.Breaks))

	case "o":
		return m, m.overlayStack.Push(overlay.NewSettingsOverlay(m.settings))

	case "g":
		return m, m.overlayStack.Push(overlay.NewGroupDialog(m.group))

	case "?":
		return m, m.overlayStack.Push(overlay.NewHelpOverlay())
	}

	return m, nil
}

// applyTimer runs one command through the state machine and executes the
// returned effects.
func (m Model) applyTimer(cmd timer.Command) (tea.Model, tea.Cmd) {
	prevCount := m.timer.PomodoroCount
	next, effects := timer.Step(m.timer, m.settings, cmd)
	m.timer = next

	var cmds []tea.Cmd
	for _, eff := range effects {
		m, cmds = m.runEffect(eff, cmds)
	}

	if m.timer.PomodoroCount != prevCount {
		m.rebuildTimeline()
	}

	// Mirror deliberate transitions to the group, not the tick stream.
	if _, isTick := cmd.(timer.Tick); !isTick && m.group.Active() {
		cmds = append(cmds, m.mirrorCmd())
	}
	return m, tea.Batch(cmds...)
}

// runEffect executes one effect from the timer core.
func (m Model) runEffect(eff timer.Effect, cmds []tea.Cmd) (Model, []tea.Cmd) {
	switch eff := eff.(type) {
	case timer.AppendLog:
		entry := eff.Entry
		if entry.Type == domain.EntryWork {
			// The machine cannot see the queue; attach the head unit.
			if unit, ok := m.currentUnit(); ok {
				entry.Task = unit.Label
				entry.Category = unit.Category
				entry.Color = unit.Color
			}
		}
		m.appendEntry(entry)

	case timer.SaveCount:
		if err := m.store.SaveCount(eff.Count); err != nil {
			m.addToast(ToastError, err.Error(), 5*time.Second)
		}

	case timer.PlayAlarm:
		cmds = append(cmds, m.playAlarmCmd(eff.Sound))

	case timer.AdvanceQueue:
		m = m.advanceQueue()

	case timer.GraceOpened:
		cmds = append(cmds, m.overlayStack.Push(overlay.NewGraceDialog(eff.Context, 0)))

	case timer.ShowSummary:
		cmds = append(cmds, m.overlayStack.Push(overlay.NewSummaryOverlay(eff.Stats)))

	case timer.ResetTasks:
		m.tasks = resetTasks(m.tasks)
		m.saveTasks()
		m.rebuildTimeline()
	}
	return m, cmds
}

// advanceQueue credits a finished interval to the queue head and logs any
// completions it caused.
func (m Model) advanceQueue() Model {
	tasks, done := domain.AdvanceFirstUnit(m.tasks)
	m.tasks = tasks
	m.saveTasks()
	m.rebuildTimeline()
	if done == nil {
		return m
	}
	if done.ItemChecked {
		now := time.Now()
		entry := domain.NewLogEntry(domain.EntryTaskComplete, now, now)
		entry.Task = done.Unit.Label
		entry.Category = done.Unit.Category
		entry.Color = done.Unit.Color
		m.appendEntry(entry)
		m.addToast(ToastSuccess, fmt.Sprintf("Done: %s", done.Unit.Label), 4*time.Second)
	}
	if done.TaskCompleted && done.Unit.SubtaskID != "" {
		now := time.Now()
		entry := domain.NewLogEntry(domain.EntryTaskComplete, now, now)
		entry.Task = done.TaskName
		entry.Category = done.Unit.Category
		entry.Color = done.Unit.Color
		m.appendEntry(entry)
		m.addToast(ToastSuccess, fmt.Sprintf("Task complete: %s", done.TaskName), 4*time.Second)
	}
	return m
}

// handleConfirmed dispatches an answered confirmation dialog.
func (m Model) handleConfirmed(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "end":
		return m.applyTimer(timer.EndSession{
			Entries: m.entries,
			Tasks:   m.tasks,
			Now:     time.Now(),
		})

	case "delete":
		id := m.pendingDelete
		m.pendingDelete = ""
		if id == "" {
			return m, nil
		}
		tasks, err := domain.RemoveTask(m.tasks, id)
		if err != nil {
			m.addToast(ToastWarning, err.Error(), 3*time.Second)
			return m, nil
		}
		m.tasks = tasks
		m.saveTasks()
		m.rebuildTimeline()
		return m, nil
	}
	return m, nil
}

// handleTaskSubmitted applies a task form result: create or edit, task or
// subtask.
func (m Model) handleTaskSubmitted(msg overlay.TaskSubmittedMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.ParentID != "" && msg.TaskID == "":
		sub := domain.NewSubtask(msg.Name, msg.Estimated)
		tasks, err := domain.AddSubtask(m.tasks, msg.ParentID, sub)
		if err != nil {
			m.addToast(ToastWarning, err.Error(), 3*time.Second)
			return m, nil
		}
		m.tasks = tasks
		m.nav.SelectID(m.tasks, sub.ID)

	case msg.ParentID != "":
		m.tasks = updateSubtask(m.tasks, msg.ParentID, msg.TaskID, msg.Name, msg.Estimated)

	case msg.TaskID == "":
		task := domain.NewTask(msg.Name, msg.Estimated)
		task.Category = msg.Category
		task.Color = msg.Color
		m.tasks = domain.AddTask(m.tasks, task)
		m.nav.SelectID(m.tasks, task.ID)

	default:
		m.tasks = updateTask(m.tasks, msg)
	}

	m.saveTasks()
	m.rebuildTimeline()
	return m, nil
}

// handleGroupResult lands a finished group operation.
func (m Model) handleGroupResult(msg groupResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// peerError: surfaced, local state untouched.
		m.addToast(ToastError, msg.err.Error(), 6*time.Second)
		return m, nil
	}

	switch msg.op {
	case "leave":
		m.group = domain.GroupSession{}
		if err := m.store.ClearGroup(); err != nil {
			m.addToast(ToastError, err.Error(), 5*time.Second)
		}
		m.addToast(ToastInfo, "left group session", 3*time.Second)
		return m, nil

	default:
		m.group = msg.session
		if err := m.store.SaveGroup(m.group); err != nil {
			m.addToast(ToastError, err.Error(), 5*time.Second)
		}
		m.addToast(ToastSuccess,
			fmt.Sprintf("group session %s (%s)", m.group.ID, m.group.Role), 6*time.Second)
		return m, m.mirrorCmd()
	}
}

// groupCmd runs a group-session operation off the update loop.
func (m Model) groupCmd(op, id string) tea.Cmd {
	client := m.groupSync
	session := m.group
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var (
			result domain.GroupSession
			err    error
		)
		switch op {
		case "create":
			result, err = client.Create(ctx)
		case "join":
			result, err = client.Join(ctx, id)
		case "leave":
			err = client.Leave(ctx, session)
		}
		return groupResultMsg{op: op, session: result, err: err}
	}
}

// mirrorCmd publishes the current snapshot to the group, fire and forget.
func (m Model) mirrorCmd() tea.Cmd {
	client := m.groupSync
	session := m.group
	snap := groupsync.Snapshot{
		Phase:     string(m.timer.Phase),
		Mode:      string(m.timer.Mode),
		WorkTime:  m.timer.WorkTime,
		BreakTime: m.timer.BreakTime,
		Pomodoros: m.timer.PomodoroCount,
		Tasks:     domain.CloneTasks(m.tasks),
		SentAt:    time.Now(),
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Mirror(ctx, session, snap); err != nil {
			return peerErrorMsg{err: err}
		}
		return nil
	}
}

// playAlarmCmd rings the alarm off the update loop.
func (m Model) playAlarmCmd(sound string) tea.Cmd {
	notifier := m.alarm
	logger := m.logger
	return func() tea.Msg {
		if err := notifier.Play(sound); err != nil {
			logger.Warn("alarm failed", "error", err)
		}
		return nil
	}
}

// reorderSelected moves the selected row within its sibling list.
func (m Model) reorderSelected(delta int) Model {
	row, ok := m.nav.Current(m.tasks)
	if !ok {
		return m
	}
	if row.IsSubtask() {
		m.tasks = domain.MoveSubtask(m.tasks, row.TaskID, row.SubtaskID, delta)
	} else {
		m.tasks = domain.MoveTask(m.tasks, row.TaskID, delta)
	}
	m.nav.SelectID(m.tasks, row.ID())
	m.saveTasks()
	m.rebuildTimeline()
	return m
}

// toggleSelected checks or unchecks the selected row.
func (m Model) toggleSelected() Model {
	row, ok := m.nav.Current(m.tasks)
	if !ok {
		return m
	}
	var (
		tasks []domain.Task
		err   error
	)
	if row.IsSubtask() {
		tasks, err = domain.ToggleSubtask(m.tasks, row.TaskID, row.SubtaskID)
	} else {
		tasks, err = domain.ToggleTask(m.tasks, row.TaskID)
	}
	if err != nil {
		m.addToast(ToastWarning, err.Error(), 3*time.Second)
		return m
	}
	m.tasks = tasks
	m.saveTasks()
	m.rebuildTimeline()
	return m
}

// splitSelected divides the selected task's remaining estimate in two.
func (m Model) splitSelected() Model {
	row, ok := m.nav.Current(m.tasks)
	if !ok || row.IsSubtask() {
		return m
	}
	tasks, err := domain.SplitTask(m.tasks, row.TaskID)
	if err != nil {
		m.addToast(ToastWarning, err.Error(), 3*time.Second)
		return m
	}
	m.tasks = tasks
	m.saveTasks()
	m.rebuildTimeline()
	return m
}

// appendEntry appends to the log and persists it.
func (m *Model) appendEntry(entry domain.LogEntry) {
	m.entries = append(m.entries, entry)
	if err := m.store.SaveLog(m.entries); err != nil {
		m.addToast(ToastError, err.Error(), 5*time.Second)
	}
}

func (m *Model) saveTasks() {
	if err := m.store.SaveTasks(m.tasks); err != nil {
		m.addToast(ToastError, err.Error(), 5*time.Second)
	}
}

func (m *Model) saveSchedule() {
	if err := m.store.SaveSchedule(m.schedule); err != nil {
		m.addToast(ToastError, err.Error(), 5*time.Second)
	}
}

// rebuildTimeline recomputes the projection from current inputs.
func (m *Model) rebuildTimeline() {
	m.timeline = timeline.Generate(timeline.Input{
		Tasks:         m.tasks,
		Settings:      m.settings,
		Breaks:        m.schedule.Breaks,
		Origin:        m.schedule.StartOn(m.now),
		PomodoroCount: m.timer.PomodoroCount,
	})
}

// scheduleReminders rebuilds the cron entries for the pinned breaks. The
// notify callback crosses goroutines, so it only posts to the channel the
// TEA loop listens on.
func (m *Model) scheduleReminders() {
	ch := m.reminderCh
	m.reminders.Schedule(m.schedule.Breaks, func(b domain.ScheduleBreak) {
		select {
		case ch <- b:
		default:
		}
	})
}

// currentUnit is the queue head: the unit the running interval burns.
func (m Model) currentUnit() (domain.WorkUnit, bool) {
	units := domain.FlattenUnits(m.tasks)
	if len(units) == 0 {
		return domain.WorkUnit{}, false
	}
	return units[0], true
}

// resetTasks clears completion state for a fresh session.
func resetTasks(tasks []domain.Task) []domain.Task {
	out := domain.CloneTasks(tasks)
	for i := range out {
		out[i].Checked = false
		out[i].Completed = 0
		for j := range out[i].Subtasks {
			out[i].Subtasks[j].Checked = false
			out[i].Subtasks[j].Completed = 0
		}
	}
	return out
}

// updateTask applies an edit form to the matching task, preserving the
// fields the form does not carry.
func updateTask(tasks []domain.Task, msg overlay.TaskSubmittedMsg) []domain.Task {
	out := domain.CloneTasks(tasks)
	for i := range out {
		if out[i].ID != msg.TaskID {
			continue
		}
		out[i].Name = msg.Name
		out[i].Category = msg.Category
		out[i].Color = msg.Color
		out[i].Estimated = msg.Estimated
		return out
	}
	return out
}

// updateSubtask applies an edit form to the matching subtask.
func updateSubtask(tasks []domain.Task, parentID, subID, name string, estimated int) []domain.Task {
	out := domain.CloneTasks(tasks)
	for i := range out {
		if out[i].ID != parentID {
			continue
		}
		for j := range out[i].Subtasks {
			if out[i].Subtasks[j].ID == subID {
				out[i].Subtasks[j].Name = name
				out[i].Subtasks[j].Estimated = estimated
			}
		}
		return out
	}
	return out
}

// addToast queues a notification.
func (m *Model) addToast(level ToastLevel, message string, ttl time.Duration) {
	m.toasts = append(m.toasts, Toast{
		Level:   level,
		Message: message,
		Expires: time.Now().Add(ttl),
	})
}

// expireToasts drops toasts past their expiry.
func (m *Model) expireToasts(now time.Time) {
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if t.Expires.After(now) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

// displayState maps the timer phase onto the statusbar badge.
func (m Model) displayState() types.TimerDisplayState {
	switch m.timer.Phase {
	case timer.PhaseRunning:
		if m.timer.Mode == timer.ModeBreak {
			return types.StateBreak
		}
		return types.StateFocus
	case timer.PhaseGrace:
		return types.StateGrace
	case timer.PhaseAllPaused:
		return types.StatePaused
	case timer.PhaseSummary:
		return types.StateSummary
	}
	return types.StateIdle
}

// statusInfo is the right-aligned statusbar text: bank balance, group
// badge, mute marker.
func (m Model) statusInfo() string {
	info := "bank " + domain.FormatClock(m.timer.BreakTime)
	if m.group.Active() {
		info += fmt.Sprintf(" · group %s (%s)", m.group.ID, m.group.Role)
	}
	if m.settings.MuteAlarms {
		info += " · muted"
	}
	return info
}

// View renders the application
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	unitLabel := ""
	if unit, ok := m.currentUnit(); ok {
		unitLabel = unit.Label
	}

	cursor, _ := m.nav.Position(m.tasks)

	timerView := timerpane.Render(m.timer, m.settings, m.focus, unitLabel, m.styles, m.width)
	queueHeight := m.height - lipgloss.Height(timerView) - 8
	queueView := queuepane.Render(m.tasks, cursor, true, m.styles, m.width, queueHeight)
	timelineView := timelinepane.Render(m.timeline, m.now, m.styles, m.width)

	sb := statusbar.New(m.displayState(), m.statusInfo(), m.width, m.styles)

	view := lipgloss.JoinVertical(lipgloss.Left,
		timerView,
		queueView,
		timelineView,
		sb.Render(),
	)

	// If overlay is open, render it on top (centered)
	if !m.overlayStack.IsEmpty() {
		current := m.overlayStack.Current()
		overlayView := current.View()

		overlayWidth, overlayHeight := current.Size()
		title := current.Title()
		if title != "" {
			titleView := m.styles.OverlayTitle.Render(title)
			overlayView = lipgloss.JoinVertical(lipgloss.Left, titleView, overlayView)
		}
		overlayView = m.styles.Overlay.
			Width(overlayWidth).
			Height(overlayHeight).
			Render(overlayView)

		centeredOverlay := lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			lipgloss.Center,
			overlayView,
		)

		view = lipgloss.JoinVertical(lipgloss.Left, view, centeredOverlay)
	}

	// Render toasts in bottom-right corner
	if len(m.toasts) > 0 {
		toastRenderer := toast.New(m.styles)
		toastView := toastRenderer.Render(m.toasts, m.width)
		if toastView != "" {
			view = lipgloss.JoinVertical(lipgloss.Left, view, toastView)
		}
	}

	return view
}
