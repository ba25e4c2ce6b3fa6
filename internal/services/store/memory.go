package store

import "github.com/riordanpawley/valerian/internal/domain"

// Memory is an in-process Persistence for tests and ephemeral runs. Saves
// always succeed; loads fall back exactly like the disk store.
type Memory struct {
	settings *domain.Settings
	tasks    []domain.Task
	entries  []domain.LogEntry
	count    *int
	schedule *domain.Schedule
	group    domain.GroupSession
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) LoadSettings() domain.Settings {
	if m.settings == nil {
		return domain.DefaultSettings()
	}
	return m.settings.Normalize()
}

func (m *Memory) SaveSettings(v domain.Settings) error {
	m.settings = &v
	return nil
}

func (m *Memory) LoadTasks() []domain.Task {
	return domain.CloneTasks(m.tasks)
}

func (m *Memory) SaveTasks(v []domain.Task) error {
	m.tasks = domain.CloneTasks(v)
	return nil
}

func (m *Memory) LoadLog() []domain.LogEntry {
	out := make([]domain.LogEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *Memory) SaveLog(v []domain.LogEntry) error {
	m.entries = make([]domain.LogEntry, len(v))
	copy(m.entries, v)
	return nil
}

func (m *Memory) ClearLog() error {
	m.entries = nil
	return nil
}

func (m *Memory) LoadCount() int {
	if m.count == nil || *m.count < 0 {
		return 0
	}
	return *m.count
}

func (m *Memory) SaveCount(v int) error {
	m.count = &v
	return nil
}

func (m *Memory) LoadSchedule() domain.Schedule {
	if m.schedule == nil {
		return domain.DefaultSchedule()
	}
	return m.schedule.Normalize()
}

func (m *Memory) SaveSchedule(v domain.Schedule) error {
	m.schedule = &v
	return nil
}

func (m *Memory) LoadGroup() domain.GroupSession {
	return m.group
}

func (m *Memory) SaveGroup(v domain.GroupSession) error {
	m.group = v
	return nil
}

func (m *Memory) ClearGroup() error {
	m.group = domain.GroupSession{}
	return nil
}
