package store

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/valerian/internal/domain"
)

func testStore(t *testing.T) (Persistence, string) {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	p, err := Load(PathConfig(dir), logger)
	require.NoError(t, err)
	return p, dir
}

func TestLoad_EmptyDirectoryFallsBackToDefaults(t *testing.T) {
	p, _ := testStore(t)

	assert.Equal(t, domain.DefaultSettings(), p.LoadSettings())
	assert.Empty(t, p.LoadTasks())
	assert.Empty(t, p.LoadLog())
	assert.Equal(t, 0, p.LoadCount())
	assert.Equal(t, domain.DefaultSchedule(), p.LoadSchedule())
	assert.False(t, p.LoadGroup().Active())
}

func TestStore_RoundTrip(t *testing.T) {
	p, dir := testStore(t)

	settings := domain.DefaultSettings()
	settings.WorkDuration = 3000
	settings.MuteAlarms = true
	require.NoError(t, p.SaveSettings(settings))

	tasks := []domain.Task{
		{ID: "a", Name: "Draft", Estimated: 3, Completed: 1},
		{ID: "b", Name: "Ship", Subtasks: []domain.Subtask{{ID: "s", Name: "tag", Estimated: 1}}},
	}
	require.NoError(t, p.SaveTasks(tasks))

	entries := []domain.LogEntry{
		{ID: "e1", Type: domain.EntryWork, Start: time.Now().UTC().Truncate(time.Second), Duration: 1500},
	}
	require.NoError(t, p.SaveLog(entries))
	require.NoError(t, p.SaveCount(4))

	schedule := domain.Schedule{
		StartHour: 9,
		Breaks:    []domain.ScheduleBreak{{ID: "l", Label: "Lunch", StartTime: "12:00", Duration: 30}},
	}
	require.NoError(t, p.SaveSchedule(schedule))
	require.NoError(t, p.SaveGroup(domain.GroupSession{ID: "g1", Role: domain.RoleHost}))

	// Reopen to prove everything went to disk, not a cache.
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	reopened, err := Load(PathConfig(dir), logger)
	require.NoError(t, err)

	assert.Equal(t, settings, reopened.LoadSettings())
	assert.Equal(t, tasks, reopened.LoadTasks())
	assert.Equal(t, entries, reopened.LoadLog())
	assert.Equal(t, 4, reopened.LoadCount())
	assert.Equal(t, schedule, reopened.LoadSchedule())
	assert.Equal(t, domain.RoleHost, reopened.LoadGroup().Role)
}

func TestStore_CorruptBucketFallsBack(t *testing.T) {
	p, dir := testStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tasks"), []byte("42"), 0o644))

	assert.Equal(t, domain.DefaultSettings(), p.LoadSettings(),
		"corrupt settings should fall back to defaults")
	assert.Empty(t, p.LoadTasks(),
		"corrupt tasks should fall back to an empty queue")
}

func TestStore_NormalizesOnLoad(t *testing.T) {
	p, dir := testStore(t)

	// Bypass Save so invalid values land on disk as a bad edit would leave
	// them.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings"),
		[]byte(`{"work_duration":-10,"short_break_duration":300,"long_break_duration":900,"long_break_interval":4,"alarm_sound":"chime"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "schedule"),
		[]byte(`{"start_hour":77,"breaks":[{"id":"x","label":"Bad","start_time":"99:00","duration":30}]}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pomodoro"), []byte(`-3`), 0o644))

	assert.Equal(t, domain.DefaultWorkDuration, p.LoadSettings().WorkDuration)
	sched := p.LoadSchedule()
	assert.Equal(t, 8, sched.StartHour)
	assert.Empty(t, sched.Breaks, "unparseable breaks should be dropped on load")
	assert.Equal(t, 0, p.LoadCount(), "negative count should clamp to zero")
}

func TestStore_ClearLog(t *testing.T) {
	p, _ := testStore(t)

	require.NoError(t, p.ClearLog(), "clearing an absent log should succeed")

	require.NoError(t, p.SaveLog([]domain.LogEntry{{ID: "e1", Type: domain.EntryBreak}}))
	require.NoError(t, p.ClearLog())
	assert.Empty(t, p.LoadLog())
}

func TestStore_ClearGroup(t *testing.T) {
	p, _ := testStore(t)

	require.NoError(t, p.SaveGroup(domain.GroupSession{ID: "g1", Role: domain.RoleMember}))
	require.NoError(t, p.ClearGroup())
	assert.False(t, p.LoadGroup().Active())
}

func TestMemory_BehavesLikeDiskStore(t *testing.T) {
	m := NewMemory()

	assert.Equal(t, domain.DefaultSettings(), m.LoadSettings())
	assert.Equal(t, 0, m.LoadCount())

	require.NoError(t, m.SaveTasks([]domain.Task{{ID: "a", Name: "Draft"}}))
	tasks := m.LoadTasks()
	tasks[0].Name = "mutated"
	assert.Equal(t, "Draft", m.LoadTasks()[0].Name,
		"loads should hand out copies, not aliases")
}
