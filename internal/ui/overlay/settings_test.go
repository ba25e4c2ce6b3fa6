package overlay

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/valerian/internal/domain"
)

func settingsChanged(t *testing.T, cmd tea.Cmd) domain.Settings {
	t.Helper()
	for _, m := range drain(t, cmd) {
		if c, ok := m.(SettingsChangedMsg); ok {
			return c.Settings
		}
	}
	t.Fatal("expected SettingsChangedMsg")
	return domain.Settings{}
}

func TestSettingsOverlay_AdjustDuration(t *testing.T) {
	m := NewSettingsOverlay(domain.DefaultSettings())

	// Cursor starts on the focus length row.
	_, cmd := m.Update(keyRunes("l"))
	got := settingsChanged(t, cmd)
	if got.WorkDuration != 26*60 {
		t.Errorf("expected 26m work duration, got %ds", got.WorkDuration)
	}

	_, cmd = m.Update(keyRunes("h"))
	got = settingsChanged(t, cmd)
	if got.WorkDuration != 25*60 {
		t.Errorf("expected 25m work duration, got %ds", got.WorkDuration)
	}
}

func TestSettingsOverlay_DurationClampsAtOneMinute(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.WorkDuration = 60
	m := NewSettingsOverlay(settings)

	_, cmd := m.Update(keyRunes("h"))
	got := settingsChanged(t, cmd)
	if got.WorkDuration != 60 {
		t.Errorf("expected clamp at 1m, got %ds", got.WorkDuration)
	}
}

func TestSettingsOverlay_CursorSkipsSeparator(t *testing.T) {
	m := NewSettingsOverlay(domain.DefaultSettings())

	// Four number rows, then the separator must be skipped.
	for i := 0; i < 4; i++ {
		model, _ := m.Update(keyRunes("j"))
		m = model.(*SettingsOverlay)
	}
	if settingsRows[m.cursor].key != "sound" {
		t.Errorf("expected cursor on sound row, got %q", settingsRows[m.cursor].key)
	}

	model, _ := m.Update(keyRunes("k"))
	m = model.(*SettingsOverlay)
	if settingsRows[m.cursor].key != "interval" {
		t.Errorf("expected cursor back on interval row, got %q", settingsRows[m.cursor].key)
	}
}

func TestSettingsOverlay_CycleAlarmSound(t *testing.T) {
	m := NewSettingsOverlay(domain.DefaultSettings())

	// Move to the sound row.
	for i := 0; i < 4; i++ {
		model, _ := m.Update(keyRunes("j"))
		m = model.(*SettingsOverlay)
	}

	_, cmd := m.Update(keyRunes("l"))
	got := settingsChanged(t, cmd)
	if got.AlarmSound != "bell" {
		t.Errorf("expected bell after chime, got %q", got.AlarmSound)
	}
}

func TestSettingsOverlay_AlarmSoundWrapsBackward(t *testing.T) {
	m := NewSettingsOverlay(domain.DefaultSettings())

	for i := 0; i < 4; i++ {
		model, _ := m.Update(keyRunes("j"))
		m = model.(*SettingsOverlay)
	}

	_, cmd := m.Update(keyRunes("h"))
	got := settingsChanged(t, cmd)
	if got.AlarmSound != "marimba" {
		t.Errorf("expected wrap to marimba, got %q", got.AlarmSound)
	}
}

func TestSettingsOverlay_ToggleMute(t *testing.T) {
	m := NewSettingsOverlay(domain.DefaultSettings())

	// Move to the mute row (past the separator).
	for i := 0; i < 5; i++ {
		model, _ := m.Update(keyRunes("j"))
		m = model.(*SettingsOverlay)
	}
	if settingsRows[m.cursor].key != "mute" {
		t.Fatalf("expected cursor on mute row, got %q", settingsRows[m.cursor].key)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	got := settingsChanged(t, cmd)
	if !got.MuteAlarms {
		t.Error("space should toggle mute on")
	}
}

func TestSettingsOverlay_IntervalClamps(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.LongBreakInterval = 12
	m := NewSettingsOverlay(settings)

	// Move to the interval row.
	for i := 0; i < 3; i++ {
		model, _ := m.Update(keyRunes("j"))
		m = model.(*SettingsOverlay)
	}

	_, cmd := m.Update(keyRunes("l"))
	got := settingsChanged(t, cmd)
	if got.LongBreakInterval != 12 {
		t.Errorf("expected clamp at 12, got %d", got.LongBreakInterval)
	}
}

func TestSettingsOverlay_EscCloses(t *testing.T) {
	m := NewSettingsOverlay(domain.DefaultSettings())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if !containsClose(drain(t, cmd)) {
		t.Error("esc should close the overlay")
	}
}

func TestSettingsOverlay_View(t *testing.T) {
	m := NewSettingsOverlay(domain.DefaultSettings())

	out := ansi.Strip(m.View())

	for _, want := range []string{"Focus length", "25m", "Alarm sound", "<chime>", "Mute alarms", "[off]", "Show seconds", "[on]"} {
		if !strings.Contains(out, want) {
			t.Errorf("view should contain %q, got:\n%s", want, out)
		}
	}
}
