package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/valerian/internal/domain"
)

// SettingType represents the type of a setting row
type SettingType int

const (
	// SettingToggle is a boolean on/off setting (Space/Enter to toggle)
	SettingToggle SettingType = iota
	// SettingChoice is a multiple-choice setting (Left/Right to cycle)
	SettingChoice
	// SettingNumber is a numeric setting (Left/Right to adjust)
	SettingNumber
	// SettingSeparator is a visual separator (not selectable)
	SettingSeparator
)

// SettingsChangedMsg carries the full settings value after any edit. The
// app persists on every change, so closing the overlay loses nothing.
type SettingsChangedMsg struct {
	Settings domain.Settings
}

type settingRow struct {
	key   string
	label string
	typ   SettingType
}

// settingsRows is the fixed menu layout. Duration rows edit in whole
// minutes even though settings store seconds.
var settingsRows = []settingRow{
	{key: "work", label: "Focus length", typ: SettingNumber},
	{key: "short", label: "Short break", typ: SettingNumber},
	{key: "long", label: "Long break", typ: SettingNumber},
	{key: "interval", label: "Long break every", typ: SettingNumber},
	{key: "", label: "─────────────────────────", typ: SettingSeparator},
	{key: "sound", label: "Alarm sound", typ: SettingChoice},
	{key: "mute", label: "Mute alarms", typ: SettingToggle},
	{key: "seconds", label: "Show seconds", typ: SettingToggle},
}

// SettingsOverlay edits the timer configuration in place. Every change is
// announced immediately; there is no save step.
type SettingsOverlay struct {
	settings domain.Settings
	cursor   int
	styles   *Styles
}

// NewSettingsOverlay creates the settings menu over the current values.
func NewSettingsOverlay(settings domain.Settings) *SettingsOverlay {
	m := &SettingsOverlay{
		settings: settings,
		styles:   New(),
	}
	m.moveCursorToFirstSelectable()
	return m
}

// Init initializes the overlay
func (m *SettingsOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *SettingsOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "o":
			return m, func() tea.Msg { return CloseOverlayMsg{} }

		case "j", "down":
			m.moveCursor(1)
			return m, nil

		case "k", "up":
			m.moveCursor(-1)
			return m, nil

		case "h", "left":
			return m, m.adjust(-1)

		case "l", "right":
			return m, m.adjust(1)

		case " ", "enter":
			return m, m.activate()
		}
	}

	return m, nil
}

// View renders the settings menu
func (m *SettingsOverlay) View() string {
	var b strings.Builder

	for i, row := range settingsRows {
		if row.typ == SettingSeparator {
			b.WriteString(m.styles.Separator.Render(row.label))
			b.WriteString("\n")
			continue
		}

		style := m.styles.MenuItem
		if i == m.cursor {
			style = m.styles.MenuItemActive
		}

		var value string
		switch row.typ {
		case SettingToggle:
			value = "[off]"
			if m.boolValue(row.key) {
				value = "[on]"
			}
		case SettingChoice:
			value = "<" + m.settings.AlarmSound + ">"
		case SettingNumber:
			value = m.numberLabel(row.key)
		}

		line := fmt.Sprintf("%-18s %s", row.label, value)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("j/k: navigate • h/l: adjust • space: toggle • esc: close"))

	return b.String()
}

// Title returns the overlay title
func (m *SettingsOverlay) Title() string {
	return "Settings"
}

// Size returns the overlay dimensions
func (m *SettingsOverlay) Size() (width, height int) {
	return 46, len(settingsRows) + 6
}

// Settings returns the current edited value.
func (m *SettingsOverlay) Settings() domain.Settings {
	return m.settings
}

// moveCursor steps to the next selectable row in the given direction.
func (m *SettingsOverlay) moveCursor(delta int) {
	n := len(settingsRows)
	for i := 1; i <= n; i++ {
		next := (m.cursor + delta*i + n*i) % n
		if settingsRows[next].typ != SettingSeparator {
			m.cursor = next
			return
		}
	}
}

func (m *SettingsOverlay) moveCursorToFirstSelectable() {
	for i, row := range settingsRows {
		if row.typ != SettingSeparator {
			m.cursor = i
			return
		}
	}
}

// adjust shifts the current row's value: numbers step by one minute or one
// unit, choices cycle, toggles flip.
func (m *SettingsOverlay) adjust(delta int) tea.Cmd {
	row := settingsRows[m.cursor]
	switch row.typ {
	case SettingNumber:
		m.adjustNumber(row.key, delta)
	case SettingChoice:
		m.cycleSound(delta)
	case SettingToggle:
		m.toggle(row.key)
	default:
		return nil
	}
	return m.changed()
}

// activate handles space/enter: toggles flip, everything else steps up.
func (m *SettingsOverlay) activate() tea.Cmd {
	row := settingsRows[m.cursor]
	switch row.typ {
	case SettingToggle:
		m.toggle(row.key)
		return m.changed()
	case SettingChoice, SettingNumber:
		return m.adjust(1)
	default:
		return nil
	}
}

func (m *SettingsOverlay) adjustNumber(key string, delta int) {
	clampMinutes := func(seconds, deltaMin int) int {
		min := seconds/60 + deltaMin
		if min < 1 {
			min = 1
		}
		if min > 180 {
			min = 180
		}
		return min * 60
	}

	switch key {
	case "work":
		m.settings.WorkDuration = clampMinutes(m.settings.WorkDuration, delta)
	case "short":
		m.settings.ShortBreakDuration = clampMinutes(m.settings.ShortBreakDuration, delta)
	case "long":
		m.settings.LongBreakDuration = clampMinutes(m.settings.LongBreakDuration, delta)
	case "interval":
		n := m.settings.LongBreakInterval + delta
		if n < 1 {
			n = 1
		}
		if n > 12 {
			n = 12
		}
		m.settings.LongBreakInterval = n
	}
}

func (m *SettingsOverlay) cycleSound(delta int) {
	idx := 0
	for i, s := range domain.AlarmSounds {
		if s == m.settings.AlarmSound {
			idx = i
			break
		}
	}
	n := len(domain.AlarmSounds)
	m.settings.AlarmSound = domain.AlarmSounds[(idx+delta+n)%n]
}

func (m *SettingsOverlay) toggle(key string) {
	switch key {
	case "mute":
		m.settings.MuteAlarms = !m.settings.MuteAlarms
	case "seconds":
		m.settings.ShowSeconds = !m.settings.ShowSeconds
	}
}

func (m *SettingsOverlay) boolValue(key string) bool {
	switch key {
	case "mute":
		return m.settings.MuteAlarms
	case "seconds":
		return m.settings.ShowSeconds
	}
	return false
}

func (m *SettingsOverlay) numberLabel(key string) string {
	switch key {
	case "work":
		return domain.FormatMinutes(m.settings.WorkDuration)
	case "short":
		return domain.FormatMinutes(m.settings.ShortBreakDuration)
	case "long":
		return domain.FormatMinutes(m.settings.LongBreakDuration)
	case "interval":
		return fmt.Sprintf("%d units", m.settings.LongBreakInterval)
	}
	return ""
}

// changed emits the updated settings for immediate persistence.
func (m *SettingsOverlay) changed() tea.Cmd {
	settings := m.settings
	return func() tea.Msg {
		return SettingsChangedMsg{Settings: settings}
	}
}
