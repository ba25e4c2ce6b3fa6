package overlay

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/valerian/internal/domain"
)

func sampleStats() domain.SessionStats {
	return domain.SessionStats{
		WorkSeconds:    7500,
		BreakSeconds:   1500,
		Pomodoros:      5,
		TasksCompleted: 3,
		ByCategory: map[string]int{
			"writing": 6000,
			"email":   1500,
		},
	}
}

func TestSummaryOverlay_View(t *testing.T) {
	o := NewSummaryOverlay(sampleStats())

	out := ansi.Strip(o.View())

	for _, want := range []string{"Focused", "2h 5m", "Rested", "25m", "Pomodoros", "5", "Tasks done", "3", "writing", "1h 40m", "email"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary should contain %q, got:\n%s", want, out)
		}
	}
}

func TestSummaryOverlay_CategoriesLargestFirst(t *testing.T) {
	o := NewSummaryOverlay(sampleStats())

	out := ansi.Strip(o.View())
	if strings.Index(out, "writing") > strings.Index(out, "email") {
		t.Errorf("largest category should render first, got:\n%s", out)
	}
}

func TestSummaryOverlay_NoCategorySection(t *testing.T) {
	o := NewSummaryOverlay(domain.SessionStats{Pomodoros: 1})

	out := ansi.Strip(o.View())
	if strings.Contains(out, "By category") {
		t.Errorf("empty category split should omit the section, got:\n%s", out)
	}
}

func TestSummaryOverlay_CloseAnnounces(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyEscape},
		{Type: tea.KeySpace},
		keyRunes("q"),
	}

	for _, key := range keys {
		o := NewSummaryOverlay(sampleStats())

		_, cmd := o.Update(key)
		msgs := drain(t, cmd)

		found := false
		for _, m := range msgs {
			if _, ok := m.(SummaryClosedMsg); ok {
				found = true
			}
		}
		if !found {
			t.Errorf("%v should announce the close", key)
		}
		if !containsClose(msgs) {
			t.Errorf("%v should close the overlay", key)
		}
	}
}
