package queuepane

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/valerian/internal/domain"
	"github.com/riordanpawley/valerian/internal/ui/styles"
)

func testQueue() []domain.Task {
	return []domain.Task{
		{ID: "t1", Name: "Write report", Category: "writing", Estimated: 3, Completed: 1},
		{
			ID:   "t2",
			Name: "Refactor",
			Subtasks: []domain.Subtask{
				{ID: "s1", Name: "Extract helpers", Estimated: 2},
				{ID: "s2", Name: "Rename types", Estimated: 1, Checked: true},
			},
		},
	}
}

func TestRender_RowsAndProgress(t *testing.T) {
	s := styles.New()

	out := ansi.Strip(Render(testQueue(), 0, true, s, 60, 12))

	if !strings.Contains(out, "Write report") {
		t.Fatalf("queue should list the first task, got:\n%s", out)
	}
	if !strings.Contains(out, "▶") {
		t.Errorf("focused pane should mark the cursor row, got:\n%s", out)
	}
	// One of three units complete.
	if !strings.Contains(out, "●○○") {
		t.Errorf("unit dots should show 1/3 progress, got:\n%s", out)
	}
	// The parent with subtasks shows the subtask tally instead of dots.
	if !strings.Contains(out, "1/2 sub") {
		t.Errorf("parent row should tally subtasks, got:\n%s", out)
	}
	if !strings.Contains(out, "  [ ] Extract helpers") {
		t.Errorf("subtask rows should be indented, got:\n%s", out)
	}
	if !strings.Contains(out, "[x] Rename types") {
		t.Errorf("checked subtask should show a filled box, got:\n%s", out)
	}
	if !strings.Contains(out, "writing") {
		t.Errorf("category badge missing, got:\n%s", out)
	}
}

func TestRender_HeaderCounts(t *testing.T) {
	s := styles.New()
	tasks := []domain.Task{
		{ID: "a", Name: "One", Estimated: 2, Checked: true},
		{ID: "b", Name: "Two", Estimated: 3},
	}

	out := ansi.Strip(Render(tasks, 0, false, s, 60, 12))

	if !strings.Contains(out, "1/2 done") {
		t.Errorf("header should count checked tasks, got:\n%s", out)
	}
	if !strings.Contains(out, "3 units") {
		t.Errorf("header should total remaining units, got:\n%s", out)
	}
}

func TestRender_EmptyQueue(t *testing.T) {
	s := styles.New()

	out := ansi.Strip(Render(nil, 0, true, s, 60, 12))

	if !strings.Contains(out, "nothing queued") {
		t.Errorf("empty queue should invite adding a task, got:\n%s", out)
	}
}

func TestRender_UnfocusedHidesCursor(t *testing.T) {
	s := styles.New()

	out := ansi.Strip(Render(testQueue(), 0, false, s, 60, 12))

	if strings.Contains(out, "▶") {
		t.Errorf("unfocused pane should not draw a cursor, got:\n%s", out)
	}
}

func TestRender_ScrollKeepsCursorVisible(t *testing.T) {
	s := styles.New()
	var tasks []domain.Task
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		tasks = append(tasks, domain.Task{ID: name, Name: "Task " + name, Estimated: 1})
	}

	out := ansi.Strip(Render(tasks, 5, true, s, 60, 5))

	if !strings.Contains(out, "Task F") {
		t.Errorf("the cursor row must stay visible, got:\n%s", out)
	}
	if strings.Contains(out, "Task A") {
		t.Errorf("rows above the window should scroll away, got:\n%s", out)
	}
}

func TestUnitDots_LargeEstimateFallsBackToRatio(t *testing.T) {
	s := styles.New()

	out := ansi.Strip(unitDots(4, 12, false, s))

	if out != "4/12" {
		t.Errorf("unitDots(4, 12) = %q, want ratio form", out)
	}
}
