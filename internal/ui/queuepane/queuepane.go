// Package queuepane renders the task queue with unit progress and the
// selection cursor.
package queuepane

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/valerian/internal/domain"
	"github.com/riordanpawley/valerian/internal/services/navigation"
	"github.com/riordanpawley/valerian/internal/ui/styles"
)

// maxDots is the widest unit-progress row drawn as dots; longer estimates
// fall back to a numeric ratio.
const maxDots = 8

// Render renders the queue pane. cursor is the selected row index; pass
// focused=false to render without a cursor marker (timer square focused).
func Render(tasks []domain.Task, cursor int, focused bool, s *styles.Styles, width, height int) string {
	rows := navigation.Rows(tasks)

	header := renderHeader(tasks, s, width)

	visible := height - 2 // header + possible overflow line
	if visible < 1 {
		visible = 1
	}
	start := 0
	if focused && cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(rows) {
		end = len(rows)
	}

	var lines []string
	for i := start; i < end; i++ {
		lines = append(lines, renderRow(tasks, rows[i], focused && i == cursor, s, width))
	}
	if len(rows) == 0 {
		lines = append(lines, s.QueueCount.Render("  nothing queued · a adds a task"))
	}
	if end < len(rows) {
		lines = append(lines, s.QueueCount.Render(fmt.Sprintf("  … %d more", len(rows)-end)))
	}

	body := strings.Join(lines, "\n")
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func renderHeader(tasks []domain.Task, s *styles.Styles, width int) string {
	headerText := "─ Queue "
	count := fmt.Sprintf(" %d/%d done · %d units ",
		domain.CountChecked(tasks), len(tasks), domain.TotalUnits(tasks))
	remaining := width - lipgloss.Width(headerText) - lipgloss.Width(count)
	if remaining > 0 {
		headerText += strings.Repeat("─", remaining)
	}
	return s.PaneTitle.Render(headerText) + s.QueueCount.Render(count)
}

func renderRow(tasks []domain.Task, row navigation.Row, isCursor bool, s *styles.Styles, width int) string {
	task, sub := resolve(tasks, row)
	if task == nil {
		return ""
	}

	indent := ""
	name := task.Name
	checked := task.Checked
	progress := taskProgress(*task, s)
	category := task.Category
	if sub != nil {
		indent = "  "
		name = sub.Name
		checked = sub.Checked
		progress = unitDots(sub.Completed, sub.Estimated, sub.Checked, s)
		category = ""
	}

	box := "[ ]"
	if checked {
		box = "[x]"
	}

	cursorMark := "  "
	if isCursor {
		cursorMark = "▶ "
	}

	nameStyle := s.QueueItem
	if checked {
		nameStyle = s.QueueItemChecked
	} else if isCursor {
		nameStyle = s.QueueItemActive
	}

	maxName := width - len(indent) - 14
	if maxName < 8 {
		maxName = 8
	}
	if len(name) > maxName {
		name = name[:maxName-1] + "…"
	}

	parts := []string{cursorMark, indent, box, " ", nameStyle.Render(name), " ", progress}
	if category != "" {
		parts = append(parts, " ", s.CategoryBadge.Render(category))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}

// taskProgress shows a parent's own unit dots, or its subtask tally when
// subtasks drive the estimate.
func taskProgress(t domain.Task, s *styles.Styles) string {
	if len(t.Subtasks) == 0 {
		return unitDots(t.Completed, t.Estimated, t.Checked, s)
	}
	done := 0
	for _, st := range t.Subtasks {
		if st.Checked {
			done++
		}
	}
	return s.QueueCount.Render(fmt.Sprintf("%d/%d sub", done, len(t.Subtasks)))
}

// unitDots renders completed work intervals against the estimate.
func unitDots(completed, estimated int, checked bool, s *styles.Styles) string {
	if estimated < 1 {
		estimated = 1
	}
	if completed > estimated {
		completed = estimated
	}
	if checked {
		completed = estimated
	}
	if estimated > maxDots {
		return s.QueueCount.Render(fmt.Sprintf("%d/%d", completed, estimated))
	}
	var b strings.Builder
	for i := 0; i < estimated; i++ {
		if i < completed {
			b.WriteString(s.PomoDot.Render("●"))
		} else {
			b.WriteString(s.PomoDotDim.Render("○"))
		}
	}
	return b.String()
}

func resolve(tasks []domain.Task, row navigation.Row) (*domain.Task, *domain.Subtask) {
	for i := range tasks {
		if tasks[i].ID != row.TaskID {
			continue
		}
		if row.SubtaskID == "" {
			return &tasks[i], nil
		}
		for j := range tasks[i].Subtasks {
			if tasks[i].Subtasks[j].ID == row.SubtaskID {
				return &tasks[i], &tasks[i].Subtasks[j]
			}
		}
	}
	return nil, nil
}
