package overlay

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/valerian/internal/domain"
	"github.com/riordanpawley/valerian/internal/ui/styles"
)

// TaskSubmittedMsg carries the confirmed task form values.
type TaskSubmittedMsg struct {
	TaskID    string // empty when creating
	ParentID  string // set when the form targets a subtask
	Name      string
	Category  string
	Color     string
	Estimated int
}

const (
	taskFocusName = iota
	taskFocusCategory
	taskFocusEstimate
	taskFocusColor
	taskFocusSubmit
	taskFocusCount
)

// TaskForm creates or edits a task or subtask. Subtask forms skip the
// category and color fields; they inherit both from the parent.
type TaskForm struct {
	taskID   string
	parentID string
	subtask  bool

	name     textinput.Model
	category textinput.Model
	estimate textinput.Model
	colorIdx int

	// estimate kept when the typed value does not parse
	fallback int

	focus  int
	styles *Styles
}

// NewTaskForm creates an empty form for a new top-level task.
func NewTaskForm() *TaskForm {
	return newTaskForm("", "", "", "", "", 1, false)
}

// NewSubtaskForm creates an empty form for a new subtask of parent.
func NewSubtaskForm(parentID string) *TaskForm {
	return newTaskForm("", parentID, "", "", "", 1, true)
}

// EditTaskForm creates a form prefilled from an existing task.
func EditTaskForm(task domain.Task) *TaskForm {
	return newTaskForm(task.ID, "", task.Name, task.Category, task.Color, task.Estimated, false)
}

// EditSubtaskForm creates a form prefilled from an existing subtask.
func EditSubtaskForm(parentID string, sub domain.Subtask) *TaskForm {
	return newTaskForm(sub.ID, parentID, sub.Name, "", "", sub.Estimated, true)
}

func newTaskForm(taskID, parentID, name, category, color string, estimated int, subtask bool) *TaskForm {
	ni := textinput.New()
	ni.Placeholder = "Task name..."
	ni.Focus()
	ni.CharLimit = 120
	ni.Width = 40
	ni.SetValue(name)

	ci := textinput.New()
	ci.Placeholder = "Category (optional)..."
	ci.CharLimit = 40
	ci.Width = 40
	ci.SetValue(category)

	ei := textinput.New()
	ei.Placeholder = "1"
	ei.CharLimit = 3
	ei.Width = 6
	if estimated < 1 {
		estimated = 1
	}
	ei.SetValue(strconv.Itoa(estimated))

	colorIdx := 0
	for i, n := range styles.TaskColorNames {
		if n == color {
			colorIdx = i
			break
		}
	}

	return &TaskForm{
		taskID:   taskID,
		parentID: parentID,
		subtask:  subtask,
		name:     ni,
		category: ci,
		estimate: ei,
		colorIdx: colorIdx,
		fallback: estimated,
		focus:    taskFocusName,
		styles:   New(),
	}
}

// Init initializes the form
func (f *TaskForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *TaskForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f, func() tea.Msg { return CloseOverlayMsg{} }

		case "tab":
			f.moveFocus(1)
			return f, nil

		case "shift+tab":
			f.moveFocus(-1)
			return f, nil

		case "enter":
			if f.focus == taskFocusSubmit {
				return f, f.submit()
			}
			f.moveFocus(1)
			return f, nil
		}

		if f.focus == taskFocusColor {
			switch msg.String() {
			case "h", "left":
				f.colorIdx = (f.colorIdx - 1 + len(styles.TaskColorNames)) % len(styles.TaskColorNames)
				return f, nil
			case "l", "right", " ":
				f.colorIdx = (f.colorIdx + 1) % len(styles.TaskColorNames)
				return f, nil
			}
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case taskFocusName:
		f.name, cmd = f.name.Update(msg)
	case taskFocusCategory:
		f.category, cmd = f.category.Update(msg)
	case taskFocusEstimate:
		f.estimate, cmd = f.estimate.Update(msg)
	}
	return f, cmd
}

// View renders the form
func (f *TaskForm) View() string {
	var b strings.Builder

	b.WriteString(f.fieldLabel("Name", taskFocusName))
	b.WriteString("  ")
	b.WriteString(f.name.View())
	b.WriteString("\n\n")

	if !f.subtask {
		b.WriteString(f.fieldLabel("Category", taskFocusCategory))
		b.WriteString("  ")
		b.WriteString(f.category.View())
		b.WriteString("\n\n")
	}

	b.WriteString(f.fieldLabel("Pomodoros", taskFocusEstimate))
	b.WriteString("  ")
	b.WriteString(f.estimate.View())
	b.WriteString("\n\n")

	if !f.subtask {
		b.WriteString(f.fieldLabel("Color", taskFocusColor))
		b.WriteString("  ")
		b.WriteString(f.renderColorSelector())
		b.WriteString("\n\n")
	}

	b.WriteString(f.styles.Separator.Render(strings.Repeat("─", 50)))
	b.WriteString("\n\n")

	submitStyle := f.styles.MenuItem
	if f.focus == taskFocusSubmit {
		submitStyle = f.styles.MenuItemActive
	}
	label := "[ Save Task ]"
	if f.taskID == "" {
		label = "[ Add Task ]"
	}
	b.WriteString(submitStyle.Render(label))
	b.WriteString("\n\n")

	b.WriteString(f.styles.Footer.Render("Tab: next field • Enter: confirm • Esc: cancel"))

	return b.String()
}

// Title returns the form title
func (f *TaskForm) Title() string {
	switch {
	case f.subtask && f.taskID == "":
		return "New Subtask"
	case f.subtask:
		return "Edit Subtask"
	case f.taskID == "":
		return "New Task"
	default:
		return "Edit Task"
	}
}

// Size returns the form dimensions
func (f *TaskForm) Size() (width, height int) {
	if f.subtask {
		return 58, 13
	}
	return 58, 18
}

func (f *TaskForm) fieldLabel(label string, focus int) string {
	if f.focus == focus {
		return f.styles.MenuItemActive.Render(label + ":")
	}
	return f.styles.MenuItem.Render(label + ":")
}

func (f *TaskForm) renderColorSelector() string {
	var parts []string
	for i, name := range styles.TaskColorNames {
		marker := "  "
		if i == f.colorIdx {
			marker = "● "
		}
		swatch := f.styles.MenuItem.Foreground(styles.TaskColor(name))
		parts = append(parts, swatch.Render(marker+name))
	}
	return strings.Join(parts[:5], " ") + "\n           " + strings.Join(parts[5:], " ")
}

// moveFocus advances focus, skipping fields the subtask form hides.
func (f *TaskForm) moveFocus(delta int) {
	for {
		f.focus = (f.focus + delta + taskFocusCount) % taskFocusCount
		if f.subtask && (f.focus == taskFocusCategory || f.focus == taskFocusColor) {
			continue
		}
		break
	}

	f.name.Blur()
	f.category.Blur()
	f.estimate.Blur()
	switch f.focus {
	case taskFocusName:
		f.name.Focus()
	case taskFocusCategory:
		f.category.Focus()
	case taskFocusEstimate:
		f.estimate.Focus()
	}
}

// submit validates and emits the form. A blank name keeps the form open;
// an unparseable estimate falls back to the previous value.
func (f *TaskForm) submit() tea.Cmd {
	name := strings.TrimSpace(f.name.Value())
	if name == "" {
		return nil
	}

	estimated := f.fallback
	if n, err := strconv.Atoi(strings.TrimSpace(f.estimate.Value())); err == nil {
		estimated = n
	}
	if estimated < 1 {
		estimated = 1
	}

	msg := TaskSubmittedMsg{
		TaskID:    f.taskID,
		ParentID:  f.parentID,
		Name:      name,
		Category:  strings.TrimSpace(f.category.Value()),
		Color:     styles.TaskColorNames[f.colorIdx],
		Estimated: estimated,
	}
	return tea.Batch(
		func() tea.Msg { return msg },
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}
