// Package domain contains the core business types for Valerian: timer
// settings, the task queue, the daily schedule, and the session log.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a queue item with a unit estimate. A task may carry subtasks; when
// it does, the subtask estimates drive scheduling and the parent estimate is
// ignored.
type Task struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	Color     string    `json:"color,omitempty"`
	Estimated int       `json:"estimated"`
	Completed int       `json:"completed"`
	Checked   bool      `json:"checked"`
	CreatedAt time.Time `json:"created_at"`
	Subtasks  []Subtask `json:"subtasks,omitempty"`
}

// Subtask is a single-level child of a Task. Subtasks cannot nest.
type Subtask struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Estimated int    `json:"estimated"`
	Completed int    `json:"completed"`
	Checked   bool   `json:"checked"`
}

// WorkUnit is one schedulable atom of work derived from the queue. It is
// never persisted; the queue is flattened fresh on every timeline build.
type WorkUnit struct {
	TaskID    string
	SubtaskID string
	Label     string
	Color     string
	Category  string
}

// UnitCompletion describes the queue movement caused by one finished work
// interval.
type UnitCompletion struct {
	Unit          WorkUnit
	ItemChecked   bool
	TaskCompleted bool
	TaskName      string
}

// NewTask builds a queue task with a fresh ID.
func NewTask(name string, estimated int) Task {
	return Task{
		ID:        uuid.NewString(),
		Name:      name,
		Estimated: estimated,
		CreatedAt: time.Now().UTC(),
	}
}

// NewSubtask builds a subtask with a fresh ID.
func NewSubtask(name string, estimated int) Subtask {
	return Subtask{
		ID:        uuid.NewString(),
		Name:      name,
		Estimated: estimated,
	}
}

// Units returns how many work intervals the task still needs. Checked tasks
// need none. With subtasks present the parent estimate is ignored and the
// unchecked subtask remainders are summed instead.
func (t Task) Units() int {
	if t.Checked {
		return 0
	}
	if len(t.Subtasks) > 0 {
		total := 0
		for _, st := range t.Subtasks {
			total += st.Units()
		}
		return total
	}
	return remainingUnits(t.Estimated, t.Completed)
}

// Units returns how many work intervals the subtask still needs.
func (st Subtask) Units() int {
	if st.Checked {
		return 0
	}
	return remainingUnits(st.Estimated, st.Completed)
}

// remainingUnits keeps the scheduling floor: an unchecked item occupies at
// least one unit even when completed work has met or passed the estimate.
func remainingUnits(estimated, completed int) int {
	if n := estimated - completed; n > 1 {
		return n
	}
	return 1
}

// FlattenUnits expands the queue into its schedulable units, in queue order,
// subtasks depth-first under their parent. Checked items contribute nothing.
func FlattenUnits(tasks []Task) []WorkUnit {
	var units []WorkUnit
	for _, t := range tasks {
		if t.Checked {
			continue
		}
		if len(t.Subtasks) > 0 {
			for _, st := range t.Subtasks {
				if st.Checked {
					continue
				}
				for i := 0; i < st.Units(); i++ {
					units = append(units, WorkUnit{
						TaskID:    t.ID,
						SubtaskID: st.ID,
						Label:     t.Name + ": " + st.Name,
						Color:     t.Color,
						Category:  t.Category,
					})
				}
			}
			continue
		}
		for i := 0; i < t.Units(); i++ {
			units = append(units, WorkUnit{
				TaskID:   t.ID,
				Label:    t.Name,
				Color:    t.Color,
				Category: t.Category,
			})
		}
	}
	return units
}

// TotalUnits is the number of work intervals left in the whole queue.
func TotalUnits(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		n += t.Units()
	}
	return n
}

// CountChecked returns how many top-level tasks are checked off.
func CountChecked(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if t.Checked {
			n++
		}
	}
	return n
}

// CloneTasks deep-copies the queue so callers can mutate freely.
func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if len(out[i].Subtasks) > 0 {
			subs := make([]Subtask, len(out[i].Subtasks))
			copy(subs, out[i].Subtasks)
			out[i].Subtasks = subs
		}
	}
	return out
}

// AdvanceFirstUnit credits one finished work interval to the first unchecked
// item in queue order. Items reaching their estimate are checked off, and a
// task whose last subtask checks off is checked with it. Returns the updated
// queue and what moved, or nil when the queue had no units to absorb.
func AdvanceFirstUnit(tasks []Task) ([]Task, *UnitCompletion) {
	out := CloneTasks(tasks)
	for i := range out {
		t := &out[i]
		if t.Checked {
			continue
		}
		if len(t.Subtasks) > 0 {
			done := advanceSubtask(t)
			if done == nil {
				continue
			}
			return out, done
		}
		t.Completed++
		done := &UnitCompletion{
			Unit:     WorkUnit{TaskID: t.ID, Label: t.Name, Color: t.Color, Category: t.Category},
			TaskName: t.Name,
		}
		if t.Completed >= t.Estimated {
			t.Checked = true
			done.ItemChecked = true
			done.TaskCompleted = true
		}
		return out, done
	}
	return out, nil
}

func advanceSubtask(t *Task) *UnitCompletion {
	for j := range t.Subtasks {
		st := &t.Subtasks[j]
		if st.Checked {
			continue
		}
		st.Completed++
		done := &UnitCompletion{
			Unit: WorkUnit{
				TaskID:    t.ID,
				SubtaskID: st.ID,
				Label:     t.Name + ": " + st.Name,
				Color:     t.Color,
				Category:  t.Category,
			},
			TaskName: t.Name,
		}
		if st.Completed >= st.Estimated {
			st.Checked = true
			done.ItemChecked = true
		}
		if allSubtasksChecked(t.Subtasks) {
			t.Checked = true
			done.TaskCompleted = true
		}
		return done
	}
	return nil
}

func allSubtasksChecked(subs []Subtask) bool {
	for _, st := range subs {
		if !st.Checked {
			return false
		}
	}
	return true
}

// AddTask appends a task to the queue.
func AddTask(tasks []Task, t Task) []Task {
	out := CloneTasks(tasks)
	return append(out, t)
}

// AddSubtask appends a subtask under the named task.
func AddSubtask(tasks []Task, taskID string, st Subtask) ([]Task, error) {
	out := CloneTasks(tasks)
	for i := range out {
		if out[i].ID == taskID {
			out[i].Subtasks = append(out[i].Subtasks, st)
			return out, nil
		}
	}
	return tasks, ErrNotFound
}

// ReplaceTask swaps the task with a matching ID for the edited copy.
func ReplaceTask(tasks []Task, updated Task) ([]Task, error) {
	out := CloneTasks(tasks)
	for i := range out {
		if out[i].ID == updated.ID {
			out[i] = updated
			return out, nil
		}
	}
	return tasks, ErrNotFound
}

// RemoveTask deletes the task or subtask with the given ID. Deleting a task
// removes its subtasks with it.
func RemoveTask(tasks []Task, id string) ([]Task, error) {
	out := CloneTasks(tasks)
	for i := range out {
		if out[i].ID == id {
			return append(out[:i], out[i+1:]...), nil
		}
		for j := range out[i].Subtasks {
			if out[i].Subtasks[j].ID == id {
				subs := out[i].Subtasks
				out[i].Subtasks = append(subs[:j], subs[j+1:]...)
				return out, nil
			}
		}
	}
	return tasks, ErrNotFound
}

// MoveTask shifts a top-level task by delta positions, clamped to the queue
// bounds.
func MoveTask(tasks []Task, id string, delta int) []Task {
	out := CloneTasks(tasks)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		j := i + delta
		if j < 0 {
			j = 0
		}
		if j > len(out)-1 {
			j = len(out) - 1
		}
		t := out[i]
		out = append(out[:i], out[i+1:]...)
		out = append(out[:j], append([]Task{t}, out[j:]...)...)
		return out
	}
	return out
}

// MoveSubtask shifts a subtask by delta positions within its parent's
// sibling list, clamped to the list bounds.
func MoveSubtask(tasks []Task, taskID, subID string, delta int) []Task {
	out := CloneTasks(tasks)
	for i := range out {
		if out[i].ID != taskID {
			continue
		}
		subs := out[i].Subtasks
		for j := range subs {
			if subs[j].ID != subID {
				continue
			}
			k := j + delta
			if k < 0 {
				k = 0
			}
			if k > len(subs)-1 {
				k = len(subs) - 1
			}
			st := subs[j]
			subs = append(subs[:j], subs[j+1:]...)
			subs = append(subs[:k], append([]Subtask{st}, subs[k:]...)...)
			out[i].Subtasks = subs
			return out
		}
		return out
	}
	return out
}

// ToggleTask flips the checked state of a top-level task. Toggling a parent
// carries all its subtasks to the same state.
func ToggleTask(tasks []Task, id string) ([]Task, error) {
	out := CloneTasks(tasks)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		out[i].Checked = !out[i].Checked
		for j := range out[i].Subtasks {
			out[i].Subtasks[j].Checked = out[i].Checked
		}
		return out, nil
	}
	return tasks, ErrNotFound
}

// ToggleSubtask flips one subtask. Checking the last open subtask checks the
// parent; unchecking any subtask reopens it.
func ToggleSubtask(tasks []Task, taskID, subID string) ([]Task, error) {
	out := CloneTasks(tasks)
	for i := range out {
		if out[i].ID != taskID {
			continue
		}
		for j := range out[i].Subtasks {
			if out[i].Subtasks[j].ID != subID {
				continue
			}
			out[i].Subtasks[j].Checked = !out[i].Subtasks[j].Checked
			out[i].Checked = allSubtasksChecked(out[i].Subtasks)
			return out, nil
		}
		return tasks, ErrNotFound
	}
	return tasks, ErrNotFound
}

// SplitTask divides a task's remaining estimate across itself and a new task
// inserted directly after it. The original keeps the larger half. Tasks with
// subtasks, checked tasks, and tasks with fewer than two remaining units
// cannot split.
func SplitTask(tasks []Task, id string) ([]Task, error) {
	out := CloneTasks(tasks)
	for i := range out {
		t := &out[i]
		if t.ID != id {
			continue
		}
		if t.Checked || len(t.Subtasks) > 0 {
			return tasks, ErrCannotSplit
		}
		remaining := t.Estimated - t.Completed
		if remaining < 2 {
			return tasks, ErrCannotSplit
		}
		firstHalf := (remaining + 1) / 2
		second := NewTask(t.Name+" (2)", remaining-firstHalf)
		second.Category = t.Category
		second.Color = t.Color
		t.Estimated = t.Completed + firstHalf
		out = append(out[:i+1], append([]Task{second}, out[i+1:]...)...)
		return out, nil
	}
	return tasks, ErrNotFound
}
