// Package navigation tracks the selection cursor over the task queue.
//
// The cursor remembers the selected row by ID rather than index, so it
// stays on the same task while the queue is reordered, split, or edited
// underneath it. Only when the row disappears entirely does it fall back
// to the nearest index.
package navigation

import "github.com/riordanpawley/valerian/internal/domain"

// Row is one selectable line of the queue pane: a top-level task or one
// of its subtasks.
type Row struct {
	TaskID    string
	SubtaskID string // empty for a top-level task row
}

// ID returns the identity the cursor tracks.
func (r Row) ID() string {
	if r.SubtaskID != "" {
		return r.SubtaskID
	}
	return r.TaskID
}

// IsSubtask reports whether the row is an indented subtask line.
func (r Row) IsSubtask() bool {
	return r.SubtaskID != ""
}

// Rows flattens the queue into its visible rows: each task followed by
// its subtasks. Checked rows stay visible, so they remain selectable for
// unchecking and deletion.
func Rows(tasks []domain.Task) []Row {
	var rows []Row
	for _, t := range tasks {
		rows = append(rows, Row{TaskID: t.ID})
		for _, st := range t.Subtasks {
			rows = append(rows, Row{TaskID: t.ID, SubtaskID: st.ID})
		}
	}
	return rows
}

// Cursor tracks the selected row by ID, surviving queue mutations.
type Cursor struct {
	rowID    string
	fallback int // index to land on when the row vanishes
}

// Position computes the index of the selected row. When the tracked row
// no longer exists the cursor lands on the fallback index, clamped to the
// queue bounds; an empty queue is position 0, invalid.
func (c *Cursor) Position(rows []Row) (int, bool) {
	if len(rows) == 0 {
		return 0, false
	}
	if c.rowID != "" {
		for i, r := range rows {
			if r.ID() == c.rowID {
				return i, true
			}
		}
	}
	idx := c.fallback
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx, true
}

// Current returns the selected row.
func (c *Cursor) Current(rows []Row) (Row, bool) {
	idx, ok := c.Position(rows)
	if !ok {
		return Row{}, false
	}
	return rows[idx], true
}

// Select points the cursor at a specific row.
func (c *Cursor) Select(row Row, index int) {
	c.rowID = row.ID()
	c.fallback = index
}

// Move shifts the cursor by delta rows, clamped to the queue bounds.
func (c *Cursor) Move(rows []Row, delta int) {
	idx, ok := c.Position(rows)
	if !ok {
		return
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	c.Select(rows[idx], idx)
}

// JumpToStart selects the first row.
func (c *Cursor) JumpToStart(rows []Row) {
	if len(rows) > 0 {
		c.Select(rows[0], 0)
	}
}

// JumpToEnd selects the last row.
func (c *Cursor) JumpToEnd(rows []Row) {
	if len(rows) > 0 {
		c.Select(rows[len(rows)-1], len(rows)-1)
	}
}

// Service owns the queue cursor for the app.
type Service struct {
	cursor Cursor
}

// NewService creates a navigation service with nothing selected.
func NewService() *Service {
	return &Service{}
}

// Position returns the selected row index for rendering.
func (s *Service) Position(tasks []domain.Task) (int, bool) {
	return s.cursor.Position(Rows(tasks))
}

// Current returns the selected row.
func (s *Service) Current(tasks []domain.Task) (Row, bool) {
	return s.cursor.Current(Rows(tasks))
}

// CurrentTask resolves the selection to the underlying task, and subtask
// when an indented row is selected.
func (s *Service) CurrentTask(tasks []domain.Task) (*domain.Task, *domain.Subtask) {
	row, ok := s.cursor.Current(Rows(tasks))
	if !ok {
		return nil, nil
	}
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
		return &tasks[i], nil
	}
	return nil, nil
}

// MoveDown moves the cursor one row down.
func (s *Service) MoveDown(tasks []domain.Task) {
	s.cursor.Move(Rows(tasks), 1)
}

// MoveUp moves the cursor one row up.
func (s *Service) MoveUp(tasks []domain.Task) {
	s.cursor.Move(Rows(tasks), -1)
}

// GotoTop selects the first row.
func (s *Service) GotoTop(tasks []domain.Task) {
	s.cursor.JumpToStart(Rows(tasks))
}

// GotoBottom selects the last row.
func (s *Service) GotoBottom(tasks []domain.Task) {
	s.cursor.JumpToEnd(Rows(tasks))
}

// SelectID points the cursor at the row with the given task or subtask ID.
func (s *Service) SelectID(tasks []domain.Task, id string) bool {
	rows := Rows(tasks)
	for i, r := range rows {
		if r.ID() == id {
			s.cursor.Select(r, i)
			return true
		}
	}
	return false
}
