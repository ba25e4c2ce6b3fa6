package overlay

import tea "github.com/charmbracelet/bubbletea"

// Stack layers overlays; only the top one receives messages.
type Stack struct {
	items []Overlay
}

// NewStack creates an empty overlay stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push puts an overlay on top and starts it.
func (s *Stack) Push(o Overlay) tea.Cmd {
	s.items = append(s.items, o)
	return o.Init()
}

// Pop removes and returns the top overlay, or nil when the stack is empty.
func (s *Stack) Pop() Overlay {
	if len(s.items) == 0 {
		return nil
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top
}

// Current returns the top overlay without removing it, or nil when the
// stack is empty.
func (s *Stack) Current() Overlay {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

// IsEmpty reports whether no overlay is open.
func (s *Stack) IsEmpty() bool {
	return len(s.items) == 0
}

// Clear drops every overlay.
func (s *Stack) Clear() {
	s.items = nil
}

// Update routes a message to the top overlay. A CloseOverlayMsg pops the
// top instead of being forwarded; that is how dialogs close themselves.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	if s.IsEmpty() {
		return nil
	}

	if _, ok := msg.(CloseOverlayMsg); ok {
		s.Pop()
		return nil
	}

	model, cmd := s.Current().Update(msg)
	if next, ok := model.(Overlay); ok {
		s.items[len(s.items)-1] = next
	}
	return cmd
}
