package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal component layered over the main view. The stack owns
// its lifecycle: dialogs report results through their own typed messages
// and close themselves by emitting CloseOverlayMsg.
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg signals that the top overlay should be closed.
type CloseOverlayMsg struct{}
