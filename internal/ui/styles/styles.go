package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the UI styles
type Styles struct {
	// Panes
	Pane            lipgloss.Style
	PaneActive      lipgloss.Style
	PaneTitle       lipgloss.Style
	PaneTitleActive lipgloss.Style

	// Timer pane
	Clock      lipgloss.Style
	ClockDebt  lipgloss.Style
	ModeWork   lipgloss.Style
	ModeBreak  lipgloss.Style
	PhaseNote  lipgloss.Style
	Bank       lipgloss.Style
	BankDebt   lipgloss.Style
	PomoDot    lipgloss.Style
	PomoDotDim lipgloss.Style
	UnitLabel  lipgloss.Style

	// Task queue
	QueueItem        lipgloss.Style
	QueueItemActive  lipgloss.Style
	QueueItemChecked lipgloss.Style
	QueueCount       lipgloss.Style
	CategoryBadge    lipgloss.Style

	// Timeline
	TimelineTime   lipgloss.Style
	TimelineWork   lipgloss.Style
	TimelineBreak  lipgloss.Style
	TimelinePinned lipgloss.Style
	TimelineNow    lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Overlay frame (overlay package carries its own inner styles)
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	Separator    lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Pane: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		PaneActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1),

		PaneTitle: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			Padding(0, 1),

		PaneTitleActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			Padding(0, 1),

		Clock: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		ClockDebt: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		ModeWork: lipgloss.NewStyle().
			Background(Peach).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		ModeBreak: lipgloss.NewStyle().
			Background(Green).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		PhaseNote: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Bank: lipgloss.NewStyle().
			Foreground(Green),

		BankDebt: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		PomoDot: lipgloss.NewStyle().
			Foreground(Peach),

		PomoDotDim: lipgloss.NewStyle().
			Foreground(Surface2),

		UnitLabel: lipgloss.NewStyle().
			Foreground(Subtext1),

		QueueItem: lipgloss.NewStyle().
			Foreground(Text),

		QueueItemActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		QueueItemChecked: lipgloss.NewStyle().
			Foreground(Overlay0).
			Strikethrough(true),

		QueueCount: lipgloss.NewStyle().
			Foreground(Overlay1),

		CategoryBadge: lipgloss.NewStyle().
			Foreground(Subtext0).
			Background(Surface1).
			Padding(0, 1),

		TimelineTime: lipgloss.NewStyle().
			Foreground(Overlay1),

		TimelineWork: lipgloss.NewStyle().
			Foreground(Text),

		TimelineBreak: lipgloss.NewStyle().
			Foreground(Green),

		TimelinePinned: lipgloss.NewStyle().
			Foreground(Mauve),

		TimelineNow: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		Separator: lipgloss.NewStyle().
			Foreground(Surface1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}
