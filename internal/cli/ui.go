package cli

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/valerian/internal/app"
	"github.com/riordanpawley/valerian/internal/services/alarm"
	"github.com/riordanpawley/valerian/internal/services/groupsync"
	"github.com/riordanpawley/valerian/internal/services/reminder"
)

// runUI opens the timer interface.
func runUI() error {
	logger := newLogger()

	p, err := loadStore(logger)
	if err != nil {
		return err
	}

	reminders := reminder.NewService(time.Local, logger)
	reminders.Start()
	defer reminders.Stop()

	model := app.New(app.Deps{
		Store:     p,
		Alarm:     alarm.NewBell(os.Stderr, logger),
		Group:     groupsync.NewLoopback(logger),
		Reminders: reminders,
		Logger:    logger,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
