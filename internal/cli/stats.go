package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/riordanpawley/valerian/internal/domain"
)

func addStats(topLevel *cobra.Command) {
	var today bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize logged work and rest.",
		Example: `
valerian stats
valerian stats --today
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore(newLogger())
			if err != nil {
				return err
			}

			entries := p.LoadLog()
			if today {
				now := time.Now()
				midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
				entries = domain.EntriesSince(entries, midnight)
			}

			stats := domain.ComputeStats(entries, p.LoadTasks(), domain.CountCompletedIntervals(entries))
			printStats(stats)
			return nil
		},
	}

	cmd.Flags().BoolVar(&today, "today", false, "Only entries since midnight.")

	topLevel.AddCommand(cmd)
}

func printStats(stats domain.SessionStats) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Focused"), domain.FormatClock(stats.WorkSeconds))
	tbl.AddRow(bold.Sprint("Rested"), domain.FormatClock(stats.BreakSeconds))
	tbl.AddRow(bold.Sprint("Pomodoros"), fmt.Sprintf("%d", stats.Pomodoros))
	tbl.AddRow(bold.Sprint("Tasks done"), fmt.Sprintf("%d", stats.TasksCompleted))
	fmt.Fprintln(color.Output, tbl)

	if len(stats.ByCategory) == 0 {
		return
	}
	fmt.Fprintln(color.Output, "")

	cat := uitable.New()
	cat.Separator = "  "
	cat.AddRow(bold.Sprint("Category"), bold.Sprint("Focused"))
	for name, seconds := range stats.ByCategory {
		cat.AddRow(name, domain.FormatClock(seconds))
	}
	fmt.Fprintln(color.Output, cat)
}
