package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/riordanpawley/valerian/internal/domain"
)

func addLog(topLevel *cobra.Command) {
	var today bool
	var clear bool
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the activity log.",
		Example: `
valerian log
valerian log --today
valerian log -n 20
valerian log --clear
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore(newLogger())
			if err != nil {
				return err
			}

			if clear {
				if err := p.ClearLog(); err != nil {
					return err
				}
				fmt.Fprintln(color.Output, "log cleared")
				return nil
			}

			entries := p.LoadLog()
			if today {
				now := time.Now()
				midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
				entries = domain.EntriesSince(entries, midnight)
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}
			printLog(entries)
			return nil
		},
	}

	cmd.Flags().BoolVar(&today, "today", false, "Only entries since midnight.")
	cmd.Flags().BoolVar(&clear, "clear", false, "Erase the log and exit.")
	cmd.Flags().IntVarP(&limit, "number", "n", 0, "Show at most this many entries, newest last.")

	topLevel.AddCommand(cmd)
}

func printLog(entries []domain.LogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(color.Output, "log is empty")
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("When"), bold.Sprint("Type"), bold.Sprint("Length"), bold.Sprint("Task"), bold.Sprint("Note"))
	for _, e := range entries {
		tbl.AddRow(
			e.Start.Format("Mon 15:04"),
			entryLabel(e.Type),
			domain.FormatClock(e.Duration),
			e.Task,
			e.Reason,
		)
	}
	fmt.Fprintln(color.Output, tbl)
}

func entryLabel(t domain.EntryType) string {
	switch t {
	case domain.EntryWork:
		return color.GreenString("work")
	case domain.EntryBreak:
		return color.BlueString("break")
	case domain.EntryAllPause:
		return color.YellowString("pause")
	case domain.EntryGrace:
		return color.YellowString("grace")
	case domain.EntryTaskComplete:
		return color.MagentaString("done")
	}
	return string(t)
}
