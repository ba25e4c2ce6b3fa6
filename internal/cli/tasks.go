package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/riordanpawley/valerian/internal/domain"
)

func addTasks(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List the task queue.",
		Example: `
valerian tasks
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore(newLogger())
			if err != nil {
				return err
			}
			printTasks(p.LoadTasks())
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func printTasks(tasks []domain.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(color.Output, "queue is empty")
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Task"), bold.Sprint("Category"), bold.Sprint("Done"), bold.Sprint("Est"))
	for _, task := range tasks {
		tbl.AddRow(taskMark(task.Checked)+task.Name, task.Category,
			fmt.Sprintf("%d", task.Completed), fmt.Sprintf("%d", task.Estimated))
		for _, sub := range task.Subtasks {
			tbl.AddRow("  "+taskMark(sub.Checked)+sub.Name, "",
				fmt.Sprintf("%d", sub.Completed), fmt.Sprintf("%d", sub.Estimated))
		}
	}
	fmt.Fprintln(color.Output, tbl)
}

func taskMark(checked bool) string {
	if checked {
		return color.GreenString("✓ ")
	}
	return "  "
}
