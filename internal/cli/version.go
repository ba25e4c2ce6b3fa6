package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set by the release build with -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func addVersion(topLevel *cobra.Command) {
	short := false

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Get valerian version.",
		Example: `
valerian version
`,
		Run: func(_ *cobra.Command, _ []string) {
			if short {
				fmt.Println(version)
				return
			}
			fmt.Printf("valerian %s (%s, built %s)\n", version, commit, date)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print just the version number.")

	topLevel.AddCommand(cmd)
}
