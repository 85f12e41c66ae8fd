package cmd

import (
	"fmt"

	"github.com/iksnae/playtime/internal"
	"github.com/spf13/cobra"
)

// sessionsCmd represents the sessions command
var sessionsCmd = &cobra.Command{
	Use:   "sessions <name>",
	Short: "List all recorded sessions",
	Long:  `List every recorded session of an app in the order it was played.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		_, config, err := loadConfig()
		if err != nil {
			return err
		}

		app, err := config.Find(name)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "sessions for %s\n", nameStyle.Render(app.Name))

		if len(app.Sessions) == 0 {
			fmt.Fprintln(out, " no sessions recorded")
			return nil
		}

		for _, session := range app.Sessions {
			duration, err := internal.FormatSpan(session.Duration)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, " played on %s for %s\n",
				nameStyle.Render(internal.FormatZoned(session.Timestamp)),
				nameStyle.Render(duration))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}
