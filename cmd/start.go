package cmd

import (
	"fmt"
	"time"

	"github.com/iksnae/playtime/internal"
	"github.com/spf13/cobra"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:     "start <name>",
	Aliases: []string{"run"},
	Short:   "Start an app and record time to the config file",
	Long: `Start the app's executable, wait for it to exit and record how long it ran.

The app inherits this terminal's input and output. Runs shorter than
PLAYTIME_MIN_SESSION (1s by default) are reported but not recorded.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		store, config, err := loadConfig()
		if err != nil {
			return err
		}

		recorder := newRecorder(settings.MinSession)
		result, err := recorder.Record(config, name)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "process exited with status: %s\n", nameStyle.Render(result.Status.String()))

		if !result.Recorded {
			internal.PrintWarning(out, "process terminated after less than "+describeMinimum(recorder.MinDuration))
			return nil
		}

		duration, err := internal.FormatSpan(result.Session.Duration)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "session duration: %s\n", nameStyle.Render(duration))

		return store.Save(config)
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func describeMinimum(d time.Duration) string {
	if d == time.Second {
		return "1 second"
	}
	return d.String()
}
