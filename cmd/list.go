package cmd

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/iksnae/playtime/internal"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all saved apps",
	Long: `List every registered app with its executable, the total time recorded
and the time recorded during the last PLAYTIME_RECENT_DAYS days (7 by default).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, config, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(config.Apps) == 0 {
			fmt.Fprintln(out, warningStyle.Render("no apps added to the config file"))
			return nil
		}

		now := internal.NewZoned(clock.Now())
		summaries, err := config.Summaries(now, settings.RecentDays)
		if err != nil {
			return err
		}

		for _, summary := range summaries {
			if err := displaySummary(out, summary, now); err != nil {
				return err
			}
		}
		return nil
	},
}

func displaySummary(w io.Writer, summary internal.AppSummary, now internal.Zoned) error {
	total, err := internal.FormatSpan(summary.Total)
	if err != nil {
		return err
	}
	recent, err := internal.FormatSpan(summary.Recent)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, nameStyle.Render(summary.Name))
	fmt.Fprintf(w, " executable: %s\n", valueStyle.Render(summary.Exe))
	fmt.Fprintf(w, " recorded total: %s\n", valueStyle.Render(total))
	fmt.Fprintf(w, " recorded recently: %s\n", valueStyle.Render(recent))

	if summary.HasPlayed {
		ago := humanize.RelTime(summary.LastPlayed.Time(), now.Time(), "ago", "from now")
		fmt.Fprintf(w, " last played: %s %s\n",
			valueStyle.Render(ago),
			dimStyle.Render("("+internal.FormatZoned(summary.LastPlayed)+")"))
	} else {
		fmt.Fprintf(w, " last played: %s\n", dimStyle.Render("never"))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
}
