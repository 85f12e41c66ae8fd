package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/playtime/internal"
	"github.com/spf13/cobra"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the config file can be found and read",
	Long: `Check the health of playtime by verifying:
  • Config directory resolution
  • Config file format
  • App executables can be found

Nothing is created or written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, sectionStyle.Render("Playtime Check"))
		fmt.Fprintln(out)

		// Step 1: Resolve config directory
		fmt.Fprintln(out, infoStyle.Render("Step 1: Resolving config directory..."))
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("✗ Failed to resolve config directory:"), err)
			return err
		}
		fmt.Fprintf(out, "   Directory: %s\n", store.Dir())

		info, err := os.Stat(store.Dir())
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintln(out, warningStyle.Render("⚠ Config directory not created yet"))
			fmt.Fprintln(out, "   It is created the first time an app is added")
			return nil
		case err != nil:
			fmt.Fprintln(out, errorStyle.Render("✗ Cannot access config directory:"), err)
			return err
		case !info.IsDir():
			fmt.Fprintln(out, errorStyle.Render("✗ Config path is not a directory"))
			return internal.ErrInvalidConfigDir
		}
		fmt.Fprintln(out, successStyle.Render("✓ Config directory found"))
		fmt.Fprintln(out)

		// Step 2: Parse config file
		fmt.Fprintln(out, infoStyle.Render("Step 2: Reading config file..."))
		fmt.Fprintf(out, "   File: %s\n", store.Path())
		if !store.Exists() {
			fmt.Fprintln(out, warningStyle.Render("⚠ No config file yet"))
			return nil
		}
		config, err := store.Read()
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("✗ Failed to read config file:"), err)
			return err
		}
		fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✓ Found %d app(s) with %d session(s)",
			len(config.Apps), config.SessionCount())))
		fmt.Fprintln(out)

		// Step 3: Look up executables
		fmt.Fprintln(out, infoStyle.Render("Step 3: Looking up executables..."))
		missing := checkExecutables(out, config)
		fmt.Fprintln(out)

		fmt.Fprintln(out, sectionStyle.Render("Summary"))
		if missing > 0 {
			fmt.Fprintln(out, warningStyle.Render(fmt.Sprintf("⚠ Config is readable but %d executable(s) were not found", missing)))
			return nil
		}
		fmt.Fprintln(out, successStyle.Render("✓ Check passed!"))
		return nil
	},
}

// checkExecutables reports each app whose executable cannot be resolved and
// returns how many were missing.
func checkExecutables(w io.Writer, config *internal.Config) int {
	missing := 0
	for _, app := range config.Apps {
		if _, err := exec.LookPath(app.Exe); err != nil {
			missing++
			fmt.Fprintf(w, "   %s %s: %s\n", warningStyle.Render("⚠"), app.Name, app.Exe)
			internal.LogDebug("Lookup of %s failed: %v", app.Exe, err)
			continue
		}
		if verbose {
			fmt.Fprintf(w, "   %s %s: %s\n", successStyle.Render("✓"), app.Name, app.Exe)
		}
	}
	if missing == 0 {
		fmt.Fprintln(w, successStyle.Render("✓ All executables found"))
	}
	return missing
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
