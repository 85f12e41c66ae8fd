package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/playtime/internal"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	configDir string
	version   string = "dev"
	commit    string = "unknown"
	date      string = "unknown"

	settings *internal.Settings

	// clock and newRecorder are replaced in tests
	clock       clockwork.Clock = clockwork.NewRealClock()
	newRecorder                 = internal.NewRecorder
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "playtime",
	Short: "Launch your games and keep track of how long you play",
	Long: `A small CLI that launches registered apps and records how long each
session lasted.

Sessions shorter than a second are treated as accidental launches and are
not recorded. The registry and all sessions live in a single YAML file in
your config directory (for example ~/.config/playtime/config.yaml).

Quick Start:
  playtime add doom /usr/bin/doom   # Register an app
  playtime start doom               # Play and record a session
  playtime list                     # Show total and recent playtime
  playtime sessions doom            # Show every recorded session

Environment:
  PLAYTIME_CONFIG_DIR    Config directory (overridden by --config-dir)
  PLAYTIME_MIN_SESSION   Shortest session that is recorded (default 1s)
  PLAYTIME_RECENT_DAYS   Window used by "list" for recent playtime (default 7)
  PLAYTIME_LOG_LEVEL     debug, info, warn or error (default info)`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := internal.LoadSettings()
		if err != nil {
			return err
		}
		settings = loaded

		if verbose {
			internal.SetVerbose(true)
		} else {
			internal.SetLogLevel(internal.ParseLogLevel(settings.LogLevel))
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore returns the config store chosen by --config-dir, the
// environment, or the platform default, in that order.
func openStore() (*internal.Store, error) {
	if configDir != "" {
		return internal.NewStore(configDir), nil
	}
	return settings.Store()
}

// loadConfig opens the store and reads the registry from it
func loadConfig() (*internal.Store, *internal.Config, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	config, err := store.Read()
	if err != nil {
		return nil, nil, err
	}
	return store, config, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory holding config.yaml (default: <user config dir>/playtime)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
