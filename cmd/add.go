package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <name> <exe>",
	Short: "Add an app to the config file",
	Long: `Register an app under a unique name. <exe> is the path to the executable,
or a command found on PATH. It is started without arguments.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, exe := args[0], args[1]

		store, config, err := loadConfig()
		if err != nil {
			return err
		}

		if _, err := config.Add(name, exe); err != nil {
			return err
		}
		if err := store.Save(config); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "added %s to the config file\n", nameStyle.Render(name))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
