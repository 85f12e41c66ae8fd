package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an app from the config file",
	Long:  `Remove an app and its entire session history from the config file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		store, config, err := loadConfig()
		if err != nil {
			return err
		}

		if err := config.Remove(name); err != nil {
			return err
		}
		if err := store.Save(config); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "removed %s from the config file\n", nameStyle.Render(name))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
