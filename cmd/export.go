package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iksnae/playtime/internal"
	"github.com/iksnae/playtime/internal/export"
	"github.com/spf13/cobra"
)

var (
	format    string
	outputDir string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [name]",
	Short: "Export recorded sessions to files",
	Long: `Export the session ledger to various formats (md, jsonl, yaml, json, sqlite).

One file is written per app, named after the app. Pass a name to export a
single app. The config file is never modified.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Create exporter first so a bad format fails before any I/O
		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		_, config, err := loadConfig()
		if err != nil {
			return err
		}

		apps := make([]*internal.App, 0, len(config.Apps))
		if len(args) == 1 {
			app, err := config.Find(args[0])
			if err != nil {
				return err
			}
			apps = append(apps, app)
		} else {
			for i := range config.Apps {
				apps = append(apps, &config.Apps[i])
			}
		}

		out := cmd.OutOrStdout()
		if len(apps) == 0 {
			internal.PrintWarning(out, "no apps added to the config file")
			return nil
		}

		// Ensure output directory exists
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		failed := 0
		used := make(map[string]bool, len(apps))
		for _, app := range apps {
			path := filepath.Join(outputDir, uniqueFileName(used, app.Name, exporter.Extension()))
			if err := exportApp(exporter, app, path); err != nil {
				internal.LogError("Failed to export %s: %v", app.Name, err)
				failed++
				continue
			}
			internal.LogDebug("Exported %s to %s", app.Name, path)
		}

		if failed > 0 {
			return fmt.Errorf("failed to export %d of %d app(s)", failed, len(apps))
		}

		internal.PrintSuccess(out, fmt.Sprintf("Export complete: %d app(s) exported to %s", len(apps), outputDir))
		return nil
	},
}

func exportApp(exporter export.Exporter, app *internal.App, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := exporter.Export(app, file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// exportFileName turns an app name into a file name, replacing characters
// that are not allowed in file names on common platforms.
func exportFileName(name, ext string) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		if r < 0x20 {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if safe == "" || safe == "." || safe == ".." {
		safe = "app"
	}
	return safe + "." + ext
}

// uniqueFileName returns exportFileName(name, ext), adding -2, -3, ... when
// an earlier app in the same run already produced that file name. Names are
// compared case-insensitively so they stay distinct on macOS and Windows.
func uniqueFileName(used map[string]bool, name, ext string) string {
	file := exportFileName(name, ext)
	base := strings.TrimSuffix(file, "."+ext)
	for n := 2; used[strings.ToLower(file)]; n++ {
		file = fmt.Sprintf("%s-%d.%s", base, n, ext)
	}
	used[strings.ToLower(file)] = true
	return file
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "md", "Export format (md, jsonl, yaml, json, sqlite)")
	exportCmd.Flags().StringVarP(&outputDir, "out", "o", ".", "Output directory")
}
