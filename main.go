package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Set via ldflags at build time
var version = "dev"

var (
	outputDir    string
	archivePath  string
	noArchive    bool
	settingsPath string
	templatePath string
	debugMode    bool
)

var rootCmd = &cobra.Command{
	Use:   "jots-splitter [input-file]",
	Short: "Split a journal export into individual markdown notes",
	Long: `Splits a single markdown export (one top-level header per note) into one
file per note with title and tag frontmatter, then zips the result.

Titles such as "Mon, 5 Mar, 2024" are tagged daily-jots and displayed as
"March 05, 2024"; everything else is tagged imported.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		SetDebugMode(debugMode)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, overrides, err := resolveSettings(args)
		if err != nil {
			return err
		}

		if outputDir != "" {
			settings.OutputDirectory = outputDir
		}
		if archivePath != "" {
			settings.ArchivePath = archivePath
		}
		if noArchive {
			settings.SkipArchive = true
		}

		processor, err := NewNoteProcessor(settings, overrides, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		summary, err := processor.Run()
		if err != nil {
			return err
		}

		printSummary(cmd.OutOrStdout(), summary)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&outputDir, "out", "", "Output directory for notes")
	rootCmd.Flags().StringVar(&archivePath, "archive", "", "Path of the zip archive to create")
	rootCmd.Flags().BoolVar(&noArchive, "no-archive", false, "Write notes without creating an archive")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Path to a settings file (must exist)")
	rootCmd.PersistentFlags().StringVar(&templatePath, "template", "", "Path to a custom note template")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newInitCmd(), newListCmd(), newPreviewCmd())
}

// resolveSettings loads settings and applies the positional input argument
func resolveSettings(args []string) (*Settings, *ConfigOverrides, error) {
	overrides := &ConfigOverrides{}
	if settingsPath != "" {
		overrides.SettingsPath = &settingsPath
	}
	if templatePath != "" {
		overrides.TemplatePath = &templatePath
	}

	settings, err := LoadSettings(overrides)
	if err != nil {
		return nil, nil, err
	}

	if len(args) > 0 {
		settings.InputFile = args[0]
	}
	return settings, overrides, nil
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}
