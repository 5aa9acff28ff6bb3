package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := ensureConfigExists()
			if err != nil {
				return err
			}

			path := GetConfigPath("settings.yaml")
			if created {
				fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Created "+path))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(path+" already exists"))
			}
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	var tag, filter string

	cmd := &cobra.Command{
		Use:   "list [notes-dir|archive.zip]",
		Short: "List split notes with their title and tags",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, _, err := resolveSettings(nil)
			if err != nil {
				return err
			}

			source := settings.OutputDirectory
			if len(args) > 0 {
				source = args[0]
			}

			notes, err := readNotes(source)
			if err != nil {
				return err
			}

			printNotes(cmd.OutOrStdout(), filterNotes(notes, tag, filter))
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "Only show notes with this tag")
	cmd.Flags().StringVar(&filter, "filter", "", "Fuzzy match on note titles")

	return cmd
}

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [input-file]",
		Short: "Render the notes to HTML on stdout without writing files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, overrides, err := resolveSettings(args)
			if err != nil {
				return err
			}
			settings.SkipArchive = true

			processor, err := NewNoteProcessor(settings, overrides, nil)
			if err != nil {
				return err
			}

			notes, err := processor.BuildNotes()
			if err != nil {
				return err
			}
			return renderPreview(cmd.OutOrStdout(), notes)
		},
	}
}
