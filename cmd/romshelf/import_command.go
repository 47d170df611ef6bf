package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"romshelf/internal/config"
	"romshelf/internal/importer"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var libraryFlag string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "import <console> <source-dir>",
		Short: "Bootstrap library entries from a folder of raw game directories",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			libraryDir, err := overridePath(libraryFlag, cfg.LibraryDir())
			if err != nil {
				return err
			}
			sourceDir, err := config.ExpandPath(args[1])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("overwrite") {
				overwrite = cfg.Importer.OverwriteExisting
			}

			opts := importer.Options{
				Console:    args[0],
				SourceDir:  sourceDir,
				LibraryDir: libraryDir,
				Overwrite:  overwrite,
			}
			if err := importer.Run(cmd.Context(), opts, logger); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s into %s\n", sourceDir, libraryDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&libraryFlag, "library", "", "Library directory (overrides configuration)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace game folders that already exist in the library")
	return cmd
}
