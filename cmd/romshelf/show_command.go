package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"romshelf/internal/catalog"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var libraryFlag string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Summarize the library without writing any output files",
		Args:  cobra.NoArgs,
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

			lib, err := catalog.Scan(cmd.Context(), libraryDir, logger)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, lib)
			}

			out := cmd.OutOrStdout()
			title := fmt.Sprintf("Library: %s", libraryDir)
			if shouldColorize(out) {
				title = ansiBlue + title + ansiReset
			}
			fmt.Fprintln(out, title)

			if len(lib.Consoles) == 0 {
				fmt.Fprintln(out, "No consoles found")
				return nil
			}

			rows := make([][]string, 0, len(lib.Consoles))
			for _, console := range lib.Consoles {
				rows = append(rows, []string{
					console.Name,
					console.Slug,
					strconv.Itoa(len(console.Games)),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Console", "Slug", "Games"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			fmt.Fprintf(out, "%d consoles, %d games\n", len(lib.Consoles), lib.GameCount())
			return nil
		},
	}

	cmd.Flags().StringVar(&libraryFlag, "library", "", "Library directory (overrides configuration)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the scan result as JSON")
	return cmd
}
