package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"romshelf/internal/catalog"
	"romshelf/internal/fileutil"
	"romshelf/internal/logging"
	"romshelf/internal/render"
)

// lockFilename guards the output directory against concurrent builds.
const lockFilename = ".romshelf.lock"

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var libraryFlag string
	var outFlag string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Scan the library and generate library.json and index.html",
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
			outDir, err := overridePath(outFlag, cfg.OutputDir())
			if err != nil {
				return err
			}
			if err := fileutil.EnsureDir(libraryDir); err != nil {
				return err
			}
			if err := fileutil.EnsureDir(outDir); err != nil {
				return err
			}

			lock := flock.New(filepath.Join(outDir, lockFilename))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire build lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another build is already writing to %s", outDir)
			}
			defer func() {
				_ = lock.Unlock()
			}()

			runCtx := logging.ContextWithRunID(cmd.Context(), uuid.NewString())
			lib, err := catalog.NewBuilder(libraryDir, outDir, logger).Build(runCtx)
			if err != nil {
				return err
			}

			snapshotPath := filepath.Join(outDir, catalog.SnapshotFilename)
			if err := catalog.WriteSnapshot(lib, snapshotPath); err != nil {
				return err
			}

			page, err := render.Page(lib)
			if err != nil {
				return err
			}
			pagePath := filepath.Join(outDir, render.PageFilename)
			if err := os.WriteFile(pagePath, []byte(page), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", pagePath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Generated catalog with %d consoles and %d games in %s\n",
				len(lib.Consoles), lib.GameCount(), outDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&libraryFlag, "library", "", "Library directory (overrides configuration)")
	cmd.Flags().StringVar(&outFlag, "out", "", "Output directory (overrides configuration)")
	return cmd
}
