// Package importer bootstraps the library layout from raw ROM folders. It
// copies image and video files into the library tree and synthesizes a
// game.json sidecar when a game folder does not already carry one.
package importer

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"romshelf/internal/fileutil"
	"romshelf/internal/logging"
	"romshelf/internal/metadata"
)

// fallbackTitle replaces game titles that trim to nothing.
const fallbackTitle = "Unknown game"

// Options configures one import run.
type Options struct {
	// Console is the platform folder name created under the library root.
	Console string
	// SourceDir holds one subdirectory per game.
	SourceDir string
	// LibraryDir is the library root to populate.
	LibraryDir string
	// Overwrite removes and recreates destination game folders that already
	// exist. Without it, existing destinations keep their current contents.
	Overwrite bool
}

// Run imports every non-hidden game folder from the source directory into
// library/<console>/, then ensures each destination has a sidecar.
func Run(ctx context.Context, opts Options, logger *slog.Logger) error {
	logger = logging.NewComponentLogger(logging.WithContext(ctx, logger), "importer")

	info, err := os.Stat(opts.SourceDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("source directory not found: %s", opts.SourceDir)
	}

	consoleDir := filepath.Join(opts.LibraryDir, opts.Console)
	if err := fileutil.EnsureDir(consoleDir); err != nil {
		return err
	}

	names, err := sourceGameFolders(opts.SourceDir)
	if err != nil {
		return err
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		src := filepath.Join(opts.SourceDir, name)
		dest := filepath.Join(consoleDir, name)

		copied, err := copyGameFolder(src, dest, opts.Overwrite)
		if err != nil {
			return fmt.Errorf("import %s: %w", name, err)
		}
		if !copied {
			logger.Info("destination exists, copy skipped", logging.String("game", name))
		}

		if !metadata.Exists(dest) {
			if err := writeGeneratedSidecar(dest); err != nil {
				return fmt.Errorf("import %s: %w", name, err)
			}
			logger.Info("sidecar generated", logging.String("game", name))
		}
	}

	logger.Info("import completed",
		logging.String("console", opts.Console),
		logging.Int("games", len(names)),
	)
	return nil
}

// sourceGameFolders lists the non-hidden subdirectories of the source in
// case-insensitive name order.
func sourceGameFolders(sourceDir string) ([]string, error) {
	children, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("read source directory %s: %w", sourceDir, err)
	}
	var names []string
	for _, child := range children {
		if !child.IsDir() || isHidden(child.Name()) {
			continue
		}
		names = append(names, child.Name())
	}
	caser := cases.Fold()
	sort.Slice(names, func(i, j int) bool {
		return caser.String(names[i]) < caser.String(names[j])
	})
	return names, nil
}

// copyGameFolder copies the image and video files of one game folder into
// the library, preserving relative layout. An existing destination is left
// untouched unless overwrite is set, in which case it is removed and rebuilt.
// Reports whether any copying took place.
func copyGameFolder(src, dest string, overwrite bool) (bool, error) {
	if _, err := os.Stat(dest); err == nil {
		if !overwrite {
			return false, nil
		}
		if err := os.RemoveAll(dest); err != nil {
			return false, fmt.Errorf("remove existing destination: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("inspect destination: %w", err)
	}

	if err := fileutil.EnsureDir(dest); err != nil {
		return false, err
	}

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if isHidden(d.Name()) || !isMediaFile(d.Name()) {
			return nil
		}
		rel, relErr := filepath.Rel(src, path)
		if relErr != nil {
			return relErr
		}
		return fileutil.CopyFileInto(path, filepath.Join(dest, rel))
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// writeGeneratedSidecar synthesizes game.json for a freshly imported folder.
func writeGeneratedSidecar(gameDir string) error {
	title := strings.TrimSpace(filepath.Base(gameDir))
	if title == "" {
		title = fallbackTitle
	}
	return metadata.Write(gameDir, metadata.Sidecar{
		Title: title,
		Cover: selectMediaFile(gameDir, imageExtensions, coverStems),
		Video: selectMediaFile(gameDir, videoExtensions, videoStems),
	})
}
