package catalog

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"romshelf/internal/fileutil"
)

// assetsDirName is the media subtree of the output root.
const assetsDirName = "assets"

// resolveMedia resolves a sidecar media reference against its game folder.
// It returns the absolute file location and the slash-separated path relative
// to the game folder. Empty references, files missing on disk, directories,
// and paths escaping the game folder all report ok=false; the catalog simply
// omits such media.
func resolveMedia(gameDir, ref string) (abs, rel string, ok bool) {
	if strings.TrimSpace(ref) == "" {
		return "", "", false
	}
	abs = filepath.Clean(filepath.Join(gameDir, filepath.FromSlash(ref)))

	rel, err := filepath.Rel(gameDir, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", "", false
	}

	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return "", "", false
	}
	return abs, filepath.ToSlash(rel), true
}

// copyAsset copies a resolved media file into the namespaced asset directory,
// preserving its path relative to the game folder, and returns the copied
// file's slash path relative to the output root.
func copyAsset(outDir, consoleSlug, titleSlug, abs, rel string) (string, error) {
	dst := filepath.Join(outDir, assetsDirName, consoleSlug, titleSlug, filepath.FromSlash(rel))
	if err := fileutil.CopyFileInto(abs, dst); err != nil {
		return "", err
	}
	return path.Join(assetsDirName, consoleSlug, titleSlug, rel), nil
}
