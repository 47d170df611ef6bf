package importer

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// imageExtensions and videoExtensions bound which files the importer copies
// and which files qualify as cover/preview candidates.
var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".webp": {},
	".gif":  {},
}

var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".webm": {},
	".mov":  {},
	".mkv":  {},
	".avi":  {},
}

// coverStems and videoStems are the preferred file stems, matched
// case-insensitively, when picking a sidecar cover or preview video.
var coverStems = map[string]struct{}{
	"cover": {},
	"box":   {},
	"front": {},
}

var videoStems = map[string]struct{}{
	"video":   {},
	"trailer": {},
	"preview": {},
}

func hasExtension(name string, extensions map[string]struct{}) bool {
	_, ok := extensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

func isMediaFile(name string) bool {
	return hasExtension(name, imageExtensions) || hasExtension(name, videoExtensions)
}

// selectMediaFile walks the game folder and returns the slash path, relative
// to the folder, of the best candidate with one of the given extensions: the
// first file whose stem is in preferred wins, otherwise the first candidate
// in walk order, otherwise "". The walk is lexical, so the choice is
// deterministic.
func selectMediaFile(gameDir string, extensions, preferred map[string]struct{}) string {
	var candidates []string
	_ = filepath.WalkDir(gameDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if isHidden(d.Name()) || !hasExtension(d.Name(), extensions) {
			return nil
		}
		rel, relErr := filepath.Rel(gameDir, path)
		if relErr != nil {
			return nil
		}
		candidates = append(candidates, filepath.ToSlash(rel))
		return nil
	})

	for _, candidate := range candidates {
		base := filepath.Base(candidate)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		if _, ok := preferred[strings.ToLower(stem)]; ok {
			return candidate
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return ""
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
