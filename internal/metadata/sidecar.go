// Package metadata reads and writes the game.json sidecar file that sits
// next to a game's media inside the library tree.
package metadata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Filename is the sidecar file name inside a game folder.
const Filename = "game.json"

// Sidecar holds the catalog attributes a game folder declares about itself.
// Every field is optional; Year passes through whatever JSON value the file
// carries so numeric and string years survive a round trip unchanged.
type Sidecar struct {
	Title     string   `json:"title,omitempty"`
	Cover     string   `json:"cover,omitempty"`
	Video     string   `json:"video,omitempty"`
	Year      any      `json:"year,omitempty"`
	Publisher string   `json:"publisher,omitempty"`
	Region    string   `json:"region,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

// Path returns the sidecar location for a game folder.
func Path(gameDir string) string {
	return filepath.Join(gameDir, Filename)
}

// Exists reports whether a sidecar file is present in the game folder.
func Exists(gameDir string) bool {
	info, err := os.Stat(Path(gameDir))
	return err == nil && !info.IsDir()
}

// Read loads the sidecar for a game folder. A missing file yields a zero
// Sidecar with no error; a file that is present but not valid JSON aborts
// with an error naming the file.
func Read(gameDir string) (Sidecar, error) {
	path := Path(gameDir)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Sidecar{}, nil
	}
	if err != nil {
		return Sidecar{}, fmt.Errorf("read sidecar %s: %w", path, err)
	}

	var sc Sidecar
	if err := json.Unmarshal(data, &sc); err != nil {
		return Sidecar{}, fmt.Errorf("parse sidecar %s: %w", path, err)
	}
	return sc, nil
}

// Write persists the sidecar with two-space indentation. Empty optional
// fields are omitted, so an importer-generated file carries only title and
// the media references that were actually found.
func Write(gameDir string, sc Sidecar) error {
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sidecar: %w", err)
	}
	data = append(data, '\n')

	path := Path(gameDir)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write sidecar %s: %w", path, err)
	}
	return nil
}
