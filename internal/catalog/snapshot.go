package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// SnapshotFilename is the JSON index written next to the rendered page.
const SnapshotFilename = "library.json"

// WriteSnapshot serializes the library to path as two-space-indented JSON.
// Output is byte-stable for identical input, so rebuilding an unchanged tree
// rewrites an identical file (modulo the generation timestamp).
func WriteSnapshot(lib *Library, path string) error {
	data, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return fmt.Errorf("encode library snapshot: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write library snapshot %s: %w", path, err)
	}
	return nil
}
