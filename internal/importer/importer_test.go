package importer

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"romshelf/internal/logging"
	"romshelf/internal/metadata"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func runImport(t *testing.T, opts Options) {
	t.Helper()
	if err := Run(context.Background(), opts, logging.NewNop()); err != nil {
		t.Fatal(err)
	}
}

func TestRunGeneratesSidecarFromPreferredStems(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source")
	library := filepath.Join(dir, "library")
	writeFile(t, filepath.Join(source, "MyGame", "box.jpg"), "img")
	writeFile(t, filepath.Join(source, "MyGame", "trailer.mp4"), "vid")

	runImport(t, Options{Console: "SNES", SourceDir: source, LibraryDir: library})

	dest := filepath.Join(library, "SNES", "MyGame")
	sc, err := metadata.Read(dest)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Title != "MyGame" || sc.Cover != "box.jpg" || sc.Video != "trailer.mp4" {
		t.Fatalf("sidecar: %+v", sc)
	}

	data, err := os.ReadFile(metadata.Path(dest))
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if len(raw) != 3 {
		t.Fatalf("generated sidecar should carry exactly title/cover/video: %v", raw)
	}
}

func TestRunCopiesOnlyMediaFiles(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source")
	library := filepath.Join(dir, "library")
	writeFile(t, filepath.Join(source, "MyGame", "cover.png"), "img")
	writeFile(t, filepath.Join(source, "MyGame", "rom.sfc"), "rom")
	writeFile(t, filepath.Join(source, "MyGame", "readme.txt"), "doc")
	writeFile(t, filepath.Join(source, "MyGame", ".thumb.png"), "hidden")
	writeFile(t, filepath.Join(source, "MyGame", "media", "clip.webm"), "vid")

	runImport(t, Options{Console: "SNES", SourceDir: source, LibraryDir: library})

	dest := filepath.Join(library, "SNES", "MyGame")
	for _, want := range []string{"cover.png", filepath.Join("media", "clip.webm")} {
		if _, err := os.Stat(filepath.Join(dest, want)); err != nil {
			t.Fatalf("%s should be copied: %v", want, err)
		}
	}
	for _, absent := range []string{"rom.sfc", "readme.txt", ".thumb.png"} {
		if _, err := os.Stat(filepath.Join(dest, absent)); err == nil {
			t.Fatalf("%s should not be copied", absent)
		}
	}
}

func TestRunFallsBackToFirstCandidate(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source")
	library := filepath.Join(dir, "library")
	writeFile(t, filepath.Join(source, "MyGame", "artwork.png"), "img")
	writeFile(t, filepath.Join(source, "MyGame", "screenshot.png"), "img")

	runImport(t, Options{Console: "NES", SourceDir: source, LibraryDir: library})

	sc, err := metadata.Read(filepath.Join(library, "NES", "MyGame"))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Cover != "artwork.png" {
		t.Fatalf("cover should be first candidate in walk order: %q", sc.Cover)
	}
	if sc.Video != "" {
		t.Fatalf("no video candidate, field should be omitted: %q", sc.Video)
	}
}

func TestRunSkipsExistingDestinationWithoutOverwrite(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source")
	library := filepath.Join(dir, "library")
	writeFile(t, filepath.Join(source, "MyGame", "cover.png"), "v1")

	runImport(t, Options{Console: "NES", SourceDir: source, LibraryDir: library})

	dest := filepath.Join(library, "NES", "MyGame")
	marker := filepath.Join(dest, "keep.png")
	writeFile(t, marker, "local edit")
	writeFile(t, filepath.Join(source, "MyGame", "extra.png"), "v2")

	runImport(t, Options{Console: "NES", SourceDir: source, LibraryDir: library})

	if _, err := os.Stat(marker); err != nil {
		t.Fatalf("existing destination must be left untouched: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "extra.png")); err == nil {
		t.Fatal("copy should have been skipped without --overwrite")
	}
}

func TestRunOverwriteRecreatesDestination(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source")
	library := filepath.Join(dir, "library")
	writeFile(t, filepath.Join(source, "MyGame", "cover.png"), "v1")

	runImport(t, Options{Console: "NES", SourceDir: source, LibraryDir: library})

	dest := filepath.Join(library, "NES", "MyGame")
	writeFile(t, filepath.Join(dest, "stale.png"), "old")

	runImport(t, Options{Console: "NES", SourceDir: source, LibraryDir: library, Overwrite: true})

	if _, err := os.Stat(filepath.Join(dest, "stale.png")); err == nil {
		t.Fatal("overwrite should remove stale destination contents")
	}
	if _, err := os.Stat(filepath.Join(dest, "cover.png")); err != nil {
		t.Fatalf("media missing after overwrite: %v", err)
	}
}

func TestRunPreservesExistingSidecar(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source")
	library := filepath.Join(dir, "library")
	writeFile(t, filepath.Join(source, "MyGame", "cover.png"), "img")

	dest := filepath.Join(library, "NES", "MyGame")
	if err := os.MkdirAll(dest, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := metadata.Write(dest, metadata.Sidecar{Title: "Curated Title"}); err != nil {
		t.Fatal(err)
	}

	runImport(t, Options{Console: "NES", SourceDir: source, LibraryDir: library})

	sc, err := metadata.Read(dest)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Title != "Curated Title" {
		t.Fatalf("existing sidecar must be preserved: %+v", sc)
	}
}

func TestRunMissingSourceFails(t *testing.T) {
	dir := t.TempDir()
	err := Run(context.Background(), Options{
		Console:    "NES",
		SourceDir:  filepath.Join(dir, "nope"),
		LibraryDir: filepath.Join(dir, "library"),
	}, logging.NewNop())
	if err == nil {
		t.Fatal("expected error for missing source directory")
	}
}

func TestSelectMediaFilePrefersStemOverOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "aaa.png"), "img")
	writeFile(t, filepath.Join(dir, "zzz", "FRONT.PNG"), "img")

	got := selectMediaFile(dir, imageExtensions, coverStems)
	if got != "zzz/FRONT.PNG" {
		t.Fatalf("preferred stem should win over walk order: %q", got)
	}
}
