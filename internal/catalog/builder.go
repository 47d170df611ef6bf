package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"time"

	"romshelf/internal/fileutil"
	"romshelf/internal/logging"
	"romshelf/internal/metadata"
	"romshelf/internal/textutil"
)

// mediaFunc turns a sidecar media reference into the value recorded in the
// catalog. A nil result with a nil error means the reference did not resolve
// and the field stays null.
type mediaFunc func(gameDir, ref, consoleSlug, titleSlug string) (*string, error)

// Builder assembles the catalog from a library tree and copies referenced
// media into the output asset tree.
type Builder struct {
	libraryDir string
	outDir     string
	logger     *slog.Logger
	now        func() time.Time
}

// NewBuilder constructs a builder for one generation run.
func NewBuilder(libraryDir, outDir string, logger *slog.Logger) *Builder {
	return &Builder{
		libraryDir: libraryDir,
		outDir:     outDir,
		logger:     logging.NewComponentLogger(logger, "builder"),
		now:        time.Now,
	}
}

// Build walks the library, copies referenced media under <out>/assets, and
// returns the assembled catalog. The assets directory is created even when
// the library is empty so the output tree always has its full shape.
func (b *Builder) Build(ctx context.Context) (*Library, error) {
	if err := fileutil.EnsureDir(filepath.Join(b.outDir, assetsDirName)); err != nil {
		return nil, err
	}
	copyMedia := func(gameDir, ref, consoleSlug, titleSlug string) (*string, error) {
		abs, rel, ok := resolveMedia(gameDir, ref)
		if !ok {
			return nil, nil
		}
		copied, err := copyAsset(b.outDir, consoleSlug, titleSlug, abs, rel)
		if err != nil {
			return nil, fmt.Errorf("copy media %s: %w", abs, err)
		}
		return &copied, nil
	}
	return assemble(ctx, b.libraryDir, b.logger, b.now, copyMedia)
}

// Scan assembles the catalog without copying media or touching an output
// tree. Media references that resolve keep their game-folder-relative path;
// everything else stays null.
func Scan(ctx context.Context, libraryDir string, logger *slog.Logger) (*Library, error) {
	resolveOnly := func(gameDir, ref, consoleSlug, titleSlug string) (*string, error) {
		if _, rel, ok := resolveMedia(gameDir, ref); ok {
			return &rel, nil
		}
		return nil, nil
	}
	return assemble(ctx, libraryDir, logging.NewComponentLogger(logger, "scanner"), time.Now, resolveOnly)
}

func assemble(ctx context.Context, libraryDir string, logger *slog.Logger, now func() time.Time, media mediaFunc) (*Library, error) {
	logger = logging.WithContext(ctx, logger)

	names, err := consoleDirs(libraryDir)
	if err != nil {
		return nil, err
	}

	consoles := make([]Console, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		console, err := buildConsole(libraryDir, name, media)
		if err != nil {
			return nil, fmt.Errorf("console %s: %w", name, err)
		}
		logger.Debug("console scanned",
			logging.String("console", console.Name),
			logging.Int("games", len(console.Games)),
		)
		consoles = append(consoles, console)
	}

	lib := &Library{
		GeneratedAt: now().UTC().Format(time.RFC3339),
		Consoles:    consoles,
	}
	logger.Info("library assembled",
		logging.Int("consoles", len(lib.Consoles)),
		logging.Int("games", lib.GameCount()),
	)
	return lib, nil
}

func buildConsole(libraryDir, name string, media mediaFunc) (Console, error) {
	consoleDir := filepath.Join(libraryDir, name)
	slug := textutil.Slug(name)

	entries, err := consoleEntries(consoleDir)
	if err != nil {
		return Console{}, err
	}

	games := make([]Game, 0, len(entries))
	for _, e := range entries {
		if !e.isDir {
			games = append(games, bareGame(name, e.name))
			continue
		}
		game, err := buildGame(consoleDir, name, slug, e.name, media)
		if err != nil {
			return Console{}, err
		}
		games = append(games, game)
	}

	return Console{Name: name, Slug: slug, Games: games}, nil
}

func buildGame(consoleDir, consoleName, consoleSlug, folderName string, media mediaFunc) (Game, error) {
	gameDir := filepath.Join(consoleDir, folderName)

	sc, err := metadata.Read(gameDir)
	if err != nil {
		return Game{}, err
	}

	title := sc.Title
	if title == "" {
		title = folderName
	}
	titleSlug := textutil.Slug(title)

	cover, err := media(gameDir, sc.Cover, consoleSlug, titleSlug)
	if err != nil {
		return Game{}, err
	}
	video, err := media(gameDir, sc.Video, consoleSlug, titleSlug)
	if err != nil {
		return Game{}, err
	}

	tags := sc.Tags
	if tags == nil {
		tags = []string{}
	}

	return Game{
		Title:     title,
		Year:      sc.Year,
		Publisher: optString(sc.Publisher),
		Region:    optString(sc.Region),
		Tags:      tags,
		Notes:     optString(sc.Notes),
		Cover:     cover,
		Video:     video,
		Source:    path.Join(consoleName, folderName),
	}, nil
}

// bareGame builds the minimal entry for a ROM file sitting directly in the
// console directory: no sidecar, no media, title taken from the file stem.
func bareGame(consoleName, fileName string) Game {
	stem := fileName
	if dot := strings.LastIndexByte(fileName, '.'); dot > 0 {
		stem = fileName[:dot]
	}
	return Game{
		Title:  stem,
		Tags:   []string{},
		Source: path.Join(consoleName, fileName),
	}
}
