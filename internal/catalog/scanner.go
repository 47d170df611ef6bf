package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// romExtensions lists the known ROM/disc-image container formats that turn a
// bare file into a catalog entry.
var romExtensions = map[string]struct{}{
	".nes": {},
	".sfc": {},
	".smc": {},
	".gb":  {},
	".gbc": {},
	".gba": {},
	".gen": {},
	".md":  {},
	".sms": {},
	".gg":  {},
	".pce": {},
	".iso": {},
	".cue": {},
	".chd": {},
	".zip": {},
	".7z":  {},
}

// entry is one immediate child of a console directory that qualifies for the
// catalog: any subdirectory, or a file whose extension is a known ROM format.
type entry struct {
	name  string
	isDir bool
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func isROMFile(name string) bool {
	dot := strings.LastIndexByte(name, '.')
	if dot < 0 {
		return false
	}
	_, ok := romExtensions[strings.ToLower(name[dot:])]
	return ok
}

// consoleDirs lists the non-hidden subdirectories of the library root in
// case-insensitive name order.
func consoleDirs(libraryDir string) ([]string, error) {
	children, err := os.ReadDir(libraryDir)
	if err != nil {
		return nil, fmt.Errorf("read library directory %s: %w", libraryDir, err)
	}
	var names []string
	for _, child := range children {
		if !child.IsDir() || isHidden(child.Name()) {
			continue
		}
		names = append(names, child.Name())
	}
	sortFolded(names, func(name string) string { return name })
	return names, nil
}

// consoleEntries enumerates the game folders and bare ROM files of one
// console directory, hidden entries excluded, in case-insensitive name order.
func consoleEntries(consoleDir string) ([]entry, error) {
	children, err := os.ReadDir(consoleDir)
	if err != nil {
		return nil, fmt.Errorf("read console directory %s: %w", consoleDir, err)
	}
	var entries []entry
	for _, child := range children {
		if isHidden(child.Name()) {
			continue
		}
		if child.IsDir() {
			entries = append(entries, entry{name: child.Name(), isDir: true})
			continue
		}
		if child.Type().IsRegular() && isROMFile(child.Name()) {
			entries = append(entries, entry{name: child.Name()})
		}
	}
	sortFolded(entries, func(e entry) string { return e.name })
	return entries, nil
}

// sortFolded orders items by the case-folded form of their name, giving a
// deterministic case-insensitive ordering.
func sortFolded[T any](items []T, name func(T) string) {
	caser := cases.Fold()
	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = caser.String(name(item))
	}
	sort.Sort(&foldedSorter[T]{items: items, keys: keys})
}

type foldedSorter[T any] struct {
	items []T
	keys  []string
}

func (s *foldedSorter[T]) Len() int { return len(s.items) }

func (s *foldedSorter[T]) Less(i, j int) bool { return s.keys[i] < s.keys[j] }

func (s *foldedSorter[T]) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}
