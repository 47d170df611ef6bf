package catalog

import "strings"

// Library is the aggregate catalog produced by one generation run. It is
// rebuilt from scratch every time and never persisted incrementally.
type Library struct {
	GeneratedAt string    `json:"generated_at"`
	Consoles    []Console `json:"consoles"`
}

// Console groups the games of one platform directory.
type Console struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Games []Game `json:"games"`
}

// Game is one catalog entry. Pointer fields serialize as null when the
// corresponding sidecar field was absent or the referenced media is missing.
// Year carries the sidecar value untyped so numeric years survive untouched.
type Game struct {
	Title     string   `json:"title"`
	Year      any      `json:"year"`
	Publisher *string  `json:"publisher"`
	Region    *string  `json:"region"`
	Tags      []string `json:"tags"`
	Notes     *string  `json:"notes"`
	Cover     *string  `json:"cover"`
	Video     *string  `json:"video"`
	Source    string   `json:"source"`
}

// GameCount returns the total number of games across all consoles.
func (l *Library) GameCount() int {
	total := 0
	for _, console := range l.Consoles {
		total += len(console.Games)
	}
	return total
}

func optString(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	v := value
	return &v
}
