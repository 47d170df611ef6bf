// Package render turns the catalog model into the static HTML page. The page
// is fully self-contained: inline styles, no scripts, and only relative asset
// references produced by the builder.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"romshelf/internal/catalog"
)

//go:embed templates/index.html.tmpl
var templates embed.FS

// PageFilename is the rendered page written next to the JSON snapshot.
const PageFilename = "index.html"

var pageTemplate = template.Must(template.ParseFS(templates, "templates/index.html.tmpl"))

// pageData is the view model handed to the template. User-supplied text is
// escaped by html/template at execution time.
type pageData struct {
	TotalGames int
	Consoles   []consoleView
}

type consoleView struct {
	Name  string
	Count int
	Games []gameView
}

type gameView struct {
	Title string
	Cover string
	Video string
	Meta  string
	Tags  string
	Notes string
}

// Page renders the catalog to a single HTML document. The output is
// deterministic for identical input; the generation timestamp deliberately
// never appears in the page body.
func Page(lib *catalog.Library) (string, error) {
	var buf strings.Builder
	if err := pageTemplate.Execute(&buf, newPageData(lib)); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return buf.String(), nil
}

func newPageData(lib *catalog.Library) pageData {
	data := pageData{
		TotalGames: lib.GameCount(),
		Consoles:   make([]consoleView, 0, len(lib.Consoles)),
	}
	for _, console := range lib.Consoles {
		view := consoleView{
			Name:  console.Name,
			Count: len(console.Games),
			Games: make([]gameView, 0, len(console.Games)),
		}
		for _, game := range console.Games {
			view.Games = append(view.Games, newGameView(game))
		}
		data.Consoles = append(data.Consoles, view)
	}
	return data
}

func newGameView(game catalog.Game) gameView {
	view := gameView{Title: game.Title}
	if game.Cover != nil {
		view.Cover = *game.Cover
	}
	if game.Video != nil {
		view.Video = *game.Video
	}

	var meta []string
	if game.Year != nil {
		if year := strings.TrimSpace(fmt.Sprint(game.Year)); year != "" {
			meta = append(meta, year)
		}
	}
	if game.Publisher != nil {
		meta = append(meta, *game.Publisher)
	}
	if game.Region != nil {
		meta = append(meta, *game.Region)
	}
	view.Meta = strings.Join(meta, " - ")

	view.Tags = strings.Join(game.Tags, ", ")
	if game.Notes != nil {
		view.Notes = *game.Notes
	}
	return view
}
