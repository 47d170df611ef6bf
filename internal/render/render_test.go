package render

import (
	"strings"
	"testing"

	"romshelf/internal/catalog"
)

func strPtr(s string) *string { return &s }

func TestPageEmptyLibrary(t *testing.T) {
	html, err := Page(&catalog.Library{GeneratedAt: "2024-01-02T03:04:05Z"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "Aucun jeu pour le moment.") {
		t.Fatalf("missing empty-state message:\n%s", html)
	}
	if !strings.Contains(html, "Total : 0 jeux") {
		t.Fatalf("missing total line:\n%s", html)
	}
	if strings.Contains(html, "2024-01-02T03:04:05Z") {
		t.Fatalf("timestamp must not appear in the page body:\n%s", html)
	}
}

func TestPageEscapesUserText(t *testing.T) {
	lib := &catalog.Library{
		Consoles: []catalog.Console{{
			Name: "NES <script>alert(1)</script>",
			Slug: "nes",
			Games: []catalog.Game{{
				Title:     `"Zelda" & <friends>`,
				Publisher: strPtr("<b>Nintendo</b>"),
				Tags:      []string{"<action>"},
				Notes:     strPtr("a & b"),
			}},
		}},
	}
	html, err := Page(lib)
	if err != nil {
		t.Fatal(err)
	}
	for _, raw := range []string{"<script>alert(1)</script>", "<friends>", "<b>Nintendo</b>", "<action>"} {
		if strings.Contains(html, raw) {
			t.Fatalf("unescaped user text %q:\n%s", raw, html)
		}
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatalf("expected escaped script tag:\n%s", html)
	}
}

func TestPageOmitsAbsentBlocks(t *testing.T) {
	lib := &catalog.Library{
		Consoles: []catalog.Console{{
			Name:  "NES",
			Slug:  "nes",
			Games: []catalog.Game{{Title: "Contra", Tags: []string{}}},
		}},
	}
	html, err := Page(lib)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(html, "<img") {
		t.Fatalf("cover element should be omitted:\n%s", html)
	}
	if strings.Contains(html, "<video") {
		t.Fatalf("video element should be omitted:\n%s", html)
	}
	if strings.Contains(html, `class="tags"`) {
		t.Fatalf("tags section should be omitted:\n%s", html)
	}
	if strings.Contains(html, `class="meta"`) {
		t.Fatalf("meta section should be omitted:\n%s", html)
	}
	if !strings.Contains(html, "<h3>Contra</h3>") {
		t.Fatalf("title missing:\n%s", html)
	}
}

func TestPageRendersMediaAndMeta(t *testing.T) {
	lib := &catalog.Library{
		Consoles: []catalog.Console{{
			Name: "SNES",
			Slug: "snes",
			Games: []catalog.Game{{
				Title:     "Chrono Trigger",
				Year:      float64(1995),
				Publisher: strPtr("Square"),
				Region:    strPtr("NTSC-J"),
				Tags:      []string{"rpg", "classic"},
				Cover:     strPtr("assets/snes/chrono-trigger/cover.png"),
				Video:     strPtr("assets/snes/chrono-trigger/trailer.mp4"),
			}},
		}},
	}
	html, err := Page(lib)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, `src="assets/snes/chrono-trigger/cover.png"`) {
		t.Fatalf("cover src missing:\n%s", html)
	}
	if !strings.Contains(html, `<source src="assets/snes/chrono-trigger/trailer.mp4">`) {
		t.Fatalf("video source missing:\n%s", html)
	}
	if !strings.Contains(html, "1995 - Square - NTSC-J") {
		t.Fatalf("meta line missing:\n%s", html)
	}
	if !strings.Contains(html, "rpg, classic") {
		t.Fatalf("tags line missing:\n%s", html)
	}
	if !strings.Contains(html, "SNES (1)") {
		t.Fatalf("console heading missing:\n%s", html)
	}
}

func TestPageDeterministic(t *testing.T) {
	lib := &catalog.Library{
		Consoles: []catalog.Console{{
			Name:  "NES",
			Slug:  "nes",
			Games: []catalog.Game{{Title: "Contra", Tags: []string{}}},
		}},
	}
	first, err := Page(lib)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Page(lib)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatal("rendering is not deterministic")
	}
}
