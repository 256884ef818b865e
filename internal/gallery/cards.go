package gallery

import (
	"fmt"
	"html/template"
	"strings"
)

// Card is the payload handed to the card template for one row.
type Card struct {
	Filename string
	Tag      string
	Title    string
}

// defaultCardTemplate matches the markup the gallery page was built around:
// a category-tagged wrapper, a rounded clipping div, and a lazy-loaded
// lightbox image. Indentation lines the fragment up under the masonryGrid
// container. The leading newline is part of the fragment.
const defaultCardTemplate = `
            <div class="gallery-card group" data-category="{{.Tag}}">
                <div class="relative overflow-hidden rounded-3xl">
                    <img src="photos/{{.Filename}}" class="w-full object-cover" alt="{{.Title}}" onclick="openLightbox(this.src)" loading="lazy">
                </div>
            </div>`

// RenderCards renders one fragment per row and joins them into the block
// that replaces the masonryGrid interior. tmplText overrides the built-in
// markup when non-empty; it is parsed as html/template with the Card fields
// available, so attribute values are escaped contextually.
func RenderCards(rows []TagRow, tmplText string) (string, error) {
	if tmplText == "" {
		tmplText = defaultCardTemplate
	}
	tmpl, err := template.New("card").Parse(tmplText)
	if err != nil {
		return "", fmt.Errorf("parse card template: %w", err)
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		card := Card{
			Filename: row.Filename,
			Tag:      row.Tag,
			Title:    TitleFromFilename(row.Filename),
		}
		if err := tmpl.Execute(&b, card); err != nil {
			return "", fmt.Errorf("render card for %s: %w", row.Filename, err)
		}
	}
	b.WriteString("\n")
	return b.String(), nil
}
