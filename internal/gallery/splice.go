package gallery

import (
	"errors"
	"regexp"
	"strings"
)

// anchorOpen is the literal opening marker of the region the tag pass owns.
// Everything between it and the grid's structural close is regenerated on
// each run.
const anchorOpen = `<div class="max-w-7xl mx-auto masonry-grid" id="masonryGrid">`

var (
	// ErrAnchorNotFound means the gallery page has no masonryGrid region.
	ErrAnchorNotFound = errors.New("masonryGrid container not found in gallery HTML")
	// ErrAnchorAmbiguous means the opening marker appears more than once.
	// Splice refuses to pick one rather than silently rewriting the wrong
	// region.
	ErrAnchorAmbiguous = errors.New("masonryGrid container appears more than once in gallery HTML")
)

// anchorPattern captures the opening marker, the (lazily matched) interior,
// and the closing "</div> then </main>" sequence that ends the grid. The
// closing indentation admits horizontal whitespace only, so a rerun over the
// tool's own output captures the same closing bytes instead of swallowing
// the blank line the generator leaves before them.
var anchorPattern = regexp.MustCompile(
	`(` + regexp.QuoteMeta(anchorOpen) + `)([\s\S]*?)(\n[ \t]*</div>\n[ \t]*</main>)`)

// Splice replaces the interior of the masonryGrid region with cards, keeping
// the opening marker and the closing sequence verbatim. The marker must
// appear exactly once in doc. Splicing the tool's own output again yields an
// identical document, so repeated runs are idempotent.
func Splice(doc, cards string) (string, error) {
	switch n := strings.Count(doc, anchorOpen); {
	case n == 0:
		return "", ErrAnchorNotFound
	case n > 1:
		return "", ErrAnchorAmbiguous
	}

	m := anchorPattern.FindStringSubmatchIndex(doc)
	if m == nil {
		return "", ErrAnchorNotFound
	}

	open := doc[m[2]:m[3]]
	closing := doc[m[6]:m[7]]
	return doc[:m[0]] + open + "\n" + cards + closing + doc[m[1]:], nil
}
