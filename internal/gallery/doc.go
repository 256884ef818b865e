// Package gallery implements the tag pass over the static gallery page:
// load a filename→tag CSV, render one card fragment per row, and splice
// the block into the masonryGrid container of gallery.html.
//
// Planned implementation:
//
// Types:
//   - TagRow (Filename, Tag)
//   - Card (Filename, Tag, Title; the template payload)
//   - MissingTagsError (every filename whose tag column is empty)
//
// Functions:
//   - LoadTags(path) → []TagRow
//     CSV with required headers filename,tag; fields trimmed; rows with
//     empty filename dropped; row order preserved.
//   - ValidateTags(rows) → error
//     Collects all empty-tag offenders before failing.
//   - TitleFromFilename(name) → string
//     Strip extension, underscores to spaces, capitalize each word.
//   - RenderCards(rows, tmplText) → string
//     One fragment per row via html/template; built-in markup unless a
//     template override is supplied.
//   - Splice(doc, cards) → string
//     Replace the interior of the masonryGrid region; the opening marker
//     must appear exactly once.
//   - Apply(cfg, log) → error
//     Full pass: load → validate → render → splice → write back in place.
//     Every error path aborts before the write.
//
// Split along these boundaries: tags.go, title.go, cards.go, splice.go,
// apply.go.
package gallery
