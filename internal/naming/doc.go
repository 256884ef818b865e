// Package naming derives collision-free destination names for captioned
// photos.
//
// Types:
//   - none exported; the package is a set of pure-ish helpers over the
//     filesystem.
//
// Functions:
//   - Sanitize(caption) → base
//     Lowercase, collapse non-alphanumeric runs to single underscores,
//     trim underscores, fall back to "image" when nothing survives.
//   - UniquePath(dir, base, ext) → path
//     Linear probe: base.ext, base_02.ext, base_03.ext, …
//   - CaptureDate(path) → time.Time
//     EXIF DateTimeOriginal, then filename date patterns, then mtime.
//   - DatePrefix(t) → "YYYYMMDD"
//
// Split along these boundaries: sanitize.go, unique.go, exifdate.go.
package naming
