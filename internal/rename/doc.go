// Package rename implements the caption-driven batch rename: discover the
// images in one flat directory, caption each through a remote vision model,
// and rename it to a sanitized, collision-free filename.
//
// Planned implementation:
//
// Types:
//   - Captioner (interface: Caption(ctx, filename, data) → text)
//   - RunStats (Total, Current, Renamed, Skipped, Failed, TotalImageBytes)
//
// Functions:
//   - Discover(dir) → []string
//     Flat listing, sorted by name; regular files only, hidden entries
//     excluded, extension allow-list (.jpg .jpeg .png .webp .bmp .tiff
//     .gif). No recursion.
//   - Run(ctx, cfg, log, captioner) → RunStats
//     Batch runner: for each image: read → caption → sanitize → unique
//     destination → skip, dry-run, or rename. A failing file never stops
//     the batch; the context stops it between files.
//
// Split along these boundaries: discover.go, runner.go, stats.go.
package rename
