package rename

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bergsving-collective/Ramoti-Website/internal/config"
	"github.com/bergsving-collective/Ramoti-Website/internal/display"
	"github.com/bergsving-collective/Ramoti-Website/internal/logging"
	"github.com/bergsving-collective/Ramoti-Website/internal/naming"
)

// Payload size bounds outside which a file is flagged as unusual. Outliers
// are logged, not rejected.
const (
	tinyImageBytes  = 1 << 10
	largeImageBytes = 16 << 20
)

// Captioner produces a descriptive caption for one image. Implemented by
// caption.Client; defined here so the runner stays decoupled from the HTTP
// client and testable with a fake.
type Captioner interface {
	Caption(ctx context.Context, filename string, data []byte) (string, error)
}

// Run is the top-level batch entry point. It discovers images, processes
// each sequentially, and returns aggregate stats. Cancelling the context
// stops the batch between files; per-file failures never do.
func Run(ctx context.Context, cfg *config.RenameConfig, log *logging.Logger, captioner Captioner) RunStats {
	var stats RunStats

	files, err := Discover(cfg.Dir)
	if err != nil {
		log.Error("Image discovery failed: %v", err)
		return stats
	}
	stats.Total = len(files)

	logBatchHeader(cfg, log, &stats)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processFile(ctx, cfg, log, captioner, path, &stats)
	}

	logSummary(cfg, log, &stats)
	return stats
}

// processFile handles one image: read → caption → sanitize → unique
// destination → skip, dry-run, or rename. The courtesy pause runs only
// after a rename or a dry-run report, never after skips or failures.
func processFile(
	ctx context.Context,
	cfg *config.RenameConfig,
	log *logging.Logger,
	captioner Captioner,
	path string,
	stats *RunStats,
) {
	name := filepath.Base(path)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, name)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("Read failed: %s: %v", name, err)
		stats.Failed++
		fmt.Println()
		return
	}
	logPayloadOutlier(log, name, int64(len(data)))
	stats.TotalImageBytes += int64(len(data))

	text, err := captioner.Caption(ctx, name, data)
	if err != nil {
		log.Error("Caption failed: %s: %v", name, err)
		stats.Failed++
		fmt.Println()
		return
	}
	log.Debug(cfg.Verbose, "  Caption: %s", text)

	base := naming.Sanitize(text)
	if cfg.DatePrefix {
		base = naming.DatePrefix(naming.CaptureDate(path)) + "_" + base
	}

	// The destination keeps the source extension, lowercased.
	ext := strings.ToLower(filepath.Ext(name))
	newPath := naming.UniquePath(cfg.Dir, base, ext)

	if newPath == path {
		log.Warn("Skip (unchanged): %s", name)
		stats.Skipped++
		fmt.Println()
		return
	}

	if cfg.DryRun {
		log.Success("[DRY] Would rename -> %s", filepath.Base(newPath))
		stats.Renamed++
	} else {
		if err := os.Rename(path, newPath); err != nil {
			log.Error("Rename failed: %s: %v", name, err)
			stats.Failed++
			fmt.Println()
			return
		}
		log.Rename("%s -> %s", name, filepath.Base(newPath))
		stats.Renamed++
	}
	fmt.Println()

	pause(ctx, cfg.Sleep)
}

// pause waits out the configured inter-call delay, returning early when the
// context is cancelled.
func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func logPayloadOutlier(log *logging.Logger, name string, size int64) {
	switch {
	case size < tinyImageBytes:
		log.Outlier("  Payload outlier (tiny): %s is %s", name, display.FormatBytes(size))
	case size > largeImageBytes:
		log.Outlier("  Payload outlier (large): %s is %s", name, display.FormatBytes(size))
	}
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.RenameConfig, log *logging.Logger, stats *RunStats) {
	log.Info("Found %d images in %s", stats.Total, cfg.Dir)
	log.Info("Model: %s (max %d output tokens)", cfg.Model, cfg.MaxTokens)

	if cfg.DatePrefix {
		log.Info("Naming: capture-date prefix + sanitized caption")
	} else {
		log.Info("Naming: sanitized caption")
	}
	if cfg.DryRun {
		log.Info("Mode: dry run (no files will be renamed)")
	}
	if cfg.Sleep > 0 {
		log.Info("Pause between calls: %s", cfg.Sleep)
	}
	fmt.Println()
}

func logSummary(cfg *config.RenameConfig, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d renamed, %d skipped, %d failed", stats.Renamed, stats.Skipped, stats.Failed)
	log.Info("Summary report:")
	log.Info("  Total files processed: %d", stats.Current)
	log.Info("  Image bytes submitted: %s", display.FormatBytes(stats.TotalImageBytes))
	if cfg.DryRun {
		log.Info("  No files were renamed (dry run)")
	}
}
