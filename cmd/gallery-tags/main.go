// Command gallery-tags applies the filename/tag CSV to the gallery page.
//
// It validates the CSV, renders one card per row, and splices the block
// into the masonryGrid container of gallery.html, overwriting the page in
// place.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bergsving-collective/Ramoti-Website/internal/config"
	"github.com/bergsving-collective/Ramoti-Website/internal/display"
	"github.com/bergsving-collective/Ramoti-Website/internal/gallery"
	"github.com/bergsving-collective/Ramoti-Website/internal/logging"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build", these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Bootstrap: the logger doesn't exist yet, so errors go directly to
	// stderr via fmt. Once NewLogger succeeds, all output goes through the
	// logger for consistent formatting and log-file capture.
	cfg := config.DefaultTagsConfig()
	if err := config.ParseTagsFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "gallery-tags: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "gallery-tags: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(cfg.ColorMode, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gallery-tags: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	log.Info("=== gallery-tags v%s (%s) ===", version, commit)
	log.Info("CSV:  %s", cfg.CSVPath)
	log.Info("HTML: %s", cfg.HTMLPath)
	if cfg.DryRun {
		log.Warn("DRY RUN - nothing will be written")
	}
	log.Info("")

	if err := gallery.Apply(&cfg, log); err != nil {
		// An incomplete CSV is reported exhaustively so the operator can
		// fix every row in one pass.
		var missing *gallery.MissingTagsError
		if errors.As(err, &missing) {
			log.Error("Missing tags for these files:")
			for _, name := range missing.Filenames {
				log.Error(" - %s", name)
			}
			log.Error("Fill all tags before applying.")
			return 1
		}
		log.Error("%v", err)
		return 1
	}
	return 0
}
