// Command photo-rename renames the images in a directory after captions
// from a vision model.
//
// It parses flags, validates configuration, and either runs system
// diagnostics (--check) or the captioning batch: each file is captioned,
// the caption sanitized into a filename base, and the file renamed to a
// collision-free path.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bergsving-collective/Ramoti-Website/internal/caption"
	"github.com/bergsving-collective/Ramoti-Website/internal/check"
	"github.com/bergsving-collective/Ramoti-Website/internal/config"
	"github.com/bergsving-collective/Ramoti-Website/internal/display"
	"github.com/bergsving-collective/Ramoti-Website/internal/logging"
	"github.com/bergsving-collective/Ramoti-Website/internal/rename"
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
	cfg := config.DefaultRenameConfig()
	if err := config.ParseRenameFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "photo-rename: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "photo-rename: %v\n", err)
		return 1
	}

	// The credential is threaded through the config, never read ad hoc
	// further down.
	cfg.APIKey = os.Getenv(cfg.EnvVar)

	log, err := logging.NewLogger(cfg.ColorMode, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "photo-rename: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	log.Info("=== photo-rename v%s (%s) ===", version, commit)
	log.Info("Dir:   %s", cfg.Dir)
	log.Info("Model: %s", cfg.Model)
	if cfg.DryRun {
		log.Warn("DRY RUN - no files will be renamed")
	}
	log.Info("")

	// Fail fast when the API key or the target directory is missing.
	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Cancel the context on SIGINT/SIGTERM so the batch stops between
	// files; an in-flight request is bound to the same context.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file...")
		cancel()
	}()

	client := caption.NewClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.MaxTokens)
	rename.Run(ctx, &cfg, log, client)

	// Per-file failures are isolated and already logged; a batch that ran
	// to completion exits clean either way.
	return 0
}
