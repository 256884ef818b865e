// Package check provides system diagnostics (--check mode) and pre-run
// configuration validation (CheckDeps) for the photo-rename tool: API key,
// captioning endpoint, and target directory.
package check

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/tidwall/gjson"

	"github.com/bergsving-collective/Ramoti-Website/internal/config"
	"github.com/bergsving-collective/Ramoti-Website/internal/display"
	"github.com/bergsving-collective/Ramoti-Website/internal/rename"
)

// Sentinel errors returned by CheckDeps when a fatal precondition is missing.
var (
	ErrAPIKeyMissing = errors.New("API key not set")
	ErrDirNotFound   = errors.New("image directory not found")
)

// endpointTimeout bounds the --check round-trip to the captioning service.
const endpointTimeout = 10 * time.Second

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// CheckDeps is the pre-run validation: the API key must be resolved and the
// target directory must exist. Both are fatal; nothing is processed when
// either fails. Returns a wrapped sentinel error on failure.
func CheckDeps(cfg *config.RenameConfig) error {
	if cfg.APIKey == "" {
		return fmt.Errorf("%w (set $%s)", ErrAPIKeyMissing, cfg.EnvVar)
	}
	fi, err := os.Stat(cfg.Dir)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrDirNotFound, cfg.Dir)
	}
	return nil
}

// RunCheck runs the interactive --check flow: API key presence (masked),
// endpoint reachability, whether the configured model appears in the
// service's model listing, and target directory stats. The directory and
// model-listing results are informational; the returned ok reflects the API
// key and endpoint checks.
func RunCheck(cfg *config.RenameConfig, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkAPIKey(cfg, log)
	if ok && !checkEndpoint(cfg, log) {
		ok = false
	}
	checkDirectory(cfg, log)
	return ok
}

// checkAPIKey reports whether the credential was resolved, showing only its
// tail.
func checkAPIKey(cfg *config.RenameConfig, log Logger) bool {
	if cfg.APIKey == "" {
		log.Error("API key not set (set $%s)", cfg.EnvVar)
		return false
	}
	log.Success("API key present ($%s, ...%s)", cfg.EnvVar, maskKey(cfg.APIKey))
	return true
}

// checkEndpoint lists the service's models and looks for the configured one.
func checkEndpoint(cfg *config.RenameConfig, log Logger) bool {
	ctx, cancel := context.WithTimeout(context.Background(), endpointTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.BaseURL+"/models", nil)
	if err != nil {
		log.Error("Endpoint check failed: %v", err)
		return false
	}
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Error("Endpoint unreachable: %v", err)
		return false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Endpoint check failed: %v", err)
		return false
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := gjson.GetBytes(body, "error.message").String()
		if msg == "" {
			msg = resp.Status
		}
		log.Error("Endpoint check failed (HTTP %d): %s", resp.StatusCode, msg)
		return false
	}
	log.Success("Endpoint reachable: %s", cfg.BaseURL)

	found := false
	gjson.GetBytes(body, "data").ForEach(func(_, item gjson.Result) bool {
		if item.Get("id").String() == cfg.Model {
			found = true
			return false
		}
		return true
	})
	if found {
		log.Success("Model listed: %s", cfg.Model)
	} else {
		log.Warn("Model not in /models listing: %s (may still work)", cfg.Model)
	}
	return true
}

// checkDirectory reports how many eligible images the target directory holds.
func checkDirectory(cfg *config.RenameConfig, log Logger) {
	fi, err := os.Stat(cfg.Dir)
	if err != nil || !fi.IsDir() {
		log.Warn("Image directory not found: %s", cfg.Dir)
		return
	}

	files, err := rename.Discover(cfg.Dir)
	if err != nil {
		log.Warn("Cannot list %s: %v", cfg.Dir, err)
		return
	}
	var total int64
	for _, path := range files {
		if info, err := os.Stat(path); err == nil {
			total += info.Size()
		}
	}
	log.Success("Directory %s: %d eligible images (%s)", cfg.Dir, len(files), display.FormatBytes(total))
}

// maskKey keeps the last four characters of a credential for display.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[len(key)-4:]
}
