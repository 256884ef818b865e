// Package config holds runtime configuration for the gallery tools:
// defaults, optional YAML config-file overlay, CLI flag parsing, and
// validation. Defaults match the legacy site scripts for parity.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// --- Enum types for validated string fields ---

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// TagsConfig holds all runtime settings for the gallery-tags tool. It is
// populated by [DefaultTagsConfig] and then mutated by [ParseTagsFlags]
// before being passed (by pointer) to packages that need it.
type TagsConfig struct {
	// Inputs.
	CSVPath  string // Default: "gallery-tags.csv".
	HTMLPath string // Default: "gallery.html".

	// CardTemplate optionally overrides the built-in card markup. Only
	// settable via the config file; rendered with html/template using
	// fields Tag, Filename, Title.
	CardTemplate string

	// Behavior flags.
	DryRun bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.

	// ConfigFile is the YAML file the overlay was loaded from, if any.
	ConfigFile string
}

// DefaultTagsConfig returns a TagsConfig with defaults matching the legacy
// apply-gallery-tags script. Used as the base before the config-file overlay
// and [ParseTagsFlags] apply overrides.
func DefaultTagsConfig() TagsConfig {
	return TagsConfig{
		CSVPath:   "gallery-tags.csv",
		HTMLPath:  "gallery.html",
		DryRun:    false,
		Verbose:   false,
		ColorMode: ColorAuto,
	}
}

// RenameConfig holds all runtime settings for the photo-rename tool.
type RenameConfig struct {
	// Inputs.
	Dir string // Default: "photos".

	// Captioning service.
	Model     string        // Default: "gpt-4.1-mini".
	BaseURL   string        // Default: "https://api.openai.com/v1".
	EnvVar    string        // Name of the API-key env var. Default: "OPENAI_API_KEY".
	APIKey    string        // Resolved from EnvVar at startup; never a flag.
	MaxTokens int           // Default: 80. Max output tokens per caption.
	Sleep     time.Duration // Default: 200ms. Pause after each captioned file.

	// Behavior flags.
	DryRun     bool
	DatePrefix bool // Prefix new names with the capture date (YYYYMMDD_).

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.

	// ConfigFile is the YAML file the overlay was loaded from, if any.
	ConfigFile string
}

// DefaultRenameConfig returns a RenameConfig with defaults matching the
// legacy rename-by-caption script.
func DefaultRenameConfig() RenameConfig {
	return RenameConfig{
		Dir:        "photos",
		Model:      "gpt-4.1-mini",
		BaseURL:    "https://api.openai.com/v1",
		EnvVar:     "OPENAI_API_KEY",
		MaxTokens:  80,
		Sleep:      200 * time.Millisecond,
		DryRun:     false,
		DatePrefix: false,
		Verbose:    false,
		ColorMode:  ColorAuto,
		CheckOnly:  false,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that required paths are set and enum fields hold valid values.
func (c *TagsConfig) Validate() error {
	if c.CSVPath == "" {
		return errors.New("CSV path must not be empty")
	}
	if c.HTMLPath == "" {
		return errors.New("HTML path must not be empty")
	}
	return validateColorMode(c.ColorMode)
}

// Validate checks required fields and canonicalizes the base URL. When not in
// CheckOnly mode the target directory must be set; its existence is verified
// later by check.CheckDeps.
func (c *RenameConfig) Validate() error {
	if c.Model == "" {
		return errors.New("model must not be empty")
	}
	if c.EnvVar == "" {
		return errors.New("API key env var name must not be empty")
	}
	normalized, err := normalizeBaseURL(c.BaseURL)
	if err != nil {
		return err
	}
	c.BaseURL = normalized

	if c.MaxTokens < 1 {
		return fmt.Errorf("max tokens must be positive (got %d)", c.MaxTokens)
	}
	if c.Sleep < 0 {
		return fmt.Errorf("sleep must not be negative (got %s)", c.Sleep)
	}
	if err := validateColorMode(c.ColorMode); err != nil {
		return err
	}

	if c.CheckOnly {
		return nil
	}
	if c.Dir == "" {
		return errors.New("image directory must not be empty")
	}
	return nil
}

// normalizeBaseURL validates and canonicalizes the service base URL.
// Trailing slashes are stripped so endpoint paths can be appended verbatim.
func normalizeBaseURL(raw string) (string, error) {
	s := strings.TrimRight(strings.TrimSpace(raw), "/")
	if s == "" {
		return "", errors.New("base URL must not be empty")
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return "", fmt.Errorf("invalid base URL %q (must start with http:// or https://)", raw)
	}
	return s, nil
}

func validateColorMode(m ColorMode) error {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", m)
	}
}
