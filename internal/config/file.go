package config

// This file implements the optional YAML config file. Values are applied on
// top of defaults and below CLI flags: ParseTagsFlags/ParseRenameFlags load
// the file first, then register flags with defaults taken from the already
// overlaid config, so only flags the user actually passes win.

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when --config is not given.
const DefaultFileName = "gallery-tools.yaml"

// FileConfig mirrors the YAML config file. Pointer fields distinguish
// "not set" from zero values so the overlay only touches keys that appear
// in the file.
type FileConfig struct {
	Gallery GallerySection `yaml:"gallery"`
	Rename  RenameSection  `yaml:"rename"`
}

// GallerySection configures the gallery-tags tool.
type GallerySection struct {
	CSV          *string `yaml:"csv"`
	HTML         *string `yaml:"html"`
	CardTemplate *string `yaml:"card_template"`
	Color        *string `yaml:"color"`
	Log          *string `yaml:"log"`
}

// RenameSection configures the photo-rename tool.
type RenameSection struct {
	Dir        *string `yaml:"dir"`
	Model      *string `yaml:"model"`
	BaseURL    *string `yaml:"base_url"`
	EnvVar     *string `yaml:"env_var"`
	MaxTokens  *int    `yaml:"max_tokens"`
	Sleep      *string `yaml:"sleep"` // Go duration string, e.g. "200ms".
	DatePrefix *bool   `yaml:"date_prefix"`
	Color      *string `yaml:"color"`
	Log        *string `yaml:"log"`
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &fc, nil
}

// ApplyTags overlays the gallery section onto cfg.
func (fc *FileConfig) ApplyTags(cfg *TagsConfig) error {
	g := fc.Gallery
	if g.CSV != nil {
		cfg.CSVPath = *g.CSV
	}
	if g.HTML != nil {
		cfg.HTMLPath = *g.HTML
	}
	if g.CardTemplate != nil {
		cfg.CardTemplate = *g.CardTemplate
	}
	if g.Color != nil {
		cfg.ColorMode = ColorMode(strings.ToLower(*g.Color))
	}
	if g.Log != nil {
		cfg.LogFile = *g.Log
	}
	return validateColorMode(cfg.ColorMode)
}

// ApplyRename overlays the rename section onto cfg.
func (fc *FileConfig) ApplyRename(cfg *RenameConfig) error {
	r := fc.Rename
	if r.Dir != nil {
		cfg.Dir = NormalizeDirArg(*r.Dir)
	}
	if r.Model != nil {
		cfg.Model = *r.Model
	}
	if r.BaseURL != nil {
		cfg.BaseURL = *r.BaseURL
	}
	if r.EnvVar != nil {
		cfg.EnvVar = *r.EnvVar
	}
	if r.MaxTokens != nil {
		cfg.MaxTokens = *r.MaxTokens
	}
	if r.Sleep != nil {
		d, err := time.ParseDuration(*r.Sleep)
		if err != nil {
			return fmt.Errorf("invalid sleep duration %q in config file", *r.Sleep)
		}
		cfg.Sleep = d
	}
	if r.DatePrefix != nil {
		cfg.DatePrefix = *r.DatePrefix
	}
	if r.Color != nil {
		cfg.ColorMode = ColorMode(strings.ToLower(*r.Color))
	}
	if r.Log != nil {
		cfg.LogFile = *r.Log
	}
	return validateColorMode(cfg.ColorMode)
}

// findConfigArg pre-scans args for --config so the file can be loaded before
// flag registration (flag defaults are seeded from the overlaid config).
func findConfigArg(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--config" || a == "-config":
			if i+1 < len(args) {
				return args[i+1]
			}
			return ""
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		case strings.HasPrefix(a, "-config="):
			return strings.TrimPrefix(a, "-config=")
		}
	}
	return ""
}

// overlayFile loads the config file named by --config (or DefaultFileName if
// present in the working directory) and applies it via apply. A missing
// default file is not an error; a missing explicit file is.
func overlayFile(args []string, configFile *string, apply func(*FileConfig) error) error {
	path := findConfigArg(args)
	if path == "" {
		if _, err := os.Stat(DefaultFileName); err != nil {
			return nil
		}
		path = DefaultFileName
	}
	fc, err := LoadFile(path)
	if err != nil {
		return err
	}
	*configFile = path
	return apply(fc)
}
