package config

// This file implements CLI flag parsing and help text for both tools.
// Flag defaults are seeded from the already-overlaid config, so the
// precedence is: built-in defaults < config file < flags actually passed.
// Color override flags (--color/--no-color) are applied after Parse.

import (
	"flag"
	"fmt"
	"os"
)

// sharedFlags holds boolean flags that are applied after Parse. These either
// override the color mode or trigger exit (showHelp, showVersion).
type sharedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// ParseTagsFlags loads the optional config file and parses os.Args into cfg.
// On --help or --version it prints and exits. On error it returns non-nil
// (unknown flag, bad config file, unexpected positional argument).
func ParseTagsFlags(cfg *TagsConfig, version string) error {
	err := overlayFile(os.Args[1:], &cfg.ConfigFile, func(fc *FileConfig) error {
		return fc.ApplyTags(cfg)
	})
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("gallery-tags", flag.ContinueOnError)
	fs.Usage = func() { printTagsUsage(version) }

	var shared sharedFlags
	fs.StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "CSV file with filename,tag rows")
	fs.StringVar(&cfg.HTMLPath, "html", cfg.HTMLPath, "Gallery HTML document to update")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "Preview only; do not write the HTML file")
	fs.BoolVar(&cfg.DryRun, "d", cfg.DryRun, "Same as --dry-run")
	defineSharedFlags(fs, &shared, &cfg.Verbose, &cfg.LogFile, &cfg.ConfigFile)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}
	applySharedFlags(&cfg.ColorMode, &shared, "gallery-tags", version, fs.Usage)

	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return nil
}

// ParseRenameFlags loads the optional config file and parses os.Args into cfg.
func ParseRenameFlags(cfg *RenameConfig, version string) error {
	err := overlayFile(os.Args[1:], &cfg.ConfigFile, func(fc *FileConfig) error {
		return fc.ApplyRename(cfg)
	})
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("photo-rename", flag.ContinueOnError)
	fs.Usage = func() { printRenameUsage(version) }

	var shared sharedFlags
	fs.StringVar(&cfg.Dir, "dir", cfg.Dir, "Folder with images")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "Model used for captioning")
	fs.StringVar(&cfg.Model, "m", cfg.Model, "Same as --model")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Captioning service base URL")
	fs.StringVar(&cfg.EnvVar, "env-var", cfg.EnvVar, "API key env var name")
	fs.IntVar(&cfg.MaxTokens, "max-tokens", cfg.MaxTokens, "Max output tokens per caption")
	fs.DurationVar(&cfg.Sleep, "sleep", cfg.Sleep, "Pause after each captioned file (e.g. 200ms, 1s)")
	fs.BoolVar(&cfg.DatePrefix, "date-prefix", cfg.DatePrefix, "Prefix new names with the capture date")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "Show renames without writing")
	fs.BoolVar(&cfg.DryRun, "d", cfg.DryRun, "Same as --dry-run")
	fs.BoolVar(&cfg.CheckOnly, "check", cfg.CheckOnly, "Run service and directory diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", cfg.CheckOnly, "Same as --check")
	defineSharedFlags(fs, &shared, &cfg.Verbose, &cfg.LogFile, &cfg.ConfigFile)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}
	applySharedFlags(&cfg.ColorMode, &shared, "photo-rename", version, fs.Usage)

	cfg.Dir = NormalizeDirArg(cfg.Dir)
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return nil
}

// defineSharedFlags registers the display and utility flags common to both tools.
func defineSharedFlags(fs *flag.FlagSet, s *sharedFlags, verbose *bool, logFile, configFile *string) {
	fs.BoolVar(&s.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&s.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(verbose, "verbose", *verbose, "Verbose output")
	fs.BoolVar(verbose, "v", *verbose, "Same as --verbose")
	fs.StringVar(logFile, "log", *logFile, "Append logs to file")
	fs.StringVar(logFile, "l", *logFile, "Same as --log")
	fs.StringVar(configFile, "config", *configFile, "YAML config file")
	fs.BoolVar(&s.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&s.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&s.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&s.showHelp, "h", false, "Same as --help")
}

// applySharedFlags copies color overrides into cfg and handles the exiting flags.
func applySharedFlags(mode *ColorMode, s *sharedFlags, name, version string, usage func()) {
	if s.noColor {
		*mode = ColorNever
	} else if s.forceColor {
		*mode = ColorAlways
	}
	if s.showHelp {
		usage()
		os.Exit(0)
	}
	if s.showVersion {
		fmt.Fprintln(os.Stdout, name+" v"+version)
		os.Exit(0)
	}
}

// usageLine is one row of help output: flag column and description column.
type usageLine struct {
	flags string
	desc  string
}

// printUsageLines writes column-aligned help text to stderr.
func printUsageLines(lines []usageLine) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

func printTagsUsage(version string) {
	printUsageLines([]usageLine{
		{"", "gallery-tags v" + version + " - applies CSV photo tags to the gallery page"},
		{"", ""},
		{"  gallery-tags [OPTIONS]", ""},
		{"", ""},
		{"Input", ""},
		{"  --csv <path>", "CSV file with filename,tag rows (default: gallery-tags.csv)"},
		{"  --html <path>", "Gallery HTML document to update (default: gallery.html)"},
		{"", ""},
		{"Output & behavior", ""},
		{"  -d, --dry-run", "Preview only; do not write the HTML file"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  --config <path>", "YAML config file (default: " + DefaultFileName + " if present)"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	})
}

func printRenameUsage(version string) {
	printUsageLines([]usageLine{
		{"", "photo-rename v" + version + " - renames photos using model-generated captions"},
		{"", ""},
		{"  photo-rename [OPTIONS]", ""},
		{"", ""},
		{"Captioning", ""},
		{"  -m, --model <name>", "Captioning model (default: gpt-4.1-mini)"},
		{"  --base-url <url>", "Service base URL (default: https://api.openai.com/v1)"},
		{"  --env-var <name>", "API key env var name (default: OPENAI_API_KEY)"},
		{"  --max-tokens <n>", "Max output tokens per caption (default: 80)"},
		{"", ""},
		{"Files & behavior", ""},
		{"  --dir <path>", "Folder with images (default: photos)"},
		{"  --date-prefix", "Prefix new names with the capture date (YYYYMMDD_)"},
		{"  -d, --dry-run", "Show renames without writing"},
		{"  --sleep <duration>", "Pause after each captioned file (default: 200ms)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  --config <path>", "YAML config file (default: " + DefaultFileName + " if present)"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Service and directory diagnostics"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	})
}
