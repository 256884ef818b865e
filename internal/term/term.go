// Package term owns the ANSI escape state for the gallery tools. The color
// variables live at package level because both the logger and the banner
// consume them; [Configure] resolves the color mode once at startup and
// either fills them in or leaves them empty, so formatting code can
// concatenate them unconditionally.
package term

import (
	"os"
	"strings"

	"github.com/bergsving-collective/Ramoti-Website/internal/config"
)

// Escape sequences, bright variants. Orange has no bright 16-color slot and
// comes from the 256-color palette.
const (
	ansiRed     = "\033[1;91m"
	ansiGreen   = "\033[1;92m"
	ansiYellow  = "\033[1;93m"
	ansiOrange  = "\033[1;38;5;208m"
	ansiBlue    = "\033[1;94m"
	ansiCyan    = "\033[1;96m"
	ansiMagenta = "\033[1;95m"
	ansiReset   = "\033[0m"
)

// Current color state. All empty when colors are off.
var (
	Red, Green, Yellow, Orange, Blue, Cyan, Magenta string

	// NC resets the terminal after a colored span.
	NC string
)

// Configure resolves mode against the environment and sets the package
// state. Called once from logging.NewLogger.
func Configure(mode config.ColorMode) {
	if !shouldColor(mode) {
		Red, Green, Yellow, Orange, Blue, Cyan, Magenta, NC = "", "", "", "", "", "", "", ""
		return
	}
	Red, Green, Yellow, Orange = ansiRed, ansiGreen, ansiYellow, ansiOrange
	Blue, Cyan, Magenta, NC = ansiBlue, ansiCyan, ansiMagenta, ansiReset
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return NC != "" }

// shouldColor maps the configured mode to a decision. Auto requires stdout
// on a TTY, an unset NO_COLOR (https://no-color.org), and a terminal that
// is not "dumb".
func shouldColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is attached to a character device.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
