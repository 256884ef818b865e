package display

import (
	"fmt"
	"os"

	"github.com/bergsving-collective/Ramoti-Website/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____                       _   _
|  _ \ __ _ _ __ ___   ___ | |_(_)
| |_) / _`+"`"+` | '_ `+"`"+` _ \ / _ \| __| |
|  _ < (_| | | | | | | (_) | |_| |
|_| \_\__,_|_| |_| |_|\___/ \__|_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
