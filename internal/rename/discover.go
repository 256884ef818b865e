package rename

import (
	"os"
	"path/filepath"
	"strings"
)

// Supported image file extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".bmp":  true,
	".tiff": true,
	".gif":  true,
}

// Discover lists the images in dir. Only regular files with an allowed
// extension qualify; hidden entries and subdirectories are ignored (no
// recursion). os.ReadDir returns entries sorted by name, which fixes the
// processing order.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !e.Type().IsRegular() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(name))] {
			files = append(files, filepath.Join(dir, name))
		}
	}
	return files, nil
}
