package naming

import (
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// Filename date patterns tried when EXIF is unavailable, in order of
// specificity.
var datePatterns = []struct {
	re     *regexp.Regexp
	layout string
}{
	// Generic timestamp: IMG_20230114_162412.jpg
	{regexp.MustCompile(`(\d{8})_\d{6}`), "20060102"},

	// ISO date: 2023-01-14_beach.jpg
	{regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`), "2006-01-02"},

	// Compact date: 20230114_beach.jpg (last resort, less specific)
	{regexp.MustCompile(`(\d{8})`), "20060102"},
}

// CaptureDate resolves the best available capture date for an image.
// Priority:
//  1. EXIF DateTimeOriginal
//  2. Date parsed from the filename
//  3. File modification time
//  4. Current time (fallback)
func CaptureDate(path string) time.Time {
	if t, err := exifDate(path); err == nil {
		return t
	}
	if t, ok := filenameDate(filepath.Base(path)); ok {
		return t
	}
	if fi, err := os.Stat(path); err == nil {
		return fi.ModTime()
	}
	return time.Now()
}

// DatePrefix formats t as the compact date used in filename prefixes.
func DatePrefix(t time.Time) string {
	return t.Format("20060102")
}

func exifDate(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}
	return x.DateTime()
}

func filenameDate(name string) (time.Time, bool) {
	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(name)
		if len(m) < 2 {
			continue
		}
		if t, err := time.Parse(p.layout, m[1]); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
