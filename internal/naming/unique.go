package naming

import (
	"fmt"
	"os"
	"path/filepath"
)

// UniquePath returns the first free path in dir for base+ext, probing
// "base.ext", then "base_02.ext", "base_03.ext", and so on with a
// zero-padded counter. ext must include the leading dot.
//
// The probe costs one Lstat per existing collision, which is fine for the
// small flat directories this tool targets. The gap between probing and the
// actual rename is unguarded; concurrent runs against the same directory
// are not supported.
func UniquePath(dir, base, ext string) string {
	candidate := filepath.Join(dir, base+ext)
	if !exists(candidate) {
		return candidate
	}
	for i := 2; ; i++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%02d%s", base, i, ext))
		if !exists(candidate) {
			return candidate
		}
	}
}

// exists reports whether a directory entry is present at path. Lstat keeps
// broken symlinks counted as occupied names.
func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
