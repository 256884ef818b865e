package caption

import (
	"encoding/base64"
	"mime"
	"path/filepath"
	"strings"
)

// mimeTypes covers the supported image extensions without relying on the
// host's mime database.
var mimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".tiff": "image/tiff",
	".gif":  "image/gif",
}

// BuildDataURL encodes image bytes as a base64 data URI with a MIME type
// guessed from the filename extension. Unknown extensions fall back to the
// host mime database, then to application/octet-stream.
func BuildDataURL(filename string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(filename))
	mt := mimeTypes[ext]
	if mt == "" {
		mt = mime.TypeByExtension(ext)
	}
	if mt == "" {
		mt = "application/octet-stream"
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(data)
}
