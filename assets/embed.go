package assets

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
)

//go:embed *.png
var assetsFS embed.FS

// FS exposes the embedded sprites for asset loaders.
func FS() fs.FS {
	return assetsFS
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(CleanPath(path))
}

// CleanPath turns an asset reference into an assets-relative slash path.
func CleanPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
