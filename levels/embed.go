package levels

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

//go:embed *.yaml scripts/*.tengo
var LevelsFS embed.FS

// FS returns the level files. A non-empty dir that exists on disk takes
// precedence over the embedded set so levels can be edited without a rebuild.
func FS(dir string) fs.FS {
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return os.DirFS(dir)
		}
	}
	return LevelsFS
}

// Names lists the level files in fsys, sorted.
func Names(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, errors.Wrap(err, "levels: read dir")
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !isLevelFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// LoadFile reads and parses one level file.
func LoadFile(fsys fs.FS, name string) (*Level, error) {
	data, err := fs.ReadFile(fsys, cleanLevelPath(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrUnknownLevel, "%s", name)
		}
		return nil, errors.Wrapf(err, "levels: read %s", name)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "levels: %s", name)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	return lvl, nil
}

func cleanLevelPath(name string) string {
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if path.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}

func isLevelFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
