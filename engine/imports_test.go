package engine

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// The frame loop and everything it reaches must build without a display.
func TestCorePackagesDoNotImportEbiten(t *testing.T) {
	core := []string{"arena", "camera", "common", "config", "engine", "entity", "game", "input", "levels", "menu", "object", "script", "tilemap"}
	for _, dir := range core {
		files, err := filepath.Glob(filepath.Join("..", dir, "*.go"))
		if err != nil {
			t.Fatal(err)
		}
		if len(files) == 0 {
			t.Fatalf("no Go files in %s", dir)
		}
		for _, path := range files {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			f, err := parser.ParseFile(token.NewFileSet(), path, src, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse %s: %v", path, err)
			}
			for _, imp := range f.Imports {
				p, _ := strconv.Unquote(imp.Path.Value)
				if strings.HasPrefix(p, "github.com/hajimehoshi/ebiten") || strings.HasPrefix(p, "github.com/ebitenui/") {
					t.Fatalf("%s imports %s", path, p)
				}
			}
		}
	}
}
