package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 600 || cfg.TPS != 60 || cfg.StartLevel != "meadow" {
		t.Fatalf("Load(\"\") = %+v", cfg)
	}
	if cfg.View.Width != 30 || cfg.View.Height != 30 {
		t.Fatalf("view = %+v, want 30x30", cfg.View)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
window: {width: 800, height: 400}
tile: {width: 40, height: 40}
start_level: cellar
watch: true
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 400 {
		t.Fatalf("window = %+v", cfg.Window)
	}
	if cfg.View.Width != 20 || cfg.View.Height != 10 {
		t.Fatalf("view = %+v, want 20x10", cfg.View)
	}
	if cfg.StartLevel != "cellar" || !cfg.Watch || cfg.TPS != 60 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{name: "zero_tile", body: "tile: {width: 0, height: 20}\n", want: ErrInvalid},
		{name: "negative_workers", body: "workers: -1\n", want: ErrInvalid},
		{name: "zero_tps", body: "tps: 0\n", want: ErrInvalid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.body)); !errors.Is(err, tc.want) {
				t.Fatalf("Load error = %v, want %v", err, tc.want)
			}
		})
	}

	if _, err := Load(writeConfig(t, "colour: red\n")); err == nil {
		t.Fatalf("unknown field should fail")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file error = %v", err)
	}
}
