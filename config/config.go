// Package config holds the game's startup settings.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid value")

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Config struct {
	Window Window `yaml:"window"`
	Tile   Size   `yaml:"tile"`
	// View is the camera viewport in tiles. Zero derives it from the window.
	View       Size   `yaml:"view"`
	TPS        int    `yaml:"tps"`
	Workers    int    `yaml:"workers"`
	LevelsDir  string `yaml:"levels_dir"`
	StartLevel string `yaml:"start_level"`
	Watch      bool   `yaml:"watch"`
}

func Default() Config {
	return Config{
		Window:     Window{Width: 600, Height: 600, Title: "thegame"},
		Tile:       Size{Width: 20, Height: 20},
		TPS:        60,
		Workers:    4,
		LevelsDir:  "levels",
		StartLevel: "meadow",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		cfg.fill()
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: open %s", path)
	}
	defer f.Close()

	d := yaml.NewDecoder(f)
	d.KnownFields(true)
	if err := d.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: decode %s", path)
	}
	cfg.fill()
	return cfg, cfg.Validate()
}

func (c *Config) fill() {
	if c.View.Width == 0 && c.Tile.Width > 0 {
		c.View.Width = c.Window.Width / c.Tile.Width
	}
	if c.View.Height == 0 && c.Tile.Height > 0 {
		c.View.Height = c.Window.Height / c.Tile.Height
	}
}

// Validate rejects non-positive sizes and counts.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.Wrapf(ErrInvalid, "window %dx%d", c.Window.Width, c.Window.Height)
	case c.Tile.Width <= 0 || c.Tile.Height <= 0:
		return errors.Wrapf(ErrInvalid, "tile %dx%d", c.Tile.Width, c.Tile.Height)
	case c.View.Width < 0 || c.View.Height < 0:
		return errors.Wrapf(ErrInvalid, "view %dx%d", c.View.Width, c.View.Height)
	case c.TPS <= 0:
		return errors.Wrapf(ErrInvalid, "tps %d", c.TPS)
	case c.Workers <= 0:
		return errors.Wrapf(ErrInvalid, "workers %d", c.Workers)
	}
	return nil
}
