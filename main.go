package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/thegame/config"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML game config")
	debug := flag.Bool("debug", false, "enable debug logging and the frame counter")
	levelName := flag.String("level", "", "start on this level instead of the main menu")
	watch := flag.Bool("watch", false, "reload levels when files in the levels directory change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TPS)

	g, err := NewGame(context.Background(), cfg, *levelName, *debug, *watch || cfg.Watch, logger)
	if err != nil {
		log.Fatal(err)
	}

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
}
