package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/milk9111/thegame/config"
	"github.com/milk9111/thegame/engine"
	"github.com/milk9111/thegame/game"
	"github.com/milk9111/thegame/input/ebitensrc"
	"github.com/milk9111/thegame/levels"
	"github.com/milk9111/thegame/menu"
	"github.com/milk9111/thegame/render"
)

// Game adapts the engine to ebiten's Update/Draw/Layout callbacks.
type Game struct {
	ctx      context.Context
	session  *game.Session
	engine   *engine.Engine
	renderer *render.Renderer
	pauseUI  *ebitenui.UI
	paused   bool

	mainMenu *menu.Menu
	buttons  []menu.Button

	levelsFS fs.FS
	watcher  *levels.Watcher
	logger   *slog.Logger
}

// NewGame loads every level and starts on the main menu, or directly on
// startLevel when it is set.
func NewGame(ctx context.Context, cfg config.Config, startLevel string, debug, watch bool, logger *slog.Logger) (*Game, error) {
	fsys := levels.FS(cfg.LevelsDir)
	set, err := levels.LoadSet(fsys)
	if err != nil {
		return nil, err
	}

	start := cfg.StartLevel
	if startLevel != "" {
		start = startLevel
	}
	startMap, err := set.Map(start)
	if err != nil {
		return nil, err
	}

	mainMenu, buttons, err := newMainMenu(start)
	if err != nil {
		return nil, err
	}

	opts := game.Options{
		MainMenu:     mainMenu,
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		TileWidth:    cfg.Tile.Width,
		TileHeight:   cfg.Tile.Height,
		ViewWidth:    cfg.View.Width,
		ViewHeight:   cfg.View.Height,
		Loader:       render.NewAssetLoader(cfg.Tile.Width, cfg.Tile.Height),
		Logger:       logger,
	}
	if startLevel != "" {
		opts.MainMenu = nil
		opts.InitialMap = startMap
		opts.InitialName = start
	}
	session, err := game.NewSession(opts)
	if err != nil {
		return nil, err
	}
	session.RegisterMenu(game.DefaultMenuName, mainMenu)
	for _, name := range set.Order {
		session.RegisterMap(name, set.Maps[name])
	}

	renderer := render.NewRenderer()
	renderer.Debug = debug

	g := &Game{
		ctx:      ctx,
		session:  session,
		renderer: renderer,
		mainMenu: mainMenu,
		buttons:  buttons,
		levelsFS: fsys,
		logger:   logger,
	}
	g.engine = engine.New(session, ebitensrc.New(), renderer, engine.Options{
		Workers: cfg.Workers,
		FPS:     cfg.TPS,
		Logger:  logger,
	})
	g.pauseUI = NewPauseUI(g)

	if watch {
		g.watcher = newLevelWatcher(cfg.LevelsDir, logger)
	}
	if err := g.engine.Begin(); err != nil {
		g.Close()
		return nil, err
	}
	return g, nil
}

func newLevelWatcher(dir string, logger *slog.Logger) *levels.Watcher {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logger.Warn("hot reload disabled, levels directory not found", "dir", dir)
		return nil
	}
	dirs := []string{dir}
	if scripts := filepath.Join(dir, "scripts"); isDir(scripts) {
		dirs = append(dirs, scripts)
	}
	w, err := levels.NewWatcher(dirs...)
	if err != nil {
		logger.Warn("hot reload disabled", "err", err)
		return nil
	}
	logger.Info("watching levels", "dirs", dirs)
	return w
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.session.UnloadActiveMap()
}

func (g *Game) Update() error {
	if !g.session.Running() {
		return ebiten.Termination
	}
	g.reload()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.session.Screen().IsMap() {
		g.paused = !g.paused
	}
	if g.paused {
		return g.updatePaused(ebiten.IsWindowBeingClosed())
	}

	if err := g.engine.Step(g.ctx); err != nil {
		return err
	}
	if !g.session.Running() {
		return ebiten.Termination
	}
	return nil
}

// updatePaused runs the pause overlay in place of the engine, which is not
// polling input, so a window close is handled here.
func (g *Game) updatePaused(closing bool) error {
	if closing {
		g.session.Shutdown()
	}
	if g.session.Running() && g.pauseUI != nil {
		g.pauseUI.Update()
	}
	if !g.session.Running() {
		return ebiten.Termination
	}
	return nil
}

// reload rebuilds every level when the watcher reports a change. A broken
// edit is logged and the previous maps stay in place.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Changed()
	if err != nil {
		g.logger.Warn("level watcher", "err", err)
	}
	if !changed {
		return
	}
	set, err := levels.LoadSet(g.levelsFS)
	if err != nil {
		g.logger.Warn("hot reload failed", "err", err)
		return
	}
	for _, name := range set.Order {
		if err := g.session.ReplaceMap(name, set.Maps[name]); err != nil {
			g.logger.Error("hot reload", "level", name, "err", errors.WithStack(err))
			return
		}
	}
	g.logger.Info("levels reloaded", "levels", set.Order)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	if mn, ok := g.session.ActiveMenu(); ok && mn == g.mainMenu {
		drawMenuLabels(screen, mn, g.buttons)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.session.ScreenWidth, g.session.ScreenHeight
}
