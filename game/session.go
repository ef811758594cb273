// Package game holds the session: registered maps and menus, the active
// screen, and the position registry of player-controlled objects.
package game

import (
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/milk9111/thegame/arena"
	"github.com/milk9111/thegame/camera"
	"github.com/milk9111/thegame/common"
	"github.com/milk9111/thegame/menu"
	"github.com/milk9111/thegame/object"
	"github.com/milk9111/thegame/tilemap"
	"github.com/pkg/errors"
)

var (
	ErrNoScreen    = errors.New("game: a main menu or an initial map is required")
	ErrUnknownMap  = errors.New("game: unknown map")
	ErrUnknownMenu = errors.New("game: unknown menu")
)

const (
	DefaultMapName  = "Initial Map"
	DefaultMenuName = "main menu"
)

// AssetLoader turns an asset id into a visual handle.
type AssetLoader interface {
	Load(asset string) (object.Visual, error)
}

type Options struct {
	MainMenu     *menu.Menu
	MainMenuName string
	InitialMap   *tilemap.Map
	InitialName  string

	ScreenWidth  int
	ScreenHeight int
	TileWidth    int
	TileHeight   int
	// Camera viewport in tiles. Zero means the whole screen.
	ViewWidth  int
	ViewHeight int

	Loader AssetLoader
	Logger *slog.Logger
}

// Screen is what the session currently shows: a map or a menu.
type Screen struct {
	Name string
	Map  *tilemap.Map
	Menu *menu.Menu
}

func (s Screen) IsMap() bool {
	return s.Map != nil
}

// Session is the game state shared by the frame loop. Map and registry state
// is only touched from the sequential keystroke step and map load/unload;
// the running flag and mouse state are safe for concurrent event handlers.
type Session struct {
	ScreenWidth  int
	ScreenHeight int
	TileWidth    int
	TileHeight   int

	maps   map[string]*tilemap.Map
	menus  map[string]*menu.Menu
	screen Screen
	loaded *tilemap.Map

	camera    camera.Camera
	loader    AssetLoader
	visuals   map[string]object.Visual
	entities  *arena.Arena[object.Controllable]
	positions map[arena.Handle]common.Point

	running atomic.Bool
	mouseMu sync.Mutex
	mouse   *common.Point
	clicks  []menu.Click

	logger *slog.Logger
}

func NewSession(opts Options) (*Session, error) {
	if opts.MainMenu == nil && opts.InitialMap == nil {
		return nil, ErrNoScreen
	}
	if opts.MainMenuName == "" {
		opts.MainMenuName = DefaultMenuName
	}
	if opts.InitialName == "" {
		opts.InitialName = DefaultMapName
	}
	if opts.ScreenWidth <= 0 {
		opts.ScreenWidth = 600
	}
	if opts.ScreenHeight <= 0 {
		opts.ScreenHeight = 600
	}
	if opts.TileWidth <= 0 {
		opts.TileWidth = 20
	}
	if opts.TileHeight <= 0 {
		opts.TileHeight = 20
	}
	if opts.ViewWidth <= 0 {
		opts.ViewWidth = opts.ScreenWidth / opts.TileWidth
	}
	if opts.ViewHeight <= 0 {
		opts.ViewHeight = opts.ScreenHeight / opts.TileHeight
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Session{
		ScreenWidth:  opts.ScreenWidth,
		ScreenHeight: opts.ScreenHeight,
		TileWidth:    opts.TileWidth,
		TileHeight:   opts.TileHeight,
		maps:         map[string]*tilemap.Map{},
		menus:        map[string]*menu.Menu{},
		camera:       camera.New(opts.ViewWidth, opts.ViewHeight, opts.ViewWidth/2, opts.ViewHeight/2),
		loader:       opts.Loader,
		visuals:      map[string]object.Visual{},
		entities:     arena.New[object.Controllable](),
		positions:    map[arena.Handle]common.Point{},
		logger:       opts.Logger,
	}

	if opts.InitialMap != nil {
		s.maps[opts.InitialName] = opts.InitialMap
	}
	if opts.MainMenu != nil {
		s.menus[opts.MainMenuName] = opts.MainMenu
		s.screen = Screen{Name: opts.MainMenuName, Menu: opts.MainMenu}
	} else {
		s.screen = Screen{Name: opts.InitialName, Map: opts.InitialMap}
	}
	return s, nil
}

func (s *Session) Logger() *slog.Logger {
	return s.logger
}

func (s *Session) Screen() Screen {
	return s.screen
}

// ActiveMap returns the active map when a map is on screen.
func (s *Session) ActiveMap() (*tilemap.Map, bool) {
	return s.screen.Map, s.screen.Map != nil
}

func (s *Session) ActiveMenu() (*menu.Menu, bool) {
	return s.screen.Menu, s.screen.Menu != nil
}

func (s *Session) Camera() camera.Camera {
	return s.camera
}

func (s *Session) RegisterMap(name string, m *tilemap.Map) {
	s.maps[name] = m
}

func (s *Session) Map(name string) (*tilemap.Map, bool) {
	m, ok := s.maps[name]
	return m, ok
}

// MapNames lists registered maps in sorted order.
func (s *Session) MapNames() []string {
	names := make([]string, 0, len(s.maps))
	for n := range s.maps {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (s *Session) RegisterMenu(name string, m *menu.Menu) {
	s.menus[name] = m
}

// ChangeMap unloads the current map and loads the named one.
func (s *Session) ChangeMap(name string) error {
	m, ok := s.maps[name]
	if !ok {
		return errors.Wrapf(ErrUnknownMap, "%q", name)
	}
	s.UnloadActiveMap()
	s.screen = Screen{Name: name, Map: m}
	s.logger.Info("map changed", "map", name)
	return s.LoadActiveMap()
}

// OpenMenu unloads the active map and shows the named menu.
func (s *Session) OpenMenu(name string) error {
	m, ok := s.menus[name]
	if !ok {
		return errors.Wrapf(ErrUnknownMenu, "%q", name)
	}
	s.UnloadActiveMap()
	m.ClearFocus()
	s.screen = Screen{Name: name, Menu: m}
	s.logger.Info("menu opened", "menu", name)
	return nil
}

// ReplaceMap swaps a registered map for a reloaded version, reloading it in
// place when it is on screen.
func (s *Session) ReplaceMap(name string, m *tilemap.Map) error {
	s.maps[name] = m
	if s.screen.Map == nil || s.screen.Name != name {
		return nil
	}
	s.UnloadActiveMap()
	s.screen = Screen{Name: name, Map: m}
	return s.LoadActiveMap()
}

func (s *Session) Running() bool {
	return s.running.Load()
}

func (s *Session) Start() {
	s.running.Store(true)
}

func (s *Session) Stop() {
	s.running.Store(false)
}

// Shutdown stops the frame loop at its next check.
func (s *Session) Shutdown() {
	if s.running.Swap(false) {
		s.logger.Info("shutdown requested")
	}
}

// PressMouse records where the mouse button went down.
func (s *Session) PressMouse(p common.Point) {
	s.mouseMu.Lock()
	defer s.mouseMu.Unlock()
	s.mouse = &p
}

// ReleaseMouse pairs the release with the last press into a pending click.
func (s *Session) ReleaseMouse(p common.Point) {
	s.mouseMu.Lock()
	defer s.mouseMu.Unlock()
	if s.mouse == nil {
		return
	}
	s.clicks = append(s.clicks, menu.Click{From: *s.mouse, To: p})
	s.mouse = nil
}

// MouseDown returns the pending press position, if any.
func (s *Session) MouseDown() (common.Point, bool) {
	s.mouseMu.Lock()
	defer s.mouseMu.Unlock()
	if s.mouse == nil {
		return common.Point{}, false
	}
	return *s.mouse, true
}

// TakeClicks returns and clears the pending clicks.
func (s *Session) TakeClicks() []menu.Click {
	s.mouseMu.Lock()
	defer s.mouseMu.Unlock()
	out := s.clicks
	s.clicks = nil
	return out
}
