// Package tilemap holds the four stacked tile layers of a game map.
package tilemap

import (
	"github.com/milk9111/thegame/common"
	"github.com/milk9111/thegame/object"
	"github.com/pkg/errors"
)

var (
	ErrInvalidCell       = errors.New("tilemap: invalid cell")
	ErrMalformedGrid     = errors.New("tilemap: malformed grid")
	ErrInvalidLayer      = errors.New("tilemap: invalid layer")
	ErrInvalidWarpTarget = errors.New("tilemap: invalid warp zone location")
	ErrOutOfBounds       = errors.New("tilemap: out of bounds")
)

// Layer indexes the layers in drawing-priority order, foreground first.
type Layer int

const (
	Foreground Layer = iota
	Character
	Path
	Background
)

const LayerCount = 4

func (l Layer) Valid() bool {
	return l >= Foreground && l <= Background
}

func (l Layer) String() string {
	switch l {
	case Foreground:
		return "foreground"
	case Character:
		return "character"
	case Path:
		return "path"
	case Background:
		return "background"
	default:
		return "invalid"
	}
}

// Grid is a row-major sheet of cells; a nil cell is empty.
type Grid [][]object.Occupant

// NewGrid returns an empty width x height grid.
func NewGrid(width, height int) Grid {
	g := make(Grid, height)
	for y := range g {
		g[y] = make([]object.Occupant, width)
	}
	return g
}

// Map is four same-sized grids plus the warp zones leading off it. The grid
// fields may be reassigned directly; Validate re-checks them.
type Map struct {
	Foreground Grid
	Character  Grid
	Path       Grid
	Background Grid

	warps []WarpZone
}

// New builds a validated map. Argument order is foreground, path,
// background, character.
func New(foreground, path, background, character Grid) (*Map, error) {
	m := NewUnvalidated(foreground, path, background, character)
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// NewUnvalidated builds a map without checking its grids.
func NewUnvalidated(foreground, path, background, character Grid) *Map {
	return &Map{
		Foreground: foreground,
		Character:  character,
		Path:       path,
		Background: background,
	}
}

// TileLayers returns the grids in layer order.
func (m *Map) TileLayers() [LayerCount]Grid {
	return [LayerCount]Grid{m.Foreground, m.Character, m.Path, m.Background}
}

func (m *Map) Layer(l Layer) (Grid, error) {
	if !l.Valid() {
		return nil, errors.Wrapf(ErrInvalidLayer, "%d", int(l))
	}
	return m.TileLayers()[l], nil
}

// Validate checks shape first, then cell contents.
func (m *Map) Validate() error {
	layers := m.TileLayers()
	height, width := len(layers[0]), 0
	if height > 0 {
		width = len(layers[0][0])
	}
	for l, g := range layers {
		if len(g) != height {
			return errors.Wrapf(ErrMalformedGrid, "%s has %d rows, want %d", Layer(l), len(g), height)
		}
		for y, row := range g {
			if len(row) != width {
				return errors.Wrapf(ErrMalformedGrid, "%s row %d has %d cells, want %d", Layer(l), y, len(row), width)
			}
		}
	}

	for l, g := range layers {
		for y, row := range g {
			for x, occ := range row {
				if occ != nil && occ.Base() == nil {
					return errors.Wrapf(ErrInvalidCell, "%s (%d,%d) holds %T without a game object", Layer(l), x, y, occ)
				}
			}
		}
	}
	return nil
}

func (m *Map) Height() int {
	return len(m.Character)
}

func (m *Map) Width() int {
	if len(m.Character) == 0 {
		return 0
	}
	return len(m.Character[0])
}

// InBounds reports whether p indexes a cell of the character layer.
func (m *Map) InBounds(p common.Point) bool {
	return inGrid(m.Character, p)
}

func inGrid(g Grid, p common.Point) bool {
	return p.Y >= 0 && p.Y < len(g) && p.X >= 0 && p.X < len(g[p.Y])
}

// At returns the occupant at p on layer l. ok is false when p is outside the
// layer.
func (m *Map) At(l Layer, p common.Point) (object.Occupant, bool) {
	if !l.Valid() {
		return nil, false
	}
	g := m.TileLayers()[l]
	if !inGrid(g, p) {
		return nil, false
	}
	return g[p.Y][p.X], true
}

// Place writes occ into layer l at p.
func (m *Map) Place(l Layer, p common.Point, occ object.Occupant) error {
	g, err := m.Layer(l)
	if err != nil {
		return err
	}
	if !inGrid(g, p) {
		return errors.Wrapf(ErrOutOfBounds, "%s (%d,%d)", l, p.X, p.Y)
	}
	g[p.Y][p.X] = occ
	return nil
}

// Stack returns the occupants of all layers at p, foreground first.
func (m *Map) Stack(p common.Point) [LayerCount]object.Occupant {
	var out [LayerCount]object.Occupant
	for l := Foreground; l <= Background; l++ {
		out[l], _ = m.At(l, p)
	}
	return out
}

// Placed is a controllable occupant and where it was found.
type Placed struct {
	Object object.Controllable
	Layer  Layer
	X, Y   int
}

// PlayerControlled scans every layer, row by row, for controllable occupants.
func (m *Map) PlayerControlled() []Placed {
	var out []Placed
	for l, g := range m.TileLayers() {
		for y, row := range g {
			for x, occ := range row {
				if c, ok := occ.(object.Controllable); ok && occ.Base() != nil {
					out = append(out, Placed{Object: c, Layer: Layer(l), X: x, Y: y})
				}
			}
		}
	}
	return out
}

// Objects calls fn for every occupant of every layer.
func (m *Map) Objects(fn func(l Layer, p common.Point, occ object.Occupant)) {
	for l, g := range m.TileLayers() {
		for y, row := range g {
			for x, occ := range row {
				if occ == nil || occ.Base() == nil {
					continue
				}
				fn(Layer(l), common.Pt(x, y), occ)
			}
		}
	}
}
