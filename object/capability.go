package object

import (
	"log/slog"

	"github.com/milk9111/thegame/arena"
	"github.com/milk9111/thegame/common"
	"github.com/milk9111/thegame/input"
)

// Visual is an opaque handle produced by an asset loader.
type Visual interface {
	SetPosition(x, y int)
}

// Placement is a visual and the screen pixel it was placed at this frame.
type Placement struct {
	Visual Visual
	X, Y   int
}

// Occupant is anything stored in a map cell. Base returns nil for a typed nil
// or an occupant with no backing GameObject.
type Occupant interface {
	Base() *GameObject
}

// Controllable occupants receive each new keystroke while their map is active.
type Controllable interface {
	Occupant
	PlayerInteraction(keys input.KeySet, ctx Context) error
}

// Interactable occupants respond when a player faces them and interacts.
type Interactable interface {
	Occupant
	Interact(ctx Context) error
}

// Context is the session view handed to entities during the keystroke step.
type Context interface {
	// Swap exchanges two cells of the active map on layer. A false result
	// with a nil error means the move was blocked.
	Swap(a, b common.Point, layer int) (bool, error)
	// Stack returns the occupants of every layer at p, foreground first. It
	// returns nil when p is outside the active map.
	Stack(p common.Point) []Occupant
	Position(h arena.Handle) (common.Point, bool)
	SetPosition(h arena.Handle, p common.Point)
	Logger() *slog.Logger
}

// Warper is implemented by contexts that act on warp zones after a move.
type Warper interface {
	Warp(h arena.Handle, p common.Point) (bool, error)
}
