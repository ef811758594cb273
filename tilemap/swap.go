package tilemap

import (
	"github.com/milk9111/thegame/common"
	"github.com/pkg/errors"
)

// Swap exchanges the occupants at a and b on one layer. Unless
// ignoreCollision is set, a blocked move returns false and leaves the map
// untouched.
func (m *Map) Swap(a, b common.Point, l Layer, ignoreCollision bool) (bool, error) {
	g, err := m.Layer(l)
	if err != nil {
		return false, err
	}
	if !ignoreCollision && m.Blocked(a, b, l) {
		return false, nil
	}
	if !inGrid(g, a) || !inGrid(g, b) {
		return false, errors.Wrapf(ErrOutOfBounds, "swap (%d,%d) <-> (%d,%d)", a.X, a.Y, b.X, b.Y)
	}
	g[a.Y][a.X], g[b.Y][b.X] = g[b.Y][b.X], g[a.Y][a.X]
	return true, nil
}

// Blocked runs the collision check for a move from a to b on layer l. Rules
// apply in order: negative coordinates, out of bounds, a collider anywhere
// in a's stack, both cells occupied on l, a collider anywhere in b's stack.
func (m *Map) Blocked(a, b common.Point, l Layer) bool {
	if a.X < 0 || a.Y < 0 || b.X < 0 || b.Y < 0 {
		return true
	}
	g := m.TileLayers()[l]
	if !inGrid(g, a) || !inGrid(g, b) {
		return true
	}
	if m.stackCollides(a) {
		return true
	}
	if g[a.Y][a.X] != nil && g[b.Y][b.X] != nil {
		return true
	}
	return m.stackCollides(b)
}

func (m *Map) stackCollides(p common.Point) bool {
	for _, occ := range m.Stack(p) {
		if occ == nil {
			continue
		}
		if base := occ.Base(); base != nil && base.Collides {
			return true
		}
	}
	return false
}
