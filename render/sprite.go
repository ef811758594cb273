// Package render loads sprite images and draws positioned visuals with
// ebiten.
package render

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is the visual handle bound to game objects. Position is the last
// screen pixel it was placed at.
type Sprite struct {
	Asset string
	Image *ebiten.Image
	X, Y  int
}

func (s *Sprite) SetPosition(x, y int) {
	s.X, s.Y = x, y
}
