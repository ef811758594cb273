// Package camera computes the rectangular window of tiles visible on screen.
package camera

import (
	"github.com/milk9111/thegame/common"
	"github.com/milk9111/thegame/object"
	"github.com/milk9111/thegame/tilemap"
)

// Camera is a Width x Height tile window centered on (CenterX, CenterY).
type Camera struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

func New(width, height, centerX, centerY int) Camera {
	return Camera{Width: width, Height: height, CenterX: centerX, CenterY: centerY}
}

// CenterOn moves the window center to p.
func (c *Camera) CenterOn(p common.Point) {
	c.CenterX, c.CenterY = p.X, p.Y
}

// Window returns the map coordinates of the top-left visible cell. An even
// size shows one more cell before the center than after it.
func (c Camera) Window() (left, top int) {
	return c.CenterX - c.size(c.Width)/2, c.CenterY - c.size(c.Height)/2
}

// Bounds returns the inclusive window edges, as if even sizes were rounded
// up to the next odd number.
func (c Camera) Bounds() (left, top, right, bottom int) {
	w, h := c.size(c.Width), c.size(c.Height)
	return c.CenterX - w/2, c.CenterY - h/2, c.CenterX + w/2, c.CenterY + h/2
}

func (c Camera) size(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// FieldOfView copies the visible part of every layer of m. Each grid is
// exactly Height x Width; cells outside the map are nil.
func (c Camera) FieldOfView(m *tilemap.Map) [tilemap.LayerCount]tilemap.Grid {
	var out [tilemap.LayerCount]tilemap.Grid
	left, top := c.Window()
	w, h := c.size(c.Width), c.size(c.Height)

	for l, src := range m.TileLayers() {
		view := tilemap.NewGrid(w, h)
		for row := 0; row < h; row++ {
			y := top + row
			if y < 0 || y >= len(src) {
				continue
			}
			for col := 0; col < w; col++ {
				x := left + col
				if x < 0 || x >= len(src[y]) {
					continue
				}
				view[row][col] = src[y][x]
			}
		}
		out[l] = view
	}
	return out
}

// Visible calls fn for every occupied visible cell, background layer first,
// with the cell's position inside the window.
func (c Camera) Visible(m *tilemap.Map, fn func(l tilemap.Layer, col, row int, occ object.Occupant) error) error {
	fov := c.FieldOfView(m)
	for l := tilemap.Background; l >= tilemap.Foreground; l-- {
		for row, cells := range fov[l] {
			for col, occ := range cells {
				if occ == nil || occ.Base() == nil {
					continue
				}
				if err := fn(l, col, row, occ); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
