package game

import (
	"github.com/milk9111/thegame/object"
	"github.com/milk9111/thegame/tilemap"
)

// Compose builds this frame's draw list. Menus draw their image at the
// origin; maps draw the camera window, background layer first, with the
// camera following the first registered player-controlled object.
func (s *Session) Compose() ([]object.Placement, error) {
	if mn, ok := s.ActiveMenu(); ok {
		if mn.Image == "" || s.loader == nil {
			return nil, nil
		}
		v, err := s.visual(mn.Image)
		if err != nil {
			return nil, err
		}
		v.SetPosition(0, 0)
		return []object.Placement{{Visual: v}}, nil
	}

	m, ok := s.ActiveMap()
	if !ok {
		return nil, nil
	}
	s.followPlayer()

	var out []object.Placement
	err := s.camera.Visible(m, func(_ tilemap.Layer, col, row int, occ object.Occupant) error {
		x, y := col*s.TileWidth, row*s.TileHeight
		v, err := occ.Base().SetVisualPosition(x, y)
		if err != nil {
			return err
		}
		out = append(out, object.Placement{Visual: v, X: x, Y: y})
		return nil
	})
	return out, err
}
