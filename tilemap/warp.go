package tilemap

import (
	"github.com/milk9111/thegame/common"
	"github.com/pkg/errors"
)

// WarpZone sends anything entering Area to Destination on Target.
type WarpZone struct {
	Area        common.Rect
	Target      *Map
	Destination common.Point
}

// RegisterWarpZone adds a single-cell warp zone at (x, y).
func (m *Map) RegisterWarpZone(x, y int, target *Map, targetX, targetY int) error {
	return m.RegisterWarpArea(x, y, x, y, target, targetX, targetY)
}

// RegisterWarpArea adds a rectangular warp zone; the corners may be given in
// any order.
func (m *Map) RegisterWarpArea(x1, y1, x2, y2 int, target *Map, targetX, targetY int) error {
	dest := common.Pt(targetX, targetY)
	if target == nil || !inGrid(target.Character, dest) {
		return errors.Wrapf(ErrInvalidWarpTarget, "(%d,%d)", targetX, targetY)
	}
	m.warps = append(m.warps, WarpZone{
		Area:        common.NewRect(x1, y1, x2, y2),
		Target:      target,
		Destination: dest,
	})
	return nil
}

func (m *Map) WarpZones() []WarpZone {
	return append([]WarpZone(nil), m.warps...)
}

// WarpZoneAt returns the earliest registered zone covering p.
func (m *Map) WarpZoneAt(p common.Point) (WarpZone, bool) {
	for _, w := range m.warps {
		if w.Area.Contains(p) {
			return w, true
		}
	}
	return WarpZone{}, false
}
