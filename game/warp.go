package game

import (
	"github.com/milk9111/thegame/arena"
	"github.com/milk9111/thegame/common"
	"github.com/milk9111/thegame/tilemap"
	"github.com/pkg/errors"
)

// Warp moves the registered object h, standing at p, through the warp zone
// covering p. It returns false when p is not in a zone or the destination
// cell is taken. Warping to another map changes the active map.
func (s *Session) Warp(h arena.Handle, p common.Point) (bool, error) {
	m, ok := s.ActiveMap()
	if !ok {
		return false, nil
	}
	zone, ok := m.WarpZoneAt(p)
	if !ok {
		return false, nil
	}
	obj, ok := s.entities.Get(h)
	if !ok {
		return false, nil
	}
	dest := zone.Destination
	if occ, _ := zone.Target.At(tilemap.Character, dest); occ != nil {
		if zone.Target != m || dest != p {
			s.logger.Warn("warp destination occupied", "object", obj.Base().String(), "x", dest.X, "y", dest.Y)
		}
		return false, nil
	}

	if zone.Target == m {
		if _, err := m.Swap(p, dest, tilemap.Character, true); err != nil {
			return false, err
		}
		s.positions[h] = dest
		s.logger.Info("warped", "object", obj.Base().String(), "x", dest.X, "y", dest.Y)
		return true, nil
	}

	name, ok := s.mapName(zone.Target)
	if !ok {
		return false, errors.Wrap(ErrUnknownMap, "warp target is not registered")
	}
	if err := m.Place(tilemap.Character, p, nil); err != nil {
		return false, err
	}
	if err := zone.Target.Place(tilemap.Character, dest, obj); err != nil {
		return false, err
	}
	s.logger.Info("warped", "object", obj.Base().String(), "map", name, "x", dest.X, "y", dest.Y)
	return true, s.ChangeMap(name)
}

func (s *Session) mapName(m *tilemap.Map) (string, bool) {
	for _, name := range s.MapNames() {
		if s.maps[name] == m {
			return name, true
		}
	}
	return "", false
}
