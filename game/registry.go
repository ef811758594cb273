package game

import (
	"github.com/milk9111/thegame/arena"
	"github.com/milk9111/thegame/common"
	"github.com/milk9111/thegame/object"
	"github.com/milk9111/thegame/tilemap"
	"github.com/pkg/errors"
)

// LoadActiveMap binds visuals for every occupant of the active map and
// registers its player-controlled objects. Each distinct asset id is loaded
// once per session.
func (s *Session) LoadActiveMap() error {
	m, ok := s.ActiveMap()
	if !ok {
		return nil
	}
	var loadErr error
	m.Objects(func(l tilemap.Layer, p common.Point, occ object.Occupant) {
		if loadErr != nil {
			return
		}
		loadErr = s.bindVisuals(occ)
	})
	if loadErr != nil {
		return loadErr
	}
	if err := s.LoadPlayerControlled(m); err != nil {
		return err
	}
	s.loaded = m
	s.followPlayer()
	return nil
}

// oriented occupants pick their variant from their own state on load.
type oriented interface {
	ApplyFacing()
}

func (s *Session) bindVisuals(occ object.Occupant) error {
	g := occ.Base()
	if s.loader != nil {
		for _, asset := range g.Assets() {
			v, err := s.visual(asset)
			if err != nil {
				return errors.Wrapf(err, "game: load visual for %s", g)
			}
			g.RegisterLoadedVisual(asset, v)
		}
	}
	if _, ok := g.ActiveVariant(); !ok {
		if def, ok := g.DefaultVariant(); ok {
			if err := g.SetActiveVariant(def); err != nil {
				return err
			}
		}
	}
	if o, ok := occ.(oriented); ok {
		o.ApplyFacing()
	}
	return nil
}

// UnloadActiveMap deregisters visuals and clears the position registry.
func (s *Session) UnloadActiveMap() {
	if s.loaded == nil {
		return
	}
	s.loaded.Objects(func(_ tilemap.Layer, _ common.Point, occ object.Occupant) {
		occ.Base().DeregisterAllLoadedVisuals()
	})
	s.ClearPlayerControlled()
	s.loaded = nil
}

func (s *Session) visual(asset string) (object.Visual, error) {
	if v, ok := s.visuals[asset]; ok {
		return v, nil
	}
	v, err := s.loader.Load(asset)
	if err != nil {
		return nil, err
	}
	s.visuals[asset] = v
	return v, nil
}

// RegisterPlayerControlled adds obj to the position registry at (x, y).
func (s *Session) RegisterPlayerControlled(obj object.Controllable, x, y int) arena.Handle {
	h := s.entities.Insert(obj)
	obj.Base().Bind(h)
	s.positions[h] = common.Pt(x, y)
	return h
}

// ClearPlayerControlled empties the registry.
func (s *Session) ClearPlayerControlled() {
	for _, h := range s.entities.Handles() {
		if obj, ok := s.entities.Get(h); ok {
			obj.Base().Unbind()
		}
	}
	s.entities.Clear()
	s.positions = map[arena.Handle]common.Point{}
}

// LoadPlayerControlled registers every controllable occupant of m.
func (s *Session) LoadPlayerControlled(m *tilemap.Map) error {
	for _, p := range m.PlayerControlled() {
		if p.Layer != tilemap.Character {
			s.logger.Warn("controllable object outside the character layer", "object", p.Object.Base().String(), "layer", p.Layer.String())
		}
		s.RegisterPlayerControlled(p.Object, p.X, p.Y)
	}
	return nil
}

// PlayerControlled returns registered handles in ascending order.
func (s *Session) PlayerControlled() []arena.Handle {
	return s.entities.Handles()
}

func (s *Session) Controllable(h arena.Handle) (object.Controllable, bool) {
	return s.entities.Get(h)
}

func (s *Session) Position(h arena.Handle) (common.Point, bool) {
	p, ok := s.positions[h]
	return p, ok
}

func (s *Session) SetPosition(h arena.Handle, p common.Point) {
	if !s.entities.Alive(h) {
		return
	}
	s.positions[h] = p
}

// Swap runs a collision-checked swap on the active map.
func (s *Session) Swap(a, b common.Point, layer int) (bool, error) {
	m, ok := s.ActiveMap()
	if !ok {
		return false, errors.Wrap(ErrUnknownMap, "no active map")
	}
	return m.Swap(a, b, tilemap.Layer(layer), false)
}

// Stack returns the occupants of the active map at p, foreground first.
func (s *Session) Stack(p common.Point) []object.Occupant {
	m, ok := s.ActiveMap()
	if !ok || !m.InBounds(p) {
		return nil
	}
	stack := m.Stack(p)
	return stack[:]
}

func (s *Session) followPlayer() {
	for _, h := range s.PlayerControlled() {
		if p, ok := s.positions[h]; ok {
			s.camera.CenterOn(p)
			return
		}
	}
}
