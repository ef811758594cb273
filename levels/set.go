package levels

import (
	"io/fs"

	"github.com/pkg/errors"

	"github.com/milk9111/thegame/tilemap"
)

// Set is a group of built maps keyed by level name, with warps between them
// already registered.
type Set struct {
	Order []string
	Maps  map[string]*tilemap.Map
}

// LoadSet builds the named levels, or every level in fsys when none are
// given. Warps may only target levels within the set.
func LoadSet(fsys fs.FS, names ...string) (*Set, error) {
	if len(names) == 0 {
		var err error
		if names, err = Names(fsys); err != nil {
			return nil, err
		}
	}

	set := &Set{Maps: make(map[string]*tilemap.Map, len(names))}
	levels := make(map[string]*Level, len(names))
	for _, name := range names {
		lvl, err := LoadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		if _, dup := levels[lvl.Name]; dup {
			return nil, errors.Errorf("levels: duplicate level name %q", lvl.Name)
		}
		m, err := lvl.Build(fsys)
		if err != nil {
			return nil, err
		}
		levels[lvl.Name] = lvl
		set.Maps[lvl.Name] = m
		set.Order = append(set.Order, lvl.Name)
	}

	for _, name := range set.Order {
		if err := levels[name].registerWarps(set.Maps[name], set.Maps); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// Map returns the named map.
func (s *Set) Map(name string) (*tilemap.Map, error) {
	m, ok := s.Maps[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownLevel, "%s", name)
	}
	return m, nil
}

// First returns the first loaded level.
func (s *Set) First() (string, *tilemap.Map, bool) {
	if len(s.Order) == 0 {
		return "", nil, false
	}
	return s.Order[0], s.Maps[s.Order[0]], true
}

func (l *Level) registerWarps(m *tilemap.Map, maps map[string]*tilemap.Map) error {
	for i, w := range l.Warps {
		target := m
		if w.Map != "" && w.Map != l.Name {
			var ok bool
			if target, ok = maps[w.Map]; !ok {
				return errors.Wrapf(ErrUnknownLevel, "levels: %s warp %d targets %q", l.Name, i, w.Map)
			}
		}
		to := w.At
		if w.To != nil {
			to = *w.To
		}
		if err := m.RegisterWarpArea(w.At[0], w.At[1], to[0], to[1], target, w.Target[0], w.Target[1]); err != nil {
			return errors.Wrapf(err, "levels: %s warp %d", l.Name, i)
		}
	}
	return nil
}
