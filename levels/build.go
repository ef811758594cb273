package levels

import (
	"io/fs"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/milk9111/thegame/entity"
	"github.com/milk9111/thegame/object"
	"github.com/milk9111/thegame/script"
	"github.com/milk9111/thegame/tilemap"
)

// Build turns the level into a validated map. Every cell gets its own
// object. Scripts are read from scripts and compiled up front.
func (l *Level) Build(scripts fs.FS) (*tilemap.Map, error) {
	rows := [tilemap.LayerCount][]string{
		l.Layers.Foreground, l.Layers.Character, l.Layers.Path, l.Layers.Background,
	}
	height, width := 0, 0
	for _, r := range rows {
		if len(r) > 0 {
			height, width = len(r), utf8.RuneCountInString(r[0])
			break
		}
	}

	var grids [tilemap.LayerCount]tilemap.Grid
	for li, r := range rows {
		if len(r) == 0 {
			grids[li] = tilemap.NewGrid(width, height)
			continue
		}
		g := make(tilemap.Grid, len(r))
		for y, line := range r {
			g[y] = make([]object.Occupant, 0, width)
			for _, glyph := range line {
				occ, err := l.cell(glyph, scripts)
				if err != nil {
					return nil, errors.Wrapf(err, "levels: %s %s row %d", l.Name, tilemap.Layer(li), y)
				}
				g[y] = append(g[y], occ)
			}
		}
		grids[li] = g
	}

	m, err := tilemap.New(grids[tilemap.Foreground], grids[tilemap.Path], grids[tilemap.Background], grids[tilemap.Character])
	if err != nil {
		return nil, errors.Wrapf(err, "levels: %s", l.Name)
	}
	return m, nil
}

func (l *Level) cell(glyph rune, scripts fs.FS) (object.Occupant, error) {
	if glyph == '.' || glyph == ' ' {
		return nil, nil
	}
	name, ok := l.Legend[string(glyph)]
	if !ok {
		return nil, errors.Wrapf(tilemap.ErrInvalidCell, "glyph %q not in legend", glyph)
	}
	spec, ok := l.Objects[name]
	if !ok {
		return nil, errors.Wrapf(tilemap.ErrInvalidCell, "glyph %q names unknown object %q", glyph, name)
	}
	return spec.instantiate(name, scripts)
}

func (s ObjectSpec) instantiate(name string, scripts fs.FS) (object.Occupant, error) {
	switch s.Kind {
	case KindPlain:
		g, err := object.New(s.Sprites, s.Initial, name)
		if err != nil {
			return nil, err
		}
		s.apply(g)
		return g, nil

	case KindPlayer:
		p, err := entity.NewPlayerCharacter(s.Sprites, s.Initial, name)
		if err != nil {
			return nil, err
		}
		s.apply(p.GameObject)
		if s.Facing != "" {
			if p.Facing, err = entity.ParseDirection(s.Facing); err != nil {
				return nil, err
			}
		}
		return p, nil

	case KindInteractive:
		if s.Script == "" {
			return nil, errors.Wrapf(ErrBadObject, "interactive %q has no script", name)
		}
		src, err := fs.ReadFile(scripts, scriptPath(s.Script))
		if err != nil {
			return nil, errors.Wrapf(err, "levels: script for %q", name)
		}
		rt := script.New(s.Script, src)
		if err := rt.Compile(); err != nil {
			return nil, err
		}
		i, err := entity.NewInteractive(s.Sprites, s.Initial, name, func(self *entity.Interactive, ctx object.Context) error {
			return rt.Interact(self.GameObject, ctx)
		})
		if err != nil {
			return nil, err
		}
		s.apply(i.GameObject)
		return i, nil

	default:
		return nil, errors.Wrapf(ErrBadObject, "%q has unknown kind %q", name, s.Kind)
	}
}

func (s ObjectSpec) apply(g *object.GameObject) {
	g.Collides = s.Collides
	g.Animation = s.Animation
}

func scriptPath(name string) string {
	s := path.Clean(strings.ReplaceAll(name, "\\", "/"))
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if strings.HasPrefix(s, "scripts/") {
		return s
	}
	return path.Join("scripts", s)
}
