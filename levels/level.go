// Package levels loads tile maps from YAML level files.
//
// A level names object prototypes, maps single-character glyphs to them and
// draws each layer as rows of glyphs. '.' and ' ' are empty cells.
package levels

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/thegame/object"
)

var (
	ErrUnknownLevel = errors.New("levels: unknown level")
	ErrBadObject    = errors.New("levels: bad object definition")
)

const (
	KindPlain       = ""
	KindPlayer      = "player"
	KindInteractive = "interactive"
)

type Level struct {
	Name    string                `yaml:"name"`
	Legend  map[string]string     `yaml:"legend"`
	Objects map[string]ObjectSpec `yaml:"objects"`
	Layers  LayersSpec            `yaml:"layers"`
	Warps   []WarpSpec            `yaml:"warps"`
}

type ObjectSpec struct {
	Kind      string   `yaml:"kind"`
	Sprites   Variants `yaml:"sprites"`
	Initial   string   `yaml:"initial"`
	Collides  bool     `yaml:"collides"`
	Animation string   `yaml:"animation"`
	Facing    string   `yaml:"facing"`
	Script    string   `yaml:"script"`
}

type LayersSpec struct {
	Foreground []string `yaml:"foreground"`
	Character  []string `yaml:"character"`
	Path       []string `yaml:"path"`
	Background []string `yaml:"background"`
}

// WarpSpec is a warp zone from At (to the optional far corner To) onto
// Target of the named map, or of this level when Map is empty.
type WarpSpec struct {
	At     [2]int  `yaml:"at"`
	To     *[2]int `yaml:"to"`
	Map    string  `yaml:"map"`
	Target [2]int  `yaml:"target"`
}

// Variants keeps sprite variants in file order, so the first listed is the
// default.
type Variants []object.Variant

func (v *Variants) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.Errorf("levels: sprites must be a mapping, line %d", node.Line)
	}
	out := make(Variants, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name, asset string
		if err := node.Content[i].Decode(&name); err != nil {
			return err
		}
		if err := node.Content[i+1].Decode(&asset); err != nil {
			return err
		}
		out = append(out, object.Variant{Name: name, Asset: asset})
	}
	*v = out
	return nil
}

// Parse decodes a level file.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, errors.Wrap(err, "levels: unmarshal")
	}
	return &lvl, nil
}
