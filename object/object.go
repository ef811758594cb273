// Package object defines GameObject, the entity that occupies map cells, and
// the capability interfaces richer entities implement.
package object

import (
	"fmt"

	"github.com/milk9111/thegame/arena"
	"github.com/pkg/errors"
)

var (
	ErrInvalidVariant     = errors.New("object: invalid variant")
	ErrUnknownVariant     = errors.New("object: unknown variant")
	ErrNoVisualRegistered = errors.New("object: no visual registered")
	ErrNoActiveVariant    = errors.New("object: no active variant")
)

// Variant names an appearance and the asset that draws it.
type Variant struct {
	Name  string
	Asset string
}

// GameObject is anything that can sit in a map cell. Variants keep their
// insertion order; the first one is the default.
type GameObject struct {
	Name      string
	Collides  bool
	Animation string

	variants  []Variant
	index     map[string]int
	active    string
	hasActive bool
	visuals   map[string]Visual
	handle    arena.Handle
}

// New builds a GameObject. An empty initial selects the first variant.
func New(variants []Variant, initial, name string) (*GameObject, error) {
	g := &GameObject{
		Name:    name,
		index:   make(map[string]int, len(variants)),
		visuals: map[string]Visual{},
	}
	for _, v := range variants {
		g.AddVariant(v.Name, v.Asset)
	}
	if initial == "" {
		if len(g.variants) > 0 {
			g.active = g.variants[0].Name
			g.hasActive = true
		}
		return g, nil
	}
	if _, ok := g.index[initial]; !ok {
		return nil, errors.Wrapf(ErrInvalidVariant, "%q not among variants of %q", initial, name)
	}
	g.active = initial
	g.hasActive = true
	return g, nil
}

// Base lets a *GameObject satisfy Occupant directly.
func (g *GameObject) Base() *GameObject {
	return g
}

// AddVariant appends a variant, or replaces the asset of an existing one in
// place.
func (g *GameObject) AddVariant(name, asset string) {
	if g.index == nil {
		g.index = map[string]int{}
	}
	if i, ok := g.index[name]; ok {
		g.variants[i].Asset = asset
		return
	}
	g.index[name] = len(g.variants)
	g.variants = append(g.variants, Variant{Name: name, Asset: asset})
}

func (g *GameObject) Variants() []Variant {
	return append([]Variant(nil), g.variants...)
}

func (g *GameObject) HasVariant(name string) bool {
	_, ok := g.index[name]
	return ok
}

// DefaultVariant is the first inserted variant.
func (g *GameObject) DefaultVariant() (string, bool) {
	if len(g.variants) == 0 {
		return "", false
	}
	return g.variants[0].Name, true
}

// Assets lists the distinct asset ids referenced by the variants.
func (g *GameObject) Assets() []string {
	seen := make(map[string]struct{}, len(g.variants))
	out := make([]string, 0, len(g.variants))
	for _, v := range g.variants {
		if _, ok := seen[v.Asset]; ok {
			continue
		}
		seen[v.Asset] = struct{}{}
		out = append(out, v.Asset)
	}
	return out
}

func (g *GameObject) ActiveVariant() (string, bool) {
	return g.active, g.hasActive
}

func (g *GameObject) SetActiveVariant(name string) error {
	if !g.HasVariant(name) {
		return errors.Wrapf(ErrUnknownVariant, "%q on %s", name, g)
	}
	g.active = name
	g.hasActive = true
	return nil
}

// RegisterLoadedVisual binds a loaded visual to an asset id, replacing any
// previous binding.
func (g *GameObject) RegisterLoadedVisual(asset string, v Visual) {
	if g.visuals == nil {
		g.visuals = map[string]Visual{}
	}
	g.visuals[asset] = v
}

// DeregisterAllLoadedVisuals drops every binding and unsets the active
// variant.
func (g *GameObject) DeregisterAllLoadedVisuals() {
	g.visuals = map[string]Visual{}
	g.active = ""
	g.hasActive = false
}

func (g *GameObject) LoadedVisuals() int {
	return len(g.visuals)
}

// CurrentVisual resolves the active variant to its bound visual.
func (g *GameObject) CurrentVisual() (Visual, error) {
	if len(g.visuals) == 0 {
		return nil, errors.Wrapf(ErrNoVisualRegistered, "%s", g)
	}
	if !g.hasActive {
		return nil, errors.Wrapf(ErrNoActiveVariant, "%s", g)
	}
	asset := g.variants[g.index[g.active]].Asset
	v, ok := g.visuals[asset]
	if !ok {
		return nil, errors.Wrapf(ErrNoVisualRegistered, "asset %q for variant %q of %s", asset, g.active, g)
	}
	return v, nil
}

// SetVisualPosition places the current visual at screen pixels (x, y) and
// returns it.
func (g *GameObject) SetVisualPosition(x, y int) (Visual, error) {
	v, err := g.CurrentVisual()
	if err != nil {
		return nil, err
	}
	v.SetPosition(x, y)
	return v, nil
}

// Clone copies variants, active variant and flags. Visual bindings and the
// registry handle are not shared with the copy.
func (g *GameObject) Clone() *GameObject {
	c := &GameObject{
		Name:      g.Name,
		Collides:  g.Collides,
		Animation: g.Animation,
		variants:  append([]Variant(nil), g.variants...),
		index:     make(map[string]int, len(g.index)),
		active:    g.active,
		hasActive: g.hasActive,
		visuals:   map[string]Visual{},
	}
	for k, v := range g.index {
		c.index[k] = v
	}
	return c
}

// Bind records the registry handle of a player-controlled object.
func (g *GameObject) Bind(h arena.Handle) {
	g.handle = h
}

func (g *GameObject) Unbind() {
	g.handle = 0
}

func (g *GameObject) Handle() arena.Handle {
	return g.handle
}

func (g *GameObject) String() string {
	if g == nil {
		return "GameObject"
	}
	return Describe("GameObject", g.Name)
}

// Describe formats an object as "TypeName: name", or just TypeName when
// unnamed.
func Describe(typeName, name string) string {
	if name == "" {
		return typeName
	}
	return fmt.Sprintf("%s: %s", typeName, name)
}
