package object

import (
	"testing"

	"github.com/pkg/errors"
)

type fakeVisual struct {
	id   string
	x, y int
}

func (f *fakeVisual) SetPosition(x, y int) {
	f.x, f.y = x, y
}

func newTestObject(t *testing.T, initial string) *GameObject {
	t.Helper()
	g, err := New([]Variant{
		{Name: "south", Asset: "hero_s.png"},
		{Name: "north", Asset: "hero_n.png"},
		{Name: "idle", Asset: "hero_s.png"},
	}, initial, "hero")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestNewActiveVariant(t *testing.T) {
	cases := []struct {
		name       string
		variants   []Variant
		initial    string
		wantActive string
		wantSet    bool
		wantErr    error
	}{
		{"first_is_default", []Variant{{"b", "b.png"}, {"a", "a.png"}}, "", "b", true, nil},
		{"explicit", []Variant{{"b", "b.png"}, {"a", "a.png"}}, "a", "a", true, nil},
		{"unknown_initial", []Variant{{"b", "b.png"}}, "zzz", "", false, ErrInvalidVariant},
		{"no_variants", nil, "", "", false, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := New(c.variants, c.initial, "")
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			active, ok := g.ActiveVariant()
			if ok != c.wantSet || active != c.wantActive {
				t.Fatalf("ActiveVariant() = %q, %v; want %q, %v", active, ok, c.wantActive, c.wantSet)
			}
		})
	}
}

func TestVariantsKeepInsertionOrder(t *testing.T) {
	g := newTestObject(t, "")
	g.AddVariant("north", "hero_n2.png")
	g.AddVariant("east", "hero_e.png")

	want := []Variant{
		{"south", "hero_s.png"},
		{"north", "hero_n2.png"},
		{"idle", "hero_s.png"},
		{"east", "hero_e.png"},
	}
	got := g.Variants()
	if len(got) != len(want) {
		t.Fatalf("expected %d variants, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("variant %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
	if assets := g.Assets(); len(assets) != 3 {
		t.Fatalf("expected 3 distinct assets, got %v", assets)
	}
}

func TestSetActiveVariantUnknown(t *testing.T) {
	g := newTestObject(t, "north")
	if err := g.SetActiveVariant("west"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
	if active, _ := g.ActiveVariant(); active != "north" {
		t.Fatalf("failed set must not change active variant, got %q", active)
	}
}

func TestCurrentVisual(t *testing.T) {
	t.Run("no_bindings", func(t *testing.T) {
		g := newTestObject(t, "")
		if _, err := g.CurrentVisual(); !errors.Is(err, ErrNoVisualRegistered) {
			t.Fatalf("expected ErrNoVisualRegistered, got %v", err)
		}
	})

	t.Run("resolves_active_asset", func(t *testing.T) {
		g := newTestObject(t, "north")
		south := &fakeVisual{id: "s"}
		north := &fakeVisual{id: "n"}
		g.RegisterLoadedVisual("hero_s.png", south)
		g.RegisterLoadedVisual("hero_n.png", north)

		v, err := g.SetVisualPosition(40, 60)
		if err != nil {
			t.Fatalf("SetVisualPosition: %v", err)
		}
		if v != north || north.x != 40 || north.y != 60 {
			t.Fatalf("expected north visual at 40,60, got %+v", v)
		}
		if err := g.SetActiveVariant("idle"); err != nil {
			t.Fatalf("SetActiveVariant: %v", err)
		}
		if v, _ := g.CurrentVisual(); v != south {
			t.Fatalf("idle shares the south asset, got %+v", v)
		}
	})

	t.Run("after_deregister", func(t *testing.T) {
		g := newTestObject(t, "")
		g.RegisterLoadedVisual("hero_s.png", &fakeVisual{})
		g.DeregisterAllLoadedVisuals()
		if _, ok := g.ActiveVariant(); ok {
			t.Fatalf("deregister should unset the active variant")
		}
		if g.LoadedVisuals() != 0 {
			t.Fatalf("deregister should clear bindings")
		}
		g.RegisterLoadedVisual("hero_s.png", &fakeVisual{})
		if _, err := g.CurrentVisual(); !errors.Is(err, ErrNoActiveVariant) {
			t.Fatalf("expected ErrNoActiveVariant, got %v", err)
		}
	})

	t.Run("missing_asset_binding", func(t *testing.T) {
		g := newTestObject(t, "north")
		g.RegisterLoadedVisual("hero_s.png", &fakeVisual{})
		if _, err := g.CurrentVisual(); !errors.Is(err, ErrNoVisualRegistered) {
			t.Fatalf("expected ErrNoVisualRegistered, got %v", err)
		}
	})
}

func TestClone(t *testing.T) {
	g := newTestObject(t, "north")
	g.Collides = true
	g.RegisterLoadedVisual("hero_n.png", &fakeVisual{})
	g.Bind(42)

	c := g.Clone()
	if active, _ := c.ActiveVariant(); active != "north" {
		t.Fatalf("clone active variant = %q", active)
	}
	if !c.Collides || c.Name != "hero" {
		t.Fatalf("clone lost flags: %+v", c)
	}
	if c.LoadedVisuals() != 0 {
		t.Fatalf("clone must start with empty bindings")
	}
	if c.Handle() != 0 {
		t.Fatalf("clone must not inherit the registry handle")
	}

	c.AddVariant("west", "hero_w.png")
	if g.HasVariant("west") {
		t.Fatalf("variant added to clone leaked into original")
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		name string
		obj  *GameObject
		want string
	}{
		{"named", &GameObject{Name: "rock"}, "GameObject: rock"},
		{"anonymous", &GameObject{}, "GameObject"},
		{"nil", nil, "GameObject"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.obj.String(); got != c.want {
				t.Fatalf("expected %q, got %q", c.want, got)
			}
		})
	}
}
