package script

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/milk9111/thegame/arena"
	"github.com/milk9111/thegame/common"
	"github.com/milk9111/thegame/object"
	"github.com/pkg/errors"
)

type scriptContext struct {
	logs    bytes.Buffer
	maps    []string
	menus   []string
	failMap error
}

func (c *scriptContext) Swap(a, b common.Point, layer int) (bool, error) { return false, nil }
func (c *scriptContext) Stack(p common.Point) []object.Occupant { return nil }
func (c *scriptContext) Position(arena.Handle) (common.Point, bool) { return common.Point{}, false }
func (c *scriptContext) SetPosition(arena.Handle, common.Point) {}
func (c *scriptContext) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&c.logs, nil))
}

func (c *scriptContext) ChangeMap(name string) error {
	if c.failMap != nil {
		return c.failMap
	}
	c.maps = append(c.maps, name)
	return nil
}

func (c *scriptContext) OpenMenu(name string) error {
	c.menus = append(c.menus, name)
	return nil
}

const chestScript = `
interact := func(engine, state) {
	if is_undefined(state.opened) {
		state.opened = 0
	}
	state.opened = state.opened + 1
	if engine.variant() == "closed" {
		engine.set_variant("open")
		engine.log("chest opened")
	} else {
		engine.change_map("cellar")
	}
}
`

func newChest(t *testing.T) *object.GameObject {
	t.Helper()
	g, err := object.New([]object.Variant{
		{Name: "closed", Asset: "chest.png"},
		{Name: "open", Asset: "chest_open.png"},
	}, "", "chest")
	if err != nil {
		t.Fatalf("object.New: %v", err)
	}
	return g
}

func TestInteractKeepsState(t *testing.T) {
	rt := New("chest.tengo", []byte(chestScript))
	chest := newChest(t)
	ctx := &scriptContext{}

	if err := rt.Interact(chest, ctx); err != nil {
		t.Fatalf("first Interact: %v", err)
	}
	if v, _ := chest.ActiveVariant(); v != "open" {
		t.Fatalf("expected open variant, got %q", v)
	}
	if !strings.Contains(ctx.logs.String(), "chest opened") {
		t.Fatalf("expected script log line, got %q", ctx.logs.String())
	}
	if len(ctx.maps) != 0 {
		t.Fatalf("first interaction should not change map")
	}

	if err := rt.Interact(chest, ctx); err != nil {
		t.Fatalf("second Interact: %v", err)
	}
	if len(ctx.maps) != 1 || ctx.maps[0] != "cellar" {
		t.Fatalf("expected change to cellar, got %v", ctx.maps)
	}
	if got, ok := rt.State("opened"); !ok || got != 2 {
		t.Fatalf("expected opened=2, got %v (%v)", got, ok)
	}
}

func TestInteractErrors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		ctx     *scriptContext
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing_interact",
			src:     `greeting := "hi"`,
			ctx:     &scriptContext{},
			wantErr: ErrNoInteractFunc,
		},
		{
			name:    "syntax_error",
			src:     `interact := func(engine, state) {`,
			ctx:     &scriptContext{},
			wantMsg: "compile",
		},
		{
			name:    "unknown_variant",
			src:     `interact := func(engine, state) { engine.set_variant("broken") }`,
			ctx:     &scriptContext{},
			wantErr: object.ErrUnknownVariant,
		},
		{
			name:    "host_error",
			src:     `interact := func(engine, state) { engine.change_map("nowhere") }`,
			ctx:     &scriptContext{failMap: errors.New("no such map")},
			wantMsg: "no such map",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := New(c.name, []byte(c.src)).Interact(newChest(t), c.ctx)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if c.wantErr != nil && !errors.Is(err, c.wantErr) && !strings.Contains(err.Error(), c.wantErr.Error()) {
				t.Fatalf("expected %v, got %v", c.wantErr, err)
			}
			if c.wantMsg != "" && !strings.Contains(err.Error(), c.wantMsg) {
				t.Fatalf("expected error containing %q, got %v", c.wantMsg, err)
			}
		})
	}
}

func TestCompileRequiresInteract(t *testing.T) {
	for _, src := range []string{
		`greeting := "hi"`,
		`interact := undefined`,
		`fmt := import("fmt")
helper := func() { return fmt.sprintf("%d", 1) }`,
	} {
		err := New("no_interact", []byte(src)).Compile()
		if !errors.Is(err, ErrNoInteractFunc) {
			t.Fatalf("Compile(%q) = %v, want %v", src, err, ErrNoInteractFunc)
		}
	}

	if err := New("ok", []byte(chestScript)).Compile(); err != nil {
		t.Fatalf("Compile(chest) = %v", err)
	}
}
