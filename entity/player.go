// Package entity holds the map occupants that react to the player: the
// player character and interactive objects.
package entity

import (
	"github.com/milk9111/thegame/input"
	"github.com/milk9111/thegame/object"
	"github.com/milk9111/thegame/tilemap"
	"github.com/pkg/errors"
)

var ErrNotRegistered = errors.New("entity: character not in position registry")

// PlayerCharacter is a controllable occupant of the character layer.
type PlayerCharacter struct {
	*object.GameObject
	Facing Direction
}

func NewPlayerCharacter(variants []object.Variant, initial, name string) (*PlayerCharacter, error) {
	g, err := object.New(variants, initial, name)
	if err != nil {
		return nil, err
	}
	return &PlayerCharacter{GameObject: g, Facing: South}, nil
}

func (p *PlayerCharacter) Base() *object.GameObject {
	if p == nil {
		return nil
	}
	return p.GameObject
}

func (p *PlayerCharacter) Clone() *PlayerCharacter {
	return &PlayerCharacter{GameObject: p.GameObject.Clone(), Facing: p.Facing}
}

func (p *PlayerCharacter) String() string {
	if p == nil || p.GameObject == nil {
		return "PlayerCharacter"
	}
	return object.Describe("PlayerCharacter", p.Name)
}

// PlayerInteraction maps a keystroke to movement and interaction.
func (p *PlayerCharacter) PlayerInteraction(keys input.KeySet, ctx object.Context) error {
	up := keys.Any(input.KeyW, input.KeyUp)
	down := keys.Any(input.KeyS, input.KeyDown)
	left := keys.Any(input.KeyA, input.KeyLeft)
	right := keys.Any(input.KeyD, input.KeyRight)
	if up || down || left || right {
		if _, err := p.Move(ctx, up, down, left, right); err != nil {
			return err
		}
	}
	if keys.Any(input.KeyE, input.KeySpace) {
		if _, err := p.FacingInteraction(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Move steps one tile in the highest-priority requested direction (up, down,
// left, right). The character turns even when the step is blocked; the
// position registry changes only when the swap succeeds.
func (p *PlayerCharacter) Move(ctx object.Context, up, down, left, right bool) (bool, error) {
	var dir Direction
	switch {
	case up:
		dir = North
	case down:
		dir = South
	case left:
		dir = West
	case right:
		dir = East
	default:
		ctx.Logger().Warn("move requested without a direction", "object", p.String())
		return false, nil
	}

	h := p.Handle()
	pos, ok := ctx.Position(h)
	if !ok {
		return false, errors.Wrapf(ErrNotRegistered, "%s", p)
	}

	p.turn(dir)
	step, err := dir.Offset()
	if err != nil {
		return false, err
	}
	next := pos.Add(step)

	moved, err := ctx.Swap(pos, next, int(tilemap.Character))
	if err != nil || !moved {
		return false, err
	}
	ctx.SetPosition(h, next)

	if w, ok := ctx.(object.Warper); ok {
		if _, err := w.Warp(h, next); err != nil {
			return true, err
		}
	}
	return true, nil
}

// ApplyFacing shows the variant named after Facing, if there is one.
func (p *PlayerCharacter) ApplyFacing() {
	p.turn(p.Facing)
}

func (p *PlayerCharacter) turn(dir Direction) {
	p.Facing = dir
	if p.HasVariant(dir.String()) {
		_ = p.SetActiveVariant(dir.String())
	}
}

// FacingInteraction interacts with the topmost interactable occupant of the
// cell the character faces. It reports whether one was found.
func (p *PlayerCharacter) FacingInteraction(ctx object.Context) (bool, error) {
	step, err := p.Facing.Offset()
	if err != nil {
		return false, err
	}
	pos, ok := ctx.Position(p.Handle())
	if !ok {
		return false, errors.Wrapf(ErrNotRegistered, "%s", p)
	}

	for _, occ := range ctx.Stack(pos.Add(step)) {
		target, ok := occ.(object.Interactable)
		if !ok || occ.Base() == nil {
			continue
		}
		return true, target.Interact(ctx)
	}
	return false, nil
}
