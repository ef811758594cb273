package entity

import (
	"github.com/milk9111/thegame/object"
	"github.com/pkg/errors"
)

var ErrNoInteraction = errors.New("entity: no interaction handler")

// InteractionFunc runs when a player interacts with an Interactive. self is
// the object being interacted with.
type InteractionFunc func(self *Interactive, ctx object.Context) error

// Interactive is a map occupant with an interaction callback.
type Interactive struct {
	*object.GameObject
	OnInteract InteractionFunc
}

func NewInteractive(variants []object.Variant, initial, name string, fn InteractionFunc) (*Interactive, error) {
	g, err := object.New(variants, initial, name)
	if err != nil {
		return nil, err
	}
	return &Interactive{GameObject: g, OnInteract: fn}, nil
}

func (i *Interactive) Base() *object.GameObject {
	if i == nil {
		return nil
	}
	return i.GameObject
}

func (i *Interactive) Interact(ctx object.Context) error {
	if i.OnInteract == nil {
		return errors.Wrapf(ErrNoInteraction, "%s", i)
	}
	return i.OnInteract(i, ctx)
}

func (i *Interactive) String() string {
	if i == nil || i.GameObject == nil {
		return "Interactive"
	}
	return object.Describe("Interactive", i.Name)
}
