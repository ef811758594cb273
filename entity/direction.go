package entity

import (
	"fmt"

	"github.com/milk9111/thegame/common"
	"github.com/pkg/errors"
)

var ErrInvalidFacingDirection = errors.New("entity: invalid facing direction")

// Direction is the way a character faces.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Offset returns the one-tile step in direction d.
func (d Direction) Offset() (common.Point, error) {
	switch d {
	case North:
		return common.Pt(0, -1), nil
	case East:
		return common.Pt(1, 0), nil
	case South:
		return common.Pt(0, 1), nil
	case West:
		return common.Pt(-1, 0), nil
	default:
		return common.Point{}, errors.Wrapf(ErrInvalidFacingDirection, "%d", int(d))
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts the lowercase names returned by String.
func ParseDirection(s string) (Direction, error) {
	for d := North; d <= West; d++ {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidFacingDirection, "%q", s)
}
