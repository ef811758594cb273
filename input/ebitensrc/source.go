// Package ebitensrc feeds ebiten keyboard, gamepad, mouse and window state
// into the engine as input frames.
package ebitensrc

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/thegame/input"
)

var keyboardKeys = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyEnter:      input.KeyEnter,
	ebiten.KeyEscape:     input.KeyEscape,
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyW:          input.KeyW,
	ebiten.KeyA:          input.KeyA,
	ebiten.KeyS:          input.KeyS,
	ebiten.KeyD:          input.KeyD,
	ebiten.KeyE:          input.KeyE,
}

var gamepadButtons = map[ebiten.StandardGamepadButton]input.Key{
	ebiten.StandardGamepadButtonLeftTop:     input.KeyUp,
	ebiten.StandardGamepadButtonLeftBottom:  input.KeyDown,
	ebiten.StandardGamepadButtonLeftLeft:    input.KeyLeft,
	ebiten.StandardGamepadButtonLeftRight:   input.KeyRight,
	ebiten.StandardGamepadButtonRightBottom: input.KeyEnter,
	ebiten.StandardGamepadButtonRightLeft:   input.KeyE,
}

// Source polls ebiten's keyboard, first gamepad, mouse and window state.
// Poll must be called from ebiten's Update.
type Source struct {
	queue input.Queue
	keys  []ebiten.Key
}

var _ input.Source = (*Source)(nil)

func New() *Source {
	ebiten.SetWindowClosingHandled(true)
	return &Source{}
}

func (s *Source) Poll() (input.Frame, error) {
	keys := input.NewKeySet()

	s.keys = inpututil.AppendPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if mapped, ok := keyboardKeys[k]; ok {
			keys[mapped] = struct{}{}
		}
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		for b, mapped := range gamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				keys[mapped] = struct{}{}
			}
		}
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.queue.Push(input.Event{Kind: input.EventMouseDown, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.queue.Push(input.Event{Kind: input.EventMouseUp, X: x, Y: y})
	}
	if ebiten.IsWindowBeingClosed() {
		s.queue.Push(input.Event{Kind: input.EventQuit})
	}

	return input.Frame{Keys: keys, Events: s.queue.Drain()}, nil
}
