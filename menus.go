package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/thegame/menu"
)

const mainMenuImage = "main_menu.png"

// newMainMenu builds the title screen. Start enters startLevel.
func newMainMenu(startLevel string) (*menu.Menu, []menu.Button, error) {
	m := menu.New(mainMenuImage)
	buttons := []menu.Button{
		menu.NewButton("Start", 200, 250, 400, 310, func(ctx menu.Context) error {
			return ctx.ChangeMap(startLevel)
		}),
		menu.NewButton("Quit", 200, 340, 400, 400, func(ctx menu.Context) error {
			ctx.Shutdown()
			return nil
		}),
	}
	for _, b := range buttons {
		if err := b.Register(m); err != nil {
			return nil, nil, err
		}
	}
	return m, buttons, nil
}

var (
	labelFace   ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	labelColor              = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	focusColor              = color.NRGBA{R: 0xda, G: 0xa5, B: 0x20, A: 0xff}
)

// drawMenuLabels writes button labels over the menu image, highlighting the
// focused one.
func drawMenuLabels(screen *ebiten.Image, m *menu.Menu, buttons []menu.Button) {
	focused, hasFocus := m.Focused()
	for i, b := range buttons {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(
			float64(b.Area.Min.X+b.Area.Max.X)/2,
			float64(b.Area.Min.Y+b.Area.Max.Y)/2,
		)
		op.PrimaryAlign = ebtext.AlignCenter
		op.SecondaryAlign = ebtext.AlignCenter
		op.ColorScale.ScaleWithColor(labelColor)
		if hasFocus && focused == i {
			op.ColorScale.Reset()
			op.ColorScale.ScaleWithColor(focusColor)
		}
		ebtext.Draw(screen, b.Label, labelFace, op)
	}
}
