package menu

import "github.com/milk9111/thegame/common"

// Button is a labelled zone. Label is for display only.
type Button struct {
	Label  string
	Area   common.Rect
	Action func(ctx Context) error
}

func NewButton(label string, x1, y1, x2, y2 int, action func(ctx Context) error) Button {
	return Button{Label: label, Area: common.NewRect(x1, y1, x2, y2), Action: action}
}

// Register adds the button to m as an interactive zone.
func (b Button) Register(m *Menu) error {
	action := b.Action
	return m.RegisterZone(b.Area.Min.X, b.Area.Min.Y, b.Area.Max.X, b.Area.Max.Y, func(ctx Context, _ *Click) error {
		if action == nil {
			return nil
		}
		return action(ctx)
	})
}
