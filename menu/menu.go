// Package menu implements rectangular interactive zones over a menu screen,
// with keyboard focus and mouse click dispatch.
package menu

import (
	"github.com/milk9111/thegame/common"
	"github.com/pkg/errors"
)

var (
	ErrOverlappingZone = errors.New("menu: overlapping interactive zone")
	ErrZoneIndex       = errors.New("menu: zone index out of range")
)

// Context is the session surface menu handlers act on.
type Context interface {
	ChangeMap(name string) error
	OpenMenu(name string) error
	Shutdown()
}

// Click is a press and release pair in screen pixels.
type Click struct {
	From, To common.Point
}

// Handler runs when a zone is activated. click is nil for keyboard
// activation.
type Handler func(ctx Context, click *Click) error

type Zone struct {
	Area    common.Rect
	Handler Handler
}

// Menu is a full-screen image with non-overlapping interactive zones.
type Menu struct {
	// Image is the asset id drawn behind the zones.
	Image string

	zones   []Zone
	focused int
}

func New(image string) *Menu {
	return &Menu{Image: image, focused: -1}
}

// RegisterZone adds a zone spanning the two corners, in any order.
func (m *Menu) RegisterZone(x1, y1, x2, y2 int, h Handler) error {
	area := common.NewRect(x1, y1, x2, y2)
	for i, z := range m.zones {
		if z.Area.Overlaps(area) {
			return errors.Wrapf(ErrOverlappingZone, "%+v overlaps zone %d %+v", area, i, z.Area)
		}
	}
	m.zones = append(m.zones, Zone{Area: area, Handler: h})
	return nil
}

func (m *Menu) Zones() []Zone {
	return append([]Zone(nil), m.zones...)
}

func (m *Menu) ZoneCount() int {
	return len(m.zones)
}

// CallByIndex activates zone i.
func (m *Menu) CallByIndex(i int, ctx Context) error {
	if i < 0 || i >= len(m.zones) {
		return errors.Wrapf(ErrZoneIndex, "%d of %d", i, len(m.zones))
	}
	return m.call(m.zones[i], ctx, nil)
}

// CallByClick activates every zone containing both the press point (x1, y1)
// and the release point (x2, y2). It reports whether any zone fired.
func (m *Menu) CallByClick(x1, y1, x2, y2 int, ctx Context) (bool, error) {
	click := &Click{From: common.Pt(x1, y1), To: common.Pt(x2, y2)}
	fired := false
	for _, z := range m.zones {
		if !z.Area.Contains(click.From) || !z.Area.Contains(click.To) {
			continue
		}
		fired = true
		if err := m.call(z, ctx, click); err != nil {
			return fired, err
		}
	}
	return fired, nil
}

func (m *Menu) call(z Zone, ctx Context, click *Click) error {
	if z.Handler == nil {
		return nil
	}
	return z.Handler(ctx, click)
}

// Focused returns the focused zone index, if any.
func (m *Menu) Focused() (int, bool) {
	if m.focused < 0 || m.focused >= len(m.zones) {
		return 0, false
	}
	return m.focused, true
}

// FocusPrevious moves focus up. With no focus it selects the last zone.
func (m *Menu) FocusPrevious() {
	n := len(m.zones)
	if n == 0 {
		return
	}
	i, ok := m.Focused()
	if !ok {
		m.focused = n - 1
		return
	}
	m.focused = (i - 1 + n) % n
}

// FocusNext moves focus down. With no focus it selects the first zone.
func (m *Menu) FocusNext() {
	n := len(m.zones)
	if n == 0 {
		return
	}
	i, ok := m.Focused()
	if !ok {
		m.focused = 0
		return
	}
	m.focused = (i + 1) % n
}

func (m *Menu) ClearFocus() {
	m.focused = -1
}

// ActivateFocused calls the focused zone; without focus it does nothing.
func (m *Menu) ActivateFocused(ctx Context) error {
	i, ok := m.Focused()
	if !ok {
		return nil
	}
	return m.CallByIndex(i, ctx)
}
