package render

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/thegame/object"
)

// Renderer keeps the latest frame's placements and draws them on ebiten's
// Draw callback.
type Renderer struct {
	Debug bool

	mu     sync.Mutex
	frame  []object.Placement
	tps    int
	frames int
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Present replaces the draw list and applies the frame-rate cap.
func (r *Renderer) Present(placements []object.Placement, fpsCap int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frame = append(r.frame[:0], placements...)
	r.frames++
	if fpsCap > 0 && fpsCap != r.tps {
		r.tps = fpsCap
		ebiten.SetTPS(fpsCap)
	}
	return nil
}

func (r *Renderer) Draw(screen *ebiten.Image) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.frame {
		s, ok := p.Visual.(*Sprite)
		if !ok || s.Image == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(p.X), float64(p.Y))
		screen.DrawImage(s.Image, op)
	}
	if r.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Sprites: %d", r.frames, ebiten.ActualFPS(), len(r.frame)))
	}
}
