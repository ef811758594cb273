package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 0xff, A: 0xff})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// countingLoader swaps the ebiten image constructor for one that records
// decoded images without touching the GPU.
func countingLoader(t *testing.T, fsys fstest.MapFS) (*Loader, *[]image.Image) {
	t.Helper()
	var decoded []image.Image
	l := NewLoader(fsys, 4, 3)
	l.newImage = func(img image.Image) *ebiten.Image {
		decoded = append(decoded, img)
		return nil
	}
	return l, &decoded
}

func TestLoaderCachesByAsset(t *testing.T) {
	l, decoded := countingLoader(t, fstest.MapFS{"hero.png": {Data: pngBytes(t)}})

	a, err := l.Load("hero.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, err := l.Load("assets/hero.png")
	if err != nil {
		t.Fatalf("Load with prefix: %v", err)
	}
	if _, err := l.Load("hero.png"); err != nil {
		t.Fatalf("Load again: %v", err)
	}

	if len(*decoded) != 2 || l.Cached() != 2 {
		t.Fatalf("expected one decode per distinct id, got %d decodes, %d cached", len(*decoded), l.Cached())
	}
	if a == b {
		t.Fatalf("each Load should return its own handle")
	}
	if s := a.(*Sprite); s.Asset != "hero.png" {
		t.Fatalf("unexpected sprite asset %q", s.Asset)
	}
}

func TestLoaderColorTiles(t *testing.T) {
	cases := []struct {
		name  string
		asset string
		want  color.RGBA
	}{
		{"named", "color:forestgreen", color.RGBA{R: 0x22, G: 0x8b, B: 0x22, A: 0xff}},
		{"named_mixed_case", "color:ForestGreen", color.RGBA{R: 0x22, G: 0x8b, B: 0x22, A: 0xff}},
		{"hex", "color:#102030", color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l, decoded := countingLoader(t, nil)
			if _, err := l.Load(c.asset); err != nil {
				t.Fatalf("Load: %v", err)
			}
			img := (*decoded)[0]
			if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
				t.Fatalf("expected 4x3 tile, got %v", b)
			}
			if got := color.RGBAModel.Convert(img.At(3, 2)).(color.RGBA); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestLoaderErrors(t *testing.T) {
	cases := []struct {
		name  string
		asset string
		isNF  bool
	}{
		{"missing_file", "nope.png", true},
		{"empty_id", "", true},
		{"unknown_color", "color:notacolor", true},
		{"bad_hex", "color:#zzzzzz", true},
		{"not_an_image", "junk.png", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l, decoded := countingLoader(t, fstest.MapFS{"junk.png": {Data: []byte("not a png")}})
			_, err := l.Load(c.asset)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if errors.Is(err, ErrAssetNotFound) != c.isNF {
				t.Fatalf("errors.Is(ErrAssetNotFound) = %v for %v", !c.isNF, err)
			}
			if len(*decoded) != 0 || l.Cached() != 0 {
				t.Fatalf("failed loads must not be cached")
			}
		})
	}
}

func TestSpriteSetPosition(t *testing.T) {
	s := &Sprite{}
	s.SetPosition(40, 80)
	if s.X != 40 || s.Y != 80 {
		t.Fatalf("unexpected position %d,%d", s.X, s.Y)
	}
}
