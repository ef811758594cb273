package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/thegame/assets"
	"github.com/milk9111/thegame/object"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

var ErrAssetNotFound = errors.New("render: asset not found")

// ColorPrefix marks asset ids that name a solid tile color, either an SVG
// color name ("color:forestgreen") or a hex triplet ("color:#228b22").
const ColorPrefix = "color:"

// Loader resolves asset ids to sprites and caches decoded images by id.
type Loader struct {
	fsys     fs.FS
	dirs     []string
	tileW    int
	tileH    int
	newImage func(image.Image) *ebiten.Image

	mu     sync.Mutex
	images map[string]*ebiten.Image
}

// NewLoader reads images from fsys first, then from each disk directory.
// Solid color tiles are tileW x tileH.
func NewLoader(fsys fs.FS, tileW, tileH int, dirs ...string) *Loader {
	return &Loader{
		fsys:     fsys,
		dirs:     dirs,
		tileW:    tileW,
		tileH:    tileH,
		newImage: ebiten.NewImageFromImage,
		images:   map[string]*ebiten.Image{},
	}
}

// NewAssetLoader reads the embedded sprites with a disk fallback under ./assets.
func NewAssetLoader(tileW, tileH int) *Loader {
	return NewLoader(assets.FS(), tileW, tileH, "assets", ".")
}

// Load returns a new sprite handle for asset.
func (l *Loader) Load(asset string) (object.Visual, error) {
	img, err := l.Image(asset)
	if err != nil {
		return nil, err
	}
	return &Sprite{Asset: asset, Image: img}, nil
}

// Image returns the cached image for asset, decoding it on first use.
func (l *Loader) Image(asset string) (*ebiten.Image, error) {
	if asset == "" {
		return nil, errors.Wrap(ErrAssetNotFound, "empty asset id")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if img, ok := l.images[asset]; ok {
		return img, nil
	}
	src, err := l.decode(asset)
	if err != nil {
		return nil, err
	}
	img := l.newImage(src)
	l.images[asset] = img
	return img, nil
}

// Cached reports how many distinct assets have been decoded.
func (l *Loader) Cached() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.images)
}

func (l *Loader) decode(asset string) (image.Image, error) {
	if spec, ok := strings.CutPrefix(asset, ColorPrefix); ok {
		c, err := parseColor(spec)
		if err != nil {
			return nil, err
		}
		img := image.NewRGBA(image.Rect(0, 0, l.tileW, l.tileH))
		draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
		return img, nil
	}

	data, err := l.read(asset)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "render: decode %s", asset)
	}
	return img, nil
}

func (l *Loader) read(asset string) ([]byte, error) {
	clean := assets.CleanPath(asset)
	if l.fsys != nil {
		if b, err := fs.ReadFile(l.fsys, clean); err == nil {
			return b, nil
		}
	}
	for _, dir := range l.dirs {
		if b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(clean))); err == nil {
			return b, nil
		}
	}
	return nil, errors.Wrapf(ErrAssetNotFound, "%s", asset)
}

// parseColor accepts an SVG color name or #rrggbb.
func parseColor(s string) (color.RGBA, error) {
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	if len(s) == 7 && s[0] == '#' {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err == nil {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
		}
	}
	return color.RGBA{}, errors.Wrapf(ErrAssetNotFound, "unknown color %q", s)
}
