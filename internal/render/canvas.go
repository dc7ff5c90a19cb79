//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screen implements the land canvas over an ebiten image, using the shared
// tileset for sprite blits.
type Screen struct {
	dst   *ebiten.Image
	pixel *ebiten.Image
	tiles map[int]*ebiten.Image
	ts    *Tileset
}

// NewScreen constructs a Screen backed by the given tileset.
func NewScreen(ts *Tileset) *Screen {
	s := &Screen{ts: ts, tiles: map[int]*ebiten.Image{}}
	s.pixel = ebiten.NewImage(1, 1)
	s.pixel.Fill(color.White)
	return s
}

// Begin points the screen at the current frame's render target.
func (s *Screen) Begin(dst *ebiten.Image) { s.dst = dst }

func (s *Screen) tileImage(tile int) *ebiten.Image {
	if img, ok := s.tiles[tile]; ok {
		return img
	}
	img := ebiten.NewImage(TileSize, TileSize)
	buf := make([]byte, 4*TileSize*TileSize)
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			col := Palette[s.ts.Sample(tile, x, y)&0x0f]
			base := (y*TileSize + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
	img.ReplacePixels(buf)
	s.tiles[tile] = img
	return img
}

// Blit draws a whole tile at (x, y), scaled.
func (s *Screen) Blit(tile, x, y, scale int) {
	if s.dst == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x), float64(y))
	s.dst.DrawImage(s.tileImage(tile), op)
}

// FillRect fills a rectangle with a palette color.
func (s *Screen) FillRect(x, y, w, h int, colorIndex uint8) {
	if s.dst == nil || w <= 0 || h <= 0 {
		return
	}
	col := Palette[colorIndex&0x0f]
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, 1)
	s.dst.DrawImage(s.pixel, op)
}
