//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Banner draws notifier messages as a full-width bar sliding in from the top
// of the screen.
type Banner struct {
	pixel *ebiten.Image
	width int
}

// NewBanner constructs a banner spanning the given screen width.
func NewBanner(width int) *Banner {
	b := &Banner{width: width}
	b.pixel = ebiten.NewImage(1, 1)
	b.pixel.Fill(color.White)
	return b
}

// Draw renders the active notification, if any.
func (b *Banner) Draw(screen *ebiten.Image, n *Notifier) {
	if !n.Active() {
		return
	}
	y := n.SlideOffset()

	bg := color.RGBA{R: 0xb1, G: 0x3e, B: 0x53, A: 0xff}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.width), BannerHeight)
	op.GeoM.Translate(0, float64(y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, 1)
	screen.DrawImage(b.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, n.Message())
	x := (b.width - bounds.Dx()) / 2
	text.Draw(screen, n.Message(), face, x, y+BannerHeight-2, color.RGBA{R: 0xf4, G: 0xf4, B: 0xf4, A: 0xff})
}
