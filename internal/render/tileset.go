package render

import (
	"image/color"
	"math/rand/v2"
)

const (
	// TileSize is the pixel edge length of one sheet tile.
	TileSize = 8
	// SheetStride is the number of tiles per sheet row.
	SheetStride = 16
)

// Palette holds the 16 display colors, indexed by the color values the land
// passes to the canvas.
var Palette = [16]color.RGBA{
	{R: 0x1a, G: 0x1c, B: 0x2c, A: 0xff},
	{R: 0x5d, G: 0x27, B: 0x5d, A: 0xff},
	{R: 0xb1, G: 0x3e, B: 0x53, A: 0xff},
	{R: 0xef, G: 0x7d, B: 0x57, A: 0xff},
	{R: 0xff, G: 0xcd, B: 0x75, A: 0xff},
	{R: 0xa7, G: 0xf0, B: 0x70, A: 0xff},
	{R: 0x38, G: 0xb7, B: 0x64, A: 0xff},
	{R: 0x25, G: 0x71, B: 0x79, A: 0xff},
	{R: 0x29, G: 0x36, B: 0x6f, A: 0xff},
	{R: 0x3b, G: 0x5d, B: 0xc9, A: 0xff},
	{R: 0x41, G: 0xa6, B: 0xf6, A: 0xff},
	{R: 0x73, G: 0xef, B: 0xf7, A: 0xff},
	{R: 0xf4, G: 0xf4, B: 0xf4, A: 0xff},
	{R: 0x94, G: 0xb0, B: 0xc2, A: 0xff},
	{R: 0x56, G: 0x6c, B: 0x86, A: 0xff},
	{R: 0x33, G: 0x3c, B: 0x57, A: 0xff},
}

// Tileset holds 8x8 color-index tiles laid out 16 per sheet row, mirroring
// the sprite sheet the land texture addresses. The engine ships no art
// asset, so the ground tiles are synthesized deterministically.
type Tileset struct {
	tiles map[int][TileSize * TileSize]uint8
}

// NewTileset synthesizes the ground tile art for the default 2x2 texture
// region starting at tile 1: a grass row above a darker soil row.
func NewTileset(seed int64) *Tileset {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	t := &Tileset{tiles: map[int][TileSize * TileSize]uint8{}}
	t.tiles[1] = groundTile(rng, 6, 5, 7)
	t.tiles[2] = groundTile(rng, 6, 7, 9)
	t.tiles[1+SheetStride] = groundTile(rng, 7, 15, 6)
	t.tiles[2+SheetStride] = groundTile(rng, 7, 6, 11)
	return t
}

// groundTile fills one tile with the base color plus sparse speckles.
func groundTile(rng *rand.Rand, base, speckle uint8, density int) [TileSize * TileSize]uint8 {
	var px [TileSize * TileSize]uint8
	for i := range px {
		px[i] = base
		if rng.IntN(density) == 0 {
			px[i] = speckle
		}
	}
	return px
}

// Sample returns the palette index of the tile pixel at (x, y). Tiles with
// no art sample as color 0.
func (t *Tileset) Sample(tile, x, y int) uint8 {
	px, ok := t.tiles[tile]
	if !ok {
		return 0
	}
	return px[y*TileSize+x]
}
