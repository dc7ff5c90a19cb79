package land

// sheetStride is the number of tiles per sprite sheet row.
const sheetStride = 16

// Texture maps chunk grid coordinates onto a tiling region of the sprite
// sheet. Width and Height are in tiles and must be positive.
type Texture struct {
	SpriteID int // first tile of the region
	Width    int // region width in tiles
	Height   int // region height in tiles
}

// Tile returns the sheet tile for chunk grid position (x, y), wrapping
// across the texture region.
func (t Texture) Tile(x, y int) int {
	return t.SpriteID + (y%t.Height)*sheetStride + x%t.Width
}
