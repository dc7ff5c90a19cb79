package land

// Store is the fixed-width byte grid that backs land data, addressed by
// (col, row) cell coordinates.
type Store interface {
	Peek(x, y int) uint8
	Poke(x, y int, v uint8)
}

// Canvas is the rendering surface the land draws onto.
type Canvas interface {
	// Blit draws the full 8x8 tile at (x, y), scaled.
	Blit(tile, x, y, scale int)
	// FillRect fills a rectangle with a palette color.
	FillRect(x, y, w, h int, color uint8)
}

// Sampler reads single pixels out of the source tile art by palette index.
type Sampler interface {
	Sample(tile, x, y int) uint8
}
