package land

// Chunk is an 8x8 pixel block of land backed by a 64-bit mask held in 8
// consecutive store cells. It is a view over the store, not a container:
// chunks are built on demand from coordinates and never held in collections.
type Chunk struct {
	addrX int
	addrY int
	store Store
}

// NewChunk creates a chunk view at the given store cell address.
func NewChunk(st Store, addrX, addrY int) Chunk {
	return Chunk{addrX: addrX, addrY: addrY, store: st}
}

// Get reports whether the chunk pixel at (x, y) is filled. Both coordinates
// must be in [0, 8).
func (c Chunk) Get(x, y int) bool {
	return (c.store.Peek(c.addrX+y, c.addrY)>>uint(x))&1 != 0
}

// Set fills or empties the chunk pixel at (x, y), leaving the other bits of
// its row untouched.
func (c Chunk) Set(x, y int, state bool) {
	v := c.store.Peek(c.addrX+y, c.addrY)
	if state {
		v |= 1 << uint(x)
	} else {
		v &^= 1 << uint(x)
	}
	c.store.Poke(c.addrX+y, c.addrY, v)
}

// Mask returns all 64 chunk pixels. The first store cell is the most
// significant byte.
func (c Chunk) Mask() uint64 {
	var mask uint64
	for i := 0; i < 8; i++ {
		mask = mask<<8 | uint64(c.store.Peek(c.addrX+i, c.addrY))
	}
	return mask
}

// SetMask overwrites all 64 chunk pixels at once. The first store cell
// receives the most significant byte, mirroring Mask.
func (c Chunk) SetMask(mask uint64) {
	for i := 0; i < 8; i++ {
		c.store.Poke(c.addrX+i, c.addrY, uint8(mask>>(8*uint(7-i))))
	}
}

// Empty reports whether every chunk pixel is empty.
func (c Chunk) Empty() bool { return c.Mask() == 0 }

// Full reports whether every chunk pixel is filled.
func (c Chunk) Full() bool { return c.Mask() == ^uint64(0) }

// Draw renders the chunk at screen position (x, y). Empty chunks issue no
// draw calls at all. Full chunks blit the whole tile in one call. Partial
// chunks render each filled pixel as a scale-by-scale rectangle colored from
// the tile art.
func (c Chunk) Draw(canvas Canvas, sampler Sampler, x, y, tile, scale int) {
	mask := c.Mask()
	if mask == 0 {
		return
	}
	if mask == ^uint64(0) {
		canvas.Blit(tile, x, y, scale)
		return
	}
	for px := 0; px < 8; px++ {
		for py := 0; py < 8; py++ {
			if c.Get(px, py) {
				canvas.FillRect(x+px*scale, y+py*scale, scale, scale, sampler.Sample(tile, px, py))
			}
		}
	}
}
