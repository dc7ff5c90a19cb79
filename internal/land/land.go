package land

import (
	"fmt"

	"landcarve/internal/store"
)

const (
	// ChunkSize is the pixel edge length of one chunk.
	ChunkSize = 8

	// chunkReserve is the store byte offset where chunk data begins; the
	// header occupies the cells below it.
	chunkReserve = 16

	// ScreenWidth and ScreenHeight are the logical display dimensions.
	ScreenWidth  = 240
	ScreenHeight = 136

	waterColor = 10
)

// Land is a grid of chunks over a shared linear store. Pixels outside the
// grid read as the covered flag, so the land behaves as an infinite plane
// that is hollow or solid by default.
type Land struct {
	width       int // in chunks
	height      int // in chunks
	seed        uint32
	covered     bool
	texture     Texture
	waterHeight int
	store       Store
	noise       NoiseMaker
}

// New creates an empty land over the given store and writes its header
// immediately. It fails when the requested dimensions exceed the store
// budget, since chunk addressing would then alias past the capacity.
func New(st Store, width, height int, texture Texture) (*Land, error) {
	if width*height*ChunkSize+chunkReserve > store.Capacity {
		return nil, fmt.Errorf("land %dx%d chunks needs %d store bytes, capacity is %d",
			width, height, width*height*ChunkSize+chunkReserve, store.Capacity)
	}
	l := &Land{
		width:       width,
		height:      height,
		texture:     texture,
		waterHeight: height*ChunkSize - ChunkSize,
		store:       st,
		noise:       Simplex,
	}
	l.Save()
	return l, nil
}

// FromStore reconstructs a land from a previously saved header. Chunk bits
// stay in the store and are read by address on demand, never copied out.
func FromStore(st Store) *Land {
	width := int(st.Peek(0, 0))
	height := int(st.Peek(1, 0))
	var seed uint32
	for i := 0; i < 4; i++ {
		seed = seed<<8 | uint32(st.Peek(2+i, 0))
	}
	size := st.Peek(7, 0)
	texture := Texture{
		SpriteID: int(st.Peek(6, 0)),
		Width:    int(size >> 4),
		Height:   int(size & 0x0f),
	}
	return &Land{
		width:       width,
		height:      height,
		seed:        seed,
		covered:     st.Peek(8, 0)&0x01 != 0,
		texture:     texture,
		waterHeight: height*ChunkSize - ChunkSize,
		store:       st,
		noise:       Simplex,
	}
}

// FromStoreOrNew loads the saved land when the header looks valid and falls
// back to a fresh land otherwise. Zero width or height marks an empty save
// slot.
func FromStoreOrNew(st Store, width, height int, texture Texture) (*Land, error) {
	if st.Peek(0, 0) == 0 || st.Peek(1, 0) == 0 {
		return New(st, width, height, texture)
	}
	return FromStore(st), nil
}

// Save writes the header into the store. Chunk data always lives in the
// store, so the header is all that needs encoding. The seed spans cells
// (2,0)..(5,0) with the most significant byte first.
func (l *Land) Save() {
	l.store.Poke(0, 0, uint8(l.width))
	l.store.Poke(1, 0, uint8(l.height))
	for i := 0; i < 4; i++ {
		l.store.Poke(5-i, 0, uint8(l.seed>>(uint(i)*8)))
	}
	l.store.Poke(6, 0, uint8(l.texture.SpriteID))
	l.store.Poke(7, 0, uint8(l.texture.Width<<4|l.texture.Height))
	var flags uint8
	if l.covered {
		flags |= 0x01
	}
	l.store.Poke(8, 0, flags)
}

// Size returns the land dimensions in pixels.
func (l *Land) Size() (int, int) {
	return l.width * ChunkSize, l.height * ChunkSize
}

// WaterHeight returns the pixel row of the water line.
func (l *Land) WaterHeight() int { return l.waterHeight }

// Seed returns the generation seed. Zero means never generated.
func (l *Land) Seed() uint32 { return l.seed }

// SetSeed sets the generation seed.
func (l *Land) SetSeed(seed uint32) { l.seed = seed }

// Covered reports the fill value of everything outside the land bounds.
func (l *Land) Covered() bool { return l.covered }

// SetCovered sets the out-of-bounds fill value.
func (l *Land) SetCovered(covered bool) { l.covered = covered }

// Texture returns the land's texture map.
func (l *Land) Texture() Texture { return l.texture }

// InBounds reports whether the pixel (x, y) lies inside the land.
func (l *Land) InBounds(x, y int) bool {
	return x >= 0 && x < l.width*ChunkSize && y >= 0 && y < l.height*ChunkSize
}

// ChunkAt resolves the chunk owning pixel (x, y). The linear chunk address
// wraps into the store's fixed row width, so chunk data spans store rows
// transparently.
func (l *Land) ChunkAt(x, y int) (Chunk, bool) {
	if !l.InBounds(x, y) {
		return Chunk{}, false
	}
	addr := chunkReserve + ((y/ChunkSize)*l.width+x/ChunkSize)*ChunkSize
	col, row := store.Linearize(addr, store.RowWidth)
	return NewChunk(l.store, col, row), true
}

// Get reports whether the land pixel at (x, y) is filled. Pixels out of
// bounds read as the covered flag.
func (l *Land) Get(x, y int) bool {
	ch, ok := l.ChunkAt(x, y)
	if !ok {
		return l.covered
	}
	return ch.Get(x%ChunkSize, y%ChunkSize)
}

// Set fills or empties the land pixel at (x, y). Writes out of bounds are
// dropped, since pointer-driven carving routinely crosses the boundary.
func (l *Land) Set(x, y int, state bool) {
	if ch, ok := l.ChunkAt(x, y); ok {
		ch.Set(x%ChunkSize, y%ChunkSize, state)
	}
}

// SetCircle sets every pixel within radius r of (x, y) to state.
func (l *Land) SetCircle(x, y, r int, state bool) {
	r2 := r * r
	for i := -r; i < r; i++ {
		for j := -r; j < r; j++ {
			if i*i+j*j <= r2 {
				l.Set(x+i, y+j, state)
			}
		}
	}
}

// eachChunkCoord visits every chunk-aligned pixel origin of the land.
func (l *Land) eachChunkCoord(fn func(x, y int)) {
	for x := 0; x < l.width*ChunkSize; x += ChunkSize {
		for y := 0; y < l.height*ChunkSize; y += ChunkSize {
			fn(x, y)
		}
	}
}

// Clear empties every chunk.
func (l *Land) Clear() {
	l.eachChunkCoord(func(x, y int) {
		if ch, ok := l.ChunkAt(x, y); ok {
			ch.SetMask(0)
		}
	})
}

// Draw renders every chunk and then the water band below the water line.
// Water comes last so it fills whatever the terrain left empty down to the
// bottom of the view.
func (l *Land) Draw(canvas Canvas, sampler Sampler, offsetX, offsetY, scale int) {
	l.eachChunkCoord(func(x, y int) {
		if ch, ok := l.ChunkAt(x, y); ok {
			tile := l.texture.Tile(x/ChunkSize, y/ChunkSize)
			ch.Draw(canvas, sampler, offsetX+x*scale, offsetY+y*scale, tile, scale)
		}
	})
	water := offsetY + l.waterHeight
	if water < ScreenHeight {
		canvas.FillRect(0, water, ScreenWidth, ScreenHeight-water, waterColor)
	}
}
