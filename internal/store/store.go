package store

// Reference geometry of the backing store. The row width must stay a
// multiple of 8 so chunk cells never straddle a row boundary.
const (
	RowWidth = 240
	Rows     = 136
	Capacity = RowWidth * Rows
)

// Linearize translates a flat byte address into (col, row) cell coordinates
// for a store with the given row width.
func Linearize(addr, rowWidth int) (int, int) {
	return addr % rowWidth, addr / rowWidth
}

// Grid is a fixed-width byte grid repurposed as flat linear memory. It backs
// both the land header and the chunk bitmaps.
type Grid struct {
	w, h int
	data []uint8
}

// NewGrid allocates a zeroed grid with the given cell dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, data: make([]uint8, w*h)}
}

// Default allocates a grid with the reference geometry.
func Default() *Grid {
	return NewGrid(RowWidth, Rows)
}

// RowWidth returns the number of cells per grid row.
func (g *Grid) RowWidth() int { return g.w }

// Peek reads the cell at (x, y). Cells outside the grid read as zero.
func (g *Grid) Peek(x, y int) uint8 {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return 0
	}
	return g.data[y*g.w+x]
}

// Poke writes the cell at (x, y). Writes outside the grid are dropped.
func (g *Grid) Poke(x, y int, v uint8) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	g.data[y*g.w+x] = v
}

// Bytes exposes the backing slice in linear address order.
func (g *Grid) Bytes() []uint8 { return g.data }

// Reset fills the grid with zeros.
func (g *Grid) Reset() {
	for i := range g.data {
		g.data[i] = 0
	}
}
