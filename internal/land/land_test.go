package land

import (
	"testing"

	"landcarve/internal/store"
)

func newTestLand(t *testing.T, width, height int) *Land {
	t.Helper()
	l, err := New(store.Default(), width, height, Texture{SpriteID: 1, Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("New(%d, %d): %v", width, height, err)
	}
	return l
}

func TestNewBudget(t *testing.T) {
	tex := Texture{SpriteID: 1, Width: 2, Height: 2}
	if _, err := New(store.Default(), 45, 24, tex); err != nil {
		t.Fatalf("45x24 chunks must fit the store: %v", err)
	}
	if _, err := New(store.Default(), 64, 64, tex); err == nil {
		t.Fatal("64x64 chunks exceed the store budget and must be rejected")
	}
}

func TestSizeAndWaterHeight(t *testing.T) {
	l := newTestLand(t, 45, 24)
	w, h := l.Size()
	if w != 360 || h != 192 {
		t.Fatalf("Size() = (%d, %d), want (360, 192)", w, h)
	}
	if l.WaterHeight() != 184 {
		t.Fatalf("WaterHeight() = %d, want 184", l.WaterHeight())
	}
}

func TestGetSetInBounds(t *testing.T) {
	l := newTestLand(t, 4, 3)
	points := [][2]int{{0, 0}, {7, 7}, {8, 8}, {31, 23}, {13, 2}}
	for _, p := range points {
		l.Set(p[0], p[1], true)
		if !l.Get(p[0], p[1]) {
			t.Fatalf("pixel (%d,%d) must be set", p[0], p[1])
		}
		l.Set(p[0], p[1], false)
		if l.Get(p[0], p[1]) {
			t.Fatalf("pixel (%d,%d) must be cleared", p[0], p[1])
		}
	}
}

func TestGetOutOfBounds(t *testing.T) {
	l := newTestLand(t, 2, 2)
	outside := [][2]int{{-1, 0}, {0, -1}, {16, 0}, {0, 16}, {100, 100}}
	for _, p := range outside {
		if l.Get(p[0], p[1]) {
			t.Fatalf("out-of-bounds pixel (%d,%d) must read as false when uncovered", p[0], p[1])
		}
	}
	l.SetCovered(true)
	for _, p := range outside {
		if !l.Get(p[0], p[1]) {
			t.Fatalf("out-of-bounds pixel (%d,%d) must read as true when covered", p[0], p[1])
		}
	}
}

func TestSetOutOfBoundsIsNoOp(t *testing.T) {
	l := newTestLand(t, 2, 2)
	l.Set(-1, 0, true)
	l.Set(16, 3, true)
	l.Set(3, -5, true)
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			if l.Get(x, y) {
				t.Fatalf("out-of-bounds set leaked into pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestSetCircle(t *testing.T) {
	l := newTestLand(t, 4, 4)
	const cx, cy, r = 16, 16, 5
	l.SetCircle(cx, cy, r, true)
	for i := -r; i < r; i++ {
		for j := -r; j < r; j++ {
			want := i*i+j*j <= r*r
			if got := l.Get(cx+i, cy+j); got != want {
				t.Fatalf("pixel offset (%d,%d): got %v, want %v", i, j, got, want)
			}
		}
	}
	// Outside the bounding square nothing changes.
	if l.Get(cx+r+1, cy) || l.Get(cx, cy+r+1) || l.Get(cx-r-1, cy-r-1) {
		t.Fatal("SetCircle touched pixels outside the bounding square")
	}
}

func TestSetCircleExample(t *testing.T) {
	l := newTestLand(t, 1, 1)
	if l.Get(0, 0) {
		t.Fatal("fresh land pixel (0,0) must be empty")
	}
	if l.Get(8, 8) {
		t.Fatal("out-of-bounds (8,8) must read as the covered default")
	}
	l.SetCircle(4, 4, 2, true)
	if !l.Get(4, 4) {
		t.Fatal("circle center must be filled")
	}
	if l.Get(0, 0) {
		t.Fatal("pixel (0,0) is outside radius 2 and must stay empty")
	}
}

func TestChunkAddressesDistinct(t *testing.T) {
	l := newTestLand(t, 7, 5)
	seen := map[[2]int]bool{}
	for cy := 0; cy < 5; cy++ {
		for cx := 0; cx < 7; cx++ {
			ch, ok := l.ChunkAt(cx*ChunkSize, cy*ChunkSize)
			if !ok {
				t.Fatalf("chunk (%d,%d) must resolve", cx, cy)
			}
			addr := [2]int{ch.addrX, ch.addrY}
			if seen[addr] {
				t.Fatalf("chunk (%d,%d) aliases address %v", cx, cy, addr)
			}
			seen[addr] = true
			if addr[0]%ChunkSize != 0 {
				t.Fatalf("chunk base address %v must be 8-aligned", addr)
			}
		}
	}
}

func TestChunkAtOutOfBounds(t *testing.T) {
	l := newTestLand(t, 2, 2)
	if _, ok := l.ChunkAt(-1, 0); ok {
		t.Fatal("negative coordinates must not resolve")
	}
	if _, ok := l.ChunkAt(16, 0); ok {
		t.Fatal("coordinates past the edge must not resolve")
	}
}

func TestClear(t *testing.T) {
	l := newTestLand(t, 3, 3)
	l.SetCircle(12, 12, 6, true)
	l.Clear()
	for x := 0; x < 24; x++ {
		for y := 0; y < 24; y++ {
			if l.Get(x, y) {
				t.Fatalf("pixel (%d,%d) survived Clear", x, y)
			}
		}
	}
}

func TestDrawWaterBand(t *testing.T) {
	l := newTestLand(t, 2, 2) // water line at 8
	canvas := &recordingCanvas{}
	l.Draw(canvas, flatSampler(6), 0, 0, 1)
	if len(canvas.rects) != 1 {
		t.Fatalf("empty land must draw only the water band, got %d rects", len(canvas.rects))
	}
	water := canvas.rects[0]
	if water.y != 8 || water.h != ScreenHeight-8 || water.w != ScreenWidth || water.x != 0 {
		t.Fatalf("unexpected water band %+v", water)
	}

	// Scrolled far enough down, the water line leaves the view.
	canvas = &recordingCanvas{}
	l.Draw(canvas, flatSampler(6), 0, ScreenHeight, 1)
	if len(canvas.rects) != 0 {
		t.Fatal("water below the view must not be drawn")
	}
}

func TestDrawFullChunkUsesTexture(t *testing.T) {
	l := newTestLand(t, 2, 2)
	for x := 8; x < 16; x++ {
		for y := 8; y < 16; y++ {
			l.Set(x, y, true)
		}
	}
	canvas := &recordingCanvas{}
	l.Draw(canvas, flatSampler(6), 2, 3, 1)
	if len(canvas.blits) != 1 {
		t.Fatalf("one full chunk must produce one blit, got %d", len(canvas.blits))
	}
	want := blitCall{tile: l.Texture().Tile(1, 1), x: 2 + 8, y: 3 + 8, scale: 1}
	if canvas.blits[0] != want {
		t.Fatalf("blit %+v, want %+v", canvas.blits[0], want)
	}
}
