package land

import "testing"

func TestTextureTile(t *testing.T) {
	tex := Texture{SpriteID: 1, Width: 2, Height: 2}
	cases := []struct {
		x, y int
		want int
	}{
		{0, 0, 1},
		{1, 0, 2},
		{2, 0, 1},
		{0, 1, 1 + sheetStride},
		{1, 1, 2 + sheetStride},
		{0, 2, 1},
		{3, 3, 2 + sheetStride},
		{40, 22, 1},
	}
	for _, c := range cases {
		if got := tex.Tile(c.x, c.y); got != c.want {
			t.Fatalf("Tile(%d, %d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestTextureTileSingle(t *testing.T) {
	tex := Texture{SpriteID: 7, Width: 1, Height: 1}
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			if got := tex.Tile(x, y); got != 7 {
				t.Fatalf("1x1 texture must always map to its first tile, got %d at (%d,%d)", got, x, y)
			}
		}
	}
}
