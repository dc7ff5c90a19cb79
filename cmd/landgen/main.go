package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"landcarve/internal/land"
	"landcarve/internal/store"
)

func main() {
	width := flag.Int("width", 45, "land width in chunks")
	height := flag.Int("height", 24, "land height in chunks")
	seed := flag.Uint("seed", 0, "generation seed (0 picks one from the clock)")
	noise := flag.String("noise", "simplex", "generation noise: simplex or perlin")
	out := flag.String("out", "", "write the generated land to this save file")
	flag.Parse()

	grid := store.NewFileGrid(*out)
	l, err := land.New(grid, *width, *height, land.Texture{SpriteID: 1, Width: 2, Height: 2})
	if err != nil {
		log.Fatal(err)
	}
	if *noise == "perlin" {
		l.SetNoise(land.Perlin)
	}

	s := uint32(*seed)
	if s == 0 {
		s = uint32(time.Now().Unix())
	}
	l.SetSeed(s)
	l.Generate()

	printPreview(l)

	landW, landH := l.Size()
	filled := 0
	for x := 0; x < landW; x++ {
		for y := 0; y < landH; y++ {
			if l.Get(x, y) {
				filled++
			}
		}
	}
	fmt.Printf("Seed %d: %dx%d px, %d/%d pixels filled (%.1f%%), water line at y=%d\n",
		s, landW, landH, filled, landW*landH, 100*float64(filled)/float64(landW*landH), l.WaterHeight())

	if *out != "" {
		l.Save()
		if err := grid.Commit(); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Saved to %s\n", *out)
	}
}

// printPreview renders the land one character per chunk: space for empty,
// a light shade for partial and a full block for full chunks.
func printPreview(l *land.Land) {
	landW, landH := l.Size()
	var b strings.Builder
	for y := 0; y < landH; y += land.ChunkSize {
		for x := 0; x < landW; x += land.ChunkSize {
			ch, ok := l.ChunkAt(x, y)
			switch {
			case !ok || ch.Empty():
				b.WriteRune(' ')
			case ch.Full():
				b.WriteRune('█')
			default:
				b.WriteRune('░')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
}
