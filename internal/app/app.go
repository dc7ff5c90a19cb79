//go:build ebiten

package app

import (
	"fmt"
	"time"

	"landcarve/internal/land"
	"landcarve/internal/render"
	"landcarve/internal/store"
	"landcarve/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Camera is the scroll offset of the view over the land.
type Camera struct {
	X, Y int
}

const cameraMoveBorder = 5

// cameraMargin is how far the camera may scroll past each land edge:
// left, right, top, bottom.
var cameraMargin = [4]int{75, 75, 50, 25}

// defaultTexture is the 2x2 ground tile region starting at sheet tile 1.
var defaultTexture = land.Texture{SpriteID: 1, Width: 2, Height: 2}

// Game wires the land, camera and notifier into the ebiten loop. All state
// lives here; there are no package-level cells.
type Game struct {
	grid     *store.FileGrid
	land     *land.Land
	camera   Camera
	notifier ui.Notifier
	banner   *ui.Banner
	screen   *render.Screen
	tileset  *render.Tileset
	radius   int
}

// New boots the game: it restores the saved land when one exists, and
// otherwise generates a fresh one seeded from the clock.
func New(cfg *Config) (*Game, error) {
	grid := store.NewFileGrid(cfg.SaveFile)
	if err := grid.Load(); err != nil {
		return nil, err
	}

	l, err := land.FromStoreOrNew(grid, cfg.Width, cfg.Height, defaultTexture)
	if err != nil {
		return nil, err
	}
	if cfg.Noise == "perlin" {
		l.SetNoise(land.Perlin)
	}

	ts := render.NewTileset(1)
	g := &Game{
		grid:    grid,
		land:    l,
		banner:  ui.NewBanner(land.ScreenWidth),
		screen:  render.NewScreen(ts),
		tileset: ts,
		radius:  cfg.Radius,
	}

	if l.Seed() == 0 {
		if cfg.Covered {
			l.SetCovered(true)
		}
		l.SetSeed(timestamp())
		l.Generate()
		l.Save()
		if err := grid.Commit(); err != nil {
			return nil, err
		}
		g.notifier.Notify("Land generated", ui.DefaultDuration)
	} else {
		g.notifier.Notify("Land loaded", ui.DefaultDuration)
	}
	return g, nil
}

func timestamp() uint32 {
	return uint32(time.Now().Unix())
}

// Update handles input, carving and camera movement for one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.land.Save()
		if err := g.grid.Commit(); err != nil {
			return err
		}
		g.notifier.Notify("Land saved", ui.DefaultDuration)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		// Zero the header dimensions so the save slot reads as empty.
		g.grid.Poke(0, 0, 0)
		g.grid.Poke(1, 0, 0)
		if err := g.grid.Commit(); err != nil {
			return err
		}
		g.notifier.Notify("Land cleared from the save", ui.DefaultDuration)
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		g.land.SetSeed(timestamp())
		g.land.Generate()
		g.notifier.Notify("Land generated", ui.DefaultDuration)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.land.Generate()
		g.notifier.Notify("Land reset", ui.DefaultDuration)
	}

	mx, my := ebiten.CursorPosition()
	landW, landH := g.land.Size()
	cam := &g.camera
	if mx < cameraMoveBorder && cam.X > -cameraMargin[0] {
		cam.X--
	} else if mx > land.ScreenWidth-cameraMoveBorder && cam.X+land.ScreenWidth < landW+cameraMargin[1] {
		cam.X++
	}
	if my < cameraMoveBorder && cam.Y > -cameraMargin[2] {
		cam.Y--
	} else if my > land.ScreenHeight-cameraMoveBorder && cam.Y+land.ScreenHeight < landH+cameraMargin[3] {
		cam.Y++
	}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if left || right {
		// Left digs, right fills.
		g.land.SetCircle(mx+cam.X, my+cam.Y, g.radius, right)
	}

	g.notifier.Countdown()
	return nil
}

// Draw renders the land, the cursor and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Palette[13])
	g.screen.Begin(screen)
	g.land.Draw(g.screen, g.tileset, -g.camera.X, -g.camera.Y, 1)

	mx, my := ebiten.CursorPosition()
	vector.StrokeCircle(screen, float32(mx), float32(my), float32(g.radius), 1, render.Palette[2], true)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Seed: %d\nRadius: %d", g.land.Seed(), g.radius), 0, 6)

	g.banner.Draw(screen, &g.notifier)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return land.ScreenWidth, land.ScreenHeight
}
