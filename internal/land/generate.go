package land

import (
	"math"

	perlin "github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// NoiseField is a 2D noise function with output roughly in [-1, 1].
type NoiseField interface {
	Eval2(x, y float64) float64
}

// NoiseMaker builds a deterministic noise field from a generation seed.
type NoiseMaker func(seed uint32) NoiseField

// Simplex is the default generation noise.
func Simplex(seed uint32) NoiseField {
	return opensimplex.New(int64(seed))
}

// Perlin is an alternative generation noise with a rougher profile.
func Perlin(seed uint32) NoiseField {
	return perlinField{p: perlin.NewPerlin(2, 2, 3, int64(seed))}
}

type perlinField struct {
	p *perlin.Perlin
}

func (f perlinField) Eval2(x, y float64) float64 { return f.p.Noise2D(x, y) }

// SetNoise switches the noise used by Generate. Passing nil keeps the
// current field.
func (l *Land) SetNoise(m NoiseMaker) {
	if m != nil {
		l.noise = m
	}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// boardConstrain suppresses altitude near the horizontal edges of the land.
// Both x and boardW are normalized to the land width. Within boardW of an
// edge the factor ramps from 0 to 1; elsewhere it is 1.
func boardConstrain(x, boardW float64) float64 {
	if x < boardW {
		return sigmoid(6*(x/boardW))*2 - 1
	}
	if x > 1-boardW {
		return sigmoid(6*((1-x)/boardW))*2 - 1
	}
	return 1
}

// Generate rebuilds the land as a noise-shaped height field, deterministic
// for a given seed. Terrain tops out below the water line and falls away to
// nothing at the left and right edges.
func (l *Land) Generate() {
	l.Clear()
	landW, landH := l.Size()
	budget := float64(l.waterHeight - 2)
	field := l.noise(l.seed)
	// Per-run frequency multipliers and board width, probed at fixed
	// coordinates so they vary only through the field's seeding.
	k1 := 3 + field.Eval2(2, -1)
	k2 := 5 + field.Eval2(-1, 2)
	boardW := 0.1 + 0.1*field.Eval2(1, -1)
	for x := 0; x < landW; x++ {
		xn := float64(x) / float64(landW)
		h0 := 0.4 + 0.25*(field.Eval2(xn*k1, xn*k2)+1)
		h := budget * (1 - h0*boardConstrain(xn, boardW))
		yStart := int(h)
		if yStart > landH-1 {
			yStart = landH - 1
		}
		for y := yStart; y < landH; y++ {
			l.Set(x, y, true)
		}
	}
}
