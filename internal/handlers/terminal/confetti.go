package terminal

import (
	"math"
	"math/rand"
	"strings"
)

// Burst is one cannon of confetti
type Burst struct {
	Particles int

	// Angle in degrees, 90 is straight up
	Angle float64

	// Spread in degrees around Angle
	Spread float64

	// OriginX and OriginY are fractions of the canvas, top left is 0,0
	OriginX float64
	OriginY float64
}

// PartyBursts is a wide burst from the middle and one from each side
var PartyBursts = []Burst{
	{Particles: 120, Angle: 90, Spread: 70, OriginX: 0.5, OriginY: 0.6},
	{Particles: 80, Angle: 60, Spread: 60, OriginX: 0, OriginY: 0.7},
	{Particles: 80, Angle: 120, Spread: 60, OriginX: 1, OriginY: 0.7},
}

var glyphs = []rune{'*', '+', '•', '✦', '·', '°'}

// Confetti renders PartyBursts onto a width x height character canvas
func Confetti(r *rand.Rand, width, height int) []string {
	return RenderBursts(r, width, height, PartyBursts)
}

// RenderBursts scatters every burst's particles onto the canvas. Particles
// that fly off the canvas are dropped.
func RenderBursts(r *rand.Rand, width, height int, bursts []Burst) []string {
	canvas := make([][]rune, height)
	for y := range canvas {
		canvas[y] = []rune(strings.Repeat(" ", width))
	}

	for _, burst := range bursts {
		for i := 0; i < burst.Particles; i++ {
			theta := (burst.Angle + (r.Float64()-0.5)*burst.Spread) * math.Pi / 180
			reach := 0.35 + r.Float64()*0.65

			x := burst.OriginX*float64(width-1) + math.Cos(theta)*reach*float64(width)*0.5
			y := burst.OriginY*float64(height-1) - math.Sin(theta)*reach*float64(height)*0.9

			col, row := int(math.Round(x)), int(math.Round(y))
			if col < 0 || col >= width || row < 0 || row >= height {
				continue
			}
			canvas[row][col] = glyphs[r.Intn(len(glyphs))]
		}
	}

	rows := make([]string, height)
	for y, line := range canvas {
		rows[y] = strings.TrimRight(string(line), " ")
	}
	return rows
}
