package planetoids

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-planetoids/internal/config"
	"github.com/vovakirdan/tui-planetoids/internal/core"
)

// Generator builds the planet list for a level. It draws from one random
// stream for its whole lifetime, so a run is reproducible only when replayed
// from the same seed with the same sequence of Generate calls.
type Generator struct {
	rng   *rand.Rand
	world config.PlanetoidsWorld
}

// NewGenerator creates a generator with its own seeded stream.
func NewGenerator(seed int64, world config.PlanetoidsWorld) *Generator {
	return &Generator{
		rng:   rand.New(rand.NewPCG(uint64(seed), 0)),
		world: world,
	}
}

// Generate returns the ordered planets for a level: the fixed start planet,
// PlanetsPerLevel*level generated planets, and the home planet.
func (g *Generator) Generate(level int) []Planet {
	w := g.world
	if level < 1 {
		level = 1
	}
	total := w.PlanetsPerLevel * level

	planets := make([]Planet, 0, total+2)
	planets = append(planets, Planet{
		Pos:   core.Vec3{X: 0, Y: w.StartAltitude, Z: 0},
		Width: w.StartWidth,
		Depth: w.StartDepth,
		Kind:  KindPlain,
	})

	for i := 0; i < total; i++ {
		x := g.rng.Float64()*w.SpreadX - w.SpreadX/2
		y := w.FirstBand + float64(i)*w.BandStep
		z := g.rng.Float64()*w.RangeZ*1.5 - w.RangeZ*0.75

		width := w.MinWidth + g.rng.Float64()*w.WidthJitter
		depth := w.MinDepth + g.rng.Float64()*w.DepthJitter

		// Every band of PlanetsPerLevel past the first shrinks and lifts planets.
		if i >= w.PlanetsPerLevel {
			levelNum := float64(i/w.PlanetsPerLevel + 1)
			width = max(width-levelNum*w.WidthShrink, w.WidthFloor)
			depth = max(depth-levelNum*w.DepthShrink, w.DepthFloor)
			y += levelNum * w.BandLift
		}

		planets = append(planets, Planet{
			Pos:   core.Vec3{X: x, Y: y, Z: z},
			Width: width,
			Depth: depth,
			Kind:  kindFor(i),
		})
	}

	homeY := w.FirstBand + float64(total)*w.BandStep
	if last := planets[len(planets)-1].Pos.Y; homeY < last {
		homeY = last
	}
	planets = append(planets, Planet{
		Pos:   core.Vec3{X: 0, Y: homeY, Z: 0},
		Width: w.HomeWidth,
		Depth: w.HomeDepth,
		Kind:  KindHome,
	})

	return planets
}

// kindFor assigns decoration by index. Roses, foxes and kings recur with
// periods 12, 15 and 18.
func kindFor(i int) Kind {
	switch {
	case i%12 == 3:
		return KindRose
	case i%15 == 7:
		return KindFox
	case i%18 == 11:
		return KindKing
	default:
		return KindPlain
	}
}
