package planetoids

import (
	"math"

	"github.com/vovakirdan/tui-planetoids/internal/config"
	"github.com/vovakirdan/tui-planetoids/internal/core"
)

// resolveLanding clears the ground flag and, for a player that is not
// ascending, lands it on the first planet in list order whose box contains
// it. Returns the landed index or -1.
func resolveLanding(p *Player, planets []Planet, phys config.PlanetoidsPhysics) int {
	p.OnGround = false
	if p.VY > 0 {
		return -1
	}

	for i := range planets {
		pl := &planets[i]
		if !withinLandingBox(p, pl, phys) {
			continue
		}

		halfW, halfD := pl.Width/2, pl.Depth/2
		p.Pos.X = core.ClampF(p.Pos.X, pl.Pos.X-halfW, pl.Pos.X+halfW)
		p.Pos.Z = core.ClampF(p.Pos.Z, pl.Pos.Z-halfD, pl.Pos.Z+halfD)

		p.Pos.Y = pl.Pos.Y
		p.VY = 0
		p.OnGround = true
		p.JumpCount = 0
		p.GroundIndex = i
		return i
	}
	return -1
}

// withinLandingBox is the coarse overlap test: half extents plus margin on
// x and z, and an asymmetric vertical window around the planet altitude.
func withinLandingBox(p *Player, pl *Planet, phys config.PlanetoidsPhysics) bool {
	d := p.Pos.Sub(pl.Pos)
	return math.Abs(d.X) < pl.Width/2+phys.LandingMargin &&
		math.Abs(d.Z) < pl.Depth/2+phys.LandingMargin &&
		p.Pos.Y > pl.Pos.Y-phys.LandingBelow &&
		p.Pos.Y < pl.Pos.Y+phys.LandingAbove
}
