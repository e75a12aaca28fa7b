package planetoids

import (
	"math"

	"github.com/vovakirdan/tui-planetoids/internal/config"
	"github.com/vovakirdan/tui-planetoids/internal/core"
)

// Controls is the held-button snapshot for one tick.
type Controls struct {
	Left  bool
	Right bool
	Jump  bool
}

// moveKinematics applies one tick of input, gravity and integration to the
// player. It runs before collision, so onGround still reflects last tick.
// Reports whether a jump was initiated.
func moveKinematics(p *Player, planets []Planet, phys config.PlanetoidsPhysics, in Controls) bool {
	steer(p, phys, in)

	if !p.OnGround {
		assistLateral(p, planets, phys)
	}

	jumped := launch(p, phys, in)

	gravity := phys.Gravity
	if p.VY > 0 {
		gravity *= phys.AscentGravityFactor
	}
	p.VY -= gravity

	p.Pos = p.Pos.Add(core.Vec3{X: p.VX, Y: p.VY})

	wrapHorizontal(p, phys.WrapX)
	return jumped
}

// steer sets horizontal velocity from the held direction. Left wins when
// both are held.
func steer(p *Player, phys config.PlanetoidsPhysics, in Controls) {
	switch {
	case in.Left:
		p.VX = -phys.MoveSpeed
		p.Rotation = 45
	case in.Right:
		p.VX = phys.MoveSpeed
		p.Rotation = -45
	default:
		p.VX = 0
		p.Rotation = 0
	}
}

// launch starts a jump on the rising edge of the jump button while grounded.
func launch(p *Player, phys config.PlanetoidsPhysics, in Controls) bool {
	rising := in.Jump && !p.JumpHeld
	p.JumpHeld = in.Jump

	if !rising || !p.OnGround {
		return false
	}

	p.VY = phys.JumpForce
	p.OnGround = false
	p.JumpCount = 1

	switch {
	case in.Left:
		p.VX = -phys.MoveSpeed * phys.JumpBoost
	case in.Right:
		p.VX = phys.MoveSpeed * phys.JumpBoost
	}
	return true
}

// assistLateral nudges z toward the horizontally nearest planet inside the
// vertical assist window. With no planet in the window the target is z=0.
func assistLateral(p *Player, planets []Planet, phys config.PlanetoidsPhysics) {
	targetZ := 0.0
	best := math.Inf(1)
	for i := range planets {
		pl := &planets[i]
		if pl.Pos.Y <= p.Pos.Y-phys.AssistBelow || pl.Pos.Y >= p.Pos.Y+phys.AssistAbove {
			continue
		}
		if d := math.Abs(p.Pos.X - pl.Pos.X); d < best {
			best = d
			targetZ = pl.Pos.Z
		}
	}

	diff := targetZ - p.Pos.Z
	if math.Abs(diff) > phys.LateralDeadzone {
		p.Pos.Z += diff * phys.LateralAssistRate
	}
}

// wrapHorizontal teleports the player to the opposite edge past ±limit.
func wrapHorizontal(p *Player, limit float64) {
	if p.Pos.X < -limit {
		p.Pos.X = limit
	}
	if p.Pos.X > limit {
		p.Pos.X = -limit
	}
}
