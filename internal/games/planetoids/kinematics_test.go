package planetoids

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-planetoids/internal/config"
	"github.com/vovakirdan/tui-planetoids/internal/core"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestSteer(t *testing.T) {
	phys := config.DefaultPlanetoidsConfig().Physics

	tests := []struct {
		name    string
		in      Controls
		wantVX  float64
		wantRot float64
	}{
		{"none", Controls{}, 0, 0},
		{"left", Controls{Left: true}, -phys.MoveSpeed, 45},
		{"right", Controls{Right: true}, phys.MoveSpeed, -45},
		{"both prefers left", Controls{Left: true, Right: true}, -phys.MoveSpeed, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Player{VX: 3, Rotation: 10}
			steer(p, phys, tt.in)
			if p.VX != tt.wantVX || p.Rotation != tt.wantRot {
				t.Errorf("got vx=%.2f rot=%.0f, want vx=%.2f rot=%.0f", p.VX, p.Rotation, tt.wantVX, tt.wantRot)
			}
		})
	}
}

func TestJumpRisingEdge(t *testing.T) {
	phys := config.DefaultPlanetoidsConfig().Physics
	p := &Player{Pos: core.Vec3{Y: 50}, OnGround: true}

	if !moveKinematics(p, nil, phys, Controls{Jump: true}) {
		t.Fatal("expected jump on first press")
	}
	wantVY := phys.JumpForce - phys.Gravity*phys.AscentGravityFactor
	if !approx(p.VY, wantVY) {
		t.Errorf("vy after launch = %.4f, want %.4f", p.VY, wantVY)
	}
	if p.OnGround || p.JumpCount != 1 {
		t.Errorf("after launch: onGround=%v jumpCount=%d", p.OnGround, p.JumpCount)
	}

	// Still held: no second jump even if grounded again.
	p.OnGround = true
	p.VY = 0
	if moveKinematics(p, nil, phys, Controls{Jump: true}) {
		t.Error("held jump must not relaunch")
	}

	// Release, then press again.
	p.OnGround = true
	p.VY = 0
	moveKinematics(p, nil, phys, Controls{})
	p.OnGround = true
	p.VY = 0
	if !moveKinematics(p, nil, phys, Controls{Jump: true}) {
		t.Error("expected jump after release and press")
	}
}

func TestJumpRequiresGround(t *testing.T) {
	phys := config.DefaultPlanetoidsConfig().Physics
	p := &Player{Pos: core.Vec3{Y: 200}, VY: -2}

	if moveKinematics(p, nil, phys, Controls{Jump: true}) {
		t.Fatal("airborne player must not jump")
	}
	if !approx(p.VY, -2-phys.Gravity) {
		t.Errorf("vy = %.4f, want %.4f", p.VY, -2-phys.Gravity)
	}
}

func TestJumpBoost(t *testing.T) {
	phys := config.DefaultPlanetoidsConfig().Physics
	p := &Player{OnGround: true}

	moveKinematics(p, nil, phys, Controls{Jump: true, Right: true})
	want := phys.MoveSpeed * phys.JumpBoost
	if !approx(p.VX, want) || !approx(p.Pos.X, want) {
		t.Errorf("vx=%.2f x=%.2f, want %.2f", p.VX, p.Pos.X, want)
	}

	// The boost only lasts for the launch tick.
	moveKinematics(p, nil, phys, Controls{Jump: true, Right: true})
	if p.VX != phys.MoveSpeed {
		t.Errorf("vx after launch tick = %.2f, want %.2f", p.VX, phys.MoveSpeed)
	}
}

func TestGravityFactor(t *testing.T) {
	phys := config.DefaultPlanetoidsConfig().Physics

	tests := []struct {
		name string
		vy   float64
		want float64
	}{
		{"ascending", 2, 2 - phys.Gravity*phys.AscentGravityFactor},
		{"falling", -1, -1 - phys.Gravity},
		{"apex", 0, -phys.Gravity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Player{Pos: core.Vec3{Y: 100}, VY: tt.vy}
			moveKinematics(p, nil, phys, Controls{})
			if !approx(p.VY, tt.want) {
				t.Errorf("vy = %.4f, want %.4f", p.VY, tt.want)
			}
			if !approx(p.Pos.Y, 100+tt.want) {
				t.Errorf("y = %.4f, want %.4f", p.Pos.Y, 100+tt.want)
			}
		})
	}
}

func TestWrapHorizontal(t *testing.T) {
	phys := config.DefaultPlanetoidsConfig().Physics

	p := &Player{Pos: core.Vec3{X: 318, Y: 100}}
	moveKinematics(p, nil, phys, Controls{Right: true})
	if p.Pos.X != -phys.WrapX {
		t.Errorf("right edge: x = %.2f, want %.2f", p.Pos.X, -phys.WrapX)
	}

	p = &Player{Pos: core.Vec3{X: -318, Y: 100}}
	moveKinematics(p, nil, phys, Controls{Left: true})
	if p.Pos.X != phys.WrapX {
		t.Errorf("left edge: x = %.2f, want %.2f", p.Pos.X, phys.WrapX)
	}
}

func TestLateralAssist(t *testing.T) {
	phys := config.DefaultPlanetoidsConfig().Physics

	tests := []struct {
		name    string
		z       float64
		planets []Planet
		want    float64
	}{
		{
			name:    "pulls toward nearest planet in window",
			planets: []Planet{{Pos: core.Vec3{X: 0, Y: 120, Z: 20}}},
			want:    20 * phys.LateralAssistRate,
		},
		{
			name: "nearest by x wins",
			planets: []Planet{
				{Pos: core.Vec3{X: 200, Y: 120, Z: -20}},
				{Pos: core.Vec3{X: 10, Y: 130, Z: 20}},
			},
			want: 20 * phys.LateralAssistRate,
		},
		{
			name:    "inside deadzone",
			planets: []Planet{{Pos: core.Vec3{X: 0, Y: 120, Z: 3}}},
			want:    0,
		},
		{
			name:    "outside window recenters",
			z:       10,
			planets: []Planet{{Pos: core.Vec3{X: 0, Y: 150, Z: 20}}},
			want:    10 - 10*phys.LateralAssistRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Player{Pos: core.Vec3{Y: 100, Z: tt.z}}
			assistLateral(p, tt.planets, phys)
			if !approx(p.Pos.Z, tt.want) {
				t.Errorf("z = %.4f, want %.4f", p.Pos.Z, tt.want)
			}
		})
	}
}

func TestAssistOnlyWhileAirborne(t *testing.T) {
	phys := config.DefaultPlanetoidsConfig().Physics
	planets := []Planet{{Pos: core.Vec3{X: 0, Y: 120, Z: 20}}}

	p := &Player{Pos: core.Vec3{Y: 100}, OnGround: true}
	moveKinematics(p, planets, phys, Controls{})
	if p.Pos.Z != 0 {
		t.Errorf("grounded player z moved to %.4f", p.Pos.Z)
	}
}
