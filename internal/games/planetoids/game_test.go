package planetoids

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-planetoids/internal/config"
	"github.com/vovakirdan/tui-planetoids/internal/core"
	"github.com/vovakirdan/tui-planetoids/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultPlanetoidsConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func scriptedInput(i int) core.InputFrame {
	in := core.NewInputFrame()
	if i%25 == 0 {
		in.Set(core.ActionJump)
	}
	switch {
	case i%90 < 20:
		in.Set(core.ActionLeft)
	case i%90 > 60:
		in.Set(core.ActionRight)
	}
	return in
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	for i := 0; i < 600; i++ {
		r1 := g1.Step(scriptedInput(i))
		r2 := g2.Step(scriptedInput(i))
		if r1.State != r2.State {
			t.Fatalf("tick %d: states differ\n%+v\n%+v", i, r1.State, r2.State)
		}
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Player != s2.Player || s1.CameraY != s2.CameraY || !slices.Equal(s1.Planets, s2.Planets) {
		t.Error("snapshots differ for identical seed and input")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(1)
	g.Step(core.NewInputFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	before := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(scriptedInput(i))
	}
	after := g.Snapshot()
	if before.Tick != after.Tick || before.Player != after.Player || before.CameraY != after.CameraY {
		t.Error("simulation advanced while paused")
	}

	// The resuming frame already advances the simulation.
	g.Step(pause)
	if g.State().Paused {
		t.Fatal("expected resumed")
	}
	if g.Snapshot().Tick != before.Tick+1 {
		t.Error("simulation did not resume")
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	g := newTestGame(3)
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.State().Ticks != 11 {
		t.Fatalf("restart while running reset the run: ticks=%d", g.State().Ticks)
	}

	// Standing still lets the camera overtake the start planet.
	for i := 0; i < 5000 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	st := g.State()
	if !st.GameOver {
		t.Fatal("expected the run to end while idling")
	}
	if st.Outcome != ReasonLastPlanetBehindCamera.String() {
		t.Errorf("outcome = %q", st.Outcome)
	}

	g.Step(restart)
	st = g.State()
	if st.GameOver || st.Ticks != 0 || st.Score != 0 || st.Level != 1 {
		t.Errorf("restart did not start a new run: %+v", st)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(42)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Chapter 1 / 5", "Wonder: x0", "Cosmic speed: 72%", "until next discovery: 10"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	col := columnFor(0, 320, 80)
	planetRow := rowFor(50, 0, 24)
	if screen.Get(col, planetRow-1) != PrinceChar {
		t.Errorf("prince not drawn above the start planet:\n%s", out)
	}
	if screen.Get(col, planetRow) != PlanetChar {
		t.Errorf("start planet not drawn at row %d", planetRow)
	}
	if c := screen.GetCell(col, planetRow-1).Color; c != core.ColorPrince {
		t.Errorf("prince color = %v", c)
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(42)
	s := g.Session()
	s.planets = ladder(1)
	s.level = s.cfg.World.MaxLevels
	dropOnto(s, 1)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "JOURNEY COMPLETE") {
		t.Errorf("missing journey banner:\n%s", out)
	}
	if !strings.Contains(out, ReasonJourneyComplete.Message()) {
		t.Error("missing journey message")
	}
	if !strings.Contains(out, "Chapter 5 / 5") {
		t.Error("chapter should stay capped at the level count")
	}
}

func TestProjection(t *testing.T) {
	if got := columnFor(-320, 320, 81); got != 0 {
		t.Errorf("left edge column = %d", got)
	}
	if got := columnFor(320, 320, 81); got != 80 {
		t.Errorf("right edge column = %d", got)
	}
	if got := columnFor(0, 320, 81); got != 40 {
		t.Errorf("center column = %d", got)
	}

	if got := rowFor(430, 0, 24); got != hudRows {
		t.Errorf("top of window row = %d, want %d", got, hudRows)
	}
	if got := rowFor(-50, 0, 24); got != 23 {
		t.Errorf("bottom of window row = %d, want 23", got)
	}
	if rowFor(200, 100, 24) != rowFor(100, 0, 24) {
		t.Error("rows must follow the camera")
	}
}

func TestStateBeforeReset(t *testing.T) {
	g := New()
	st := g.State()
	if st.GameOver || st.Level != 1 {
		t.Errorf("unexpected initial state %+v", st)
	}
	if res := g.Step(core.NewInputFrame()); res.Events != nil {
		t.Error("step before reset produced events")
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatal("planetoids not registered")
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatal(err)
	}
	if g.ID() != ID || g.Title() != "Planetoid Hop" {
		t.Errorf("id=%q title=%q", g.ID(), g.Title())
	}
}
