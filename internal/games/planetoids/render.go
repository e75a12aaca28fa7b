package planetoids

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-planetoids/internal/core"
)

// Terminal projection of the world.
const (
	hudRows    = 2
	viewBelow  = 50.0  // Altitude shown below the camera
	viewAbove  = 430.0 // Altitude shown above the camera
	starCount  = 24
	visibleLow = 100.0
	visibleUp  = 500.0
)

// Visual characters for rendering
const (
	PrinceChar = '@'
	PlanetChar = '═'
	HomeChar   = '▓'
	StarChar   = '·'
)

// visibleAt reports whether an altitude lies in the culling band around the
// camera.
func visibleAt(y, cameraY float64) bool {
	return y >= cameraY-visibleLow && y <= cameraY+visibleUp
}

// PlanetVisible reports whether planet i of the snapshot should be drawn.
func (s Snapshot) PlanetVisible(i int) bool {
	if i < 0 || i >= len(s.Planets) {
		return false
	}
	return visibleAt(s.Planets[i].Pos.Y, s.CameraY)
}

// columnFor maps world x in [-WrapX, WrapX] onto screen columns.
func columnFor(x, wrap float64, width int) int {
	if width <= 1 {
		return 0
	}
	frac := (x + wrap) / (2 * wrap)
	return core.Clamp(int(math.Round(frac*float64(width-1))), 0, width-1)
}

// rowFor maps an altitude onto a playfield row. Higher altitudes are nearer
// the top; the HUD rows are never returned for in-window altitudes.
func rowFor(y, cameraY float64, height int) int {
	rows := height - hudRows
	if rows <= 1 {
		return hudRows
	}
	frac := (cameraY + viewAbove - y) / (viewAbove + viewBelow)
	return hudRows + int(math.Round(frac*float64(rows-1)))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	snap := g.session.Snapshot()
	wrap := g.cfg.Physics.WrapX

	drawStars(dst, snap.CameraY)
	for i, pl := range snap.Planets {
		if snap.PlanetVisible(i) {
			drawPlanet(dst, pl, snap.CameraY, wrap)
		}
	}
	drawPrince(dst, snap, wrap)
	drawHUD(dst, snap)

	switch {
	case snap.Phase == PhaseGameOver:
		title := "GAME OVER"
		if snap.JourneyComplete {
			title = "JOURNEY COMPLETE"
		}
		drawCenteredMessage(dst, title,
			snap.Reason.Message(),
			fmt.Sprintf("Score: %d  |  Best: %d  |  Press R to restart", snap.Score, snap.HighScore))
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawStars scrolls a fixed star pattern at a quarter of the camera speed.
func drawStars(dst *core.Screen, cameraY float64) {
	w, h := dst.Width(), dst.Height()
	rows := h - hudRows
	if w <= 0 || rows <= 0 {
		return
	}
	shift := int(cameraY / 4)
	for i := 0; i < starCount; i++ {
		x := (i*37 + 11) % w
		y := (i*53 + shift) % rows
		dst.SetColored(x, hudRows+y, StarChar, core.ColorStarfield)
	}
}

func drawPlanet(dst *core.Screen, pl Planet, cameraY, wrap float64) {
	w := dst.Width()
	row := rowFor(pl.Pos.Y, cameraY, dst.Height())
	if row < hudRows || row >= dst.Height() {
		return
	}

	span := max(1, int(math.Round(pl.Width/(2*wrap)*float64(w))))
	center := columnFor(pl.Pos.X, wrap, w)
	left := center - span/2

	color, bar := planetStyle(pl.Kind)
	dst.DrawHLine(left, row, span, bar, color)

	if glyph := kindGlyph(pl.Kind); glyph != 0 && row-1 >= hudRows {
		dst.SetColored(center, row-1, glyph, color)
	}
}

func planetStyle(k Kind) (core.Color, rune) {
	switch k {
	case KindRose:
		return core.ColorRose, PlanetChar
	case KindFox:
		return core.ColorFox, PlanetChar
	case KindKing:
		return core.ColorKing, PlanetChar
	case KindHome:
		return core.ColorHome, HomeChar
	default:
		return core.ColorPlanet, PlanetChar
	}
}

func kindGlyph(k Kind) rune {
	switch k {
	case KindRose:
		return '❀'
	case KindFox:
		return '▲'
	case KindKing:
		return '♛'
	case KindHome:
		return '⌂'
	default:
		return 0
	}
}

func drawPrince(dst *core.Screen, snap Snapshot, wrap float64) {
	p := snap.Player
	row := rowFor(p.Y+p.Bob, snap.CameraY, dst.Height()) - 1
	if row < hudRows {
		return
	}
	col := columnFor(p.X, wrap, dst.Width())
	color := core.ColorPrince
	if snap.Drifting {
		color = core.ColorWarning
	}
	dst.SetColored(col, row, PrinceChar, color)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	chapter := min(snap.Level, snap.MaxLevels)
	top := fmt.Sprintf(" Chapter %d / %d   Score: %d   Best: %d", chapter, snap.MaxLevels, snap.Score, snap.HighScore)
	dst.DrawTextColored(0, 0, top, core.ColorHUD)

	status := fmt.Sprintf(" Cosmic speed: %d%%   Wonder: x%d   Planetoids until next discovery: %d",
		int(math.Round(snap.ScrollSpeed*60)), snap.Combo, snap.PlanetsUntilBonus)
	dst.DrawTextColored(0, 1, status, core.ColorDim)

	if snap.BoostTimer > 0 {
		label := " ✦ BOOST "
		dst.DrawTextColored(dst.Width()-len([]rune(label)), 0, label, core.ColorBonus)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorHUD)

	dst.DrawTextCentered(boxY+1, title, core.ColorWarning)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l, core.ColorDefault)
	}
}
