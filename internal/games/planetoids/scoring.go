package planetoids

import "github.com/vovakirdan/tui-planetoids/internal/core"

// addPoints raises the score and keeps the high score in step with it.
// Score never decreases.
func (s *Session) addPoints(points int) {
	if points <= 0 {
		return
	}
	s.score += points
	s.commitHighScore()
}

func (s *Session) commitHighScore() {
	if s.score > s.highScore {
		s.highScore = s.score
	}
}

// tickCombo counts the combo window down; an idle combo is dropped to zero
// on the first tick after the window has run out.
func (s *Session) tickCombo() {
	p := &s.player
	if p.ComboTimer > 0 {
		p.ComboTimer--
		return
	}
	p.Combo = 0
}

// scoreLanding awards forward progress. Re-landing on the same or an earlier
// planet scores nothing and leaves LastPlanetIndex where it is.
func (s *Session) scoreLanding(index int) {
	p := &s.player
	if index <= p.LastPlanetIndex {
		return
	}

	sc := s.cfg.Scoring
	jumped := index - p.LastPlanetIndex
	p.PlanetsExplored++
	p.Combo++
	p.ComboTimer = sc.ComboWindow

	points := sc.PointsPerPlanet * jumped * min(p.Combo, sc.ComboCap)
	s.addPoints(points)
	p.LastPlanetIndex = index

	s.emit(core.Event{
		Kind:   core.EventLanded,
		Points: points,
		Index:  index,
		Combo:  p.Combo,
		Level:  s.level,
	})
}

// countCrossing registers at most one planet whose altitude the camera
// scrolled past this tick, the first one in list order.
func (s *Session) countCrossing(from, to float64) {
	for i := range s.planets {
		y := s.planets[i].Pos.Y
		if y >= from && y < to {
			s.planetsVisited++
			s.totalExplored++
			s.checkExplorationBonus()
			return
		}
	}
}

func (s *Session) checkExplorationBonus() {
	sc := s.cfg.Scoring
	if s.planetsVisited == 0 || s.planetsVisited%sc.PlanetsForBonus != 0 {
		return
	}

	bonus := sc.ExplorationBonus * s.level
	s.addPoints(bonus)
	s.boostTimer = sc.BoostTicks
	s.planetsVisited = 0

	s.emit(core.Event{
		Kind:   core.EventExplorationBonus,
		Points: bonus,
		Level:  s.level,
	})
}
