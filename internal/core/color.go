package core

// Color identifies the palette entry a screen cell is drawn with.
// The platform maps each entry to a terminal color.
type Color uint8

// Palette entries used by the planetoids renderer.
const (
	ColorDefault Color = iota
	ColorStarfield
	ColorPlanet
	ColorRose
	ColorFox
	ColorKing
	ColorHome
	ColorPrince
	ColorHUD
	ColorBonus
	ColorWarning
	ColorDim
)
