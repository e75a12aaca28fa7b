package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-planetoids/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorStarfield: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorPlanet:    lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	core.ColorRose:      lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
	core.ColorFox:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorKing:      lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	core.ColorHome:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorPrince:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorBonus:     lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")),
	core.ColorWarning:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorDim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText pads text on the left so it is centered in width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
