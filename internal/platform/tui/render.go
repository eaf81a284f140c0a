package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// colorStyles maps the winter palette to 256-colour terminal styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorSnow:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorPine:    lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorTrunk:   lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorIce:     lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorStone:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorEmber:   lipgloss.NewStyle().Foreground(lipgloss.Color("202")).Bold(true),
	core.ColorRunner:  lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
	core.ColorShield:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
	core.ColorSlowMo:  lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
	core.ColorAirDash: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorPhase:   lipgloss.NewStyle().Foreground(lipgloss.Color("183")).Faint(true),
	core.ColorFrenzy:  lipgloss.NewStyle().Foreground(lipgloss.Color("198")).Bold(true),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// RenderScreen converts a Screen buffer to a styled string.
// Adjacent cells of the same colour share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText pads text on the left so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
