package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette for the winter course.
const (
	ColorDefault Color = iota
	ColorSnow
	ColorPine
	ColorTrunk
	ColorIce
	ColorStone
	ColorEmber
	ColorRunner
	ColorShield
	ColorSlowMo
	ColorAirDash
	ColorPhase
	ColorFrenzy
	ColorHUD
	ColorDim
)
