package runner

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	RunnerChar   = '█'
	PhaseChar    = '▒'
	GroundChar   = '▀'
	SnowChar     = '░'
	PineChar     = '▲'
	TrunkChar    = '┃'
	SnowballChar = '●'
	IcicleChar   = '▼'
	MeteorChar   = '✸'
	WingChar     = '^'
	LifeChar     = '♥'
)

// viewport maps world pixels onto screen cells below the HUD row.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(sn Snapshot, dst *core.Screen) viewport {
	const hudRows = 1
	playH := max(dst.Height()-hudRows, 1)
	return viewport{
		sx:  float64(dst.Width()) / sn.World.Width,
		sy:  float64(playH) / sn.World.Height,
		top: hudRows,
	}
}

func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.Left * v.sx))
	x1 := max(int(math.Ceil(b.Right*v.sx)), x0+1)
	y0 := int(math.Floor(b.Top * v.sy))
	y1 := max(int(math.Ceil(b.Bottom*v.sy)), y0+1)
	return core.NewRect(x0, v.top+y0, x1-x0, y1-y0)
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Ceil(y*v.sy))
}

// Render draws a snapshot onto the screen. It is a pure function of the snapshot.
func Render(sn Snapshot, dst *core.Screen) {
	dst.Clear()
	if sn.World.Width <= 0 || sn.World.Height <= 0 {
		return
	}
	vp := newViewport(sn, dst)

	ground := vp.row(sn.World.GroundY())
	dst.DrawHLine(0, ground, dst.Width(), GroundChar, core.ColorSnow)
	for y := ground + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), SnowChar, core.ColorDim)
	}

	for _, o := range sn.Obstacles {
		drawObstacle(dst, vp, o)
	}
	for _, p := range sn.Pickups {
		r := vp.rect(p.Box())
		dst.SetColored(r.X+r.W/2, r.Y+r.H/2, p.Kind.Glyph(), pickupColor(p.Kind))
	}
	drawActor(dst, vp, sn)
	drawHUD(dst, sn)

	switch {
	case sn.Idle():
		drawCenteredMessage(dst, "WINTER RUNNER", "Press Space to start")
	case sn.GameOver():
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", sn.Run.Score))
	}
}

func drawObstacle(dst *core.Screen, vp viewport, o Obstacle) {
	r := vp.rect(o.Box())
	switch {
	case strings.HasPrefix(o.Type, "tree"):
		trunk := r.X + r.W/2
		for y := r.Y; y < r.Bottom(); y++ {
			if y == r.Bottom()-1 && r.H > 1 {
				dst.SetColored(trunk, y, TrunkChar, core.ColorTrunk)
				continue
			}
			for x := r.X; x < r.Right(); x++ {
				dst.SetColored(x, y, PineChar, core.ColorPine)
			}
		}
	case o.Behavior == BehaviorRolling:
		dst.DrawRect(r, SnowballChar, core.ColorSnow)
	case o.Behavior == BehaviorFalling:
		dst.DrawRect(r, IcicleChar, core.ColorIce)
	case o.Behavior == BehaviorMeteor:
		dst.DrawRect(r, MeteorChar, core.ColorEmber)
	case o.Lane == LaneAerial:
		wing := WingChar
		if int(o.AgeMs/140)%2 == 1 {
			wing = 'v'
		}
		dst.DrawRect(r, wing, core.ColorStone)
	default:
		dst.DrawRect(r, '#', core.ColorStone)
	}
}

func drawActor(dst *core.Screen, vp viewport, sn Snapshot) {
	r := vp.rect(sn.Actor.Box())
	glyph, color := RunnerChar, core.ColorRunner
	switch {
	case sn.Effects[KindPhase].Active:
		glyph, color = PhaseChar, core.ColorPhase
	case sn.Effects[KindShield].Active:
		color = core.ColorShield
	}
	dst.DrawRect(r, glyph, color)
}

func drawHUD(dst *core.Screen, sn Snapshot) {
	left := fmt.Sprintf(" Score: %05d  %s  %.1f km/h  Lv %d ",
		sn.Run.Score, strings.Repeat(string(LifeChar), max(sn.Run.Lives, 0)), sn.SpeedKmh, sn.Difficulty)
	dst.DrawText(0, 0, left, core.ColorHUD)

	var parts []string
	for _, k := range sn.ActiveEffects() {
		parts = append(parts, fmt.Sprintf("%s %.1fs", k.Label(), sn.Effects[k].RemainingMs/1000))
	}
	if len(parts) > 0 {
		right := strings.Join(parts, " · ") + " "
		dst.DrawText(dst.Width()-len([]rune(right)), 0, right, pickupColor(sn.ActiveEffects()[0]))
	}
}

func pickupColor(k Kind) core.Color {
	switch k {
	case KindShield:
		return core.ColorShield
	case KindSlowMo:
		return core.ColorSlowMo
	case KindDoubleJump:
		return core.ColorAirDash
	case KindPhase:
		return core.ColorPhase
	case KindFrenzy:
		return core.ColorFrenzy
	default:
		return core.ColorDefault
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorHUD)

	dst.DrawTextCentered(boxY+1, title, core.ColorHUD)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorDefault)
}
