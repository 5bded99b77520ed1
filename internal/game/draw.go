package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

const indicatorRadius = 75

// indicator is one on-screen circle mirroring an action's state.
type indicator struct {
	action string
	x, y   float64
	lit    bool
}

// indicatorLayout places the four test actions on a 2x2 grid.
var indicatorLayout = []indicator{
	{action: "hold", x: 100, y: 100},
	{action: "hold chord", x: 300, y: 100},
	{action: "press", x: 100, y: 300},
	{action: "press chord", x: 300, y: 300},
}

// initIndicators keeps an indicator for every layout slot whose action
// the configuration actually registered.
func (g *Game) initIndicators() {
	registered := map[string]bool{}
	for _, name := range g.in.ActionNames() {
		registered[name] = true
	}
	for _, ind := range indicatorLayout {
		if !registered[ind.action] {
			g.log.Debug("indicator action not configured", zap.String("action", ind.action))
			continue
		}
		g.indicators = append(g.indicators, ind)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.White)
	g.drawIndicators(screen)

	g.surface.SetTarget(screen)
	g.world.Render()

	g.drawHUD(screen)
}

func (g *Game) drawIndicators(screen *ebiten.Image) {
	for _, ind := range g.indicators {
		fill := colornames.Red
		if ind.lit {
			fill = colornames.Lime
		}
		vector.FillCircle(screen, float32(ind.x), float32(ind.y), indicatorRadius, fill, false)
		vector.StrokeCircle(screen, float32(ind.x), float32(ind.y), indicatorRadius, 2, colornames.Dimgray, false)
		ebitenutil.DebugPrintAt(screen, ind.action, int(ind.x)-len(ind.action)*3, int(ind.y)+indicatorRadius+6)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	pad := "none"
	if g.pad.Connected() {
		pad = g.pad.Name()
	}
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("tps %.0f  source %s  pad %s  jumps %d",
			ebiten.ActualTPS(), g.in.LastSource(), pad, g.player.JumpsLeft()),
		8, g.cfg.Window.Height-36)
	ebitenutil.DebugPrintAt(screen,
		"z/x hold  c/v press  a/d+space move  tab slow time  f12 copy diagnostics",
		8, g.cfg.Window.Height-20)
}
