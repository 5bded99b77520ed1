package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/farrowlabs/jumpbox/internal/entity"
	"github.com/farrowlabs/jumpbox/internal/gamepad"
)

// Report renders a plain-text snapshot of the running session, the
// kind of thing a playtester can paste straight into a bug report.
func (g *Game) Report() string {
	var b strings.Builder
	b.WriteString("--- jumpbox diagnostics ---\n")
	fmt.Fprintf(&b, "session=%s tick=%d\n", g.session, g.tick)
	fmt.Fprintf(&b, "source=%s buffer=%.2fs timescale=%.2f\n",
		g.in.LastSource(), g.in.BufferDuration(), g.world.TimeScale)

	if g.pad.Connected() {
		stick := g.pad.StickPos(gamepad.StickLeft)
		fmt.Fprintf(&b, "pad=%q left_stick=%+.2f,%+.2f\n", g.pad.Name(), stick.X, stick.Y)
	} else {
		b.WriteString("pad=none\n")
	}

	fmt.Fprintf(&b, "entities=%d walls=%d\n", g.world.Len(), len(g.world.Tagged(entity.TagWall)))
	if g.player != nil {
		pos, vel := g.player.Pos(), g.player.Vel()
		fmt.Fprintf(&b, "player pos=%.1f,%.1f vel=%.1f,%.1f jumps=%d\n",
			pos.X, pos.Y, vel.X, vel.Y, g.player.JumpsLeft())
	}

	b.WriteString("actions:\n")
	for _, name := range g.in.ActionNames() {
		d := g.in.Data(name)
		fmt.Fprintf(&b, "  %-18s mode=%s chord=%t active=%t keys=%v buttons=%v\n",
			d.Name, d.Mode, d.Chord, g.in.Peek(name), d.Keys, d.Buttons)
	}
	return b.String()
}

// handleDiagnostics copies the report to the system clipboard when the
// copy action fires.
func (g *Game) handleDiagnostics() {
	if !g.in.Active(actionCopyDiagnostics) {
		return
	}
	report := g.Report()
	if err := clipboard.WriteAll(report); err != nil {
		g.log.Warn("clipboard copy failed", zap.Error(err))
		return
	}
	g.log.Info("diagnostics copied", zap.Int("bytes", len(report)))
}
