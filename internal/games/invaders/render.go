package invaders

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar      = '▲'
	EnemyChar       = '▓'
	BossChar        = '█'
	PlayerShotChar  = '|'
	EnemyShotChar   = '!'
	BorderHoriz     = '─'
	BossBarFull     = '■'
	BossBarEmpty    = '·'
	hudRows         = 2
	bossBarSegments = 20
)

// stageColors cycles per stage for standard enemies.
var stageColors = []core.Color{core.ColorGreen, core.ColorCyan, core.ColorYellow, core.ColorMagenta}

// Render draws the current frame, scaling the canvas to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.session == nil {
		return
	}

	g.renderHUD(dst)

	proj := newProjection(g.session.Config().Canvas.Width, g.session.Config().Canvas.Height, dst)
	view := g.session.View()
	g.renderField(dst, proj, view)

	g.renderOverlay(dst)
}

// projection maps canvas units to screen cells below the HUD.
type projection struct {
	sx, sy float64
	top    int
	bottom int // Exclusive
	width  int
}

func newProjection(canvasW, canvasH float64, dst *core.Screen) projection {
	fieldH := dst.Height() - hudRows
	return projection{
		sx:     float64(dst.Width()) / canvasW,
		sy:     float64(fieldH) / canvasH,
		top:    hudRows,
		bottom: dst.Height(),
		width:  dst.Width(),
	}
}

// cells returns the screen rectangle covering box, at least one cell in size
// and clipped to the playfield. ok is false when nothing is visible.
func (p projection) cells(box core.RectF) (core.Rect, bool) {
	x0 := int(math.Floor(box.X * p.sx))
	x1 := int(math.Ceil(box.Right() * p.sx))
	y0 := int(math.Floor(box.Y*p.sy)) + p.top
	y1 := int(math.Ceil(box.Bottom()*p.sy)) + p.top
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0 = core.Max(x0, 0)
	x1 = core.Min(x1, p.width)
	y0 = core.Max(y0, p.top)
	y1 = core.Min(y1, p.bottom)
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}, false
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0), true
}

// point returns the single cell at the horizontal centre of box.
func (p projection) point(box core.RectF) (int, int, bool) {
	x := int(box.CenterX() * p.sx)
	y := int(box.Y*p.sy) + p.top
	if x < 0 || x >= p.width || y < p.top || y >= p.bottom {
		return 0, 0, false
	}
	return x, y, true
}

// renderHUD draws score, lives and stage, and the boss bar when a boss is up.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.Score()))

	lives := "Lives: " + strings.Repeat("♥", s.Lives())
	x := (dst.Width() - len([]rune(lives))) / 2
	dst.DrawText(x, 0, "Lives: ")
	dst.DrawTextColored(x+7, 0, strings.Repeat("♥", s.Lives()), core.ColorRed)

	stageText := fmt.Sprintf("Stage: %d/%d", s.Stage(), s.Config().Gameplay.MaxStage)
	dst.DrawText(dst.Width()-len(stageText)-1, 0, stageText)

	pct, ok := s.BossHealthPercent()
	if !ok {
		dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
		return
	}
	g.renderBossBar(dst, pct)
}

// renderBossBar draws "BOSS [■■■■····] 40%" centred on the second HUD row.
func (g *Game) renderBossBar(dst *core.Screen, pct int) {
	filled := pct * bossBarSegments / 100
	if pct > 0 && filled == 0 {
		filled = 1
	}

	label := "BOSS ["
	tail := fmt.Sprintf("] %d%%", pct)
	total := len(label) + bossBarSegments + len(tail)
	x := (dst.Width() - total) / 2

	dst.DrawText(x, 1, label)
	x += len(label)
	color := bossColor(pct)
	for i := range bossBarSegments {
		if i < filled {
			dst.SetColored(x+i, 1, BossBarFull, color)
		} else {
			dst.SetColored(x+i, 1, BossBarEmpty, core.ColorGray)
		}
	}
	dst.DrawText(x+bossBarSegments, 1, tail)
}

// bossColor shifts from magenta to red as the boss weakens.
func bossColor(pct int) core.Color {
	switch {
	case pct > 60:
		return core.ColorMagenta
	case pct > 30:
		return core.ColorOrange
	default:
		return core.ColorBrightRed
	}
}

// renderField draws enemies, the ship and bullets.
func (g *Game) renderField(dst *core.Screen, proj projection, view View) {
	enemyColor := stageColors[(g.session.Stage()-1)%len(stageColors)]
	bossPct, _ := g.session.BossHealthPercent()

	for _, e := range view.Enemies {
		if !e.Alive {
			continue
		}
		r, ok := proj.cells(e.Box)
		if !ok {
			continue
		}
		if e.IsBoss {
			dst.DrawRectColored(r, BossChar, bossColor(bossPct))
		} else {
			dst.DrawRectColored(r, EnemyChar, enemyColor)
		}
	}

	if r, ok := proj.cells(view.Player); ok {
		dst.DrawRectColored(r, PlayerChar, core.ColorBrightGreen)
	}

	for _, b := range view.PlayerBullets {
		if x, y, ok := proj.point(b); ok {
			dst.SetColored(x, y, PlayerShotChar, core.ColorBrightYellow)
		}
	}
	for _, b := range view.EnemyBullets {
		if x, y, ok := proj.point(b); ok {
			dst.SetColored(x, y, EnemyShotChar, core.ColorRed)
		}
	}
}

// renderOverlay draws phase messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	s := g.session

	if g.paused {
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
		return
	}

	switch s.Phase() {
	case PhaseStageClear:
		title := fmt.Sprintf("STAGE %d CLEAR", s.Stage())
		secs := (s.Countdown() + s.tickRate - 1) / s.tickRate
		g.drawCenteredBox(dst, title, fmt.Sprintf("Next stage in %d...", secs))

	case PhaseLost:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", s.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case PhaseWon:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", s.Score())
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
