package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/corsair/constant"
	"github.com/lixenwraith/corsair/core"
	"github.com/lixenwraith/corsair/engine"
)

var (
	statusStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(20, 20, 20)).Foreground(tcell.ColorWhite)
	heartStyle  = statusStyle.Foreground(tcell.NewRGBColor(230, 40, 40)).Bold(true)
	goldStyle   = statusStyle.Foreground(tcell.NewRGBColor(255, 200, 0)).Bold(true)
	bannerStyle = base.Foreground(tcell.NewRGBColor(255, 215, 0)).Bold(true).Reverse(true)
)

// TerminalRenderer draws frames into a tcell screen
// The bottom constant.StatusRows rows hold the HUD
type TerminalRenderer struct {
	screen tcell.Screen
	cols   int
	rows   int
}

// NewTerminalRenderer creates a renderer on an initialized screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.resize()
	return r
}

func (r *TerminalRenderer) resize() {
	w, h := r.screen.Size()
	r.cols = w
	r.rows = max(h-constant.StatusRows, 0)
}

// PlayfieldSize returns the cell grid available to the world
func (r *TerminalRenderer) PlayfieldSize() (cols, rows int) {
	return r.cols, r.rows
}

func (r *TerminalRenderer) Begin(engine.Frame) {
	r.resize()
	r.screen.Fill(' ', base)
}

func (r *TerminalRenderer) Draw(pose Pose, view mgl64.Mat4, _ float64) {
	if pose.Kind == core.KindBanner {
		r.drawBanner(pose, view)
		return
	}
	g := glyphFor(pose)
	if g.r == 0 {
		return
	}
	x, y, ok := Project(view, pose.Position, r.cols, r.rows)
	if !ok {
		return
	}
	r.screen.SetContent(x, y, g.r, nil, g.style)
}

// drawBanner boxes the victory text around the banner anchor
func (r *TerminalRenderer) drawBanner(pose Pose, view mgl64.Mat4) {
	x, y, ok := Project(view, pose.Position, r.cols, r.rows)
	if !ok {
		x, y = r.cols/2, r.rows/2
	}
	lines := []string{"", "  THE SEAS ARE YOURS  ", "  the kraken sleeps  ", ""}
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	top := y - len(lines)/2
	for i, l := range lines {
		r.text(x-width/2, top+i, l+strings.Repeat(" ", width-len(l)), bannerStyle)
	}
}

func (r *TerminalRenderer) HUD(hud engine.HUD, phase engine.Phase) {
	row := r.rows
	w, _ := r.screen.Size()
	r.text(0, row, strings.Repeat(" ", w), statusStyle)

	x := 1
	for i := 0; i < hud.MaxHealth; i++ {
		ch := '♡'
		if i < hud.Health {
			ch = '♥'
		}
		r.screen.SetContent(x, row, ch, nil, heartStyle)
		x += 2
	}

	score := make([]byte, 0, len(hud.ScoreDigits))
	for i := len(hud.ScoreDigits) - 1; i >= 0; i-- {
		score = append(score, byte('0'+hud.ScoreDigits[i]))
	}
	x = r.text(x+1, row, "SCORE "+string(score), statusStyle)

	if hud.PowerUp {
		x = r.text(x+2, row, fmt.Sprintf("GOLD %d", hud.PowerUpSeconds), goldStyle)
	}

	switch phase {
	case engine.PhaseVictory:
		r.text(x+2, row, "VICTORY  [esc] quit", goldStyle)
	case engine.PhaseDefeat:
		r.text(x+2, row, "GAME OVER  [esc] quit", heartStyle)
		r.centered(r.rows/2, " GAME OVER ", bannerStyle)
	}
}

func (r *TerminalRenderer) End() error {
	r.screen.Show()
	return nil
}

// text writes s at (x, y) and returns the column after it
func (r *TerminalRenderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func (r *TerminalRenderer) centered(y int, s string, style tcell.Style) {
	r.text((r.cols-len(s))/2, y, s, style)
}
