package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/corsair/core"
	"github.com/lixenwraith/corsair/vmath"
)

type glyph struct {
	r     rune
	style tcell.Style
}

var base = tcell.StyleDefault.Background(tcell.NewRGBColor(8, 24, 48))

var glyphs = [core.SpriteCount]glyph{
	core.SpriteNavy:       {'n', base.Foreground(tcell.NewRGBColor(200, 200, 220)).Bold(true)},
	core.SpriteSeaMonster: {'S', base.Foreground(tcell.NewRGBColor(80, 220, 120)).Bold(true)},
	core.SpriteKraken:     {'K', base.Foreground(tcell.NewRGBColor(220, 60, 200)).Bold(true)},
	core.SpriteApple:      {'+', base.Foreground(tcell.NewRGBColor(230, 40, 40)).Bold(true)},
	core.SpriteGold:       {'$', base.Foreground(tcell.NewRGBColor(255, 200, 0)).Bold(true)},
	core.SpriteBarrel:     {'o', base.Foreground(tcell.NewRGBColor(170, 110, 50))},
	core.SpriteCannonball: {'•', base.Foreground(tcell.NewRGBColor(230, 230, 230))},
	core.SpriteSpike:      {'x', base.Foreground(tcell.NewRGBColor(255, 140, 0)).Bold(true)},
	core.SpriteSmoke:      {'·', base.Foreground(tcell.NewRGBColor(140, 140, 140))},
	core.SpriteTentacle:   {'~', base.Foreground(tcell.NewRGBColor(190, 70, 180))},
}

// shipArrows indexes eight facing octants counterclockwise from +x
var shipArrows = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

var shipStyle = base.Foreground(tcell.NewRGBColor(255, 255, 255)).Bold(true)

// octant returns the nearest of eight directions for a wrapped angle
func octant(angle float64) int {
	return int(math.Floor(vmath.WrapAngle(angle)/(math.Pi/4)+0.5)) % 8
}

// explosionGlyph fades through three stages over the effect lifetime
func explosionGlyph(age float64) glyph {
	switch {
	case age < 0.33:
		return glyph{'@', base.Foreground(tcell.NewRGBColor(255, 240, 120)).Bold(true)}
	case age < 0.66:
		return glyph{'*', base.Foreground(tcell.NewRGBColor(255, 140, 0))}
	default:
		return glyph{'.', base.Foreground(tcell.NewRGBColor(150, 60, 20))}
	}
}

func glyphFor(p Pose) glyph {
	switch p.Sprite {
	case core.SpriteShip:
		return glyph{shipArrows[octant(p.Angle)], shipStyle}
	case core.SpriteBoom:
		return explosionGlyph(p.Age)
	}
	if int(p.Sprite) < len(glyphs) {
		return glyphs[p.Sprite]
	}
	return glyph{'?', base}
}
