package render

import (
	"image/color"

	cfg "github.com/automoto/glowswarm/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"golang.org/x/image/font"
)

// Draw layers, back to front
const (
	LayerArena ecs.LayerID = iota
	LayerHUD
	LayerOverlay
)

// ToScreen converts world units (y up, arena centre at origin) to screen pixels.
func ToScreen(p math.Vec2) (float32, float32) {
	return float32(p.X + float64(cfg.C.Width)/2), float32(float64(cfg.C.Height)/2 - p.Y)
}

// drawCentered draws a single line of text horizontally centred on cx.
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	w := font.MeasureString(face, s).Round()
	text.Draw(screen, s, face, cx-w/2, y, clr)
}

func withAlpha(c color.RGBA, a float32) color.RGBA {
	if a >= 1 {
		return c
	}
	if a <= 0 {
		return color.RGBA{}
	}
	// premultiplied
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
