package render

import (
	"github.com/automoto/glowswarm/assets"
	cfg "github.com/automoto/glowswarm/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Bloom renders a scene into an offscreen buffer and composites it with a
// bright-pass glow whose strength follows the display quality.
type Bloom struct {
	buffer  *ebiten.Image
	Quality cfg.DisplayQuality
}

func NewBloom(quality cfg.DisplayQuality) *Bloom {
	return &Bloom{Quality: quality}
}

// Target returns the buffer to draw the scene into, sized like screen.
func (b *Bloom) Target(screen *ebiten.Image) *ebiten.Image {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if b.buffer == nil || b.buffer.Bounds().Dx() != w || b.buffer.Bounds().Dy() != h {
		b.buffer = ebiten.NewImage(w, h)
	}
	b.buffer.Clear()
	return b.buffer
}

// Present draws the buffer onto screen, with glow when enabled.
func (b *Bloom) Present(screen *ebiten.Image) {
	if b.buffer == nil {
		return
	}
	intensity := cfg.Bloom.Intensity[b.Quality]
	if intensity <= 0 || assets.BloomShader == nil {
		screen.DrawImage(b.buffer, nil)
		return
	}

	w, h := b.buffer.Bounds().Dx(), b.buffer.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = b.buffer
	op.Uniforms = map[string]any{
		"Intensity": intensity,
		"Threshold": cfg.Bloom.Threshold,
		"Spread":    cfg.Bloom.Spread,
	}
	screen.DrawRectShader(w, h, assets.BloomShader, op)
}
