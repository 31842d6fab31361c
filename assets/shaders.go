package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// BloomShader adds a blurred bright pass on top of the arena image
	BloomShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	bloomSrc, err := shaderFS.ReadFile("shaders/bloom.kage")
	if err != nil {
		return err
	}
	BloomShader, err = ebiten.NewShader(bloomSrc)
	if err != nil {
		return err
	}

	return nil
}
