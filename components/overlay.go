package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// OverlayData is a screen-centred filled box.
type OverlayData struct {
	Width  float64
	Height float64
	Color  color.RGBA
	Layer  float64
}

var Overlay = donburi.NewComponentType[OverlayData]()

// LabelData is text drawn centred on its parent box and wrapped to WrapWidth.
type LabelData struct {
	Text      string
	Color     color.RGBA
	FontSize  float64
	WrapWidth float64
	Layer     float64
	Parent    donburi.Entity
}

var Label = donburi.NewComponentType[LabelData]()
