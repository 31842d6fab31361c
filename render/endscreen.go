package render

import (
	"github.com/automoto/glowswarm/components"
	"github.com/automoto/glowswarm/fonts"
	"github.com/automoto/glowswarm/session"
	"github.com/automoto/glowswarm/tags"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
)

// EndScreen draws the win/lose overlay. The widget tree is rebuilt whenever a
// new label entity appears and composited with the label's fade alpha.
type EndScreen struct {
	ui     *ebitenui.UI
	label  donburi.Entity
	face   text.Face
	buffer *ebiten.Image
}

func NewEndScreen() *EndScreen {
	return &EndScreen{}
}

// Draw renders the current overlay, if any.
func (es *EndScreen) Draw(s *session.Session, screen *ebiten.Image) {
	labelEntry, box, ok := findOverlay(s)
	if !ok {
		es.ui = nil
		return
	}
	if es.ui == nil || es.label != labelEntry.Entity() {
		es.build(components.Label.Get(labelEntry), box)
		es.label = labelEntry.Entity()
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if es.buffer == nil || es.buffer.Bounds().Dx() != w || es.buffer.Bounds().Dy() != h {
		es.buffer = ebiten.NewImage(w, h)
	}
	es.buffer.Clear()
	es.ui.Draw(es.buffer)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(components.Fade.Get(labelEntry).Alpha)
	screen.DrawImage(es.buffer, op)
}

func findOverlay(s *session.Session) (*donburi.Entry, components.OverlayData, bool) {
	var labelEntry *donburi.Entry
	tags.EndScreen.Each(s.World, func(entry *donburi.Entry) {
		if labelEntry == nil && entry.HasComponent(components.Label) {
			labelEntry = entry
		}
	})
	if labelEntry == nil {
		return nil, components.OverlayData{}, false
	}
	parent := components.Label.Get(labelEntry).Parent
	if !s.World.Valid(parent) {
		return nil, components.OverlayData{}, false
	}
	return labelEntry, *components.Overlay.Get(s.World.Entry(parent)), true
}

func (es *EndScreen) build(label *components.LabelData, box components.OverlayData) {
	es.face = fonts.Face(label.FontSize)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(box.Color)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(box.Width), int(box.Height)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	message := widget.NewText(
		widget.TextOpts.Text(label.Text, &es.face, label.Color),
		widget.TextOpts.MaxWidth(label.WrapWidth),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(message)
	root.AddChild(panel)

	es.ui = &ebitenui.UI{Container: root}
}
