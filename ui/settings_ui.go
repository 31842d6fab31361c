package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/glowswarm/components"
	"github.com/automoto/glowswarm/fonts"
	"github.com/automoto/glowswarm/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

type SettingsUI struct {
	UI *ebitenui.UI

	OnChange func(settings components.SettingsData)
	OnGoBack func()

	settings components.SettingsData

	qualityLabel *widget.Label
	volumeLabel  *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

func NewSettingsUI(settings components.SettingsData, onChange func(components.SettingsData), onGoBack func()) *SettingsUI {
	ui := &SettingsUI{
		OnChange: onChange,
		OnGoBack: onGoBack,
		settings: settings,
	}
	ui.loadFonts()
	ui.buildUI()
	ui.refresh()
	return ui
}

func (ui *SettingsUI) loadFonts() {
	ui.titleFace = fonts.Face(28)
	ui.normalFace = fonts.Face(16)
}

func (ui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	ui.qualityLabel = ui.newValueLabel()
	contentContainer.AddChild(ui.buildStepperRow(ui.qualityLabel, "<", ">", func(delta int) {
		systems.CycleQuality(&ui.settings, delta)
	}))

	ui.volumeLabel = ui.newValueLabel()
	contentContainer.AddChild(ui.buildStepperRow(ui.volumeLabel, "-", "+", func(delta int) {
		systems.AdjustVolume(&ui.settings, delta)
	}))

	contentContainer.AddChild(ui.buildButtons())

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *SettingsUI) newValueLabel() *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
}

// buildStepperRow lays out [dec] value [inc]; step receives -1 or +1.
func (ui *SettingsUI) buildStepperRow(value *widget.Label, dec, inc string, step func(delta int)) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	row.AddChild(ui.newStepButton(dec, func() { step(-1) }))
	row.AddChild(value)
	row.AddChild(ui.newStepButton(inc, func() { step(1) }))
	return row
}

func (ui *SettingsUI) newStepButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(32, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 100, 255},
			Pressed: color.RGBA{200, 150, 80, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			ui.changed()
		}),
	)
}

func (ui *SettingsUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Back", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnGoBack != nil {
				ui.OnGoBack()
			}
		}),
	)
	container.AddChild(backButton)

	return container
}

// Step applies a keyboard adjustment. row 0 is quality, row 1 is volume.
func (ui *SettingsUI) Step(row, delta int) {
	switch row {
	case 0:
		systems.CycleQuality(&ui.settings, delta)
	case 1:
		systems.AdjustVolume(&ui.settings, delta)
	default:
		return
	}
	ui.changed()
}

func (ui *SettingsUI) Settings() components.SettingsData {
	return ui.settings
}

func (ui *SettingsUI) changed() {
	ui.refresh()
	if ui.OnChange != nil {
		ui.OnChange(ui.settings)
	}
}

func (ui *SettingsUI) refresh() {
	ui.qualityLabel.Label = fmt.Sprintf("Quality: %s", ui.settings.Quality)
	ui.volumeLabel.Label = fmt.Sprintf("Volume: %d", ui.settings.Volume)
}

func (ui *SettingsUI) Update() {
	ui.UI.Update()
}
