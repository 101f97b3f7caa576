package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/flapper/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// GameOverUI is the panel shown once the bird has crashed: final score, best
// score and a retry button.
type GameOverUI struct {
	UI *ebitenui.UI

	OnRetry func()

	scoreLabel *widget.Label
	bestLabel  *widget.Label
	newBest    *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

func NewGameOverUI(onRetry func()) (*GameOverUI, error) {
	ui := &GameOverUI{OnRetry: onRetry}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI()
	return ui, nil
}

func (ui *GameOverUI) loadFonts() error {
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fmt.Errorf("load UI font: %w", err)
	}
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load UI font: %w", err)
	}

	ui.titleFace = &text.GoTextFace{Source: bold, Size: 28}
	ui.normalFace = &text.GoTextFace{Source: regular, Size: 16}
	return nil
}

func (ui *GameOverUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.GameOver.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(ui.label(cfg.GameOver.Title, &ui.titleFace, cfg.GameOver.TextColor))

	ui.scoreLabel = ui.label("", &ui.normalFace, cfg.GameOver.TextColor)
	panel.AddChild(ui.scoreLabel)

	ui.bestLabel = ui.label("", &ui.normalFace, cfg.GameOver.TextColor)
	panel.AddChild(ui.bestLabel)

	ui.newBest = ui.label("", &ui.normalFace, cfg.Yellow)
	panel.AddChild(ui.newBest)

	retryButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		}),
		widget.ButtonOpts.Text(cfg.GameOver.RetryLabel, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnRetry != nil {
				ui.OnRetry()
			}
		}),
	)
	panel.AddChild(retryButton)

	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *GameOverUI) label(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: c}),
	)
}

// SetResult fills in the labels for the session that just ended.
func (ui *GameOverUI) SetResult(score, best int, newBest bool) {
	ui.scoreLabel.Label = fmt.Sprintf("Score: %d", score)
	ui.bestLabel.Label = fmt.Sprintf("Best: %d", best)
	ui.newBest.Label = ""
	if newBest {
		ui.newBest.Label = cfg.GameOver.NewBestLabel
	}
}

func (ui *GameOverUI) Update() {
	ui.UI.Update()
}

func (ui *GameOverUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
