package ui

import (
	"bytes"
	"fmt"
	"log"
	"strconv"

	"github.com/automoto/tilerush/components"
	cfg "github.com/automoto/tilerush/config"
	"github.com/automoto/tilerush/gameplay"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const maxTileCountDigits = 3

// HudUI is the control panel: tile count input, elapsed time and the
// Play/Restart button.
type HudUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlay      func()
	OnTileCount func(n int)

	countInput *widget.TextInput
	timeLabel  *widget.Label
	playButton *widget.Button

	normalFace text.Face
}

// NewHudUI builds the panel with the tile count field set to tileCount.
func NewHudUI(tileCount int, onPlay func(), onTileCount func(n int)) (*HudUI, error) {
	hud := &HudUI{
		OnPlay:      onPlay,
		OnTileCount: onTileCount,
	}
	if err := hud.loadFonts(); err != nil {
		return nil, err
	}
	hud.buildUI(tileCount)
	return hud, nil
}

func (hud *HudUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load UI font: %w", err)
	}
	hud.normalFace = &text.GoTextFace{Source: fontSource, Size: cfg.Panel.TextSize}
	return nil
}

func (hud *HudUI) buildUI(tileCount int) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{
		Top:    cfg.Panel.ContentTop,
		Bottom: cfg.Panel.Padding,
		Left:   cfg.Panel.Padding,
		Right:  cfg.Panel.Padding,
	}
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(cfg.Panel.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	contentContainer.AddChild(hud.buildCountRow(tileCount))

	hud.timeLabel = widget.NewLabel(
		widget.LabelOpts.Text(timeText(0), &hud.normalFace, &widget.LabelColor{
			Idle: cfg.Panel.TextColor,
		}),
	)
	contentContainer.AddChild(hud.timeLabel)

	hud.playButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.Panel.ButtonColor),
			Hover:   image.NewNineSliceColor(cfg.Panel.ButtonHover),
			Pressed: image.NewNineSliceColor(cfg.Panel.ButtonPressed),
		}),
		widget.ButtonOpts.Text(gameplay.PlayLabel(false), &hud.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   cfg.White,
			Pressed: cfg.LightGray,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if hud.OnPlay != nil {
				hud.OnPlay()
			}
		}),
	)
	contentContainer.AddChild(hud.playButton)

	rootContainer.AddChild(contentContainer)

	hud.UI = &ebitenui.UI{Container: rootContainer}
}

func (hud *HudUI) buildCountRow(tileCount int) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Point:", &hud.normalFace, &widget.LabelColor{
			Idle: cfg.Panel.TextColor,
		}),
	))

	hud.countInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 24)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(cfg.Panel.InputColor),
			Disabled: image.NewNineSliceColor(cfg.LightGray),
		}),
		widget.TextInputOpts.Face(&hud.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          cfg.Panel.TextColor,
			Disabled:      cfg.LightGray,
			Caret:         cfg.Panel.TextColor,
			DisabledCaret: cfg.LightGray,
		}),
		widget.TextInputOpts.Placeholder(strconv.Itoa(cfg.TileCount.Default)),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
		widget.TextInputOpts.Validation(func(newInputText string) (bool, *string) {
			ok := len(newInputText) <= maxTileCountDigits && gameplay.IsDigits(newInputText)
			return ok, nil
		}),
		widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
			hud.applyTileCount(args.InputText)
		}),
	)
	hud.countInput.SetText(strconv.Itoa(tileCount))
	row.AddChild(hud.countInput)

	return row
}

// applyTileCount forwards valid field text; invalid text keeps the previous
// count.
func (hud *HudUI) applyTileCount(input string) {
	n, err := gameplay.ParseTileCount(input)
	if err != nil {
		log.Printf("Warning: tile count %q: %v", input, err)
		return
	}
	if hud.OnTileCount != nil {
		hud.OnTileCount(n)
	}
}

// Sync copies the session state into the widgets.
func (hud *HudUI) Sync(s *components.SessionData) {
	hud.timeLabel.Label = timeText(s.Elapsed())
	if textWidget := hud.playButton.Text(); textWidget != nil {
		textWidget.Label = gameplay.PlayLabel(s.Running)
	}
}

func (hud *HudUI) Update() {
	hud.UI.Update()
}

func (hud *HudUI) Draw(screen *ebiten.Image) {
	hud.UI.Draw(screen)
}

func timeText(seconds float64) string {
	return "Time: " + gameplay.FormatElapsed(seconds)
}
