package systems

import (
	"image/color"
	"strconv"

	"github.com/automoto/tilerush/components"
	cfg "github.com/automoto/tilerush/config"
	"github.com/automoto/tilerush/fonts"
	"github.com/automoto/tilerush/gameplay"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const idleHint = "Enter a number and press Play"

// DrawStatus renders the status title above the control panel.
func DrawStatus(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	style := components.Session.Get(entry).Status.Style()

	face := fonts.Title.Get()
	bounds := text.BoundString(face, style.Title)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, style.Title, face, x, int(cfg.Panel.TitleY), style.Color)
}

// NewDrawBoard renders the board frame and the tiles in ascending number
// order, so higher numbers are drawn on top.
func NewDrawBoard(ctrl *gameplay.Controller) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		b := cfg.Board
		size := float32(b.FrameSize())
		ox, oy := float32(b.OriginX), float32(b.OriginY)

		vector.FillRect(screen, ox, oy, size, size, b.FrameColor, false)
		vector.StrokeRect(screen, ox, oy, size, size, float32(b.Border), b.FrameBorderColor, false)

		if ctrl.Session().Phase() == cfg.PhaseIdle {
			drawIdleHint(screen)
			return
		}

		for _, tile := range ctrl.Tiles() {
			drawTile(screen, tile)
		}
	}
}

func drawTile(screen *ebiten.Image, tile components.TileData) {
	b := cfg.Board
	r := float32(b.TileSize / 2)
	cx := float32(b.OriginX+tile.X) + r
	cy := float32(b.OriginY+tile.Y) + r

	fill, border, label := b.TileColor, b.TileBorderColor, b.TileTextColor
	if tile.Selected {
		fill, border, label = b.SelectedColor, b.SelectedColor, b.SelectedTextColor
	}
	fill = fade(fill, tile.Alpha)
	border = fade(border, tile.Alpha)
	label = fade(label, tile.Alpha)

	vector.FillCircle(screen, cx, cy, r, fill, true)
	vector.StrokeCircle(screen, cx, cy, r-float32(b.Border)/2, float32(b.Border), border, true)

	face := fonts.TileNumber.Get()
	number := strconv.Itoa(tile.Number)
	bounds := text.BoundString(face, number)
	x := int(cx) - bounds.Min.X - bounds.Dx()/2
	y := int(cy) - bounds.Min.Y - bounds.Dy()/2
	text.Draw(screen, number, face, x, y, label)
}

func drawIdleHint(screen *ebiten.Image) {
	face := fonts.Hint.Get()
	bounds := text.BoundString(face, idleHint)
	mid := cfg.Board.FrameSize() / 2
	x := int(cfg.Board.OriginX+mid) - bounds.Dx()/2
	y := int(cfg.Board.OriginY + mid)
	text.Draw(screen, idleHint, face, x, y, cfg.Board.TileTextColor)
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
