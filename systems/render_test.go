package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/tilerush/gameplay"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Renderers are dispatched by their (*ecs.ECS, *ebiten.Image) signature.
var (
	_ func(*ecs.ECS, *ebiten.Image) = DrawStatus
	_ func(*ecs.ECS, *ebiten.Image) = DrawDebug
)

func TestRenderersRegisterOnLayers(t *testing.T) {
	world := donburi.NewWorld()
	ctrl := gameplay.NewController(world, gameplay.Options{TileCount: 3, Seed: 1})
	t.Cleanup(ctrl.Close)

	e := ecs.NewECS(world)
	e.AddRenderer(LayerBoard, NewDrawBoard(ctrl))
	e.AddRenderer(LayerOverlay, DrawStatus)
	e.AddRenderer(LayerOverlay, DrawDebug)
	e.AddSystem(NewUpdateClock(ctrl))
}

func TestFadeScalesPremultipliedColor(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	if got := fade(c, 1); got != c {
		t.Fatalf("fade(1) = %v", got)
	}
	if got := fade(c, 0); got != (color.RGBA{}) {
		t.Fatalf("fade(0) = %v", got)
	}
	got := fade(c, 0.5)
	if got.R != 100 || got.G != 50 || got.B != 25 || got.A != 127 {
		t.Fatalf("fade(0.5) = %v", got)
	}
}

func TestBoardPoint(t *testing.T) {
	x, y := BoardPoint(35, 170)
	if x != 0 || y != 0 {
		t.Fatalf("origin maps to (%v,%v)", x, y)
	}
	x, y = BoardPoint(45, 200)
	if x != 10 || y != 30 {
		t.Fatalf("BoardPoint(45,200) = (%v,%v)", x, y)
	}
}
