package systems

import (
	"image/color"

	"github.com/automoto/tilerush/components"
	cfg "github.com/automoto/tilerush/config"
	"github.com/automoto/tilerush/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the hitbox of every tile in the board's collision space.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.LogSessions {
		return
	}

	boardEntry, ok := components.Board.First(e.World)
	if !ok {
		return
	}
	space := components.Board.Get(boardEntry).Space
	if space == nil {
		return
	}

	for _, obj := range space.Objects() {
		x := float32(obj.X + cfg.Board.OriginX)
		y := float32(obj.Y + cfg.Board.OriginY)

		c := color.RGBA{0, 255, 255, 255} // Cyan
		if !obj.HasTags(tags.ResolvTile) {
			c = color.RGBA{255, 0, 255, 255}
		}

		// Draw outline
		vector.FillRect(screen, x, y, float32(obj.W), 1, c, false)                  // Top
		vector.FillRect(screen, x, y+float32(obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, float32(obj.H), c, false)                  // Left
		vector.FillRect(screen, x+float32(obj.W-1), y, 1, float32(obj.H), c, false) // Right
	}
}
