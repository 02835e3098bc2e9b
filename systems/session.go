package systems

import (
	"log"

	cfg "github.com/automoto/tilerush/config"
	"github.com/automoto/tilerush/gameplay"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateClock advances the controller by the wall-clock time since the
// previous frame.
func NewUpdateClock(ctrl *gameplay.Controller) ecs.System {
	clock := gameplay.NewFrameClock()
	return func(e *ecs.ECS) {
		ctrl.Update(clock.Step())
	}
}

// NewUpdateSession handles the keyboard actions and tile clicks. onQuit is
// called when the quit action is pressed.
func NewUpdateSession(ctrl *gameplay.Controller, onQuit func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		if input.Action(cfg.ActionQuit).JustPressed {
			onQuit()
			return
		}
		if input.Action(cfg.ActionPlay).JustPressed {
			ctrl.Start()
		}
		if !input.Action(cfg.ActionSelect).JustPressed {
			return
		}

		x, y := BoardPoint(input.CursorX, input.CursorY)
		number, ok := ctrl.TileAt(x, y)
		if !ok {
			return
		}
		outcome := ctrl.Select(number)
		if cfg.Debug.LogSessions {
			log.Printf("tile %d: %s", number, outcome)
		}
	}
}

// BoardPoint converts a screen position to board space.
func BoardPoint(screenX, screenY int) (float64, float64) {
	return float64(screenX) - cfg.Board.OriginX, float64(screenY) - cfg.Board.OriginY
}
