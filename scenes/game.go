package scenes

import (
	"fmt"
	"sync"

	cfg "github.com/automoto/tilerush/config"
	"github.com/automoto/tilerush/gameplay"
	"github.com/automoto/tilerush/systems"
	"github.com/automoto/tilerush/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.opentelemetry.io/otel/trace"
)

// GameScene runs the board and the control panel.
type GameScene struct {
	ecs    *ecs.ECS
	ctrl   *gameplay.Controller
	hud    *ui.HudUI
	tracer trace.Tracer
	once   sync.Once
	err    error
	quit   bool
}

// NewGameScene creates the scene. Session spans go to tracer; nil disables
// them.
func NewGameScene(tracer trace.Tracer) *GameScene {
	return &GameScene{tracer: tracer}
}

// Update advances one frame. It returns ebiten.Termination once the player
// quits.
func (gs *GameScene) Update() error {
	gs.once.Do(gs.configure)
	if gs.err != nil {
		return gs.err
	}

	gs.ecs.Update()
	if gs.quit {
		gs.ctrl.Close()
		return ebiten.Termination
	}

	gs.hud.Update()
	gs.hud.Sync(gs.ctrl.Session())
	return nil
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Panel.BackgroundColor)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	gs.hud.Draw(screen)
}

func (gs *GameScene) configure() {
	world := donburi.NewWorld()
	gs.ctrl = gameplay.NewController(world, gameplay.Options{
		TileCount: cfg.TileCount.Default,
		Seed:      cfg.Debug.Seed,
		Tracer:    gs.tracer,
		Debug:     cfg.Debug.LogSessions,
	})

	hud, err := ui.NewHudUI(gs.ctrl.Session().TileCount, gs.ctrl.Start, func(n int) {
		gs.ctrl.SetTileCount(n)
	})
	if err != nil {
		gs.err = fmt.Errorf("build control panel: %w", err)
		return
	}
	gs.hud = hud

	gs.ecs = ecs.NewECS(world)

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateClock(gs.ctrl))
	gs.ecs.AddSystem(systems.NewUpdateSession(gs.ctrl, func() { gs.quit = true }))

	gs.ecs.AddRenderer(systems.LayerBoard, systems.NewDrawBoard(gs.ctrl))
	gs.ecs.AddRenderer(systems.LayerOverlay, systems.DrawStatus)
	gs.ecs.AddRenderer(systems.LayerOverlay, systems.DrawDebug)
}
