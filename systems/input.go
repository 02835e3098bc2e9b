package systems

import (
	"github.com/automoto/tilerush/archetypes"
	"github.com/automoto/tilerush/components"
	cfg "github.com/automoto/tilerush/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Binding maps an action to the keys and mouse buttons that trigger it.
type Binding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// Bindings is the default input map.
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionPlay:   {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	cfg.ActionQuit:   {Keys: []ebiten.Key{ebiten.KeyEscape}},
	cfg.ActionSelect: {MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft}},
}

// UpdateInput polls raw input and updates the Input component.
// Must run before any system that reads actions.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
			}
		}
	}

	input.CursorX, input.CursorY = ebiten.CursorPosition()
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = archetypes.Input.Spawn(e.World)
	}
	return components.Input.Get(entry)
}
