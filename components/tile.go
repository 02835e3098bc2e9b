package components

import "github.com/yohamta/donburi"

// TileData is a numbered tile on the board. X and Y are the tile's top-left
// corner in board space and never change after the tile is spawned.
type TileData struct {
	Number   int
	X, Y     float64
	Selected bool
	Alpha    float64 // 1 = opaque; driven by the fade tween once selected
}

var Tile = donburi.NewComponentType[TileData]()
