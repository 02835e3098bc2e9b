package tags

import "github.com/yohamta/donburi"

var (
	Tile    = donburi.NewTag().SetName("Tile")
	Session = donburi.NewTag().SetName("Session")
	Board   = donburi.NewTag().SetName("Board")
)

// Resolv tags for hit testing
const (
	ResolvTile  = "tile"
	ResolvProbe = "probe"
)
