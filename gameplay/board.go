package gameplay

import (
	"math"
	"sort"

	"github.com/automoto/tilerush/archetypes"
	"github.com/automoto/tilerush/components"
	"github.com/automoto/tilerush/config"
	"github.com/automoto/tilerush/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func createBoard(w donburi.World) *donburi.Entry {
	board := archetypes.Board.Spawn(w)
	size := int(math.Ceil(config.Board.FrameSize()))
	cell := config.Board.CellSize
	components.Board.SetValue(board, components.BoardData{
		Space: resolv.NewSpace(size, size, cell, cell),
	})
	return board
}

func (c *Controller) space() *resolv.Space {
	return components.Board.Get(c.board).Space
}

// spawnTiles creates tiles 1..n with independent uniform positions in
// [0, Spread) on both axes.
func (c *Controller) spawnTiles(n int) {
	spread := config.Board.Spread
	size := config.Board.TileSize
	space := c.space()
	for number := 1; number <= n; number++ {
		x := c.rng.Float64() * spread
		y := c.rng.Float64() * spread

		tile := archetypes.Tile.Spawn(c.world)
		components.Tile.SetValue(tile, components.TileData{
			Number: number,
			X:      x,
			Y:      y,
			Alpha:  1,
		})

		obj := resolv.NewObject(x, y, size, size, tags.ResolvTile)
		obj.Data = tile
		space.Add(obj)
		components.Object.SetValue(tile, components.ObjectData{Object: obj})

		c.tiles[number] = tile
	}
}

func (c *Controller) clearTiles() {
	for number, entry := range c.tiles {
		c.destroyTile(entry)
		delete(c.tiles, number)
	}
}

func (c *Controller) destroyTile(entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if obj := components.Object.Get(entry); obj.Object != nil {
		c.space().Remove(obj.Object)
	}
	c.world.Remove(entry.Entity())
}

// Tiles returns the tiles on the board in drawing order (ascending number).
func (c *Controller) Tiles() []components.TileData {
	out := make([]components.TileData, 0, len(c.tiles))
	for _, entry := range c.tiles {
		out = append(out, *components.Tile.Get(entry))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// TileAt returns the number of the topmost tile under the board-space point
// (x, y). Tiles are drawn in ascending order, so the highest number wins.
func (c *Controller) TileAt(x, y float64) (int, bool) {
	frame := config.Board.FrameSize()
	if x < 0 || y < 0 || x >= frame || y >= frame {
		return 0, false
	}

	space := c.space()
	// 2x2 so the probe also reaches the cell a tile's far edge rounds into
	probe := resolv.NewObject(x-1, y-1, 2, 2, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvTile)
	if check == nil {
		return 0, false
	}

	radius := config.Board.TileSize / 2
	best := 0
	for _, obj := range check.ObjectsByTags(tags.ResolvTile) {
		// The broadphase only matches cells; tiles are circles
		dx := x - (obj.X + radius)
		dy := y - (obj.Y + radius)
		if dx*dx+dy*dy > radius*radius {
			continue
		}
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if n := components.Tile.Get(entry).Number; n > best {
			best = n
		}
	}
	return best, best > 0
}
