package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BoardData holds the collision space used to hit-test tile clicks.
type BoardData struct {
	Space *resolv.Space
}

var Board = donburi.NewComponentType[BoardData]()
